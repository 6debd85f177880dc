package scheduler

import (
	"sort"

	"volunteer-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

// Config holds the solver's tuning knobs. Values come from the application
// config so operators can adjust fairness behavior per deployment.
type Config struct {
	// FairnessThreshold is how far above the mean load a person must be
	// before the improvement pass tries to move one of their assignments.
	FairnessThreshold float64
	// FairnessPasses bounds the local-search iterations so solve time stays
	// bounded regardless of input size.
	FairnessPasses int
}

// DefaultConfig returns the reference solver configuration.
func DefaultConfig() Config {
	return Config{
		FairnessThreshold: 1.0,
		FairnessPasses:    3,
	}
}

// SlotAssignment is one solver-produced placement of a person on an event.
type SlotAssignment struct {
	EventID  uuid.UUID
	PersonID uuid.UUID
	Role     models.RoleID
}

// Shortfall records an (event, role) demand that could not be fully filled.
// Shortfalls are domain data, not faults: the solver reports them and keeps
// going so partial schedules are still produced.
type Shortfall struct {
	EventID uuid.UUID
	Role    models.RoleID
	Missing int
}

// Result is the outcome of one solve over a snapshot.
type Result struct {
	Assignments        []SlotAssignment
	Shortfalls         []Shortfall
	TotalDemandedSlots int
	// Loads is the final per-person assignment count, including people who
	// received none; the scorer uses it for the fairness factor.
	Loads map[uuid.UUID]int
}

// HardViolations is the total count of unfilled required slots.
func (r *Result) HardViolations() int {
	total := 0
	for _, s := range r.Shortfalls {
		total += s.Missing
	}
	return total
}

// Solver assigns people to (event, role) slots honoring hard constraints
// (role eligibility, availability, no double-booking on one event) and
// optimizing load fairness as a soft constraint. The algorithm is greedy
// with a bounded local-repair pass; for the problem sizes involved (a 90-day
// window of events with single-digit headcounts) this completes in
// milliseconds single-threaded.
type Solver struct {
	cfg Config
}

// New creates a solver with the given configuration. Zero is a valid
// operator setting for both knobs (threshold 0 balances aggressively,
// passes 0 disables the improvement passes); only negative values are
// clamped.
func New(cfg Config) *Solver {
	if cfg.FairnessPasses < 0 {
		cfg.FairnessPasses = 0
	}
	if cfg.FairnessThreshold < 0 {
		cfg.FairnessThreshold = 0
	}
	return &Solver{cfg: cfg}
}

// demand is one unfilled slot the greedy pass must place somebody into.
type demand struct {
	event EventSnapshot
	role  models.RoleID
}

// Solve runs the greedy pass and, in balanced mode, the fairness improvement
// passes. It never fails for "not enough people": shortfalls are recorded in
// the result and solving continues. Input validation (date range, org
// existence) is the caller's responsibility.
func (s *Solver) Solve(snap *Snapshot, mode models.SolveMode) *Result {
	events := make([]EventSnapshot, len(snap.Events))
	copy(events, snap.Events)
	sortEvents(events)

	availability := BuildAvailabilityIndex(snap.TimeOff)
	generator := NewCandidateGenerator(snap.People, availability)

	result := &Result{
		TotalDemandedSlots: snap.TotalDemandedSlots(),
		Loads:              make(map[uuid.UUID]int, len(snap.People)),
	}
	for _, person := range snap.People {
		result.Loads[person.ID] = 0
	}

	// Who already holds a slot on each event, to enforce single-event
	// double-booking as a hard constraint.
	assignedToEvent := make(map[uuid.UUID]map[uuid.UUID]bool, len(events))
	for _, ev := range events {
		assignedToEvent[ev.ID] = make(map[uuid.UUID]bool)
	}

	// Greedy pass: fixed deterministic demand order — events by start time,
	// roles within an event ascending, slot indices in sequence.
	shortfalls := make(map[uuid.UUID]map[models.RoleID]int)
	for _, ev := range events {
		for _, d := range eventDemands(ev) {
			candidates := generator.Candidates(d.event, d.role, assignedToEvent[ev.ID], result.Loads)
			if len(candidates) == 0 {
				if shortfalls[ev.ID] == nil {
					shortfalls[ev.ID] = make(map[models.RoleID]int)
				}
				shortfalls[ev.ID][d.role]++
				continue
			}
			pick := candidates[0]
			result.Assignments = append(result.Assignments, SlotAssignment{
				EventID:  ev.ID,
				PersonID: pick.ID,
				Role:     d.role,
			})
			assignedToEvent[ev.ID][pick.ID] = true
			result.Loads[pick.ID]++
		}
	}

	// Collect shortfalls in event order for stable output.
	for _, ev := range events {
		byRole := shortfalls[ev.ID]
		if len(byRole) == 0 {
			continue
		}
		roles := make([]models.RoleID, 0, len(byRole))
		for role := range byRole {
			roles = append(roles, role)
		}
		sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
		for _, role := range roles {
			result.Shortfalls = append(result.Shortfalls, Shortfall{EventID: ev.ID, Role: role, Missing: byRole[role]})
		}
	}

	if mode != models.SolveModeFast {
		s.improveFairness(snap, generator, assignedToEvent, result)
	}

	return result
}

// eventDemands expands an event's role requirements into per-slot demands in
// deterministic order. An event with no requirements yields one slot under
// the implicit volunteer role.
func eventDemands(ev EventSnapshot) []demand {
	if len(ev.Requirements) == 0 {
		return []demand{{event: ev, role: models.RoleVolunteer}}
	}
	var demands []demand
	for _, role := range ev.Requirements.SortedRoles() {
		for i := 0; i < ev.Requirements[role]; i++ {
			demands = append(demands, demand{event: ev, role: role})
		}
	}
	return demands
}

// improveFairness runs bounded local-search passes: any person whose load
// exceeds the mean by more than the threshold donates one assignment to an
// eligible below-mean person, provided the move strictly reduces imbalance.
// This is a refinement of the greedy result, not a re-solve.
func (s *Solver) improveFairness(snap *Snapshot, generator *CandidateGenerator, assignedToEvent map[uuid.UUID]map[uuid.UUID]bool, result *Result) {
	if len(snap.People) == 0 || len(result.Assignments) == 0 {
		return
	}

	eventsByID := make(map[uuid.UUID]EventSnapshot, len(snap.Events))
	for _, ev := range snap.Events {
		eventsByID[ev.ID] = ev
	}

	for pass := 0; pass < s.cfg.FairnessPasses; pass++ {
		mean := float64(len(result.Assignments)) / float64(len(snap.People))
		improved := false

		for i := range result.Assignments {
			asgn := &result.Assignments[i]
			donorLoad := result.Loads[asgn.PersonID]
			if float64(donorLoad) <= mean+s.cfg.FairnessThreshold {
				continue
			}

			ev := eventsByID[asgn.EventID]
			candidates := generator.Candidates(ev, asgn.Role, assignedToEvent[ev.ID], result.Loads)
			for _, candidate := range candidates {
				// A move only helps when the recipient ends up strictly
				// below the donor's former load.
				if result.Loads[candidate.ID]+1 >= donorLoad {
					break // candidates are load-ordered, nobody further helps
				}
				delete(assignedToEvent[ev.ID], asgn.PersonID)
				assignedToEvent[ev.ID][candidate.ID] = true
				result.Loads[asgn.PersonID]--
				result.Loads[candidate.ID]++
				asgn.PersonID = candidate.ID
				improved = true
				break
			}
		}

		if !improved {
			return
		}
	}
}
