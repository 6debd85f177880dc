package scheduler

import (
	"sort"

	"volunteer-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

// CandidateGenerator enumerates the people eligible for an (event, role)
// slot, ordered fairness-first: ascending running assignment count in this
// solve, tie-broken by person id so identical inputs always produce
// identical candidate orderings.
type CandidateGenerator struct {
	people       []PersonSnapshot
	availability *AvailabilityIndex
}

// NewCandidateGenerator creates a generator over the snapshot's people.
func NewCandidateGenerator(people []PersonSnapshot, availability *AvailabilityIndex) *CandidateGenerator {
	return &CandidateGenerator{people: people, availability: availability}
}

// Candidates returns the eligible people for one slot of the given role on
// the event. A person is eligible when they hold the role (any person
// qualifies for the implicit volunteer role of an ungated event), they are
// not blocked on the event's start date, and they are not already assigned
// to this event.
func (g *CandidateGenerator) Candidates(event EventSnapshot, role models.RoleID, assignedToEvent map[uuid.UUID]bool, load map[uuid.UUID]int) []PersonSnapshot {
	roleGated := len(event.Requirements) > 0
	startDate := event.StartDate()

	var eligible []PersonSnapshot
	for _, person := range g.people {
		if roleGated && !person.Roles.Contains(role) {
			continue
		}
		if assignedToEvent[person.ID] {
			continue
		}
		if g.availability.IsBlockedOn(person.ID, startDate) {
			continue
		}
		eligible = append(eligible, person)
	}

	sort.Slice(eligible, func(i, j int) bool {
		li, lj := load[eligible[i].ID], load[eligible[j].ID]
		if li != lj {
			return li < lj
		}
		return eligible[i].ID.String() < eligible[j].ID.String()
	})

	return eligible
}
