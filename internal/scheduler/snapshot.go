// Package scheduler implements the constraint-based volunteer/event
// assignment engine: availability indexing, candidate generation, the
// greedy-with-local-repair solver and the health scorer. It operates purely
// on an immutable snapshot of organization data loaded at solve start and
// performs no I/O.
package scheduler

import (
	"sort"
	"time"

	"volunteer-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used for all blocked-date
// comparisons. Time-of-day and timezone are deliberately ignored: an event
// blocks on its start date only, matching how clients submit time-off.
const DateLayout = "2006-01-02"

// PersonSnapshot is the solver's view of one volunteer.
type PersonSnapshot struct {
	ID    uuid.UUID
	Name  string
	Roles models.RoleList
}

// EventSnapshot is the solver's view of one event in the solve window.
type EventSnapshot struct {
	ID           uuid.UUID
	Type         string
	StartTime    time.Time
	EndTime      time.Time
	Location     string
	Requirements models.RoleCountMap
}

// StartDate returns the event's start instant truncated to a calendar date
// string, the granularity at which time-off blocking is decided.
func (e EventSnapshot) StartDate() string {
	return e.StartTime.Format(DateLayout)
}

// DemandedSlots returns the number of required slots this event contributes.
// An event with no role requirements demands a single unconstrained slot.
func (e EventSnapshot) DemandedSlots() int {
	if len(e.Requirements) == 0 {
		return 1
	}
	return e.Requirements.TotalSlots()
}

// TimeOffSnapshot is one inclusive blocked-date range for a person.
type TimeOffSnapshot struct {
	PersonID  uuid.UUID
	StartDate string
	EndDate   string
}

// Snapshot is the immutable input to one solve: all events, people and
// time-off ranges of an organization within a date window, read once at
// solve start. Later writes by other users do not affect an in-flight solve.
type Snapshot struct {
	OrgID    uuid.UUID
	FromDate string
	ToDate   string
	Events   []EventSnapshot
	People   []PersonSnapshot
	TimeOff  []TimeOffSnapshot
}

// TotalDemandedSlots sums required slots across all events in the window.
func (s *Snapshot) TotalDemandedSlots() int {
	total := 0
	for _, ev := range s.Events {
		total += ev.DemandedSlots()
	}
	return total
}

// sortEvents orders events by start time ascending, tie-broken by event id,
// the fixed deterministic order demands are processed in.
func sortEvents(events []EventSnapshot) {
	sort.Slice(events, func(i, j int) bool {
		if !events[i].StartTime.Equal(events[j].StartTime) {
			return events[i].StartTime.Before(events[j].StartTime)
		}
		return events[i].ID.String() < events[j].ID.String()
	})
}
