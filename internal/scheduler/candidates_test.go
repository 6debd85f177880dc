package scheduler

import (
	"testing"
	"time"

	"volunteer-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidatesOrderedByLoadThenID(t *testing.T) {
	people := []PersonSnapshot{
		person("alice", models.RoleVolunteer),
		person("bob", models.RoleVolunteer),
		person("carol", models.RoleVolunteer),
	}
	gen := NewCandidateGenerator(people, BuildAvailabilityIndex(nil))
	ev := event("e1", time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC), models.RoleCountMap{models.RoleVolunteer: 1})

	load := map[uuid.UUID]int{
		fixedUUID("alice"): 2,
		fixedUUID("bob"):   0,
		fixedUUID("carol"): 0,
	}
	got := gen.Candidates(ev, models.RoleVolunteer, map[uuid.UUID]bool{}, load)

	require.Len(t, got, 3)
	// bob and carol tie on load; stable secondary key is the person id.
	wantFirst, wantSecond := fixedUUID("bob"), fixedUUID("carol")
	if wantFirst.String() > wantSecond.String() {
		wantFirst, wantSecond = wantSecond, wantFirst
	}
	assert.Equal(t, wantFirst, got[0].ID)
	assert.Equal(t, wantSecond, got[1].ID)
	assert.Equal(t, fixedUUID("alice"), got[2].ID, "heaviest load sorts last")
}

func TestCandidatesExcludesAlreadyAssigned(t *testing.T) {
	people := []PersonSnapshot{person("alice", models.RoleVolunteer), person("bob", models.RoleVolunteer)}
	gen := NewCandidateGenerator(people, BuildAvailabilityIndex(nil))
	ev := event("e1", time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC), models.RoleCountMap{models.RoleVolunteer: 2})

	assigned := map[uuid.UUID]bool{fixedUUID("alice"): true}
	got := gen.Candidates(ev, models.RoleVolunteer, assigned, map[uuid.UUID]int{})

	require.Len(t, got, 1)
	assert.Equal(t, fixedUUID("bob"), got[0].ID)
}

func TestCandidatesRoleGating(t *testing.T) {
	people := []PersonSnapshot{person("alice", "greeter"), person("bob", "musician")}
	gen := NewCandidateGenerator(people, BuildAvailabilityIndex(nil))

	gated := event("e1", time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC), models.RoleCountMap{"greeter": 1})
	got := gen.Candidates(gated, "greeter", map[uuid.UUID]bool{}, map[uuid.UUID]int{})
	require.Len(t, got, 1)
	assert.Equal(t, fixedUUID("alice"), got[0].ID)

	// An event without requirements accepts anyone under the implicit role.
	ungated := event("e2", time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC), nil)
	got = gen.Candidates(ungated, models.RoleVolunteer, map[uuid.UUID]bool{}, map[uuid.UUID]int{})
	assert.Len(t, got, 2)
}

func TestCandidatesExcludesBlocked(t *testing.T) {
	people := []PersonSnapshot{person("alice", models.RoleVolunteer), person("bob", models.RoleVolunteer)}
	idx := BuildAvailabilityIndex([]TimeOffSnapshot{
		{PersonID: fixedUUID("alice"), StartDate: "2026-03-14", EndDate: "2026-03-14"},
	})
	gen := NewCandidateGenerator(people, idx)
	ev := event("e1", time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC), models.RoleCountMap{models.RoleVolunteer: 1})

	got := gen.Candidates(ev, models.RoleVolunteer, map[uuid.UUID]bool{}, map[uuid.UUID]int{})

	require.Len(t, got, 1)
	assert.Equal(t, fixedUUID("bob"), got[0].ID)
}
