//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"volunteer-roster-backend/internal/database/models"
	"volunteer-roster-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// SolutionRepositoryTestSuite tests the SolutionRepository
type SolutionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SolutionRepository
	assignments   *AssignmentRepository
	factories     *testutils.FactorySet
}

func (suite *SolutionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSolutionRepository(suite.baseTestSuite.DB)
	suite.assignments = NewAssignmentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *SolutionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *SolutionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *SolutionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedWindow creates an org with one event and two people and returns them.
func (suite *SolutionRepositoryTestSuite) seedWindow() (*models.Organization, *models.Event, []*models.Person) {
	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(org).Error)

	event := suite.factories.Event.Create(org.ID, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	suite.Require().NoError(suite.baseTestSuite.DB.Create(event).Error)

	people := []*models.Person{
		suite.factories.Person.Create(org.ID),
		suite.factories.Person.Create(org.ID),
	}
	for _, p := range people {
		suite.Require().NoError(suite.baseTestSuite.DB.Create(p).Error)
	}
	return org, event, people
}

func (suite *SolutionRepositoryTestSuite) newSolution(orgID uuid.UUID) *models.Solution {
	return &models.Solution{
		OrganizationID:  orgID,
		FromDate:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ToDate:          time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC),
		Mode:            models.SolveModeBalanced,
		AssignmentCount: 2,
		HardViolations:  0,
		HealthScore:     100,
	}
}

// TestSaveIsAtomic tests that a solution and its assignments persist together
func (suite *SolutionRepositoryTestSuite) TestSaveIsAtomic() {
	org, event, people := suite.seedWindow()

	solution := suite.newSolution(org.ID)
	assignments := []models.Assignment{
		{EventID: event.ID, PersonID: people[0].ID, Role: "volunteer"},
		{EventID: event.ID, PersonID: people[1].ID, Role: "volunteer"},
	}

	err := suite.repo.Save(solution, assignments)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, solution.ID)

	stored, err := suite.repo.GetAssignments(solution.ID)
	suite.NoError(err)
	suite.Len(stored, 2)
	for _, a := range stored {
		suite.Require().NotNil(a.SolutionID)
		suite.Equal(solution.ID, *a.SolutionID)
		suite.Equal(org.ID, a.OrganizationID)
	}
}

// TestSaveRollsBackOnConflict tests that a failed assignment write leaves no solution behind
func (suite *SolutionRepositoryTestSuite) TestSaveRollsBackOnConflict() {
	org, event, people := suite.seedWindow()

	// A duplicate (event, person) pair within one solution violates the
	// per-solution unique index.
	solution := suite.newSolution(org.ID)
	assignments := []models.Assignment{
		{EventID: event.ID, PersonID: people[0].ID, Role: "volunteer"},
		{EventID: event.ID, PersonID: people[0].ID, Role: "volunteer"},
	}

	err := suite.repo.Save(solution, assignments)

	suite.Error(err)
	_, err = suite.repo.GetByID(solution.ID)
	suite.Error(err, "no partial solution may be observable")
}

// TestSaveRepeatedWindowAccumulates tests that re-solving an unchanged
// window stores a second solution whose assignments repeat the same
// (event, person) pairs, and both solutions remain readable side by side.
func (suite *SolutionRepositoryTestSuite) TestSaveRepeatedWindowAccumulates() {
	org, event, people := suite.seedWindow()

	pairs := func() []models.Assignment {
		return []models.Assignment{
			{EventID: event.ID, PersonID: people[0].ID, Role: "volunteer"},
			{EventID: event.ID, PersonID: people[1].ID, Role: "volunteer"},
		}
	}

	first := suite.newSolution(org.ID)
	suite.Require().NoError(suite.repo.Save(first, pairs()))

	// A deterministic second solve over unchanged data emits the exact
	// same pairs.
	second := suite.newSolution(org.ID)

	suite.NoError(suite.repo.Save(second, pairs()))

	solutions, err := suite.repo.ListByOrganization(org.ID)
	suite.NoError(err)
	suite.Require().Len(solutions, 2)
	suite.Equal(solutions[0].AssignmentCount, solutions[1].AssignmentCount)
	suite.Equal(solutions[0].HealthScore, solutions[1].HealthScore)

	firstStored, err := suite.repo.GetAssignments(first.ID)
	suite.NoError(err)
	suite.Len(firstStored, 2)
	secondStored, err := suite.repo.GetAssignments(second.ID)
	suite.NoError(err)
	suite.Len(secondStored, 2)
}

// TestManualDuplicatePairRejected tests that the partial unique index still
// forbids two manual assignments of the same person to the same event.
func (suite *SolutionRepositoryTestSuite) TestManualDuplicatePairRejected() {
	org, event, people := suite.seedWindow()

	manual := &models.Assignment{
		OrganizationID: org.ID,
		EventID:        event.ID,
		PersonID:       people[0].ID,
		Role:           "volunteer",
	}
	suite.Require().NoError(suite.assignments.Create(manual))

	duplicate := &models.Assignment{
		OrganizationID: org.ID,
		EventID:        event.ID,
		PersonID:       people[0].ID,
		Role:           "usher",
	}
	suite.Error(suite.assignments.Create(duplicate))
}

// TestListNewestFirst tests solution listing order
func (suite *SolutionRepositoryTestSuite) TestListNewestFirst() {
	org, _, _ := suite.seedWindow()

	older := suite.newSolution(org.ID)
	suite.Require().NoError(suite.repo.Save(older, nil))
	newer := suite.newSolution(org.ID)
	suite.Require().NoError(suite.repo.Save(newer, nil))

	solutions, err := suite.repo.ListByOrganization(org.ID)

	suite.NoError(err)
	suite.Require().Len(solutions, 2)
	suite.True(!solutions[0].CreatedAt.Before(solutions[1].CreatedAt))
}

// TestDeleteKeepsManualAssignments tests that deletion only cascades to solver-owned rows
func (suite *SolutionRepositoryTestSuite) TestDeleteKeepsManualAssignments() {
	org, event, people := suite.seedWindow()

	solution := suite.newSolution(org.ID)
	solverOwned := []models.Assignment{
		{EventID: event.ID, PersonID: people[0].ID, Role: "volunteer"},
	}
	suite.Require().NoError(suite.repo.Save(solution, solverOwned))

	manual := &models.Assignment{
		OrganizationID: org.ID,
		EventID:        event.ID,
		PersonID:       people[1].ID,
		Role:           "usher",
	}
	suite.Require().NoError(suite.assignments.Create(manual))

	suite.NoError(suite.repo.Delete(solution.ID))

	remaining, err := suite.assignments.GetByEventID(event.ID)
	suite.NoError(err)
	suite.Require().Len(remaining, 1)
	suite.Equal(people[1].ID, remaining[0].PersonID)
	suite.Nil(remaining[0].SolutionID)
}

// TestDeleteIdempotent tests that deleting a nonexistent solution succeeds
func (suite *SolutionRepositoryTestSuite) TestDeleteIdempotent() {
	suite.NoError(suite.repo.Delete(uuid.New()))
}

// TestGetAssignmentsOrderedByEventStart tests display ordering
func (suite *SolutionRepositoryTestSuite) TestGetAssignmentsOrderedByEventStart() {
	org, _, people := suite.seedWindow()

	later := suite.factories.Event.Create(org.ID, time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC))
	earlier := suite.factories.Event.Create(org.ID, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	suite.Require().NoError(suite.baseTestSuite.DB.Create(later).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(earlier).Error)

	solution := suite.newSolution(org.ID)
	assignments := []models.Assignment{
		{EventID: later.ID, PersonID: people[0].ID, Role: "volunteer"},
		{EventID: earlier.ID, PersonID: people[0].ID, Role: "volunteer"},
	}
	suite.Require().NoError(suite.repo.Save(solution, assignments))

	stored, err := suite.repo.GetAssignments(solution.ID)

	suite.NoError(err)
	suite.Require().Len(stored, 2)
	suite.Equal(earlier.ID, stored[0].EventID)
	suite.Equal(later.ID, stored[1].EventID)
	suite.Equal(earlier.ID, stored[0].Event.ID, "event must be preloaded for display")
	suite.Equal(people[0].Name, stored[0].Person.Name, "person must be preloaded for display")
}

func TestSolutionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SolutionRepositoryTestSuite))
}
