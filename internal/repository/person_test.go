//go:build integration
// +build integration

package repository

import (
	"sort"
	"testing"
	"time"

	"volunteer-roster-backend/internal/database/models"
	"volunteer-roster-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// PersonRepositoryTestSuite tests the PersonRepository
type PersonRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PersonRepository
	timeOff       *TimeOffRepository
	factories     *testutils.FactorySet
}

func (suite *PersonRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewPersonRepository(suite.baseTestSuite.DB)
	suite.timeOff = NewTimeOffRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *PersonRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *PersonRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *PersonRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PersonRepositoryTestSuite) seedOrg() *models.Organization {
	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(org).Error)
	return org
}

// TestCreateAndGetRoundTripsRoles tests that the jsonb role list survives storage
func (suite *PersonRepositoryTestSuite) TestCreateAndGetRoundTripsRoles() {
	org := suite.seedOrg()
	person := suite.factories.Person.WithRoles(org.ID, "driver", "greeter")

	suite.Require().NoError(suite.repo.Create(person))

	found, err := suite.repo.GetByID(person.ID)
	suite.NoError(err)
	suite.Equal(person.Name, found.Name)
	suite.True(found.Roles.Contains("driver"))
	suite.True(found.Roles.Contains("greeter"))
	suite.False(found.Roles.Contains("usher"))
	suite.True(found.IsActive)
}

// TestGetActiveByOrganizationOrder tests that snapshot queries return a stable order
func (suite *PersonRepositoryTestSuite) TestGetActiveByOrganizationOrder() {
	org := suite.seedOrg()
	for i := 0; i < 5; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factories.Person.Create(org.ID)))
	}
	inactive := suite.factories.Person.Create(org.ID)
	suite.Require().NoError(suite.repo.Create(inactive))
	suite.Require().NoError(suite.repo.Deactivate(inactive.ID))

	people, err := suite.repo.GetActiveByOrganization(org.ID)

	suite.NoError(err)
	suite.Require().Len(people, 5)
	suite.True(sort.SliceIsSorted(people, func(i, j int) bool {
		return people[i].ID.String() < people[j].ID.String()
	}))
	for _, p := range people {
		suite.NotEqual(inactive.ID, p.ID)
	}
}

// TestDeactivateKeepsHistory tests that deactivation flips the flag without deleting
func (suite *PersonRepositoryTestSuite) TestDeactivateKeepsHistory() {
	org := suite.seedOrg()
	person := suite.factories.Person.Create(org.ID)
	suite.Require().NoError(suite.repo.Create(person))

	suite.NoError(suite.repo.Deactivate(person.ID))

	found, err := suite.repo.GetByID(person.ID)
	suite.NoError(err)
	suite.False(found.IsActive)
}

// TestTimeOffByPersonIDs tests the batched time-off lookup used by snapshot loading
func (suite *PersonRepositoryTestSuite) TestTimeOffByPersonIDs() {
	org := suite.seedOrg()
	a := suite.factories.Person.Create(org.ID)
	b := suite.factories.Person.Create(org.ID)
	c := suite.factories.Person.Create(org.ID)
	for _, p := range []*models.Person{a, b, c} {
		suite.Require().NoError(suite.repo.Create(p))
	}

	mar := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.Require().NoError(suite.timeOff.Create(suite.factories.TimeOff.Create(a.ID, mar, mar.AddDate(0, 0, 6))))
	suite.Require().NoError(suite.timeOff.Create(suite.factories.TimeOff.Create(b.ID, mar, mar)))
	suite.Require().NoError(suite.timeOff.Create(suite.factories.TimeOff.Create(c.ID, mar, mar)))

	ranges, err := suite.timeOff.GetByPersonIDs([]uuid.UUID{a.ID, b.ID})

	suite.NoError(err)
	suite.Len(ranges, 2)
	for _, r := range ranges {
		suite.NotEqual(c.ID, r.PersonID)
	}
}

func TestPersonRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PersonRepositoryTestSuite))
}
