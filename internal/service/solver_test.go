package service_test

import (
	"testing"
	"time"

	"volunteer-roster-backend/internal/database/models"
	apperrors "volunteer-roster-backend/internal/errors"
	"volunteer-roster-backend/internal/mocks"
	"volunteer-roster-backend/internal/scheduler"
	"volunteer-roster-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type SolverServiceTestSuiteDeps struct {
	ctrl             *gomock.Controller
	mockOrgRepo      *mocks.MockOrganizationRepositoryInterface
	mockPersonRepo   *mocks.MockPersonRepositoryInterface
	mockEventRepo    *mocks.MockEventRepositoryInterface
	mockTimeOffRepo  *mocks.MockTimeOffRepositoryInterface
	mockSolutionRepo *mocks.MockSolutionRepositoryInterface
	solverService    *service.SolverService
}

func newSolverServiceDeps(t *testing.T) *SolverServiceTestSuiteDeps {
	ctrl := gomock.NewController(t)
	deps := &SolverServiceTestSuiteDeps{
		ctrl:             ctrl,
		mockOrgRepo:      mocks.NewMockOrganizationRepositoryInterface(ctrl),
		mockPersonRepo:   mocks.NewMockPersonRepositoryInterface(ctrl),
		mockEventRepo:    mocks.NewMockEventRepositoryInterface(ctrl),
		mockTimeOffRepo:  mocks.NewMockTimeOffRepositoryInterface(ctrl),
		mockSolutionRepo: mocks.NewMockSolutionRepositoryInterface(ctrl),
	}
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	deps.solverService = service.NewSolverService(
		deps.mockOrgRepo,
		deps.mockPersonRepo,
		deps.mockEventRepo,
		deps.mockTimeOffRepo,
		deps.mockSolutionRepo,
		scheduler.DefaultConfig(),
		validator.New(),
		logger,
	)
	return deps
}

func solverTestEvent(orgID uuid.UUID, start time.Time, reqs models.RoleCountMap) models.Event {
	return models.Event{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		OrganizationID:   orgID,
		Type:             "service",
		StartTime:        start,
		EndTime:          start.Add(2 * time.Hour),
		RoleRequirements: reqs,
	}
}

func solverTestPerson(orgID uuid.UUID, roles ...models.RoleID) models.Person {
	return models.Person{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: orgID,
		Name:           "Volunteer",
		Roles:          models.RoleList(roles),
		IsActive:       true,
	}
}

func TestSolverService_Solve_Success(t *testing.T) {
	deps := newSolverServiceDeps(t)
	defer deps.ctrl.Finish()

	orgID := uuid.New()
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	events := []models.Event{solverTestEvent(orgID, start, models.RoleCountMap{models.RoleVolunteer: 2})}
	people := []models.Person{
		solverTestPerson(orgID, models.RoleVolunteer),
		solverTestPerson(orgID, models.RoleVolunteer),
		solverTestPerson(orgID, models.RoleVolunteer),
	}

	deps.mockOrgRepo.EXPECT().GetByID(orgID).Return(&models.Organization{}, nil)
	deps.mockEventRepo.EXPECT().GetByWindow(orgID, gomock.Any(), gomock.Any()).Return(events, nil)
	deps.mockPersonRepo.EXPECT().GetActiveByOrganization(orgID).Return(people, nil)
	deps.mockTimeOffRepo.EXPECT().GetByPersonIDs(gomock.Any()).Return(nil, nil)
	deps.mockSolutionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(solution *models.Solution, assignments []models.Assignment) error {
			assert.Equal(t, orgID, solution.OrganizationID)
			assert.Equal(t, 2, solution.AssignmentCount)
			assert.Equal(t, 0, solution.HardViolations)
			assert.Len(t, assignments, 2)
			for _, a := range assignments {
				assert.Equal(t, orgID, a.OrganizationID)
				assert.Equal(t, string(models.RoleVolunteer), a.Role)
			}
			solution.ID = uuid.New()
			return nil
		})

	resp, err := deps.solverService.Solve(&service.SolveRequest{
		OrganizationID: orgID,
		FromDate:       "2026-03-01",
		ToDate:         "2026-03-31",
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, 2, resp.AssignmentCount)
	assert.Equal(t, 0, resp.Metrics.HardViolations)
	assert.InDelta(t, 100.0, resp.Metrics.HealthScore, 1e-6)
	assert.Contains(t, resp.Message, "All 2 required slots filled")
}

func TestSolverService_Solve_ShortfallMessage(t *testing.T) {
	deps := newSolverServiceDeps(t)
	defer deps.ctrl.Finish()

	orgID := uuid.New()
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	events := []models.Event{solverTestEvent(orgID, start, models.RoleCountMap{"driver": 2})}
	// One eligible driver for two required slots.
	people := []models.Person{solverTestPerson(orgID, "driver")}

	deps.mockOrgRepo.EXPECT().GetByID(orgID).Return(&models.Organization{}, nil)
	deps.mockEventRepo.EXPECT().GetByWindow(orgID, gomock.Any(), gomock.Any()).Return(events, nil)
	deps.mockPersonRepo.EXPECT().GetActiveByOrganization(orgID).Return(people, nil)
	deps.mockTimeOffRepo.EXPECT().GetByPersonIDs(gomock.Any()).Return(nil, nil)
	deps.mockSolutionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := deps.solverService.Solve(&service.SolveRequest{
		OrganizationID: orgID,
		FromDate:       "2026-03-01",
		ToDate:         "2026-03-31",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.AssignmentCount)
	assert.Equal(t, 1, resp.Metrics.HardViolations)
	assert.Contains(t, resp.Message, "Filled 1 of 2 required slots")
	assert.Contains(t, resp.Message, "1 driver")
}

func TestSolverService_Solve_InvalidDateRange(t *testing.T) {
	deps := newSolverServiceDeps(t)
	defer deps.ctrl.Finish()

	resp, err := deps.solverService.Solve(&service.SolveRequest{
		OrganizationID: uuid.New(),
		FromDate:       "2026-04-01",
		ToDate:         "2026-03-01",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
}

func TestSolverService_Solve_MalformedDate(t *testing.T) {
	deps := newSolverServiceDeps(t)
	defer deps.ctrl.Finish()

	resp, err := deps.solverService.Solve(&service.SolveRequest{
		OrganizationID: uuid.New(),
		FromDate:       "March 1st",
		ToDate:         "2026-03-31",
	})

	assert.Nil(t, resp)
	assert.True(t, apperrors.IsValidation(err))
}

func TestSolverService_Solve_InvalidMode(t *testing.T) {
	deps := newSolverServiceDeps(t)
	defer deps.ctrl.Finish()

	resp, err := deps.solverService.Solve(&service.SolveRequest{
		OrganizationID: uuid.New(),
		FromDate:       "2026-03-01",
		ToDate:         "2026-03-31",
		Mode:           "thorough",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSolveMode)
}

func TestSolverService_Solve_UnknownOrganization(t *testing.T) {
	deps := newSolverServiceDeps(t)
	defer deps.ctrl.Finish()

	orgID := uuid.New()
	deps.mockOrgRepo.EXPECT().GetByID(orgID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := deps.solverService.Solve(&service.SolveRequest{
		OrganizationID: orgID,
		FromDate:       "2026-03-01",
		ToDate:         "2026-03-31",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrOrganizationNotFound)
}

func TestSolverService_Solve_NoEventsInRange(t *testing.T) {
	deps := newSolverServiceDeps(t)
	defer deps.ctrl.Finish()

	orgID := uuid.New()
	deps.mockOrgRepo.EXPECT().GetByID(orgID).Return(&models.Organization{}, nil)
	deps.mockEventRepo.EXPECT().GetByWindow(orgID, gomock.Any(), gomock.Any()).Return(nil, nil)
	deps.mockPersonRepo.EXPECT().GetActiveByOrganization(orgID).Return(nil, nil)

	resp, err := deps.solverService.Solve(&service.SolveRequest{
		OrganizationID: orgID,
		FromDate:       "2026-03-01",
		ToDate:         "2026-03-31",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrNoEventsInRange)
}

func TestSolverService_Solve_PersistenceFailure(t *testing.T) {
	deps := newSolverServiceDeps(t)
	defer deps.ctrl.Finish()

	orgID := uuid.New()
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	events := []models.Event{solverTestEvent(orgID, start, nil)}
	people := []models.Person{solverTestPerson(orgID)}

	deps.mockOrgRepo.EXPECT().GetByID(orgID).Return(&models.Organization{}, nil)
	deps.mockEventRepo.EXPECT().GetByWindow(orgID, gomock.Any(), gomock.Any()).Return(events, nil)
	deps.mockPersonRepo.EXPECT().GetActiveByOrganization(orgID).Return(people, nil)
	deps.mockTimeOffRepo.EXPECT().GetByPersonIDs(gomock.Any()).Return(nil, nil)
	deps.mockSolutionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(gorm.ErrInvalidTransaction)

	resp, err := deps.solverService.Solve(&service.SolveRequest{
		OrganizationID: orgID,
		FromDate:       "2026-03-01",
		ToDate:         "2026-03-31",
	})

	assert.Nil(t, resp)
	assert.True(t, apperrors.IsPersistence(err))
}

func TestSolverService_Solve_BlockedPeopleStayUnassigned(t *testing.T) {
	deps := newSolverServiceDeps(t)
	defer deps.ctrl.Finish()

	orgID := uuid.New()
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	events := []models.Event{solverTestEvent(orgID, start, models.RoleCountMap{models.RoleVolunteer: 2})}
	people := []models.Person{
		solverTestPerson(orgID, models.RoleVolunteer),
		solverTestPerson(orgID, models.RoleVolunteer),
	}
	blocked := []models.TimeOffRange{
		{PersonID: people[0].ID, StartDate: start.AddDate(0, 0, -1), EndDate: start.AddDate(0, 0, 1)},
		{PersonID: people[1].ID, StartDate: start, EndDate: start},
	}

	deps.mockOrgRepo.EXPECT().GetByID(orgID).Return(&models.Organization{}, nil)
	deps.mockEventRepo.EXPECT().GetByWindow(orgID, gomock.Any(), gomock.Any()).Return(events, nil)
	deps.mockPersonRepo.EXPECT().GetActiveByOrganization(orgID).Return(people, nil)
	deps.mockTimeOffRepo.EXPECT().GetByPersonIDs(gomock.Any()).Return(blocked, nil)
	deps.mockSolutionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(solution *models.Solution, assignments []models.Assignment) error {
			assert.Empty(t, assignments)
			return nil
		})

	resp, err := deps.solverService.Solve(&service.SolveRequest{
		OrganizationID: orgID,
		FromDate:       "2026-03-01",
		ToDate:         "2026-03-31",
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, resp.AssignmentCount)
	assert.Equal(t, 2, resp.Metrics.HardViolations)
}
