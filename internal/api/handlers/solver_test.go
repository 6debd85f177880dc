package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"volunteer-roster-backend/internal/api/handlers"
	apperrors "volunteer-roster-backend/internal/errors"
	"volunteer-roster-backend/internal/mocks"
	"volunteer-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SolverHandlerTestSuite defines the test suite for SolverHandler
type SolverHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockSolverSvc *mocks.MockSolverServiceInterface
	handler       *handlers.SolverHandler
	router        *gin.Engine
}

func (suite *SolverHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSolverSvc = mocks.NewMockSolverServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSolverHandler(suite.mockSolverSvc)

	suite.router = gin.New()
	suite.router.POST("/solver/solve", suite.handler.Solve)
}

func (suite *SolverHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SolverHandlerTestSuite) postSolve(body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/solver/solve", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SolverHandlerTestSuite) TestSolve_Success() {
	orgID := uuid.New()
	solutionID := uuid.New()

	suite.mockSolverSvc.EXPECT().Solve(gomock.Any()).DoAndReturn(
		func(req *service.SolveRequest) (*service.SolveResponse, error) {
			assert.Equal(suite.T(), orgID, req.OrganizationID)
			assert.Equal(suite.T(), "2026-03-01", req.FromDate)
			assert.Equal(suite.T(), "2026-03-31", req.ToDate)
			assert.Equal(suite.T(), "balanced", req.Mode)
			return &service.SolveResponse{
				SolutionID:      solutionID,
				AssignmentCount: 4,
				Metrics: service.SolveMetrics{
					HardViolations: 0,
					HealthScore:    100,
					SolveMS:        12,
				},
				Message: "All 4 required slots filled.",
			}, nil
		})

	w := suite.postSolve(gin.H{
		"org_id":    orgID,
		"from_date": "2026-03-01",
		"to_date":   "2026-03-31",
		"mode":      "balanced",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.SolveResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), solutionID, got.SolutionID)
	assert.Equal(suite.T(), 4, got.AssignmentCount)
	assert.Equal(suite.T(), 0, got.Metrics.HardViolations)
	assert.Equal(suite.T(), "All 4 required slots filled.", got.Message)
}

func (suite *SolverHandlerTestSuite) TestSolve_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/solver/solve", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid request body")
}

func (suite *SolverHandlerTestSuite) TestSolve_InvalidDateRange() {
	suite.mockSolverSvc.EXPECT().Solve(gomock.Any()).Return(nil, apperrors.ErrInvalidDateRange)

	w := suite.postSolve(gin.H{
		"org_id":    uuid.New(),
		"from_date": "2026-03-31",
		"to_date":   "2026-03-01",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "from_date must not be after to_date")
}

func (suite *SolverHandlerTestSuite) TestSolve_NoEventsInWindow() {
	suite.mockSolverSvc.EXPECT().Solve(gomock.Any()).Return(nil, apperrors.ErrNoEventsInRange)

	w := suite.postSolve(gin.H{
		"org_id":    uuid.New(),
		"from_date": "2026-03-01",
		"to_date":   "2026-03-31",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "no events in the requested window")
}

func (suite *SolverHandlerTestSuite) TestSolve_OrganizationNotFound() {
	suite.mockSolverSvc.EXPECT().Solve(gomock.Any()).Return(nil, apperrors.ErrOrganizationNotFound)

	w := suite.postSolve(gin.H{
		"org_id":    uuid.New(),
		"from_date": "2026-03-01",
		"to_date":   "2026-03-31",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *SolverHandlerTestSuite) TestSolve_PersistenceFailure() {
	suite.mockSolverSvc.EXPECT().Solve(gomock.Any()).Return(nil,
		apperrors.NewPersistenceError("save solution", assert.AnError))

	w := suite.postSolve(gin.H{
		"org_id":    uuid.New(),
		"from_date": "2026-03-01",
		"to_date":   "2026-03-31",
	})

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Failed to generate schedule")
}

func TestSolverHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SolverHandlerTestSuite))
}
