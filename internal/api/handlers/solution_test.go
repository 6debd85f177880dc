package handlers_test

import (
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

// SolutionHandlerTestSuite defines the test suite for SolutionHandler
type SolutionHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockSolutionSvc *mocks.MockSolutionServiceInterface
	handler         *handlers.SolutionHandler
	router          *gin.Engine
}

func (suite *SolutionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSolutionSvc = mocks.NewMockSolutionServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSolutionHandler(suite.mockSolutionSvc)

	suite.router = gin.New()
	suite.router.GET("/organizations/:id/solutions", suite.handler.ListSolutions)
	suite.router.GET("/solutions/:id", suite.handler.GetSolution)
	suite.router.GET("/solutions/:id/assignments", suite.handler.GetSolutionAssignments)
	suite.router.DELETE("/solutions/:id", suite.handler.DeleteSolution)
}

func (suite *SolutionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SolutionHandlerTestSuite) TestListSolutions_Success() {
	orgID := uuid.New()
	solutions := []service.SolutionResponse{
		{
			ID:              uuid.New(),
			OrganizationID:  orgID,
			FromDate:        "2026-03-01",
			ToDate:          "2026-03-31",
			Mode:            "balanced",
			AssignmentCount: 6,
			HardViolations:  1,
			HealthScore:     83.5,
		},
	}
	suite.mockSolutionSvc.EXPECT().ListByOrganization(orgID).Return(solutions, nil)

	req := httptest.NewRequest(http.MethodGet, "/organizations/"+orgID.String()+"/solutions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.SolutionResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "2026-03-01", got[0].FromDate)
	assert.Equal(suite.T(), 1, got[0].HardViolations)
}

func (suite *SolutionHandlerTestSuite) TestListSolutions_InvalidOrgID() {
	req := httptest.NewRequest(http.MethodGet, "/organizations/not-a-uuid/solutions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid organization ID")
}

func (suite *SolutionHandlerTestSuite) TestListSolutions_OrganizationNotFound() {
	orgID := uuid.New()
	suite.mockSolutionSvc.EXPECT().ListByOrganization(orgID).Return(nil, apperrors.ErrOrganizationNotFound)

	req := httptest.NewRequest(http.MethodGet, "/organizations/"+orgID.String()+"/solutions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *SolutionHandlerTestSuite) TestGetSolution_Success() {
	id := uuid.New()
	suite.mockSolutionSvc.EXPECT().GetByID(id).Return(&service.SolutionResponse{
		ID:          id,
		Mode:        "fast",
		HealthScore: 100,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/solutions/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.SolutionResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), id, got.ID)
	assert.Equal(suite.T(), "fast", got.Mode)
}

func (suite *SolutionHandlerTestSuite) TestGetSolution_NotFound() {
	id := uuid.New()
	suite.mockSolutionSvc.EXPECT().GetByID(id).Return(nil, apperrors.ErrSolutionNotFound)

	req := httptest.NewRequest(http.MethodGet, "/solutions/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *SolutionHandlerTestSuite) TestGetSolutionAssignments_Success() {
	id := uuid.New()
	assignments := []service.AssignmentResponse{
		{ID: uuid.New(), EventID: uuid.New(), PersonID: uuid.New(), Role: "driver", SolutionID: &id},
		{ID: uuid.New(), EventID: uuid.New(), PersonID: uuid.New(), Role: "volunteer", SolutionID: &id},
	}
	suite.mockSolutionSvc.EXPECT().GetAssignments(id).Return(assignments, nil)

	req := httptest.NewRequest(http.MethodGet, "/solutions/"+id.String()+"/assignments", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.AssignmentResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), "driver", got[0].Role)
}

func (suite *SolutionHandlerTestSuite) TestDeleteSolution_Success() {
	id := uuid.New()
	suite.mockSolutionSvc.EXPECT().Delete(id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/solutions/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
	assert.Empty(suite.T(), w.Body.String())
}

func (suite *SolutionHandlerTestSuite) TestDeleteSolution_InvalidID() {
	req := httptest.NewRequest(http.MethodDelete, "/solutions/42", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid solution ID")
}

func TestSolutionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SolutionHandlerTestSuite))
}
