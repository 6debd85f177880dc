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

// AssignmentHandlerTestSuite defines the test suite for AssignmentHandler
type AssignmentHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockAssignmentSvc *mocks.MockAssignmentServiceInterface
	handler           *handlers.AssignmentHandler
	router            *gin.Engine
}

func (suite *AssignmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssignmentSvc = mocks.NewMockAssignmentServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAssignmentHandler(suite.mockAssignmentSvc)

	suite.router = gin.New()
	suite.router.POST("/assignments/toggle", suite.handler.ToggleAssignment)
	suite.router.GET("/events/:id/assignments", suite.handler.GetEventAssignments)
}

func (suite *AssignmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentHandlerTestSuite) postToggle(body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/assignments/toggle", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AssignmentHandlerTestSuite) TestToggle_AssignSuccess() {
	eventID := uuid.New()
	personID := uuid.New()

	suite.mockAssignmentSvc.EXPECT().Toggle(gomock.Any()).DoAndReturn(
		func(req *service.ToggleAssignmentRequest) (*service.ToggleAssignmentResponse, error) {
			assert.Equal(suite.T(), eventID, req.EventID)
			assert.Equal(suite.T(), personID, req.PersonID)
			assert.Equal(suite.T(), "assign", req.Action)
			return &service.ToggleAssignmentResponse{
				Action: "assign",
				Assignment: &service.AssignmentResponse{
					ID:       uuid.New(),
					EventID:  eventID,
					PersonID: personID,
					Role:     "driver",
				},
			}, nil
		})

	w := suite.postToggle(gin.H{
		"event_id":  eventID,
		"person_id": personID,
		"role":      "driver",
		"action":    "assign",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ToggleAssignmentResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "assign", got.Action)
	assert.NotNil(suite.T(), got.Assignment)
	assert.Equal(suite.T(), "driver", got.Assignment.Role)
}

func (suite *AssignmentHandlerTestSuite) TestToggle_UnassignSuccess() {
	suite.mockAssignmentSvc.EXPECT().Toggle(gomock.Any()).Return(
		&service.ToggleAssignmentResponse{Action: "unassign"}, nil)

	w := suite.postToggle(gin.H{
		"event_id":  uuid.New(),
		"person_id": uuid.New(),
		"action":    "unassign",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ToggleAssignmentResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "unassign", got.Action)
	assert.Nil(suite.T(), got.Assignment)
}

func (suite *AssignmentHandlerTestSuite) TestToggle_InvalidAction() {
	suite.mockAssignmentSvc.EXPECT().Toggle(gomock.Any()).Return(nil, apperrors.ErrInvalidToggleAction)

	w := suite.postToggle(gin.H{
		"event_id":  uuid.New(),
		"person_id": uuid.New(),
		"action":    "remove",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "action must be assign or unassign")
}

func (suite *AssignmentHandlerTestSuite) TestToggle_AlreadyAssigned() {
	suite.mockAssignmentSvc.EXPECT().Toggle(gomock.Any()).Return(nil, apperrors.ErrAssignmentExists)

	w := suite.postToggle(gin.H{
		"event_id":  uuid.New(),
		"person_id": uuid.New(),
		"action":    "assign",
	})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestToggle_PersonDeactivated() {
	suite.mockAssignmentSvc.EXPECT().Toggle(gomock.Any()).Return(nil, apperrors.ErrPersonDeactivated)

	w := suite.postToggle(gin.H{
		"event_id":  uuid.New(),
		"person_id": uuid.New(),
		"action":    "assign",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestToggle_EventNotFound() {
	suite.mockAssignmentSvc.EXPECT().Toggle(gomock.Any()).Return(nil, apperrors.ErrEventNotFound)

	w := suite.postToggle(gin.H{
		"event_id":  uuid.New(),
		"person_id": uuid.New(),
		"action":    "assign",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestToggle_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/assignments/toggle", bytes.NewReader([]byte("[]")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid request body")
}

func (suite *AssignmentHandlerTestSuite) TestGetEventAssignments_Success() {
	eventID := uuid.New()
	solutionID := uuid.New()
	assignments := []service.AssignmentResponse{
		{ID: uuid.New(), EventID: eventID, Role: "driver", SolutionID: &solutionID},
		{ID: uuid.New(), EventID: eventID, Role: "volunteer"},
	}
	suite.mockAssignmentSvc.EXPECT().GetByEvent(eventID).Return(assignments, nil)

	req := httptest.NewRequest(http.MethodGet, "/events/"+eventID.String()+"/assignments", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.AssignmentResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
	assert.NotNil(suite.T(), got[0].SolutionID)
	assert.Nil(suite.T(), got[1].SolutionID)
}

func (suite *AssignmentHandlerTestSuite) TestGetEventAssignments_InvalidEventID() {
	req := httptest.NewRequest(http.MethodGet, "/events/abc/assignments", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid event ID")
}

func TestAssignmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentHandlerTestSuite))
}
