package handlers

import (
	"net/http"

	"volunteer-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentHandler handles HTTP requests for manual assignments
type AssignmentHandler struct {
	service service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(service service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// ToggleAssignment handles POST /api/v1/assignments/toggle
// @Summary Manually assign or unassign a person
// @Description Toggle a manual assignment on an event. Manual assignments respect the no-double-booking constraint but skip fairness optimization and survive solution deletion.
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body service.ToggleAssignmentRequest true "Toggle request"
// @Success 200 {object} service.ToggleAssignmentResponse "Toggle applied"
// @Failure 400 {object} ErrorResponse "Invalid action or deactivated person"
// @Failure 404 {object} ErrorResponse "Event, person or assignment not found"
// @Failure 409 {object} ErrorResponse "Person already assigned to this event"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /assignments/toggle [post]
func (h *AssignmentHandler) ToggleAssignment(c *gin.Context) {
	var req service.ToggleAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Toggle(&req)
	if err != nil {
		respondError(c, err, "Failed to toggle assignment")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetEventAssignments handles GET /api/v1/events/:id/assignments
// @Summary List an event's assignments
// @Description Get all assignments on an event, solver-generated and manual
// @Tags assignments
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {array} service.AssignmentResponse "Successfully retrieved assignments"
// @Failure 400 {object} ErrorResponse "Invalid event ID"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events/{id}/assignments [get]
func (h *AssignmentHandler) GetEventAssignments(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID: invalid UUID format"})
		return
	}

	assignments, err := h.service.GetByEvent(eventID)
	if err != nil {
		respondError(c, err, "Failed to get assignments")
		return
	}

	c.JSON(http.StatusOK, assignments)
}
