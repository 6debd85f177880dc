package handlers

import (
	"net/http"

	"volunteer-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SolutionHandler handles HTTP requests for stored solutions
type SolutionHandler struct {
	service service.SolutionServiceInterface
}

// NewSolutionHandler creates a new solution handler
func NewSolutionHandler(service service.SolutionServiceInterface) *SolutionHandler {
	return &SolutionHandler{service: service}
}

// ListSolutions handles GET /api/v1/organizations/:id/solutions
// @Summary List an organization's solutions
// @Description Get all stored solutions with their metrics, newest first
// @Tags solutions
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.SolutionResponse "Successfully retrieved solutions"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /organizations/{id}/solutions [get]
func (h *SolutionHandler) ListSolutions(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	solutions, err := h.service.ListByOrganization(orgID)
	if err != nil {
		respondError(c, err, "Failed to list solutions")
		return
	}

	c.JSON(http.StatusOK, solutions)
}

// GetSolution handles GET /api/v1/solutions/:id
// @Summary Get solution by ID
// @Description Get one stored solution and its metrics
// @Tags solutions
// @Produce json
// @Param id path string true "Solution ID (UUID)"
// @Success 200 {object} service.SolutionResponse "Successfully retrieved solution"
// @Failure 400 {object} ErrorResponse "Invalid solution ID"
// @Failure 404 {object} ErrorResponse "Solution not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /solutions/{id} [get]
func (h *SolutionHandler) GetSolution(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid solution ID: invalid UUID format"})
		return
	}

	solution, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get solution")
		return
	}

	c.JSON(http.StatusOK, solution)
}

// GetSolutionAssignments handles GET /api/v1/solutions/:id/assignments
// @Summary Get a solution's assignments
// @Description Get the assignments of a solution with event and person details, ordered by event start
// @Tags solutions
// @Produce json
// @Param id path string true "Solution ID (UUID)"
// @Success 200 {array} service.AssignmentResponse "Successfully retrieved assignments"
// @Failure 400 {object} ErrorResponse "Invalid solution ID"
// @Failure 404 {object} ErrorResponse "Solution not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /solutions/{id}/assignments [get]
func (h *SolutionHandler) GetSolutionAssignments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid solution ID: invalid UUID format"})
		return
	}

	assignments, err := h.service.GetAssignments(id)
	if err != nil {
		respondError(c, err, "Failed to get assignments")
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// DeleteSolution handles DELETE /api/v1/solutions/:id
// @Summary Delete a solution
// @Description Delete a solution and its solver-generated assignments; manual assignments are kept. Deleting an unknown id succeeds.
// @Tags solutions
// @Produce json
// @Param id path string true "Solution ID (UUID)"
// @Success 204 "Successfully deleted solution"
// @Failure 400 {object} ErrorResponse "Invalid solution ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /solutions/{id} [delete]
func (h *SolutionHandler) DeleteSolution(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid solution ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "Failed to delete solution")
		return
	}

	c.Status(http.StatusNoContent)
}
