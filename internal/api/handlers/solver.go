package handlers

import (
	"net/http"

	"volunteer-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SolverHandler handles HTTP requests for schedule generation
type SolverHandler struct {
	service service.SolverServiceInterface
}

// NewSolverHandler creates a new solver handler
func NewSolverHandler(service service.SolverServiceInterface) *SolverHandler {
	return &SolverHandler{service: service}
}

// Solve handles POST /api/v1/solver/solve
// @Summary Generate a schedule
// @Description Run the assignment solver over an organization's events in a date window and store the resulting solution. Unfillable slots do not fail the request; they are reported as hard_violations on the stored solution.
// @Tags solver
// @Accept json
// @Produce json
// @Param request body service.SolveRequest true "Solve window"
// @Success 200 {object} service.SolveResponse "Solve completed; solution stored"
// @Failure 400 {object} ErrorResponse "Invalid date range, mode or empty window"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Solve or persistence failure"
// @Router /solver/solve [post]
func (h *SolverHandler) Solve(c *gin.Context) {
	var req service.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Solve(&req)
	if err != nil {
		respondError(c, err, "Failed to generate schedule")
		return
	}

	c.JSON(http.StatusOK, resp)
}
