package handlers

import (
	"net/http"
	"strconv"

	"volunteer-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PersonHandler handles HTTP requests for people and their time-off
type PersonHandler struct {
	service service.PersonServiceInterface
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(service service.PersonServiceInterface) *PersonHandler {
	return &PersonHandler{service: service}
}

// CreatePerson handles POST /api/v1/people
// @Summary Create a new person
// @Description Create a volunteer with a role set in an organization
// @Tags people
// @Accept json
// @Produce json
// @Param person body service.CreatePersonRequest true "Person data"
// @Success 201 {object} service.PersonResponse "Successfully created person"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /people [post]
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req service.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	person, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create person")
		return
	}

	c.JSON(http.StatusCreated, person)
}

// GetPerson handles GET /api/v1/people/:id
// @Summary Get person by ID
// @Description Get a specific person by their UUID
// @Tags people
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Success 200 {object} service.PersonResponse "Successfully retrieved person"
// @Failure 400 {object} ErrorResponse "Invalid person ID"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /people/{id} [get]
func (h *PersonHandler) GetPerson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person ID: invalid UUID format"})
		return
	}

	person, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get person")
		return
	}

	c.JSON(http.StatusOK, person)
}

// ListPeopleByOrganization handles GET /api/v1/organizations/:id/people
// @Summary List an organization's people
// @Description Get an organization's people with pagination
// @Tags people
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.PersonListResponse "Successfully retrieved people"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /organizations/{id}/people [get]
func (h *PersonHandler) ListPeopleByOrganization(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	people, err := h.service.GetByOrganization(orgID, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list people")
		return
	}

	c.JSON(http.StatusOK, people)
}

// UpdatePerson handles PUT /api/v1/people/:id
// @Summary Update a person
// @Description Update a person's details, role set or active flag
// @Tags people
// @Accept json
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Param person body service.UpdatePersonRequest true "Person data"
// @Success 200 {object} service.PersonResponse "Successfully updated person"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /people/{id} [put]
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person ID: invalid UUID format"})
		return
	}

	var req service.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	person, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update person")
		return
	}

	c.JSON(http.StatusOK, person)
}

// DeletePerson handles DELETE /api/v1/people/:id
// @Summary Delete a person
// @Description Delete a person, or deactivate them when assignments reference them
// @Tags people
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Success 204 "Successfully deleted or deactivated"
// @Failure 400 {object} ErrorResponse "Invalid person ID"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /people/{id} [delete]
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "Failed to delete person")
		return
	}

	c.Status(http.StatusNoContent)
}

// AddTimeOff handles POST /api/v1/people/:id/time-off
// @Summary Add a time-off range
// @Description Record an inclusive blocked-date range for a person
// @Tags time-off
// @Accept json
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Param time_off body service.AddTimeOffRequest true "Time-off range"
// @Success 201 {object} service.TimeOffResponse "Successfully added time-off"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /people/{id}/time-off [post]
func (h *PersonHandler) AddTimeOff(c *gin.Context) {
	personID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person ID: invalid UUID format"})
		return
	}

	var req service.AddTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	timeOff, err := h.service.AddTimeOff(personID, &req)
	if err != nil {
		respondError(c, err, "Failed to add time-off")
		return
	}

	c.JSON(http.StatusCreated, timeOff)
}

// GetTimeOff handles GET /api/v1/people/:id/time-off
// @Summary List a person's time-off
// @Description Get all blocked-date ranges for a person
// @Tags time-off
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Success 200 {array} service.TimeOffResponse "Successfully retrieved time-off"
// @Failure 400 {object} ErrorResponse "Invalid person ID"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /people/{id}/time-off [get]
func (h *PersonHandler) GetTimeOff(c *gin.Context) {
	personID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person ID: invalid UUID format"})
		return
	}

	ranges, err := h.service.GetTimeOff(personID)
	if err != nil {
		respondError(c, err, "Failed to get time-off")
		return
	}

	c.JSON(http.StatusOK, ranges)
}

// DeleteTimeOff handles DELETE /api/v1/time-off/:id
// @Summary Delete a time-off range
// @Description Remove a blocked-date range
// @Tags time-off
// @Produce json
// @Param id path string true "Time-off range ID (UUID)"
// @Success 204 "Successfully deleted time-off"
// @Failure 400 {object} ErrorResponse "Invalid time-off ID"
// @Failure 404 {object} ErrorResponse "Time-off range not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /time-off/{id} [delete]
func (h *PersonHandler) DeleteTimeOff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time-off ID: invalid UUID format"})
		return
	}

	if err := h.service.DeleteTimeOff(id); err != nil {
		respondError(c, err, "Failed to delete time-off")
		return
	}

	c.Status(http.StatusNoContent)
}
