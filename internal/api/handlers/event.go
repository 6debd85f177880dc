package handlers

import (
	"net/http"
	"strconv"

	"volunteer-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventHandler handles HTTP requests for events
type EventHandler struct {
	service service.EventServiceInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(service service.EventServiceInterface) *EventHandler {
	return &EventHandler{service: service}
}

// CreateEvent handles POST /api/v1/events
// @Summary Create a new event
// @Description Create an event with per-role required headcounts
// @Tags events
// @Accept json
// @Produce json
// @Param event body service.CreateEventRequest true "Event data"
// @Success 201 {object} service.EventResponse "Successfully created event"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	event, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetEvent handles GET /api/v1/events/:id
// @Summary Get event by ID
// @Description Get a specific event by its UUID
// @Tags events
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} service.EventResponse "Successfully retrieved event"
// @Failure 400 {object} ErrorResponse "Invalid event ID"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID: invalid UUID format"})
		return
	}

	event, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get event")
		return
	}

	c.JSON(http.StatusOK, event)
}

// ListEventsByOrganization handles GET /api/v1/organizations/:id/events
// @Summary List an organization's events
// @Description Get an organization's events with pagination
// @Tags events
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.EventListResponse "Successfully retrieved events"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /organizations/{id}/events [get]
func (h *EventHandler) ListEventsByOrganization(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	events, err := h.service.GetByOrganization(orgID, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list events")
		return
	}

	c.JSON(http.StatusOK, events)
}

// UpdateEvent handles PUT /api/v1/events/:id
// @Summary Update an event
// @Description Update an event's details and role requirements
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param event body service.UpdateEventRequest true "Event data"
// @Success 200 {object} service.EventResponse "Successfully updated event"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID: invalid UUID format"})
		return
	}

	var req service.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	event, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update event")
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent handles DELETE /api/v1/events/:id
// @Summary Delete an event
// @Description Delete an event and its assignments
// @Tags events
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 204 "Successfully deleted event"
// @Failure 400 {object} ErrorResponse "Invalid event ID"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err, "Failed to delete event")
		return
	}

	c.Status(http.StatusNoContent)
}
