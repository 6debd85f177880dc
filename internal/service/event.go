package service

import (
	"errors"
	"fmt"
	"time"

	"volunteer-roster-backend/internal/database/models"
	apperrors "volunteer-roster-backend/internal/errors"
	"volunteer-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventService handles business logic for events
type EventService struct {
	repo      repository.EventRepositoryInterface
	orgRepo   repository.OrganizationRepositoryInterface
	validator *validator.Validate
}

// NewEventService creates a new event service
func NewEventService(
	repo repository.EventRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	validator *validator.Validate,
) *EventService {
	return &EventService{
		repo:      repo,
		orgRepo:   orgRepo,
		validator: validator,
	}
}

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	OrganizationID   uuid.UUID      `json:"organization_id" validate:"required"`
	Type             string         `json:"type" validate:"required,max=100"`
	StartTime        time.Time      `json:"start_time" validate:"required"`
	EndTime          time.Time      `json:"end_time" validate:"required"`
	Location         string         `json:"location" validate:"max=200"`
	RoleRequirements map[string]int `json:"role_requirements"`
}

// UpdateEventRequest represents the request to update an event
type UpdateEventRequest struct {
	Type             string         `json:"type" validate:"required,max=100"`
	StartTime        time.Time      `json:"start_time" validate:"required"`
	EndTime          time.Time      `json:"end_time" validate:"required"`
	Location         string         `json:"location" validate:"max=200"`
	RoleRequirements map[string]int `json:"role_requirements"`
}

// EventResponse represents the response for event operations
type EventResponse struct {
	ID               uuid.UUID      `json:"id"`
	OrganizationID   uuid.UUID      `json:"organization_id"`
	Type             string         `json:"type"`
	StartTime        string         `json:"start_time"`
	EndTime          string         `json:"end_time"`
	Location         string         `json:"location"`
	RoleRequirements map[string]int `json:"role_requirements"`
	DemandedSlots    int            `json:"demanded_slots"`
	CreatedAt        string         `json:"created_at"`
	UpdatedAt        string         `json:"updated_at"`
}

// EventListResponse represents a paginated list of events
type EventListResponse struct {
	Events   []EventResponse `json:"events"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new event
func (s *EventService) Create(req *CreateEventRequest) (*EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	reqs, err := buildRoleRequirements(req.StartTime, req.EndTime, req.RoleRequirements)
	if err != nil {
		return nil, err
	}

	if _, err := s.orgRepo.GetByID(req.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	event := &models.Event{
		OrganizationID:   req.OrganizationID,
		Type:             req.Type,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		Location:         req.Location,
		RoleRequirements: reqs,
	}

	if err := s.repo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return s.toResponse(event), nil
}

// GetByID retrieves an event by ID
func (s *EventService) GetByID(id uuid.UUID) (*EventResponse, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return s.toResponse(event), nil
}

// GetByOrganization retrieves an organization's events with pagination
func (s *EventService) GetByOrganization(orgID uuid.UUID, page, pageSize int) (*EventListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	events, total, err := s.repo.GetByOrganizationID(orgID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	responses := make([]EventResponse, len(events))
	for i, event := range events {
		responses[i] = *s.toResponse(&event)
	}

	return &EventListResponse{
		Events:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates an event
func (s *EventService) Update(id uuid.UUID, req *UpdateEventRequest) (*EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	reqs, err := buildRoleRequirements(req.StartTime, req.EndTime, req.RoleRequirements)
	if err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	event.Type = req.Type
	event.StartTime = req.StartTime
	event.EndTime = req.EndTime
	event.Location = req.Location
	event.RoleRequirements = reqs

	if err := s.repo.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return s.toResponse(event), nil
}

// Delete deletes an event and its assignments
func (s *EventService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("failed to get event: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

// buildRoleRequirements validates the event time window and role demand map.
// Zero-count roles are dropped rather than rejected so clients can clear a
// role by sending 0.
func buildRoleRequirements(start, end time.Time, raw map[string]int) (models.RoleCountMap, error) {
	if !end.After(start) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	reqs := make(models.RoleCountMap, len(raw))
	for role, count := range raw {
		if count < 0 {
			return nil, apperrors.ErrNegativeRoleCount
		}
		if count == 0 {
			continue
		}
		normalized := models.NormalizeRole(role)
		if normalized == "" {
			return nil, apperrors.NewValidationError("role_requirements", "role names must be non-empty")
		}
		reqs[normalized] = count
	}
	return reqs, nil
}

// toResponse converts an event model to response
func (s *EventService) toResponse(event *models.Event) *EventResponse {
	reqs := make(map[string]int, len(event.RoleRequirements))
	for role, count := range event.RoleRequirements {
		reqs[string(role)] = count
	}
	demanded := event.RoleRequirements.TotalSlots()
	if len(event.RoleRequirements) == 0 {
		demanded = 1
	}
	return &EventResponse{
		ID:               event.ID,
		OrganizationID:   event.OrganizationID,
		Type:             event.Type,
		StartTime:        event.StartTime.Format(timestampLayout),
		EndTime:          event.EndTime.Format(timestampLayout),
		Location:         event.Location,
		RoleRequirements: reqs,
		DemandedSlots:    demanded,
		CreatedAt:        event.CreatedAt.Format(timestampLayout),
		UpdatedAt:        event.UpdatedAt.Format(timestampLayout),
	}
}
