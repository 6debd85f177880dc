package service

import (
	"errors"
	"fmt"

	"volunteer-roster-backend/internal/database/models"
	apperrors "volunteer-roster-backend/internal/errors"
	"volunteer-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Toggle actions accepted by the manual assignment endpoint.
const (
	ToggleActionAssign   = "assign"
	ToggleActionUnassign = "unassign"
)

// AssignmentService handles manual assignment toggling outside the solver.
// Manual assignments respect the same hard constraints as the solver (no
// double booking on an event) but skip fairness optimization: an admin
// placing someone by hand knows what they want.
type AssignmentService struct {
	repo       repository.AssignmentRepositoryInterface
	eventRepo  repository.EventRepositoryInterface
	personRepo repository.PersonRepositoryInterface
	validator  *validator.Validate
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	repo repository.AssignmentRepositoryInterface,
	eventRepo repository.EventRepositoryInterface,
	personRepo repository.PersonRepositoryInterface,
	validator *validator.Validate,
) *AssignmentService {
	return &AssignmentService{
		repo:       repo,
		eventRepo:  eventRepo,
		personRepo: personRepo,
		validator:  validator,
	}
}

// ToggleAssignmentRequest represents the request to manually assign or
// unassign a person on an event
type ToggleAssignmentRequest struct {
	EventID  uuid.UUID `json:"event_id" validate:"required"`
	PersonID uuid.UUID `json:"person_id" validate:"required"`
	Role     string    `json:"role,omitempty" validate:"max=100"`
	Action   string    `json:"action" validate:"required"`
}

// ToggleAssignmentResponse represents the result of a toggle
type ToggleAssignmentResponse struct {
	Action     string              `json:"action"`
	Assignment *AssignmentResponse `json:"assignment,omitempty"`
}

// Toggle assigns or unassigns a person on an event
func (s *AssignmentService) Toggle(req *ToggleAssignmentRequest) (*ToggleAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Action != ToggleActionAssign && req.Action != ToggleActionUnassign {
		return nil, apperrors.ErrInvalidToggleAction
	}

	event, err := s.eventRepo.GetByID(req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	person, err := s.personRepo.GetByID(req.PersonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	if person.OrganizationID != event.OrganizationID {
		return nil, apperrors.NewValidationError("person_id", "person belongs to a different organization")
	}

	if req.Action == ToggleActionUnassign {
		return s.unassign(event, person)
	}
	return s.assign(event, person, req.Role)
}

// GetByEvent retrieves all assignments for an event
func (s *AssignmentService) GetByEvent(eventID uuid.UUID) ([]AssignmentResponse, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	assignments, err := s.repo.GetByEventID(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = toAssignmentResponse(&assignments[i])
	}
	return responses, nil
}

func (s *AssignmentService) assign(event *models.Event, person *models.Person, role string) (*ToggleAssignmentResponse, error) {
	if !person.IsActive {
		return nil, apperrors.ErrPersonDeactivated
	}

	existing, err := s.repo.GetByEventAndPerson(event.ID, person.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing assignment: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAssignmentExists
	}

	normalized := models.NormalizeRole(role)
	if normalized == "" {
		normalized = models.RoleVolunteer
	}

	assignment := &models.Assignment{
		OrganizationID: event.OrganizationID,
		EventID:        event.ID,
		PersonID:       person.ID,
		Role:           string(normalized),
	}
	if err := s.repo.Create(assignment); err != nil {
		return nil, apperrors.NewPersistenceError("create assignment", err)
	}

	assignment.Event = *event
	assignment.Person = *person
	resp := toAssignmentResponse(assignment)
	return &ToggleAssignmentResponse{
		Action:     ToggleActionAssign,
		Assignment: &resp,
	}, nil
}

func (s *AssignmentService) unassign(event *models.Event, person *models.Person) (*ToggleAssignmentResponse, error) {
	if _, err := s.repo.GetByEventAndPerson(event.ID, person.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	if err := s.repo.DeleteByEventAndPerson(event.ID, person.ID); err != nil {
		return nil, apperrors.NewPersistenceError("delete assignment", err)
	}

	return &ToggleAssignmentResponse{Action: ToggleActionUnassign}, nil
}
