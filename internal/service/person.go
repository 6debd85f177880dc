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

// PersonService handles business logic for people and their time-off
type PersonService struct {
	repo        repository.PersonRepositoryInterface
	timeOffRepo repository.TimeOffRepositoryInterface
	orgRepo     repository.OrganizationRepositoryInterface
	validator   *validator.Validate
}

// NewPersonService creates a new person service
func NewPersonService(
	repo repository.PersonRepositoryInterface,
	timeOffRepo repository.TimeOffRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	validator *validator.Validate,
) *PersonService {
	return &PersonService{
		repo:        repo,
		timeOffRepo: timeOffRepo,
		orgRepo:     orgRepo,
		validator:   validator,
	}
}

// CreatePersonRequest represents the request to create a person
type CreatePersonRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	Name           string    `json:"name" validate:"required,max=200"`
	Email          string    `json:"email" validate:"omitempty,email,max=255"`
	Roles          []string  `json:"roles"`
}

// UpdatePersonRequest represents the request to update a person
type UpdatePersonRequest struct {
	Name     string   `json:"name" validate:"required,max=200"`
	Email    string   `json:"email" validate:"omitempty,email,max=255"`
	Roles    []string `json:"roles"`
	IsActive *bool    `json:"is_active,omitempty"`
}

// AddTimeOffRequest represents the request to add a blocked-date range
type AddTimeOffRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Reason    string `json:"reason" validate:"max=200"`
}

// PersonResponse represents the response for person operations
type PersonResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Roles          []string  `json:"roles"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// PersonListResponse represents a paginated list of people
type PersonListResponse struct {
	People   []PersonResponse `json:"people"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// TimeOffResponse represents the response for time-off operations
type TimeOffResponse struct {
	ID        uuid.UUID `json:"id"`
	PersonID  uuid.UUID `json:"person_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Reason    string    `json:"reason"`
}

// Create creates a new person
func (s *PersonService) Create(req *CreatePersonRequest) (*PersonResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.orgRepo.GetByID(req.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	person := &models.Person{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Email:          req.Email,
		Roles:          normalizeRoles(req.Roles),
		IsActive:       true,
	}

	if err := s.repo.Create(person); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	return s.toResponse(person), nil
}

// GetByID retrieves a person by ID
func (s *PersonService) GetByID(id uuid.UUID) (*PersonResponse, error) {
	person, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	return s.toResponse(person), nil
}

// GetByOrganization retrieves an organization's people with pagination
func (s *PersonService) GetByOrganization(orgID uuid.UUID, page, pageSize int) (*PersonListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	people, total, err := s.repo.GetByOrganizationID(orgID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get people: %w", err)
	}

	responses := make([]PersonResponse, len(people))
	for i, person := range people {
		responses[i] = *s.toResponse(&person)
	}

	return &PersonListResponse{
		People:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a person's details and role set
func (s *PersonService) Update(id uuid.UUID, req *UpdatePersonRequest) (*PersonResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	person, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	person.Name = req.Name
	person.Email = req.Email
	person.Roles = normalizeRoles(req.Roles)
	if req.IsActive != nil {
		person.IsActive = *req.IsActive
	}

	if err := s.repo.Update(person); err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}

	return s.toResponse(person), nil
}

// Delete removes a person. People referenced by assignments keep their
// history: they are deactivated instead of hard-deleted, so stored solutions
// stay displayable.
func (s *PersonService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPersonNotFound
		}
		return fmt.Errorf("failed to get person: %w", err)
	}

	count, err := s.repo.CountAssignments(id)
	if err != nil {
		return fmt.Errorf("failed to count assignments: %w", err)
	}
	if count > 0 {
		if err := s.repo.Deactivate(id); err != nil {
			return fmt.Errorf("failed to deactivate person: %w", err)
		}
		return nil
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	return nil
}

// AddTimeOff records an inclusive blocked-date range for a person
func (s *PersonService) AddTimeOff(personID uuid.UUID, req *AddTimeOffRequest) (*TimeOffResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("start_date", "must be a YYYY-MM-DD date")
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("end_date", "must be a YYYY-MM-DD date")
	}
	if start.After(end) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if _, err := s.repo.GetByID(personID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	rng := &models.TimeOffRange{
		PersonID:  personID,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	}

	if err := s.timeOffRepo.Create(rng); err != nil {
		return nil, fmt.Errorf("failed to create time-off range: %w", err)
	}

	return s.toTimeOffResponse(rng), nil
}

// GetTimeOff retrieves a person's blocked-date ranges
func (s *PersonService) GetTimeOff(personID uuid.UUID) ([]TimeOffResponse, error) {
	if _, err := s.repo.GetByID(personID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	ranges, err := s.timeOffRepo.GetByPersonID(personID)
	if err != nil {
		return nil, fmt.Errorf("failed to get time-off ranges: %w", err)
	}

	responses := make([]TimeOffResponse, len(ranges))
	for i, rng := range ranges {
		responses[i] = *s.toTimeOffResponse(&rng)
	}
	return responses, nil
}

// DeleteTimeOff removes a blocked-date range
func (s *PersonService) DeleteTimeOff(id uuid.UUID) error {
	_, err := s.timeOffRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTimeOffNotFound
		}
		return fmt.Errorf("failed to get time-off range: %w", err)
	}

	if err := s.timeOffRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete time-off range: %w", err)
	}

	return nil
}

// normalizeRoles lowercases, trims and de-duplicates a role list
func normalizeRoles(raw []string) models.RoleList {
	roles := make(models.RoleList, 0, len(raw))
	seen := make(map[models.RoleID]bool, len(raw))
	for _, r := range raw {
		role := models.NormalizeRole(r)
		if role == "" || seen[role] {
			continue
		}
		seen[role] = true
		roles = append(roles, role)
	}
	return roles
}

// toResponse converts a person model to response
func (s *PersonService) toResponse(person *models.Person) *PersonResponse {
	roles := make([]string, len(person.Roles))
	for i, r := range person.Roles {
		roles[i] = string(r)
	}
	return &PersonResponse{
		ID:             person.ID,
		OrganizationID: person.OrganizationID,
		Name:           person.Name,
		Email:          person.Email,
		Roles:          roles,
		IsActive:       person.IsActive,
		CreatedAt:      person.CreatedAt.Format(timestampLayout),
		UpdatedAt:      person.UpdatedAt.Format(timestampLayout),
	}
}

// toTimeOffResponse converts a time-off model to response
func (s *PersonService) toTimeOffResponse(rng *models.TimeOffRange) *TimeOffResponse {
	return &TimeOffResponse{
		ID:        rng.ID,
		PersonID:  rng.PersonID,
		StartDate: rng.StartDate.Format(dateLayout),
		EndDate:   rng.EndDate.Format(dateLayout),
		Reason:    rng.Reason,
	}
}
