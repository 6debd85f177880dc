package service

import (
	"errors"
	"fmt"

	"volunteer-roster-backend/internal/database/models"
	apperrors "volunteer-roster-backend/internal/errors"
	"volunteer-roster-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SolutionService handles read and delete operations on stored solutions
type SolutionService struct {
	repo    repository.SolutionRepositoryInterface
	orgRepo repository.OrganizationRepositoryInterface
}

// NewSolutionService creates a new solution service
func NewSolutionService(
	repo repository.SolutionRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
) *SolutionService {
	return &SolutionService{
		repo:    repo,
		orgRepo: orgRepo,
	}
}

// SolutionResponse represents the response for solution operations
type SolutionResponse struct {
	ID              uuid.UUID `json:"id"`
	OrganizationID  uuid.UUID `json:"organization_id"`
	FromDate        string    `json:"from_date"`
	ToDate          string    `json:"to_date"`
	Mode            string    `json:"mode"`
	AssignmentCount int       `json:"assignment_count"`
	HardViolations  int       `json:"hard_violations"`
	HealthScore     float64   `json:"health_score"`
	SolveMS         int64     `json:"solve_ms"`
	CreatedAt       string    `json:"created_at"`
}

// AssignmentResponse represents one assignment flattened for display
type AssignmentResponse struct {
	ID            uuid.UUID  `json:"id"`
	EventID       uuid.UUID  `json:"event_id"`
	EventType     string     `json:"event_type,omitempty"`
	EventStart    string     `json:"event_start,omitempty"`
	EventEnd      string     `json:"event_end,omitempty"`
	EventLocation string     `json:"event_location,omitempty"`
	PersonID      uuid.UUID  `json:"person_id"`
	PersonName    string     `json:"person_name,omitempty"`
	Role          string     `json:"role"`
	SolutionID    *uuid.UUID `json:"solution_id,omitempty"`
}

// ListByOrganization retrieves an organization's solutions, newest first,
// with their metrics so past solves can be compared.
func (s *SolutionService) ListByOrganization(orgID uuid.UUID) ([]SolutionResponse, error) {
	if _, err := s.orgRepo.GetByID(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	solutions, err := s.repo.ListByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}

	responses := make([]SolutionResponse, len(solutions))
	for i, sol := range solutions {
		responses[i] = *s.toResponse(&sol)
	}
	return responses, nil
}

// GetByID retrieves a solution by ID
func (s *SolutionService) GetByID(id uuid.UUID) (*SolutionResponse, error) {
	solution, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSolutionNotFound
		}
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}

	return s.toResponse(solution), nil
}

// GetAssignments retrieves a solution's assignments with event and person
// details for display, ordered by event start time.
func (s *SolutionService) GetAssignments(id uuid.UUID) ([]AssignmentResponse, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSolutionNotFound
		}
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}

	assignments, err := s.repo.GetAssignments(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = toAssignmentResponse(&assignments[i])
	}
	return responses, nil
}

// Delete removes a solution and its solver-owned assignments. Manual
// assignments survive. Deleting an unknown id succeeds, so retried deletes
// are harmless.
func (s *SolutionService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete solution: %w", err)
	}
	return nil
}

// toResponse converts a solution model to response
func (s *SolutionService) toResponse(solution *models.Solution) *SolutionResponse {
	return &SolutionResponse{
		ID:              solution.ID,
		OrganizationID:  solution.OrganizationID,
		FromDate:        solution.FromDate.Format(dateLayout),
		ToDate:          solution.ToDate.Format(dateLayout),
		Mode:            string(solution.Mode),
		AssignmentCount: solution.AssignmentCount,
		HardViolations:  solution.HardViolations,
		HealthScore:     solution.HealthScore,
		SolveMS:         solution.SolveMS,
		CreatedAt:       solution.CreatedAt.Format(timestampLayout),
	}
}
