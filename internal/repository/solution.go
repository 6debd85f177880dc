package repository

import (
	"volunteer-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SolutionRepository handles database operations for solutions and their
// solver-generated assignments.
type SolutionRepository struct {
	db *gorm.DB
}

// NewSolutionRepository creates a new solution repository
func NewSolutionRepository(db *gorm.DB) *SolutionRepository {
	return &SolutionRepository{db: db}
}

// Save persists a solution and all of its assignments in a single
// transaction. Concurrent solves for the same organization each get their
// own transaction, so assignment writes never interleave across solution
// ids, and an abandoned solve leaves no partial rows behind.
func (r *SolutionRepository) Save(solution *models.Solution, assignments []models.Assignment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(solution).Error; err != nil {
			return err
		}
		for i := range assignments {
			assignments[i].SolutionID = &solution.ID
			assignments[i].OrganizationID = solution.OrganizationID
		}
		if len(assignments) == 0 {
			return nil
		}
		return tx.Create(&assignments).Error
	})
}

// GetByID retrieves a solution by ID
func (r *SolutionRepository) GetByID(id uuid.UUID) (*models.Solution, error) {
	var solution models.Solution
	err := r.db.First(&solution, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &solution, nil
}

// ListByOrganization retrieves an organization's solutions, newest first
func (r *SolutionRepository) ListByOrganization(orgID uuid.UUID) ([]models.Solution, error) {
	var solutions []models.Solution
	err := r.db.Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&solutions).Error
	if err != nil {
		return nil, err
	}
	return solutions, nil
}

// GetAssignments retrieves a solution's assignments with event and person
// preloaded for display, ordered by event start time.
func (r *SolutionRepository) GetAssignments(solutionID uuid.UUID) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Preload("Event").Preload("Person").
		Joins("JOIN events ON events.id = assignments.event_id").
		Where("assignments.solution_id = ?", solutionID).
		Order("events.start_time ASC, assignments.role ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// Delete removes a solution and the assignments it owns. Manual assignments
// (nil solution id) are untouched. Idempotent: deleting a nonexistent id
// succeeds.
func (r *SolutionRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Assignment{}, "solution_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Solution{}, "id = ?", id).Error
	})
}
