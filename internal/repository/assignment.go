package repository

import (
	"volunteer-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for manual assignments;
// solver-generated assignments are written through SolutionRepository.Save.
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *AssignmentRepository) Create(assignment *models.Assignment) error {
	return r.db.Create(assignment).Error
}

// GetByEventAndPerson retrieves the assignment of a person on an event
func (r *AssignmentRepository) GetByEventAndPerson(eventID, personID uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.First(&assignment, "event_id = ? AND person_id = ?", eventID, personID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByEventID retrieves all assignments of an event
func (r *AssignmentRepository) GetByEventID(eventID uuid.UUID) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// DeleteByEventAndPerson removes a person's assignment on an event
func (r *AssignmentRepository) DeleteByEventAndPerson(eventID, personID uuid.UUID) error {
	return r.db.Delete(&models.Assignment{}, "event_id = ? AND person_id = ?", eventID, personID).Error
}
