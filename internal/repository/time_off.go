package repository

import (
	"volunteer-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeOffRepository handles database operations for time-off ranges
type TimeOffRepository struct {
	db *gorm.DB
}

// NewTimeOffRepository creates a new time-off repository
func NewTimeOffRepository(db *gorm.DB) *TimeOffRepository {
	return &TimeOffRepository{db: db}
}

// Create creates a new time-off range
func (r *TimeOffRepository) Create(rng *models.TimeOffRange) error {
	return r.db.Create(rng).Error
}

// GetByID retrieves a time-off range by ID
func (r *TimeOffRepository) GetByID(id uuid.UUID) (*models.TimeOffRange, error) {
	var rng models.TimeOffRange
	err := r.db.First(&rng, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rng, nil
}

// GetByPersonID retrieves all time-off ranges of one person, ordered by start date
func (r *TimeOffRepository) GetByPersonID(personID uuid.UUID) ([]models.TimeOffRange, error) {
	var ranges []models.TimeOffRange
	err := r.db.Where("person_id = ?", personID).
		Order("start_date ASC").
		Find(&ranges).Error
	if err != nil {
		return nil, err
	}
	return ranges, nil
}

// GetByPersonIDs retrieves the time-off ranges of a set of people in one
// query, for the solver's snapshot load.
func (r *TimeOffRepository) GetByPersonIDs(personIDs []uuid.UUID) ([]models.TimeOffRange, error) {
	if len(personIDs) == 0 {
		return nil, nil
	}
	var ranges []models.TimeOffRange
	err := r.db.Where("person_id IN ?", personIDs).
		Order("person_id ASC, start_date ASC").
		Find(&ranges).Error
	if err != nil {
		return nil, err
	}
	return ranges, nil
}

// Delete deletes a time-off range
func (r *TimeOffRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TimeOffRange{}, "id = ?", id).Error
}
