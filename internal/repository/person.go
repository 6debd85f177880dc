package repository

import (
	"volunteer-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonRepository handles database operations for people
type PersonRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create creates a new person
func (r *PersonRepository) Create(person *models.Person) error {
	return r.db.Create(person).Error
}

// GetByID retrieves a person by ID
func (r *PersonRepository) GetByID(id uuid.UUID) (*models.Person, error) {
	var person models.Person
	err := r.db.First(&person, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// GetByOrganizationID retrieves people for an organization with pagination
func (r *PersonRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Person, int64, error) {
	var people []models.Person
	var total int64

	if err := r.db.Model(&models.Person{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).
		Order("name ASC").
		Limit(limit).Offset(offset).
		Find(&people).Error
	if err != nil {
		return nil, 0, err
	}

	return people, total, nil
}

// GetActiveByOrganization retrieves every active person of an organization.
// This is the solver's people pool, so no pagination: a solve needs the
// whole snapshot. Ordered by id for deterministic snapshots.
func (r *PersonRepository) GetActiveByOrganization(orgID uuid.UUID) ([]models.Person, error) {
	var people []models.Person
	err := r.db.Where("organization_id = ? AND is_active = ?", orgID, true).
		Order("id ASC").
		Find(&people).Error
	if err != nil {
		return nil, err
	}
	return people, nil
}

// Update updates a person
func (r *PersonRepository) Update(person *models.Person) error {
	return r.db.Save(person).Error
}

// Deactivate marks a person inactive without removing their history
func (r *PersonRepository) Deactivate(id uuid.UUID) error {
	return r.db.Model(&models.Person{}).Where("id = ?", id).Update("is_active", false).Error
}

// Delete hard-deletes a person. Callers must first check CountAssignments;
// people referenced by assignments are deactivated instead.
func (r *PersonRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Person{}, "id = ?", id).Error
}

// CountAssignments returns how many assignments reference the person
func (r *PersonRepository) CountAssignments(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Assignment{}).Where("person_id = ?", id).Count(&count).Error
	return count, err
}
