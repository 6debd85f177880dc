package repository

import (
	"time"

	"volunteer-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// PersonRepositoryInterface defines the interface for person repository operations
type PersonRepositoryInterface interface {
	Create(person *models.Person) error
	GetByID(id uuid.UUID) (*models.Person, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Person, int64, error)
	GetActiveByOrganization(orgID uuid.UUID) ([]models.Person, error)
	Update(person *models.Person) error
	Deactivate(id uuid.UUID) error
	Delete(id uuid.UUID) error
	CountAssignments(id uuid.UUID) (int64, error)
}

// TimeOffRepositoryInterface defines the interface for time-off repository operations
type TimeOffRepositoryInterface interface {
	Create(rng *models.TimeOffRange) error
	GetByID(id uuid.UUID) (*models.TimeOffRange, error)
	GetByPersonID(personID uuid.UUID) ([]models.TimeOffRange, error)
	GetByPersonIDs(personIDs []uuid.UUID) ([]models.TimeOffRange, error)
	Delete(id uuid.UUID) error
}

// EventRepositoryInterface defines the interface for event repository operations
type EventRepositoryInterface interface {
	Create(event *models.Event) error
	GetByID(id uuid.UUID) (*models.Event, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Event, int64, error)
	GetByWindow(orgID uuid.UUID, from, to time.Time) ([]models.Event, error)
	Update(event *models.Event) error
	Delete(id uuid.UUID) error
}

// AssignmentRepositoryInterface defines the interface for assignment repository operations
type AssignmentRepositoryInterface interface {
	Create(assignment *models.Assignment) error
	GetByEventAndPerson(eventID, personID uuid.UUID) (*models.Assignment, error)
	GetByEventID(eventID uuid.UUID) ([]models.Assignment, error)
	DeleteByEventAndPerson(eventID, personID uuid.UUID) error
}

// SolutionRepositoryInterface defines the interface for solution repository operations
type SolutionRepositoryInterface interface {
	// Save persists a solution together with all of its assignments in one
	// transaction; partial persistence is never observable.
	Save(solution *models.Solution, assignments []models.Assignment) error
	GetByID(id uuid.UUID) (*models.Solution, error)
	ListByOrganization(orgID uuid.UUID) ([]models.Solution, error)
	GetAssignments(solutionID uuid.UUID) ([]models.Assignment, error)
	// Delete removes the solution and its solver-owned assignments. Deleting
	// a nonexistent id is not an error.
	Delete(id uuid.UUID) error
}
