package testutils

import (
	"time"

	"volunteer-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "test-org-" + id.String()[:8],
		DisplayName: "Test Organization",
		Description: "A test organization",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// PersonFactory provides methods to create test Person data
type PersonFactory struct{}

// Create creates a test Person with default values
func (f *PersonFactory) Create(orgID uuid.UUID) *models.Person {
	id := uuid.New()
	return &models.Person{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		Name:           "Test Person " + id.String()[:8],
		Email:          "person-" + id.String()[:8] + "@test.com",
		Roles:          models.RoleList{models.RoleVolunteer},
		IsActive:       true,
	}
}

// WithRoles sets custom roles for the person
func (f *PersonFactory) WithRoles(orgID uuid.UUID, roles ...models.RoleID) *models.Person {
	person := f.Create(orgID)
	person.Roles = roles
	return person
}

// EventFactory provides methods to create test Event data
type EventFactory struct{}

// Create creates a test Event starting at the given time
func (f *EventFactory) Create(orgID uuid.UUID, start time.Time) *models.Event {
	return &models.Event{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:   orgID,
		Type:             "service",
		StartTime:        start,
		EndTime:          start.Add(2 * time.Hour),
		Location:         "Main Hall",
		RoleRequirements: models.RoleCountMap{models.RoleVolunteer: 1},
	}
}

// WithRequirements sets custom role requirements for the event
func (f *EventFactory) WithRequirements(orgID uuid.UUID, start time.Time, reqs models.RoleCountMap) *models.Event {
	event := f.Create(orgID, start)
	event.RoleRequirements = reqs
	return event
}

// TimeOffFactory provides methods to create test TimeOffRange data
type TimeOffFactory struct{}

// Create creates a test time-off range covering the given dates
func (f *TimeOffFactory) Create(personID uuid.UUID, start, end time.Time) *models.TimeOffRange {
	return &models.TimeOffRange{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PersonID:  personID,
		StartDate: start,
		EndDate:   end,
		Reason:    "vacation",
	}
}

// FactorySet bundles all factories for convenience
type FactorySet struct {
	Organization *OrganizationFactory
	Person       *PersonFactory
	Event        *EventFactory
	TimeOff      *TimeOffFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: &OrganizationFactory{},
		Person:       &PersonFactory{},
		Event:        &EventFactory{},
		TimeOff:      &TimeOffFactory{},
	}
}
