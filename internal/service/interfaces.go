package service

import (
	"volunteer-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetAll(page, pageSize int) (*OrganizationListResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(id uuid.UUID) error
}

// PersonServiceInterface defines the interface for person service
type PersonServiceInterface interface {
	Create(req *CreatePersonRequest) (*PersonResponse, error)
	GetByID(id uuid.UUID) (*PersonResponse, error)
	GetByOrganization(orgID uuid.UUID, page, pageSize int) (*PersonListResponse, error)
	Update(id uuid.UUID, req *UpdatePersonRequest) (*PersonResponse, error)
	Delete(id uuid.UUID) error
	AddTimeOff(personID uuid.UUID, req *AddTimeOffRequest) (*TimeOffResponse, error)
	GetTimeOff(personID uuid.UUID) ([]TimeOffResponse, error)
	DeleteTimeOff(id uuid.UUID) error
}

// EventServiceInterface defines the interface for event service
type EventServiceInterface interface {
	Create(req *CreateEventRequest) (*EventResponse, error)
	GetByID(id uuid.UUID) (*EventResponse, error)
	GetByOrganization(orgID uuid.UUID, page, pageSize int) (*EventListResponse, error)
	Update(id uuid.UUID, req *UpdateEventRequest) (*EventResponse, error)
	Delete(id uuid.UUID) error
}

// SolverServiceInterface defines the interface for the solver service
type SolverServiceInterface interface {
	Solve(req *SolveRequest) (*SolveResponse, error)
}

// SolutionServiceInterface defines the interface for solution service
type SolutionServiceInterface interface {
	ListByOrganization(orgID uuid.UUID) ([]SolutionResponse, error)
	GetByID(id uuid.UUID) (*SolutionResponse, error)
	GetAssignments(id uuid.UUID) ([]AssignmentResponse, error)
	Delete(id uuid.UUID) error
}

// AssignmentServiceInterface defines the interface for assignment service
type AssignmentServiceInterface interface {
	Toggle(req *ToggleAssignmentRequest) (*ToggleAssignmentResponse, error)
	GetByEvent(eventID uuid.UUID) ([]AssignmentResponse, error)
}

// toAssignmentResponse converts an assignment model with preloaded event and
// person into the flattened display shape.
func toAssignmentResponse(a *models.Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:         a.ID,
		EventID:    a.EventID,
		PersonID:   a.PersonID,
		Role:       a.Role,
		SolutionID: a.SolutionID,
	}
	if a.Event.ID != uuid.Nil {
		resp.EventType = a.Event.Type
		resp.EventStart = a.Event.StartTime.Format(timestampLayout)
		resp.EventEnd = a.Event.EndTime.Format(timestampLayout)
		resp.EventLocation = a.Event.Location
	}
	if a.Person.ID != uuid.Nil {
		resp.PersonName = a.Person.Name
	}
	return resp
}
