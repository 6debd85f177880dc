package models

import (
	"github.com/google/uuid"
)

// Assignment places one person on one event under a specific role label.
// Solver-generated assignments carry the solution id they were produced in;
// manually created assignments have a nil solution id and survive solution
// deletion. Uniqueness of the (event, person) pair is scoped per solution,
// so repeated solves over the same window store their own copies of the
// same pairs; the partial index constrains manual rows to one per pair.
type Assignment struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	EventID        uuid.UUID  `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignments_solution_event_person;index:idx_assignments_manual_event_person,unique,where:solution_id IS NULL" validate:"required"`
	PersonID       uuid.UUID  `json:"person_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignments_solution_event_person;index:idx_assignments_manual_event_person,unique,where:solution_id IS NULL" validate:"required"`
	Role           string     `json:"role" gorm:"not null;size:100" validate:"required,max=100"`
	SolutionID     *uuid.UUID `json:"solution_id,omitempty" gorm:"type:uuid;index;uniqueIndex:idx_assignments_solution_event_person"`

	// Relationships
	Event    Event     `json:"event,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Person   Person    `json:"person,omitempty" gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
	Solution *Solution `json:"solution,omitempty" gorm:"foreignKey:SolutionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}
