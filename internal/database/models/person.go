package models

import (
	"github.com/google/uuid"
)

// Person represents a volunteer belonging to an organization. Roles are
// mutable by admins; people referenced by existing assignments are never
// hard-deleted, they are deactivated instead.
type Person struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email          string    `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Roles          RoleList  `json:"roles" gorm:"type:jsonb;not null;default:'[]'"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	Organization Organization   `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	TimeOff      []TimeOffRange `json:"time_off,omitempty" gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
	Assignments  []Assignment   `json:"assignments,omitempty" gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Person
func (Person) TableName() string {
	return "people"
}
