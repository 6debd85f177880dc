package models

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a scheduled occasion that needs volunteers. Role
// requirements map each required role to a headcount; an event with an empty
// map has no role gating and accepts any person in a single slot under the
// implicit volunteer role.
type Event struct {
	BaseModel
	OrganizationID   uuid.UUID    `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Type             string       `json:"type" gorm:"not null;size:100" validate:"required,max=100"`
	StartTime        time.Time    `json:"start_time" gorm:"not null;index" validate:"required"`
	EndTime          time.Time    `json:"end_time" gorm:"not null" validate:"required"`
	Location         string       `json:"location" gorm:"size:200" validate:"max=200"`
	RoleRequirements RoleCountMap `json:"role_requirements" gorm:"type:jsonb;not null;default:'{}'"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Assignments  []Assignment `json:"assignments,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}
