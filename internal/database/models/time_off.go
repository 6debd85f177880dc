package models

import (
	"time"

	"github.com/google/uuid"
)

// TimeOffRange represents an inclusive blocked-date range during which a
// person is ineligible for assignment. Comparison is at calendar-date
// granularity with no timezone conversion; overlapping ranges for the same
// person are permitted and treated as a union when checking blocking.
type TimeOffRange struct {
	BaseModel
	PersonID  uuid.UUID `json:"person_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDate time.Time `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate   time.Time `json:"end_date" gorm:"type:date;not null" validate:"required"`
	Reason    string    `json:"reason" gorm:"size:200" validate:"max=200"`

	// Relationships
	Person Person `json:"person,omitempty" gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TimeOffRange
func (TimeOffRange) TableName() string {
	return "time_off_ranges"
}
