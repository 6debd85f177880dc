package models

import (
	"time"

	"github.com/google/uuid"
)

// SolveMode selects the solver strategy for a run
type SolveMode string

const (
	// SolveModeBalanced runs the greedy pass plus fairness improvement passes
	SolveModeBalanced SolveMode = "balanced"
	// SolveModeFast runs the greedy pass only
	SolveModeFast SolveMode = "fast"
)

// IsValid reports whether the mode is a known solver mode
func (m SolveMode) IsValid() bool {
	return m == SolveModeBalanced || m == SolveModeFast
}

// Solution is one immutable output of a solver run over a date window: its
// assignments plus quality metrics. It is created atomically with all of its
// assignments and never modified afterwards except by whole-solution deletion.
type Solution struct {
	BaseModel
	OrganizationID  uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	FromDate        time.Time `json:"from_date" gorm:"type:date;not null" validate:"required"`
	ToDate          time.Time `json:"to_date" gorm:"type:date;not null" validate:"required"`
	Mode            SolveMode `json:"mode" gorm:"type:varchar(50);not null;default:'balanced'"`
	AssignmentCount int       `json:"assignment_count" gorm:"not null;default:0"`
	HardViolations  int       `json:"hard_violations" gorm:"not null;default:0" validate:"min=0"`
	HealthScore     float64   `json:"health_score" gorm:"not null;default:0" validate:"min=0,max=100"`
	SolveMS         int64     `json:"solve_ms" gorm:"not null;default:0"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Assignments  []Assignment `json:"assignments,omitempty" gorm:"foreignKey:SolutionID"`
}

// TableName returns the table name for Solution
func (Solution) TableName() string {
	return "solutions"
}
