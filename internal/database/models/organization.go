package models

// Organization represents the root entity for multi-tenancy. Every person,
// event, assignment and solution is scoped to exactly one organization and
// queries never cross that boundary.
type Organization struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	DisplayName string `json:"display_name" gorm:"not null;size:200" validate:"required,max=200"`
	Description string `json:"description" gorm:"type:text"`

	// Relationships
	People    []Person   `json:"people,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Events    []Event    `json:"events,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Solutions []Solution `json:"solutions,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
