package models

import "time"

// ProjectKeyPersonnel links a crew member to a project with a project-scoped
// role. The role here is independent storage: it may differ from the
// member's own Personnel.Role and is never derived from it.
type ProjectKeyPersonnel struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ProjectID   uint       `gorm:"uniqueIndex:idx_project_personnel;not null" json:"project_id"`
	Project     *Project   `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	PersonnelID uint       `gorm:"uniqueIndex:idx_project_personnel;not null" json:"personnel_id"`
	Personnel   *Personnel `gorm:"foreignKey:PersonnelID" json:"personnel,omitempty"`
	Role        string     `gorm:"size:100;not null" json:"role"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (ProjectKeyPersonnel) TableName() string { return "project_key_personnel" }
