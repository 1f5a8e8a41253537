package models

import "time"

// Project represents a client production engagement owning a set of events.
type Project struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Name           string        `gorm:"size:255;not null" json:"name"`
	Client         string        `gorm:"size:255" json:"client"`
	OrganizationID uint          `gorm:"index;not null" json:"organization_id"`
	Organization   *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Status         string        `gorm:"size:50" json:"status"`
	Description    string        `gorm:"type:text" json:"description"`
	StartDate      string        `gorm:"size:50" json:"start_date"`
	EndDate        string        `gorm:"size:50" json:"end_date"`
	Location       string        `gorm:"size:255" json:"location"`
	Events         []Event       `gorm:"foreignKey:ProjectID" json:"-"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }
