package models

import "time"

// Event represents a scheduled shoot. It is always scoped to an organization
// and optionally to a project. Dates, times and deadlines are carried as the
// free-text strings the API exchanges.
type Event struct {
	ID                uint          `gorm:"primaryKey" json:"id"`
	Name              string        `gorm:"size:255;not null" json:"name"`
	Date              string        `gorm:"size:50;not null" json:"date"`
	StartTime         string        `gorm:"size:50" json:"start_time"`
	EndTime           string        `gorm:"size:50" json:"end_time"`
	Location          string        `gorm:"size:255" json:"location"`
	Status            string        `gorm:"size:50" json:"status"`
	Description       string        `gorm:"type:text" json:"description"`
	ProjectID         *uint         `gorm:"index" json:"project_id"`
	Project           *Project      `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	OrganizationID    uint          `gorm:"index;not null" json:"organization_id"`
	Organization      *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Discipline        string        `gorm:"size:50" json:"discipline"`
	IsQuickTurnaround bool          `gorm:"default:false" json:"is_quick_turnaround"`
	IsCovered         bool          `gorm:"default:false" json:"is_covered"`
	Deadline          string        `gorm:"size:50" json:"deadline"`
	ProcessPoint      string        `gorm:"size:255" json:"process_point"`
	Personnel         []Personnel   `gorm:"many2many:event_personnel" json:"-"`
	Users             []User        `gorm:"many2many:event_users" json:"-"`
	Shots             []Shot        `gorm:"foreignKey:EventID" json:"-"`
	ShotRequests      []ShotRequest `gorm:"foreignKey:EventID" json:"-"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

func (Event) TableName() string { return "events" }
