package models

import "time"

// Shot represents a captured image tied to an event and the crew member who
// shot it. The photographer must hold a photographer role; that rule is
// enforced by the shot service before any write commits.
type Shot struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Image          string     `gorm:"type:text;not null" json:"image"`
	DateCreated    string     `gorm:"size:50;not null" json:"date_created"`
	Camera         string     `gorm:"size:100;not null" json:"camera"`
	Filename       string     `gorm:"size:255;not null" json:"filename"`
	EventID        uint       `gorm:"index;not null" json:"event_id"`
	Event          *Event     `gorm:"foreignKey:EventID" json:"event,omitempty"`
	PhotographerID uint       `gorm:"index;not null" json:"photographer_id"`
	Photographer   *Personnel `gorm:"foreignKey:PhotographerID" json:"photographer,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (Shot) TableName() string { return "shots" }
