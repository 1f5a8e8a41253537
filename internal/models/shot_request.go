package models

import "time"

// ShotRequest represents a stakeholder's ask for specific coverage, loosely
// attached to an event.
type ShotRequest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	StartTime   string    `gorm:"size:50" json:"start_time"`
	EndTime     string    `gorm:"size:50" json:"end_time"`
	Stakeholder string    `gorm:"size:255" json:"stakeholder"`
	QuickTurn   bool      `gorm:"default:false" json:"quick_turn"`
	Deadline    string    `gorm:"size:50" json:"deadline"`
	KeySponsor  string    `gorm:"size:255" json:"key_sponsor"`
	Status      string    `gorm:"size:50" json:"status"`
	EventID     *uint     `gorm:"index" json:"event_id"`
	Event       *Event    `gorm:"foreignKey:EventID" json:"event,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ShotRequest) TableName() string { return "shot_requests" }
