package models

import (
	"strings"
	"time"
)

// Personnel represents a crew member. Role is free text; capability checks
// test it, they do not constrain it.
type Personnel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Role      string    `gorm:"size:100;not null" json:"role"`
	Phone     string    `gorm:"size:50;not null" json:"phone"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Events    []Event   `gorm:"many2many:event_personnel" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Personnel) TableName() string { return "personnel" }

// IsPhotographer reports whether this crew member holds a photographer role.
// The check is a case-insensitive substring match so "Lead Photographer" and
// "photographer/editor" both qualify.
func (p *Personnel) IsPhotographer() bool {
	return strings.Contains(strings.ToLower(p.Role), "photographer")
}
