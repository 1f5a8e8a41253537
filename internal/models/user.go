package models

import "time"

// User represents an account scoped to one organization.
type User struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Email          string        `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash   string        `gorm:"size:255;not null" json:"-"`
	Name           string        `gorm:"size:255" json:"name"`
	OrganizationID uint          `gorm:"index;not null" json:"organization_id"`
	Organization   *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Events         []Event       `gorm:"many2many:event_users" json:"-"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (User) TableName() string { return "users" }
