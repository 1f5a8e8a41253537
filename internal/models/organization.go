package models

import "time"

// Organization is the tenant boundary: every user, project and event belongs
// to exactly one organization. The signup code is the shared secret that binds
// new users to it.
type Organization struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	SignupCode  string    `gorm:"uniqueIndex;size:50;not null" json:"signup_code"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Organization) TableName() string { return "organizations" }
