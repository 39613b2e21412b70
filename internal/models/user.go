// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// SocialLinks groups a user's optional social profile URLs.
type SocialLinks struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

// User represents a registered student.
type User struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Fullname  string      `gorm:"not null" json:"fullname"`
	Email     string      `gorm:"unique;not null" json:"email"`
	Password  string      `gorm:"not null" json:"-"`
	Avatar    string      `json:"avatar"`
	Bio       string      `json:"bio"`
	Cycle     int         `json:"cycle"`
	Location  string      `json:"location"`
	Interests string      `json:"interests"`
	Social    SocialLinks `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
