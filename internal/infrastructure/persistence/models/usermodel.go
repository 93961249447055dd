package models

import "time"

// UserModel represents the database persistence model for users.
type UserModel struct {
	ID                int64   `gorm:"primaryKey"`
	Username          string  `gorm:"uniqueIndex;size:100;not null"`
	Password          string  `gorm:"size:64;not null"`
	EmailAddress      *string `gorm:"size:255"`
	FirstName         *string `gorm:"size:100"`
	LastName          *string `gorm:"size:100"`
	ProfilePictureURL *string `gorm:"size:512"`
	CreatedAt         time.Time
	Archived          bool `gorm:"not null;default:false;index"`
}

func (UserModel) TableName() string {
	return "users"
}

// SessionModel represents the database persistence model for sessions.
// The opaque token is the primary key; a NULL expiry means the session
// never expires.
type SessionModel struct {
	Token     string `gorm:"primaryKey;size:64"`
	UserID    int64  `gorm:"not null;index"`
	CreatedAt time.Time
	ExpiresAt *time.Time `gorm:"index"`
}

func (SessionModel) TableName() string {
	return "sessions"
}
