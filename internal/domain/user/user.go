package user

import (
	"fmt"
	"strings"
	"time"
)

// User is an account in the tracker. Password is stored as a stable
// one-way hash; archived users are soft-deleted and excluded from
// default listings.
type User struct {
	ID                int64
	Username          string
	PasswordHash      string
	EmailAddress      *string
	FirstName         *string
	LastName          *string
	ProfilePictureURL *string
	CreatedAt         time.Time
	Archived          bool
}

func NewUser(username, passwordHash string, emailAddress, firstName, lastName, profilePictureURL *string) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("username is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	return &User{
		Username:          username,
		PasswordHash:      passwordHash,
		EmailAddress:      emailAddress,
		FirstName:         firstName,
		LastName:          lastName,
		ProfilePictureURL: profilePictureURL,
		CreatedAt:         time.Now().UTC(),
	}, nil
}

// DisplayName returns the user's real name when any part of it is set,
// falling back to the username.
func (u *User) DisplayName() string {
	var parts []string
	if u.FirstName != nil && *u.FirstName != "" {
		parts = append(parts, *u.FirstName)
	}
	if u.LastName != nil && *u.LastName != "" {
		parts = append(parts, *u.LastName)
	}
	if len(parts) == 0 {
		return u.Username
	}
	return strings.Join(parts, " ")
}

// HasEmail reports whether the user can receive notifications.
func (u *User) HasEmail() bool {
	return u.EmailAddress != nil && *u.EmailAddress != ""
}

func (u *User) Archive() {
	u.Archived = true
}
