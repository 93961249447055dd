package user

import (
	"fmt"
	"time"
)

// Session binds an opaque token to a user. A nil ExpiresAt means the
// session never expires ("remember me"). Sessions are created on login
// and deleted on logout or detected expiry, never mutated.
type Session struct {
	Token     string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt *time.Time
}

func NewSession(token string, userID int64, expiresAt *time.Time) (*Session, error) {
	if token == "" {
		return nil, fmt.Errorf("session token is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: expiresAt,
	}, nil
}

// IsExpired reports whether the session is past its expiry at the given
// instant. Sessions without an expiry never expire.
func (s *Session) IsExpired(now time.Time) bool {
	if s.ExpiresAt == nil {
		return false
	}
	return !now.Before(*s.ExpiresAt)
}
