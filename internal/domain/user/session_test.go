package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_Validation(t *testing.T) {
	_, err := NewSession("", 1, nil)
	assert.Error(t, err)

	_, err = NewSession("token", 0, nil)
	assert.Error(t, err)

	s, err := NewSession("token", 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "token", s.Token)
	assert.Nil(t, s.ExpiresAt)
}

func TestSession_IsExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt *time.Time
		want      bool
	}{
		{name: "remember me never expires", expiresAt: nil, want: false},
		{name: "future expiry", expiresAt: timePtr(now.Add(time.Minute)), want: false},
		{name: "exactly at expiry", expiresAt: timePtr(now), want: true},
		{name: "past expiry", expiresAt: timePtr(now.Add(-time.Minute)), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{Token: "t", UserID: 1, ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, s.IsExpired(now))
		})
	}
}

func TestUser_DisplayName(t *testing.T) {
	first := "Ada"
	last := "Lovelace"

	tests := []struct {
		name string
		u    User
		want string
	}{
		{name: "full name", u: User{Username: "ada", FirstName: &first, LastName: &last}, want: "Ada Lovelace"},
		{name: "first only", u: User{Username: "ada", FirstName: &first}, want: "Ada"},
		{name: "last only", u: User{Username: "ada", LastName: &last}, want: "Lovelace"},
		{name: "username fallback", u: User{Username: "ada"}, want: "ada"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.u.DisplayName())
		})
	}
}

func TestUser_HasEmail(t *testing.T) {
	email := "ada@example.com"
	empty := ""

	assert.True(t, (&User{EmailAddress: &email}).HasEmail())
	assert.False(t, (&User{EmailAddress: &empty}).HasEmail())
	assert.False(t, (&User{}).HasEmail())
}

func timePtr(t time.Time) *time.Time { return &t }
