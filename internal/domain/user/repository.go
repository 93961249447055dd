package user

import "context"

// Repository persists users.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	// GetByUsernameAndHash looks up a user matching both username and
	// password hash exactly. Returns a not-found error on miss.
	GetByUsernameAndHash(ctx context.Context, username, passwordHash string) (*User, error)
	// List returns users filtered by archived state. A nil filter
	// excludes archived users, matching the default listing contract.
	List(ctx context.Context, archived *bool) ([]*User, error)
	// Archive soft-deletes a user and reports the affected-row count.
	Archive(ctx context.Context, id int64) (int64, error)
}

// SessionRepository persists login sessions keyed by opaque token.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	// DeleteByToken removes a session regardless of owner. Used for
	// expiry cleanup; reports the affected-row count.
	DeleteByToken(ctx context.Context, token string) (int64, error)
	// DeleteByUserIDAndToken removes the session matching both owner
	// and token, reporting the affected-row count for the
	// exactly-one-row logout contract.
	DeleteByUserIDAndToken(ctx context.Context, userID int64, token string) (int64, error)
}
