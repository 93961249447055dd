package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256PasswordHasher produces a stable one-way hash of passwords.
// Login looks up a user row matching username and hash exactly, so the
// hash must be deterministic; salted schemes cannot express that lookup.
type SHA256PasswordHasher struct{}

func NewSHA256PasswordHasher() *SHA256PasswordHasher {
	return &SHA256PasswordHasher{}
}

func (h *SHA256PasswordHasher) Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
