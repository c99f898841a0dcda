package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. PasswordHash is a bcrypt hash and never leaves
// the auth service.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	ExamDate     *time.Time // end of the current study period, set at onboarding
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is a stored, hashed refresh token. The raw token is only
// ever held by the client.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// IsActive reports whether the token can still be exchanged.
func (t RefreshToken) IsActive(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
