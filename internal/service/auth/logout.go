package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Logout revokes every refresh token the user holds. Access tokens stay
// valid until they expire, which is why their TTL is short.
func (s *Service) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("revoke user tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}

// ValidateToken verifies an access token and returns the user ID it was
// issued for. Used by the auth middleware.
func (s *Service) ValidateToken(token string) (uuid.UUID, error) {
	return s.jwt.ValidateAccessToken(token)
}

// CleanupExpiredTokens removes refresh tokens that expired or were revoked.
// Intended for a periodic background job.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	deleted, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete expired tokens: %w", err)
	}
	if deleted > 0 {
		s.log.InfoContext(ctx, "expired refresh tokens removed", slog.Int("count", deleted))
	}
	return deleted, nil
}
