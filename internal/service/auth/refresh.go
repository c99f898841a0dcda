package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	authpkg "github.com/velocity-study/velocity-backend/internal/auth"
	"github.com/velocity-study/velocity-backend/internal/domain"
)

// Refresh exchanges a valid refresh token for a new token pair. The old
// token is revoked, so each refresh token can only be used once.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash := authpkg.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get refresh token: %w", err)
	}

	if !token.IsActive(time.Now()) {
		// A revoked token showing up again usually means it leaked.
		if token.RevokedAt != nil {
			s.log.WarnContext(ctx, "revoked refresh token reused",
				slog.String("user_id", token.UserID.String()))
		}
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
		return nil, fmt.Errorf("revoke refresh token: %w", err)
	}

	return s.issueTokens(ctx, user)
}
