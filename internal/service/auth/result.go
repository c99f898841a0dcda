package auth

import "github.com/velocity-study/velocity-backend/internal/domain"

// AuthResult is returned by every operation that establishes a session.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}
