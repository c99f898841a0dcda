package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/velocity-study/velocity-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, name *string, examDate *time.Time) (*domain.User, error)
}

// profileRepo defines the energy profile repository interface needed by user service.
type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.EnergyProfile, error)
	Upsert(ctx context.Context, profile *domain.EnergyProfile) (*domain.EnergyProfile, error)
}

// Service implements user profile and energy preference operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	profiles profileRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, profiles profileRepo) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		profiles: profiles,
	}
}
