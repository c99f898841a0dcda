package planner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/velocity-study/velocity-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type taskRepo interface {
	ListByUserID(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]domain.Task, error)
	UpdateDueDate(ctx context.Context, userID, taskID uuid.UUID, dueDate time.Time) error
}

type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.EnergyProfile, error)
}

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type redistributionRepo interface {
	CreateBatch(ctx context.Context, results []domain.RedistributionResult) ([]domain.RedistributionResult, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.RedistributionResult, int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service orchestrates the scheduling engine: it loads a user's tasks,
// energy profile and exam date, runs the pure planning functions, and
// persists the outcomes that need persisting. The planning math itself never
// touches the database.
type Service struct {
	tasks           taskRepo
	profiles        profileRepo
	users           userRepo
	redistributions redistributionRepo
	tx              txManager
	log             *slog.Logger
	now             func() time.Time
}

// NewService creates a new Planner service.
func NewService(
	log *slog.Logger,
	tasks taskRepo,
	profiles profileRepo,
	users userRepo,
	redistributions redistributionRepo,
	tx txManager,
) *Service {
	return &Service{
		tasks:           tasks,
		profiles:        profiles,
		users:           users,
		redistributions: redistributions,
		tx:              tx,
		log:             log.With("service", "planner"),
		now:             time.Now,
	}
}
