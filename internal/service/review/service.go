package review

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

type scheduleRepo interface {
	Create(ctx context.Context, schedule *domain.ReviewSchedule) (*domain.ReviewSchedule, error)
	GetByID(ctx context.Context, userID, scheduleID uuid.UUID) (*domain.ReviewSchedule, error)
	GetByTaskID(ctx context.Context, userID, taskID uuid.UUID) (*domain.ReviewSchedule, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.ReviewSchedule, error)
	SetCompleted(ctx context.Context, userID, scheduleID uuid.UUID, completed [domain.NumCheckpoints]bool) (*domain.ReviewSchedule, error)
}

type taskRepo interface {
	GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	CreateBatch(ctx context.Context, tasks []domain.Task) ([]domain.Task, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Review-task template applied to every generated checkpoint task.
const (
	reviewTaskDifficulty = 3
	reviewTaskImportance = 7
	reviewTaskMinutes    = 20
)

// DefaultUpcomingHorizonDays bounds the upcoming-reviews listing when the
// caller does not ask for a specific horizon.
const DefaultUpcomingHorizonDays = 7

// Service manages spaced-repetition schedules: creation when a task is
// studied, checkpoint completion, and the derived review listings.
type Service struct {
	schedules scheduleRepo
	tasks     taskRepo
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Review service.
func NewService(
	log *slog.Logger,
	schedules scheduleRepo,
	tasks taskRepo,
	tx txManager,
) *Service {
	return &Service{
		schedules: schedules,
		tasks:     tasks,
		tx:        tx,
		log:       log.With("service", "review"),
		now:       time.Now,
	}
}
