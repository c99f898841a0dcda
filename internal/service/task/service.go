package task

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/velocity-study/velocity-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type taskRepo interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter, limit, offset int) ([]domain.Task, int, error)
	Update(ctx context.Context, userID, taskID uuid.UUID, params domain.TaskUpdateParams) (*domain.Task, error)
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
}

// reviewScheduler kicks off spaced repetition when a task is completed.
type reviewScheduler interface {
	ScheduleForTask(ctx context.Context, taskID uuid.UUID) error
}

const (
	MaxTasksPageSize = 100

	defaultPageSize = 50
)

// Service provides task management operations.
type Service struct {
	tasks   taskRepo
	reviews reviewScheduler
	log     *slog.Logger
}

// NewService creates a new Task service.
func NewService(
	log *slog.Logger,
	tasks taskRepo,
	reviews reviewScheduler,
) *Service {
	return &Service{
		tasks:   tasks,
		reviews: reviews,
		log:     log.With("service", "task"),
	}
}
