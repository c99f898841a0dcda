package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/velocity-study/velocity-backend/internal/domain"
	"github.com/velocity-study/velocity-backend/pkg/ctxutil"
)

// CompleteTask marks a task done and kicks off its spaced-repetition
// schedule. Review tasks themselves complete without spawning further
// reviews, and completing a task twice does not duplicate the schedule.
func (s *Service) CompleteTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if taskID == uuid.Nil {
		return nil, domain.NewValidationError("task_id", "required")
	}

	status := domain.TaskStatusCompleted
	task, err := s.tasks.Update(ctx, userID, taskID, domain.TaskUpdateParams{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("complete task: %w", err)
	}

	if !task.IsReviewTask {
		if err := s.reviews.ScheduleForTask(ctx, task.ID); err != nil {
			if !errors.Is(err, domain.ErrAlreadyExists) {
				return nil, fmt.Errorf("schedule reviews: %w", err)
			}
		}
	}

	s.log.InfoContext(ctx, "task completed",
		slog.String("user_id", userID.String()),
		slog.String("task_id", task.ID.String()),
		slog.Bool("review_task", task.IsReviewTask),
	)

	return task, nil
}
