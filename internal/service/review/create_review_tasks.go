package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/velocity-study/velocity-backend/internal/domain"
	"github.com/velocity-study/velocity-backend/pkg/ctxutil"
)

// CreateReviewTasks builds the spaced-repetition schedule for a studied task
// and materializes one short low-intensity review task per checkpoint, all in
// a single transaction. Review tasks never spawn schedules of their own.
func (s *Service) CreateReviewTasks(ctx context.Context, input CreateReviewTasksInput) (*domain.ReviewSchedule, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	task, err := s.tasks.GetByID(ctx, userID, input.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task.IsReviewTask {
		return nil, domain.NewValidationError("task_id", "review tasks do not get review schedules")
	}

	existing, err := s.schedules.GetByTaskID(ctx, userID, input.TaskID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing schedule: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrAlreadyExists
	}

	plan := NewSchedule(task.ID, userID, s.now())

	var schedule *domain.ReviewSchedule
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		schedule, createErr = s.schedules.Create(txCtx, &plan)
		if createErr != nil {
			return fmt.Errorf("create schedule: %w", createErr)
		}

		reviewTasks := make([]domain.Task, 0, domain.NumCheckpoints)
		for _, cp := range domain.Checkpoints() {
			reviewTasks = append(reviewTasks, domain.Task{
				UserID:           userID,
				Title:            fmt.Sprintf("Review: %s", task.Title),
				Description:      fmt.Sprintf("%s of %q", cp, task.Title),
				Difficulty:       reviewTaskDifficulty,
				Importance:       reviewTaskImportance,
				EstimatedMinutes: reviewTaskMinutes,
				DueDate:          schedule.DueDates[cp],
				Intensity:        domain.IntensityLow,
				Status:           domain.TaskStatusPending,
				IsReviewTask:     true,
				OriginalTaskID:   &task.ID,
			})
		}

		if _, createErr = s.tasks.CreateBatch(txCtx, reviewTasks); createErr != nil {
			return fmt.Errorf("create review tasks: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "review schedule created",
		slog.String("user_id", userID.String()),
		slog.String("task_id", task.ID.String()),
		slog.String("schedule_id", schedule.ID.String()),
	)

	return schedule, nil
}
