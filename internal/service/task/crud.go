package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/velocity-study/velocity-backend/internal/domain"
	"github.com/velocity-study/velocity-backend/pkg/ctxutil"
)

// CreateTask creates a new task for the authenticated user. Due dates are
// normalized to midnight so day arithmetic stays exact everywhere downstream.
func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	task, err := s.tasks.Create(ctx, &domain.Task{
		UserID:           userID,
		Title:            strings.TrimSpace(input.Title),
		Description:      strings.TrimSpace(input.Description),
		Difficulty:       input.Difficulty,
		Importance:       input.Importance,
		EstimatedMinutes: input.EstimatedMinutes,
		DueDate:          domain.Midnight(input.DueDate),
		Intensity:        input.Intensity,
		Status:           domain.TaskStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("user_id", userID.String()),
		slog.String("task_id", task.ID.String()),
		slog.String("title", task.Title),
	)

	return task, nil
}

// GetTask returns one task owned by the authenticated user.
func (s *Service) GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if taskID == uuid.Nil {
		return nil, domain.NewValidationError("task_id", "required")
	}

	task, err := s.tasks.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// ListTasks returns the user's tasks matching the filter plus the total count.
func (s *Service) ListTasks(ctx context.Context, input ListTasksInput) ([]domain.Task, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultPageSize
	}

	filter := domain.TaskFilter{
		Status:       input.Status,
		DueBefore:    input.DueBefore,
		DueAfter:     input.DueAfter,
		IsReviewTask: input.IsReviewTask,
	}

	tasks, total, err := s.tasks.List(ctx, userID, filter, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, total, nil
}

// UpdateTask applies a partial update. Status changes to completed go through
// the same review-scheduling path as CompleteTask.
func (s *Service) UpdateTask(ctx context.Context, input UpdateTaskInput) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.Status != nil && *input.Status == domain.TaskStatusCompleted {
		return s.CompleteTask(ctx, input.TaskID)
	}

	params := domain.TaskUpdateParams{
		Title:            input.Title,
		Description:      input.Description,
		Difficulty:       input.Difficulty,
		Importance:       input.Importance,
		EstimatedMinutes: input.EstimatedMinutes,
		Intensity:        input.Intensity,
		Status:           input.Status,
	}
	if input.DueDate != nil {
		due := domain.Midnight(*input.DueDate)
		params.DueDate = &due
	}

	task, err := s.tasks.Update(ctx, userID, input.TaskID, params)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	s.log.InfoContext(ctx, "task updated",
		slog.String("user_id", userID.String()),
		slog.String("task_id", task.ID.String()),
	)

	return task, nil
}

// DeleteTask removes a task owned by the authenticated user.
func (s *Service) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if taskID == uuid.Nil {
		return domain.NewValidationError("task_id", "required")
	}

	if err := s.tasks.Delete(ctx, userID, taskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	s.log.InfoContext(ctx, "task deleted",
		slog.String("user_id", userID.String()),
		slog.String("task_id", taskID.String()),
	)

	return nil
}
