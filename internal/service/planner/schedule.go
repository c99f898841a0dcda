package planner

import (
	"context"
	"fmt"

	"github.com/velocity-study/velocity-backend/internal/domain"
	"github.com/velocity-study/velocity-backend/pkg/ctxutil"
)

// GetSchedule runs the optimizer over the requested horizon and returns the
// derived (task, day, slot) assignments. Nothing is persisted; the schedule
// is recomputed on every request so it always reflects current tasks.
func (s *Service) GetSchedule(ctx context.Context, input GetScheduleInput) ([]domain.ScheduledTask, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get energy profile: %w", err)
	}
	if err := validateProfile(*profile); err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByUserID(ctx, userID, domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	var open []domain.Task
	for _, t := range tasks {
		if !t.IsCompleted() {
			open = append(open, t)
		}
	}

	return OptimizeSchedule(open, *profile, input.StartDate, input.EndDate, s.now()), nil
}

// GetRecommendations returns the tasks best suited to the user's energy
// level at the current moment.
func (s *Service) GetRecommendations(ctx context.Context) ([]domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get energy profile: %w", err)
	}
	if err := validateProfile(*profile); err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByUserID(ctx, userID, domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	var open []domain.Task
	for _, t := range tasks {
		if !t.IsCompleted() {
			open = append(open, t)
		}
	}

	return TaskRecommendations(open, *profile, s.now()), nil
}
