package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/velocity-study/velocity-backend/internal/domain"
	"github.com/velocity-study/velocity-backend/pkg/ctxutil"
)

// CompleteReview marks one checkpoint done. Completing an already-completed
// checkpoint is a no-op returning the current schedule, so retried requests
// are harmless. Early completion is allowed: finishing a review ahead of its
// due date is a feature, not an error.
func (s *Service) CompleteReview(ctx context.Context, input CompleteReviewInput) (*domain.ReviewSchedule, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	schedule, err := s.schedules.GetByID(ctx, userID, input.ScheduleID)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	if schedule.Completed[input.Checkpoint] {
		return schedule, nil
	}

	completed := schedule.Completed
	completed[input.Checkpoint] = true

	updated, err := s.schedules.SetCompleted(ctx, userID, input.ScheduleID, completed)
	if err != nil {
		return nil, fmt.Errorf("set completed: %w", err)
	}

	s.log.InfoContext(ctx, "review completed",
		slog.String("user_id", userID.String()),
		slog.String("schedule_id", input.ScheduleID.String()),
		slog.String("checkpoint", input.Checkpoint.String()),
	)

	return updated, nil
}
