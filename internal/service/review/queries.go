package review

import (
	"context"
	"fmt"

	"github.com/velocity-study/velocity-backend/internal/domain"
	"github.com/velocity-study/velocity-backend/pkg/ctxutil"
)

// ListSchedules returns all of the user's review schedules.
func (s *Service) ListSchedules(ctx context.Context) ([]domain.ReviewSchedule, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	schedules, err := s.schedules.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return schedules, nil
}

// TodayReviews returns the incomplete checkpoints due today.
func (s *Service) TodayReviews(ctx context.Context) ([]domain.UpcomingReview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	schedules, err := s.schedules.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return TodayReviews(schedules, s.now()), nil
}

// UpcomingReviews returns incomplete checkpoints due within horizonDays,
// soonest first. Non-positive horizons fall back to the default week.
func (s *Service) UpcomingReviews(ctx context.Context, horizonDays int) ([]domain.UpcomingReview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if horizonDays <= 0 {
		horizonDays = DefaultUpcomingHorizonDays
	}

	schedules, err := s.schedules.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return UpcomingReviews(schedules, s.now(), horizonDays), nil
}

// Stats aggregates retention across all of the user's schedules.
func (s *Service) Stats(ctx context.Context) (domain.ReviewStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ReviewStats{}, domain.ErrUnauthorized
	}

	schedules, err := s.schedules.ListByUserID(ctx, userID)
	if err != nil {
		return domain.ReviewStats{}, fmt.Errorf("list schedules: %w", err)
	}
	return AggregateStats(schedules), nil
}
