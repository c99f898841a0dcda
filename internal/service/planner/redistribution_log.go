package planner

import (
	"context"
	"fmt"

	"github.com/velocity-study/velocity-backend/internal/domain"
	"github.com/velocity-study/velocity-backend/pkg/ctxutil"
)

const (
	defaultLogPageSize = 20
	maxLogPageSize     = 100
)

// ListRedistributions returns the user's redistribution history, newest
// first, plus the total count for pagination.
func (s *Service) ListRedistributions(ctx context.Context, limit, offset int) ([]domain.RedistributionResult, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if limit <= 0 {
		limit = defaultLogPageSize
	}
	if limit > maxLogPageSize {
		limit = maxLogPageSize
	}
	if offset < 0 {
		offset = 0
	}

	results, total, err := s.redistributions.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list redistributions: %w", err)
	}
	return results, total, nil
}
