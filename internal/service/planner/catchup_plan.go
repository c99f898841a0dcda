package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/velocity-study/velocity-backend/internal/domain"
	"github.com/velocity-study/velocity-backend/pkg/ctxutil"
)

// GetCatchUpPlan computes a catch-up plan for the authenticated user without
// persisting anything. The client can preview the proposed moves and then
// confirm via ApplyRedistribution.
func (s *Service) GetCatchUpPlan(ctx context.Context) (*domain.CatchUpPlan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	plan, err := s.buildCatchUpPlan(ctx, userID)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// ApplyRedistribution runs the catch-up engine and commits its outcome: each
// redistributed task gets its new due date, and every move is recorded in the
// redistribution log. Both writes happen in one transaction so the log never
// disagrees with the tasks.
func (s *Service) ApplyRedistribution(ctx context.Context) (*domain.CatchUpPlan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	plan, err := s.buildCatchUpPlan(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(plan.Redistributions) == 0 {
		return plan, nil
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, r := range plan.Redistributions {
			if err := s.tasks.UpdateDueDate(txCtx, userID, r.TaskID, r.NewDueDate); err != nil {
				return fmt.Errorf("update due date for task %s: %w", r.TaskID, err)
			}
		}

		stored, err := s.redistributions.CreateBatch(txCtx, plan.Redistributions)
		if err != nil {
			return fmt.Errorf("record redistributions: %w", err)
		}
		plan.Redistributions = stored

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "redistribution applied",
		slog.String("user_id", userID.String()),
		slog.Int("at_risk", plan.RequestedCount),
		slog.Int("placed", plan.PlacedCount),
		slog.String("urgency", plan.Urgency.String()),
	)

	return plan, nil
}

// buildCatchUpPlan loads everything the catch-up engine needs and runs it.
func (s *Service) buildCatchUpPlan(ctx context.Context, userID uuid.UUID) (*domain.CatchUpPlan, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user.ExamDate == nil {
		return nil, domain.NewValidationError("exam_date", "set an exam date before running catch-up")
	}

	tasks, err := s.tasks.ListByUserID(ctx, userID, domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	now := s.now()
	atRisk := IdentifyAtRiskTasks(tasks, now)
	plan := GenerateCatchUpPlan(atRisk, tasks, *user.ExamDate, now)

	return &plan, nil
}
