package planner

import (
	"time"

	"github.com/velocity-study/velocity-backend/internal/domain"
)

// PriorityScore computes the urgency of a task at a reference date using
// P = (difficulty × importance) / daysRemaining. Both dates are normalized
// to midnight, so time-of-day never changes the day count. Overdue and
// due-today tasks collapse to OverdueSentinel — maximal urgency.
//
// Pure function: no clock, no I/O, never fails (inputs are pre-validated).
func PriorityScore(task domain.Task, ref time.Time) float64 {
	daysRemaining := task.DaysUntilDue(ref)
	if daysRemaining <= 0 {
		return OverdueSentinel
	}
	return float64(task.Difficulty*task.Importance) / float64(daysRemaining)
}
