package domain

import (
	"time"

	"github.com/google/uuid"
)

// RedistributionResult records one task's catch-up relocation. Persisted by
// the caller both as an audit log entry and as a task due-date update.
type RedistributionResult struct {
	ID              uuid.UUID
	TaskID          uuid.UUID
	UserID          uuid.UUID
	OriginalDueDate time.Time
	NewDueDate      time.Time
	PriorityScore   float64
	Reason          string
	CreatedAt       time.Time
}

// CatchUpPlan is the full output of one catch-up run. RequestedCount and
// PlacedCount may differ: tasks that fit nowhere are omitted, not failed.
type CatchUpPlan struct {
	Redistributions []RedistributionResult
	Recommendations []string
	Urgency         UrgencyLevel
	RequestedCount  int
	PlacedCount     int
}

// ScheduledTask is a derived (task, day, slot) assignment produced by the
// schedule optimizer. It annotates a plan; the stored task is untouched.
type ScheduledTask struct {
	Task           Task
	Date           time.Time
	StartMinute    int
	SessionMinutes int
}
