package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single unit of study work inside one study period.
// Difficulty and importance are clamped to [1,10] at input validation;
// EstimatedMinutes is always positive.
type Task struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Title            string
	Description      string
	Difficulty       int
	Importance       int
	EstimatedMinutes int
	DueDate          time.Time // calendar date, midnight UTC
	Intensity        Intensity
	Status           TaskStatus
	IsReviewTask     bool
	OriginalTaskID   *uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TaskFilter narrows task listings. Nil fields are ignored.
type TaskFilter struct {
	Status       *TaskStatus
	DueBefore    *time.Time
	DueAfter     *time.Time
	IsReviewTask *bool
}

// TaskUpdateParams carries a partial task update. Nil fields are left as-is.
type TaskUpdateParams struct {
	Title            *string
	Description      *string
	Difficulty       *int
	Importance       *int
	EstimatedMinutes *int
	DueDate          *time.Time
	Intensity        *Intensity
	Status           *TaskStatus
}

// IsCompleted reports whether the task no longer counts toward daily load.
func (t Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// DaysUntilDue returns the whole-day distance from ref to the due date.
// Zero means due today, negative means overdue.
func (t Task) DaysUntilDue(ref time.Time) int {
	return DaysUntil(ref, t.DueDate)
}
