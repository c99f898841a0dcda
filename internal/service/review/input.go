package review

import (
	"github.com/google/uuid"
	"github.com/velocity-study/velocity-backend/internal/domain"
)

// CreateReviewTasksInput identifies the studied task to build a schedule for.
type CreateReviewTasksInput struct {
	TaskID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateReviewTasksInput) Validate() error {
	if i.TaskID == uuid.Nil {
		return domain.NewValidationError("task_id", "required")
	}
	return nil
}

// CompleteReviewInput identifies one checkpoint of one schedule.
type CompleteReviewInput struct {
	ScheduleID uuid.UUID
	Checkpoint domain.ReviewCheckpoint
}

// Validate checks all fields and collects all errors.
func (i CompleteReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.ScheduleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "schedule_id", Message: "required"})
	}
	if !i.Checkpoint.IsValid() {
		errs = append(errs, domain.FieldError{Field: "checkpoint", Message: "must be 0-3"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
