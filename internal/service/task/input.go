package task

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/velocity-study/velocity-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
	maxEstimatedMins  = 24 * 60
)

// CreateTaskInput holds the parameters for creating a task.
type CreateTaskInput struct {
	Title            string
	Description      string
	Difficulty       int
	Importance       int
	EstimatedMinutes int
	DueDate          time.Time
	Intensity        domain.Intensity
}

// Validate checks all fields and collects all errors.
func (i CreateTaskInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if i.Difficulty < 1 || i.Difficulty > 10 {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be 1-10"})
	}
	if i.Importance < 1 || i.Importance > 10 {
		errs = append(errs, domain.FieldError{Field: "importance", Message: "must be 1-10"})
	}
	if i.EstimatedMinutes <= 0 {
		errs = append(errs, domain.FieldError{Field: "estimated_minutes", Message: "must be positive"})
	}
	if i.EstimatedMinutes > maxEstimatedMins {
		errs = append(errs, domain.FieldError{Field: "estimated_minutes", Message: "max 1440 (one day)"})
	}
	if i.DueDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "required"})
	}
	if !i.Intensity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "intensity", Message: "must be low, medium or high"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTaskInput holds a partial task update. Nil fields are left unchanged.
type UpdateTaskInput struct {
	TaskID           uuid.UUID
	Title            *string
	Description      *string
	Difficulty       *int
	Importance       *int
	EstimatedMinutes *int
	DueDate          *time.Time
	Intensity        *domain.Intensity
	Status           *domain.TaskStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateTaskInput) Validate() error {
	var errs []domain.FieldError

	if i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.Difficulty == nil && i.Importance == nil &&
		i.EstimatedMinutes == nil && i.DueDate == nil && i.Intensity == nil && i.Status == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if i.Difficulty != nil && (*i.Difficulty < 1 || *i.Difficulty > 10) {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be 1-10"})
	}
	if i.Importance != nil && (*i.Importance < 1 || *i.Importance > 10) {
		errs = append(errs, domain.FieldError{Field: "importance", Message: "must be 1-10"})
	}
	if i.EstimatedMinutes != nil && (*i.EstimatedMinutes <= 0 || *i.EstimatedMinutes > maxEstimatedMins) {
		errs = append(errs, domain.FieldError{Field: "estimated_minutes", Message: "must be 1-1440"})
	}
	if i.DueDate != nil && i.DueDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "must be a valid date"})
	}
	if i.Intensity != nil && !i.Intensity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "intensity", Message: "must be low, medium or high"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be pending, in_progress or completed"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListTasksInput narrows and paginates a task listing.
type ListTasksInput struct {
	Status       *domain.TaskStatus
	DueBefore    *time.Time
	DueAfter     *time.Time
	IsReviewTask *bool
	Limit        int
	Offset       int
}

// Validate checks all fields and collects all errors.
func (i ListTasksInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be pending, in_progress or completed"})
	}
	if i.Limit < 0 || i.Limit > MaxTasksPageSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be 0-100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
