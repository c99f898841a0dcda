package user

import (
	"strings"
	"time"

	"github.com/velocity-study/velocity-backend/internal/domain"
)

// UpdateProfileInput holds parameters for profile update operation.
// All fields are optional (nil = don't change).
type UpdateProfileInput struct {
	Name     *string
	ExamDate *time.Time
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == nil && i.ExamDate == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be set"})
	}

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "cannot be empty"})
		} else if len(name) > 100 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
		}
	}

	if i.ExamDate != nil && i.ExamDate.Before(domain.Midnight(time.Now())) {
		errs = append(errs, domain.FieldError{Field: "exam_date", Message: "cannot be in the past"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEnergyProfileInput holds parameters for the energy profile upsert.
// Window boundaries are HH:MM clock strings.
type UpdateEnergyProfileInput struct {
	PeakStart               string
	PeakEnd                 string
	SlumpStart              string
	SlumpEnd                string
	DailyStudyHours         int
	PreferredSessionMinutes int
}

// Validate validates the energy profile input. The peak window must close
// before the slump window opens; both windows must run forward.
func (i UpdateEnergyProfileInput) Validate() error {
	var errs []domain.FieldError

	clock := func(field, value string) (int, bool) {
		minutes, err := domain.ParseClock(value)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be HH:MM"})
			return 0, false
		}
		return minutes, true
	}

	peakStart, okPS := clock("peak_start", i.PeakStart)
	peakEnd, okPE := clock("peak_end", i.PeakEnd)
	slumpStart, okSS := clock("slump_start", i.SlumpStart)
	slumpEnd, okSE := clock("slump_end", i.SlumpEnd)

	if okPS && okPE && peakStart >= peakEnd {
		errs = append(errs, domain.FieldError{Field: "peak_end", Message: "must be after peak_start"})
	}
	if okSS && okSE && slumpStart >= slumpEnd {
		errs = append(errs, domain.FieldError{Field: "slump_end", Message: "must be after slump_start"})
	}
	if okPE && okSS && peakEnd > slumpStart {
		errs = append(errs, domain.FieldError{Field: "slump_start", Message: "slump window must start after the peak window ends"})
	}

	if i.DailyStudyHours < 1 || i.DailyStudyHours > 16 {
		errs = append(errs, domain.FieldError{Field: "daily_study_hours", Message: "must be 1-16"})
	}
	if i.PreferredSessionMinutes < 15 || i.PreferredSessionMinutes > 240 {
		errs = append(errs, domain.FieldError{Field: "preferred_session_minutes", Message: "must be 15-240"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
