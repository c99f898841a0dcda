package planner

import (
	"time"

	"github.com/velocity-study/velocity-backend/internal/domain"
)

// GetScheduleInput holds the horizon for a schedule optimization run.
type GetScheduleInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// Validate checks all fields and collects all errors.
func (i GetScheduleInput) Validate() error {
	var errs []domain.FieldError

	if i.StartDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "required"})
	}
	if i.EndDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "required"})
	}
	if !i.StartDate.IsZero() && !i.EndDate.IsZero() {
		if i.EndDate.Before(i.StartDate) {
			errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
		}
		if domain.DaysUntil(i.StartDate, i.EndDate) > MaxScheduleHorizonDays {
			errs = append(errs, domain.FieldError{Field: "end_date", Message: "horizon too long (max 90 days)"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateProfile rejects energy profiles whose windows are degenerate:
// reversed boundaries or a peak that bleeds into the slump would produce
// negative-duration slots downstream, so they are refused up front.
func validateProfile(p domain.EnergyProfile) error {
	var errs []domain.FieldError

	if p.PeakStart >= p.PeakEnd {
		errs = append(errs, domain.FieldError{Field: "peak_window", Message: "peak start must be before peak end"})
	}
	if p.SlumpStart >= p.SlumpEnd {
		errs = append(errs, domain.FieldError{Field: "slump_window", Message: "slump start must be before slump end"})
	}
	if p.PeakEnd > p.SlumpStart {
		errs = append(errs, domain.FieldError{Field: "slump_window", Message: "slump must not overlap peak"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
