package review

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/velocity-study/velocity-backend/internal/domain"
)

// Pure spaced-repetition math. No DB, no context, no logger — the service
// layer feeds it loaded schedules and persists what comes back.

// NewSchedule builds the fixed four-checkpoint plan for a task studied on
// studyDate. AddDate handles month boundaries, so a January 30 study date
// gets its 30-day review on March 1, not on a fabricated February 30.
func NewSchedule(taskID, userID uuid.UUID, studyDate time.Time) domain.ReviewSchedule {
	day := domain.Midnight(studyDate)

	s := domain.ReviewSchedule{
		TaskID:    taskID,
		UserID:    userID,
		StudyDate: day,
	}
	for _, cp := range domain.Checkpoints() {
		s.DueDates[cp] = day.AddDate(0, 0, cp.OffsetDays())
	}
	return s
}

// TodayReviews returns every incomplete checkpoint due exactly today.
func TodayReviews(schedules []domain.ReviewSchedule, today time.Time) []domain.UpcomingReview {
	day := domain.Midnight(today)

	var due []domain.UpcomingReview
	for _, s := range schedules {
		for _, cp := range domain.Checkpoints() {
			if s.Completed[cp] {
				continue
			}
			if s.DueDates[cp].Equal(day) {
				due = append(due, domain.UpcomingReview{Schedule: s, Checkpoint: cp, DaysUntil: 0})
			}
		}
	}
	return due
}

// UpcomingReviews flattens all incomplete checkpoints falling within
// [today, today+horizonDays] into one list sorted soonest first.
func UpcomingReviews(schedules []domain.ReviewSchedule, today time.Time, horizonDays int) []domain.UpcomingReview {
	day := domain.Midnight(today)

	var upcoming []domain.UpcomingReview
	for _, s := range schedules {
		for _, cp := range domain.Checkpoints() {
			if s.Completed[cp] {
				continue
			}
			daysUntil := domain.DaysUntil(day, s.DueDates[cp])
			if daysUntil < 0 || daysUntil > horizonDays {
				continue
			}
			upcoming = append(upcoming, domain.UpcomingReview{
				Schedule:   s,
				Checkpoint: cp,
				DaysUntil:  daysUntil,
			})
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DaysUntil < upcoming[j].DaysUntil
	})
	return upcoming
}

// Retention scores one schedule in quarters: each completed checkpoint is
// worth 25 points.
func Retention(s domain.ReviewSchedule) float64 {
	var done int
	for _, completed := range s.Completed {
		if completed {
			done++
		}
	}
	return float64(done) * 100 / domain.NumCheckpoints
}

// AggregateStats summarizes retention across all of a user's schedules.
// An empty input yields the zero value, average included.
func AggregateStats(schedules []domain.ReviewSchedule) domain.ReviewStats {
	stats := domain.ReviewStats{TotalSchedules: len(schedules)}
	if len(schedules) == 0 {
		return stats
	}

	var totalRetention float64
	for _, s := range schedules {
		r := Retention(s)
		totalRetention += r
		switch r {
		case 100:
			stats.CompletedFullCycle++
		case 0:
			stats.NotStarted++
		default:
			stats.PartiallyCompleted++
		}
	}
	stats.AverageRetention = totalRetention / float64(len(schedules))
	return stats
}
