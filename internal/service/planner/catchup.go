package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/velocity-study/velocity-backend/internal/domain"
)

// IdentifyAtRiskTasks returns the tasks that need a catch-up run: anything
// not completed that is already overdue, or due within AtRiskWindowDays
// with a priority above AtRiskPriorityThreshold.
//
// Pure function over the input slice; order of the result follows input order.
func IdentifyAtRiskTasks(tasks []domain.Task, ref time.Time) []domain.Task {
	var atRisk []domain.Task
	for _, t := range tasks {
		if t.IsCompleted() {
			continue
		}
		daysUntilDue := t.DaysUntilDue(ref)
		if daysUntilDue < 0 {
			atRisk = append(atRisk, t)
			continue
		}
		if daysUntilDue < AtRiskWindowDays && PriorityScore(t, ref) > AtRiskPriorityThreshold {
			atRisk = append(atRisk, t)
		}
	}
	return atRisk
}

// dayLoad tracks committed minutes per date across one redistribution pass.
// Local to a single invocation — callers must not assume determinism across
// calls if the task list changed in between.
type dayLoad map[string]int

// loadFromTasks builds the initial per-date load map from every
// non-completed task's current due date.
func loadFromTasks(tasks []domain.Task) dayLoad {
	load := make(dayLoad, len(tasks))
	for _, t := range tasks {
		if t.IsCompleted() {
			continue
		}
		load[domain.DateKey(t.DueDate)] += t.EstimatedMinutes
	}
	return load
}

// candidateDays walks the window day by day and collects every date that
// can still absorb the task plus the minimum gap. Each accepted date has
// its load committed immediately, so later tasks in the same pass see the
// reduced capacity: greedy single-pass packing, deliberately not optimal.
func candidateDays(estimatedMinutes int, start, end time.Time, load dayLoad) []time.Time {
	var days []time.Time
	for d := domain.Midnight(start); !d.After(domain.Midnight(end)); d = d.AddDate(0, 0, 1) {
		key := domain.DateKey(d)
		available := DailyCapacityMinutes - load[key]
		if available >= estimatedMinutes+MinimumGapMinutes {
			days = append(days, d)
			load[key] += estimatedMinutes
		}
	}
	return days
}

// RedistributeTasks assigns new due dates to at-risk tasks, highest priority
// first, inside the window [ref+1 day, examDate−ExamBufferDays]. For each
// task the middle candidate date is chosen to spread load across the window
// instead of clustering at its start. Tasks that fit nowhere are omitted
// from the result — capacity exhaustion is an outcome, not an error.
func RedistributeTasks(atRisk, all []domain.Task, examDate, ref time.Time) []domain.RedistributionResult {
	load := loadFromTasks(all)

	sorted := make([]domain.Task, len(atRisk))
	copy(sorted, atRisk)
	sort.SliceStable(sorted, func(i, j int) bool {
		return PriorityScore(sorted[i], ref) > PriorityScore(sorted[j], ref)
	})

	windowStart := domain.Midnight(ref).AddDate(0, 0, 1)
	windowEnd := domain.Midnight(examDate).AddDate(0, 0, -ExamBufferDays)

	var results []domain.RedistributionResult
	for _, task := range sorted {
		days := candidateDays(task.EstimatedMinutes, windowStart, windowEnd, load)
		if len(days) == 0 {
			continue
		}

		newDue := days[len(days)/2]
		priority := PriorityScore(task, ref)

		results = append(results, domain.RedistributionResult{
			TaskID:          task.ID,
			UserID:          task.UserID,
			OriginalDueDate: domain.Midnight(task.DueDate),
			NewDueDate:      newDue,
			PriorityScore:   priority,
			Reason:          fmt.Sprintf("High priority (%.1f) - redistributed from overdue date", priority),
		})
	}

	return results
}

// GenerateCatchUpPlan wraps redistribution with an aggregate urgency tier and
// templated recommendations. The urgency tier comes from the average at-risk
// priority; the recommendations are threshold-driven text only.
func GenerateCatchUpPlan(atRisk, all []domain.Task, examDate, ref time.Time) domain.CatchUpPlan {
	redistributions := RedistributeTasks(atRisk, all, examDate, ref)

	var totalPriority float64
	for _, t := range atRisk {
		totalPriority += PriorityScore(t, ref)
	}
	avgPriority := 0.0
	if len(atRisk) > 0 {
		avgPriority = totalPriority / float64(len(atRisk))
	}

	urgency := domain.UrgencyLow
	switch {
	case avgPriority > UrgencyCriticalThreshold:
		urgency = domain.UrgencyCritical
	case avgPriority > UrgencyHighThreshold:
		urgency = domain.UrgencyHigh
	case avgPriority > UrgencyMediumThreshold:
		urgency = domain.UrgencyMedium
	}

	var recommendations []string
	if len(atRisk) > 5 {
		recommendations = append(recommendations,
			fmt.Sprintf("You have %d overdue tasks. Start with the highest priority ones.", len(atRisk)))
	}
	if avgPriority > 50 {
		recommendations = append(recommendations,
			"These are high-priority items. Consider breaking them into smaller sessions.")
	}
	recommendations = append(recommendations,
		"Use energy-based scheduling to optimize study sessions during peak hours.")
	if daysUntilExam := domain.DaysUntil(ref, examDate); daysUntilExam < 7 {
		recommendations = append(recommendations,
			fmt.Sprintf("Only %d days until exam! Focus on the most critical topics.", daysUntilExam))
	}

	return domain.CatchUpPlan{
		Redistributions: redistributions,
		Recommendations: recommendations,
		Urgency:         urgency,
		RequestedCount:  len(atRisk),
		PlacedCount:     len(redistributions),
	}
}
