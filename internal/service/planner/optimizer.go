package planner

import (
	"math"
	"sort"
	"time"

	"github.com/velocity-study/velocity-backend/internal/domain"
)

// GenerateTimeSlots partitions a single day into up to five chronological
// segments from an energy profile: a low-energy morning before the peak
// (only when the peak starts after 08:00), the high-energy peak window, a
// high-energy stretch between peak end and slump start when one exists, the
// low-energy slump, and a low-energy evening running until 23:00. The same
// template is replicated for every day of a scheduling horizon.
func GenerateTimeSlots(profile domain.EnergyProfile) []domain.TimeSlot {
	var slots []domain.TimeSlot

	if profile.PeakStart > DayStartMinute {
		slots = append(slots, domain.TimeSlot{
			StartMinute:   DayStartMinute,
			EndMinute:     profile.PeakStart,
			DurationHours: float64(profile.PeakStart-DayStartMinute) / 60,
			Energy:        domain.EnergyLow,
		})
	}

	slots = append(slots, domain.TimeSlot{
		StartMinute:   profile.PeakStart,
		EndMinute:     profile.PeakEnd,
		DurationHours: float64(profile.PeakEnd-profile.PeakStart) / 60,
		Energy:        domain.EnergyHigh,
	})

	if profile.SlumpStart > profile.PeakEnd {
		slots = append(slots, domain.TimeSlot{
			StartMinute:   profile.PeakEnd,
			EndMinute:     profile.SlumpStart,
			DurationHours: float64(profile.SlumpStart-profile.PeakEnd) / 60,
			Energy:        domain.EnergyHigh,
		})
	}

	slots = append(slots, domain.TimeSlot{
		StartMinute:   profile.SlumpStart,
		EndMinute:     profile.SlumpEnd,
		DurationHours: float64(profile.SlumpEnd-profile.SlumpStart) / 60,
		Energy:        domain.EnergyLow,
	})

	if profile.SlumpEnd < DayEndMinute {
		slots = append(slots, domain.TimeSlot{
			StartMinute:   profile.SlumpEnd,
			EndMinute:     DayEndMinute,
			DurationHours: float64(DayEndMinute-profile.SlumpEnd) / 60,
			Energy:        domain.EnergyLow,
		})
	}

	return slots
}

// CognitiveLoad is the priority score scaled by a session-length multiplier:
// tasks near or above twice the 45-minute baseline weigh up to 2×. Overdue
// tasks short-circuit to the sentinel so they are always placed first.
func CognitiveLoad(task domain.Task, ref time.Time) float64 {
	if task.DaysUntilDue(ref) <= 0 {
		return OverdueSentinel
	}

	baseLoad := PriorityScore(task, ref)
	multiplier := math.Min(float64(task.EstimatedMinutes)/BaselineSessionMinutes, LoadMultiplierCap)
	return baseLoad * multiplier
}

// ScoreTaskSlotMatch rates how well a task fits a slot: +100 when intensity
// and slot energy agree on the high/low axis, a flat +50 for medium
// intensity anywhere, −30 for a mismatch, and +20 extra when the task's
// whole-hour requirement fits the slot's remaining duration.
func ScoreTaskSlotMatch(task domain.Task, slot domain.TimeSlot) float64 {
	var score float64

	switch {
	case task.Intensity == domain.IntensityHigh && slot.Energy == domain.EnergyHigh:
		score += 100
	case task.Intensity == domain.IntensityLow && slot.Energy == domain.EnergyLow:
		score += 100
	case task.Intensity == domain.IntensityMedium:
		score += 50
	default:
		score -= 30
	}

	if requiredHours(task) <= slot.DurationHours {
		score += 20
	}

	return score
}

func requiredHours(task domain.Task) float64 {
	return math.Ceil(float64(task.EstimatedMinutes) / 60)
}

// daySlots carries the mutable remaining capacity for one day of the horizon.
type daySlots struct {
	date  time.Time
	slots []domain.TimeSlot
}

// OptimizeSchedule maps tasks onto (day, slot) pairs across the horizon
// [start, end]. Tasks are processed in cognitive-load order, heaviest first,
// and each takes the single best-scoring slot on any day strictly before its
// due date. A placement consumes whole hours of the slot's remaining
// duration; tasks whose best slot cannot hold them are dropped from the
// result. Stored task records are never mutated — the output is a derived
// schedule only.
func OptimizeSchedule(tasks []domain.Task, profile domain.EnergyProfile, start, end, ref time.Time) []domain.ScheduledTask {
	sorted := make([]domain.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CognitiveLoad(sorted[i], ref) > CognitiveLoad(sorted[j], ref)
	})

	template := GenerateTimeSlots(profile)
	var horizon []daySlots
	for d := domain.Midnight(start); !d.After(domain.Midnight(end)); d = d.AddDate(0, 0, 1) {
		slots := make([]domain.TimeSlot, len(template))
		copy(slots, template)
		horizon = append(horizon, daySlots{date: d, slots: slots})
	}

	var scheduled []domain.ScheduledTask
	for _, task := range sorted {
		due := domain.Midnight(task.DueDate)

		var (
			best      *domain.TimeSlot
			bestDate  time.Time
			bestScore float64
			found     bool
		)
		for di := range horizon {
			day := &horizon[di]
			if !day.date.Before(due) {
				continue
			}
			for si := range day.slots {
				score := ScoreTaskSlotMatch(task, day.slots[si])
				if !found || score > bestScore {
					best = &day.slots[si]
					bestDate = day.date
					bestScore = score
					found = true
				}
			}
		}

		if !found {
			continue
		}

		hours := requiredHours(task)
		if best.DurationHours < hours {
			continue
		}

		scheduled = append(scheduled, domain.ScheduledTask{
			Task:           task,
			Date:           bestDate,
			StartMinute:    best.StartMinute,
			SessionMinutes: int(math.Min(hours*60, best.DurationHours*60)),
		})
		best.DurationHours -= hours
	}

	return scheduled
}

// TaskRecommendations answers "what should I do right now": it finds the
// slot covering the current wall-clock time, filters tasks compatible with
// that slot's energy level (low energy excludes high-intensity work, high
// energy excludes low-intensity filler), and returns the top tasks by
// cognitive load.
func TaskRecommendations(tasks []domain.Task, profile domain.EnergyProfile, now time.Time) []domain.Task {
	slots := GenerateTimeSlots(profile)
	currentMinute := now.Hour()*60 + now.Minute()

	energy := domain.EnergyLow
	for _, slot := range slots {
		if currentMinute >= slot.StartMinute && currentMinute < slot.EndMinute {
			energy = slot.Energy
			break
		}
	}

	var compatible []domain.Task
	for _, t := range tasks {
		if energy == domain.EnergyHigh {
			if t.Intensity != domain.IntensityLow {
				compatible = append(compatible, t)
			}
		} else {
			if t.Intensity == domain.IntensityLow || t.Intensity == domain.IntensityMedium {
				compatible = append(compatible, t)
			}
		}
	}

	sort.SliceStable(compatible, func(i, j int) bool {
		return CognitiveLoad(compatible[i], now) > CognitiveLoad(compatible[j], now)
	})

	if len(compatible) > RecommendationLimit {
		compatible = compatible[:RecommendationLimit]
	}
	return compatible
}
