package planner

// Scheduling policy constants. The numeric values encode product policy
// carried over from the shipped planner; changing them changes user-visible
// behavior, so they live here as the single source of truth.
const (
	// OverdueSentinel is the priority assigned to overdue and due-today
	// tasks. It must exceed the maximum reachable formula value of
	// (10×10)/1 = 100 so an overdue task always outranks a future one.
	OverdueSentinel = 1000.0

	// AtRiskWindowDays: a non-overdue task is only at risk when due within
	// this many days.
	AtRiskWindowDays = 3

	// AtRiskPriorityThreshold: minimum priority for a near-due task to be
	// pulled into a catch-up run.
	AtRiskPriorityThreshold = 30.0

	// DailyCapacityMinutes is the fixed per-day study budget used by the
	// catch-up redistribution.
	DailyCapacityMinutes = 360

	// MinimumGapMinutes is the breathing room required between a task and
	// the rest of a day's load before the day counts as a candidate.
	MinimumGapMinutes = 30

	// ExamBufferDays keeps the last days before the exam free for revision;
	// redistribution never places a task inside this window.
	ExamBufferDays = 3

	// BaselineSessionMinutes is the session length against which cognitive
	// load is normalized.
	BaselineSessionMinutes = 45

	// LoadMultiplierCap bounds the estimated-time scaling of cognitive load.
	LoadMultiplierCap = 2.0

	// Urgency tier boundaries on the average at-risk priority.
	UrgencyCriticalThreshold = 100.0
	UrgencyHighThreshold     = 70.0
	UrgencyMediumThreshold   = 40.0

	// RecommendationLimit caps the "what should I do right now" list.
	RecommendationLimit = 5

	// MaxScheduleHorizonDays bounds a single optimization request.
	MaxScheduleHorizonDays = 90

	// Slot generation boundaries: mornings start no earlier than 08:00 and
	// evenings run until 23:00.
	DayStartMinute = 8 * 60
	DayEndMinute   = 23 * 60
)
