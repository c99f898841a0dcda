package domain

// TaskStatus represents the lifecycle state of a study task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Intensity represents a task's qualitative cognitive demand tier.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

func (i Intensity) String() string { return string(i) }

func (i Intensity) IsValid() bool {
	switch i {
	case IntensityLow, IntensityMedium, IntensityHigh:
		return true
	}
	return false
}

// EnergyLevel classifies a time slot by the user's expected alertness.
type EnergyLevel string

const (
	EnergyHigh EnergyLevel = "high"
	EnergyLow  EnergyLevel = "low"
)

func (e EnergyLevel) String() string { return string(e) }

func (e EnergyLevel) IsValid() bool {
	return e == EnergyHigh || e == EnergyLow
}

// UrgencyLevel is the aggregate tier of a catch-up plan.
type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "low"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

func (u UrgencyLevel) String() string { return string(u) }

func (u UrgencyLevel) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}
