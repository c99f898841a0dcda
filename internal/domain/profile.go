package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EnergyProfile is a user's declared circadian pattern. Window boundaries
// are stored as minutes since midnight; the peak window is expected to end
// before the slump window starts (enforced at input validation).
type EnergyProfile struct {
	UserID                  uuid.UUID
	PeakStart               int
	PeakEnd                 int
	SlumpStart              int
	SlumpEnd                int
	DailyStudyHours         int
	PreferredSessionMinutes int
	UpdatedAt               time.Time
}

// TimeSlot is a derived interval of one day. It is not persisted and gets
// regenerated per scheduling run from an EnergyProfile.
type TimeSlot struct {
	StartMinute   int
	EndMinute     int
	DurationHours float64
	Energy        EnergyLevel
}

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("parse clock %q: out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock converts minutes since midnight to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
