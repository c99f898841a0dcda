package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewCheckpoint indexes one of the four fixed spaced-repetition reviews.
type ReviewCheckpoint int

const (
	CheckpointDay1 ReviewCheckpoint = iota
	CheckpointDay3
	CheckpointDay7
	CheckpointDay30

	NumCheckpoints = 4
)

var checkpointOffsets = [NumCheckpoints]int{1, 3, 7, 30}

// OffsetDays returns the checkpoint's distance from the original study date.
func (c ReviewCheckpoint) OffsetDays() int {
	return checkpointOffsets[c]
}

func (c ReviewCheckpoint) String() string {
	switch c {
	case CheckpointDay1:
		return "1-day review"
	case CheckpointDay3:
		return "3-day review"
	case CheckpointDay7:
		return "7-day review"
	case CheckpointDay30:
		return "30-day review"
	}
	return "unknown review"
}

func (c ReviewCheckpoint) IsValid() bool {
	return c >= CheckpointDay1 && c <= CheckpointDay30
}

// Checkpoints lists all checkpoints in chronological order.
func Checkpoints() [NumCheckpoints]ReviewCheckpoint {
	return [NumCheckpoints]ReviewCheckpoint{CheckpointDay1, CheckpointDay3, CheckpointDay7, CheckpointDay30}
}

// ReviewSchedule is the spaced-repetition plan attached to one studied task.
// DueDates[c] is always exactly StudyDate + c.OffsetDays() days; Completed
// flags only ever transition false→true.
type ReviewSchedule struct {
	ID        uuid.UUID
	TaskID    uuid.UUID
	UserID    uuid.UUID
	StudyDate time.Time
	DueDates  [NumCheckpoints]time.Time
	Completed [NumCheckpoints]bool
	CreatedAt time.Time
}

// UpcomingReview annotates one incomplete checkpoint of a schedule with its
// distance from today.
type UpcomingReview struct {
	Schedule   ReviewSchedule
	Checkpoint ReviewCheckpoint
	DaysUntil  int
}

// ReviewStats aggregates retention across a user's schedules.
type ReviewStats struct {
	TotalSchedules     int
	CompletedFullCycle int
	PartiallyCompleted int
	NotStarted         int
	AverageRetention   float64
}
