package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velocity-study/velocity-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a throwaway password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$04$testhashtesthashtesthash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedTask creates a pending medium-intensity task for the given user,
// due the given number of days from today.
func SeedTask(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, dueInDays int) domain.Task {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	task := domain.Task{
		ID:               uuid.New(),
		UserID:           userID,
		Title:            "Task " + suffix,
		Description:      "seeded task",
		Difficulty:       5,
		Importance:       5,
		EstimatedMinutes: 60,
		DueDate:          domain.Midnight(time.Now().UTC().AddDate(0, 0, dueInDays)),
		Intensity:        domain.IntensityMedium,
		Status:           domain.TaskStatusPending,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tasks (id, user_id, title, description, difficulty, importance,
		                    estimated_minutes, due_date, intensity, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		task.ID, task.UserID, task.Title, task.Description, task.Difficulty, task.Importance,
		task.EstimatedMinutes, task.DueDate, task.Intensity, task.Status,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask insert task: %v", err)
	}

	return task
}

// SeedEnergyProfile creates an energy profile with a 09:00-12:00 peak and a
// 14:00-16:00 slump for the given user.
func SeedEnergyProfile(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.EnergyProfile {
	t.Helper()
	ctx := context.Background()

	profile := domain.EnergyProfile{
		UserID:                  userID,
		PeakStart:               9 * 60,
		PeakEnd:                 12 * 60,
		SlumpStart:              14 * 60,
		SlumpEnd:                16 * 60,
		DailyStudyHours:         6,
		PreferredSessionMinutes: 45,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO energy_profiles (user_id, peak_start, peak_end, slump_start, slump_end,
		                              daily_study_hours, preferred_session_minutes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		profile.UserID, profile.PeakStart, profile.PeakEnd, profile.SlumpStart, profile.SlumpEnd,
		profile.DailyStudyHours, profile.PreferredSessionMinutes,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEnergyProfile insert: %v", err)
	}

	return profile
}
