// Package reviewschedule implements the ReviewSchedule repository using PostgreSQL.
package reviewschedule

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/velocity-study/velocity-backend/internal/adapter/postgres"
	"github.com/velocity-study/velocity-backend/internal/domain"
)

// Repo provides review schedule persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review schedule repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const scheduleColumns = `id, task_id, user_id, study_date,
	due_day1, due_day3, due_day7, due_day30,
	completed_day1, completed_day3, completed_day7, completed_day30,
	created_at`

// Create inserts a new review schedule and returns the persisted row.
func (r *Repo) Create(ctx context.Context, schedule *domain.ReviewSchedule) (*domain.ReviewSchedule, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO review_schedules (task_id, user_id, study_date,
		                               due_day1, due_day3, due_day7, due_day30)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+scheduleColumns,
		schedule.TaskID, schedule.UserID, schedule.StudyDate,
		schedule.DueDates[0], schedule.DueDates[1], schedule.DueDates[2], schedule.DueDates[3],
	)

	created, err := scanSchedule(row)
	if err != nil {
		return nil, postgres.MapError(err, "review_schedule", uuid.Nil)
	}
	return created, nil
}

// GetByID returns a schedule owned by the given user.
func (r *Repo) GetByID(ctx context.Context, userID, scheduleID uuid.UUID) (*domain.ReviewSchedule, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+scheduleColumns+` FROM review_schedules WHERE id = $1 AND user_id = $2`,
		scheduleID, userID,
	)

	s, err := scanSchedule(row)
	if err != nil {
		return nil, postgres.MapError(err, "review_schedule", scheduleID)
	}
	return s, nil
}

// GetByTaskID returns the schedule attached to the given task, if any.
func (r *Repo) GetByTaskID(ctx context.Context, userID, taskID uuid.UUID) (*domain.ReviewSchedule, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+scheduleColumns+` FROM review_schedules WHERE task_id = $1 AND user_id = $2`,
		taskID, userID,
	)

	s, err := scanSchedule(row)
	if err != nil {
		return nil, postgres.MapError(err, "review_schedule", taskID)
	}
	return s, nil
}

// ListByUserID returns all of the user's schedules, oldest study date first.
func (r *Repo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.ReviewSchedule, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+scheduleColumns+` FROM review_schedules
		 WHERE user_id = $1
		 ORDER BY study_date ASC, created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "review_schedule", uuid.Nil)
	}
	defer rows.Close()

	var schedules []domain.ReviewSchedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, postgres.MapError(err, "review_schedule", uuid.Nil)
		}
		schedules = append(schedules, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "review_schedule", uuid.Nil)
	}
	return schedules, nil
}

// SetCompleted stores the full completion flag set and returns the updated row.
func (r *Repo) SetCompleted(ctx context.Context, userID, scheduleID uuid.UUID, completed [domain.NumCheckpoints]bool) (*domain.ReviewSchedule, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE review_schedules
		 SET completed_day1 = $3, completed_day3 = $4, completed_day7 = $5, completed_day30 = $6
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+scheduleColumns,
		scheduleID, userID,
		completed[0], completed[1], completed[2], completed[3],
	)

	s, err := scanSchedule(row)
	if err != nil {
		return nil, postgres.MapError(err, "review_schedule", scheduleID)
	}
	return s, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSchedule(row rowScanner) (*domain.ReviewSchedule, error) {
	var s domain.ReviewSchedule
	err := row.Scan(
		&s.ID, &s.TaskID, &s.UserID, &s.StudyDate,
		&s.DueDates[0], &s.DueDates[1], &s.DueDates[2], &s.DueDates[3],
		&s.Completed[0], &s.Completed[1], &s.Completed[2], &s.Completed[3],
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
