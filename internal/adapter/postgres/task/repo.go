// Package task implements the Task repository using PostgreSQL.
package task

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/velocity-study/velocity-backend/internal/adapter/postgres"
	"github.com/velocity-study/velocity-backend/internal/domain"
)

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new task repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const taskColumns = `id, user_id, title, description, difficulty, importance, estimated_minutes,
	due_date, intensity, status, is_review_task, original_task_id, created_at, updated_at`

// Create inserts a new task and returns the persisted row.
func (r *Repo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO tasks (user_id, title, description, difficulty, importance,
		                    estimated_minutes, due_date, intensity, status,
		                    is_review_task, original_task_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+taskColumns,
		t.UserID, t.Title, t.Description, t.Difficulty, t.Importance,
		t.EstimatedMinutes, t.DueDate, t.Intensity, t.Status,
		t.IsReviewTask, t.OriginalTaskID,
	)

	created, err := scanTask(row)
	if err != nil {
		return nil, postgres.MapError(err, "task", uuid.Nil)
	}
	return created, nil
}

// CreateBatch inserts several tasks in one round trip and returns the
// persisted rows in input order.
func (r *Repo) CreateBatch(ctx context.Context, tasks []domain.Task) ([]domain.Task, error) {
	if len(tasks) == 0 {
		return nil, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, t := range tasks {
		batch.Queue(
			`INSERT INTO tasks (user_id, title, description, difficulty, importance,
			                    estimated_minutes, due_date, intensity, status,
			                    is_review_task, original_task_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			 RETURNING `+taskColumns,
			t.UserID, t.Title, t.Description, t.Difficulty, t.Importance,
			t.EstimatedMinutes, t.DueDate, t.Intensity, t.Status,
			t.IsReviewTask, t.OriginalTaskID,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	created := make([]domain.Task, 0, len(tasks))
	for range tasks {
		t, err := scanTask(results.QueryRow())
		if err != nil {
			return nil, postgres.MapError(err, "task", uuid.Nil)
		}
		created = append(created, *t)
	}

	if err := results.Close(); err != nil {
		return nil, postgres.MapError(err, "task", uuid.Nil)
	}
	return created, nil
}

// GetByID returns a task owned by the given user.
func (r *Repo) GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND user_id = $2`,
		taskID, userID,
	)

	t, err := scanTask(row)
	if err != nil {
		return nil, postgres.MapError(err, "task", taskID)
	}
	return t, nil
}

// List returns a page of the user's tasks matching the filter, plus the
// total match count. Ordered by due date, then creation time.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter, limit, offset int) ([]domain.Task, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	where := filterConditions(userID, filter)

	countSQL, countArgs, err := builder.
		Select("COUNT(*)").From("tasks").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "task", uuid.Nil)
	}

	listSQL, listArgs, err := builder.
		Select(taskColumns).From("tasks").Where(where).
		OrderBy("due_date ASC", "created_at ASC").
		Limit(uint64(limit)).Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "task", uuid.Nil)
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, 0, postgres.MapError(err, "task", uuid.Nil)
	}
	return tasks, total, nil
}

// ListByUserID returns all the user's tasks matching the filter, unpaged.
// The scheduling engine needs the complete set.
func (r *Repo) ListByUserID(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	listSQL, args, err := builder.
		Select(taskColumns).From("tasks").Where(filterConditions(userID, filter)).
		OrderBy("due_date ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, postgres.MapError(err, "task", uuid.Nil)
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, postgres.MapError(err, "task", uuid.Nil)
	}
	return tasks, nil
}

// Update applies a partial update to a task owned by the given user.
func (r *Repo) Update(ctx context.Context, userID, taskID uuid.UUID, params domain.TaskUpdateParams) (*domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := builder.Update("tasks").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": taskID, "user_id": userID}).
		Suffix("RETURNING " + taskColumns)

	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}
	if params.Difficulty != nil {
		update = update.Set("difficulty", *params.Difficulty)
	}
	if params.Importance != nil {
		update = update.Set("importance", *params.Importance)
	}
	if params.EstimatedMinutes != nil {
		update = update.Set("estimated_minutes", *params.EstimatedMinutes)
	}
	if params.DueDate != nil {
		update = update.Set("due_date", *params.DueDate)
	}
	if params.Intensity != nil {
		update = update.Set("intensity", *params.Intensity)
	}
	if params.Status != nil {
		update = update.Set("status", *params.Status)
	}

	updateSQL, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	t, err := scanTask(q.QueryRow(ctx, updateSQL, args...))
	if err != nil {
		return nil, postgres.MapError(err, "task", taskID)
	}
	return t, nil
}

// UpdateDueDate moves a task to a new due date.
func (r *Repo) UpdateDueDate(ctx context.Context, userID, taskID uuid.UUID, dueDate time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE tasks SET due_date = $3, updated_at = now()
		 WHERE id = $1 AND user_id = $2`,
		taskID, userID, dueDate,
	)
	if err != nil {
		return postgres.MapError(err, "task", taskID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "task", taskID)
	}
	return nil
}

// Delete removes a task owned by the given user.
func (r *Repo) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`,
		taskID, userID,
	)
	if err != nil {
		return postgres.MapError(err, "task", taskID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "task", taskID)
	}
	return nil
}

// filterConditions translates a domain.TaskFilter into squirrel conditions.
func filterConditions(userID uuid.UUID, filter domain.TaskFilter) sq.And {
	where := sq.And{sq.Eq{"user_id": userID}}

	if filter.Status != nil {
		where = append(where, sq.Eq{"status": *filter.Status})
	}
	if filter.DueBefore != nil {
		where = append(where, sq.Lt{"due_date": *filter.DueBefore})
	}
	if filter.DueAfter != nil {
		where = append(where, sq.GtOrEq{"due_date": *filter.DueAfter})
	}
	if filter.IsReviewTask != nil {
		where = append(where, sq.Eq{"is_review_task": *filter.IsReviewTask})
	}
	return where
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Difficulty, &t.Importance,
		&t.EstimatedMinutes, &t.DueDate, &t.Intensity, &t.Status,
		&t.IsReviewTask, &t.OriginalTaskID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTasks(rows pgx.Rows) ([]domain.Task, error) {
	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}
