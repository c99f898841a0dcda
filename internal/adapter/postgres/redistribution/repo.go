// Package redistribution implements the catch-up audit log repository using PostgreSQL.
package redistribution

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/velocity-study/velocity-backend/internal/adapter/postgres"
	"github.com/velocity-study/velocity-backend/internal/domain"
)

// Repo provides redistribution log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new redistribution log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const logColumns = `id, task_id, user_id, original_due_date, new_due_date,
	priority_score, reason, created_at`

// CreateBatch inserts all entries of one applied catch-up run and returns
// the persisted rows in input order.
func (r *Repo) CreateBatch(ctx context.Context, results []domain.RedistributionResult) ([]domain.RedistributionResult, error) {
	if len(results) == 0 {
		return nil, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, entry := range results {
		batch.Queue(
			`INSERT INTO redistribution_log (task_id, user_id, original_due_date,
			                                 new_due_date, priority_score, reason)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING `+logColumns,
			entry.TaskID, entry.UserID, entry.OriginalDueDate,
			entry.NewDueDate, entry.PriorityScore, entry.Reason,
		)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	stored := make([]domain.RedistributionResult, 0, len(results))
	for range results {
		entry, err := scanEntry(br.QueryRow())
		if err != nil {
			return nil, postgres.MapError(err, "redistribution", uuid.Nil)
		}
		stored = append(stored, *entry)
	}

	if err := br.Close(); err != nil {
		return nil, postgres.MapError(err, "redistribution", uuid.Nil)
	}
	return stored, nil
}

// ListByUserID returns a page of the user's redistribution history, newest
// first, plus the total entry count.
func (r *Repo) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.RedistributionResult, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM redistribution_log WHERE user_id = $1`,
		userID,
	).Scan(&total)
	if err != nil {
		return nil, 0, postgres.MapError(err, "redistribution", uuid.Nil)
	}

	rows, err := q.Query(ctx,
		`SELECT `+logColumns+` FROM redistribution_log
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, 0, postgres.MapError(err, "redistribution", uuid.Nil)
	}
	defer rows.Close()

	var entries []domain.RedistributionResult
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, 0, postgres.MapError(err, "redistribution", uuid.Nil)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "redistribution", uuid.Nil)
	}
	return entries, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*domain.RedistributionResult, error) {
	var entry domain.RedistributionResult
	err := row.Scan(
		&entry.ID, &entry.TaskID, &entry.UserID, &entry.OriginalDueDate,
		&entry.NewDueDate, &entry.PriorityScore, &entry.Reason, &entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
