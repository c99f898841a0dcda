// Package profile implements the EnergyProfile repository using PostgreSQL.
package profile

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/velocity-study/velocity-backend/internal/adapter/postgres"
	"github.com/velocity-study/velocity-backend/internal/domain"
)

// Repo provides energy profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const profileColumns = `user_id, peak_start, peak_end, slump_start, slump_end,
	daily_study_hours, preferred_session_minutes, updated_at`

// GetByUserID returns the user's energy profile.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.EnergyProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var p domain.EnergyProfile
	err := q.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM energy_profiles WHERE user_id = $1`,
		userID,
	).Scan(
		&p.UserID, &p.PeakStart, &p.PeakEnd, &p.SlumpStart, &p.SlumpEnd,
		&p.DailyStudyHours, &p.PreferredSessionMinutes, &p.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "energy_profile", userID)
	}
	return &p, nil
}

// Upsert inserts or replaces the user's energy profile. One row per user.
func (r *Repo) Upsert(ctx context.Context, profile *domain.EnergyProfile) (*domain.EnergyProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var p domain.EnergyProfile
	err := q.QueryRow(ctx,
		`INSERT INTO energy_profiles (user_id, peak_start, peak_end, slump_start, slump_end,
		                              daily_study_hours, preferred_session_minutes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id) DO UPDATE SET
		     peak_start                = EXCLUDED.peak_start,
		     peak_end                  = EXCLUDED.peak_end,
		     slump_start               = EXCLUDED.slump_start,
		     slump_end                 = EXCLUDED.slump_end,
		     daily_study_hours         = EXCLUDED.daily_study_hours,
		     preferred_session_minutes = EXCLUDED.preferred_session_minutes,
		     updated_at                = now()
		 RETURNING `+profileColumns,
		profile.UserID, profile.PeakStart, profile.PeakEnd, profile.SlumpStart, profile.SlumpEnd,
		profile.DailyStudyHours, profile.PreferredSessionMinutes,
	).Scan(
		&p.UserID, &p.PeakStart, &p.PeakEnd, &p.SlumpStart, &p.SlumpEnd,
		&p.DailyStudyHours, &p.PreferredSessionMinutes, &p.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "energy_profile", profile.UserID)
	}
	return &p, nil
}
