package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/velocity-study/velocity-backend/internal/domain"
	"github.com/velocity-study/velocity-backend/pkg/ctxutil"
)

// GetEnergyProfile returns the authenticated user's energy profile.
// Returns ErrNotFound when the user has not set one up yet.
func (s *Service) GetEnergyProfile(ctx context.Context) (*domain.EnergyProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetEnergyProfile: %w", err)
	}

	return profile, nil
}

// UpdateEnergyProfile creates or replaces the authenticated user's energy
// profile. There is exactly one profile per user.
func (s *Service) UpdateEnergyProfile(ctx context.Context, input UpdateEnergyProfileInput) (*domain.EnergyProfile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Validate already checked the clock strings parse.
	peakStart, _ := domain.ParseClock(input.PeakStart)
	peakEnd, _ := domain.ParseClock(input.PeakEnd)
	slumpStart, _ := domain.ParseClock(input.SlumpStart)
	slumpEnd, _ := domain.ParseClock(input.SlumpEnd)

	profile, err := s.profiles.Upsert(ctx, &domain.EnergyProfile{
		UserID:                  userID,
		PeakStart:               peakStart,
		PeakEnd:                 peakEnd,
		SlumpStart:              slumpStart,
		SlumpEnd:                slumpEnd,
		DailyStudyHours:         input.DailyStudyHours,
		PreferredSessionMinutes: input.PreferredSessionMinutes,
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateEnergyProfile: %w", err)
	}

	s.log.InfoContext(ctx, "energy profile updated",
		slog.String("user_id", userID.String()),
		slog.String("peak", domain.FormatClock(peakStart)+"-"+domain.FormatClock(peakEnd)))

	return profile, nil
}
