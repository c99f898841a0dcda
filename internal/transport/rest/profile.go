package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/velocity-study/velocity-backend/internal/domain"
	"github.com/velocity-study/velocity-backend/internal/service/user"
)

// userService defines the minimal interface needed by ProfileHandler.
type userService interface {
	GetMe(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	GetEnergyProfile(ctx context.Context) (*domain.EnergyProfile, error)
	UpdateEnergyProfile(ctx context.Context, input user.UpdateEnergyProfileInput) (*domain.EnergyProfile, error)
}

// ProfileHandler serves account and energy preference REST endpoints.
type ProfileHandler struct {
	svc userService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc userService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type updateProfileRequest struct {
	Name     *string `json:"name"`
	ExamDate *string `json:"examDate"`
}

type energyProfileRequest struct {
	PeakStart               string `json:"peakStart"`
	PeakEnd                 string `json:"peakEnd"`
	SlumpStart              string `json:"slumpStart"`
	SlumpEnd                string `json:"slumpEnd"`
	DailyStudyHours         int    `json:"dailyStudyHours"`
	PreferredSessionMinutes int    `json:"preferredSessionMinutes"`
}

type energyProfileResponse struct {
	PeakStart               string `json:"peakStart"`
	PeakEnd                 string `json:"peakEnd"`
	SlumpStart              string `json:"slumpStart"`
	SlumpEnd                string `json:"slumpEnd"`
	DailyStudyHours         int    `json:"dailyStudyHours"`
	PreferredSessionMinutes int    `json:"preferredSessionMinutes"`
}

// Me handles GET /users/me.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetMe(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// UpdateMe handles PATCH /users/me.
func (h *ProfileHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := user.UpdateProfileInput{Name: req.Name}
	if req.ExamDate != nil {
		examDate, err := time.Parse("2006-01-02", *req.ExamDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "examDate must be YYYY-MM-DD")
			return
		}
		input.ExamDate = &examDate
	}

	u, err := h.svc.UpdateProfile(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// EnergyProfile handles GET /users/me/energy-profile.
func (h *ProfileHandler) EnergyProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.GetEnergyProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEnergyProfileResponse(profile))
}

// PutEnergyProfile handles PUT /users/me/energy-profile.
func (h *ProfileHandler) PutEnergyProfile(w http.ResponseWriter, r *http.Request) {
	var req energyProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.svc.UpdateEnergyProfile(r.Context(), user.UpdateEnergyProfileInput{
		PeakStart:               req.PeakStart,
		PeakEnd:                 req.PeakEnd,
		SlumpStart:              req.SlumpStart,
		SlumpEnd:                req.SlumpEnd,
		DailyStudyHours:         req.DailyStudyHours,
		PreferredSessionMinutes: req.PreferredSessionMinutes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEnergyProfileResponse(profile))
}

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
	}
	if u.ExamDate != nil {
		examDate := formatDate(*u.ExamDate)
		resp.ExamDate = &examDate
	}
	return resp
}

func toEnergyProfileResponse(p *domain.EnergyProfile) energyProfileResponse {
	return energyProfileResponse{
		PeakStart:               domain.FormatClock(p.PeakStart),
		PeakEnd:                 domain.FormatClock(p.PeakEnd),
		SlumpStart:              domain.FormatClock(p.SlumpStart),
		SlumpEnd:                domain.FormatClock(p.SlumpEnd),
		DailyStudyHours:         p.DailyStudyHours,
		PreferredSessionMinutes: p.PreferredSessionMinutes,
	}
}
