package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/velocity-study/velocity-backend/internal/domain"
	"github.com/velocity-study/velocity-backend/internal/service/review"
)

// reviewService defines the minimal interface needed by ReviewHandler.
type reviewService interface {
	CreateReviewTasks(ctx context.Context, input review.CreateReviewTasksInput) (*domain.ReviewSchedule, error)
	CompleteReview(ctx context.Context, input review.CompleteReviewInput) (*domain.ReviewSchedule, error)
	ListSchedules(ctx context.Context) ([]domain.ReviewSchedule, error)
	TodayReviews(ctx context.Context) ([]domain.UpcomingReview, error)
	UpcomingReviews(ctx context.Context, horizonDays int) ([]domain.UpcomingReview, error)
	Stats(ctx context.Context) (domain.ReviewStats, error)
}

// ReviewHandler serves spaced-repetition REST endpoints.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type createReviewsRequest struct {
	TaskID string `json:"taskId"`
}

type completeReviewRequest struct {
	Checkpoint int `json:"checkpoint"`
}

type scheduleResponseItem struct {
	ID        string                      `json:"id"`
	TaskID    string                      `json:"taskId"`
	StudyDate string                      `json:"studyDate"`
	Reviews   [domain.NumCheckpoints]item `json:"reviews"`
	Retention float64                     `json:"retention"`
	CreatedAt string                      `json:"createdAt"`
}

type item struct {
	Checkpoint string `json:"checkpoint"`
	DueDate    string `json:"dueDate"`
	Completed  bool   `json:"completed"`
}

type upcomingReviewResponse struct {
	ScheduleID string `json:"scheduleId"`
	TaskID     string `json:"taskId"`
	Checkpoint string `json:"checkpoint"`
	DueDate    string `json:"dueDate"`
	DaysUntil  int    `json:"daysUntil"`
}

type reviewStatsResponse struct {
	TotalSchedules     int     `json:"totalSchedules"`
	CompletedFullCycle int     `json:"completedFullCycle"`
	PartiallyCompleted int     `json:"partiallyCompleted"`
	NotStarted         int     `json:"notStarted"`
	AverageRetention   float64 `json:"averageRetention"`
}

// Create handles POST /reviews. Generates the four checkpoint tasks.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReviewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	schedule, err := h.svc.CreateReviewTasks(r.Context(), review.CreateReviewTasksInput{TaskID: taskID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toScheduleResponse(schedule))
}

// Complete handles POST /reviews/{id}/complete.
func (h *ReviewHandler) Complete(w http.ResponseWriter, r *http.Request) {
	scheduleID, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid schedule id")
		return
	}

	var req completeReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	schedule, err := h.svc.CompleteReview(r.Context(), review.CompleteReviewInput{
		ScheduleID: scheduleID,
		Checkpoint: domain.ReviewCheckpoint(req.Checkpoint),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toScheduleResponse(schedule))
}

// List handles GET /reviews.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.svc.ListSchedules(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]scheduleResponseItem, 0, len(schedules))
	for i := range schedules {
		resp = append(resp, toScheduleResponse(&schedules[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Today handles GET /reviews/today.
func (h *ReviewHandler) Today(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.svc.TodayReviews(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUpcomingResponse(reviews))
}

// Upcoming handles GET /reviews/upcoming?days=N.
func (h *ReviewHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	horizon := queryInt(r, "days", 0)

	reviews, err := h.svc.UpcomingReviews(r.Context(), horizon)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUpcomingResponse(reviews))
}

// Stats handles GET /reviews/stats.
func (h *ReviewHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reviewStatsResponse{
		TotalSchedules:     stats.TotalSchedules,
		CompletedFullCycle: stats.CompletedFullCycle,
		PartiallyCompleted: stats.PartiallyCompleted,
		NotStarted:         stats.NotStarted,
		AverageRetention:   stats.AverageRetention,
	})
}

func toScheduleResponse(s *domain.ReviewSchedule) scheduleResponseItem {
	resp := scheduleResponseItem{
		ID:        s.ID.String(),
		TaskID:    s.TaskID.String(),
		StudyDate: formatDate(s.StudyDate),
		Retention: review.Retention(*s),
		CreatedAt: formatDate(s.CreatedAt),
	}
	for _, cp := range domain.Checkpoints() {
		resp.Reviews[cp] = item{
			Checkpoint: cp.String(),
			DueDate:    formatDate(s.DueDates[cp]),
			Completed:  s.Completed[cp],
		}
	}
	return resp
}

func toUpcomingResponse(reviews []domain.UpcomingReview) []upcomingReviewResponse {
	resp := make([]upcomingReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, upcomingReviewResponse{
			ScheduleID: r.Schedule.ID.String(),
			TaskID:     r.Schedule.TaskID.String(),
			Checkpoint: r.Checkpoint.String(),
			DueDate:    formatDate(r.Schedule.DueDates[r.Checkpoint]),
			DaysUntil:  r.DaysUntil,
		})
	}
	return resp
}
