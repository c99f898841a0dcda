package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/velocity-study/velocity-backend/internal/domain"
	"github.com/velocity-study/velocity-backend/internal/service/planner"
)

// plannerService defines the minimal interface needed by PlannerHandler.
type plannerService interface {
	GetCatchUpPlan(ctx context.Context) (*domain.CatchUpPlan, error)
	ApplyRedistribution(ctx context.Context) (*domain.CatchUpPlan, error)
	GetSchedule(ctx context.Context, input planner.GetScheduleInput) ([]domain.ScheduledTask, error)
	GetRecommendations(ctx context.Context) ([]domain.Task, error)
	ListRedistributions(ctx context.Context, limit, offset int) ([]domain.RedistributionResult, int, error)
}

// PlannerHandler serves scheduling and catch-up REST endpoints.
type PlannerHandler struct {
	svc plannerService
	log *slog.Logger
}

// NewPlannerHandler creates a PlannerHandler.
func NewPlannerHandler(svc plannerService, logger *slog.Logger) *PlannerHandler {
	return &PlannerHandler{svc: svc, log: logger.With("handler", "planner")}
}

type redistributionResponse struct {
	TaskID          string  `json:"taskId"`
	OriginalDueDate string  `json:"originalDueDate"`
	NewDueDate      string  `json:"newDueDate"`
	PriorityScore   float64 `json:"priorityScore"`
	Reason          string  `json:"reason"`
}

type catchUpPlanResponse struct {
	Redistributions []redistributionResponse `json:"redistributions"`
	Recommendations []string                 `json:"recommendations"`
	Urgency         string                   `json:"urgency"`
	RequestedCount  int                      `json:"requestedCount"`
	PlacedCount     int                      `json:"placedCount"`
}

type scheduledTaskResponse struct {
	Task           taskResponse `json:"task"`
	Date           string       `json:"date"`
	StartTime      string       `json:"startTime"`
	SessionMinutes int          `json:"sessionMinutes"`
}

type scheduleResponse struct {
	Scheduled []scheduledTaskResponse `json:"scheduled"`
}

type recommendationsResponse struct {
	Tasks []taskResponse `json:"tasks"`
}

type redistributionLogResponse struct {
	Entries []redistributionResponse `json:"entries"`
	Total   int                      `json:"total"`
}

// CatchUpPlan handles GET /planner/catchup. Dry run: nothing is persisted.
func (h *PlannerHandler) CatchUpPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.svc.GetCatchUpPlan(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCatchUpPlanResponse(plan))
}

// ApplyCatchUp handles POST /planner/catchup/apply. Moves due dates and
// records the audit log entries.
func (h *PlannerHandler) ApplyCatchUp(w http.ResponseWriter, r *http.Request) {
	plan, err := h.svc.ApplyRedistribution(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCatchUpPlanResponse(plan))
}

// Schedule handles GET /planner/schedule?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (h *PlannerHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	start, okStart := queryDate(r, "start")
	end, okEnd := queryDate(r, "end")
	if !okStart || !okEnd {
		writeError(w, http.StatusBadRequest, "start and end must be YYYY-MM-DD")
		return
	}

	scheduled, err := h.svc.GetSchedule(r.Context(), planner.GetScheduleInput{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := scheduleResponse{Scheduled: make([]scheduledTaskResponse, 0, len(scheduled))}
	for i := range scheduled {
		resp.Scheduled = append(resp.Scheduled, scheduledTaskResponse{
			Task:           toTaskResponse(&scheduled[i].Task),
			Date:           formatDate(scheduled[i].Date),
			StartTime:      domain.FormatClock(scheduled[i].StartMinute),
			SessionMinutes: scheduled[i].SessionMinutes,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Recommendations handles GET /planner/recommendations.
func (h *PlannerHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.GetRecommendations(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := recommendationsResponse{Tasks: make([]taskResponse, 0, len(tasks))}
	for i := range tasks {
		resp.Tasks = append(resp.Tasks, toTaskResponse(&tasks[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// RedistributionLog handles GET /planner/redistributions?limit=&offset=.
func (h *PlannerHandler) RedistributionLog(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 0)
	offset := queryInt(r, "offset", 0)

	entries, total, err := h.svc.ListRedistributions(r.Context(), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := redistributionLogResponse{
		Entries: make([]redistributionResponse, 0, len(entries)),
		Total:   total,
	}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, toRedistributionResponse(entry))
	}
	writeJSON(w, http.StatusOK, resp)
}

func toCatchUpPlanResponse(plan *domain.CatchUpPlan) catchUpPlanResponse {
	resp := catchUpPlanResponse{
		Redistributions: make([]redistributionResponse, 0, len(plan.Redistributions)),
		Recommendations: plan.Recommendations,
		Urgency:         plan.Urgency.String(),
		RequestedCount:  plan.RequestedCount,
		PlacedCount:     plan.PlacedCount,
	}
	for _, entry := range plan.Redistributions {
		resp.Redistributions = append(resp.Redistributions, toRedistributionResponse(entry))
	}
	return resp
}

func toRedistributionResponse(entry domain.RedistributionResult) redistributionResponse {
	return redistributionResponse{
		TaskID:          entry.TaskID.String(),
		OriginalDueDate: formatDate(entry.OriginalDueDate),
		NewDueDate:      formatDate(entry.NewDueDate),
		PriorityScore:   entry.PriorityScore,
		Reason:          entry.Reason,
	}
}
