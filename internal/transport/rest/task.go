package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/velocity-study/velocity-backend/internal/domain"
	"github.com/velocity-study/velocity-backend/internal/service/task"
)

// taskService defines the minimal interface needed by TaskHandler.
type taskService interface {
	CreateTask(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)
	ListTasks(ctx context.Context, input task.ListTasksInput) ([]domain.Task, int, error)
	UpdateTask(ctx context.Context, input task.UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
	CompleteTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)
}

// TaskHandler serves task REST endpoints.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

type createTaskRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Difficulty       int    `json:"difficulty"`
	Importance       int    `json:"importance"`
	EstimatedMinutes int    `json:"estimatedMinutes"`
	DueDate          string `json:"dueDate"`
	Intensity        string `json:"intensity"`
}

type updateTaskRequest struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	Difficulty       *int    `json:"difficulty"`
	Importance       *int    `json:"importance"`
	EstimatedMinutes *int    `json:"estimatedMinutes"`
	DueDate          *string `json:"dueDate"`
	Intensity        *string `json:"intensity"`
	Status           *string `json:"status"`
}

type taskResponse struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description,omitempty"`
	Difficulty       int     `json:"difficulty"`
	Importance       int     `json:"importance"`
	EstimatedMinutes int     `json:"estimatedMinutes"`
	DueDate          string  `json:"dueDate"`
	Intensity        string  `json:"intensity"`
	Status           string  `json:"status"`
	IsReviewTask     bool    `json:"isReviewTask"`
	OriginalTaskID   *string `json:"originalTaskId,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

type taskListResponse struct {
	Tasks []taskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "dueDate must be YYYY-MM-DD")
		return
	}

	created, err := h.svc.CreateTask(r.Context(), task.CreateTaskInput{
		Title:            req.Title,
		Description:      req.Description,
		Difficulty:       req.Difficulty,
		Importance:       req.Importance,
		EstimatedMinutes: req.EstimatedMinutes,
		DueDate:          dueDate,
		Intensity:        domain.Intensity(req.Intensity),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(created))
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	t, err := h.svc.GetTask(r.Context(), taskID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

// List handles GET /tasks with optional status/due range/review filters.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	input := task.ListTasksInput{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}

	if v := r.URL.Query().Get("status"); v != "" {
		status := domain.TaskStatus(v)
		input.Status = &status
	}
	if due, ok := queryDate(r, "dueBefore"); ok {
		input.DueBefore = &due
	}
	if due, ok := queryDate(r, "dueAfter"); ok {
		input.DueAfter = &due
	}
	if v := r.URL.Query().Get("reviewTasks"); v != "" {
		isReview := v == "true"
		input.IsReviewTask = &isReview
	}

	tasks, total, err := h.svc.ListTasks(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := taskListResponse{Tasks: make([]taskResponse, 0, len(tasks)), Total: total}
	for i := range tasks {
		resp.Tasks = append(resp.Tasks, toTaskResponse(&tasks[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PATCH /tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := task.UpdateTaskInput{
		TaskID:           taskID,
		Title:            req.Title,
		Description:      req.Description,
		Difficulty:       req.Difficulty,
		Importance:       req.Importance,
		EstimatedMinutes: req.EstimatedMinutes,
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "dueDate must be YYYY-MM-DD")
			return
		}
		input.DueDate = &dueDate
	}
	if req.Intensity != nil {
		intensity := domain.Intensity(*req.Intensity)
		input.Intensity = &intensity
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}

	updated, err := h.svc.UpdateTask(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(updated))
}

// Complete handles POST /tasks/{id}/complete. Marks the task done and
// kicks off its spaced-repetition schedule.
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	completed, err := h.svc.CompleteTask(r.Context(), taskID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(completed))
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.svc.DeleteTask(r.Context(), taskID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTaskResponse(t *domain.Task) taskResponse {
	resp := taskResponse{
		ID:               t.ID.String(),
		Title:            t.Title,
		Description:      t.Description,
		Difficulty:       t.Difficulty,
		Importance:       t.Importance,
		EstimatedMinutes: t.EstimatedMinutes,
		DueDate:          formatDate(t.DueDate),
		Intensity:        t.Intensity.String(),
		Status:           t.Status.String(),
		IsReviewTask:     t.IsReviewTask,
		CreatedAt:        t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        t.UpdatedAt.Format(time.RFC3339),
	}
	if t.OriginalTaskID != nil {
		id := t.OriginalTaskID.String()
		resp.OriginalTaskID = &id
	}
	return resp
}
