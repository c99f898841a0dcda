package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Task    *TaskHandler
	Planner *PlannerHandler
	Review  *ReviewHandler
	Health  *HealthHandler
}

// NewRouter builds the HTTP route table. Middleware (auth, logging,
// rate limiting) is applied by the caller around the returned mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /api/v1/users/me", h.Profile.Me)
	mux.HandleFunc("PATCH /api/v1/users/me", h.Profile.UpdateMe)
	mux.HandleFunc("GET /api/v1/users/me/energy-profile", h.Profile.EnergyProfile)
	mux.HandleFunc("PUT /api/v1/users/me/energy-profile", h.Profile.PutEnergyProfile)

	mux.HandleFunc("POST /api/v1/tasks", h.Task.Create)
	mux.HandleFunc("GET /api/v1/tasks", h.Task.List)
	mux.HandleFunc("GET /api/v1/tasks/{id}", h.Task.Get)
	mux.HandleFunc("PATCH /api/v1/tasks/{id}", h.Task.Update)
	mux.HandleFunc("DELETE /api/v1/tasks/{id}", h.Task.Delete)
	mux.HandleFunc("POST /api/v1/tasks/{id}/complete", h.Task.Complete)

	mux.HandleFunc("GET /api/v1/planner/catchup", h.Planner.CatchUpPlan)
	mux.HandleFunc("POST /api/v1/planner/catchup/apply", h.Planner.ApplyCatchUp)
	mux.HandleFunc("GET /api/v1/planner/schedule", h.Planner.Schedule)
	mux.HandleFunc("GET /api/v1/planner/recommendations", h.Planner.Recommendations)
	mux.HandleFunc("GET /api/v1/planner/redistributions", h.Planner.RedistributionLog)

	mux.HandleFunc("POST /api/v1/reviews", h.Review.Create)
	mux.HandleFunc("GET /api/v1/reviews", h.Review.List)
	mux.HandleFunc("GET /api/v1/reviews/today", h.Review.Today)
	mux.HandleFunc("GET /api/v1/reviews/upcoming", h.Review.Upcoming)
	mux.HandleFunc("GET /api/v1/reviews/stats", h.Review.Stats)
	mux.HandleFunc("POST /api/v1/reviews/{id}/complete", h.Review.Complete)

	return mux
}
