//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/velocity-study/velocity-backend/internal/adapter/postgres"
	profilerepo "github.com/velocity-study/velocity-backend/internal/adapter/postgres/profile"
	redistributionrepo "github.com/velocity-study/velocity-backend/internal/adapter/postgres/redistribution"
	schedulerepo "github.com/velocity-study/velocity-backend/internal/adapter/postgres/reviewschedule"
	taskrepo "github.com/velocity-study/velocity-backend/internal/adapter/postgres/task"
	"github.com/velocity-study/velocity-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/velocity-study/velocity-backend/internal/adapter/postgres/token"
	userrepo "github.com/velocity-study/velocity-backend/internal/adapter/postgres/user"
	authpkg "github.com/velocity-study/velocity-backend/internal/auth"
	"github.com/velocity-study/velocity-backend/internal/config"
	authsvc "github.com/velocity-study/velocity-backend/internal/service/auth"
	plannersvc "github.com/velocity-study/velocity-backend/internal/service/planner"
	reviewsvc "github.com/velocity-study/velocity-backend/internal/service/review"
	tasksvc "github.com/velocity-study/velocity-backend/internal/service/task"
	usersvc "github.com/velocity-study/velocity-backend/internal/service/user"
	"github.com/velocity-study/velocity-backend/internal/transport/middleware"
	"github.com/velocity-study/velocity-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// reviewTaskScheduler mirrors the production adapter between the task and
// review services.
type reviewTaskScheduler struct {
	reviews *reviewsvc.Service
}

func (a reviewTaskScheduler) ScheduleForTask(ctx context.Context, taskID uuid.UUID) error {
	_, err := a.reviews.CreateReviewTasks(ctx, reviewsvc.CreateReviewTasksInput{TaskID: taskID})
	return err
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	tasks := taskrepo.New(pool)
	profiles := profilerepo.New(pool)
	schedules := schedulerepo.New(pool)
	redistributions := redistributionrepo.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  720 * time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, jwtMgr, authCfg)
	userService := usersvc.NewService(logger, users, profiles)
	reviewService := reviewsvc.NewService(logger, schedules, tasks, txm)
	taskService := tasksvc.NewService(logger, tasks, reviewTaskScheduler{reviews: reviewService})
	plannerService := plannersvc.NewService(logger, tasks, profiles, users, redistributions, txm)

	handlers := rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Profile: rest.NewProfileHandler(userService, logger),
		Task:    rest.NewTaskHandler(taskService, logger),
		Planner: rest.NewPlannerHandler(plannerService, logger),
		Review:  rest.NewReviewHandler(reviewService, logger),
		Health:  rest.NewHealthHandler(pool, "test-version"),
	}

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Logger(logger),
		middleware.Auth(authService),
	)(rest.NewRouter(handlers))

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// restRequest sends a JSON request and returns status + decoded body.
// A nil body sends an empty payload.
func (ts *testServer) restRequest(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	}
	return resp.StatusCode, result
}

// restRequestList is restRequest for endpoints that return a JSON array.
func (ts *testServer) restRequestList(t *testing.T, method, path string, token string) (int, []any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result []any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// registerTestUser creates a user through the public API and returns
// the access token plus the full auth response.
func registerTestUser(t *testing.T, ts *testServer) (string, map[string]any) {
	t.Helper()

	email := fmt.Sprintf("e2e-%s@example.com", uuid.NewString()[:8])
	status, result := ts.restRequest(t, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email":    email,
		"name":     "E2E User",
		"password": "correct-horse-battery",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register failed: %v", result)

	token, ok := result["accessToken"].(string)
	require.True(t, ok, "expected accessToken in register response")
	return token, result
}

// createTestTask creates a task through the API and returns its id.
func createTestTask(t *testing.T, ts *testServer, token string, title string, dueInDays int) string {
	t.Helper()

	due := time.Now().AddDate(0, 0, dueInDays).Format("2006-01-02")
	status, result := ts.restRequest(t, http.MethodPost, "/api/v1/tasks", map[string]any{
		"title":            title,
		"description":      "e2e seeded task",
		"difficulty":       5,
		"importance":       5,
		"estimatedMinutes": 60,
		"dueDate":          due,
		"intensity":        "medium",
	}, token)
	require.Equal(t, http.StatusCreated, status, "create task failed: %v", result)

	id, ok := result["id"].(string)
	require.True(t, ok, "expected id in task response")
	return id
}

// putEnergyProfile stores a standard energy profile for the user.
func putEnergyProfile(t *testing.T, ts *testServer, token string) {
	t.Helper()

	status, result := ts.restRequest(t, http.MethodPut, "/api/v1/users/me/energy-profile", map[string]any{
		"peakStart":               "09:00",
		"peakEnd":                 "12:00",
		"slumpStart":              "14:00",
		"slumpEnd":                "16:00",
		"dailyStudyHours":         6,
		"preferredSessionMinutes": 45,
	}, token)
	require.Equal(t, http.StatusOK, status, "put energy profile failed: %v", result)
}
