package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/velocity-study/velocity-backend/internal/adapter/postgres"
	profilerepo "github.com/velocity-study/velocity-backend/internal/adapter/postgres/profile"
	redistributionrepo "github.com/velocity-study/velocity-backend/internal/adapter/postgres/redistribution"
	schedulerepo "github.com/velocity-study/velocity-backend/internal/adapter/postgres/reviewschedule"
	taskrepo "github.com/velocity-study/velocity-backend/internal/adapter/postgres/task"
	tokenrepo "github.com/velocity-study/velocity-backend/internal/adapter/postgres/token"
	userrepo "github.com/velocity-study/velocity-backend/internal/adapter/postgres/user"
	jwtauth "github.com/velocity-study/velocity-backend/internal/auth"
	"github.com/velocity-study/velocity-backend/internal/config"
	authsvc "github.com/velocity-study/velocity-backend/internal/service/auth"
	plannersvc "github.com/velocity-study/velocity-backend/internal/service/planner"
	reviewsvc "github.com/velocity-study/velocity-backend/internal/service/review"
	tasksvc "github.com/velocity-study/velocity-backend/internal/service/task"
	usersvc "github.com/velocity-study/velocity-backend/internal/service/user"
	"github.com/velocity-study/velocity-backend/internal/transport/middleware"
	"github.com/velocity-study/velocity-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// dependency graph, starts the HTTP server, and shuts everything down
// when ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	tasks := taskrepo.New(pool)
	profiles := profilerepo.New(pool)
	schedules := schedulerepo.New(pool)
	redistributions := redistributionrepo.New(pool)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, users, profiles)
	reviewService := reviewsvc.NewService(logger, schedules, tasks, txManager)
	taskService := tasksvc.NewService(logger, tasks, reviewTaskScheduler{reviews: reviewService})
	plannerService := plannersvc.NewService(logger, tasks, profiles, users, redistributions, txManager)

	handlers := rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Profile: rest.NewProfileHandler(userService, logger),
		Task:    rest.NewTaskHandler(taskService, logger),
		Planner: rest.NewPlannerHandler(plannerService, logger),
		Review:  rest.NewReviewHandler(reviewService, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	mws = append(mws, middleware.Auth(authService))

	handler := middleware.Chain(mws...)(rest.NewRouter(handlers))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// reviewTaskScheduler adapts the review service to the narrow interface the
// task service needs when a task is completed.
type reviewTaskScheduler struct {
	reviews *reviewsvc.Service
}

func (a reviewTaskScheduler) ScheduleForTask(ctx context.Context, taskID uuid.UUID) error {
	_, err := a.reviews.CreateReviewTasks(ctx, reviewsvc.CreateReviewTasksInput{TaskID: taskID})
	return err
}
