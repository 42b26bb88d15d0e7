package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"go-workout-tracker/internal/cache"
	"go-workout-tracker/internal/config"
	"go-workout-tracker/internal/database"
	"go-workout-tracker/internal/event"
	"go-workout-tracker/internal/handler"
	"go-workout-tracker/internal/middleware"
	"go-workout-tracker/internal/repository"
	"go-workout-tracker/internal/router"
	"go-workout-tracker/internal/service"
	"go-workout-tracker/internal/telemetry"
	"go-workout-tracker/internal/websocket"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	server       *http.Server
	cleanupFuncs []func(context.Context)
}

func New(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	a := &App{}

	shutdownTracing, err := telemetry.InitTracing(ctx, cfg.OTLPEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	a.onShutdown(func(ctx context.Context) {
		if err := shutdownTracing(ctx); err != nil {
			slog.Warn("tracer shutdown failed", "error", err)
		}
	})

	if cfg.DBAutoMigrate {
		slog.Info("applying database migrations")
		if err := database.Migrate(cfg.DatabaseURL, database.DirectionUp); err != nil {
			a.cleanup(ctx)
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(ctx, cfg.DatabaseURL, database.PoolOptions{
		MaxConns: cfg.DBMaxConns,
		MinConns: cfg.DBMinConns,
	})
	if err != nil {
		a.cleanup(ctx)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	a.onShutdown(func(context.Context) { db.Close() })

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	exerciseRepo := repository.NewExerciseRepository(pool)
	templateRepo := repository.NewWorkoutTemplateRepository(pool)
	sessionRepo := repository.NewWorkoutSessionRepository(pool)
	exerciseLogRepo := repository.NewExerciseLogRepository(pool)
	setLogRepo := repository.NewSetLogRepository(pool)
	slog.Info("database ready")

	catalogCache := a.connectCache(ctx, cfg)

	bus := event.NewBus()
	eventsCtx, stopEvents := context.WithCancel(context.Background())
	a.startKafkaRelay(eventsCtx, cfg, bus)
	a.onShutdown(func(context.Context) { stopEvents() })

	hub := websocket.NewHub(bus)
	go hub.Run(eventsCtx)

	tokenService, err := service.NewTokenService(service.TokenConfig{
		AccessSecret:  cfg.JWTAccessSecret,
		RefreshSecret: cfg.JWTRefreshSecret,
		Issuer:        cfg.JWTIssuer,
		Audience:      cfg.JWTAudience,
		AccessTTL:     cfg.JWTAccessTTL,
		RefreshTTL:    cfg.JWTRefreshTTL,
	})
	if err != nil {
		a.cleanup(ctx)
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	if cfg.GoogleClientID == "" {
		slog.Warn("GOOGLE_CLIENT_ID not set, identity tokens are accepted for any audience")
	}

	authService := service.NewAuthService(userRepo, tokenService, service.NewGoogleValidator(cfg.GoogleClientID), bus)
	exerciseService := service.NewExerciseService(exerciseRepo, catalogCache, cfg.CacheTTL)
	templateService := service.NewWorkoutTemplateService(templateRepo, exerciseRepo)
	sessionService := service.NewWorkoutSessionService(sessionRepo, templateRepo, exerciseLogRepo, setLogRepo, bus)
	exerciseLogService := service.NewExerciseLogService(exerciseLogRepo, sessionRepo, exerciseRepo)
	setLogService := service.NewSetLogService(setLogRepo, exerciseLogRepo, sessionRepo)

	var registry *prometheus.Registry
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	appRouter := router.New(cfg, middleware.NewAuthMiddleware(tokenService), router.Handlers{
		Health:          handler.NewHealthHandler(db),
		Auth:            handler.NewAuthHandler(authService),
		Exercise:        handler.NewExerciseHandler(exerciseService),
		WorkoutTemplate: handler.NewWorkoutTemplateHandler(templateService),
		WorkoutSession:  handler.NewWorkoutSessionHandler(sessionService),
		ExerciseLog:     handler.NewExerciseLogHandler(exerciseLogService),
		SetLog:          handler.NewSetLogHandler(setLogService),
		Events:          handler.NewEventsHandler(hub, cfg.ClientURLs),
	}, registry)

	a.server = &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return a, nil
}

// connectCache falls back to no caching when Redis is not configured or unreachable.
func (a *App) connectCache(ctx context.Context, cfg *config.Config) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.Nop{}
	}

	redisCache, err := cache.NewRedis(ctx, cfg.RedisAddr)
	if err != nil {
		slog.Warn("redis unavailable, exercise catalog will not be cached", "addr", cfg.RedisAddr, "error", err)
		return cache.Nop{}
	}

	a.onShutdown(func(context.Context) {
		if err := redisCache.Close(); err != nil {
			slog.Warn("redis close failed", "error", err)
		}
	})
	slog.Info("redis cache ready", "addr", cfg.RedisAddr)
	return redisCache
}

func (a *App) startKafkaRelay(ctx context.Context, cfg *config.Config, bus event.Bus) {
	if len(cfg.KafkaBrokers) == 0 {
		return
	}

	relay := event.NewKafkaRelay(bus, event.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
	go relay.Run(ctx)

	a.onShutdown(func(ctx context.Context) {
		select {
		case <-relay.Done():
		case <-ctx.Done():
		}
		if err := relay.Close(); err != nil {
			slog.Warn("kafka writer close failed", "error", err)
		}
	})
	slog.Info("kafka relay started", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
}

func (a *App) onShutdown(fn func(context.Context)) {
	a.cleanupFuncs = append(a.cleanupFuncs, fn)
}

// cleanup runs shutdown hooks in reverse registration order.
func (a *App) cleanup(ctx context.Context) {
	for i := len(a.cleanupFuncs) - 1; i >= 0; i-- {
		a.cleanupFuncs[i](ctx)
	}
}

func (a *App) Run() error {
	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-stop:
	case err := <-serveErr:
		runErr = fmt.Errorf("server failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil && runErr == nil {
		runErr = fmt.Errorf("graceful shutdown failed: %w", err)
	}
	a.cleanup(ctx)

	slog.Info("server stopped")
	return runErr
}
