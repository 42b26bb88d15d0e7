package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-workout-tracker/internal/config"
	"go-workout-tracker/internal/handler"
	"go-workout-tracker/internal/middleware"
)

type Handlers struct {
	Health          *handler.HealthHandler
	Auth            *handler.AuthHandler
	Exercise        *handler.ExerciseHandler
	WorkoutTemplate *handler.WorkoutTemplateHandler
	WorkoutSession  *handler.WorkoutSessionHandler
	ExerciseLog     *handler.ExerciseLogHandler
	SetLog          *handler.SetLogHandler
	Events          *handler.EventsHandler
}

// New builds the HTTP surface. A nil registry leaves /metrics unmounted.
func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers, registry *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)
	r.Use(middleware.Logging)
	if registry != nil {
		r.Use(middleware.NewMetrics(registry).Handler)
	}
	r.Use(middleware.CORS(cfg.ClientURLs))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", h.Health.Check)
	if registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(api chi.Router) {
		// The event stream hijacks the connection, which http.TimeoutHandler cannot do.
		if h.Events != nil {
			api.With(authMiddleware.RequireAuth).Get("/events", h.Events.Stream)
		}

		api.Group(func(api chi.Router) {
			api.Use(middleware.Timeout(cfg.RequestTimeout))

			api.Route("/auth", func(auth chi.Router) {
				auth.Post("/google-login", h.Auth.GoogleLogin)
				auth.Post("/refresh", h.Auth.Refresh)
				auth.Post("/logout", h.Auth.Logout)
				auth.With(authMiddleware.RequireAuth).Get("/me", h.Auth.Me)
			})

			api.Group(func(protected chi.Router) {
				protected.Use(authMiddleware.RequireAuth)

				protected.Route("/exercises", func(rt chi.Router) {
					rt.Get("/", h.Exercise.List)
					rt.Post("/", h.Exercise.Create)
					rt.Get("/{id}", h.Exercise.Get)
					rt.Put("/{id}", h.Exercise.Update)
					rt.Delete("/{id}", h.Exercise.Delete)
				})

				protected.Route("/workout-templates", func(rt chi.Router) {
					rt.Get("/", h.WorkoutTemplate.List)
					rt.Post("/", h.WorkoutTemplate.Create)
					rt.Get("/{id}", h.WorkoutTemplate.Get)
					rt.Put("/{id}", h.WorkoutTemplate.Update)
					rt.Delete("/{id}", h.WorkoutTemplate.Delete)
				})

				protected.Route("/workout-sessions", func(rt chi.Router) {
					rt.Get("/", h.WorkoutSession.List)
					rt.Post("/", h.WorkoutSession.Start)
					rt.Get("/{id}", h.WorkoutSession.Get)
					rt.Put("/{id}", h.WorkoutSession.Update)
					rt.Delete("/{id}", h.WorkoutSession.Delete)
				})

				protected.Route("/exercise-logs", func(rt chi.Router) {
					rt.Get("/", h.ExerciseLog.List)
					rt.Post("/", h.ExerciseLog.Create)
					rt.Get("/{id}", h.ExerciseLog.Get)
					rt.Put("/{id}", h.ExerciseLog.Update)
					rt.Delete("/{id}", h.ExerciseLog.Delete)
				})

				protected.Route("/set-logs", func(rt chi.Router) {
					rt.Get("/", h.SetLog.List)
					rt.Post("/", h.SetLog.Create)
					rt.Get("/{id}", h.SetLog.Get)
					rt.Put("/{id}", h.SetLog.Update)
					rt.Delete("/{id}", h.SetLog.Delete)
				})
			})
		})
	})

	return r
}
