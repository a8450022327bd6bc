package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/sportsclinic/injury-clinic/internal/clinic"
	"github.com/sportsclinic/injury-clinic/internal/config"
	"github.com/sportsclinic/injury-clinic/internal/store"
)

type RouterConfig struct {
	Service *clinic.Service
	Store   *store.Store
	Config  config.Config
	Logger  zerolog.Logger
	Version string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(cfg.Logger))

	// Health endpoints
	health := NewHealthHandler(cfg.Store, cfg.Config.AccountsFile, cfg.Config.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// Account endpoints
	r.Post("/auth/signup", signupHandler(cfg.Service, cfg.Config))
	r.Post("/auth/login", loginHandler(cfg.Service, cfg.Config))

	// Session-scoped endpoints
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(cfg.Config.JWTSecret))

		r.Get("/me", getMeHandler(cfg.Service))
		r.Put("/me", updateProfileHandler(cfg.Service))
		r.Post("/me/injuries", recordInjuryHandler(cfg.Service))
		r.Post("/me/reports", generateReportHandler(cfg.Service))
		r.Get("/me/report/html", reportHTMLHandler(cfg.Service, cfg.Logger))

		r.Get("/doctors", listDoctorsHandler(cfg.Service))
		r.Get("/sports", listSportsHandler(cfg.Service))
		r.Get("/injuries", listInjuriesHandler(cfg.Service))
		r.Get("/treatments", treatmentHandler())
		r.Get("/availability", availabilityHandler(cfg.Service))
		r.Post("/appointments", createAppointmentHandler(cfg.Service))
	})

	return r
}
