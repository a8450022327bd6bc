package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/sportsclinic/injury-clinic/internal/api"
	"github.com/sportsclinic/injury-clinic/internal/booking"
	"github.com/sportsclinic/injury-clinic/internal/clinic"
	"github.com/sportsclinic/injury-clinic/internal/config"
	"github.com/sportsclinic/injury-clinic/internal/metrics"
	"github.com/sportsclinic/injury-clinic/internal/store"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		errLogger := zerolog.New(os.Stderr)
		errLogger.Fatal().Err(err).Msg("config load error")
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.Env == "dev" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	logger.Info().Str("env", cfg.Env).Str("http_port", cfg.HTTPPort).Msg("api-server starting up")

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st := store.New(cfg.AccountsFile, logger)
	if err := st.Load(); err != nil {
		logger.Fatal().Err(err).Str("path", cfg.AccountsFile).Msg("load account store")
	}
	logger.Info().Int("accounts", st.Len()).Int("skipped_lines", st.SkippedLines()).Msg("account store loaded")

	registry := booking.NewRegistry()
	m := metrics.New(prometheus.DefaultRegisterer, func() float64 {
		return float64(registry.BookedCount())
	})

	svc := clinic.NewService(st, registry, logger, m)

	router := api.NewRouter(api.RouterConfig{
		Service: svc,
		Store:   st,
		Config:  cfg,
		Logger:  logger,
		Version: version,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-rootCtx.Done():
		logger.Info().Msg("shutting down api-server")
	case err := <-errCh:
		logger.Error().Err(err).Msg("http server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	if err := st.Save(); err != nil {
		logger.Error().Err(err).Msg("final account save failed")
	}
}
