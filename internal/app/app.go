// Package app wires configuration, storage, services and the HTTP
// transport into a running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/adapter/postgres"
	accountrepo "github.com/MATEOCAIZA/ProyectoFInal/internal/adapter/postgres/account"
	eventrepo "github.com/MATEOCAIZA/ProyectoFInal/internal/adapter/postgres/event"
	observationrepo "github.com/MATEOCAIZA/ProyectoFInal/internal/adapter/postgres/observation"
	processrepo "github.com/MATEOCAIZA/ProyectoFInal/internal/adapter/postgres/process"
	timelinerepo "github.com/MATEOCAIZA/ProyectoFInal/internal/adapter/postgres/timeline"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/auth"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/config"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/service/account"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/service/observation"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/service/process"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/service/timeline"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/transport/middleware"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/transport/rest"
)

const rateLimitSweepInterval = time.Minute

// Run loads configuration, connects to PostgreSQL and serves HTTP until
// ctx is cancelled, then shuts the server down gracefully.
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
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	limiter := middleware.NewRateLimiter(rateLimitSweepInterval)
	defer limiter.Stop()

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, pool, jwt, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// NewHandler builds repositories, services and handlers on top of pool and
// returns the fully wrapped HTTP handler.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, jwt *auth.JWTManager, limiter *middleware.RateLimiter) http.Handler {
	txm := postgres.NewTxManager(pool)

	accounts := accountrepo.New(pool)
	processes := processrepo.New(pool)
	timelines := timelinerepo.New(pool)
	events := eventrepo.New(pool)
	observations := observationrepo.New(pool)

	accountSvc := account.NewService(logger, accounts, jwt, cfg.Auth)
	processSvc := process.NewService(logger, processes, timelines, events, observations, txm, cfg.Process)
	timelineSvc := timeline.NewService(logger, processes, timelines, events, txm)
	observationSvc := observation.NewService(logger, processes, observations)

	router := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
		Account:     rest.NewAccountHandler(accountSvc, logger),
		Process:     rest.NewProcessHandler(processSvc, logger),
		Timeline:    rest.NewTimelineHandler(timelineSvc, logger),
		Observation: rest.NewObservationHandler(observationSvc, logger),
	}, limiter.Limit(cfg.Server.AuthRateLimit))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
		middleware.Auth(jwt, logger),
		middleware.Logger(logger),
	)(router)
}
