package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/tandemlab/tandem-backend/internal/adapter/postgres"
	agreementrepo "github.com/tandemlab/tandem-backend/internal/adapter/postgres/agreement"
	checkinrepo "github.com/tandemlab/tandem-backend/internal/adapter/postgres/checkin"
	couplerepo "github.com/tandemlab/tandem-backend/internal/adapter/postgres/couple"
	inviterepo "github.com/tandemlab/tandem-backend/internal/adapter/postgres/invite"
	suggestionrepo "github.com/tandemlab/tandem-backend/internal/adapter/postgres/suggestion"
	userrepo "github.com/tandemlab/tandem-backend/internal/adapter/postgres/user"
	"github.com/tandemlab/tandem-backend/internal/adapter/provider/insights"
	"github.com/tandemlab/tandem-backend/internal/auth"
	"github.com/tandemlab/tandem-backend/internal/config"
	"github.com/tandemlab/tandem-backend/internal/metrics"
	"github.com/tandemlab/tandem-backend/internal/service/agreement"
	"github.com/tandemlab/tandem-backend/internal/service/checkin"
	"github.com/tandemlab/tandem-backend/internal/service/dissolution"
	"github.com/tandemlab/tandem-backend/internal/service/suggestion"
	"github.com/tandemlab/tandem-backend/internal/transport/middleware"
	"github.com/tandemlab/tandem-backend/internal/transport/rest"
	"github.com/tandemlab/tandem-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and the HTTP transport, and
// serves until ctx is cancelled, then shuts down gracefully.
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

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool, migrations.FS); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	tx := postgres.NewTxManager(pool)
	agreements := agreementrepo.New(pool)
	checkins := checkinrepo.New(pool)
	couples := couplerepo.New(pool)
	invites := inviterepo.New(pool)
	suggestions := suggestionrepo.New(pool)
	users := userrepo.New(pool)

	reg := metrics.New()

	agreementSvc := agreement.NewService(logger, agreements, couples, reg,
		cfg.Agreements.DefaultCheckInDays, cfg.Agreements.ApproveMaxRetries)
	checkinSvc := checkin.NewService(logger, agreements, checkins, couples, tx, reg,
		cfg.Agreements.DefaultCheckInDays)
	suggestionSvc := suggestion.NewService(logger, suggestions, agreements, couples, tx,
		cfg.Agreements.DefaultCheckInDays, cfg.Agreements.ExperimentCheckInDays)
	dissolutionSvc := dissolution.NewService(logger, couples, users, agreements, invites,
		insights.NewStub(), tx, reg)

	validator := auth.NewTokenValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	router := rest.NewRouter(rest.RouterDeps{
		Suggestions: rest.NewSuggestionHandler(suggestionSvc, logger),
		Agreements:  rest.NewAgreementHandler(agreementSvc, logger),
		Checkins:    rest.NewCheckinHandler(checkinSvc, logger),
		Dissolution: rest.NewDissolutionHandler(dissolutionSvc, logger),
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
		Auth:        middleware.Auth(validator),
		Metrics:     reg,
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
