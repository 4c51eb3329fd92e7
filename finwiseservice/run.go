package finwiseservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/finwise/finwise-server/internal/api"
	"github.com/finwise/finwise-server/internal/config"
	"github.com/finwise/finwise-server/internal/factory"
	"github.com/finwise/finwise-server/internal/health"
	"github.com/finwise/finwise-server/internal/logger"
	"github.com/finwise/finwise-server/internal/repo"
	"github.com/finwise/finwise-server/internal/services"
	"github.com/finwise/finwise-server/internal/store"
)

// Run starts the FinWise service HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("finwise-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("build_target", cfg.BuildTarget).
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Bool("seed_sample_data", cfg.SeedSampleData).
		Msg("FinWise service starting")

	// Create cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	st, err := factory.NewStore(cfg, log)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Storage driver unavailable")
		return err
	}
	defer func() { _ = st.Close() }()

	router := buildRouter(st, cfg, log)

	// Start health checkers and bind service health
	svcHealth := startHealthCheckers(ctx, cfg, log, st)

	// Block startup until the store reports healthy; fail fast otherwise
	if err := waitUntilHealthy(ctx, cfg, svcHealth); err != nil {
		log.Error().Stack().Err(err).Msg("startup health check failed")
		return err
	}

	// HTTP server and serve
	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	// Graceful shutdown on context cancel or server error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// buildRouter wires the service set into the HTTP router.
func buildRouter(st *store.Store, cfg *config.Config, log zerolog.Logger) http.Handler {
	r := repo.New(st, log)
	return api.NewRouter(api.Deps{
		Repo:     r,
		Auth:     services.NewAuthService(r, log, cfg.BcryptCost, cfg.SeedSampleData),
		Users:    services.NewUserService(r, log, cfg.BcryptCost),
		Meetings: services.NewMeetingService(r, log),
		Messages: services.NewMessageService(r, log),
		Articles: services.NewArticleService(r, log),
		Log:      log,
	})
}

// startHealthCheckers starts the store checker and service-level aggregator; binds health.
func startHealthCheckers(ctx context.Context, cfg *config.Config, log zerolog.Logger, st *store.Store) *health.ServiceHealthChecker {
	interval := time.Duration(cfg.HealthProbeIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = 5 * time.Second
	}

	storeChecker := store.NewHealthChecker(st, log, 2*time.Second)
	go storeChecker.Start(ctx, interval)

	svcHealth := health.NewServiceHealthChecker(log, storeChecker)
	go svcHealth.Start(ctx, interval)
	api.BindServiceHealth(svcHealth.IsHealthy)
	return svcHealth
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// startupHealthTimeout returns the startup health window in seconds,
// calculated as interval*2 with a minimum of 30 seconds.
func startupHealthTimeout(probeIntervalSeconds int) int {
	timeout := probeIntervalSeconds * 2
	if timeout < 30 {
		return 30
	}
	return timeout
}

// waitUntilHealthy blocks until service health is healthy or the startup window expires.
func waitUntilHealthy(ctx context.Context, cfg *config.Config, svcHealth *health.ServiceHealthChecker) error {
	timeoutSeconds := startupHealthTimeout(cfg.HealthProbeIntervalSeconds)
	deadline := time.Now().Add(time.Duration(timeoutSeconds) * time.Second)
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		if svcHealth.IsHealthy() {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("startup aborted: storage not healthy within %d seconds", timeoutSeconds)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
