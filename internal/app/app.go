// Package app wires configuration, storage, services and transports into
// the running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/hostel-backend/internal/config"
	"github.com/heartmarshall/hostel-backend/internal/scheduler"
	"github.com/heartmarshall/hostel-backend/internal/transport/middleware"
)

const limiterSweepInterval = 5 * time.Minute

// Run starts the HTTP server and, when enabled, the job scheduler, and
// blocks until SIGINT/SIGTERM or a fatal error. In-flight requests get
// Server.ShutdownTimeout to finish; running jobs are always awaited.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Scheduler.Location.String()),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	sched := scheduler.New(logger, cfg.Scheduler.Location)
	if err := RegisterJobs(sched, cfg.Scheduler, c.Consumption, c.LowStock); err != nil {
		return fmt.Errorf("register jobs: %w", err)
	}

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimit)
	srv := newServer(c, sched, limiter)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if cfg.Scheduler.Enabled {
		g.Go(func() error { return sched.Run(gctx) })
	} else {
		logger.Warn("scheduler disabled, jobs run only when triggered")
	}

	g.Go(func() error {
		ticker := time.NewTicker(limiterSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if n := limiter.Sweep(); n > 0 {
					logger.Debug("rate limiter swept", slog.Int("buckets", n))
				}
			}
		}
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}
