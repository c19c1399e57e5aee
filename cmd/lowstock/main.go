// Command lowstock runs one low-stock scan and notifies kitchen staff and
// administrators. It is meant for deployments that run the server with
// SCHEDULER_ENABLED=false and drive jobs from an external cron.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/hostel-backend/internal/app"
	"github.com/heartmarshall/hostel-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("init", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close()

	res, err := c.LowStock.Check(ctx, time.Now().In(cfg.Scheduler.Location))
	if err != nil {
		logger.Error("low-stock check failed", slog.String("error", err.Error()))
		c.Close()
		os.Exit(1)
	}

	logger.Info("low-stock check completed",
		slog.Int("low_items", res.LowItems),
		slog.Int("recipients", res.Recipients),
		slog.Int("created", res.Created),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", res.Failed),
	)
}
