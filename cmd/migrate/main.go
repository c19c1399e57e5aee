// Command migrate applies, rolls back or lists the SQL migrations.
//
// Usage:
//
//	migrate [-dir=migrations] up|down|status
//
// Configuration is loaded the same way as for the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/hostel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hostel-backend/internal/app"
	"github.com/heartmarshall/hostel-backend/internal/config"
)

func main() {
	dir := flag.String("dir", "migrations", "directory with goose SQL migrations")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		fmt.Fprintln(os.Stderr, "Usage: migrate [-dir=migrations] up|down|status")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := postgres.Migrate(ctx, cfg.Database.DSN, *dir, command, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}
}
