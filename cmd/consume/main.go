// Command consume runs scheduled consumption for one meal and prints the
// run report as JSON. The run is idempotent: a meal already recorded for
// the date is skipped.
//
// Usage:
//
//	consume -meal=dinner [-date=2024-03-05]
//
// The date defaults to today in the scheduler timezone.
// Exit codes: 0 = done or skipped, 1 = error, 2 = partial failure.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/hostel-backend/internal/app"
	"github.com/heartmarshall/hostel-backend/internal/config"
	"github.com/heartmarshall/hostel-backend/internal/domain"
	"github.com/heartmarshall/hostel-backend/internal/service/consumption"
)

func main() {
	meal := flag.String("meal", "", "meal to consume for: breakfast, lunch or dinner")
	date := flag.String("date", "", "date as YYYY-MM-DD (default today)")
	flag.Parse()

	mealType := domain.MealType(*meal)
	if !mealType.IsValid() {
		fmt.Fprintln(os.Stderr, "Usage: consume -meal=breakfast|lunch|dinner [-date=YYYY-MM-DD]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	loc := cfg.Scheduler.Location

	at := time.Now().In(loc)
	if *date != "" {
		if at, err = domain.ParseDate(*date, loc); err != nil {
			log.Fatalf("parse date: %v", err)
		}
	}

	logger := app.NewLogger(cfg.Log)

	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	c, err := app.NewContainer(initCtx, cfg, logger)
	cancel()
	if err != nil {
		logger.Error("init", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close()

	// Runs to completion like a scheduled run; the transaction decides the outcome.
	res, runErr := c.Consumption.RunMeal(context.Background(), mealType, at)
	if res != nil {
		printReport(res)
	}
	if runErr != nil {
		logger.Error("consumption failed", slog.String("error", runErr.Error()))
		c.Close()
		os.Exit(1)
	}
	if res.Outcome == consumption.OutcomePartialFailure {
		c.Close()
		os.Exit(2)
	}
}

type itemReport struct {
	Item      string `json:"item"`
	Deducted  string `json:"deducted"`
	Remaining string `json:"remaining"`
	Unit      string `json:"unit"`
}

type report struct {
	Meal       string       `json:"meal"`
	Date       string       `json:"date"`
	Outcome    string       `json:"outcome"`
	Attendance int          `json:"attendance"`
	UsageID    string       `json:"usage_id,omitempty"`
	Debited    []itemReport `json:"debited"`
	Errors     []string     `json:"errors,omitempty"`
}

func printReport(res *consumption.RunResult) {
	out := report{
		Meal:       string(res.MealType),
		Date:       domain.FormatDate(res.Date),
		Outcome:    string(res.Outcome),
		Attendance: res.AttendanceCount,
		Debited:    make([]itemReport, 0, len(res.Successes)),
		Errors:     res.Errors,
	}
	if res.Usage != nil {
		out.UsageID = res.Usage.ID.String()
	}
	for _, s := range res.Successes {
		out.Debited = append(out.Debited, itemReport{
			Item:      s.ItemName,
			Deducted:  s.Deducted.String(),
			Remaining: s.Remaining.String(),
			Unit:      string(s.Unit),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}
