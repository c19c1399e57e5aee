package app

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/hostel-backend/internal/config"
	"github.com/heartmarshall/hostel-backend/internal/domain"
	"github.com/heartmarshall/hostel-backend/internal/scheduler"
	"github.com/heartmarshall/hostel-backend/internal/service/consumption"
	"github.com/heartmarshall/hostel-backend/internal/service/lowstock"
)

// JobLowStock is the name of the low-stock scan job. Meal jobs are named
// after their meal type.
const JobLowStock = "low-stock"

type mealRunner interface {
	RunMeal(ctx context.Context, meal domain.MealType, date time.Time) (*consumption.RunResult, error)
}

type stockChecker interface {
	Check(ctx context.Context, now time.Time) (*lowstock.CheckResult, error)
}

type jobRegistry interface {
	Register(name, spec string, fn scheduler.JobFunc) error
}

// RegisterJobs adds the three meal consumption jobs and the low-stock scan
// to reg using the patterns from cfg.
func RegisterJobs(reg jobRegistry, cfg config.SchedulerConfig, meals mealRunner, stock stockChecker) error {
	specs := cfg.CronSpecs()

	for _, meal := range domain.MealTypes {
		if err := reg.Register(string(meal), specs[string(meal)], mealJob(meals, meal)); err != nil {
			return err
		}
	}

	return reg.Register(JobLowStock, specs[JobLowStock], func(ctx context.Context, at time.Time) error {
		_, err := stock.Check(ctx, at)
		return err
	})
}

// mealJob fails the run on partial failure so the scheduler log records it;
// the shortfall alert itself is sent by the consumption service.
func mealJob(meals mealRunner, meal domain.MealType) scheduler.JobFunc {
	return func(ctx context.Context, at time.Time) error {
		res, err := meals.RunMeal(ctx, meal, at)
		if err != nil {
			return err
		}
		if res.Outcome == consumption.OutcomePartialFailure {
			return fmt.Errorf("%s: %d item(s) not debited", meal, len(res.Errors))
		}
		return nil
	}
}
