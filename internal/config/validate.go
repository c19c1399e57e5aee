package config

import (
	"fmt"
	"net/url"
	"sort"
	"time"
	_ "time/tzdata" // scheduler timezones must resolve in minimal containers

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive (got %s)", c.Auth.TokenTTL)
	}

	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be >= 0 (got %d)", c.Server.RateLimit)
	}

	if c.Push.WebhookURL != "" {
		u, err := url.Parse(c.Push.WebhookURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("push.webhook_url must be an absolute http(s) URL (got %q)", c.Push.WebhookURL)
		}
	}

	if err := c.Scheduler.validate(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	if err := c.Consumption.validate(); err != nil {
		return fmt.Errorf("consumption: %w", err)
	}

	return nil
}

func (s *SchedulerConfig) validate() error {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	s.Location = loc

	specs := s.CronSpecs()
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := cron.ParseStandard(specs[name]); err != nil {
			return fmt.Errorf("%s cron %q: %w", name, specs[name], err)
		}
	}

	return nil
}

func (c *ConsumptionConfig) validate() error {
	if !domain.IsAllowedGroupSize(c.BaselineGroupSize) {
		return fmt.Errorf("baseline_group_size must be one of %v (got %d)", domain.AllowedGroupSizes, c.BaselineGroupSize)
	}

	id, err := uuid.Parse(c.SystemActorID)
	if err != nil {
		return fmt.Errorf("system_actor_id: %w", err)
	}
	if id == uuid.Nil {
		return fmt.Errorf("system_actor_id must not be the nil UUID")
	}

	return nil
}

// SystemActor returns the parsed system actor id. Only valid after Validate.
func (c ConsumptionConfig) SystemActor() uuid.UUID {
	return uuid.MustParse(c.SystemActorID)
}
