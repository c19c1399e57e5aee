package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Log         LogConfig         `yaml:"log"`
	Scheduler   SchedulerConfig   `yaml:"scheduler"`
	Consumption ConsumptionConfig `yaml:"consumption"`
	CORS        CORSConfig        `yaml:"cors"`
	Push        PushConfig        `yaml:"push"`
}

// PushConfig selects the real-time notification sink. With an empty
// WebhookURL notifications are only logged.
type PushConfig struct {
	WebhookURL string        `yaml:"webhook_url" env:"PUSH_WEBHOOK_URL"`
	Timeout    time.Duration `yaml:"timeout"     env:"PUSH_TIMEOUT"     env-default:"5s"`
}

// CORSConfig holds CORS settings for the staff dashboard.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Authorization,Content-Type,X-Request-Id"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"3600"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// RateLimit is the per-client request budget per minute. Zero disables it.
	RateLimit int `yaml:"rate_limit" env:"SERVER_RATE_LIMIT" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer token settings. TokenTTL applies to tokens minted
// by the staff provisioning command.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"hostel"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"720h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SchedulerConfig holds the cron patterns of the background jobs.
// Patterns use the standard five-field cron syntax.
type SchedulerConfig struct {
	Enabled       bool   `yaml:"enabled"        env:"SCHEDULER_ENABLED"         env-default:"true"`
	Timezone      string `yaml:"timezone"       env:"SCHEDULER_TIMEZONE"        env-default:"UTC"`
	BreakfastCron string `yaml:"breakfast_cron" env:"SCHEDULER_BREAKFAST_CRON"  env-default:"0 7 * * *"`
	LunchCron     string `yaml:"lunch_cron"     env:"SCHEDULER_LUNCH_CRON"      env-default:"0 11 * * *"`
	DinnerCron    string `yaml:"dinner_cron"    env:"SCHEDULER_DINNER_CRON"     env-default:"0 17 * * *"`
	LowStockCron  string `yaml:"low_stock_cron" env:"SCHEDULER_LOW_STOCK_CRON"  env-default:"0 */4 * * *"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// ConsumptionConfig holds the parameters of automated stock consumption.
type ConsumptionConfig struct {
	// BaselineGroupSize is the headcount plan quantities are written for.
	BaselineGroupSize int `yaml:"baseline_group_size" env:"CONSUMPTION_BASELINE_GROUP_SIZE" env-default:"10"`
	// SystemActorID is recorded as the author of scheduled usage records.
	SystemActorID string `yaml:"system_actor_id" env:"CONSUMPTION_SYSTEM_ACTOR_ID" env-default:"00000000-0000-0000-0000-00000000c0de"`
}

// CronSpecs returns the job name to cron pattern mapping.
func (s SchedulerConfig) CronSpecs() map[string]string {
	return map[string]string{
		"breakfast": s.BreakfastCron,
		"lunch":     s.LunchCron,
		"dinner":    s.DinnerCron,
		"low-stock": s.LowStockCron,
	}
}
