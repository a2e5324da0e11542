package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Library
		Logging
		Audit
		Export
		Tasks
		Global
	}

	Database struct {
		Driver string `validate:"oneof=sqlite postgres"`
		Path   string `validate:"required_if=Driver sqlite"`
		DSN    string `validate:"required_if=Driver postgres"`
		LogSQL bool
	}
	Library struct {
		RollbackOnFailure bool // Roll back instead of committing an empty transaction on domain failures
	}
	Logging struct {
		Level  string `validate:"oneof=trace debug info warn error"`
		Format string `validate:"oneof=console json"`
	}
	Audit struct {
		Enabled         bool
		RetentionDays   int    `validate:"gte=0"` // Days to keep audit events (default: 30)
		CleanupSchedule string // Cron format: "0 3 * * *" = daily at 03:00
	}
	Export struct {
		Enabled  bool
		Dir      string `validate:"required"`
		Schedule string // Cron format: "0 * * * *" = hourly
	}
	Tasks struct {
		Enabled         bool
		DatabasePath    string        `validate:"required"`
		Workers         int           `validate:"gte=1"`
		ReleaseAfter    time.Duration // Claimed tasks go back to the queue after this long
		CleanupInterval time.Duration
	}
	Global struct {
		ShutdownTimeoutInSeconds int `validate:"gte=0"`
	}
)

// NewConfig reads the configuration from the environment. Values in .env and
// .env.local are used for variables the environment does not set.
func NewConfig() (*Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_driver", DriverSQLite)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", "")
	v.SetDefault("database_log_sql", false)
	v.SetDefault("library_rollback_on_failure", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("audit_enabled", true)
	v.SetDefault("audit_retention_days", 30)
	v.SetDefault("audit_cleanup_schedule", "0 3 * * *") // Daily at 03:00
	v.SetDefault("export_enabled", false)
	v.SetDefault("export_dir", "./export")
	v.SetDefault("export_schedule", "0 * * * *") // Hourly at :00
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_database_path", DefaultTasksDatabasePath)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	cfg := &Config{
		Database: Database{
			Driver: v.GetString("DATABASE_DRIVER"),
			Path:   v.GetString("DATABASE_PATH"),
			DSN:    v.GetString("DATABASE_DSN"),
			LogSQL: v.GetBool("DATABASE_LOG_SQL"),
		},
		Library: Library{
			RollbackOnFailure: v.GetBool("LIBRARY_ROLLBACK_ON_FAILURE"),
		},
		Logging: Logging{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Audit: Audit{
			Enabled:         v.GetBool("AUDIT_ENABLED"),
			RetentionDays:   v.GetInt("AUDIT_RETENTION_DAYS"),
			CleanupSchedule: v.GetString("AUDIT_CLEANUP_SCHEDULE"),
		},
		Export: Export{
			Enabled:  v.GetBool("EXPORT_ENABLED"),
			Dir:      v.GetString("EXPORT_DIR"),
			Schedule: v.GetString("EXPORT_SCHEDULE"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			DatabasePath:    v.GetString("TASK_DATABASE_PATH"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the field constraints declared on the config groups.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
