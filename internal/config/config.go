package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Duty workflow configuration
	TimeZone                string `mapstructure:"TIME_ZONE"`
	GracePeriodMinutes      int    `mapstructure:"GRACE_PERIOD_MINUTES"`
	AutoLockHour            int    `mapstructure:"AUTO_LOCK_HOUR"`
	AutoLockMinute          int    `mapstructure:"AUTO_LOCK_MINUTE"`
	RetentionDays           int    `mapstructure:"NOTIFICATION_RETENTION_DAYS"`
	AllowDuplicateSchedules bool   `mapstructure:"ALLOW_DUPLICATE_SCHEDULES"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "k9_duty")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Duty workflow defaults. The grace period is the window after a shift's
	// nominal end during which a report may still be submitted; auto-lock
	// freezes yesterday's open schedules at the configured wall-clock time.
	viper.SetDefault("TIME_ZONE", "UTC")
	viper.SetDefault("GRACE_PERIOD_MINUTES", 240)
	viper.SetDefault("AUTO_LOCK_HOUR", 23)
	viper.SetDefault("AUTO_LOCK_MINUTE", 59)
	viper.SetDefault("NOTIFICATION_RETENTION_DAYS", 30)
	viper.SetDefault("ALLOW_DUPLICATE_SCHEDULES", false)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.GracePeriodMinutes < 0 {
		return fmt.Errorf("GRACE_PERIOD_MINUTES must not be negative")
	}
	if config.AutoLockHour < 0 || config.AutoLockHour > 23 {
		return fmt.Errorf("AUTO_LOCK_HOUR must be between 0 and 23")
	}
	if config.AutoLockMinute < 0 || config.AutoLockMinute > 59 {
		return fmt.Errorf("AUTO_LOCK_MINUTE must be between 0 and 59")
	}
	if config.RetentionDays < 1 {
		return fmt.Errorf("NOTIFICATION_RETENTION_DAYS must be at least 1")
	}
	if _, err := time.LoadLocation(config.TimeZone); err != nil {
		return fmt.Errorf("invalid TIME_ZONE %q: %w", config.TimeZone, err)
	}

	return nil
}

// Location returns the canonical time zone all deadline comparisons use.
// Validity is checked at load time.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// GracePeriod returns the configured grace period as a duration
func (c *Config) GracePeriod() time.Duration {
	return time.Duration(c.GracePeriodMinutes) * time.Minute
}

// RetentionWindow returns the configured notification retention window
func (c *Config) RetentionWindow() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
