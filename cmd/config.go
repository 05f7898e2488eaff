package cmd

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all runtime settings, populated from environment variables.
type Config struct {
	HTTPPort   string `env:"HTTP_PORT" envDefault:"8080"`
	DBHost     string `env:"DB_HOST,required"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBName     string `env:"DB_NAME,required"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// StaleOrderSchedule is a six-field cron expression with seconds.
	StaleOrderSchedule string        `env:"STALE_ORDER_SCHEDULE" envDefault:"0 */5 * * * *"`
	StaleOrderTTL      time.Duration `env:"STALE_ORDER_TTL" envDefault:"24h"`
}

// ParseConfig reads configuration from the environment.
func ParseConfig() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return config, nil
}

// DatabaseDSN builds the PostgreSQL connection string.
func (c Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
