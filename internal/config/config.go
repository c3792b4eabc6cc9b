package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting, populated from the environment.
type Config struct {
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`

	JWTSecret   string `envconfig:"JWT_SECRET_KEY" required:"true"`
	JWTExpHours int64  `envconfig:"JWT_EXPIRATION_HOURS" default:"24"`

	// First registration with this email becomes the admin account.
	InitialAdminEmail string `envconfig:"INITIAL_ADMIN_EMAIL"`

	// Per-parcel rate for earnings summaries, in the smallest currency unit.
	RatePerParcel int64 `envconfig:"RATE_PER_PARCEL" default:"50"`

	DB DBConfig
}

// DBConfig holds database connection parameters
type DBConfig struct {
	Host     string `envconfig:"DB_HOST" required:"true"`
	Port     string `envconfig:"DB_PORT" required:"true"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD"`
	Name     string `envconfig:"DB_NAME" required:"true"`
}

// DSN assembles the PostgreSQL connection string
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

// Load populates Config from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}
