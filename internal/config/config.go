package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings, populated from environment variables
// (optionally seeded from a .env file by the caller before Load runs).
type Config struct {
	Port          string        `envconfig:"PORT" default:"8080"`
	MatrixBaseURL string        `envconfig:"MATRIX_BASE_URL" default:"https://maps.googleapis.com/maps/api/distancematrix/json" validate:"required,url"`
	ClientTimeout time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"10s"`
	SessionSecret string        `envconfig:"SESSION_SECRET" default:"postal-distance-dev-secret" validate:"required"`
	TemplatesGlob string        `envconfig:"TEMPLATES_GLOB" default:"templates/*"`
}

// Load populates Config from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: process environment: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("load config: validate: %w", err)
	}

	return &cfg, nil
}
