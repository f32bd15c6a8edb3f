package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080" validate:"required,numeric"`

	// Remote user API
	ExternalAPIBaseURL string        `env:"EXTERNAL_API_BASE_URL" envDefault:"https://wps-interview.azurewebsites.net" validate:"required,url"`
	ExternalAPITimeout time.Duration `env:"EXTERNAL_API_TIMEOUT" envDefault:"0s"`

	// Directory receiving missing_emails.json and email_update_errors.json
	ReportDir string `env:"REPORT_DIR" envDefault:"." validate:"required"`

	// Run history; an empty MongoURI keeps history in memory
	MongoURI       string `env:"MONGO_URI" validate:"omitempty,uri"`
	DBName         string `env:"DB_NAME" envDefault:"usersync" validate:"required"`
	RunsCollection string `env:"COLLECTION_RECONCILE_RUNS" envDefault:"reconcile_runs" validate:"required"`

	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
}

func LoadConfig() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.ExternalAPIBaseURL = strings.TrimSuffix(strings.TrimSpace(cfg.ExternalAPIBaseURL), "/")
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			e := verrs[0]
			return fmt.Errorf("invalid config: %s failed on the '%s' tag", e.Field(), e.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// UseMongo reports whether run history should be kept in MongoDB.
func (c *Config) UseMongo() bool {
	return c.MongoURI != ""
}
