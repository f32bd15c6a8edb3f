package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults when environment is empty", func(t *testing.T) {
		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "https://wps-interview.azurewebsites.net", cfg.ExternalAPIBaseURL)
		assert.Equal(t, time.Duration(0), cfg.ExternalAPITimeout)
		assert.Equal(t, ".", cfg.ReportDir)
		assert.Equal(t, "usersync", cfg.DBName)
		assert.Equal(t, "reconcile_runs", cfg.RunsCollection)
		assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
		assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.False(t, cfg.UseMongo())
	})

	t.Run("overrides from environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("EXTERNAL_API_BASE_URL", "http://localhost:8000/")
		t.Setenv("EXTERNAL_API_TIMEOUT", "5s")
		t.Setenv("REPORT_DIR", "/tmp/reports")
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		t.Setenv("LOG_LEVEL", "DEBUG")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "http://localhost:8000", cfg.ExternalAPIBaseURL)
		assert.Equal(t, 5*time.Second, cfg.ExternalAPITimeout)
		assert.Equal(t, "/tmp/reports", cfg.ReportDir)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.True(t, cfg.UseMongo())
	})

	t.Run("invalid base url fails", func(t *testing.T) {
		t.Setenv("EXTERNAL_API_BASE_URL", "not a url")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "ExternalAPIBaseURL")
	})

	t.Run("unparseable duration fails", func(t *testing.T) {
		t.Setenv("SERVER_READ_TIMEOUT", "ten seconds")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("unknown log level fails", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "chatty")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "LogLevel")
	})
}
