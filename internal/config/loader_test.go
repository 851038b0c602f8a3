package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Environment)
	assert.Equal(t, "outdoorcast", cfg.Service)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 29*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Upstream.FetchTimeout)
	assert.Equal(t, "https://api.open-meteo.com/v1/forecast", cfg.Upstream.ForecastBaseURL)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("PORT", "9090")
	t.Setenv("OPENMETEO_FORECAST_URL", "http://localhost:8081/v1/forecast")
	t.Setenv("FETCH_TIMEOUT", "3s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8081/v1/forecast", cfg.Upstream.ForecastBaseURL)
	assert.Equal(t, 3*time.Second, cfg.Upstream.FetchTimeout)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	t.Run("bad environment", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "verbose")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("bad upstream url", func(t *testing.T) {
		t.Setenv("NOMINATIM_URL", "not a url")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
