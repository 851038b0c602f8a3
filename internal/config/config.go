// Package config defines the global configuration structure for the
// OutdoorCast service. Configuration is loaded once at process initialization
// and is immutable thereafter. It follows 12-Factor App principles by
// strictly separating code from configuration.
//
// Values are resolved via a priority chain:
//
//	OS Environment (Highest) -> Dotenv File -> Struct Defaults (Lowest)
//
// Any missing required value or invalid format causes the application to fail
// immediately on startup.
package config

import "time"

// Config is the top-level configuration struct for the OutdoorCast service.
// It is populated once during startup and never modified. Sub-components
// receive only the specific config subsets they require.
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"local" validate:"required,oneof=local dev staging prod"`
	Service     string `envconfig:"SERVICE_NAME" default:"outdoorcast"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	Server   ServerConfig
	Upstream UpstreamConfig
}

// ServerConfig holds HTTP server tuning.
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"29s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// UpstreamConfig holds the third-party geodata endpoints and the resilience
// knobs for calling them. Both upstreams are public, keyless, rate-limited
// APIs; the endpoints are overridable for tests and local mirrors.
type UpstreamConfig struct {
	ForecastBaseURL  string        `envconfig:"OPENMETEO_FORECAST_URL" default:"https://api.open-meteo.com/v1/forecast" validate:"required,url"`
	MarineBaseURL    string        `envconfig:"OPENMETEO_MARINE_URL" default:"https://marine-api.open-meteo.com/v1/marine" validate:"required,url"`
	NominatimBaseURL string        `envconfig:"NOMINATIM_URL" default:"https://nominatim.openstreetmap.org/reverse" validate:"required,url"`
	UserAgent        string        `envconfig:"UPSTREAM_USER_AGENT" default:"OutdoorCast/1.0"`
	HTTPTimeout      time.Duration `envconfig:"UPSTREAM_HTTP_TIMEOUT" default:"8s"`
	FetchTimeout     time.Duration `envconfig:"FETCH_TIMEOUT" default:"10s"`
}
