package external

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"outdoorcast/internal/weather"
)

// Default Open-Meteo endpoints. Both are keyless public APIs.
const (
	DefaultForecastBaseURL = "https://api.open-meteo.com/v1/forecast"
	DefaultMarineBaseURL   = "https://marine-api.open-meteo.com/v1/marine"
)

// OpenMeteoClient fetches forecast and marine data from Open-Meteo and maps
// it into weather.RawForecast. It implements suitability.WeatherFetcher.
//
// The marine endpoint only has data for ocean grid points, so a marine
// failure is not a fetch failure: the snapshot simply carries no wave fields
// and the engine treats that absence as meaningful.
type OpenMeteoClient struct {
	forecast *BaseClient
	marine   *BaseClient

	forecastBaseURL string
	marineBaseURL   string
	logger          *slog.Logger
}

// NewOpenMeteoClient creates an Open-Meteo client. Empty base URLs fall back
// to the public API endpoints. Forecast and marine calls run through separate
// circuit breakers since they are distinct upstream services.
func NewOpenMeteoClient(httpClient *http.Client, forecastBaseURL, marineBaseURL, userAgent string, logger *slog.Logger) *OpenMeteoClient {
	if forecastBaseURL == "" {
		forecastBaseURL = DefaultForecastBaseURL
	}
	if marineBaseURL == "" {
		marineBaseURL = DefaultMarineBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OpenMeteoClient{
		forecast:        NewBaseClient(httpClient, "openmeteo-forecast", DefaultRetryPolicy(), userAgent),
		marine:          NewBaseClient(httpClient, "openmeteo-marine", DefaultRetryPolicy(), userAgent),
		forecastBaseURL: forecastBaseURL,
		marineBaseURL:   marineBaseURL,
		logger:          logger,
	}
}

// openMeteoForecastResponse mirrors the subset of the forecast payload we read.
// Hourly arrays are requested with forecast_hours=1 so index 0 is the current
// hour.
type openMeteoForecastResponse struct {
	Current struct {
		Temperature2m       *float64 `json:"temperature_2m"`
		ApparentTemperature *float64 `json:"apparent_temperature"`
		Precipitation       *float64 `json:"precipitation"`
		WeatherCode         *int     `json:"weather_code"`
		WindSpeed10m        *float64 `json:"wind_speed_10m"`
		WindGusts10m        *float64 `json:"wind_gusts_10m"`
		WindDirection10m    *float64 `json:"wind_direction_10m"`
	} `json:"current"`
	Hourly struct {
		PrecipitationProbability []*float64 `json:"precipitation_probability"`
		SnowDepth                []*float64 `json:"snow_depth"`
		Visibility               []*float64 `json:"visibility"`
		SoilMoisture0To1cm       []*float64 `json:"soil_moisture_0_to_1cm"`
	} `json:"hourly"`
	Daily struct {
		SnowfallSum []*float64 `json:"snowfall_sum"`
	} `json:"daily"`
}

// openMeteoMarineResponse mirrors the marine payload subset.
type openMeteoMarineResponse struct {
	Current struct {
		WaveHeight      *float64 `json:"wave_height"`
		SwellWavePeriod *float64 `json:"swell_wave_period"`
	} `json:"current"`
}

// FetchForecast retrieves the raw forecast fields for a coordinate.
func (c *OpenMeteoClient) FetchForecast(ctx context.Context, lat, lon float64) (weather.RawForecast, error) {
	var payload openMeteoForecastResponse
	if err := c.forecast.GetJSON(ctx, c.forecastURL(lat, lon), &payload); err != nil {
		return weather.RawForecast{}, fmt.Errorf("openmeteo forecast: %w", err)
	}

	raw := weather.RawForecast{
		Temperature2m:            payload.Current.Temperature2m,
		ApparentTemperature:      payload.Current.ApparentTemperature,
		Precipitation:            payload.Current.Precipitation,
		WeatherCode:              payload.Current.WeatherCode,
		WindSpeed10m:             payload.Current.WindSpeed10m,
		WindGusts10m:             payload.Current.WindGusts10m,
		WindDirection10m:         payload.Current.WindDirection10m,
		PrecipitationProbability: first(payload.Hourly.PrecipitationProbability),
		SnowDepthM:               first(payload.Hourly.SnowDepth),
		VisibilityM:              first(payload.Hourly.Visibility),
		SoilMoisture0To1cm:       first(payload.Hourly.SoilMoisture0To1cm),
		SnowfallCm:               first(payload.Daily.SnowfallSum),
		WindSpeedUnit:            weather.UnitKmh,
	}

	// Marine data is best-effort: most grid points are land and the marine
	// API has nothing for them.
	var marine openMeteoMarineResponse
	if err := c.marine.GetJSON(ctx, c.marineURL(lat, lon), &marine); err != nil {
		c.logger.DebugContext(ctx, "no marine data for location",
			"lat", lat,
			"lon", lon,
			"error", err,
		)
		return raw, nil
	}
	raw.WaveHeightM = marine.Current.WaveHeight
	raw.SwellWavePeriodS = marine.Current.SwellWavePeriod

	return raw, nil
}

func (c *OpenMeteoClient) forecastURL(lat, lon float64) string {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%.4f", lat))
	values.Set("longitude", fmt.Sprintf("%.4f", lon))
	values.Set("current", "temperature_2m,apparent_temperature,precipitation,weather_code,wind_speed_10m,wind_gusts_10m,wind_direction_10m")
	values.Set("hourly", "precipitation_probability,snow_depth,visibility,soil_moisture_0_to_1cm")
	values.Set("daily", "snowfall_sum")
	values.Set("forecast_hours", "1")
	values.Set("forecast_days", "1")
	values.Set("wind_speed_unit", "kmh")
	values.Set("timezone", "UTC")
	return c.forecastBaseURL + "?" + values.Encode()
}

func (c *OpenMeteoClient) marineURL(lat, lon float64) string {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%.4f", lat))
	values.Set("longitude", fmt.Sprintf("%.4f", lon))
	values.Set("current", "wave_height,swell_wave_period")
	values.Set("timezone", "UTC")
	return c.marineBaseURL + "?" + values.Encode()
}

// first returns the first element of an hourly/daily series, nil when the
// series is empty or its first slot is null.
func first(series []*float64) *float64 {
	if len(series) == 0 {
		return nil
	}
	return series[0]
}
