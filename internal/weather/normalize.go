// Package weather normalizes heterogeneous forecast fields into the canonical
// WeatherSnapshot consumed by the suitability engine.
//
// The normalizer owns every default and unit conversion. Required fields
// (temperature, wind, precipitation) default to zero when the source omitted
// them, which has defined scoring meaning. Optional fields pass through as
// pointers and are never invented: a missing wave height stays missing so the
// engine can distinguish "no marine data" from "flat sea".
package weather

import "outdoorcast/internal/types"

// Wind speed units accepted from upstream sources.
const (
	UnitKmh = "kmh"
	UnitMs  = "ms"
)

// msToKmh converts metres per second to kilometres per hour.
const msToKmh = 3.6

// RawForecast mirrors the already-parsed field set of an Open-Meteo style
// forecast response (current conditions plus the marine and soil add-ons).
// Every field is optional at this layer; the normalizer decides which ones
// receive defaults.
type RawForecast struct {
	Temperature2m            *float64 `json:"temperature_2m,omitempty"`
	ApparentTemperature      *float64 `json:"apparent_temperature,omitempty"`
	WindSpeed10m             *float64 `json:"wind_speed_10m,omitempty"`
	WindGusts10m             *float64 `json:"wind_gusts_10m,omitempty"`
	WindDirection10m         *float64 `json:"wind_direction_10m,omitempty"`
	Precipitation            *float64 `json:"precipitation,omitempty"`
	PrecipitationProbability *float64 `json:"precipitation_probability,omitempty"`
	WeatherCode              *int     `json:"weather_code,omitempty"`
	SnowfallCm               *float64 `json:"snowfall,omitempty"`
	SnowDepthM               *float64 `json:"snow_depth,omitempty"`
	VisibilityM              *float64 `json:"visibility,omitempty"`
	SoilMoisture0To1cm       *float64 `json:"soil_moisture_0_to_1cm,omitempty"`
	WaveHeightM              *float64 `json:"wave_height,omitempty"`
	SwellWavePeriodS         *float64 `json:"swell_wave_period,omitempty"`

	// WindSpeedUnit discriminates the unit of WindSpeed10m/WindGusts10m.
	// Empty defaults to km/h.
	WindSpeedUnit string `json:"wind_speed_unit,omitempty"`
}

// Normalize maps a raw forecast into the canonical snapshot.
func Normalize(raw RawForecast) types.WeatherSnapshot {
	snap := types.WeatherSnapshot{
		TempC:    deref(raw.Temperature2m),
		WindKph:  toKmh(deref(raw.WindSpeed10m), raw.WindSpeedUnit),
		PrecipMm: deref(raw.Precipitation),
	}

	snap.ApparentTempC = clone(raw.ApparentTemperature)
	snap.PrecipProb = clone(raw.PrecipitationProbability)
	snap.SnowfallCm = clone(raw.SnowfallCm)
	snap.VisibilityM = clone(raw.VisibilityM)
	snap.SoilMoistureTopLayer = clone(raw.SoilMoisture0To1cm)
	snap.WaveHeightM = clone(raw.WaveHeightM)
	snap.SwellPeriodS = clone(raw.SwellWavePeriodS)
	snap.WindDirDeg = clone(raw.WindDirection10m)

	if raw.WindGusts10m != nil {
		gust := toKmh(*raw.WindGusts10m, raw.WindSpeedUnit)
		snap.GustKph = &gust
	}
	if raw.WeatherCode != nil {
		code := *raw.WeatherCode
		snap.WeatherCode = &code
	}
	if raw.SnowDepthM != nil {
		// Open-Meteo reports snow depth in metres; the snapshot carries cm.
		depth := *raw.SnowDepthM * 100
		snap.SnowDepthCm = &depth
	}

	return snap
}

// toKmh converts a wind speed to km/h according to the declared source unit.
func toKmh(speed float64, unit string) float64 {
	if unit == UnitMs {
		return speed * msToKmh
	}
	return speed
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// clone copies an optional value so the snapshot does not alias the raw input.
func clone(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
