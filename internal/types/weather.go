package types

// WeatherSnapshot is the canonical weather input to the suitability engine.
//
// Required fields are always populated by the normalizer (defaulting to zero
// where the source omitted them, which has defined scoring meaning: no wind,
// no precipitation). Optional fields are pointers because their absence is a
// real signal -- marine variables only exist for coastal queries, snow
// variables only for mountain queries -- and the engine branches on presence,
// never on a silently-defaulted zero.
type WeatherSnapshot struct {
	TempC    float64 `json:"temp_c"`
	WindKph  float64 `json:"wind_kph"`
	PrecipMm float64 `json:"precip_mm"`

	ApparentTempC        *float64 `json:"apparent_temp_c,omitempty"`
	GustKph              *float64 `json:"gust_kph,omitempty"`
	PrecipProb           *float64 `json:"precip_prob,omitempty"`
	WeatherCode          *int     `json:"weather_code,omitempty"`
	SnowfallCm           *float64 `json:"snowfall_cm,omitempty"`
	SnowDepthCm          *float64 `json:"snow_depth_cm,omitempty"`
	VisibilityM          *float64 `json:"visibility_m,omitempty"`
	SoilMoistureTopLayer *float64 `json:"soil_moisture_top_layer,omitempty"`
	WaveHeightM          *float64 `json:"wave_height_m,omitempty"`
	SwellPeriodS         *float64 `json:"swell_period_s,omitempty"`
	WindDirDeg           *float64 `json:"wind_dir_deg,omitempty"`
}

// FeelsLikeC returns the apparent temperature when the source reported one,
// falling back to the dry-bulb temperature otherwise.
func (w WeatherSnapshot) FeelsLikeC() float64 {
	if w.ApparentTempC != nil {
		return *w.ApparentTempC
	}
	return w.TempC
}

// WMO weather code bands the engine branches on.
const (
	// WMODrizzleMin..WMORainMax is the drizzle/rain band (codes 51-67).
	WMODrizzleMin = 51
	WMORainMax    = 67

	// WMOThunderstormMin is the first thunderstorm code (95+).
	WMOThunderstormMin = 95
)
