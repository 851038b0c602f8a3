package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

func TestNormalize_RequiredFieldsDefaultToZero(t *testing.T) {
	snap := Normalize(RawForecast{})

	assert.Zero(t, snap.TempC)
	assert.Zero(t, snap.WindKph)
	assert.Zero(t, snap.PrecipMm)
}

func TestNormalize_OptionalAbsenceIsPreserved(t *testing.T) {
	snap := Normalize(RawForecast{Temperature2m: f(20)})

	assert.Nil(t, snap.ApparentTempC)
	assert.Nil(t, snap.GustKph)
	assert.Nil(t, snap.PrecipProb)
	assert.Nil(t, snap.WeatherCode)
	assert.Nil(t, snap.SnowfallCm)
	assert.Nil(t, snap.SnowDepthCm)
	assert.Nil(t, snap.VisibilityM)
	assert.Nil(t, snap.SoilMoistureTopLayer)
	assert.Nil(t, snap.WaveHeightM)
	assert.Nil(t, snap.SwellPeriodS)
}

func TestNormalize_WindUnitConversion(t *testing.T) {
	t.Run("metres per second", func(t *testing.T) {
		snap := Normalize(RawForecast{
			WindSpeed10m:  f(10),
			WindGusts10m:  f(20),
			WindSpeedUnit: UnitMs,
		})
		assert.InDelta(t, 36.0, snap.WindKph, 1e-9)
		require.NotNil(t, snap.GustKph)
		assert.InDelta(t, 72.0, *snap.GustKph, 1e-9)
	})

	t.Run("km/h passes through", func(t *testing.T) {
		snap := Normalize(RawForecast{WindSpeed10m: f(25), WindSpeedUnit: UnitKmh})
		assert.Equal(t, 25.0, snap.WindKph)
	})

	t.Run("empty unit defaults to km/h", func(t *testing.T) {
		snap := Normalize(RawForecast{WindSpeed10m: f(25)})
		assert.Equal(t, 25.0, snap.WindKph)
	})
}

func TestNormalize_SnowDepthMetresToCentimetres(t *testing.T) {
	snap := Normalize(RawForecast{SnowDepthM: f(0.6)})

	require.NotNil(t, snap.SnowDepthCm)
	assert.InDelta(t, 60.0, *snap.SnowDepthCm, 1e-9)
}

func TestNormalize_OptionalPassthrough(t *testing.T) {
	raw := RawForecast{
		ApparentTemperature:      f(17.5),
		PrecipitationProbability: f(65),
		WeatherCode:              i(61),
		SnowfallCm:               f(12),
		VisibilityM:              f(8000),
		SoilMoisture0To1cm:       f(0.35),
		WaveHeightM:              f(1.4),
		SwellWavePeriodS:         f(10.5),
		WindDirection10m:         f(220),
	}

	snap := Normalize(raw)

	require.NotNil(t, snap.ApparentTempC)
	assert.Equal(t, 17.5, *snap.ApparentTempC)
	require.NotNil(t, snap.WeatherCode)
	assert.Equal(t, 61, *snap.WeatherCode)
	require.NotNil(t, snap.WaveHeightM)
	assert.Equal(t, 1.4, *snap.WaveHeightM)
	require.NotNil(t, snap.SwellPeriodS)
	assert.Equal(t, 10.5, *snap.SwellPeriodS)
	require.NotNil(t, snap.WindDirDeg)
	assert.Equal(t, 220.0, *snap.WindDirDeg)
}

func TestNormalize_DoesNotAliasInput(t *testing.T) {
	wave := 1.0
	raw := RawForecast{WaveHeightM: &wave}

	snap := Normalize(raw)
	wave = 99

	require.NotNil(t, snap.WaveHeightM)
	assert.Equal(t, 1.0, *snap.WaveHeightM)
}
