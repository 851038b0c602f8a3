package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelForScore_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  SuitabilityLabel
	}{
		{0, LabelTerrible},
		{30, LabelTerrible},
		{31, LabelOK},
		{70, LabelOK},
		{71, LabelGreat},
		{100, LabelGreat},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelForScore(tt.score), "score %d", tt.score)
	}
}

func TestFeelsLikeC(t *testing.T) {
	apparent := 12.5
	wx := WeatherSnapshot{TempC: 18, ApparentTempC: &apparent}
	assert.Equal(t, 12.5, wx.FeelsLikeC())

	wx.ApparentTempC = nil
	assert.Equal(t, 18.0, wx.FeelsLikeC())
}

func TestOceanic(t *testing.T) {
	assert.True(t, LocationMetadata{IsCoastal: true, HasLargeWaterNearby: true}.Oceanic())
	assert.False(t, LocationMetadata{IsCoastal: true}.Oceanic())
	assert.False(t, LocationMetadata{HasLargeWaterNearby: true}.Oceanic())
}
