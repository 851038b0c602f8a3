package suitability

import "outdoorcast/internal/types"

// Hiking thresholds.
const (
	hikeUrbanCap       = 4.0
	hikeCliffHotC      = 35.0
	hikeCliffColdC     = -10.0
	hikeCliffPrecipMm  = 5.0
	hikeWindyKph       = 40.0
	hikeSoilMuddy      = 0.4
	hikeSoilDamp       = 0.3
)

// scoreHiking runs the hiking pipeline.
//
// Apparent temperature drives both the cliff and the comfort curve; when the
// source did not report one, the dry-bulb temperature stands in.
func scoreHiking(loc types.LocationMetadata, wx types.WeatherSnapshot) *scorecard {
	card := newScorecard()

	switch {
	case loc.IsPark:
		card.note("Parkland or nature reserve, great for hiking")
	case loc.IsUrban:
		card.capAt(hikeUrbanCap, "Urban area with limited trail access")
	}

	feels := wx.FeelsLikeC()

	// Cliffs.
	if feels > hikeCliffHotC {
		card.cliff(1.5, "Dangerous heat for hiking")
		return card
	}
	if feels < hikeCliffColdC {
		card.cliff(2.0, "Dangerous cold for hiking")
		return card
	}
	if wx.WeatherCode != nil && *wx.WeatherCode >= types.WMOThunderstormMin {
		card.cliff(1.0, "Thunderstorm risk")
		return card
	}
	if wx.PrecipMm > hikeCliffPrecipMm {
		card.cliff(1.0, "Heavy rain on the trails")
		return card
	}

	// Curve: apparent temperature comfort bands.
	switch {
	case feels >= 10 && feels <= 22:
		card.note("Ideal hiking temperature")
	case (feels >= 0 && feels < 10) || (feels > 22 && feels <= 30):
		card.adjust(-1.5, "Temperature outside the comfortable range")
	default: // feels < 0 || feels > 30
		card.adjust(-3.0, "Harsh temperature for hiking")
	}

	// Curve: precipitation.
	switch {
	case wx.PrecipMm > 2 || (wx.PrecipProb != nil && *wx.PrecipProb > 80):
		card.adjust(-3.0, "Rain very likely")
	case wx.PrecipProb != nil && *wx.PrecipProb > 40:
		card.adjust(-1.5, "Chance of rain")
	}

	// Curve: soil moisture, when the source reports the top layer.
	if wx.SoilMoistureTopLayer != nil {
		switch m := *wx.SoilMoistureTopLayer; {
		case m > hikeSoilMuddy:
			card.adjust(-2.5, "Muddy trails expected")
		case m > hikeSoilDamp:
			card.adjust(-1.0, "Damp ground")
		}
	}

	// Curve: wind.
	if wx.WindKph > hikeWindyKph {
		card.adjust(-2.0, "Strong wind on exposed sections")
	}

	return card
}
