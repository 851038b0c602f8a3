package suitability

import "outdoorcast/internal/types"

// Snow sport thresholds.
const (
	snowNonResortCap   = 3.0
	snowCliffGustKph   = 70.0
	snowRainPrecipMm   = 0.5
	snowMinBaseDepthCm = 50.0
	powderDayCm        = 15.0
)

// scoreSnowSport runs the shared skiing/snowboarding pipeline.
//
// A location without the snow-friendly flag does not hard-fail: conditions are
// still scored, but the best achievable score is capped so an unclassified
// backyard can never look like a resort.
func scoreSnowSport(loc types.LocationMetadata, wx types.WeatherSnapshot) *scorecard {
	card := newScorecard()

	if !loc.SnowFriendly {
		card.capAt(snowNonResortCap, "Not a known ski area or snow destination")
	}

	// Cliffs. Rain falling on snow ruins the surface outright.
	rainCode := wx.WeatherCode != nil &&
		*wx.WeatherCode >= types.WMODrizzleMin && *wx.WeatherCode <= types.WMORainMax
	if wx.TempC > 0 && wx.PrecipMm > snowRainPrecipMm && rainCode {
		card.cliff(1.0, "Rain falling on snow")
		return card
	}
	if wx.GustKph != nil && *wx.GustKph > snowCliffGustKph {
		card.cliff(0.5, "Dangerous gusts, lifts likely closed")
		return card
	}

	// Curve: temperature.
	switch t := wx.TempC; {
	case t >= -10 && t <= -2:
		card.note("Ideal snow temperature")
	case t >= -20 && t < -10:
		card.adjust(-1.5, "Very cold on the mountain")
	case t > -2 && t <= 2:
		card.adjust(-1.5, "Warm, snow may be slushy")
	case t > 2:
		card.adjust(-4.0, "Too warm, melting snow")
	default: // t < -20
		card.adjust(-2.5, "Extreme cold")
	}

	// Curve: fresh snowfall.
	freshSnow := wx.SnowfallCm != nil && *wx.SnowfallCm > 0
	if wx.SnowfallCm != nil {
		switch {
		case *wx.SnowfallCm >= powderDayCm:
			card.adjust(2.0, "Powder day, fresh snowfall")
		case *wx.SnowfallCm >= 5:
			card.adjust(1.0, "Fresh snow on the slopes")
		}
	}

	// Curve: base depth. Only penalized when reported thin with nothing fresh.
	if wx.SnowDepthCm != nil && *wx.SnowDepthCm < snowMinBaseDepthCm && !freshSnow {
		card.adjust(-2.0, "Thin snow base")
	}

	// Curve: wind and gusts. The stronger signal wins.
	switch {
	case wx.GustKph != nil && *wx.GustKph > 40:
		card.adjust(-2.0, "Strong gusts on exposed runs")
	case wx.WindKph > 40:
		card.adjust(-1.5, "Windy conditions")
	}

	// Curve: visibility.
	if wx.VisibilityM != nil {
		switch v := *wx.VisibilityM; {
		case v < 500:
			card.adjust(-4.0, "Whiteout, near-zero visibility")
		case v < 2000:
			card.adjust(-1.5, "Poor visibility")
		default:
			card.note("Good visibility")
		}
	}

	return card
}
