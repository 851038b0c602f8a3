package suitability

import "outdoorcast/internal/types"

// Surfing thresholds.
const (
	surfMinWaveM       = 0.3
	surfMinSwellS      = 5.0
	surfCliffWindKph   = 70.0
	surfCliffWaveM     = 5.0
)

// scoreSurfing runs the surfing pipeline.
//
// The gatekeeper passes when the location is tagged surf-friendly, looks like
// open coast, or the live weather itself reports real marine conditions. The
// marine override deliberately promotes an unclassified location to feasible:
// strong sensor evidence wins over static classification, and static
// classification never revokes it. The converse also holds: a
// classification-confirmed coastal spot stays feasible when marine data is
// simply absent.
func scoreSurfing(loc types.LocationMetadata, wx types.WeatherSnapshot) *scorecard {
	card := newScorecard()

	marineEvidence := wx.WaveHeightM != nil && *wx.WaveHeightM > surfMinWaveM &&
		wx.SwellPeriodS != nil && *wx.SwellPeriodS >= surfMinSwellS

	if !loc.SurfFriendly && !loc.Oceanic() && !marineEvidence {
		card.infeasible("Not a surfable location: no coastline or marine conditions detected")
		return card
	}

	// Cliffs.
	if wx.WindKph > surfCliffWindKph {
		card.cliff(0.5, "Dangerously strong wind for surfing")
		return card
	}
	if wx.WaveHeightM != nil && *wx.WaveHeightM > surfCliffWaveM {
		card.cliff(1.0, "Waves are dangerously large")
		return card
	}

	// Curve: wave height.
	switch {
	case wx.WaveHeightM == nil:
		card.adjust(-4.0, "No wave data available")
	case *wx.WaveHeightM < 0.3:
		card.adjust(-5.0, "Waves too small to surf")
	case *wx.WaveHeightM < 0.6:
		card.adjust(-3.0, "Very small waves")
	case *wx.WaveHeightM <= 2.5:
		card.note("Great wave size")
	case *wx.WaveHeightM <= 4.0:
		card.adjust(-1.0, "Large waves, for experienced surfers")
	default:
		card.adjust(-3.0, "Very large waves")
	}

	// Curve: swell period, scored only when the marine source reported one.
	if wx.SwellPeriodS != nil {
		switch p := *wx.SwellPeriodS; {
		case p < 6:
			card.adjust(-3.0, "Short choppy swell")
		case p < 9:
			card.adjust(-1.0, "Moderate swell period")
		case p < 12:
			card.adjust(0.5, "Long clean swell")
		default:
			card.adjust(1.0, "Excellent groundswell")
		}
	}

	// Curve: wind.
	switch {
	case wx.WindKph < 5:
		card.adjust(0.5, "Glassy conditions")
	case wx.WindKph <= 30:
		card.adjust(-0.5, "Some wind chop")
	case wx.WindKph <= 50:
		card.adjust(-2.0, "Strong wind, messy conditions")
	default:
		card.adjust(-3.0, "Very strong wind")
	}

	// Curve: air temperature.
	switch t := wx.TempC; {
	case t < 5:
		card.adjust(-4.0, "Freezing conditions, thick wetsuit required")
	case t < 10:
		card.adjust(-2.5, "Very cold water session")
	case t < 18:
		card.adjust(-1.0, "Cool conditions, wetsuit needed")
	case t <= 28:
		card.note("Comfortable temperature")
	case t <= 32:
		card.adjust(-0.5, "Hot conditions")
	case t <= 35:
		card.adjust(-1.5, "Very hot conditions")
	default:
		card.adjust(-3.0, "Extreme heat")
	}

	return card
}
