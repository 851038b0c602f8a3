package types

// SuitabilityLabel is the coarse bucket derived from the numeric score.
type SuitabilityLabel string

const (
	LabelTerrible SuitabilityLabel = "TERRIBLE"
	LabelOK       SuitabilityLabel = "OK"
	LabelGreat    SuitabilityLabel = "GREAT"
)

// Label thresholds, inclusive upper bounds.
const (
	terribleMax = 30
	okMax       = 70
)

// LabelForScore derives the coarse label from a public 0-100 score.
// score <= 30 -> TERRIBLE, score <= 70 -> OK, else GREAT.
func LabelForScore(score int) SuitabilityLabel {
	switch {
	case score <= terribleMax:
		return LabelTerrible
	case score <= okMax:
		return LabelOK
	default:
		return LabelGreat
	}
}

// SuitabilityResult is the engine's output for one (activity, place, weather)
// query. It is a pure value: identical inputs always produce an identical
// result.
type SuitabilityResult struct {
	Activity Activity         `json:"activity"`
	Score    int              `json:"score"`
	Label    SuitabilityLabel `json:"label"`
	Reasons  []string         `json:"reasons"`
}
