// Package suitability implements the activity suitability engine: a pure,
// deterministic scorer that turns a location feature vector and a weather
// snapshot into a 0-100 score, a coarse label, and up to three reasons.
//
// Each activity runs a three-stage pipeline. The gatekeeper decides whether
// the activity is possible at the location at all, or caps the best
// achievable score. Cliffs are absolute safety thresholds that force a fixed
// low score and skip fine-grained scoring. The curve starts from a perfect
// baseline and applies independent additive adjustments per weather factor.
//
// All internal scoring uses a 0-10 scale; the public score is the internal
// value clamped to [0, maxScore], multiplied by 10, and rounded.
package suitability

import (
	"math"

	"outdoorcast/internal/types"
)

// Internal scale bounds.
const (
	baseScore        = 10.0
	maxInternalScore = 10.0
)

// scoreFunc scores one activity. Implementations must be pure: no clocks, no
// randomness, no I/O.
type scoreFunc func(loc types.LocationMetadata, wx types.WeatherSnapshot) *scorecard

// scorers dispatches per activity. Skiing and snowboarding share the snow
// rule set but remain independent entries in the closed set.
var scorers = map[types.Activity]scoreFunc{
	types.ActivitySurfing:      scoreSurfing,
	types.ActivityHiking:       scoreHiking,
	types.ActivitySkiing:       scoreSnowSport,
	types.ActivitySnowboarding: scoreSnowSport,
}

// Score evaluates the given activity at the given location under the given
// weather. It is total over its input domain: every call returns a result and
// never fails. Identical inputs always yield an identical result.
func Score(activity types.Activity, loc types.LocationMetadata, wx types.WeatherSnapshot) types.SuitabilityResult {
	fn, ok := scorers[activity]
	if !ok {
		// Unreachable through NormalizeActivity; kept so the engine stays
		// total even for a hand-constructed Activity value.
		return types.SuitabilityResult{
			Activity: activity,
			Score:    0,
			Label:    types.LabelTerrible,
			Reasons:  []string{"Unsupported activity"},
		}
	}
	return fn(loc, wx).finalize(activity)
}

// scorecard accumulates the internal 0-10 score, the gatekeeper cap, and the
// attached reasons while an activity pipeline runs.
type scorecard struct {
	score    float64
	maxScore float64
	reasons  []string
	done     bool // set by infeasible/cliff; later stages are skipped
}

func newScorecard() *scorecard {
	return &scorecard{score: baseScore, maxScore: maxInternalScore}
}

// adjust applies one additive curve adjustment with its reason.
func (c *scorecard) adjust(delta float64, reason string) {
	c.score += delta
	c.note(reason)
}

// note records a reason without changing the score (praise buckets).
func (c *scorecard) note(reason string) {
	if reason != "" {
		c.reasons = append(c.reasons, reason)
	}
}

// capAt lowers the maximum achievable score (gatekeeper soft-fail).
func (c *scorecard) capAt(max float64, reason string) {
	if max < c.maxScore {
		c.maxScore = max
	}
	c.note(reason)
}

// cliff forces a fixed low score and ends scoring immediately.
func (c *scorecard) cliff(score float64, reason string) {
	c.score = score
	c.done = true
	c.note(reason)
}

// infeasible zeroes the score and ends scoring immediately (hard gate).
func (c *scorecard) infeasible(reason string) {
	c.score = 0
	c.done = true
	c.note(reason)
}

// finalize clamps, scales to 0-100, derives the label, and trims reasons to
// the first three distinct entries in first-occurrence order.
func (c *scorecard) finalize(activity types.Activity) types.SuitabilityResult {
	internal := c.score
	if internal > c.maxScore {
		internal = c.maxScore
	}
	if internal < 0 {
		internal = 0
	}
	score := int(math.Round(internal * 10))

	return types.SuitabilityResult{
		Activity: activity,
		Score:    score,
		Label:    types.LabelForScore(score),
		Reasons:  dedupeReasons(c.reasons, 3),
	}
}

// dedupeReasons removes duplicate strings preserving first-occurrence order
// and caps the list at max entries.
func dedupeReasons(reasons []string, max int) []string {
	out := make([]string, 0, max)
	seen := make(map[string]struct{}, len(reasons))
	for _, r := range reasons {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
		if len(out) == max {
			break
		}
	}
	return out
}
