package types

import "strings"

// Activity is the closed set of outdoor activities the engine can score.
type Activity string

const (
	ActivitySurfing      Activity = "surfing"
	ActivityHiking       Activity = "hiking"
	ActivitySkiing       Activity = "skiing"
	ActivitySnowboarding Activity = "snowboarding"
)

// AllActivities lists every scoreable activity in stable order.
// Used by the activities endpoint to enumerate the closed set.
var AllActivities = []Activity{
	ActivitySurfing,
	ActivityHiking,
	ActivitySkiing,
	ActivitySnowboarding,
}

// activityAliases maps normalized free-text labels to canonical activities.
// Keys must be lowercase.
var activityAliases = map[string]Activity{
	"surf":         ActivitySurfing,
	"surfing":      ActivitySurfing,
	"hike":         ActivityHiking,
	"hiking":       ActivityHiking,
	"ski":          ActivitySkiing,
	"skiing":       ActivitySkiing,
	"snowboard":    ActivitySnowboarding,
	"snowboarding": ActivitySnowboarding,
}

// NormalizeActivity maps a free-text activity label to its canonical variant.
// Matching is case-insensitive and ignores surrounding whitespace. The second
// return value is false when the label does not correspond to any known
// activity; callers must surface that as an error rather than guessing.
func NormalizeActivity(label string) (Activity, bool) {
	key := strings.ToLower(strings.TrimSpace(label))
	activity, ok := activityAliases[key]
	return activity, ok
}

// IsSnowSport reports whether the activity is scored with the shared
// skiing/snowboarding rule set.
func (a Activity) IsSnowSport() bool {
	return a == ActivitySkiing || a == ActivitySnowboarding
}
