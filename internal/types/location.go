package types

// LocationMetadata is the compact feature vector the classifier derives from
// raw place data and user tags. It is constructed once per query and never
// mutated afterwards; all flags are definite (no tri-state "unknown").
type LocationMetadata struct {
	DisplayName string `json:"display_name"`
	CountryCode string `json:"country_code,omitempty"`

	// Raw classifier inputs retained for diagnostics only. The engine never
	// reads these.
	RawCategory string `json:"raw_category,omitempty"`
	RawType     string `json:"raw_type,omitempty"`

	IsCoastal           bool `json:"is_coastal"`
	HasLargeWaterNearby bool `json:"has_large_water_nearby"`
	IsPark              bool `json:"is_park"`
	IsUrban             bool `json:"is_urban"`
	SnowFriendly        bool `json:"snow_friendly"`
	SurfFriendly        bool `json:"surf_friendly"`
}

// Oceanic reports whether the location looks like open-water coast: the
// combination the surfing gatekeeper accepts without an explicit surf tag.
func (l LocationMetadata) Oceanic() bool {
	return l.IsCoastal && l.HasLargeWaterNearby
}
