// Package classify turns raw place data and user tags into the compact
// location feature vector consumed by the suitability engine.
//
// Resolution runs in three tiers of decreasing strength: explicit user tags,
// structured category/type fields from the geocoder, and a free-text fallback
// over the display name and tags. A tier, once it has decided a flag, is never
// overridden by a weaker tier. Classification is best-effort and never fails:
// with no usable input every flag stays false.
package classify

import (
	"strings"

	"outdoorcast/internal/types"
)

// PlaceRecord mirrors the subset of an OSM/Nominatim place record the
// classifier reads. It is the already-parsed output of the geocoding
// collaborator; the classifier performs no network calls.
type PlaceRecord struct {
	Category    string            `json:"category,omitempty"`
	Type        string            `json:"type,omitempty"`
	DisplayName string            `json:"display_name,omitempty"`
	CountryCode string            `json:"country_code,omitempty"`
	Address     PlaceAddress      `json:"address"`
	ExtraTags   map[string]string `json:"extratags,omitempty"`
}

// PlaceAddress carries the structured settlement fields from a geocode result.
type PlaceAddress struct {
	City    string `json:"city,omitempty"`
	Town    string `json:"town,omitempty"`
	Village string `json:"village,omitempty"`
	Suburb  string `json:"suburb,omitempty"`
	County  string `json:"county,omitempty"`
	State   string `json:"state,omitempty"`
}

// Classify derives LocationMetadata from a raw place record, a display name,
// and user-supplied tags. raw may be nil (failed or skipped geocode), in which
// case only tag and name inference applies and all flags default to false.
func Classify(raw *PlaceRecord, displayName string, userTags []string) types.LocationMetadata {
	meta := types.LocationMetadata{DisplayName: displayName}

	var cat, typ string
	var addr PlaceAddress
	if raw != nil {
		cat = strings.ToLower(strings.TrimSpace(raw.Category))
		typ = strings.ToLower(strings.TrimSpace(raw.Type))
		addr = raw.Address
		meta.CountryCode = strings.ToLower(raw.CountryCode)
		meta.RawCategory = raw.Category
		meta.RawType = raw.Type
		if meta.DisplayName == "" {
			meta.DisplayName = raw.DisplayName
		}
	}

	// Tier 1: user tags. A surf-spot tag decides the water trio outright;
	// lower tiers may add other flags but never revoke these.
	waterTrioLocked := false
	if hasTagMarker(userTags, surfTagMarkers) {
		meta.SurfFriendly = true
		meta.IsCoastal = true
		meta.HasLargeWaterNearby = true
		waterTrioLocked = true
	}
	if hasTagMarker(userTags, snowTagMarkers) {
		meta.SnowFriendly = true
	}

	// Tier 2: structured category/type fields.
	island := islandTypes[typ] || islandTypes[cat]
	structuredCoastal := island || coastalTypes[typ] || coastalTypes[cat]
	structuredWater := waterTypes[typ] || waterTypes[cat]
	structuredPark := parkTypes[typ] || parkTypes[cat]
	structuredUrbanType := urbanTypes[typ] && (cat == "place" || cat == "boundary" || cat == "")
	structuredSki := skiTypes[typ] || cat == "winter_sports"

	if !waterTrioLocked && structuredCoastal {
		meta.IsCoastal = true
	}
	if structuredPark {
		meta.IsPark = true
	}
	if structuredSki {
		meta.SnowFriendly = true
	}

	// Tier 3: free-text fallback over the concatenated lowercase blob.
	// Consulted per flag, only where the structured tier produced no signal.
	blob := buildBlob(meta.DisplayName, cat, typ, userTags)

	if !waterTrioLocked && !meta.IsCoastal && containsAny(blob, coastalKeywords) {
		meta.IsCoastal = true
	}
	if !meta.IsPark && containsAny(blob, parkKeywords) {
		meta.IsPark = true
	}
	if !meta.SnowFriendly && containsAny(blob, snowKeywords) {
		meta.SnowFriendly = true
	}

	// Known named locations, weakest of the free-text signals.
	switch kind, ok := matchKnownLocation(blob); {
	case !ok:
	case kind == knownSnowResort:
		meta.SnowFriendly = true
	case kind == knownSurfTown && !waterTrioLocked:
		meta.SurfFriendly = true
		meta.IsCoastal = true
	case kind == knownPark:
		meta.IsPark = true
	}

	// Large water: implied by coastal, or matched independently.
	if !waterTrioLocked {
		textWater := containsAny(blob, waterKeywords)
		meta.HasLargeWaterNearby = meta.IsCoastal || structuredWater || textWater
	}

	// Urban: an urban type, urban keywords, or a city/town address field.
	// A suburb-only signal is suppressed once the place is known to be a
	// park, so a park inside a city is not down-weighted as merely urban.
	cityPresent := addr.City != "" || addr.Town != ""
	suburbOnly := !cityPresent && addr.Suburb != ""
	urbanSignal := structuredUrbanType || cityPresent || containsAny(blob, urbanKeywords)
	if urbanSignal {
		meta.IsUrban = true
	} else if suburbOnly && !meta.IsPark {
		meta.IsUrban = true
	}

	return meta
}

// hasTagMarker reports whether any user tag matches one of the curated markers.
// Tags match whole, case-insensitively, after trimming.
func hasTagMarker(tags []string, markers []string) bool {
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		for _, m := range markers {
			if t == m {
				return true
			}
		}
	}
	return false
}

// buildBlob concatenates every free-text input into one lowercase string.
func buildBlob(displayName, cat, typ string, tags []string) string {
	parts := make([]string, 0, 3+len(tags))
	parts = append(parts, displayName, cat, typ)
	parts = append(parts, tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// containsAny reports whether the blob contains any of the keywords.
func containsAny(blob string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(blob, kw) {
			return true
		}
	}
	return false
}

// matchKnownLocation scans the curated known-locations table for a substring
// match against the blob.
func matchKnownLocation(blob string) (knownLocationKind, bool) {
	for _, loc := range knownLocations {
		if strings.Contains(blob, loc.name) {
			return loc.kind, true
		}
	}
	return 0, false
}
