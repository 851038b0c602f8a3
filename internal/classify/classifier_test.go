package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_SurfTagForcesWaterTrio(t *testing.T) {
	meta := Classify(nil, "Somewhere Inland", []string{"Surf Spot"})

	assert.True(t, meta.SurfFriendly)
	assert.True(t, meta.IsCoastal)
	assert.True(t, meta.HasLargeWaterNearby)
	assert.False(t, meta.SnowFriendly)
}

func TestClassify_SnowTagSetsSnowFriendly(t *testing.T) {
	meta := Classify(nil, "Backcountry Bowl", []string{"Ski Resort"})

	assert.True(t, meta.SnowFriendly)
	assert.False(t, meta.SurfFriendly)
}

func TestClassify_StructuredTypes(t *testing.T) {
	tests := []struct {
		name        string
		raw         *PlaceRecord
		displayName string
		wantCoastal bool
		wantWater   bool
		wantPark    bool
		wantSnow    bool
	}{
		{
			name:        "beach",
			raw:         &PlaceRecord{Category: "natural", Type: "beach"},
			displayName: "Main Break",
			wantCoastal: true,
			wantWater:   true,
		},
		{
			name:        "island is unconditionally coastal",
			raw:         &PlaceRecord{Category: "place", Type: "island"},
			displayName: "Rottnest",
			wantCoastal: true,
			wantWater:   true,
		},
		{
			name:        "inland lake is water but not coast",
			raw:         &PlaceRecord{Category: "natural", Type: "lake"},
			displayName: "Big Reservoir",
			wantCoastal: false,
			wantWater:   true,
		},
		{
			name:        "national park",
			raw:         &PlaceRecord{Category: "boundary", Type: "national_park"},
			displayName: "Kosciuszko",
			wantPark:    true,
		},
		{
			name:        "ski area",
			raw:         &PlaceRecord{Category: "landuse", Type: "ski_resort"},
			displayName: "Falls Creek",
			wantSnow:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := Classify(tt.raw, tt.displayName, nil)
			assert.Equal(t, tt.wantCoastal, meta.IsCoastal, "coastal")
			assert.Equal(t, tt.wantWater, meta.HasLargeWaterNearby, "water")
			assert.Equal(t, tt.wantPark, meta.IsPark, "park")
			assert.Equal(t, tt.wantSnow, meta.SnowFriendly, "snow")
		})
	}
}

func TestClassify_UrbanSignals(t *testing.T) {
	t.Run("city address field", func(t *testing.T) {
		raw := &PlaceRecord{Address: PlaceAddress{City: "Melbourne"}}
		meta := Classify(raw, "Somewhere", nil)
		assert.True(t, meta.IsUrban)
	})

	t.Run("suburb only", func(t *testing.T) {
		raw := &PlaceRecord{Address: PlaceAddress{Suburb: "Fitzroy"}}
		meta := Classify(raw, "Old Warehouse", nil)
		assert.True(t, meta.IsUrban)
	})

	t.Run("suburb only suppressed for a park", func(t *testing.T) {
		raw := &PlaceRecord{
			Category: "leisure",
			Type:     "park",
			Address:  PlaceAddress{Suburb: "Richmond"},
		}
		meta := Classify(raw, "Central Gardens", nil)
		assert.True(t, meta.IsPark)
		assert.False(t, meta.IsUrban, "a park inside a suburb is not merely urban")
	})

	t.Run("structured place type", func(t *testing.T) {
		raw := &PlaceRecord{Category: "place", Type: "town"}
		meta := Classify(raw, "Wagga Wagga", nil)
		assert.True(t, meta.IsUrban)
	})
}

func TestClassify_FreeTextFallback(t *testing.T) {
	t.Run("known snow resort by name", func(t *testing.T) {
		meta := Classify(nil, "Whistler Blackcomb", nil)
		assert.True(t, meta.SnowFriendly)
	})

	t.Run("known surf town implies coast", func(t *testing.T) {
		meta := Classify(nil, "Bondi Beach", nil)
		assert.True(t, meta.SurfFriendly)
		assert.True(t, meta.IsCoastal)
		assert.True(t, meta.HasLargeWaterNearby)
	})

	t.Run("known park by name", func(t *testing.T) {
		meta := Classify(nil, "Yosemite Valley", nil)
		assert.True(t, meta.IsPark)
	})

	t.Run("coastal keyword in display name", func(t *testing.T) {
		meta := Classify(nil, "Smugglers Cove", nil)
		assert.True(t, meta.IsCoastal)
		assert.True(t, meta.HasLargeWaterNearby)
	})
}

func TestClassify_NoSignalDefaultsToFalse(t *testing.T) {
	meta := Classify(nil, "Somewhere", nil)

	assert.Equal(t, "Somewhere", meta.DisplayName)
	assert.False(t, meta.IsCoastal)
	assert.False(t, meta.HasLargeWaterNearby)
	assert.False(t, meta.IsPark)
	assert.False(t, meta.IsUrban)
	assert.False(t, meta.SnowFriendly)
	assert.False(t, meta.SurfFriendly)
}

func TestClassify_RawFieldsCarriedThrough(t *testing.T) {
	raw := &PlaceRecord{
		Category:    "natural",
		Type:        "beach",
		DisplayName: "Praia do Norte, Nazare, Portugal",
		CountryCode: "PT",
	}

	meta := Classify(raw, "", nil)

	assert.Equal(t, "Praia do Norte, Nazare, Portugal", meta.DisplayName)
	assert.Equal(t, "pt", meta.CountryCode)
	assert.Equal(t, "natural", meta.RawCategory)
	assert.Equal(t, "beach", meta.RawType)
}

func TestClassify_Deterministic(t *testing.T) {
	raw := &PlaceRecord{Category: "natural", Type: "beach", Address: PlaceAddress{City: "Sydney"}}
	first := Classify(raw, "Bondi Beach", []string{"surf"})
	second := Classify(raw, "Bondi Beach", []string{"surf"})
	assert.Equal(t, first, second)
}
