package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeActivity(t *testing.T) {
	tests := []struct {
		label string
		want  Activity
		ok    bool
	}{
		{"surfing", ActivitySurfing, true},
		{"surf", ActivitySurfing, true},
		{"hiking", ActivityHiking, true},
		{"hike", ActivityHiking, true},
		{"skiing", ActivitySkiing, true},
		{"ski", ActivitySkiing, true},
		{"snowboarding", ActivitySnowboarding, true},
		{"snowboard", ActivitySnowboarding, true},
		{"SURF", ActivitySurfing, true},
		{"  Skiing  ", ActivitySkiing, true},
		{"kayak", "", false},
		{"", "", false},
		{"surfin", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := NormalizeActivity(tt.label)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSnowSport(t *testing.T) {
	assert.True(t, ActivitySkiing.IsSnowSport())
	assert.True(t, ActivitySnowboarding.IsSnowSport())
	assert.False(t, ActivitySurfing.IsSnowSport())
	assert.False(t, ActivityHiking.IsSnowSport())
}
