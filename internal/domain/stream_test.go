package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewTruckPositionEvent(t *testing.T) {
	computedAt := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)
	status := &TruckStatus{
		RouteID:     "boa-viagem",
		Position:    Point{Lat: -8.1275, Lon: -34.9020},
		PointIndex:  2,
		RouteLength: 5,
		DistanceKm:  4.5,
		ETAMinutes:  9,
		ComputedAt:  computedAt,
	}

	event := NewTruckPositionEvent("truck-01", status)

	assert.NotEqual(t, uuid.Nil, event.EventID)
	assert.Equal(t, "truck-01", event.TruckID)
	assert.Equal(t, "boa-viagem", event.RouteID)
	assert.Equal(t, -8.1275, event.Lat)
	assert.Equal(t, -34.9020, event.Lon)
	assert.Equal(t, 2, event.PointIndex)
	assert.Equal(t, 9, event.ETAMinutes)
	assert.False(t, event.Arriving)
	assert.True(t, computedAt.Equal(event.ComputedAt))

	other := NewTruckPositionEvent("truck-01", status)
	assert.NotEqual(t, event.EventID, other.EventID)
}

func TestParseDisposalCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected DisposalCategory
		ok       bool
	}{
		{"ecoponto", "ecoponto", CategoryEcoponto, true},
		{"reciclagem upper case", "  RECICLAGEM ", CategoryReciclagem, true},
		{"unknown", "aterro", DisposalCategory("aterro"), false},
		{"empty", "", DisposalCategory(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ParseDisposalCategory(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestPoint_Valid(t *testing.T) {
	assert.True(t, Point{Lat: -8.0631, Lon: -34.8711}.Valid())
	assert.True(t, Point{Lat: 90, Lon: -180}.Valid())
	assert.False(t, Point{Lat: 90.1, Lon: 0}.Valid())
	assert.False(t, Point{Lat: 0, Lon: 180.5}.Valid())
}
