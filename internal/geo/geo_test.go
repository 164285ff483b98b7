package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name        string
		p1          orb.Point
		p2          orb.Point
		expectedMin float64
		expectedMax float64
	}{
		{
			name:        "same point",
			p1:          NewPoint(25.0330, 121.5654),
			p2:          NewPoint(25.0330, 121.5654),
			expectedMin: 0,
			expectedMax: 0.00001,
		},
		{
			name:        "Taipei 101 to Taipei Main Station (~5.1km)",
			p1:          NewPoint(25.0330, 121.5654),
			p2:          NewPoint(25.0478, 121.5170),
			expectedMin: 5,
			expectedMax: 6,
		},
		{
			name:        "0.05 degrees of latitude (~5.56km)",
			p1:          NewPoint(0, 0),
			p2:          NewPoint(0.05, 0),
			expectedMin: 5.5,
			expectedMax: 5.6,
		},
		{
			name:        "cross equator (~222km)",
			p1:          NewPoint(1, 0),
			p2:          NewPoint(-1, 0),
			expectedMin: 220,
			expectedMax: 224,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DistanceKm(tt.p1, tt.p2)
			assert.GreaterOrEqual(t, d, tt.expectedMin)
			assert.LessOrEqual(t, d, tt.expectedMax)
			assert.InDelta(t, d, DistanceKm(tt.p2, tt.p1), 1e-9)
		})
	}
}

func TestBoundingBox(t *testing.T) {
	t.Run("equator", func(t *testing.T) {
		box := BoundingBox(NewPoint(0, 0), 10)

		assert.InDelta(t, -10/111.32, box.Min.Lat(), 1e-9)
		assert.InDelta(t, 10/111.32, box.Max.Lat(), 1e-9)
		assert.InDelta(t, 10/111.32, box.Max.Lon(), 1e-9)
		assert.True(t, box.Contains(NewPoint(0.05, 0)))
		assert.False(t, box.Contains(NewPoint(0.2, 0)))
	})

	t.Run("longitude span widens away from the equator", func(t *testing.T) {
		box := BoundingBox(NewPoint(60, 10), 10)

		latSpan := box.Max.Lat() - box.Min.Lat()
		lngSpan := box.Max.Lon() - box.Min.Lon()
		assert.InDelta(t, 2*latSpan, lngSpan, 1e-9)
	})

	t.Run("every point within radius is inside the box", func(t *testing.T) {
		center := NewPoint(25.03, 121.56)
		box := BoundingBox(center, 10)

		for bearing := 0.0; bearing < 360; bearing += 15 {
			rad := bearing * math.Pi / 180
			p := NewPoint(
				center.Lat()+(9.9/111.32)*math.Cos(rad),
				center.Lon()+(9.9/(111.32*math.Cos(center.Lat()*math.Pi/180)))*math.Sin(rad),
			)
			assert.True(t, box.Contains(p), "bearing %v", bearing)
		}
	})
}

func TestIsValidCoordinate(t *testing.T) {
	assert.True(t, IsValidCoordinate(25.03, 121.56))
	assert.True(t, IsValidCoordinate(-90, 180))
	assert.False(t, IsValidCoordinate(91, 0))
	assert.False(t, IsValidCoordinate(0, -181))
	assert.False(t, IsValidCoordinate(math.NaN(), 0))
	assert.False(t, IsValidCoordinate(0, math.Inf(1)))
}
