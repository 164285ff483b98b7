// Package geo implements the two-stage proximity filter used by nearby search:
// a cheap lat/lng box for the store query, then exact great-circle distance.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	// EarthRadiusKm is the mean Earth radius used for great-circle distance.
	EarthRadiusKm = 6371.0

	// KmPerDegreeLat is the length of one degree of latitude.
	KmPerDegreeLat = 111.32
)

// NewPoint builds an orb point from latitude and longitude. orb stores [lng, lat].
func NewPoint(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// BoundingBox returns the box that contains every point within radiusKm of center.
// The longitude span widens with 1/cos(lat) of the center latitude.
func BoundingBox(center orb.Point, radiusKm float64) orb.Bound {
	latDelta := radiusKm / KmPerDegreeLat
	lngDelta := radiusKm / (KmPerDegreeLat * math.Cos(toRadians(center.Lat())))

	return orb.Bound{
		Min: orb.Point{center.Lon() - lngDelta, center.Lat() - latDelta},
		Max: orb.Point{center.Lon() + lngDelta, center.Lat() + latDelta},
	}
}

// DistanceKm calculates the great circle distance between two points in kilometers
func DistanceKm(a, b orb.Point) float64 {
	lat1Rad := toRadians(a.Lat())
	lat2Rad := toRadians(b.Lat())
	deltaLat := lat2Rad - lat1Rad
	deltaLng := toRadians(b.Lon() - a.Lon())

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// IsValidCoordinate reports whether lat/lng are finite and inside geographic bounds.
func IsValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
