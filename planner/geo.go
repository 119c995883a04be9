package planner

import (
	"math"

	"github.com/katalvlaran/flightroute/airspace"
)

// earthRadiusKm is the spherical-Earth approximation radius.
const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance between a and b in
// kilometers on a spherical Earth, rounded up to the nearest whole
// kilometer.
//
// The search heuristic divides this by the baseline cruise speed to project
// remaining flight time; see the package documentation for the admissibility
// caveat under fairwind.
//
// Complexity: O(1)
func HaversineKm(a, b *airspace.Location) float64 {
	lat1 := radians(a.Lat)
	lon1 := radians(a.Lon)
	lat2 := radians(b.Lat)
	lon2 := radians(b.Lon)

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Ceil(earthRadiusKm * c)
}

// radians converts degrees to radians.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
