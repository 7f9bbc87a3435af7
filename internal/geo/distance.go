// Package geo implements great-circle distance and proximity ranking of products.
package geo

import (
	"fmt"
	"math"

	"harvest/internal/domain/entity"
)

// EarthRadiusKm is the spherical-earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// ComputeDistanceKm returns the haversine great-circle distance between a and b
// in kilometers. Inputs are not validated; invalid coordinates give a defined
// but meaningless result.
func ComputeDistanceKm(a, b entity.Coordinate) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// FormatDistance renders a distance the way product cards show it.
func FormatDistance(km float64) string {
	return fmt.Sprintf("%.1f km away", km)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
