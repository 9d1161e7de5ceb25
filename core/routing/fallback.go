package routing

import (
	"context"
	"math"
)

const (
	earthRadiusKm = 6371.0

	// roadFactor inflates great-circle distance toward a plausible road
	// distance. Indicative only; a fallback result never confirms the
	// distance line.
	roadFactor = 1.2
)

// FallbackResolver estimates a road distance from the haversine
// great-circle distance. It cannot fail.
type FallbackResolver struct{}

// NewFallbackResolver creates the haversine fallback.
func NewFallbackResolver() *FallbackResolver {
	return &FallbackResolver{}
}

// ResolveDistance returns the inflated great-circle distance.
func (f *FallbackResolver) ResolveDistance(_ context.Context, origin, destination Coordinate) (Resolved, error) {
	return Resolved{
		DistanceKm: haversineKm(origin, destination) * roadFactor,
		Source:     SourceFallback,
	}, nil
}

func haversineKm(a, b Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
