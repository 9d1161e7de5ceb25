// Package routing defines the distance-resolution contract the engine
// depends on. The engine itself never resolves anything: an unresolved
// distance is "not priceable", never a guess.
package routing

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Source identifies how a distance was obtained. Only an OSRM-routed
// distance is trusted enough to confirm the funnel's distance line; a
// fallback estimate is indicative-only.
type Source string

const (
	SourceOSRM     Source = "osrm"
	SourceFallback Source = "fallback"
)

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Resolved is one resolved road distance.
type Resolved struct {
	DistanceKm float64 `json:"distance_km"`
	Source     Source  `json:"source"`
}

// Resolver resolves the road distance between two points.
type Resolver interface {
	ResolveDistance(ctx context.Context, origin, destination Coordinate) (Resolved, error)
}

// CacheKey builds a cache key from coordinates rounded to precision
// decimals, so nearby lookups while a user types share one entry.
func CacheKey(origin, destination Coordinate, precision int) string {
	return fmt.Sprintf("dist:%s,%s;%s,%s",
		roundCoord(origin.Lat, precision), roundCoord(origin.Lon, precision),
		roundCoord(destination.Lat, precision), roundCoord(destination.Lon, precision))
}

func roundCoord(v float64, precision int) string {
	pow := math.Pow(10, float64(precision))
	return strconv.FormatFloat(math.Round(v*pow)/pow, 'f', precision, 64)
}

func encodeResolved(r Resolved) string {
	return fmt.Sprintf("%s|%s", strconv.FormatFloat(r.DistanceKm, 'f', 3, 64), r.Source)
}

func decodeResolved(s string) (Resolved, bool) {
	parts := strings.SplitN(s, "|", 2)
	if len(parts) != 2 {
		return Resolved{}, false
	}
	km, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Resolved{}, false
	}
	return Resolved{DistanceKm: km, Source: Source(parts[1])}, true
}
