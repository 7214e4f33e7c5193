package domain

import (
	"context"
	"fmt"
	"math"
)

// RoutePlan is a driving route between two coordinates.
type RoutePlan struct {
	Points      []Geo
	DistanceKm  float64
	DurationMin float64
}

// RoutePlanner produces a route between two coordinates. Implemented by the
// external routing collaborator client.
type RoutePlanner interface {
	Plan(ctx context.Context, start, end Geo) (RoutePlan, error)
}

const (
	// hazardRadiusKm is the proximity threshold for route warnings.
	hazardRadiusKm = 0.5

	// kmPerDegree approximates great-circle distance from degree distance.
	kmPerDegree = 111.0
)

// FallbackRoute is the degraded straight-line route used when the routing
// collaborator is unreachable or returns a malformed response. Distance and
// duration are fixed placeholders.
func FallbackRoute(start, end Geo) RoutePlan {
	return RoutePlan{
		Points:      []Geo{start, end},
		DistanceKm:  5.0,
		DurationMin: 15.0,
	}
}

// AnnotateRoute flags route proximity to known flood hotspots. For each
// hotspot, the route points are scanned in order and the first point within
// hazardRadiusKm emits one warning; later points for that hotspot are
// skipped. Warnings come back in hotspot iteration order, not route order.
func AnnotateRoute(points []Geo, hotspots []Hotspot) []string {
	var warnings []string
	for _, h := range hotspots {
		for _, p := range points {
			if degreeDistanceKm(p, h.Point()) < hazardRadiusKm {
				warnings = append(warnings, fmt.Sprintf("Route passes near %s (known flood zone)", h.Name))
				break
			}
		}
	}
	return warnings
}

// degreeDistanceKm converts Euclidean degree distance to kilometers. Good
// enough at city scale; no haversine needed over a few hundred meters.
func degreeDistanceKm(a, b Geo) float64 {
	dLat := a.Lat - b.Lat
	dLng := a.Lng - b.Lng
	return math.Sqrt(dLat*dLat+dLng*dLng) * kmPerDegree
}
