// Package service defines interfaces for infrastructure-backed domain services.
package service

import (
	"context"

	"jobsearch/internal/domain/entity"
)

// RouteLegStatusOK is the provider's per-element success status.
const RouteLegStatusOK = "OK"

// RouteLeg is one origin/destination element of a distance-matrix response.
type RouteLeg struct {
	Status                   string // Provider per-element status; anything but "OK" means no route.
	DistanceMeters           int
	DurationSeconds          int
	DurationInTrafficSeconds *int // Only populated for traffic-aware queries.
}

// OK reports whether the leg carries a usable route.
func (l RouteLeg) OK() bool {
	return l.Status == RouteLegStatusOK
}

// RouteProvider is the external distance-matrix service. One call resolves
// road distance and travel time from a single origin to up to the provider's
// per-call destination limit. Implementations must respect ctx deadlines.
type RouteProvider interface {
	// DistanceMatrix returns one RouteLeg per destination, in input order.
	// A non-nil error means the whole call failed (network, malformed
	// payload, non-OK top-level status).
	DistanceMatrix(ctx context.Context, origin entity.GeoPoint, destinations []entity.GeoPoint, useTraffic bool) ([]RouteLeg, error)
}
