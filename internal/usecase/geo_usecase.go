// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import (
	"context"

	"jobsearch/internal/domain/entity"

	"github.com/google/uuid"
)

// GeoRecord is a geo-tagged record submitted to radius filtering. Point is
// nil when the underlying record has no location data; such records are
// excluded in the pre-filter phase.
type GeoRecord struct {
	ID    uuid.UUID
	Point *entity.GeoPoint
}

// RadiusMatch is a record that survived radius filtering, with the computed
// distance attached for display.
type RadiusMatch struct {
	ID       uuid.UUID             `json:"id"`
	Distance entity.DistanceResult `json:"distance"`
}

// GeoUsecase determines which geo-tagged records lie within a travel radius
// of an origin point, optionally using real road distance instead of
// straight-line distance.
//
// The external routing dependency is treated as unreliable: every operation
// degrades to a great-circle estimate instead of failing, so none of these
// methods return an error.
type GeoUsecase interface {
	// GreatCircleMiles returns the spherical distance between two points in
	// miles. Pure and deterministic.
	GreatCircleMiles(a, b entity.GeoPoint) float64

	// RoadDistanceAndTime resolves road distance and travel time for one
	// origin/destination pair, consulting the cache first. Provider failures
	// yield a FALLBACK result with the error recorded in ErrorDetail.
	RoadDistanceAndTime(ctx context.Context, origin, destination entity.GeoPoint, useTraffic bool) entity.DistanceResult

	// BatchRoadDistanceAndTime resolves road distances for many destinations.
	// Cache hits are served directly; misses are sent to the provider in
	// chunks. A failing chunk falls back to great-circle estimates for its
	// members only.
	BatchRoadDistanceAndTime(ctx context.Context, origin entity.GeoPoint, destinations []GeoRecord, useTraffic bool) map[uuid.UUID]entity.DistanceResult

	// FilterByRadius runs the two-phase radius filter: a great-circle
	// pre-filter with a buffer multiplier, then road-distance refinement.
	// Results are ordered by ascending road distance, ties broken by
	// ascending travel time.
	FilterByRadius(ctx context.Context, records []GeoRecord, query entity.RadiusQuery) []RadiusMatch
}
