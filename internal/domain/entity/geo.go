// Package entity contains the core business objects of the project.
package entity

// GeoPoint represents a geographic coordinate in decimal degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DistanceStatus indicates how a distance result was produced.
type DistanceStatus string

const (
	// DistanceOK indicates the routing provider returned a road distance.
	DistanceOK DistanceStatus = "OK"
	// DistanceFallback indicates the great-circle estimate was substituted
	// because the routing provider could not be used.
	DistanceFallback DistanceStatus = "FALLBACK"
)

// DistanceResult is the outcome of a single origin/destination distance query.
// It is ephemeral: computed per query and cached briefly by coordinate pair,
// never persisted.
type DistanceResult struct {
	DistanceMiles            float64        `json:"distance_miles"`
	DurationMinutes          float64        `json:"duration_minutes"`
	DurationInTrafficMinutes *float64       `json:"duration_in_traffic_minutes,omitempty"`
	Status                   DistanceStatus `json:"status"`
	ErrorDetail              string         `json:"error_detail,omitempty"`
}

// RadiusQuery describes a radius search around an origin point.
type RadiusQuery struct {
	Origin      GeoPoint `json:"origin"`
	RadiusMiles float64  `json:"radius_miles"`
	UseTraffic  bool     `json:"use_traffic"`
}
