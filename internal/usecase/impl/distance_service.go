// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"jobsearch/config"
	"jobsearch/internal/domain/entity"
	"jobsearch/internal/domain/service"
	"jobsearch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// earthRadiusMiles is the mean Earth radius used for great-circle distances.
	earthRadiusMiles = 3958.8

	// metersPerMile converts provider distances (meters) to miles.
	metersPerMile = 1609.344

	// travelMode is the only routing mode the matcher queries.
	travelMode = "driving"

	// fallback defaults applied when the config section is missing
	defaultBatchSize           = 25 // provider per-call destination limit
	defaultRequestTimeout      = 7 * time.Second
	defaultTrafficModel        = "best_guess"
	defaultTrafficTTL          = 5 * time.Minute
	defaultSuccessTTL          = 60 * time.Minute
	defaultFallbackTTL         = 15 * time.Minute
	defaultPreFilterMultiplier = 1.5
	defaultFallbackSpeedMph    = 30.0
)

type distanceService struct {
	provider service.RouteProvider
	cache    service.DistanceCache
	logger   *slog.Logger

	batchSize      int
	requestTimeout time.Duration
	trafficModel   string
	trafficTTL     time.Duration
	successTTL     time.Duration
	fallbackTTL    time.Duration

	preFilterMultiplier float64
	fallbackSpeedMph    float64
}

// NewDistanceService creates the geo radius matcher. Missing config sections
// fall back to the provider's documented limits and conservative estimates.
func NewDistanceService(
	logger *slog.Logger,
	provider service.RouteProvider,
	cache service.DistanceCache,
	cfg *config.Config,
) usecase.GeoUsecase {
	svc := &distanceService{
		provider:            provider,
		cache:               cache,
		logger:              logger,
		batchSize:           defaultBatchSize,
		requestTimeout:      defaultRequestTimeout,
		trafficModel:        defaultTrafficModel,
		trafficTTL:          defaultTrafficTTL,
		successTTL:          defaultSuccessTTL,
		fallbackTTL:         defaultFallbackTTL,
		preFilterMultiplier: defaultPreFilterMultiplier,
		fallbackSpeedMph:    defaultFallbackSpeedMph,
	}

	if cfg != nil && cfg.Maps != nil {
		maps := cfg.Maps
		if maps.BatchSize > 0 {
			svc.batchSize = maps.BatchSize
		}
		if maps.RequestTimeout > 0 {
			svc.requestTimeout = maps.RequestTimeout
		}
		if maps.TrafficModel != "" {
			svc.trafficModel = maps.TrafficModel
		}
		if maps.TrafficTTL > 0 {
			svc.trafficTTL = maps.TrafficTTL
		}
		if maps.SuccessTTL > 0 {
			svc.successTTL = maps.SuccessTTL
		}
		if maps.FallbackTTL > 0 {
			svc.fallbackTTL = maps.FallbackTTL
		}
	}

	if cfg != nil && cfg.Search != nil {
		if cfg.Search.PreFilterRadiusMultiplier > 0 {
			svc.preFilterMultiplier = cfg.Search.PreFilterRadiusMultiplier
		}
		if cfg.Search.FallbackSpeedMph > 0 {
			svc.fallbackSpeedMph = cfg.Search.FallbackSpeedMph
		}
	}

	return svc
}

// GreatCircleMiles returns the haversine distance between two points in miles.
func (s *distanceService) GreatCircleMiles(a, b entity.GeoPoint) float64 {
	return greatCircleMiles(a, b)
}

func greatCircleMiles(a, b entity.GeoPoint) float64 {
	phi1 := a.Latitude * math.Pi / 180
	phi2 := b.Latitude * math.Pi / 180
	deltaPhi := (b.Latitude - a.Latitude) * math.Pi / 180
	deltaLambda := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}

// RoadDistanceAndTime resolves one origin/destination pair, cache first.
// Provider failures never surface: the caller always receives a result.
func (s *distanceService) RoadDistanceAndTime(ctx context.Context, origin, destination entity.GeoPoint, useTraffic bool) entity.DistanceResult {
	key := s.cacheKey(origin, destination, useTraffic)
	if cached := s.cacheLookup(ctx, key); cached != nil {
		return *cached
	}

	legs, err := s.callProvider(ctx, origin, []entity.GeoPoint{destination}, useTraffic)
	if err != nil {
		result := s.fallbackResult(origin, destination, err)
		s.cacheStore(ctx, key, result, useTraffic)

		return result
	}

	if len(legs) != 1 {
		result := s.fallbackResult(origin, destination, errors.Errorf("provider returned %d elements for 1 destination", len(legs)))
		s.cacheStore(ctx, key, result, useTraffic)

		return result
	}

	result := s.legResult(origin, destination, legs[0])
	s.cacheStore(ctx, key, result, useTraffic)

	return result
}

// BatchRoadDistanceAndTime resolves many destinations at once. The cache is
// consulted per destination; only misses go to the provider, chunked at the
// per-call limit. A failing chunk degrades to great-circle estimates for its
// members without aborting the batch.
func (s *distanceService) BatchRoadDistanceAndTime(ctx context.Context, origin entity.GeoPoint, destinations []usecase.GeoRecord, useTraffic bool) map[uuid.UUID]entity.DistanceResult {
	results := make(map[uuid.UUID]entity.DistanceResult, len(destinations))

	var misses []usecase.GeoRecord
	for _, record := range destinations {
		if record.Point == nil {
			continue
		}

		key := s.cacheKey(origin, *record.Point, useTraffic)
		if cached := s.cacheLookup(ctx, key); cached != nil {
			results[record.ID] = *cached

			continue
		}
		misses = append(misses, record)
	}

	for start := 0; start < len(misses); start += s.batchSize {
		end := start + s.batchSize
		if end > len(misses) {
			end = len(misses)
		}
		chunk := misses[start:end]

		points := make([]entity.GeoPoint, len(chunk))
		for i, record := range chunk {
			points[i] = *record.Point
		}

		legs, err := s.callProvider(ctx, origin, points, useTraffic)
		if err != nil || len(legs) != len(chunk) {
			if err == nil {
				err = errors.Errorf("provider returned %d elements for %d destinations", len(legs), len(chunk))
			}
			s.logger.Warn("distance matrix chunk failed, using great-circle fallback",
				slog.Int("chunkSize", len(chunk)),
				slog.Any("error", err),
			)
			for i, record := range chunk {
				result := s.fallbackResult(origin, points[i], err)
				results[record.ID] = result
				s.cacheStore(ctx, s.cacheKey(origin, points[i], useTraffic), result, useTraffic)
			}

			continue
		}

		for i, record := range chunk {
			result := s.legResult(origin, points[i], legs[i])
			results[record.ID] = result
			s.cacheStore(ctx, s.cacheKey(origin, points[i], useTraffic), result, useTraffic)
		}
	}

	return results
}

// FilterByRadius keeps the records within query.RadiusMiles of the origin by
// road distance. Phase 1 discards records without coordinates and records
// whose great-circle distance exceeds the buffered radius; phase 2 refines
// the survivors with batch road distances.
func (s *distanceService) FilterByRadius(ctx context.Context, records []usecase.GeoRecord, query entity.RadiusQuery) []usecase.RadiusMatch {
	buffered := query.RadiusMiles * s.preFilterMultiplier

	survivors := make([]usecase.GeoRecord, 0, len(records))
	for _, record := range records {
		if record.Point == nil {
			continue
		}
		if greatCircleMiles(query.Origin, *record.Point) > buffered {
			continue
		}
		survivors = append(survivors, record)
	}

	if len(survivors) == 0 {
		return []usecase.RadiusMatch{}
	}

	distances := s.BatchRoadDistanceAndTime(ctx, query.Origin, survivors, query.UseTraffic)

	matches := make([]usecase.RadiusMatch, 0, len(survivors))
	for _, record := range survivors {
		result, ok := distances[record.ID]
		if !ok || result.DistanceMiles > query.RadiusMiles {
			continue
		}
		matches = append(matches, usecase.RadiusMatch{ID: record.ID, Distance: result})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		di, dj := matches[i].Distance, matches[j].Distance
		if di.DistanceMiles != dj.DistanceMiles {
			return di.DistanceMiles < dj.DistanceMiles
		}

		return lessDuration(di.DurationMinutes, dj.DurationMinutes)
	})

	return matches
}

// lessDuration orders travel times ascending with unknown (non-positive)
// durations last.
func lessDuration(a, b float64) bool {
	if a <= 0 {
		return false
	}
	if b <= 0 {
		return true
	}

	return a < b
}

func (s *distanceService) callProvider(ctx context.Context, origin entity.GeoPoint, destinations []entity.GeoPoint, useTraffic bool) ([]service.RouteLeg, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	return s.provider.DistanceMatrix(ctx, origin, destinations, useTraffic)
}

// cacheKey builds the cache key from the travel mode, the coordinate pair
// rounded to 4 decimal places, and the traffic settings.
func (s *distanceService) cacheKey(origin, destination entity.GeoPoint, useTraffic bool) string {
	return fmt.Sprintf("%s:%.4f,%.4f->%.4f,%.4f:%t:%s",
		travelMode,
		origin.Latitude, origin.Longitude,
		destination.Latitude, destination.Longitude,
		useTraffic, s.trafficModel,
	)
}

func (s *distanceService) cacheLookup(ctx context.Context, key string) *entity.DistanceResult {
	if s.cache == nil {
		return nil
	}

	result, err := s.cache.GetDistance(ctx, key)
	if err != nil {
		// A broken cache is treated as a miss.
		s.logger.Debug("distance cache lookup failed", slog.String("key", key), slog.Any("error", err))

		return nil
	}

	return result
}

func (s *distanceService) cacheStore(ctx context.Context, key string, result entity.DistanceResult, useTraffic bool) {
	if s.cache == nil {
		return
	}

	ttl := s.resultTTL(result, useTraffic)
	if err := s.cache.SetDistance(ctx, key, &result, ttl); err != nil {
		s.logger.Debug("distance cache store failed", slog.String("key", key), slog.Any("error", err))
	}
}

// resultTTL picks the cache lifetime: short for traffic-aware successes,
// long for static successes, and short for fallbacks so a recovering
// provider is retried soon without hammering a failing one. The traffic TTL
// follows the query, not the response: a traffic-aware result stays short
// lived even when the provider omits the traffic duration.
func (s *distanceService) resultTTL(result entity.DistanceResult, useTraffic bool) time.Duration {
	if result.Status == entity.DistanceFallback {
		return s.fallbackTTL
	}
	if useTraffic {
		return s.trafficTTL
	}

	return s.successTTL
}

func (s *distanceService) legResult(origin, destination entity.GeoPoint, leg service.RouteLeg) entity.DistanceResult {
	if !leg.OK() {
		return s.fallbackResult(origin, destination, errors.Errorf("provider element status %q", leg.Status))
	}

	result := entity.DistanceResult{
		DistanceMiles:   float64(leg.DistanceMeters) / metersPerMile,
		DurationMinutes: float64(leg.DurationSeconds) / 60,
		Status:          entity.DistanceOK,
	}
	if leg.DurationInTrafficSeconds != nil {
		trafficMinutes := float64(*leg.DurationInTrafficSeconds) / 60
		result.DurationInTrafficMinutes = &trafficMinutes
	}

	return result
}

// fallbackResult substitutes the great-circle distance and an assumed
// average speed when the provider could not be used. The error is recorded
// for diagnostics but never raised to the caller.
func (s *distanceService) fallbackResult(origin, destination entity.GeoPoint, err error) entity.DistanceResult {
	distance := greatCircleMiles(origin, destination)

	detail := ""
	if err != nil {
		detail = err.Error()
	}

	return entity.DistanceResult{
		DistanceMiles:   distance,
		DurationMinutes: distance / s.fallbackSpeedMph * 60,
		Status:          entity.DistanceFallback,
		ErrorDetail:     detail,
	}
}
