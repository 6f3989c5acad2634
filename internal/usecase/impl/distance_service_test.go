package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"jobsearch/internal/domain/entity"
	"jobsearch/internal/domain/service"
	"jobsearch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRouteProvider struct {
	calls     [][]entity.GeoPoint
	matrixFn  func(origin entity.GeoPoint, destinations []entity.GeoPoint, useTraffic bool) ([]service.RouteLeg, error)
}

func (f *fakeRouteProvider) DistanceMatrix(_ context.Context, origin entity.GeoPoint, destinations []entity.GeoPoint, useTraffic bool) ([]service.RouteLeg, error) {
	f.calls = append(f.calls, destinations)
	if f.matrixFn != nil {
		return f.matrixFn(origin, destinations, useTraffic)
	}

	legs := make([]service.RouteLeg, len(destinations))
	for i := range destinations {
		legs[i] = service.RouteLeg{Status: service.RouteLegStatusOK, DistanceMeters: 3200, DurationSeconds: 480}
	}

	return legs, nil
}

type cacheEntry struct {
	result entity.DistanceResult
	ttl    time.Duration
}

type fakeDistanceCache struct {
	entries map[string]cacheEntry
	getErr  error
}

func newFakeDistanceCache() *fakeDistanceCache {
	return &fakeDistanceCache{entries: map[string]cacheEntry{}}
}

func (f *fakeDistanceCache) GetDistance(_ context.Context, key string) (*entity.DistanceResult, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	entry, ok := f.entries[key]
	if !ok {
		return nil, nil
	}
	result := entry.result

	return &result, nil
}

func (f *fakeDistanceCache) SetDistance(_ context.Context, key string, result *entity.DistanceResult, ttl time.Duration) error {
	f.entries[key] = cacheEntry{result: *result, ttl: ttl}

	return nil
}

func newTestDistanceService(provider service.RouteProvider, cache service.DistanceCache) usecase.GeoUsecase {
	return NewDistanceService(slog.New(slog.DiscardHandler), provider, cache, nil)
}

func TestGreatCircleMiles(t *testing.T) {
	t.Parallel()

	svc := newTestDistanceService(&fakeRouteProvider{}, newFakeDistanceCache())

	atlanta := entity.GeoPoint{Latitude: 33.7490, Longitude: -84.3880}
	boston := entity.GeoPoint{Latitude: 42.3601, Longitude: -71.0589}

	assert.Zero(t, svc.GreatCircleMiles(atlanta, atlanta))
	assert.InDelta(t, svc.GreatCircleMiles(atlanta, boston), svc.GreatCircleMiles(boston, atlanta), 1e-9)

	// One degree of latitude spans earthRadius * pi / 180 miles.
	a := entity.GeoPoint{Latitude: 40, Longitude: -74}
	b := entity.GeoPoint{Latitude: 41, Longitude: -74}
	assert.InDelta(t, 69.09, svc.GreatCircleMiles(a, b), 0.05)

	// Collinear points on one meridian: distances are additive.
	c := entity.GeoPoint{Latitude: 42, Longitude: -74}
	assert.InDelta(t,
		svc.GreatCircleMiles(a, c),
		svc.GreatCircleMiles(a, b)+svc.GreatCircleMiles(b, c),
		1e-6,
	)

	assert.InDelta(t, 936, svc.GreatCircleMiles(atlanta, boston), 15)
}

func TestRoadDistanceAndTime_ProviderSuccess(t *testing.T) {
	t.Parallel()

	provider := &fakeRouteProvider{}
	cache := newFakeDistanceCache()
	svc := newTestDistanceService(provider, cache)

	origin := entity.GeoPoint{Latitude: 40.7128, Longitude: -74.0060}
	dest := entity.GeoPoint{Latitude: 40.7306, Longitude: -73.9352}

	result := svc.RoadDistanceAndTime(context.Background(), origin, dest, false)

	assert.Equal(t, entity.DistanceOK, result.Status)
	assert.InDelta(t, 1.988, result.DistanceMiles, 0.001)
	assert.InDelta(t, 8.0, result.DurationMinutes, 1e-9)
	assert.Nil(t, result.DurationInTrafficMinutes)
	assert.Len(t, provider.calls, 1)

	// Second call is served from the cache.
	again := svc.RoadDistanceAndTime(context.Background(), origin, dest, false)
	assert.Equal(t, result, again)
	assert.Len(t, provider.calls, 1)
}

func TestRoadDistanceAndTime_TrafficTTL(t *testing.T) {
	t.Parallel()

	trafficSeconds := 600
	provider := &fakeRouteProvider{
		matrixFn: func(_ entity.GeoPoint, destinations []entity.GeoPoint, useTraffic bool) ([]service.RouteLeg, error) {
			require.True(t, useTraffic)
			legs := make([]service.RouteLeg, len(destinations))
			for i := range destinations {
				legs[i] = service.RouteLeg{
					Status:                   service.RouteLegStatusOK,
					DistanceMeters:           3200,
					DurationSeconds:          480,
					DurationInTrafficSeconds: &trafficSeconds,
				}
			}

			return legs, nil
		},
	}
	cache := newFakeDistanceCache()
	svc := newTestDistanceService(provider, cache)

	origin := entity.GeoPoint{Latitude: 40.7128, Longitude: -74.0060}
	dest := entity.GeoPoint{Latitude: 40.7306, Longitude: -73.9352}

	result := svc.RoadDistanceAndTime(context.Background(), origin, dest, true)

	require.NotNil(t, result.DurationInTrafficMinutes)
	assert.InDelta(t, 10.0, *result.DurationInTrafficMinutes, 1e-9)

	require.Len(t, cache.entries, 1)
	for _, entry := range cache.entries {
		assert.Equal(t, defaultTrafficTTL, entry.ttl)
	}
}

func TestRoadDistanceAndTime_TrafficTTLWhenProviderOmitsTrafficDuration(t *testing.T) {
	t.Parallel()

	// Default fake legs carry no duration_in_traffic; the TTL still follows
	// the traffic-aware query.
	provider := &fakeRouteProvider{}
	cache := newFakeDistanceCache()
	svc := newTestDistanceService(provider, cache)

	origin := entity.GeoPoint{Latitude: 40.7128, Longitude: -74.0060}
	dest := entity.GeoPoint{Latitude: 40.7306, Longitude: -73.9352}

	result := svc.RoadDistanceAndTime(context.Background(), origin, dest, true)

	assert.Equal(t, entity.DistanceOK, result.Status)
	assert.Nil(t, result.DurationInTrafficMinutes)

	require.Len(t, cache.entries, 1)
	for _, entry := range cache.entries {
		assert.Equal(t, defaultTrafficTTL, entry.ttl)
	}
}

func TestRoadDistanceAndTime_ProviderDownFallsBack(t *testing.T) {
	t.Parallel()

	provider := &fakeRouteProvider{
		matrixFn: func(entity.GeoPoint, []entity.GeoPoint, bool) ([]service.RouteLeg, error) {
			return nil, errors.New("connection refused")
		},
	}
	cache := newFakeDistanceCache()
	svc := newTestDistanceService(provider, cache)

	origin := entity.GeoPoint{Latitude: 40, Longitude: -74}
	dest := entity.GeoPoint{Latitude: 41, Longitude: -74}

	result := svc.RoadDistanceAndTime(context.Background(), origin, dest, false)

	assert.Equal(t, entity.DistanceFallback, result.Status)
	assert.InDelta(t, 69.09, result.DistanceMiles, 0.05)
	// 30 mph assumed speed.
	assert.InDelta(t, result.DistanceMiles/30*60, result.DurationMinutes, 1e-9)
	assert.Contains(t, result.ErrorDetail, "connection refused")

	// Fallbacks are cached with the short TTL.
	require.Len(t, cache.entries, 1)
	for _, entry := range cache.entries {
		assert.Equal(t, defaultFallbackTTL, entry.ttl)
	}
}

func TestBatchRoadDistanceAndTime_ChunksAtProviderLimit(t *testing.T) {
	t.Parallel()

	provider := &fakeRouteProvider{}
	svc := newTestDistanceService(provider, newFakeDistanceCache())

	origin := entity.GeoPoint{Latitude: 40, Longitude: -74}
	records := make([]usecase.GeoRecord, 0, 60)
	for i := 0; i < 60; i++ {
		point := entity.GeoPoint{Latitude: 40 + float64(i)*0.001, Longitude: -74}
		records = append(records, usecase.GeoRecord{ID: uuid.New(), Point: &point})
	}

	results := svc.BatchRoadDistanceAndTime(context.Background(), origin, records, false)

	assert.Len(t, results, 60)
	require.Len(t, provider.calls, 3)
	assert.Len(t, provider.calls[0], 25)
	assert.Len(t, provider.calls[1], 25)
	assert.Len(t, provider.calls[2], 10)
}

func TestBatchRoadDistanceAndTime_FailedChunkDegradesItsMembersOnly(t *testing.T) {
	t.Parallel()

	var call int
	provider := &fakeRouteProvider{
		matrixFn: func(_ entity.GeoPoint, destinations []entity.GeoPoint, _ bool) ([]service.RouteLeg, error) {
			call++
			if call == 2 {
				return nil, errors.New("timeout")
			}
			legs := make([]service.RouteLeg, len(destinations))
			for i := range destinations {
				legs[i] = service.RouteLeg{Status: service.RouteLegStatusOK, DistanceMeters: 1609, DurationSeconds: 120}
			}

			return legs, nil
		},
	}
	svc := newTestDistanceService(provider, newFakeDistanceCache())

	origin := entity.GeoPoint{Latitude: 40, Longitude: -74}
	records := make([]usecase.GeoRecord, 0, 30)
	for i := 0; i < 30; i++ {
		point := entity.GeoPoint{Latitude: 40 + float64(i)*0.001, Longitude: -74}
		records = append(records, usecase.GeoRecord{ID: uuid.New(), Point: &point})
	}

	results := svc.BatchRoadDistanceAndTime(context.Background(), origin, records, false)

	require.Len(t, results, 30)
	var ok, fallback int
	for _, result := range results {
		switch result.Status {
		case entity.DistanceOK:
			ok++
		case entity.DistanceFallback:
			fallback++
		}
	}
	assert.Equal(t, 25, ok)
	assert.Equal(t, 5, fallback)
}

func TestBatchRoadDistanceAndTime_NonOKElementFallsBack(t *testing.T) {
	t.Parallel()

	provider := &fakeRouteProvider{
		matrixFn: func(_ entity.GeoPoint, destinations []entity.GeoPoint, _ bool) ([]service.RouteLeg, error) {
			legs := make([]service.RouteLeg, len(destinations))
			for i := range destinations {
				legs[i] = service.RouteLeg{Status: service.RouteLegStatusOK, DistanceMeters: 1609, DurationSeconds: 120}
			}
			legs[0] = service.RouteLeg{Status: "ZERO_RESULTS"}

			return legs, nil
		},
	}
	svc := newTestDistanceService(provider, newFakeDistanceCache())

	origin := entity.GeoPoint{Latitude: 40, Longitude: -74}
	unreachable := entity.GeoPoint{Latitude: 40.001, Longitude: -74}
	reachable := entity.GeoPoint{Latitude: 40.002, Longitude: -74}
	unreachableID := uuid.New()
	reachableID := uuid.New()

	results := svc.BatchRoadDistanceAndTime(context.Background(), origin, []usecase.GeoRecord{
		{ID: unreachableID, Point: &unreachable},
		{ID: reachableID, Point: &reachable},
	}, false)

	assert.Equal(t, entity.DistanceFallback, results[unreachableID].Status)
	assert.Contains(t, results[unreachableID].ErrorDetail, "ZERO_RESULTS")
	assert.Equal(t, entity.DistanceOK, results[reachableID].Status)
}

func TestBatchRoadDistanceAndTime_SkipsRecordsWithoutCoordinates(t *testing.T) {
	t.Parallel()

	provider := &fakeRouteProvider{}
	svc := newTestDistanceService(provider, newFakeDistanceCache())

	origin := entity.GeoPoint{Latitude: 40, Longitude: -74}
	point := entity.GeoPoint{Latitude: 40.001, Longitude: -74}
	located := uuid.New()

	results := svc.BatchRoadDistanceAndTime(context.Background(), origin, []usecase.GeoRecord{
		{ID: uuid.New(), Point: nil},
		{ID: located, Point: &point},
	}, false)

	assert.Len(t, results, 1)
	assert.Contains(t, results, located)
}

func TestFilterByRadius_TwoPhase(t *testing.T) {
	t.Parallel()

	provider := &fakeRouteProvider{}
	svc := newTestDistanceService(provider, newFakeDistanceCache())

	origin := entity.GeoPoint{Latitude: 40.7128, Longitude: -74.0060}
	near := entity.GeoPoint{Latitude: 40.7306, Longitude: -73.9352}
	// Roughly 200 miles out, eliminated by the great-circle pre-filter.
	far := entity.GeoPoint{Latitude: 43.6, Longitude: -74.0060}

	nearID := uuid.New()
	records := []usecase.GeoRecord{
		{ID: nearID, Point: &near},
		{ID: uuid.New(), Point: &far},
		{ID: uuid.New(), Point: nil},
	}

	matches := svc.FilterByRadius(context.Background(), records, entity.RadiusQuery{
		Origin:      origin,
		RadiusMiles: 5,
	})

	require.Len(t, matches, 1)
	assert.Equal(t, nearID, matches[0].ID)
	assert.InDelta(t, 1.988, matches[0].Distance.DistanceMiles, 0.001)
	assert.InDelta(t, 8.0, matches[0].Distance.DurationMinutes, 1e-9)

	// The pre-filter kept the far record off the provider call entirely.
	require.Len(t, provider.calls, 1)
	assert.Len(t, provider.calls[0], 1)
}

func TestFilterByRadius_ProviderDownStillBoundedWithFallback(t *testing.T) {
	t.Parallel()

	provider := &fakeRouteProvider{
		matrixFn: func(entity.GeoPoint, []entity.GeoPoint, bool) ([]service.RouteLeg, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := newTestDistanceService(provider, newFakeDistanceCache())

	origin := entity.GeoPoint{Latitude: 40, Longitude: -74}
	// ~1.4 miles out: survives.
	near := entity.GeoPoint{Latitude: 40.02, Longitude: -74}
	// ~6.2 miles out: inside the buffered pre-filter, excluded by the
	// fallback distance exceeding the radius.
	mid := entity.GeoPoint{Latitude: 40.09, Longitude: -74}
	// ~13.8 miles out: dropped by the pre-filter.
	far := entity.GeoPoint{Latitude: 40.2, Longitude: -74}

	nearID := uuid.New()
	matches := svc.FilterByRadius(context.Background(), []usecase.GeoRecord{
		{ID: nearID, Point: &near},
		{ID: uuid.New(), Point: &mid},
		{ID: uuid.New(), Point: &far},
	}, entity.RadiusQuery{Origin: origin, RadiusMiles: 5})

	require.Len(t, matches, 1)
	assert.Equal(t, nearID, matches[0].ID)
	assert.Equal(t, entity.DistanceFallback, matches[0].Distance.Status)
	assert.LessOrEqual(t, matches[0].Distance.DistanceMiles, 5.0)
	assert.Positive(t, matches[0].Distance.DurationMinutes)
}

func TestFilterByRadius_RoadDistanceBeyondRadiusExcluded(t *testing.T) {
	t.Parallel()

	provider := &fakeRouteProvider{
		matrixFn: func(_ entity.GeoPoint, destinations []entity.GeoPoint, _ bool) ([]service.RouteLeg, error) {
			legs := make([]service.RouteLeg, len(destinations))
			for i := range destinations {
				// 10 road miles for every destination.
				legs[i] = service.RouteLeg{Status: service.RouteLegStatusOK, DistanceMeters: 16094, DurationSeconds: 1200}
			}

			return legs, nil
		},
	}
	svc := newTestDistanceService(provider, newFakeDistanceCache())

	origin := entity.GeoPoint{Latitude: 40, Longitude: -74}
	point := entity.GeoPoint{Latitude: 40.05, Longitude: -74}

	matches := svc.FilterByRadius(context.Background(), []usecase.GeoRecord{
		{ID: uuid.New(), Point: &point},
	}, entity.RadiusQuery{Origin: origin, RadiusMiles: 5})

	assert.Empty(t, matches)
}

func TestFilterByRadius_OrdersByDistanceThenDuration(t *testing.T) {
	t.Parallel()

	firstID := uuid.New()
	secondID := uuid.New()
	thirdID := uuid.New()
	legByLatitude := map[float64]service.RouteLeg{
		40.001: {Status: service.RouteLegStatusOK, DistanceMeters: 3218, DurationSeconds: 300},
		40.002: {Status: service.RouteLegStatusOK, DistanceMeters: 1609, DurationSeconds: 600},
		40.003: {Status: service.RouteLegStatusOK, DistanceMeters: 3218, DurationSeconds: 120},
	}
	provider := &fakeRouteProvider{
		matrixFn: func(_ entity.GeoPoint, destinations []entity.GeoPoint, _ bool) ([]service.RouteLeg, error) {
			legs := make([]service.RouteLeg, len(destinations))
			for i, dest := range destinations {
				legs[i] = legByLatitude[dest.Latitude]
			}

			return legs, nil
		},
	}
	svc := newTestDistanceService(provider, newFakeDistanceCache())

	origin := entity.GeoPoint{Latitude: 40, Longitude: -74}
	pointA := entity.GeoPoint{Latitude: 40.001, Longitude: -74}
	pointB := entity.GeoPoint{Latitude: 40.002, Longitude: -74}
	pointC := entity.GeoPoint{Latitude: 40.003, Longitude: -74}

	matches := svc.FilterByRadius(context.Background(), []usecase.GeoRecord{
		{ID: firstID, Point: &pointA},
		{ID: secondID, Point: &pointB},
		{ID: thirdID, Point: &pointC},
	}, entity.RadiusQuery{Origin: origin, RadiusMiles: 5})

	require.Len(t, matches, 3)
	// Closest first; equal distances ordered by travel time.
	assert.Equal(t, secondID, matches[0].ID)
	assert.Equal(t, thirdID, matches[1].ID)
	assert.Equal(t, firstID, matches[2].ID)
}

func TestFilterByRadius_UnknownDurationSortsLast(t *testing.T) {
	t.Parallel()

	assert.True(t, lessDuration(5, 10))
	assert.False(t, lessDuration(10, 5))
	assert.True(t, lessDuration(5, 0))
	assert.False(t, lessDuration(0, 5))
	assert.False(t, lessDuration(0, 0))
}

func TestCacheLookupErrorTreatedAsMiss(t *testing.T) {
	t.Parallel()

	provider := &fakeRouteProvider{}
	cache := newFakeDistanceCache()
	cache.getErr = errors.New("redis down")
	svc := newTestDistanceService(provider, cache)

	origin := entity.GeoPoint{Latitude: 40.7128, Longitude: -74.0060}
	dest := entity.GeoPoint{Latitude: 40.7306, Longitude: -73.9352}

	result := svc.RoadDistanceAndTime(context.Background(), origin, dest, false)

	assert.Equal(t, entity.DistanceOK, result.Status)
	assert.Len(t, provider.calls, 1)
}
