package impl

import (
	"context"
	"log/slog"
	"testing"

	"jobsearch/internal/domain/entity"
	"jobsearch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCandidate(t *testing.T, repo *memProfileRepo, username string, privacy entity.Privacy, lat, lon *float64, skills ...string) *entity.CandidateProfile {
	t.Helper()

	profile := &entity.CandidateProfile{
		UserID:    uuid.New(),
		Username:  username,
		Privacy:   privacy,
		City:      "New York",
		Country:   "USA",
		Latitude:  lat,
		Longitude: lon,
	}
	for _, name := range skills {
		profile.Skills = append(profile.Skills, entity.Skill{ID: uuid.New(), Name: name})
	}
	require.NoError(t, repo.UpsertProfile(context.Background(), profile))

	return profile
}

func TestSearchCandidates_PrivacyFiltering(t *testing.T) {
	t.Parallel()

	profileRepo := &memProfileRepo{}
	geo := newTestDistanceService(&fakeRouteProvider{}, newFakeDistanceCache())
	svc := NewCandidateService(slog.New(slog.DiscardHandler), profileRepo, geo)

	seedCandidate(t, profileRepo, "public_pat", entity.PrivacyPublic, nil, nil, "Go")
	seedCandidate(t, profileRepo, "employer_erin", entity.PrivacyEmployersOnly, nil, nil, "Go")
	seedCandidate(t, profileRepo, "private_quinn", entity.PrivacyPrivate, nil, nil, "Go")

	results, err := svc.SearchCandidates(context.Background(), &usecase.CandidateSearchInput{Skill: "Go"})
	require.NoError(t, err)

	usernames := make([]string, 0, len(results))
	for _, result := range results {
		usernames = append(usernames, result.Profile.Username)
		assert.Nil(t, result.Distance)
	}
	assert.ElementsMatch(t, []string{"public_pat", "employer_erin"}, usernames)
}

func TestSearchCandidates_TextCriteria(t *testing.T) {
	t.Parallel()

	profileRepo := &memProfileRepo{}
	geo := newTestDistanceService(&fakeRouteProvider{}, newFakeDistanceCache())
	svc := NewCandidateService(slog.New(slog.DiscardHandler), profileRepo, geo)

	match := seedCandidate(t, profileRepo, "gopher_jane", entity.PrivacyPublic, nil, nil, "Go")
	match.Projects = "Built a distributed job scheduler"
	seedCandidate(t, profileRepo, "rustacean_rob", entity.PrivacyPublic, nil, nil, "Rust")

	results, err := svc.SearchCandidates(context.Background(), &usecase.CandidateSearchInput{
		Skill:   "Go",
		Project: "scheduler",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "gopher_jane", results[0].Profile.Username)
}

func TestSearchCandidates_RadiusOrdersByDistance(t *testing.T) {
	t.Parallel()

	profileRepo := &memProfileRepo{}
	geo := newTestDistanceService(&fakeRouteProvider{}, newFakeDistanceCache())
	svc := NewCandidateService(slog.New(slog.DiscardHandler), profileRepo, geo)

	nearLat, nearLon := 40.7306, -73.9352
	farLat, farLon := 43.6, -74.0060

	near := seedCandidate(t, profileRepo, "nearby_nora", entity.PrivacyPublic, &nearLat, &nearLon, "Go")
	seedCandidate(t, profileRepo, "upstate_uma", entity.PrivacyPublic, &farLat, &farLon, "Go")
	seedCandidate(t, profileRepo, "nowhere_ned", entity.PrivacyPublic, nil, nil, "Go")

	results, err := svc.SearchCandidates(context.Background(), &usecase.CandidateSearchInput{
		Skill: "Go",
		Radius: &usecase.RadiusInput{
			Latitude: 40.7128, Longitude: -74.0060, RadiusMiles: 5,
		},
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, near.UserID, results[0].Profile.UserID)
	require.NotNil(t, results[0].Distance)
	assert.Equal(t, entity.DistanceOK, results[0].Distance.Status)
}
