package impl

import (
	"context"
	"log/slog"
	"testing"

	"jobsearch/internal/domain/entity"
	domainerrors "jobsearch/internal/domain/errors"
	"jobsearch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobServiceFixture() (usecase.JobUsecase, *memJobRepo, *memSkillRepo) {
	jobRepo := &memJobRepo{}
	skillRepo := &memSkillRepo{}
	geo := newTestDistanceService(&fakeRouteProvider{}, newFakeDistanceCache())
	svc := NewJobService(slog.New(slog.DiscardHandler), jobRepo, skillRepo, geo)

	return svc, jobRepo, skillRepo
}

func TestCreateJob_Defaults(t *testing.T) {
	t.Parallel()

	svc, _, _ := newJobServiceFixture()

	job, err := svc.CreateJob(context.Background(), &usecase.CreateJobInput{
		Name:    "Backend Engineer",
		Company: "Acme",
	})

	require.NoError(t, err)
	assert.Equal(t, "Remote", job.Location)
	assert.Equal(t, entity.PayAnnual, job.PayType)
	assert.NotEqual(t, uuid.Nil, job.ID)
}

func TestCreateJob_InvalidPayType(t *testing.T) {
	t.Parallel()

	svc, jobRepo, _ := newJobServiceFixture()

	_, err := svc.CreateJob(context.Background(), &usecase.CreateJobInput{
		Name:    "Backend Engineer",
		Company: "Acme",
		PayType: "weekly",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPayType)
	assert.Empty(t, jobRepo.jobs)
}

func TestCreateJob_ResolvesSkills(t *testing.T) {
	t.Parallel()

	svc, _, skillRepo := newJobServiceFixture()

	ctx := context.Background()
	require.NoError(t, skillRepo.UpsertSkills(ctx, []*entity.Skill{
		{Name: "Go"}, {Name: "PostgreSQL"},
	}))

	job, err := svc.CreateJob(ctx, &usecase.CreateJobInput{
		Name:            "Backend Engineer",
		Company:         "Acme",
		RequiredSkills:  []string{"Go", "COBOL"},
		PreferredSkills: []string{"PostgreSQL"},
	})

	require.NoError(t, err)
	require.Len(t, job.RequiredSkills, 1)
	assert.Equal(t, "Go", job.RequiredSkills[0].Name)
	require.Len(t, job.PreferredSkills, 1)
	assert.Equal(t, "PostgreSQL", job.PreferredSkills[0].Name)
}

func TestGetJob(t *testing.T) {
	t.Parallel()

	svc, _, _ := newJobServiceFixture()

	_, err := svc.GetJob(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrJobNotFound)

	created, err := svc.CreateJob(context.Background(), &usecase.CreateJobInput{
		Name:    "Backend Engineer",
		Company: "Acme",
	})
	require.NoError(t, err)

	found, err := svc.GetJob(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestSearchJobs_TextFiltersOnly(t *testing.T) {
	t.Parallel()

	svc, _, _ := newJobServiceFixture()

	ctx := context.Background()
	_, err := svc.CreateJob(ctx, &usecase.CreateJobInput{Name: "Go Developer", Company: "Acme", PayMin: 120000, PayMax: 150000})
	require.NoError(t, err)
	_, err = svc.CreateJob(ctx, &usecase.CreateJobInput{Name: "Data Analyst", Company: "Globex", PayMin: 70000, PayMax: 90000})
	require.NoError(t, err)

	results, err := svc.SearchJobs(ctx, &usecase.JobSearchInput{Search: "go"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Go Developer", results[0].Job.Name)
	assert.Nil(t, results[0].Distance)

	minSalary := 100000.0
	results, err = svc.SearchJobs(ctx, &usecase.JobSearchInput{MinSalary: &minSalary})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Go Developer", results[0].Job.Name)
}

func TestSearchJobs_InvalidPayTypeRejected(t *testing.T) {
	t.Parallel()

	svc, _, _ := newJobServiceFixture()

	_, err := svc.SearchJobs(context.Background(), &usecase.JobSearchInput{PayType: "weekly"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPayType)
}

func TestSearchJobs_RadiusAttachesDistanceAndExcludesUnlocated(t *testing.T) {
	t.Parallel()

	svc, _, _ := newJobServiceFixture()

	ctx := context.Background()
	nearLat, nearLon := 40.7306, -73.9352
	farLat, farLon := 43.6, -74.0060

	near, err := svc.CreateJob(ctx, &usecase.CreateJobInput{
		Name: "Go Developer", Company: "Acme",
		Latitude: &nearLat, Longitude: &nearLon,
	})
	require.NoError(t, err)
	_, err = svc.CreateJob(ctx, &usecase.CreateJobInput{
		Name: "Go Developer Upstate", Company: "Acme",
		Latitude: &farLat, Longitude: &farLon,
	})
	require.NoError(t, err)
	_, err = svc.CreateJob(ctx, &usecase.CreateJobInput{
		Name: "Go Developer Remote", Company: "Acme",
	})
	require.NoError(t, err)

	results, err := svc.SearchJobs(ctx, &usecase.JobSearchInput{
		Search: "go",
		Radius: &usecase.RadiusInput{Latitude: 40.7128, Longitude: -74.0060, RadiusMiles: 5},
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, near.ID, results[0].Job.ID)
	require.NotNil(t, results[0].Distance)
	assert.Equal(t, entity.DistanceOK, results[0].Distance.Status)
}
