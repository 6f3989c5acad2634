package impl

import (
	"context"
	"log/slog"

	"jobsearch/internal/domain/entity"
	domainerrors "jobsearch/internal/domain/errors"
	"jobsearch/internal/domain/repository"
	"jobsearch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// defaultJobLocation labels postings created without a location.
const defaultJobLocation = "Remote"

type jobService struct {
	logger    *slog.Logger
	jobRepo   repository.JobRepository
	skillRepo repository.SkillRepository
	geo       usecase.GeoUsecase
}

// NewJobService creates the job catalogue service.
func NewJobService(
	logger *slog.Logger,
	jobRepo repository.JobRepository,
	skillRepo repository.SkillRepository,
	geo usecase.GeoUsecase,
) usecase.JobUsecase {
	return &jobService{
		logger:    logger,
		jobRepo:   jobRepo,
		skillRepo: skillRepo,
		geo:       geo,
	}
}

func (s *jobService) CreateJob(ctx context.Context, input *usecase.CreateJobInput) (*entity.Job, error) {
	payType := entity.PayType(input.PayType)
	if input.PayType == "" {
		payType = entity.PayAnnual
	}
	if !payType.IsValid() {
		return nil, domainerrors.ErrInvalidPayType
	}

	location := input.Location
	if location == "" {
		location = defaultJobLocation
	}

	required, err := s.resolveSkills(ctx, input.RequiredSkills)
	if err != nil {
		return nil, err
	}
	preferred, err := s.resolveSkills(ctx, input.PreferredSkills)
	if err != nil {
		return nil, err
	}

	job := &entity.Job{
		Name:            input.Name,
		Company:         input.Company,
		Location:        location,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		PayMin:          input.PayMin,
		PayMax:          input.PayMax,
		PayType:         payType,
		Description:     input.Description,
		RequiredSkills:  required,
		PreferredSkills: preferred,
	}

	if err := s.jobRepo.CreateJob(ctx, job); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create job")
	}

	return job, nil
}

func (s *jobService) GetJob(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	job, err := s.jobRepo.FindJobByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrJobNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load job")
	}

	return job, nil
}

// SearchJobs applies the repository filters, then the optional geo-radius
// refinement. Without a radius the repository order is preserved and no
// distance is attached.
func (s *jobService) SearchJobs(ctx context.Context, input *usecase.JobSearchInput) ([]*usecase.JobSearchResult, error) {
	if input.PayType != "" && !entity.PayType(input.PayType).IsValid() {
		return nil, domainerrors.ErrInvalidPayType
	}

	jobs, err := s.jobRepo.SearchJobs(ctx, repository.JobSearchCriteria{
		Search:     input.Search,
		PayType:    input.PayType,
		MinSalary:  input.MinSalary,
		MaxSalary:  input.MaxSalary,
		Location:   input.Location,
		SkillNames: input.SkillNames,
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to search jobs")
	}

	if input.Radius == nil {
		results := make([]*usecase.JobSearchResult, 0, len(jobs))
		for _, job := range jobs {
			results = append(results, &usecase.JobSearchResult{Job: job})
		}

		return results, nil
	}

	byID := make(map[uuid.UUID]*entity.Job, len(jobs))
	records := make([]usecase.GeoRecord, 0, len(jobs))
	for _, job := range jobs {
		byID[job.ID] = job
		records = append(records, usecase.GeoRecord{ID: job.ID, Point: job.GeoPoint()})
	}

	matches := s.geo.FilterByRadius(ctx, records, entity.RadiusQuery{
		Origin:      input.Radius.Origin(),
		RadiusMiles: input.Radius.RadiusMiles,
		UseTraffic:  input.Radius.UseTraffic,
	})

	results := make([]*usecase.JobSearchResult, 0, len(matches))
	for _, match := range matches {
		distance := match.Distance
		results = append(results, &usecase.JobSearchResult{
			Job:      byID[match.ID],
			Distance: &distance,
		})
	}

	return results, nil
}

// resolveSkills maps skill names to catalogue entries, dropping unknown names.
func (s *jobService) resolveSkills(ctx context.Context, names []string) ([]entity.Skill, error) {
	if len(names) == 0 {
		return nil, nil
	}

	found, err := s.skillRepo.FindSkillsByNames(ctx, names)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to resolve skills")
	}

	skills := make([]entity.Skill, 0, len(found))
	for _, skill := range found {
		skills = append(skills, *skill)
	}

	return skills, nil
}
