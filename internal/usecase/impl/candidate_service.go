package impl

import (
	"context"
	"log/slog"

	"jobsearch/internal/domain/entity"
	domainerrors "jobsearch/internal/domain/errors"
	"jobsearch/internal/domain/repository"
	"jobsearch/internal/usecase"

	"github.com/google/uuid"
)

type candidateService struct {
	logger      *slog.Logger
	profileRepo repository.CandidateProfileRepository
	geo         usecase.GeoUsecase
}

// NewCandidateService creates the recruiter-facing candidate search service.
func NewCandidateService(
	logger *slog.Logger,
	profileRepo repository.CandidateProfileRepository,
	geo usecase.GeoUsecase,
) usecase.CandidateUsecase {
	return &candidateService{
		logger:      logger,
		profileRepo: profileRepo,
		geo:         geo,
	}
}

// SearchCandidates applies the text filters at the repository, drops profiles
// the recruiter may not see, then refines by geo radius when one was given.
func (s *candidateService) SearchCandidates(ctx context.Context, input *usecase.CandidateSearchInput) ([]*usecase.CandidateSearchResult, error) {
	profiles, err := s.profileRepo.SearchProfiles(ctx, repository.CandidateSearchCriteria{
		Skill:    input.Skill,
		Location: input.Location,
		Project:  input.Project,
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to search candidates")
	}

	visible := make([]*entity.CandidateProfile, 0, len(profiles))
	for _, profile := range profiles {
		if profile.VisibleToRecruiters() {
			visible = append(visible, profile)
		}
	}

	if input.Radius == nil {
		results := make([]*usecase.CandidateSearchResult, 0, len(visible))
		for _, profile := range visible {
			results = append(results, &usecase.CandidateSearchResult{Profile: profile})
		}

		return results, nil
	}

	byID := make(map[uuid.UUID]*entity.CandidateProfile, len(visible))
	records := make([]usecase.GeoRecord, 0, len(visible))
	for _, profile := range visible {
		byID[profile.ID] = profile
		records = append(records, usecase.GeoRecord{ID: profile.ID, Point: profile.GeoPoint()})
	}

	matches := s.geo.FilterByRadius(ctx, records, entity.RadiusQuery{
		Origin:      input.Radius.Origin(),
		RadiusMiles: input.Radius.RadiusMiles,
		UseTraffic:  input.Radius.UseTraffic,
	})

	results := make([]*usecase.CandidateSearchResult, 0, len(matches))
	for _, match := range matches {
		distance := match.Distance
		results = append(results, &usecase.CandidateSearchResult{
			Profile:  byID[match.ID],
			Distance: &distance,
		})
	}

	return results, nil
}
