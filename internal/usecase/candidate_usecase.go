package usecase

import (
	"context"

	"jobsearch/internal/domain/entity"
)

// CandidateSearchInput carries the recruiter's candidate search filters.
type CandidateSearchInput struct {
	Skill    string
	Location string
	Project  string
	Radius   *RadiusInput
}

// CandidateSearchResult is a candidate profile with its computed distance
// when the search was radius-bounded.
type CandidateSearchResult struct {
	Profile  *entity.CandidateProfile `json:"profile"`
	Distance *entity.DistanceResult   `json:"distance,omitempty"`
}

// CandidateUsecase exposes recruiter-facing candidate search. Only profiles
// whose privacy setting permits recruiter visibility are returned.
type CandidateUsecase interface {
	SearchCandidates(ctx context.Context, input *CandidateSearchInput) ([]*CandidateSearchResult, error)
}
