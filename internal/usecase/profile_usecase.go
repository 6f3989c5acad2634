package usecase

import (
	"context"

	"jobsearch/internal/domain/entity"

	"github.com/google/uuid"
)

// UpsertCandidateProfileInput carries a candidate's profile fields. Skills
// are referenced by catalogue name; unknown names are dropped.
type UpsertCandidateProfileInput struct {
	Username       string   `json:"username" validate:"required"`
	Headline       string   `json:"headline"`
	SkillNames     []string `json:"skills,omitempty"`
	Education      string   `json:"education"`
	WorkExperience string   `json:"work_experience"`
	Links          string   `json:"links"`
	Privacy        string   `json:"privacy"`
	City           string   `json:"city"`
	StateRegion    string   `json:"state_region"`
	Country        string   `json:"country"`
	Location       string   `json:"location"`
	Projects       string   `json:"projects"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
}

// ProfileUsecase manages candidate profiles. Upserts trigger saved-filter
// evaluation after the write commits.
type ProfileUsecase interface {
	UpsertCandidateProfile(ctx context.Context, userID uuid.UUID, input *UpsertCandidateProfileInput) (*entity.CandidateProfile, error)
	GetCandidateProfile(ctx context.Context, userID uuid.UUID) (*entity.CandidateProfile, error)
}
