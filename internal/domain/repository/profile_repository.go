package repository

import (
	"context"

	"jobsearch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when a candidate profile is not found.
var ErrProfileNotFound = errors.New("candidate profile not found")

// CandidateSearchCriteria describes the repository-level filters for
// candidate search. Only profiles visible to recruiters are returned.
type CandidateSearchCriteria struct {
	Skill    string // Substring match on catalogue skill names.
	Location string // Substring match on the free-text location field or city.
	Project  string // Substring match on the projects text.
}

// CandidateProfileRepository provides access to candidate profiles.
type CandidateProfileRepository interface {
	// UpsertProfile creates the profile on first write and replaces its
	// fields (including the skill set) on subsequent writes.
	UpsertProfile(ctx context.Context, profile *entity.CandidateProfile) error

	FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.CandidateProfile, error)

	SearchProfiles(ctx context.Context, criteria CandidateSearchCriteria) ([]*entity.CandidateProfile, error)
}
