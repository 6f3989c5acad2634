package repository

import (
	"context"

	"jobsearch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrFilterNotFound is returned when a saved filter is not found.
var ErrFilterNotFound = errors.New("saved filter not found")

// SavedFilterRepository provides access to recruiters' saved candidate filters.
type SavedFilterRepository interface {
	CreateFilter(ctx context.Context, filter *entity.SavedFilter) error

	FindFilterByID(ctx context.Context, id uuid.UUID) (*entity.SavedFilter, error)

	// FindFiltersByRecruiter returns the recruiter's filters, newest first.
	FindFiltersByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]*entity.SavedFilter, error)

	// FindNotifyEnabledFilters returns every filter with notify-on-match set,
	// across all recruiters. Read on each candidate-profile commit.
	FindNotifyEnabledFilters(ctx context.Context) ([]*entity.SavedFilter, error)

	DeleteFilter(ctx context.Context, id uuid.UUID) error
}
