package usecase

import (
	"context"

	"jobsearch/internal/domain/entity"
)

// MatchUsecase is the event handler invoked after a candidate profile has
// been durably committed. It replaces implicit framework signal dispatch:
// the write path calls it directly once the write is visible.
type MatchUsecase interface {
	// EvaluateFilters checks the committed profile against every
	// notify-enabled saved filter and creates a notification for each new
	// match. Repeated invocations for an unchanged profile are idempotent:
	// at most one notification exists per (recruiter, filter, candidate).
	// Returns the number of notifications created.
	EvaluateFilters(ctx context.Context, profile *entity.CandidateProfile) (int, error)
}
