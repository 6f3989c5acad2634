package impl

import (
	"context"
	"fmt"
	"log/slog"

	"jobsearch/internal/domain/entity"
	"jobsearch/internal/domain/repository"
	"jobsearch/internal/usecase"

	"github.com/pkg/errors"
)

type matchService struct {
	logger           *slog.Logger
	filterRepo       repository.SavedFilterRepository
	notificationRepo repository.FilterNotificationRepository
}

// NewMatchService creates the saved-filter match evaluator.
func NewMatchService(
	logger *slog.Logger,
	filterRepo repository.SavedFilterRepository,
	notificationRepo repository.FilterNotificationRepository,
) usecase.MatchUsecase {
	return &matchService{
		logger:           logger,
		filterRepo:       filterRepo,
		notificationRepo: notificationRepo,
	}
}

// EvaluateFilters runs the committed profile against every notify-enabled
// filter. A failure on one filter is logged and skipped so the remaining
// filters still get evaluated; only the initial filter load can fail the
// whole pass.
func (s *matchService) EvaluateFilters(ctx context.Context, profile *entity.CandidateProfile) (int, error) {
	if profile == nil {
		return 0, nil
	}

	filters, err := s.filterRepo.FindNotifyEnabledFilters(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "load notify-enabled filters")
	}

	created := 0
	for _, filter := range filters {
		if !filter.MatchesProfile(profile) {
			continue
		}

		ok, err := s.notifyMatch(ctx, filter, profile)
		if err != nil {
			s.logger.Error("filter match notification failed",
				slog.String("filterID", filter.ID.String()),
				slog.String("candidateID", profile.UserID.String()),
				slog.Any("error", err),
			)

			continue
		}
		if ok {
			created++
		}
	}

	return created, nil
}

// notifyMatch creates the notification unless one already exists for the
// (recruiter, filter, candidate) triple. The existence check is a fast path;
// the unique constraint on the store closes the race between concurrent
// evaluations, surfacing as ErrDuplicateNotification.
func (s *matchService) notifyMatch(ctx context.Context, filter *entity.SavedFilter, profile *entity.CandidateProfile) (bool, error) {
	exists, err := s.notificationRepo.NotificationExists(ctx, filter.RecruiterID, filter.ID, profile.UserID)
	if err != nil {
		return false, errors.Wrap(err, "check existing notification")
	}
	if exists {
		return false, nil
	}

	notification := &entity.FilterNotification{
		RecruiterID: filter.RecruiterID,
		FilterID:    filter.ID,
		CandidateID: profile.UserID,
		Type:        entity.NotificationTypeNewMatch,
		Message:     fmt.Sprintf("New candidate matches your filter: %s", profile.Username),
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		if errors.Is(err, repository.ErrDuplicateNotification) {
			// Another evaluation got there first.
			return false, nil
		}
		if errors.Is(err, repository.ErrFilterNotFound) {
			// The filter was deleted between evaluation and insert.
			return false, nil
		}

		return false, errors.Wrap(err, "create notification")
	}

	return true, nil
}
