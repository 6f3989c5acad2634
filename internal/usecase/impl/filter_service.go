package impl

import (
	"context"
	"log/slog"

	"jobsearch/config"
	"jobsearch/internal/domain/entity"
	domainerrors "jobsearch/internal/domain/errors"
	"jobsearch/internal/domain/repository"
	"jobsearch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultNotificationFeedLimit = 20

type filterService struct {
	logger           *slog.Logger
	filterRepo       repository.SavedFilterRepository
	notificationRepo repository.FilterNotificationRepository
	feedLimit        int
}

// NewFilterService creates the saved-filter and notification-feed service.
func NewFilterService(
	logger *slog.Logger,
	filterRepo repository.SavedFilterRepository,
	notificationRepo repository.FilterNotificationRepository,
	cfg *config.Config,
) usecase.FilterUsecase {
	feedLimit := defaultNotificationFeedLimit
	if cfg != nil && cfg.Search != nil && cfg.Search.NotificationFeedLimit > 0 {
		feedLimit = cfg.Search.NotificationFeedLimit
	}

	return &filterService{
		logger:           logger,
		filterRepo:       filterRepo,
		notificationRepo: notificationRepo,
		feedLimit:        feedLimit,
	}
}

func (s *filterService) CreateFilter(ctx context.Context, recruiterID uuid.UUID, input *usecase.CreateFilterInput) (*entity.SavedFilter, error) {
	filter := &entity.SavedFilter{
		RecruiterID:   recruiterID,
		Skill:         input.Skill,
		Location:      input.Location,
		Project:       input.Project,
		RadiusMiles:   input.RadiusMiles,
		NotifyOnMatch: input.NotifyOnMatch,
	}

	if filter.IsEmpty() {
		return nil, domainerrors.ErrEmptyFilter
	}

	if err := s.filterRepo.CreateFilter(ctx, filter); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save filter")
	}

	return filter, nil
}

func (s *filterService) ListFilters(ctx context.Context, recruiterID uuid.UUID) ([]*entity.SavedFilter, error) {
	filters, err := s.filterRepo.FindFiltersByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list filters")
	}

	return filters, nil
}

// DeleteFilter removes one of the recruiter's own filters. A filter owned by
// another recruiter is indistinguishable from a missing one.
func (s *filterService) DeleteFilter(ctx context.Context, recruiterID, filterID uuid.UUID) error {
	filter, err := s.filterRepo.FindFilterByID(ctx, filterID)
	if err != nil {
		if errors.Is(err, repository.ErrFilterNotFound) {
			return domainerrors.ErrFilterNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to load filter")
	}

	if filter.RecruiterID != recruiterID {
		return domainerrors.ErrFilterNotFound
	}

	if err := s.filterRepo.DeleteFilter(ctx, filterID); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete filter")
	}

	return nil
}

func (s *filterService) GetNotificationFeed(ctx context.Context, recruiterID uuid.UUID) (*usecase.NotificationFeed, error) {
	notifications, err := s.notificationRepo.FindNotificationsByRecruiter(ctx, recruiterID, s.feedLimit)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load notifications")
	}

	unread, err := s.notificationRepo.CountUnread(ctx, recruiterID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count unread notifications")
	}

	if notifications == nil {
		notifications = []*entity.FilterNotification{}
	}

	return &usecase.NotificationFeed{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

func (s *filterService) MarkNotificationRead(ctx context.Context, recruiterID, notificationID uuid.UUID) error {
	if err := s.notificationRepo.MarkRead(ctx, recruiterID, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to mark notification read")
	}

	return nil
}

func (s *filterService) MarkAllNotificationsRead(ctx context.Context, recruiterID uuid.UUID) error {
	if err := s.notificationRepo.MarkAllRead(ctx, recruiterID); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark notifications read")
	}

	return nil
}
