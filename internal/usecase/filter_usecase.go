package usecase

import (
	"context"

	"jobsearch/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateFilterInput carries the fields for a new saved filter.
type CreateFilterInput struct {
	Skill         string   `json:"skill"`
	Location      string   `json:"location"`
	Project       string   `json:"project"`
	RadiusMiles   *float64 `json:"radius_miles,omitempty" validate:"omitempty,gt=0"`
	NotifyOnMatch bool     `json:"notify_on_match"`
}

// NotificationFeed is the recruiter's notification list with its unread count.
type NotificationFeed struct {
	Notifications []*entity.FilterNotification `json:"notifications"`
	UnreadCount   int64                        `json:"unread_count"`
}

// FilterUsecase manages saved candidate filters and their notifications.
type FilterUsecase interface {
	// CreateFilter persists a new filter. A filter with every criterion
	// empty is rejected with ErrEmptyFilter.
	CreateFilter(ctx context.Context, recruiterID uuid.UUID, input *CreateFilterInput) (*entity.SavedFilter, error)

	ListFilters(ctx context.Context, recruiterID uuid.UUID) ([]*entity.SavedFilter, error)

	// DeleteFilter removes a filter owned by the recruiter; a filter owned
	// by someone else is reported as not found.
	DeleteFilter(ctx context.Context, recruiterID, filterID uuid.UUID) error

	// GetNotificationFeed returns the newest notifications (capped) plus the
	// total unread count.
	GetNotificationFeed(ctx context.Context, recruiterID uuid.UUID) (*NotificationFeed, error)

	MarkNotificationRead(ctx context.Context, recruiterID, notificationID uuid.UUID) error

	MarkAllNotificationsRead(ctx context.Context, recruiterID uuid.UUID) error
}
