package repository

import (
	"context"

	"jobsearch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrNotificationNotFound is returned when a filter notification is not found.
	ErrNotificationNotFound = errors.New("filter notification not found")
	// ErrDuplicateNotification is returned when a notification already exists
	// for the same (recruiter, filter, candidate) triple.
	ErrDuplicateNotification = errors.New("notification already exists for this recruiter, filter and candidate")
)

// FilterNotificationRepository provides access to filter-match notifications.
type FilterNotificationRepository interface {
	// CreateNotification persists a new notification. The backing store
	// enforces uniqueness on (recruiter, filter, candidate); a violation is
	// reported as ErrDuplicateNotification.
	CreateNotification(ctx context.Context, notification *entity.FilterNotification) error

	// NotificationExists reports whether a notification already exists for
	// the given (recruiter, filter, candidate) triple.
	NotificationExists(ctx context.Context, recruiterID, filterID, candidateID uuid.UUID) (bool, error)

	// FindNotificationsByRecruiter returns the recruiter's notifications,
	// newest first, capped at limit (0 for no cap).
	FindNotificationsByRecruiter(ctx context.Context, recruiterID uuid.UUID, limit int) ([]*entity.FilterNotification, error)

	CountUnread(ctx context.Context, recruiterID uuid.UUID) (int64, error)

	// MarkRead transitions a single notification to read. The recruiter scope
	// guards against marking another recruiter's notification.
	MarkRead(ctx context.Context, recruiterID, notificationID uuid.UUID) error

	// MarkAllRead transitions every unread notification of the recruiter to read.
	MarkAllRead(ctx context.Context, recruiterID uuid.UUID) error
}
