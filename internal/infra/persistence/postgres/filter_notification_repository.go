package postgres

import (
	"context"

	"jobsearch/internal/domain/entity"
	"jobsearch/internal/domain/repository"
	"jobsearch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// filterNotificationRepository implements the repository.FilterNotificationRepository interface.
type filterNotificationRepository struct {
	db *gorm.DB
}

// NewFilterNotificationRepository is the constructor for filterNotificationRepository.
func NewFilterNotificationRepository(db *gorm.DB) repository.FilterNotificationRepository {
	return &filterNotificationRepository{
		db: db,
	}
}

// CreateNotification persists a new notification. A unique violation on the
// (recruiter, filter, candidate) index is reported as ErrDuplicateNotification;
// a foreign-key violation means the filter was deleted underneath us.
func (repo *filterNotificationRepository) CreateNotification(ctx context.Context, notification *entity.FilterNotification) error {
	notificationM := fromFilterNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateNotification
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrFilterNotFound
		}

		return errors.Wrap(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// NotificationExists reports whether a notification exists for the triple.
func (repo *filterNotificationRepository) NotificationExists(ctx context.Context, recruiterID, filterID, candidateID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FilterNotificationModel{}).
		Where("recruiter_id = ? AND filter_id = ? AND candidate_id = ?", recruiterID, filterID, candidateID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check notification existence")
	}

	return count > 0, nil
}

// FindNotificationsByRecruiter retrieves the recruiter's notifications,
// newest first, capped at limit (0 for no cap).
func (repo *filterNotificationRepository) FindNotificationsByRecruiter(ctx context.Context, recruiterID uuid.UUID, limit int) ([]*entity.FilterNotification, error) {
	query := repo.db.WithContext(ctx).
		Where("recruiter_id = ?", recruiterID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var notificationModels []*model.FilterNotificationModel
	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by recruiter")
	}

	notifications := make([]*entity.FilterNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toFilterNotificationDomain(notificationM))
	}

	return notifications, nil
}

// CountUnread returns the recruiter's total unread notification count.
func (repo *filterNotificationRepository) CountUnread(ctx context.Context, recruiterID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FilterNotificationModel{}).
		Where("recruiter_id = ? AND is_read = ?", recruiterID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead transitions a single notification to read, scoped to the owner.
func (repo *filterNotificationRepository) MarkRead(ctx context.Context, recruiterID, notificationID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FilterNotificationModel{}).
		Where("id = ? AND recruiter_id = ?", notificationID, recruiterID).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		// Distinguish a repeat read from a missing or foreign notification.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.FilterNotificationModel{}).
			Where("id = ? AND recruiter_id = ?", notificationID, recruiterID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to verify notification ownership")
		}
		if count == 0 {
			return repository.ErrNotificationNotFound
		}
	}

	return nil
}

// MarkAllRead transitions every unread notification of the recruiter to read.
func (repo *filterNotificationRepository) MarkAllRead(ctx context.Context, recruiterID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.FilterNotificationModel{}).
		Where("recruiter_id = ? AND is_read = ?", recruiterID, false).
		Update("is_read", true).Error; err != nil {
		return errors.Wrap(err, "failed to mark all notifications read")
	}

	return nil
}

// --- Mapper Functions ---

func toFilterNotificationDomain(data *model.FilterNotificationModel) *entity.FilterNotification {
	if data == nil {
		return nil
	}

	return &entity.FilterNotification{
		ID:          data.ID,
		RecruiterID: data.RecruiterID,
		FilterID:    data.FilterID,
		CandidateID: data.CandidateID,
		Type:        data.Type,
		Message:     data.Message,
		IsRead:      data.IsRead,
		CreatedAt:   data.CreatedAt,
	}
}

func fromFilterNotificationDomain(data *entity.FilterNotification) *model.FilterNotificationModel {
	if data == nil {
		return nil
	}

	return &model.FilterNotificationModel{
		ID:          data.ID,
		RecruiterID: data.RecruiterID,
		FilterID:    data.FilterID,
		CandidateID: data.CandidateID,
		Type:        data.Type,
		Message:     data.Message,
		IsRead:      data.IsRead,
	}
}
