package model

import (
	"time"

	"github.com/google/uuid"
)

// FilterNotificationModel is the GORM-specific struct for the
// 'filter_notifications' table. The composite unique index enforces at most
// one notification per (recruiter, filter, candidate), closing the race
// between concurrent filter evaluations.
type FilterNotificationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecruiterID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_notification_dedupe"`
	FilterID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_notification_dedupe"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_notification_dedupe"`
	Type        string    `gorm:"type:varchar(50);not null;default:'new_match'"`
	Message     string    `gorm:"type:text;not null"`
	IsRead      bool      `gorm:"not null;default:false;index"`
	CreatedAt   time.Time

	// Deleting a filter removes its notifications with it.
	Filter *SavedFilterModel `gorm:"foreignKey:FilterID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FilterNotificationModel) TableName() string {
	return "filter_notifications"
}
