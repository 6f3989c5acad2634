package model

import (
	"time"

	"github.com/google/uuid"
)

// SavedFilterModel is the GORM-specific struct for the 'saved_filters' table.
// Empty filters are rejected above this layer and never reach the database.
type SavedFilterModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecruiterID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Skill         string    `gorm:"type:varchar(100)"`
	Location      string    `gorm:"type:varchar(255)"`
	Project       string    `gorm:"type:varchar(255)"`
	RadiusMiles   *float64  `gorm:"type:decimal(8,2)"`
	NotifyOnMatch bool      `gorm:"not null;default:false;index"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SavedFilterModel) TableName() string {
	return "saved_filters"
}
