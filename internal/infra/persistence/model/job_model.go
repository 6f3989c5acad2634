package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobModel is the GORM-specific struct for the 'jobs' table. Coordinates are
// nullable; postings without them are skipped by radius search.
type JobModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null;index"`
	Company     string    `gorm:"type:varchar(255);not null;index"`
	Location    string    `gorm:"type:varchar(255);not null;default:'Remote'"`
	Latitude    *float64  `gorm:"type:decimal(9,6)"`
	Longitude   *float64  `gorm:"type:decimal(9,6)"`
	PayMin      float64   `gorm:"type:decimal(12,2);not null;default:0"`
	PayMax      float64   `gorm:"type:decimal(12,2);not null;default:0"`
	PayType     string    `gorm:"type:varchar(20);not null;default:'annual'"`
	Description string    `gorm:"type:text"`

	RequiredSkills  []SkillModel `gorm:"many2many:job_required_skills"`
	PreferredSkills []SkillModel `gorm:"many2many:job_preferred_skills"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (JobModel) TableName() string {
	return "jobs"
}
