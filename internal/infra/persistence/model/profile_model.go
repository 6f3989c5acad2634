package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CandidateProfileModel is the GORM-specific struct for the
// 'candidate_profiles' table. One profile exists per user.
type CandidateProfileModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Username       string    `gorm:"type:varchar(150);not null"`
	Headline       string    `gorm:"type:varchar(255)"`
	Education      string    `gorm:"type:text"`
	WorkExperience string    `gorm:"type:text"`
	Links          string    `gorm:"type:text"`
	Privacy        string    `gorm:"type:varchar(20);not null;default:'public';index"`
	City           string    `gorm:"type:varchar(100)"`
	StateRegion    string    `gorm:"type:varchar(100)"`
	Country        string    `gorm:"type:varchar(100)"`
	Location       string    `gorm:"type:varchar(255)"`
	Projects       string    `gorm:"type:text"`
	Latitude       *float64  `gorm:"type:decimal(9,6)"`
	Longitude      *float64  `gorm:"type:decimal(9,6)"`

	Skills []SkillModel `gorm:"many2many:candidate_profile_skills"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CandidateProfileModel) TableName() string {
	return "candidate_profiles"
}
