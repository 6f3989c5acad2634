// Package model contains the GORM-specific structs of the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// SkillModel is the GORM-specific struct for the 'skills' table. Skill names
// form the normalized catalogue that profiles and jobs reference.
type SkillModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Category  string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SkillModel) TableName() string {
	return "skills"
}
