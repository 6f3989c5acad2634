package entity

import "github.com/google/uuid"

// Skill represents a single entry in the normalized skill catalogue.
// Skill names are unique; profiles and jobs reference skills by entity,
// never by free text.
type Skill struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category,omitempty"`
}
