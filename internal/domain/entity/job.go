package entity

import (
	"time"

	"github.com/google/uuid"
)

// PayType represents how a job's salary range is quoted.
type PayType string

const (
	// PayAnnual indicates a yearly salary.
	PayAnnual PayType = "annual"
	// PayHourly indicates an hourly rate.
	PayHourly PayType = "hourly"
	// PayMonthly indicates a monthly salary.
	PayMonthly PayType = "monthly"
)

// String returns the string representation of the PayType.
func (p PayType) String() string {
	return string(p)
}

// IsValid checks if the PayType is a valid value.
func (p PayType) IsValid() bool {
	switch p {
	case PayAnnual, PayHourly, PayMonthly:
		return true
	default:
		return false
	}
}

// Job represents a job posting.
type Job struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`            // Free-text location label, defaults to "Remote".
	Latitude        *float64  `json:"latitude,omitempty"`  // Nil when the posting has no coordinates.
	Longitude       *float64  `json:"longitude,omitempty"` // Nil when the posting has no coordinates.
	PayMin          float64   `json:"pay_min"`
	PayMax          float64   `json:"pay_max"`
	PayType         PayType   `json:"pay_type"`
	Description     string    `json:"description"`
	RequiredSkills  []Skill   `json:"required_skills,omitempty"`
	PreferredSkills []Skill   `json:"preferred_skills,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// GeoPoint returns the posting's coordinates, or nil when no location data exists.
func (j *Job) GeoPoint() *GeoPoint {
	if j.Latitude == nil || j.Longitude == nil {
		return nil
	}

	return &GeoPoint{Latitude: *j.Latitude, Longitude: *j.Longitude}
}
