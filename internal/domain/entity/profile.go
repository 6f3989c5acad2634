package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Privacy controls who can see a candidate profile.
type Privacy string

const (
	// PrivacyPublic makes the profile visible to all employers and job seekers.
	PrivacyPublic Privacy = "public"
	// PrivacyEmployersOnly makes the profile visible to employers only.
	PrivacyEmployersOnly Privacy = "employers_only"
	// PrivacyPrivate hides the profile from search entirely.
	PrivacyPrivate Privacy = "private"
)

// String returns the string representation of the Privacy setting.
func (p Privacy) String() string {
	return string(p)
}

// IsValid checks if the Privacy is a valid value.
func (p Privacy) IsValid() bool {
	switch p {
	case PrivacyPublic, PrivacyEmployersOnly, PrivacyPrivate:
		return true
	default:
		return false
	}
}

// CandidateProfile represents a job seeker's searchable profile.
type CandidateProfile struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Username       string    `json:"username"`
	Headline       string    `json:"headline,omitempty"`
	Skills         []Skill   `json:"skills,omitempty"`
	Education      string    `json:"education,omitempty"`
	WorkExperience string    `json:"work_experience,omitempty"`
	Links          string    `json:"links,omitempty"`
	Privacy        Privacy   `json:"privacy"`
	City           string    `json:"city,omitempty"`
	StateRegion    string    `json:"state_region,omitempty"`
	Country        string    `json:"country,omitempty"`
	Location       string    `json:"location,omitempty"` // Free-text location field.
	Projects       string    `json:"projects,omitempty"` // Free-text projects description.
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// GeoPoint returns the profile's coordinates, or nil when no location data exists.
func (p *CandidateProfile) GeoPoint() *GeoPoint {
	if p.Latitude == nil || p.Longitude == nil {
		return nil
	}

	return &GeoPoint{Latitude: *p.Latitude, Longitude: *p.Longitude}
}

// ComposedLocation joins the profile's city, state/region, country and
// free-text location with single spaces, skipping empty parts. Saved-filter
// location clauses match against this string.
func (p *CandidateProfile) ComposedLocation() string {
	parts := make([]string, 0, 4)
	for _, part := range []string{p.City, p.StateRegion, p.Country, p.Location} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, " ")
}

// VisibleToRecruiters reports whether the profile may appear in recruiter search.
func (p *CandidateProfile) VisibleToRecruiters() bool {
	return p.Privacy == PrivacyPublic || p.Privacy == PrivacyEmployersOnly
}
