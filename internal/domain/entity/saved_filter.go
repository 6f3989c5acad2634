package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SavedFilter is a recruiter-authored persistent candidate query. It is used
// both for on-demand search and as a standing match rule for notifications.
type SavedFilter struct {
	ID            uuid.UUID `json:"id"`
	RecruiterID   uuid.UUID `json:"recruiter_id"`
	Skill         string    `json:"skill,omitempty"`
	Location      string    `json:"location,omitempty"`
	Project       string    `json:"project,omitempty"`
	RadiusMiles   *float64  `json:"radius_miles,omitempty"`
	NotifyOnMatch bool      `json:"notify_on_match"`
	CreatedAt     time.Time `json:"created_at"`
}

// IsEmpty reports whether the filter has no criteria at all. Empty filters
// are rejected at creation and must never be persisted.
func (f *SavedFilter) IsEmpty() bool {
	return f.Skill == "" && f.Location == "" && f.Project == "" && f.RadiusMiles == nil
}

// MatchesProfile evaluates the filter's text clauses against a candidate
// profile. All present clauses must pass; absent clauses are vacuously true.
//
// The skill clause requires a case-insensitive exact match against one of the
// candidate's catalogue skills. Substring matching is deliberately not used
// here: a "Java" filter must not match a candidate whose only skill is
// "JavaScript".
func (f *SavedFilter) MatchesProfile(profile *CandidateProfile) bool {
	if profile == nil {
		return false
	}

	if f.Skill != "" {
		want := strings.ToLower(f.Skill)
		found := false
		for _, skill := range profile.Skills {
			if strings.ToLower(skill.Name) == want {
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Location != "" {
		composed := strings.ToLower(profile.ComposedLocation())
		if !strings.Contains(composed, strings.ToLower(f.Location)) {
			return false
		}
	}

	if f.Project != "" {
		if !strings.Contains(strings.ToLower(profile.Projects), strings.ToLower(f.Project)) {
			return false
		}
	}

	return true
}

// NotificationTypeNewMatch is the only notification type currently produced.
const NotificationTypeNewMatch = "new_match"

// FilterNotification records that a candidate matched a recruiter's saved
// filter. At most one exists per (recruiter, filter, candidate) triple. The
// only mutation permitted after creation is the unread -> read transition.
type FilterNotification struct {
	ID          uuid.UUID `json:"id"`
	RecruiterID uuid.UUID `json:"recruiter_id"`
	FilterID    uuid.UUID `json:"filter_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	Type        string    `json:"type"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}
