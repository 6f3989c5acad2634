package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func profileWith(skills []string, city, state, country, location, projects string) *CandidateProfile {
	entSkills := make([]Skill, 0, len(skills))
	for _, name := range skills {
		entSkills = append(entSkills, Skill{ID: uuid.New(), Name: name})
	}

	return &CandidateProfile{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Username:    "candidate",
		Skills:      entSkills,
		City:        city,
		StateRegion: state,
		Country:     country,
		Location:    location,
		Projects:    projects,
		Privacy:     PrivacyPublic,
	}
}

func TestSavedFilter_MatchesProfile_SkillClause(t *testing.T) {
	profile := profileWith([]string{"Python", "SQL"}, "", "", "", "", "")

	filter := &SavedFilter{Skill: "Python"}
	assert.True(t, filter.MatchesProfile(profile), "skill clause alone should match regardless of location/projects")

	filter = &SavedFilter{Skill: "python"}
	assert.True(t, filter.MatchesProfile(profile), "skill match is case-insensitive")

	filter = &SavedFilter{Skill: "Java"}
	assert.False(t, filter.MatchesProfile(profileWith([]string{"JavaScript"}, "", "", "", "", "")),
		"skill match is exact, not substring")
}

func TestSavedFilter_MatchesProfile_LocationClause(t *testing.T) {
	atlanta := profileWith(nil, "Atlanta", "GA", "USA", "", "")
	boston := profileWith(nil, "Boston", "MA", "USA", "", "")

	filter := &SavedFilter{Location: "Atlanta"}
	assert.True(t, filter.MatchesProfile(atlanta))
	assert.False(t, filter.MatchesProfile(boston))

	// The free-text location field participates in the composed string.
	freeText := profileWith(nil, "", "", "", "Greater Atlanta Area", "")
	assert.True(t, filter.MatchesProfile(freeText))
}

func TestSavedFilter_MatchesProfile_ProjectClause(t *testing.T) {
	profile := profileWith(nil, "", "", "", "", "Built a distributed job scheduler in Go")

	assert.True(t, (&SavedFilter{Project: "scheduler"}).MatchesProfile(profile))
	assert.False(t, (&SavedFilter{Project: "compiler"}).MatchesProfile(profile))
}

func TestSavedFilter_MatchesProfile_AllClausesMustPass(t *testing.T) {
	profile := profileWith([]string{"Python"}, "Atlanta", "GA", "USA", "", "ML pipeline")

	filter := &SavedFilter{Skill: "Python", Location: "Atlanta", Project: "pipeline"}
	assert.True(t, filter.MatchesProfile(profile))

	filter = &SavedFilter{Skill: "Python", Location: "Boston", Project: "pipeline"}
	assert.False(t, filter.MatchesProfile(profile), "one failing clause fails the whole filter")
}

func TestSavedFilter_MatchesProfile_AbsentClausesAreVacuous(t *testing.T) {
	filter := &SavedFilter{}
	assert.True(t, filter.MatchesProfile(profileWith(nil, "", "", "", "", "")))
	assert.False(t, filter.MatchesProfile(nil))
}

func TestSavedFilter_IsEmpty(t *testing.T) {
	assert.True(t, (&SavedFilter{}).IsEmpty())

	radius := 10.0
	assert.False(t, (&SavedFilter{RadiusMiles: &radius}).IsEmpty())
	assert.False(t, (&SavedFilter{Skill: "Go"}).IsEmpty())
}

func TestCandidateProfile_ComposedLocation(t *testing.T) {
	profile := profileWith(nil, "Atlanta", "GA", "USA", "", "")
	assert.Equal(t, "Atlanta GA USA", profile.ComposedLocation())

	profile = profileWith(nil, "Atlanta", "", "USA", "Midtown", "")
	assert.Equal(t, "Atlanta USA Midtown", profile.ComposedLocation(), "empty parts are skipped, not double-spaced")
}
