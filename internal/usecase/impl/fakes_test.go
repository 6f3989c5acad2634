package impl

// In-memory repository fakes shared by the service tests.

import (
	"context"
	"sort"
	"strings"
	"time"

	"jobsearch/internal/domain/entity"
	"jobsearch/internal/domain/repository"

	"github.com/google/uuid"
)

type memFilterRepo struct {
	filters []*entity.SavedFilter
	findErr error
}

func (m *memFilterRepo) CreateFilter(_ context.Context, filter *entity.SavedFilter) error {
	if filter.ID == uuid.Nil {
		filter.ID = uuid.New()
	}
	filter.CreatedAt = time.Now()
	m.filters = append(m.filters, filter)

	return nil
}

func (m *memFilterRepo) FindFilterByID(_ context.Context, id uuid.UUID) (*entity.SavedFilter, error) {
	for _, filter := range m.filters {
		if filter.ID == id {
			return filter, nil
		}
	}

	return nil, repository.ErrFilterNotFound
}

func (m *memFilterRepo) FindFiltersByRecruiter(_ context.Context, recruiterID uuid.UUID) ([]*entity.SavedFilter, error) {
	var out []*entity.SavedFilter
	for _, filter := range m.filters {
		if filter.RecruiterID == recruiterID {
			out = append(out, filter)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (m *memFilterRepo) FindNotifyEnabledFilters(context.Context) ([]*entity.SavedFilter, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}

	var out []*entity.SavedFilter
	for _, filter := range m.filters {
		if filter.NotifyOnMatch {
			out = append(out, filter)
		}
	}

	return out, nil
}

func (m *memFilterRepo) DeleteFilter(_ context.Context, id uuid.UUID) error {
	for i, filter := range m.filters {
		if filter.ID == id {
			m.filters = append(m.filters[:i], m.filters[i+1:]...)

			return nil
		}
	}

	return repository.ErrFilterNotFound
}

type memNotificationRepo struct {
	notifications []*entity.FilterNotification
	createErr     error
}

func (m *memNotificationRepo) dedupeKey(recruiterID, filterID, candidateID uuid.UUID) string {
	return strings.Join([]string{recruiterID.String(), filterID.String(), candidateID.String()}, "/")
}

func (m *memNotificationRepo) CreateNotification(_ context.Context, notification *entity.FilterNotification) error {
	if m.createErr != nil {
		return m.createErr
	}

	key := m.dedupeKey(notification.RecruiterID, notification.FilterID, notification.CandidateID)
	for _, existing := range m.notifications {
		if m.dedupeKey(existing.RecruiterID, existing.FilterID, existing.CandidateID) == key {
			return repository.ErrDuplicateNotification
		}
	}

	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	notification.CreatedAt = time.Now()
	m.notifications = append(m.notifications, notification)

	return nil
}

func (m *memNotificationRepo) NotificationExists(_ context.Context, recruiterID, filterID, candidateID uuid.UUID) (bool, error) {
	key := m.dedupeKey(recruiterID, filterID, candidateID)
	for _, existing := range m.notifications {
		if m.dedupeKey(existing.RecruiterID, existing.FilterID, existing.CandidateID) == key {
			return true, nil
		}
	}

	return false, nil
}

func (m *memNotificationRepo) FindNotificationsByRecruiter(_ context.Context, recruiterID uuid.UUID, limit int) ([]*entity.FilterNotification, error) {
	var out []*entity.FilterNotification
	for _, notification := range m.notifications {
		if notification.RecruiterID == recruiterID {
			out = append(out, notification)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (m *memNotificationRepo) CountUnread(_ context.Context, recruiterID uuid.UUID) (int64, error) {
	var count int64
	for _, notification := range m.notifications {
		if notification.RecruiterID == recruiterID && !notification.IsRead {
			count++
		}
	}

	return count, nil
}

func (m *memNotificationRepo) MarkRead(_ context.Context, recruiterID, notificationID uuid.UUID) error {
	for _, notification := range m.notifications {
		if notification.ID == notificationID && notification.RecruiterID == recruiterID {
			notification.IsRead = true

			return nil
		}
	}

	return repository.ErrNotificationNotFound
}

func (m *memNotificationRepo) MarkAllRead(_ context.Context, recruiterID uuid.UUID) error {
	for _, notification := range m.notifications {
		if notification.RecruiterID == recruiterID {
			notification.IsRead = true
		}
	}

	return nil
}

type memSkillRepo struct {
	skills []*entity.Skill
}

func (m *memSkillRepo) UpsertSkills(_ context.Context, skills []*entity.Skill) error {
	for _, skill := range skills {
		if _, ok := m.findByName(skill.Name); ok {
			continue
		}
		if skill.ID == uuid.Nil {
			skill.ID = uuid.New()
		}
		m.skills = append(m.skills, skill)
	}

	return nil
}

func (m *memSkillRepo) FindSkillsByNames(_ context.Context, names []string) ([]*entity.Skill, error) {
	var out []*entity.Skill
	for _, name := range names {
		if skill, ok := m.findByName(name); ok {
			out = append(out, skill)
		}
	}

	return out, nil
}

func (m *memSkillRepo) ListSkills(context.Context) ([]*entity.Skill, error) {
	return m.skills, nil
}

func (m *memSkillRepo) findByName(name string) (*entity.Skill, bool) {
	for _, skill := range m.skills {
		if strings.EqualFold(skill.Name, name) {
			return skill, true
		}
	}

	return nil, false
}

type memProfileRepo struct {
	profiles  []*entity.CandidateProfile
	searchErr error
}

func (m *memProfileRepo) UpsertProfile(_ context.Context, profile *entity.CandidateProfile) error {
	for i, existing := range m.profiles {
		if existing.UserID == profile.UserID {
			profile.ID = existing.ID
			m.profiles[i] = profile

			return nil
		}
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	m.profiles = append(m.profiles, profile)

	return nil
}

func (m *memProfileRepo) FindProfileByUserID(_ context.Context, userID uuid.UUID) (*entity.CandidateProfile, error) {
	for _, profile := range m.profiles {
		if profile.UserID == userID {
			return profile, nil
		}
	}

	return nil, repository.ErrProfileNotFound
}

func (m *memProfileRepo) SearchProfiles(_ context.Context, criteria repository.CandidateSearchCriteria) ([]*entity.CandidateProfile, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}

	var out []*entity.CandidateProfile
	for _, profile := range m.profiles {
		if criteria.Skill != "" && !profileHasSkillSubstring(profile, criteria.Skill) {
			continue
		}
		if criteria.Location != "" &&
			!strings.Contains(strings.ToLower(profile.ComposedLocation()), strings.ToLower(criteria.Location)) {
			continue
		}
		if criteria.Project != "" &&
			!strings.Contains(strings.ToLower(profile.Projects), strings.ToLower(criteria.Project)) {
			continue
		}
		out = append(out, profile)
	}

	return out, nil
}

func profileHasSkillSubstring(profile *entity.CandidateProfile, skill string) bool {
	want := strings.ToLower(skill)
	for _, s := range profile.Skills {
		if strings.Contains(strings.ToLower(s.Name), want) {
			return true
		}
	}

	return false
}

type memJobRepo struct {
	jobs []*entity.Job
}

func (m *memJobRepo) CreateJob(_ context.Context, job *entity.Job) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	m.jobs = append(m.jobs, job)

	return nil
}

func (m *memJobRepo) FindJobByID(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	for _, job := range m.jobs {
		if job.ID == id {
			return job, nil
		}
	}

	return nil, repository.ErrJobNotFound
}

func (m *memJobRepo) SearchJobs(_ context.Context, criteria repository.JobSearchCriteria) ([]*entity.Job, error) {
	var out []*entity.Job
	for _, job := range m.jobs {
		if criteria.Search != "" {
			search := strings.ToLower(criteria.Search)
			if !strings.Contains(strings.ToLower(job.Name), search) &&
				!strings.Contains(strings.ToLower(job.Company), search) {
				continue
			}
		}
		if criteria.PayType != "" && job.PayType.String() != criteria.PayType {
			continue
		}
		if criteria.MinSalary != nil && job.PayMin < *criteria.MinSalary {
			continue
		}
		if criteria.MaxSalary != nil && job.PayMax > *criteria.MaxSalary {
			continue
		}
		if criteria.Location != "" &&
			!strings.Contains(strings.ToLower(job.Location), strings.ToLower(criteria.Location)) {
			continue
		}
		out = append(out, job)
	}

	return out, nil
}

// memTxFactory hands out the shared in-memory repos; there is no real
// transaction to bind to.
type memTxFactory struct {
	profileRepo *memProfileRepo
	skillRepo   *memSkillRepo
}

func (f *memTxFactory) NewCandidateProfileRepository() repository.CandidateProfileRepository {
	return f.profileRepo
}

func (f *memTxFactory) NewSkillRepository() repository.SkillRepository {
	return f.skillRepo
}

type memTxManager struct {
	factory *memTxFactory
	execErr error
}

func (m *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.execErr != nil {
		return m.execErr
	}

	return fn(m.factory)
}

type fakeMatcher struct {
	profiles []*entity.CandidateProfile
	created  int
	err      error
}

func (f *fakeMatcher) EvaluateFilters(_ context.Context, profile *entity.CandidateProfile) (int, error) {
	f.profiles = append(f.profiles, profile)

	return f.created, f.err
}
