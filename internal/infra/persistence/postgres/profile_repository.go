package postgres

import (
	"context"

	"jobsearch/internal/domain/entity"
	"jobsearch/internal/domain/repository"
	"jobsearch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// candidateProfileRepository implements the repository.CandidateProfileRepository interface.
type candidateProfileRepository struct {
	db *gorm.DB
}

// NewCandidateProfileRepository is the constructor for candidateProfileRepository.
func NewCandidateProfileRepository(db *gorm.DB) repository.CandidateProfileRepository {
	return &candidateProfileRepository{
		db: db,
	}
}

// UpsertProfile creates the profile on first write and replaces its fields,
// including the skill set, on subsequent writes for the same user.
func (repo *candidateProfileRepository) UpsertProfile(ctx context.Context, profile *entity.CandidateProfile) error {
	profileM := fromProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"username", "headline", "education", "work_experience", "links",
				"privacy", "city", "state_region", "country", "location",
				"projects", "latitude", "longitude", "updated_at",
			}),
		}).
		Omit("Skills").
		Create(profileM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert profile")
	}

	// The upsert may have kept the existing row's ID; resolve it before
	// replacing the skill associations.
	var stored model.CandidateProfileModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", profile.UserID).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload upserted profile")
	}

	skillModels := fromSkillDomainSlice(profile.Skills)
	if err := repo.db.WithContext(ctx).
		Model(&stored).
		Association("Skills").
		Replace(skillModelPointers(skillModels)...); err != nil {
		return errors.Wrap(err, "failed to replace profile skills")
	}

	profile.ID = stored.ID
	profile.CreatedAt = stored.CreatedAt
	profile.UpdatedAt = stored.UpdatedAt

	return nil
}

// FindProfileByUserID retrieves a profile with its skill set.
func (repo *candidateProfileRepository) FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.CandidateProfile, error) {
	var profileM model.CandidateProfileModel

	if err := repo.db.WithContext(ctx).
		Preload("Skills").
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user ID")
	}

	return toProfileDomain(&profileM), nil
}

// SearchProfiles applies the text criteria in SQL. Privacy filtering happens
// in the use case so the rule lives next to the entity that defines it.
func (repo *candidateProfileRepository) SearchProfiles(ctx context.Context, criteria repository.CandidateSearchCriteria) ([]*entity.CandidateProfile, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.CandidateProfileModel{}).
		Preload("Skills")

	if criteria.Skill != "" {
		query = query.Where(`id IN (
			SELECT cps.candidate_profile_model_id
			FROM candidate_profile_skills cps
			JOIN skills s ON s.id = cps.skill_model_id
			WHERE s.name ILIKE ?
		)`, "%"+criteria.Skill+"%")
	}
	if criteria.Location != "" {
		pattern := "%" + criteria.Location + "%"
		query = query.Where(
			"city ILIKE ? OR state_region ILIKE ? OR country ILIKE ? OR location ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if criteria.Project != "" {
		query = query.Where("projects ILIKE ?", "%"+criteria.Project+"%")
	}

	var profileModels []*model.CandidateProfileModel
	if err := query.Order("updated_at DESC").Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search profiles")
	}

	profiles := make([]*entity.CandidateProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.CandidateProfileModel) *entity.CandidateProfile {
	if data == nil {
		return nil
	}

	return &entity.CandidateProfile{
		ID:             data.ID,
		UserID:         data.UserID,
		Username:       data.Username,
		Headline:       data.Headline,
		Skills:         toSkillDomainSlice(data.Skills),
		Education:      data.Education,
		WorkExperience: data.WorkExperience,
		Links:          data.Links,
		Privacy:        entity.Privacy(data.Privacy),
		City:           data.City,
		StateRegion:    data.StateRegion,
		Country:        data.Country,
		Location:       data.Location,
		Projects:       data.Projects,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.CandidateProfile) *model.CandidateProfileModel {
	if data == nil {
		return nil
	}

	return &model.CandidateProfileModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Username:       data.Username,
		Headline:       data.Headline,
		Education:      data.Education,
		WorkExperience: data.WorkExperience,
		Links:          data.Links,
		Privacy:        data.Privacy.String(),
		City:           data.City,
		StateRegion:    data.StateRegion,
		Country:        data.Country,
		Location:       data.Location,
		Projects:       data.Projects,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
	}
}

func skillModelPointers(skillModels []model.SkillModel) []any {
	pointers := make([]any, 0, len(skillModels))
	for i := range skillModels {
		pointers = append(pointers, &skillModels[i])
	}

	return pointers
}
