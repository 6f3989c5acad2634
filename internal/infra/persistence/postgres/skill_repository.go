package postgres

import (
	"context"

	"jobsearch/internal/domain/entity"
	"jobsearch/internal/domain/repository"
	"jobsearch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// skillRepository implements the repository.SkillRepository interface.
type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository is the constructor for skillRepository.
func NewSkillRepository(db *gorm.DB) repository.SkillRepository {
	return &skillRepository{
		db: db,
	}
}

// UpsertSkills inserts catalogue entries, skipping names that already exist.
func (repo *skillRepository) UpsertSkills(ctx context.Context, skills []*entity.Skill) error {
	if len(skills) == 0 {
		return nil
	}

	skillModels := make([]*model.SkillModel, 0, len(skills))
	for _, skill := range skills {
		skillModels = append(skillModels, fromSkillDomain(skill))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&skillModels).Error; err != nil {
		return errors.Wrap(err, "failed to upsert skills")
	}

	return nil
}

// FindSkillsByNames resolves skill names to catalogue entries. Unknown names
// are silently omitted.
func (repo *skillRepository) FindSkillsByNames(ctx context.Context, names []string) ([]*entity.Skill, error) {
	if len(names) == 0 {
		return []*entity.Skill{}, nil
	}

	var skillModels []*model.SkillModel

	if err := repo.db.WithContext(ctx).
		Where("LOWER(name) IN ?", lowerAll(names)).
		Find(&skillModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find skills by names")
	}

	skills := make([]*entity.Skill, 0, len(skillModels))
	for _, skillM := range skillModels {
		skills = append(skills, toSkillDomain(skillM))
	}

	return skills, nil
}

// ListSkills returns the full catalogue ordered by category then name.
func (repo *skillRepository) ListSkills(ctx context.Context) ([]*entity.Skill, error) {
	var skillModels []*model.SkillModel

	if err := repo.db.WithContext(ctx).
		Order("category ASC, name ASC").
		Find(&skillModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list skills")
	}

	skills := make([]*entity.Skill, 0, len(skillModels))
	for _, skillM := range skillModels {
		skills = append(skills, toSkillDomain(skillM))
	}

	return skills, nil
}

// --- Mapper Functions ---

func toSkillDomain(data *model.SkillModel) *entity.Skill {
	if data == nil {
		return nil
	}

	return &entity.Skill{
		ID:       data.ID,
		Name:     data.Name,
		Category: data.Category,
	}
}

func fromSkillDomain(data *entity.Skill) *model.SkillModel {
	if data == nil {
		return nil
	}

	return &model.SkillModel{
		ID:       data.ID,
		Name:     data.Name,
		Category: data.Category,
	}
}

func toSkillDomainSlice(data []model.SkillModel) []entity.Skill {
	skills := make([]entity.Skill, 0, len(data))
	for i := range data {
		skills = append(skills, *toSkillDomain(&data[i]))
	}

	return skills
}

func fromSkillDomainSlice(data []entity.Skill) []model.SkillModel {
	skillModels := make([]model.SkillModel, 0, len(data))
	for i := range data {
		skillModels = append(skillModels, *fromSkillDomain(&data[i]))
	}

	return skillModels
}
