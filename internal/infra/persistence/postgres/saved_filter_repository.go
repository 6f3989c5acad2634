package postgres

import (
	"context"

	"jobsearch/internal/domain/entity"
	"jobsearch/internal/domain/repository"
	"jobsearch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// savedFilterRepository implements the repository.SavedFilterRepository interface.
type savedFilterRepository struct {
	db *gorm.DB
}

// NewSavedFilterRepository is the constructor for savedFilterRepository.
func NewSavedFilterRepository(db *gorm.DB) repository.SavedFilterRepository {
	return &savedFilterRepository{
		db: db,
	}
}

// CreateFilter persists a new saved filter.
func (repo *savedFilterRepository) CreateFilter(ctx context.Context, filter *entity.SavedFilter) error {
	filterM := fromSavedFilterDomain(filter)

	if err := repo.db.WithContext(ctx).Create(filterM).Error; err != nil {
		return errors.Wrap(err, "failed to create saved filter")
	}

	filter.ID = filterM.ID
	filter.CreatedAt = filterM.CreatedAt

	return nil
}

// FindFilterByID retrieves a saved filter by its unique ID.
func (repo *savedFilterRepository) FindFilterByID(ctx context.Context, id uuid.UUID) (*entity.SavedFilter, error) {
	var filterM model.SavedFilterModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&filterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFilterNotFound
		}

		return nil, errors.Wrap(err, "failed to find saved filter by ID")
	}

	return toSavedFilterDomain(&filterM), nil
}

// FindFiltersByRecruiter retrieves a recruiter's saved filters, newest first.
func (repo *savedFilterRepository) FindFiltersByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]*entity.SavedFilter, error) {
	var filterModels []*model.SavedFilterModel

	if err := repo.db.WithContext(ctx).
		Where("recruiter_id = ?", recruiterID).
		Order("created_at DESC").
		Find(&filterModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find filters by recruiter")
	}

	filters := make([]*entity.SavedFilter, 0, len(filterModels))
	for _, filterM := range filterModels {
		filters = append(filters, toSavedFilterDomain(filterM))
	}

	return filters, nil
}

// FindNotifyEnabledFilters retrieves every filter with notify-on-match set,
// across all recruiters.
func (repo *savedFilterRepository) FindNotifyEnabledFilters(ctx context.Context) ([]*entity.SavedFilter, error) {
	var filterModels []*model.SavedFilterModel

	if err := repo.db.WithContext(ctx).
		Where("notify_on_match = ?", true).
		Find(&filterModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notify-enabled filters")
	}

	filters := make([]*entity.SavedFilter, 0, len(filterModels))
	for _, filterM := range filterModels {
		filters = append(filters, toSavedFilterDomain(filterM))
	}

	return filters, nil
}

// DeleteFilter removes a saved filter by its ID.
func (repo *savedFilterRepository) DeleteFilter(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SavedFilterModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete saved filter")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFilterNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSavedFilterDomain(data *model.SavedFilterModel) *entity.SavedFilter {
	if data == nil {
		return nil
	}

	return &entity.SavedFilter{
		ID:            data.ID,
		RecruiterID:   data.RecruiterID,
		Skill:         data.Skill,
		Location:      data.Location,
		Project:       data.Project,
		RadiusMiles:   data.RadiusMiles,
		NotifyOnMatch: data.NotifyOnMatch,
		CreatedAt:     data.CreatedAt,
	}
}

func fromSavedFilterDomain(data *entity.SavedFilter) *model.SavedFilterModel {
	if data == nil {
		return nil
	}

	return &model.SavedFilterModel{
		ID:            data.ID,
		RecruiterID:   data.RecruiterID,
		Skill:         data.Skill,
		Location:      data.Location,
		Project:       data.Project,
		RadiusMiles:   data.RadiusMiles,
		NotifyOnMatch: data.NotifyOnMatch,
	}
}
