package postgres

import (
	"context"
	"strings"

	"jobsearch/internal/domain/entity"
	"jobsearch/internal/domain/repository"
	"jobsearch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// jobRepository implements the repository.JobRepository interface.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{
		db: db,
	}
}

// CreateJob persists a new job posting with its skill associations.
func (repo *jobRepository) CreateJob(ctx context.Context, job *entity.Job) error {
	jobM := fromJobDomain(job)

	if err := repo.db.WithContext(ctx).Create(jobM).Error; err != nil {
		return errors.Wrap(err, "failed to create job")
	}

	job.ID = jobM.ID
	job.CreatedAt = jobM.CreatedAt
	job.UpdatedAt = jobM.UpdatedAt

	return nil
}

// FindJobByID retrieves a job posting with its skill sets.
func (repo *jobRepository) FindJobByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	var jobM model.JobModel

	if err := repo.db.WithContext(ctx).
		Preload("RequiredSkills").
		Preload("PreferredSkills").
		Where("id = ?", id).
		First(&jobM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job by ID")
	}

	return toJobDomain(&jobM), nil
}

// SearchJobs applies the text and salary filters in SQL. Geo radius
// refinement happens above the repository.
func (repo *jobRepository) SearchJobs(ctx context.Context, criteria repository.JobSearchCriteria) ([]*entity.Job, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Preload("RequiredSkills").
		Preload("PreferredSkills")

	if criteria.Search != "" {
		pattern := "%" + criteria.Search + "%"
		query = query.Where("name ILIKE ? OR company ILIKE ?", pattern, pattern)
	}
	if criteria.PayType != "" {
		query = query.Where("pay_type = ?", criteria.PayType)
	}
	if criteria.MinSalary != nil {
		query = query.Where("pay_min >= ?", *criteria.MinSalary)
	}
	if criteria.MaxSalary != nil {
		query = query.Where("pay_max <= ?", *criteria.MaxSalary)
	}
	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}
	if len(criteria.SkillNames) > 0 {
		// Every requested skill must appear among the posting's required skills.
		query = query.Where(`id IN (
			SELECT jrs.job_model_id
			FROM job_required_skills jrs
			JOIN skills s ON s.id = jrs.skill_model_id
			WHERE LOWER(s.name) IN ?
			GROUP BY jrs.job_model_id
			HAVING COUNT(DISTINCT LOWER(s.name)) = ?
		)`, lowerAll(criteria.SkillNames), len(criteria.SkillNames))
	}

	var jobModels []*model.JobModel
	if err := query.Order("created_at DESC").Find(&jobModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search jobs")
	}

	jobs := make([]*entity.Job, 0, len(jobModels))
	for _, jobM := range jobModels {
		jobs = append(jobs, toJobDomain(jobM))
	}

	return jobs, nil
}

// --- Mapper Functions ---

func toJobDomain(data *model.JobModel) *entity.Job {
	if data == nil {
		return nil
	}

	return &entity.Job{
		ID:              data.ID,
		Name:            data.Name,
		Company:         data.Company,
		Location:        data.Location,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		PayMin:          data.PayMin,
		PayMax:          data.PayMax,
		PayType:         entity.PayType(data.PayType),
		Description:     data.Description,
		RequiredSkills:  toSkillDomainSlice(data.RequiredSkills),
		PreferredSkills: toSkillDomainSlice(data.PreferredSkills),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromJobDomain(data *entity.Job) *model.JobModel {
	if data == nil {
		return nil
	}

	return &model.JobModel{
		ID:              data.ID,
		Name:            data.Name,
		Company:         data.Company,
		Location:        data.Location,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		PayMin:          data.PayMin,
		PayMax:          data.PayMax,
		PayType:         data.PayType.String(),
		Description:     data.Description,
		RequiredSkills:  fromSkillDomainSlice(data.RequiredSkills),
		PreferredSkills: fromSkillDomainSlice(data.PreferredSkills),
	}
}

func lowerAll(names []string) []string {
	lowered := make([]string, 0, len(names))
	for _, name := range names {
		lowered = append(lowered, strings.ToLower(name))
	}

	return lowered
}
