// Package repository defines the persistence interfaces of the domain layer.
package repository

import (
	"context"

	"jobsearch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrJobNotFound is returned when a job posting is not found.
var ErrJobNotFound = errors.New("job not found")

// JobSearchCriteria describes the repository-level filters for job search.
// Geo radius filtering happens above the repository, on the returned set.
type JobSearchCriteria struct {
	Search     string   // Substring match on job name or company.
	PayType    string   // One of entity.PayType values, empty for all.
	MinSalary  *float64 // Postings with pay_min >= MinSalary.
	MaxSalary  *float64 // Postings with pay_max <= MaxSalary.
	Location   string   // Substring match on the location label.
	SkillNames []string // Required-skill names, all must be present.
}

// JobRepository provides access to job postings.
type JobRepository interface {
	CreateJob(ctx context.Context, job *entity.Job) error
	FindJobByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	SearchJobs(ctx context.Context, criteria JobSearchCriteria) ([]*entity.Job, error)
}
