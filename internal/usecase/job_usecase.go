package usecase

import (
	"context"

	"jobsearch/internal/domain/entity"

	"github.com/google/uuid"
)

// RadiusInput carries the optional geo-radius parameters of a search request.
type RadiusInput struct {
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
	RadiusMiles float64 `json:"radius_miles" validate:"gt=0"`
	UseTraffic  bool    `json:"use_traffic"`
}

// Origin returns the radius query origin as a GeoPoint.
func (r *RadiusInput) Origin() entity.GeoPoint {
	return entity.GeoPoint{Latitude: r.Latitude, Longitude: r.Longitude}
}

// JobSearchInput carries all job search filters.
type JobSearchInput struct {
	Search     string
	PayType    string
	MinSalary  *float64
	MaxSalary  *float64
	Location   string
	SkillNames []string
	Radius     *RadiusInput
}

// CreateJobInput carries the fields for a new job posting.
type CreateJobInput struct {
	Name            string   `json:"name" validate:"required"`
	Company         string   `json:"company" validate:"required"`
	Location        string   `json:"location"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	PayMin          float64  `json:"pay_min" validate:"min=0"`
	PayMax          float64  `json:"pay_max" validate:"min=0"`
	PayType         string   `json:"pay_type"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"required_skills,omitempty"`
	PreferredSkills []string `json:"preferred_skills,omitempty"`
}

// JobSearchResult is a job posting with its computed distance when the
// search was radius-bounded.
type JobSearchResult struct {
	Job      *entity.Job            `json:"job"`
	Distance *entity.DistanceResult `json:"distance,omitempty"`
}

// JobUsecase exposes the job catalogue operations.
type JobUsecase interface {
	CreateJob(ctx context.Context, input *CreateJobInput) (*entity.Job, error)
	GetJob(ctx context.Context, id uuid.UUID) (*entity.Job, error)

	// SearchJobs applies the repository-level filters, then the optional
	// geo-radius filter. Radius-bounded results come back ordered by road
	// distance with the distance attached.
	SearchJobs(ctx context.Context, input *JobSearchInput) ([]*JobSearchResult, error)
}
