package repository

import (
	"context"

	"jobsearch/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSkillNotFound is returned when a skill is not found in the catalogue.
var ErrSkillNotFound = errors.New("skill not found")

// SkillRepository provides access to the normalized skill catalogue.
type SkillRepository interface {
	// UpsertSkills inserts catalogue entries, ignoring names that already exist.
	UpsertSkills(ctx context.Context, skills []*entity.Skill) error

	// FindSkillsByNames resolves skill names to catalogue entries. Names with
	// no catalogue entry are silently omitted from the result.
	FindSkillsByNames(ctx context.Context, names []string) ([]*entity.Skill, error)

	ListSkills(ctx context.Context) ([]*entity.Skill, error)
}
