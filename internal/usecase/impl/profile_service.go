package impl

import (
	"context"
	"log/slog"

	"jobsearch/internal/domain/entity"
	domainerrors "jobsearch/internal/domain/errors"
	"jobsearch/internal/domain/repository"
	"jobsearch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type profileService struct {
	logger      *slog.Logger
	profileRepo repository.CandidateProfileRepository
	txManager   repository.TransactionManager
	matcher     usecase.MatchUsecase
}

// NewProfileService creates the candidate profile service.
func NewProfileService(
	logger *slog.Logger,
	profileRepo repository.CandidateProfileRepository,
	txManager repository.TransactionManager,
	matcher usecase.MatchUsecase,
) usecase.ProfileUsecase {
	return &profileService{
		logger:      logger,
		profileRepo: profileRepo,
		txManager:   txManager,
		matcher:     matcher,
	}
}

// UpsertCandidateProfile writes the profile and its skill set in one
// transaction, then evaluates saved filters against the committed state.
// Filter evaluation failures are logged, not returned: the profile write
// already succeeded and must be reported as such.
func (s *profileService) UpsertCandidateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpsertCandidateProfileInput) (*entity.CandidateProfile, error) {
	privacy := entity.Privacy(input.Privacy)
	if input.Privacy == "" {
		privacy = entity.PrivacyPublic
	}
	if !privacy.IsValid() {
		return nil, domainerrors.ErrInvalidPrivacy
	}

	profile := &entity.CandidateProfile{
		UserID:         userID,
		Username:       input.Username,
		Headline:       input.Headline,
		Education:      input.Education,
		WorkExperience: input.WorkExperience,
		Links:          input.Links,
		Privacy:        privacy,
		City:           input.City,
		StateRegion:    input.StateRegion,
		Country:        input.Country,
		Location:       input.Location,
		Projects:       input.Projects,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		skills, err := factory.NewSkillRepository().FindSkillsByNames(ctx, input.SkillNames)
		if err != nil {
			return errors.Wrap(err, "resolve skills")
		}
		profile.Skills = make([]entity.Skill, 0, len(skills))
		for _, skill := range skills {
			profile.Skills = append(profile.Skills, *skill)
		}

		if err := factory.NewCandidateProfileRepository().UpsertProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "upsert profile")
		}

		return nil
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save profile")
	}

	// The transaction has committed; the matcher reads the durable state.
	if created, err := s.matcher.EvaluateFilters(ctx, profile); err != nil {
		s.logger.Error("saved-filter evaluation failed after profile commit",
			slog.String("userID", userID.String()),
			slog.Any("error", err),
		)
	} else if created > 0 {
		s.logger.Info("saved-filter matches notified",
			slog.String("userID", userID.String()),
			slog.Int("notifications", created),
		)
	}

	return profile, nil
}

func (s *profileService) GetCandidateProfile(ctx context.Context, userID uuid.UUID) (*entity.CandidateProfile, error) {
	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load profile")
	}

	return profile, nil
}
