package service

import (
	"context"

	"github.com/deppfellow/devprojects/internal/errs"
	"github.com/deppfellow/devprojects/internal/model"
	"github.com/deppfellow/devprojects/internal/repository"
	"github.com/rs/zerolog"
)

// WelcomeMailer queues the welcome email of a newly created developer.
type WelcomeMailer interface {
	EnqueueWelcomeEmail(ctx context.Context, developerID int64, to, name string) error
}

type DeveloperService struct {
	repo   *repository.DeveloperRepository
	mailer WelcomeMailer
}

// NewDeveloperService creates the service; mailer may be nil.
func NewDeveloperService(repo *repository.DeveloperRepository, mailer WelcomeMailer) *DeveloperService {
	return &DeveloperService{repo: repo, mailer: mailer}
}

// EnsureExists fails with 404 when no developer has the given id.
func (s *DeveloperService) EnsureExists(ctx context.Context, id int64) error {
	found, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewNotFoundError("Developer not found.", true, nil)
	}
	return nil
}

// EnsureEmailAvailable fails with 409 when the email is already registered,
// including by the developer being updated.
func (s *DeveloperService) EnsureEmailAvailable(ctx context.Context, email string) error {
	taken, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		return errs.NewConflictError("Email already exists.", true, nil)
	}
	return nil
}

// EnsureNoInfo fails with 409 when the developer already has an info record.
func (s *DeveloperService) EnsureNoInfo(ctx context.Context, developerID int64) error {
	found, err := s.repo.InfoExists(ctx, developerID)
	if err != nil {
		return err
	}
	if found {
		return errs.NewConflictError("Developer infos already exists.", true, nil)
	}
	return nil
}

func (s *DeveloperService) Create(ctx context.Context, payload *model.CreateDeveloperPayload) (*model.Developer, error) {
	logger := zerolog.Ctx(ctx)

	developer, err := s.repo.Create(ctx, payload)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create developer")
		return nil, err
	}

	logger.Info().
		Str("event", "developer_created").
		Int64("developer_id", developer.ID).
		Msg("Developer created successfully")

	// The developer is already stored, so a queue failure is only logged.
	if s.mailer != nil {
		if err := s.mailer.EnqueueWelcomeEmail(ctx, developer.ID, developer.Email, developer.Name); err != nil {
			logger.Warn().Err(err).Int64("developer_id", developer.ID).Msg("failed to enqueue welcome email")
		}
	}

	return developer, nil
}

func (s *DeveloperService) GetByID(ctx context.Context, id int64) (*model.DeveloperDetail, error) {
	detail, err := s.repo.GetByID(ctx, id)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("developer_id", id).Msg("failed to fetch developer")
		return nil, err
	}
	return detail, nil
}

func (s *DeveloperService) Update(ctx context.Context, payload *model.UpdateDeveloperPayload) (*model.Developer, error) {
	logger := zerolog.Ctx(ctx)

	developer, err := s.repo.Update(ctx, payload)
	if err != nil {
		logger.Error().Err(err).Int64("developer_id", payload.ID).Msg("failed to update developer")
		return nil, err
	}

	logger.Info().
		Str("event", "developer_updated").
		Int64("developer_id", developer.ID).
		Msg("Developer updated successfully")

	return developer, nil
}

func (s *DeveloperService) Delete(ctx context.Context, id int64) error {
	logger := zerolog.Ctx(ctx)

	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error().Err(err).Int64("developer_id", id).Msg("failed to delete developer")
		return err
	}

	logger.Info().
		Str("event", "developer_deleted").
		Int64("developer_id", id).
		Msg("Developer deleted successfully")

	return nil
}

// CreateInfo stores the developer's info record. An unknown OS is rejected
// with the list of accepted options.
func (s *DeveloperService) CreateInfo(ctx context.Context, payload *model.CreateDeveloperInfoPayload) (*model.DeveloperInfo, error) {
	if !model.IsValidOS(payload.PreferredOS) {
		return nil, errs.NewUnsupportedOptionError("Invalid OS option.", model.OSOptions)
	}

	info, err := s.repo.CreateInfo(ctx, payload)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("developer_id", payload.DeveloperID).Msg("failed to create developer info")
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "developer_info_created").
		Int64("developer_id", info.DeveloperID).
		Str("preferred_os", info.PreferredOS).
		Msg("Developer info created successfully")

	return info, nil
}
