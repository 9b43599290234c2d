package service

import (
	"context"
	"time"

	"github.com/deppfellow/devprojects/internal/errs"
	"github.com/deppfellow/devprojects/internal/model"
	"github.com/deppfellow/devprojects/internal/repository"
	"github.com/rs/zerolog"
)

type ProjectService struct {
	repo *repository.ProjectRepository
	now  func() time.Time
}

func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo, now: time.Now}
}

// EnsureExists fails with 404 when no project has the given id.
func (s *ProjectService) EnsureExists(ctx context.Context, id int64) error {
	found, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewNotFoundError("Project not found.", true, nil)
	}
	return nil
}

func (s *ProjectService) Create(ctx context.Context, payload *model.CreateProjectPayload) (*model.Project, error) {
	logger := zerolog.Ctx(ctx)

	project, err := s.repo.Create(ctx, payload)
	if err != nil {
		logger.Error().Err(err).Int64("developer_id", payload.DeveloperID).Msg("failed to create project")
		return nil, err
	}

	logger.Info().
		Str("event", "project_created").
		Int64("project_id", project.ID).
		Int64("developer_id", project.DeveloperID).
		Msg("Project created successfully")

	return project, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id int64) ([]model.ProjectTechnologyRow, error) {
	rows, err := s.repo.GetByID(ctx, id)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("project_id", id).Msg("failed to fetch project")
		return nil, err
	}
	return rows, nil
}

func (s *ProjectService) Update(ctx context.Context, payload *model.UpdateProjectPayload) (*model.Project, error) {
	logger := zerolog.Ctx(ctx)

	project, err := s.repo.Update(ctx, payload)
	if err != nil {
		logger.Error().Err(err).Int64("project_id", payload.ID).Msg("failed to update project")
		return nil, err
	}

	logger.Info().
		Str("event", "project_updated").
		Int64("project_id", project.ID).
		Msg("Project updated successfully")

	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	logger := zerolog.Ctx(ctx)

	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error().Err(err).Int64("project_id", id).Msg("failed to delete project")
		return err
	}

	logger.Info().
		Str("event", "project_deleted").
		Int64("project_id", id).
		Msg("Project deleted successfully")

	return nil
}

// AddTechnology attaches an already resolved technology to the project and
// returns the joined association. The duplicate check and the insert are
// separate statements.
func (s *ProjectService) AddTechnology(ctx context.Context, payload *model.AddProjectTechnologyPayload) (*model.ProjectTechnologyView, error) {
	logger := zerolog.Ctx(ctx).With().
		Int64("project_id", payload.ProjectID).
		Int64("technology_id", payload.TechnologyID).
		Logger()

	attached, err := s.repo.HasTechnology(ctx, payload.ProjectID, payload.TechnologyID)
	if err != nil {
		return nil, err
	}
	if attached {
		return nil, errs.NewConflictError("This technology is already associated with the project", true, nil)
	}

	if err := s.repo.AddTechnology(ctx, payload.ProjectID, payload.TechnologyID, s.now()); err != nil {
		logger.Error().Err(err).Msg("failed to add technology to project")
		return nil, err
	}

	view, err := s.repo.GetTechnologyView(ctx, payload.ProjectID, payload.TechnologyID)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch project technology")
		return nil, err
	}

	logger.Info().
		Str("event", "project_technology_added").
		Str("technology_name", view.TechnologyName).
		Msg("Technology added to project")

	return view, nil
}

// RemoveTechnology detaches the technology from the project.
//
// It answers 400 only when the technology is attached to no project at
// all; removing a technology that is attached elsewhere but not to this
// project succeeds without deleting anything.
func (s *ProjectService) RemoveTechnology(ctx context.Context, payload *model.RemoveProjectTechnologyPayload) error {
	inUse, err := s.repo.TechnologyInUse(ctx, payload.TechnologyID)
	if err != nil {
		return err
	}
	if !inUse {
		return errs.NewBadRequestError("Technology not related to the project.", true, nil, nil, nil)
	}

	if err := s.repo.RemoveTechnology(ctx, payload.ProjectID, payload.TechnologyID); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Int64("project_id", payload.ProjectID).
			Int64("technology_id", payload.TechnologyID).
			Msg("failed to remove technology from project")
		return err
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "project_technology_removed").
		Int64("project_id", payload.ProjectID).
		Int64("technology_id", payload.TechnologyID).
		Msg("Technology removed from project")

	return nil
}
