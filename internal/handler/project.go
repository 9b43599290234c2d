package handler

import (
	"context"
	"net/http"

	"github.com/deppfellow/devprojects/internal/gate"
	"github.com/deppfellow/devprojects/internal/model"
	"github.com/deppfellow/devprojects/internal/server"
	"github.com/deppfellow/devprojects/internal/service"
	"github.com/labstack/echo/v4"
)

type ProjectHandler struct {
	Handler
	projectService    *service.ProjectService
	developerService  *service.DeveloperService
	technologyService *service.TechnologyService
}

func NewProjectHandler(
	s *server.Server,
	projectService *service.ProjectService,
	developerService *service.DeveloperService,
	technologyService *service.TechnologyService,
) *ProjectHandler {
	return &ProjectHandler{
		Handler:           NewHandler(s),
		projectService:    projectService,
		developerService:  developerService,
		technologyService: technologyService,
	}
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateProjectPayload) (*model.Project, error) {
			return h.projectService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.CreateProjectPayload{},
		func(ctx context.Context, payload *model.CreateProjectPayload) error {
			return h.developerService.EnsureExists(ctx, payload.DeveloperID)
		},
	)(c)
}

func (h *ProjectHandler) GetProjectByID(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.GetProjectByIDPayload) ([]model.ProjectTechnologyRow, error) {
			return h.projectService.GetByID(c.Request().Context(), payload.ID)
		},
		http.StatusOK,
		&model.GetProjectByIDPayload{},
		func(ctx context.Context, payload *model.GetProjectByIDPayload) error {
			return h.projectService.EnsureExists(ctx, payload.ID)
		},
	)(c)
}

func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.UpdateProjectPayload) (*model.Project, error) {
			return h.projectService.Update(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.UpdateProjectPayload{},
		func(ctx context.Context, payload *model.UpdateProjectPayload) error {
			return h.projectService.EnsureExists(ctx, payload.ID)
		},
		gate.When(
			func(payload *model.UpdateProjectPayload) bool { return payload.DeveloperID != nil },
			func(ctx context.Context, payload *model.UpdateProjectPayload) error {
				return h.developerService.EnsureExists(ctx, *payload.DeveloperID)
			},
		),
	)(c)
}

func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *model.DeleteProjectPayload) error {
			return h.projectService.Delete(c.Request().Context(), payload.ID)
		},
		http.StatusNoContent,
		&model.DeleteProjectPayload{},
		func(ctx context.Context, payload *model.DeleteProjectPayload) error {
			return h.projectService.EnsureExists(ctx, payload.ID)
		},
	)(c)
}

func (h *ProjectHandler) AddProjectTechnology(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.AddProjectTechnologyPayload) (*model.ProjectTechnologyView, error) {
			return h.projectService.AddTechnology(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.AddProjectTechnologyPayload{},
		func(ctx context.Context, payload *model.AddProjectTechnologyPayload) error {
			return h.projectService.EnsureExists(ctx, payload.ProjectID)
		},
		func(ctx context.Context, payload *model.AddProjectTechnologyPayload) (err error) {
			payload.TechnologyID, err = h.technologyService.Resolve(ctx, payload.Name)
			return err
		},
	)(c)
}

func (h *ProjectHandler) RemoveProjectTechnology(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *model.RemoveProjectTechnologyPayload) error {
			return h.projectService.RemoveTechnology(c.Request().Context(), payload)
		},
		http.StatusNoContent,
		&model.RemoveProjectTechnologyPayload{},
		func(ctx context.Context, payload *model.RemoveProjectTechnologyPayload) error {
			return h.projectService.EnsureExists(ctx, payload.ProjectID)
		},
		func(ctx context.Context, payload *model.RemoveProjectTechnologyPayload) (err error) {
			payload.TechnologyID, err = h.technologyService.Resolve(ctx, payload.Name)
			return err
		},
	)(c)
}
