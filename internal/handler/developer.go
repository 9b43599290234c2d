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

type DeveloperHandler struct {
	Handler
	developerService *service.DeveloperService
}

func NewDeveloperHandler(s *server.Server, developerService *service.DeveloperService) *DeveloperHandler {
	return &DeveloperHandler{
		Handler:          NewHandler(s),
		developerService: developerService,
	}
}

func (h *DeveloperHandler) CreateDeveloper(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateDeveloperPayload) (*model.Developer, error) {
			return h.developerService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.CreateDeveloperPayload{},
		func(ctx context.Context, payload *model.CreateDeveloperPayload) error {
			return h.developerService.EnsureEmailAvailable(ctx, payload.Email)
		},
	)(c)
}

func (h *DeveloperHandler) GetDeveloperByID(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.GetDeveloperByIDPayload) (*model.DeveloperDetail, error) {
			return h.developerService.GetByID(c.Request().Context(), payload.ID)
		},
		http.StatusOK,
		&model.GetDeveloperByIDPayload{},
		func(ctx context.Context, payload *model.GetDeveloperByIDPayload) error {
			return h.developerService.EnsureExists(ctx, payload.ID)
		},
	)(c)
}

func (h *DeveloperHandler) UpdateDeveloper(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.UpdateDeveloperPayload) (*model.Developer, error) {
			return h.developerService.Update(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.UpdateDeveloperPayload{},
		func(ctx context.Context, payload *model.UpdateDeveloperPayload) error {
			return h.developerService.EnsureExists(ctx, payload.ID)
		},
		gate.When(
			func(payload *model.UpdateDeveloperPayload) bool { return payload.Email != nil },
			func(ctx context.Context, payload *model.UpdateDeveloperPayload) error {
				return h.developerService.EnsureEmailAvailable(ctx, *payload.Email)
			},
		),
	)(c)
}

func (h *DeveloperHandler) DeleteDeveloper(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *model.DeleteDeveloperPayload) error {
			return h.developerService.Delete(c.Request().Context(), payload.ID)
		},
		http.StatusNoContent,
		&model.DeleteDeveloperPayload{},
		func(ctx context.Context, payload *model.DeleteDeveloperPayload) error {
			return h.developerService.EnsureExists(ctx, payload.ID)
		},
	)(c)
}

func (h *DeveloperHandler) CreateDeveloperInfo(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateDeveloperInfoPayload) (*model.DeveloperInfo, error) {
			return h.developerService.CreateInfo(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.CreateDeveloperInfoPayload{},
		func(ctx context.Context, payload *model.CreateDeveloperInfoPayload) error {
			return h.developerService.EnsureExists(ctx, payload.DeveloperID)
		},
		func(ctx context.Context, payload *model.CreateDeveloperInfoPayload) error {
			return h.developerService.EnsureNoInfo(ctx, payload.DeveloperID)
		},
	)(c)
}
