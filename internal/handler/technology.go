package handler

import (
	"net/http"

	"github.com/deppfellow/devprojects/internal/model"
	"github.com/deppfellow/devprojects/internal/server"
	"github.com/deppfellow/devprojects/internal/service"
	"github.com/labstack/echo/v4"
)

type TechnologyHandler struct {
	Handler
	technologyService *service.TechnologyService
}

func NewTechnologyHandler(s *server.Server, technologyService *service.TechnologyService) *TechnologyHandler {
	return &TechnologyHandler{
		Handler:           NewHandler(s),
		technologyService: technologyService,
	}
}

// ListTechnologies returns the technology catalog.
func (h *TechnologyHandler) ListTechnologies(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.ListTechnologiesPayload) ([]model.Technology, error) {
			return h.technologyService.List(c.Request().Context())
		},
		http.StatusOK,
		&model.ListTechnologiesPayload{},
	)(c)
}
