package handler

import (
	"github.com/deppfellow/devprojects/internal/server"
	"github.com/deppfellow/devprojects/internal/service"
)

// Handlers groups all HTTP handlers for the router.
type Handlers struct {
	Health     *HealthHandler
	OpenAPI    *OpenAPIHandler
	Developer  *DeveloperHandler
	Project    *ProjectHandler
	Technology *TechnologyHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(s),
		OpenAPI:    NewOpenAPIHandler(s),
		Developer:  NewDeveloperHandler(s, services.Developer),
		Project:    NewProjectHandler(s, services.Project, services.Developer, services.Technology),
		Technology: NewTechnologyHandler(s, services.Technology),
	}
}
