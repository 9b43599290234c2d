// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/devprojects/internal/handler"
	"github.com/deppfellow/devprojects/internal/middleware"
	"github.com/deppfellow/devprojects/internal/server"
	"github.com/deppfellow/devprojects/internal/service"
	"github.com/deppfellow/devprojects/internal/validation"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance with the global middleware chain, the
// system routes and the API routes.
func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.JSONSerializer = validation.StrictJSONSerializer{}
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request id and New Relic transaction must exist
	// before the context logger is built from them.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	if middlewares.RateLimit.Enabled() {
		router.Use(middlewares.RateLimit.Limit())
	}

	registerSystemRoutes(router, h)
	registerAPIRoutes(router, h, middlewares)

	s.Logger.Info().
		Bool("auth_enabled", services.Auth.Enabled()).
		Bool("rate_limit_enabled", middlewares.RateLimit.Enabled()).
		Msg("router initialized")

	return router
}

// registerAPIRoutes maps the developer, project and technology endpoints.
// Mutating routes go through RequireAuth, which lets everything through
// when no Clerk key is configured.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	auth := m.Auth.RequireAuth

	developers := r.Group("/developers")
	developers.POST("", h.Developer.CreateDeveloper, auth)
	developers.GET("/:id", h.Developer.GetDeveloperByID)
	developers.PATCH("/:id", h.Developer.UpdateDeveloper, auth)
	developers.DELETE("/:id", h.Developer.DeleteDeveloper, auth)
	developers.POST("/:id/infos", h.Developer.CreateDeveloperInfo, auth)

	projects := r.Group("/projects")
	projects.POST("", h.Project.CreateProject, auth)
	projects.GET("/:id", h.Project.GetProjectByID)
	projects.PATCH("/:id", h.Project.UpdateProject, auth)
	projects.DELETE("/:id", h.Project.DeleteProject, auth)
	projects.POST("/:id/technologies", h.Project.AddProjectTechnology, auth)
	projects.DELETE("/:id/technologies/:name", h.Project.RemoveProjectTechnology, auth)

	r.GET("/technologies", h.Technology.ListTechnologies)
}
