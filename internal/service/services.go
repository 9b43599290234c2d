// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data. Services also provide the gate checks routes run
// before their handlers.
package service

import (
	"github.com/deppfellow/devprojects/internal/repository"
	"github.com/deppfellow/devprojects/internal/server"
)

type Services struct {
	Auth       *AuthService
	Developer  *DeveloperService
	Project    *ProjectService
	Technology *TechnologyService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s.Config.Auth)

	// A nil *job.JobService must stay a nil interface.
	var mailer WelcomeMailer
	if s.Job != nil {
		mailer = s.Job
	}

	return &Services{
		Auth:       authService,
		Developer:  NewDeveloperService(repos.Developer, mailer),
		Project:    NewProjectService(repos.Project),
		Technology: NewTechnologyService(repos.Technology),
	}, nil
}
