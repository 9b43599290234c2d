package service

import (
	"context"
	"errors"

	"github.com/deppfellow/devprojects/internal/errs"
	"github.com/deppfellow/devprojects/internal/model"
	"github.com/deppfellow/devprojects/internal/repository"
	"github.com/jackc/pgx/v5"
)

type TechnologyService struct {
	repo *repository.TechnologyRepository
}

func NewTechnologyService(repo *repository.TechnologyRepository) *TechnologyService {
	return &TechnologyService{repo: repo}
}

// Resolve maps a catalog name to its technology id. Unknown names fail
// with 400 and the list of supported technologies.
func (s *TechnologyService) Resolve(ctx context.Context, name string) (int64, error) {
	technology, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errs.NewUnsupportedOptionError("Technology not supported.", model.TechnologyOptions)
		}
		return 0, err
	}
	return technology.ID, nil
}

func (s *TechnologyService) List(ctx context.Context) ([]model.Technology, error) {
	return s.repo.List(ctx)
}
