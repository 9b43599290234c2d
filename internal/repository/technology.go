package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/devprojects/internal/model"
	"github.com/jackc/pgx/v5"
)

type TechnologyRepository struct {
	db DBTX
}

func NewTechnologyRepository(db DBTX) *TechnologyRepository {
	return &TechnologyRepository{db: db}
}

// FindByName looks a technology up by its exact catalog name.
func (r *TechnologyRepository) FindByName(ctx context.Context, name string) (*model.Technology, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM technologies WHERE name = $1`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to execute find technology query: %w", err)
	}

	technology, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Technology])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:technologies: %w", err)
	}

	return &technology, nil
}

func (r *TechnologyRepository) List(ctx context.Context) ([]model.Technology, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM technologies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list technologies query: %w", err)
	}

	technologies, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Technology])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:technologies: %w", err)
	}

	return technologies, nil
}
