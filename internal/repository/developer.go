package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/devprojects/internal/model"
	"github.com/jackc/pgx/v5"
)

const developerColumns = "id, name, email"

type DeveloperRepository struct {
	db DBTX
}

func NewDeveloperRepository(db DBTX) *DeveloperRepository {
	return &DeveloperRepository{db: db}
}

func (r *DeveloperRepository) Exists(ctx context.Context, id int64) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM developers WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check developer existence for developer_id=%d: %w", id, err)
	}
	return found, nil
}

func (r *DeveloperRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM developers WHERE email = $1)`, email)
	if err != nil {
		return false, fmt.Errorf("failed to check developer email: %w", err)
	}
	return found, nil
}

func (r *DeveloperRepository) InfoExists(ctx context.Context, developerID int64) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM developer_infos WHERE developer_id = $1)`, developerID)
	if err != nil {
		return false, fmt.Errorf("failed to check developer info for developer_id=%d: %w", developerID, err)
	}
	return found, nil
}

func (r *DeveloperRepository) Create(ctx context.Context, payload *model.CreateDeveloperPayload) (*model.Developer, error) {
	stmt := `INSERT INTO developers (name, email) VALUES ($1, $2) RETURNING ` + developerColumns

	rows, err := r.db.Query(ctx, stmt, payload.Name, payload.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to execute create developer query: %w", err)
	}

	developer, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Developer])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:developers: %w", err)
	}

	return &developer, nil
}

func (r *DeveloperRepository) GetByID(ctx context.Context, id int64) (*model.DeveloperDetail, error) {
	stmt := `
		SELECT
			d.id AS developer_id,
			d.name AS developer_name,
			d.email AS developer_email,
			di.developer_since AS developer_info_developer_since,
			di.preferred_os AS developer_info_preferred_os
		FROM
			developers d
			LEFT JOIN developer_infos di ON di.developer_id = d.id
		WHERE
			d.id = $1
	`

	rows, err := r.db.Query(ctx, stmt, id)
	if err != nil {
		return nil, fmt.Errorf("failed to execute get developer query for developer_id=%d: %w", id, err)
	}

	detail, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.DeveloperDetail])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:developers for developer_id=%d: %w", id, err)
	}

	return &detail, nil
}

func (r *DeveloperRepository) Update(ctx context.Context, payload *model.UpdateDeveloperPayload) (*model.Developer, error) {
	set := &setClause{}
	setIfPresent(set, "name", payload.Name)
	setIfPresent(set, "email", payload.Email)

	if set.empty() {
		return nil, fmt.Errorf("no fields to update for developer_id=%d", payload.ID)
	}

	stmt, args := set.statement("developers", payload.ID, developerColumns)

	rows, err := r.db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute update developer query for developer_id=%d: %w", payload.ID, err)
	}

	developer, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Developer])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:developers for developer_id=%d: %w", payload.ID, err)
	}

	return &developer, nil
}

// Delete removes the developer; its info and projects go with it.
func (r *DeveloperRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM developers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete developer_id=%d: %w", id, err)
	}
	return nil
}

func (r *DeveloperRepository) CreateInfo(ctx context.Context, payload *model.CreateDeveloperInfoPayload) (*model.DeveloperInfo, error) {
	stmt := `
		INSERT INTO developer_infos (developer_since, preferred_os, developer_id)
		VALUES ($1, $2, $3)
		RETURNING id, developer_since, preferred_os, developer_id
	`

	rows, err := r.db.Query(ctx, stmt, payload.DeveloperSince, payload.PreferredOS, payload.DeveloperID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute create developer info query for developer_id=%d: %w", payload.DeveloperID, err)
	}

	info, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.DeveloperInfo])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:developer_infos: %w", err)
	}

	return &info, nil
}
