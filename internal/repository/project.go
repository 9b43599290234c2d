package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/devprojects/internal/model"
	"github.com/jackc/pgx/v5"
)

const projectColumns = "id, name, description, estimated_time, repository, start_date, end_date, developer_id"

type ProjectRepository struct {
	db DBTX
}

func NewProjectRepository(db DBTX) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Exists(ctx context.Context, id int64) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check project existence for project_id=%d: %w", id, err)
	}
	return found, nil
}

// Create inserts the project. An absent endDate is stored as NULL.
func (r *ProjectRepository) Create(ctx context.Context, payload *model.CreateProjectPayload) (*model.Project, error) {
	stmt := `
		INSERT INTO projects (name, description, estimated_time, repository, start_date, end_date, developer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + projectColumns

	rows, err := r.db.Query(ctx, stmt,
		payload.Name,
		payload.Description,
		payload.EstimatedTime,
		payload.Repository,
		payload.StartDate,
		payload.EndDate,
		payload.DeveloperID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to execute create project query for developer_id=%d: %w", payload.DeveloperID, err)
	}

	project, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Project])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:projects: %w", err)
	}

	return &project, nil
}

// GetByID returns one row per technology attached to the project, or a
// single row with null technology fields when none is.
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) ([]model.ProjectTechnologyRow, error) {
	stmt := `
		SELECT
			p.id AS project_id,
			p.name AS project_name,
			p.description AS project_description,
			p.estimated_time AS project_estimated_time,
			p.repository AS project_repository,
			p.start_date AS project_start_date,
			p.end_date AS project_end_date,
			p.developer_id AS project_developer_id,
			pt.technology_id AS technology_id,
			t.name AS technology_name
		FROM
			projects p
			LEFT JOIN projects_technologies pt ON pt.project_id = p.id
			LEFT JOIN technologies t ON t.id = pt.technology_id
		WHERE
			p.id = $1
		ORDER BY
			pt.id
	`

	rows, err := r.db.Query(ctx, stmt, id)
	if err != nil {
		return nil, fmt.Errorf("failed to execute get project query for project_id=%d: %w", id, err)
	}

	projectRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ProjectTechnologyRow])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:projects for project_id=%d: %w", id, err)
	}

	if len(projectRows) == 0 {
		return nil, fmt.Errorf("failed to collect rows from table:projects for project_id=%d: %w", id, pgx.ErrNoRows)
	}

	return projectRows, nil
}

func (r *ProjectRepository) Update(ctx context.Context, payload *model.UpdateProjectPayload) (*model.Project, error) {
	set := &setClause{}
	setIfPresent(set, "name", payload.Name)
	setIfPresent(set, "description", payload.Description)
	setIfPresent(set, "estimated_time", payload.EstimatedTime)
	setIfPresent(set, "repository", payload.Repository)
	setIfPresent(set, "start_date", payload.StartDate)
	setIfPresent(set, "end_date", payload.EndDate)
	setIfPresent(set, "developer_id", payload.DeveloperID)

	if set.empty() {
		return nil, fmt.Errorf("no fields to update for project_id=%d", payload.ID)
	}

	stmt, args := set.statement("projects", payload.ID, projectColumns)

	rows, err := r.db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute update project query for project_id=%d: %w", payload.ID, err)
	}

	project, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Project])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:projects for project_id=%d: %w", payload.ID, err)
	}

	return &project, nil
}

// Delete removes the project together with its technology associations.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete project_id=%d: %w", id, err)
	}
	return nil
}

// HasTechnology reports whether the technology is attached to the project.
func (r *ProjectRepository) HasTechnology(ctx context.Context, projectID, technologyID int64) (bool, error) {
	found, err := exists(ctx, r.db,
		`SELECT EXISTS (SELECT 1 FROM projects_technologies WHERE project_id = $1 AND technology_id = $2)`,
		projectID, technologyID)
	if err != nil {
		return false, fmt.Errorf("failed to check technology_id=%d on project_id=%d: %w", technologyID, projectID, err)
	}
	return found, nil
}

// TechnologyInUse reports whether the technology is attached to any project.
func (r *ProjectRepository) TechnologyInUse(ctx context.Context, technologyID int64) (bool, error) {
	found, err := exists(ctx, r.db,
		`SELECT EXISTS (SELECT 1 FROM projects_technologies WHERE technology_id = $1)`,
		technologyID)
	if err != nil {
		return false, fmt.Errorf("failed to check usage of technology_id=%d: %w", technologyID, err)
	}
	return found, nil
}

func (r *ProjectRepository) AddTechnology(ctx context.Context, projectID, technologyID int64, addedIn time.Time) error {
	stmt := `INSERT INTO projects_technologies (added_in, project_id, technology_id) VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, stmt, addedIn, projectID, technologyID); err != nil {
		return fmt.Errorf("failed to add technology_id=%d to project_id=%d: %w", technologyID, projectID, err)
	}
	return nil
}

// GetTechnologyView returns the association joined with its technology and
// project.
func (r *ProjectRepository) GetTechnologyView(ctx context.Context, projectID, technologyID int64) (*model.ProjectTechnologyView, error) {
	stmt := `
		SELECT
			pt.technology_id AS technology_id,
			t.name AS technology_name,
			pt.project_id AS project_id,
			p.name AS project_name,
			p.description AS project_description,
			p.estimated_time AS project_estimated_time,
			p.repository AS project_repository,
			p.start_date AS project_start_date,
			p.end_date AS project_end_date
		FROM
			projects_technologies pt
			JOIN projects p ON p.id = pt.project_id
			JOIN technologies t ON t.id = pt.technology_id
		WHERE
			p.id = $1
			AND t.id = $2
		LIMIT 1
	`

	rows, err := r.db.Query(ctx, stmt, projectID, technologyID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute get project technology query for project_id=%d: %w", projectID, err)
	}

	view, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ProjectTechnologyView])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:projects_technologies for project_id=%d: %w", projectID, err)
	}

	return &view, nil
}

// RemoveTechnology detaches the technology from the project. Removing a
// pair that does not exist is not an error.
func (r *ProjectRepository) RemoveTechnology(ctx context.Context, projectID, technologyID int64) error {
	stmt := `DELETE FROM projects_technologies WHERE project_id = $1 AND technology_id = $2`

	if _, err := r.db.Exec(ctx, stmt, projectID, technologyID); err != nil {
		return fmt.Errorf("failed to remove technology_id=%d from project_id=%d: %w", technologyID, projectID, err)
	}
	return nil
}
