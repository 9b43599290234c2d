package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/deppfellow/devprojects/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var projectRowColumns = []string{
	"id", "name", "description", "estimated_time", "repository", "start_date", "end_date", "developer_id",
}

func TestProjectRepository_Create_WithoutEndDate(t *testing.T) {
	mock := newMock(t)
	repo := NewProjectRepository(mock)

	start := date(2023, time.January, 10)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO projects")).
		WithArgs("API", "CRUD", "2 weeks", "https://github.com/ana/api", pgxmock.AnyArg(), pgtype.Date{}, int64(1)).
		WillReturnRows(pgxmock.NewRows(projectRowColumns).
			AddRow(int64(3), "API", "CRUD", "2 weeks", "https://github.com/ana/api", start, pgtype.Date{}, int64(1)))

	project, err := repo.Create(context.Background(), &model.CreateProjectPayload{
		Name:          "API",
		Description:   "CRUD",
		EstimatedTime: "2 weeks",
		Repository:    "https://github.com/ana/api",
		StartDate:     start,
		DeveloperID:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), project.ID)
	assert.False(t, project.EndDate.Valid)
}

func TestProjectRepository_GetByID(t *testing.T) {
	columns := []string{
		"project_id", "project_name", "project_description", "project_estimated_time",
		"project_repository", "project_start_date", "project_end_date", "project_developer_id",
		"technology_id", "technology_name",
	}
	start := date(2023, time.January, 10)

	t.Run("with technologies", func(t *testing.T) {
		mock := newMock(t)
		repo := NewProjectRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN technologies t ON t.id = pt.technology_id")).
			WithArgs(int64(3)).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(int64(3), "API", "CRUD", "2 weeks", "repo", start, pgtype.Date{}, int64(1), ptr(int64(3)), ptr("React")).
				AddRow(int64(3), "API", "CRUD", "2 weeks", "repo", start, pgtype.Date{}, int64(1), ptr(int64(4)), ptr("Express.js")))

		rows, err := repo.GetByID(context.Background(), 3)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "React", *rows[0].TechnologyName)
		assert.Equal(t, int64(4), *rows[1].TechnologyID)
	})

	t.Run("without technologies", func(t *testing.T) {
		mock := newMock(t)
		repo := NewProjectRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta("FROM")).
			WithArgs(int64(3)).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(int64(3), "API", "CRUD", "2 weeks", "repo", start, pgtype.Date{}, int64(1), nil, nil))

		rows, err := repo.GetByID(context.Background(), 3)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Nil(t, rows[0].TechnologyID)
		assert.Nil(t, rows[0].TechnologyName)
	})

	t.Run("missing", func(t *testing.T) {
		mock := newMock(t)
		repo := NewProjectRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta("FROM")).
			WithArgs(int64(8)).
			WillReturnRows(pgxmock.NewRows(columns))

		_, err := repo.GetByID(context.Background(), 8)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
		assert.Contains(t, err.Error(), "table:projects")
	})
}

func TestProjectRepository_Update(t *testing.T) {
	mock := newMock(t)
	repo := NewProjectRepository(mock)

	start := date(2023, time.January, 10)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE projects SET name = $1, developer_id = $2 WHERE id = $3")).
		WithArgs("API v2", int64(2), int64(3)).
		WillReturnRows(pgxmock.NewRows(projectRowColumns).
			AddRow(int64(3), "API v2", "CRUD", "2 weeks", "repo", start, pgtype.Date{}, int64(2)))

	project, err := repo.Update(context.Background(), &model.UpdateProjectPayload{
		ID:          3,
		Name:        ptr("API v2"),
		DeveloperID: ptr(int64(2)),
	})
	require.NoError(t, err)
	assert.Equal(t, "API v2", project.Name)
	assert.Equal(t, int64(2), project.DeveloperID)
}

func TestProjectRepository_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewProjectRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM projects WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), 3))
}

func TestProjectRepository_TechnologyChecks(t *testing.T) {
	mock := newMock(t)
	repo := NewProjectRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE project_id = $1 AND technology_id = $2")).
		WithArgs(int64(3), int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("FROM projects_technologies WHERE technology_id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	attached, err := repo.HasTechnology(context.Background(), 3, 3)
	require.NoError(t, err)
	assert.True(t, attached)

	inUse, err := repo.TechnologyInUse(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, inUse)
}

func TestProjectRepository_AddTechnologyAndView(t *testing.T) {
	mock := newMock(t)
	repo := NewProjectRepository(mock)

	addedIn := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	start := date(2023, time.January, 10)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO projects_technologies (added_in, project_id, technology_id)")).
		WithArgs(addedIn, int64(3), int64(3)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(regexp.QuoteMeta("JOIN technologies t ON t.id = pt.technology_id")).
		WithArgs(int64(3), int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{
			"technology_id", "technology_name", "project_id", "project_name", "project_description",
			"project_estimated_time", "project_repository", "project_start_date", "project_end_date",
		}).AddRow(int64(3), "React", int64(3), "API", "CRUD", "2 weeks", "repo", start, pgtype.Date{}))

	require.NoError(t, repo.AddTechnology(context.Background(), 3, 3, addedIn))

	view, err := repo.GetTechnologyView(context.Background(), 3, 3)
	require.NoError(t, err)
	assert.Equal(t, "React", view.TechnologyName)
	assert.Equal(t, "API", view.ProjectName)
}

func TestProjectRepository_RemoveTechnology(t *testing.T) {
	mock := newMock(t)
	repo := NewProjectRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM projects_technologies WHERE project_id = $1 AND technology_id = $2")).
		WithArgs(int64(3), int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.NoError(t, repo.RemoveTechnology(context.Background(), 3, 3))
}
