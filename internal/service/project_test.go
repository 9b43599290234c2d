package service

import (
	"context"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/deppfellow/devprojects/internal/model"
	"github.com/deppfellow/devprojects/internal/repository"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var projectTechnologyViewColumns = []string{
	"technology_id", "technology_name", "project_id", "project_name", "project_description",
	"project_estimated_time", "project_repository", "project_start_date", "project_end_date",
}

func newProjectService(mock pgxmock.PgxPoolIface, now time.Time) *ProjectService {
	svc := NewProjectService(repository.NewProjectRepository(mock))
	svc.now = func() time.Time { return now }
	return svc
}

func TestProjectService_EnsureExists(t *testing.T) {
	mock := newMock(t)
	svc := newProjectService(mock, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("FROM projects WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(existsRows(false))

	requireHTTPError(t, svc.EnsureExists(context.Background(), 7), http.StatusNotFound, "Project not found.")
}

func TestProjectService_AddTechnology(t *testing.T) {
	now := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	start := date(2023, time.January, 10)

	mock := newMock(t)
	svc := newProjectService(mock, now)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE project_id = $1 AND technology_id = $2")).
		WithArgs(int64(1), int64(3)).
		WillReturnRows(existsRows(false))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO projects_technologies")).
		WithArgs(now, int64(1), int64(3)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT 1")).
		WithArgs(int64(1), int64(3)).
		WillReturnRows(pgxmock.NewRows(projectTechnologyViewColumns).
			AddRow(int64(3), "React", int64(1), "API", "CRUD", "2 weeks", "repo", start, pgtype.Date{}))

	view, err := svc.AddTechnology(context.Background(), &model.AddProjectTechnologyPayload{
		ProjectID:    1,
		Name:         "React",
		TechnologyID: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "React", view.TechnologyName)
	assert.Equal(t, int64(1), view.ProjectID)
	assert.False(t, view.ProjectEndDate.Valid)
}

func TestProjectService_AddTechnology_Duplicate(t *testing.T) {
	mock := newMock(t)
	svc := newProjectService(mock, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("WHERE project_id = $1 AND technology_id = $2")).
		WithArgs(int64(1), int64(3)).
		WillReturnRows(existsRows(true))

	_, err := svc.AddTechnology(context.Background(), &model.AddProjectTechnologyPayload{ProjectID: 1, TechnologyID: 3})
	requireHTTPError(t, err, http.StatusConflict, "This technology is already associated with the project")
}

func TestProjectService_RemoveTechnology(t *testing.T) {
	t.Run("attached somewhere", func(t *testing.T) {
		mock := newMock(t)
		svc := newProjectService(mock, time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("FROM projects_technologies WHERE technology_id = $1")).
			WithArgs(int64(3)).
			WillReturnRows(existsRows(true))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM projects_technologies WHERE project_id = $1 AND technology_id = $2")).
			WithArgs(int64(2), int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := svc.RemoveTechnology(context.Background(), &model.RemoveProjectTechnologyPayload{ProjectID: 2, Name: "React", TechnologyID: 3})
		assert.NoError(t, err)
	})

	t.Run("attached nowhere", func(t *testing.T) {
		mock := newMock(t)
		svc := newProjectService(mock, time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("FROM projects_technologies WHERE technology_id = $1")).
			WithArgs(int64(3)).
			WillReturnRows(existsRows(false))

		err := svc.RemoveTechnology(context.Background(), &model.RemoveProjectTechnologyPayload{ProjectID: 2, Name: "React", TechnologyID: 3})
		requireHTTPError(t, err, http.StatusBadRequest, "Technology not related to the project.")
	})
}

func TestProjectService_Delete(t *testing.T) {
	mock := newMock(t)
	svc := newProjectService(mock, time.Now())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM projects WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, svc.Delete(context.Background(), 4))
}
