package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTechnologyRepository_FindByName(t *testing.T) {
	mock := newMock(t)
	repo := NewTechnologyRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM technologies WHERE name = $1")).
		WithArgs("React").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(int64(3), "React"))

	technology, err := repo.FindByName(context.Background(), "React")
	require.NoError(t, err)
	assert.Equal(t, int64(3), technology.ID)
}

func TestTechnologyRepository_FindByName_Unknown(t *testing.T) {
	mock := newMock(t)
	repo := NewTechnologyRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM technologies WHERE name = $1")).
		WithArgs("Rust").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

	_, err := repo.FindByName(context.Background(), "Rust")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestTechnologyRepository_List(t *testing.T) {
	mock := newMock(t)
	repo := NewTechnologyRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM technologies ORDER BY id")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "JavaScript").
			AddRow(int64(2), "Python"))

	technologies, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, technologies, 2)
	assert.Equal(t, "Python", technologies[1].Name)
}
