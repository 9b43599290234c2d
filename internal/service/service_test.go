package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/devprojects/internal/errs"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func date(year int, month time.Month, day int) pgtype.Date {
	return pgtype.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

func ptr[T any](v T) *T {
	return &v
}

func existsRows(found bool) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"exists"}).AddRow(found)
}

func requireHTTPError(t *testing.T, err error, status int, message string) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, message, httpErr.Message)
	return httpErr
}

type fakeMailer struct {
	calls []string
	err   error
}

func (f *fakeMailer) EnqueueWelcomeEmail(_ context.Context, _ int64, to, _ string) error {
	f.calls = append(f.calls, to)
	return f.err
}
