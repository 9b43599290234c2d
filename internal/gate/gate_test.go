package gate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type request struct {
	Email *string
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	var calls []string
	errConflict := errors.New("conflict")

	checks := []Check[*request]{
		func(ctx context.Context, req *request) error {
			calls = append(calls, "exists")
			return nil
		},
		func(ctx context.Context, req *request) error {
			calls = append(calls, "unique")
			return errConflict
		},
		func(ctx context.Context, req *request) error {
			calls = append(calls, "never")
			return nil
		},
	}

	err := Run(context.Background(), &request{}, checks...)

	assert.ErrorIs(t, err, errConflict)
	assert.Equal(t, []string{"exists", "unique"}, calls)
}

func TestRun_NoChecks(t *testing.T) {
	assert.NoError(t, Run[*request](context.Background(), &request{}))
}

func TestWhen(t *testing.T) {
	errTaken := errors.New("taken")
	check := When(
		func(req *request) bool { return req.Email != nil },
		func(ctx context.Context, req *request) error { return errTaken },
	)

	email := "ana@mail.com"
	assert.NoError(t, check(context.Background(), &request{}))
	assert.ErrorIs(t, check(context.Background(), &request{Email: &email}), errTaken)
}
