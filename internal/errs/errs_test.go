package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"unauthorized", NewUnauthorizedError("no", false), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("no", false), http.StatusForbidden, "FORBIDDEN"},
		{"bad request", NewBadRequestError("bad", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("Developer not found.", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", NewConflictError("Email already exists.", false, nil), http.StatusConflict, "CONFLICT"},
		{"too many requests", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestNewBadRequestError_CustomCode(t *testing.T) {
	code := "DEVELOPER_REQUIRED"
	err := NewBadRequestError("The Developer is required", true, &code, []FieldError{{Field: "developerId", Error: "is required"}}, nil)

	assert.Equal(t, "DEVELOPER_REQUIRED", err.Code)
	assert.True(t, err.Override)
	assert.Len(t, err.Errors, 1)
}

func TestNewUnsupportedOptionError(t *testing.T) {
	err := NewUnsupportedOptionError("Invalid OS option.", []string{"Windows", "Linux", "MacOS"})

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Invalid OS option.", err.Message)
	assert.Equal(t, []string{"Windows", "Linux", "MacOS"}, err.Options)
}

func TestHTTPError_IsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("gate: %w", NewConflictError("Email already exists.", false, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, "Email already exists.", httpErr.Error())
}

func TestHTTPError_WithMessage(t *testing.T) {
	original := NewUnsupportedOptionError("Technology not supported.", []string{"React"})
	copied := original.WithMessage("other")

	assert.Equal(t, "Technology not supported.", original.Message)
	assert.Equal(t, "other", copied.Message)
	assert.Equal(t, original.Options, copied.Options)
	assert.Equal(t, original.Status, copied.Status)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "CONFLICT", MakeUpperCaseWithUnderscores("Conflict"))
}
