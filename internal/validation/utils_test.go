package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/devprojects/internal/errs"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	ID    int64       `param:"id" json:"-" validate:"gt=0"`
	Name  string      `json:"name" validate:"required,max=5"`
	Email string      `json:"email" validate:"omitempty,email"`
	Since pgtype.Date `json:"since" validate:"required"`
}

func (p *samplePayload) Validate() error {
	return Struct(p)
}

type customPayload struct {
	Name *string `json:"name"`
}

func (p *customPayload) Validate() error {
	if p.Name == nil {
		return CustomValidationErrors{{Field: "body", Message: "must contain at least one of: name"}}
	}
	return nil
}

func newContext(method, body string) echo.Context {
	e := echo.New()
	e.JSONSerializer = StrictJSONSerializer{}

	req := httptest.NewRequest(method, "/samples/7", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("7")
	return c
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	return httpErr
}

func TestBindAndValidate_Success(t *testing.T) {
	c := newContext(http.MethodPost, `{"name":"Ana","email":"ana@mail.com","since":"2020-01-31"}`)

	payload := &samplePayload{}
	require.NoError(t, BindAndValidate(c, payload))

	assert.Equal(t, int64(7), payload.ID)
	assert.Equal(t, "Ana", payload.Name)
	assert.True(t, payload.Since.Valid)
	assert.Equal(t, 2020, payload.Since.Time.Year())
}

func TestBindAndValidate_FieldErrors(t *testing.T) {
	c := newContext(http.MethodPost, `{"name":"Too long","email":"nope"}`)

	httpErr := requireHTTPError(t, BindAndValidate(c, &samplePayload{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)

	fields := map[string]string{}
	for _, fe := range httpErr.Errors {
		fields[fe.Field] = fe.Error
	}
	assert.Equal(t, "must not exceed 5 characters", fields["name"])
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "is required", fields["since"])
}

func TestBindAndValidate_UnknownField(t *testing.T) {
	c := newContext(http.MethodPost, `{"name":"Ana","since":"2020-01-31","id":99}`)

	httpErr := requireHTTPError(t, BindAndValidate(c, &samplePayload{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Contains(t, httpErr.Message, `unknown field "id"`)
}

func TestBindAndValidate_WrongType(t *testing.T) {
	c := newContext(http.MethodPost, `{"name":42}`)

	httpErr := requireHTTPError(t, BindAndValidate(c, &samplePayload{}))
	assert.Equal(t, "name must be of type string", httpErr.Message)
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	c := newContext(http.MethodPost, `{"name":`)

	httpErr := requireHTTPError(t, BindAndValidate(c, &samplePayload{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	c := newContext(http.MethodPatch, `{}`)

	httpErr := requireHTTPError(t, BindAndValidate(c, &customPayload{}))
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "body", httpErr.Errors[0].Field)
}

func TestStruct_ParamFieldName(t *testing.T) {
	var fieldErrs []errs.FieldError
	_, fieldErrs = extractValidationError(Struct(&samplePayload{Name: "Ana", Since: pgtype.Date{Time: time.Now(), Valid: true}}))

	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "id", fieldErrs[0].Field)
	assert.Equal(t, "must be greater than 0", fieldErrs[0].Error)
}
