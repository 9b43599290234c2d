package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// StrictJSONSerializer is echo's JSON serializer with unknown body fields
// rejected. Request payloads list every field a client may write, so an
// unexpected key is a client error rather than something to ignore.
type StrictJSONSerializer struct {
	echo.DefaultJSONSerializer
}

// Deserialize decodes the request body into i, refusing unknown fields.
func (StrictJSONSerializer) Deserialize(c echo.Context, i any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(i)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("%s must be of type %v", typeErr.Field, typeErr.Type)).SetInternal(err)
	case errors.As(err, &syntaxErr):
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)).SetInternal(err)
	}

	return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
}
