// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or email formats) defined in struct tags
// and extracts validation errors into a format the client can
// understand
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgtype"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by the name the client sent them with.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		switch name {
		case "-":
			if param := field.Tag.Get("param"); param != "" {
				return param
			}
			return field.Name
		case "":
			return field.Name
		}
		return name
	})

	// An invalid (absent or null) date validates like a missing value.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		date, ok := field.Interface().(pgtype.Date)
		if !ok || !date.Valid {
			return nil
		}
		return date.Time
	}, pgtype.Date{})

	return v
}

// Struct validates s against its `validate` struct tags.
func Struct(s any) error {
	return validate.Struct(s)
}
