// Package validation checks request shaped structs with go-playground
// validator and reports the first failure as an serrors.ErrValidation naming
// the offending field by its JSON path, e.g. meal_orders[1].quantity.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"hellofood/pkg/serrors"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once          //nolint: gochecknoglobals
	instance *validator.Validate //nolint: gochecknoglobals
)

// Validator returns the shared validator. Field names in errors are taken
// from json tags.
func Validator() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}

			return name
		})
	})

	return instance
}

// Struct validates s and converts the first failing field into a validation
// error.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]

		return serrors.With(serrors.ErrValidation, "%s %s", fieldPath(fe), message(fe))
	}

	return serrors.Wrap(serrors.ErrValidation, err, "invalid input")
}

// FromDecodeError converts a JSON decoding failure into a validation error
// naming the field when the decoder reports one.
func FromDecodeError(err error) error {
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}

		return serrors.With(serrors.ErrValidation, "%s must be of type %s", field, typeErr.Type.String())
	case errors.As(err, &syntaxErr):
		return serrors.With(serrors.ErrValidation, "malformed JSON at offset %d", syntaxErr.Offset)
	case errors.Is(err, io.EOF):
		return serrors.With(serrors.ErrValidation, "request body is empty")
	default:
		return serrors.Wrap(serrors.ErrValidation, err, "invalid request body")
	}
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}

	return ns
}

func message(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + param
	case "gte":
		return "must be greater than or equal to " + param
	case "lt":
		return "must be less than " + param
	case "lte":
		return "must be less than or equal to " + param
	case "min":
		if isNumber(fe.Kind()) {
			return "must be at least " + param
		}

		return "must contain at least " + param + " items"
	case "max":
		if isNumber(fe.Kind()) {
			return "must be at most " + param
		}

		return "must contain at most " + param + " items"
	case "email":
		return "must be a valid email"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	default:
		if param != "" {
			return fmt.Sprintf("failed on %q with parameter %q", fe.Tag(), param)
		}

		return fmt.Sprintf("failed on %q", fe.Tag())
	}
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
