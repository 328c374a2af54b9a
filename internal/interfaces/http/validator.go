package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected field of a request payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldTypeError is returned while decoding when a known key holds the wrong
// JSON type.
type fieldTypeError struct {
	Field string
	Err   error
}

func (e *fieldTypeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *fieldTypeError) Unwrap() error {
	return e.Err
}

// decodeField unmarshals raw[key] into dst. Keys are matched exactly; a
// missing key leaves dst untouched.
func decodeField(raw map[string]json.RawMessage, key string, dst any) error {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return &fieldTypeError{Field: key, Err: err}
	}
	return nil
}

// classifyBindError maps a ShouldBindJSON error to a status code and the
// details to show the caller. Shape problems are 422, unreadable bodies 400.
func classifyBindError(err error) (int, string, []FieldError) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{Field: fe.Field(), Message: validationMessage(fe)})
		}
		return http.StatusUnprocessableEntity, "validation failed", details
	}

	var fte *fieldTypeError
	if errors.As(err, &fte) {
		return http.StatusUnprocessableEntity, "validation failed", []FieldError{
			{Field: fte.Field, Message: "must be a string"},
		}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return http.StatusUnprocessableEntity, "request body must be a JSON object", nil
	}

	return http.StatusBadRequest, "invalid JSON body", nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
