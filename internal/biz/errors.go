package biz

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Custom errors
var (
	ErrNotFound      = errors.New("not found")
	ErrMovieNotFound = errors.New("movie not found")
	ErrInvalidStar   = errors.New("invalid rating star")
	ErrCycleDetected = errors.New("review tree contains a cycle")
	ErrDepthExceeded = errors.New("review tree is too deep")
	ErrConflict      = errors.New("conflict")
)

// FieldError is a single rejected input field
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError lists every rejected field of a payload
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// OrNil returns nil when no field was rejected.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return v
}

var validate = newValidator()

// validateStruct runs struct tag validation and collects failures into ve.
func validateStruct(ve *ValidationError, s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate payload: %w", err)
	}
	for _, fe := range verrs {
		ve.Add(fe.Field(), describeTag(fe))
	}
	return nil
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "max":
		return fmt.Sprintf("ensure this field has no more than %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("ensure this value is greater than %s", fe.Param())
	case "slug":
		return "enter a valid slug of letters, numbers, underscores or hyphens"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
