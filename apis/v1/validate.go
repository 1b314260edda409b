package v1

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// report fields by their wire names
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// FieldViolation describes why a single request field was rejected.
type FieldViolation struct {
	Field       string
	Description string
}

// ValidationError lists every rejected field of a request.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Description)
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

func check(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range fieldErrors {
		out.Violations = append(out.Violations, FieldViolation{
			Field:       fe.Field(),
			Description: describe(fe),
		})
	}

	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "failed " + fe.Tag() + " check"
	}
}

func (r *ListTermsRequest) Validate() error { return check(r) }
func (r *GetTermRequest) Validate() error { return check(r) }
func (r *CreateTermRequest) Validate() error { return check(r) }
func (r *UpdateTermRequest) Validate() error { return check(r) }
func (r *DeleteTermRequest) Validate() error { return check(r) }
func (r *CreateRelationRequest) Validate() error { return check(r) }
func (r *ListTermRelationsRequest) Validate() error { return check(r) }
func (r *DeleteRelationRequest) Validate() error { return check(r) }
