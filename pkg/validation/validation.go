package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError is one field-level validation failure returned to callers.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

// ValidateStruct runs the struct's validate tags and translates
// failures into field-level messages. Returns nil when valid.
func ValidateStruct(s interface{}) []*FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs []*FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		e := &FieldError{Field: fe.Field(), Tag: fe.Tag()}
		switch fe.Tag() {
		case "required":
			e.Msg = fmt.Sprintf("field '%s' is required", e.Field)
		case "min":
			e.Msg = fmt.Sprintf("field '%s' must have at least %s characters/items", e.Field, fe.Param())
		case "max":
			e.Msg = fmt.Sprintf("field '%s' must have at most %s characters/items", e.Field, fe.Param())
		case "email":
			e.Msg = fmt.Sprintf("field '%s' must be a valid email", e.Field)
		case "datetime":
			e.Msg = fmt.Sprintf("field '%s' must match format %s", e.Field, fe.Param())
		case "oneof":
			e.Msg = fmt.Sprintf("field '%s' must be one of: %s", e.Field, fe.Param())
		default:
			e.Msg = fmt.Sprintf("field '%s' failed validation for tag '%s'", e.Field, e.Tag)
		}
		errs = append(errs, e)
	}
	return errs
}
