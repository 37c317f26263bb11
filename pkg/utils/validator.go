package util

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"qr-attendance/models"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("role", validateRole)
}

// validateRole accepts a role name in any case; services store it lowercased.
func validateRole(fl validator.FieldLevel) bool {
	return models.Role(strings.ToLower(strings.TrimSpace(fl.Field().String()))).Valid()
}

// ValidateStruct returns one FieldError per failed constraint, or nil.
func ValidateStruct(s interface{}) []models.FieldError {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []models.FieldError{{Msg: err.Error()}}
	}

	var errors []models.FieldError
	for _, fe := range validationErrors {
		element := models.FieldError{Field: fe.Field(), Tag: fe.Tag()}

		switch fe.Tag() {
		case "required":
			element.Msg = fmt.Sprintf("Field '%s' is required.", element.Field)
		case "min":
			element.Msg = fmt.Sprintf("Field '%s' must be at least %s characters/value.", element.Field, fe.Param())
		case "max":
			element.Msg = fmt.Sprintf("Field '%s' must be at most %s characters/value.", element.Field, fe.Param())
		case "gt":
			element.Msg = fmt.Sprintf("Field '%s' must be greater than %s.", element.Field, fe.Param())
		case "role":
			element.Msg = "Role must be one of: admin, hr, operator."
		case "alphanumunicode":
			element.Msg = fmt.Sprintf("Field '%s' may contain only letters and digits.", element.Field)
		default:
			element.Msg = fmt.Sprintf("Field '%s' failed validation for tag '%s'.", element.Field, element.Tag)
		}
		errors = append(errors, element)
	}
	return errors
}
