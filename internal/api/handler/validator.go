package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// fieldError is one entry of the validation error list the client renders
// next to form fields.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationErrors struct {
	Errors []fieldError `json:"errors"`
}

func (ve *validationErrors) Error() string {
	msgs := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}

	out := &validationErrors{Errors: make([]fieldError, 0, len(ves))}
	for _, fe := range ves {
		out.Errors = append(out.Errors, fieldError{
			Field:   jsonFieldName(fe),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// respondValidation writes the 400 body for a failed c.Validate call.
func respondValidation(c echo.Context, err error) error {
	var ve *validationErrors
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, ve)
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

func jsonFieldName(fe validator.FieldError) string {
	// struct fields are named after their JSON keys modulo casing
	field := fe.Field()
	return strings.ToLower(field[:1]) + field[1:]
}

// fieldMessage converts a single ValidationError into a human-readable message.
func fieldMessage(fe validator.FieldError) string {
	field := jsonFieldName(fe)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
