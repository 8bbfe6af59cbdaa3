package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_005"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_006"
	ErrorCodeTokenNotFound      ErrorCode = "AUTH_007"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_008"
	ErrorCodeForbidden          ErrorCode = "AUTH_009"

	// Resource errors
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeInvalidFormat    ErrorCode = "VAL_002"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// ErrorDetail describes one problem with a request, usually a single field
type ErrorDetail struct {
	Code    ErrorCode `json:"code" example:"VAL_001"`
	Field   string    `json:"field,omitempty" example:"email"`
	Message string    `json:"message" example:"email must be a valid email address"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) ErrorDetail {
	return ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithField adds a field name to the error detail
func (e ErrorDetail) WithField(field string) ErrorDetail {
	e.Field = field
	return e
}

// HandleValidationError converts a binding error into per-field error details
func HandleValidationError(err error) []ErrorDetail {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]ErrorDetail, 0, len(validationErrors))
		for _, fe := range validationErrors {
			details = append(details, NewErrorDetail(ErrorCodeValidationFailed, formatFieldError(fe)).WithField(jsonFieldName(fe)))
		}
		return details
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []ErrorDetail{
			NewErrorDetail(ErrorCodeInvalidFormat, fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.String())).WithField(typeErr.Field),
		}
	}

	return []ErrorDetail{NewErrorDetail(ErrorCodeInvalidFormat, "Invalid request body")}
}

// jsonFieldName turns the validator namespace (CreateStudentRequest.FullName) into the json name
func jsonFieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return ""
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func formatFieldError(fe validator.FieldError) string {
	field := jsonFieldName(fe)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "gte":
		return field + " must be greater than or equal to " + fe.Param()
	default:
		return field + " validation failed: " + fe.Tag()
	}
}
