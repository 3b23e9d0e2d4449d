// errors.go - Structured error handling for API responses
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ledgerline/taxintake/internal/common"
)

// APIError represents a structured API error response
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewBadRequestError creates a 400 Bad Request error
func NewBadRequestError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// NewUnauthorizedError creates a 401 Unauthorized error
func NewUnauthorizedError(message string) *APIError {
	return &APIError{
		Status:  http.StatusUnauthorized,
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

// NewNotFoundError creates a 404 Not Found error
func NewNotFoundError(resource string, id string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// NewLockedError creates a 409 Conflict error for submitted intakes
func NewLockedError() *APIError {
	return &APIError{
		Status:  http.StatusConflict,
		Code:    "LOCKED",
		Message: "intake has been submitted and can no longer be changed",
	}
}

// NewInternalError creates a 500 Internal Server Error
func NewInternalError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// mapServiceError translates service sentinels into APIErrors.
func mapServiceError(err error) *APIError {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return &APIError{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "not found"}
	case errors.Is(err, common.ErrLocked):
		return NewLockedError()
	case errors.Is(err, common.ErrInvalidToken):
		return NewUnauthorizedError("invalid sign-in link")
	case errors.Is(err, common.ErrTokenExpired):
		return NewUnauthorizedError("sign-in link expired")
	case errors.Is(err, common.ErrorUnauthorized):
		return NewUnauthorizedError("unauthorized")
	case errors.Is(err, common.ErrInvalidEmail):
		return NewBadRequestError("invalid email address", nil)
	case errors.Is(err, common.ErrConsentIncomplete):
		return NewBadRequestError("consent section must be completed before submitting", nil)
	default:
		return NewInternalError("An unexpected error occurred", err)
	}
}

// ErrorHandler middleware for Echo
// Usage: e.HTTPErrorHandler = api.ErrorHandler
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var apiErr *APIError

	switch e := err.(type) {
	case *APIError:
		apiErr = e
	case *echo.HTTPError:
		apiErr = &APIError{
			Status:  e.Code,
			Code:    "HTTP_ERROR",
			Message: fmt.Sprintf("%v", e.Message),
		}
	default:
		apiErr = mapServiceError(err)
	}

	c.JSON(apiErr.Status, apiErr)
}

// RespondWithError is a helper to respond with an APIError
func RespondWithError(c echo.Context, err *APIError) error {
	return c.JSON(err.Status, err)
}
