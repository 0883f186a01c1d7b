package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrPromptNotFound is returned when a prompt lookup by id matches nothing.
	ErrPromptNotFound = errors.New("prompt not found")
	// ErrUserNotFound is returned when a user lookup by id matches nothing.
	ErrUserNotFound = errors.New("user not found")
	// ErrMissingFields is returned when a write is missing required fields.
	ErrMissingFields = errors.New("prompt text and tag are required")
	// ErrInvalidUsername is returned when a username fails the format rule.
	ErrInvalidUsername = errors.New("username must be 8-20 alphanumeric characters, dots or underscores, with no leading, trailing or consecutive separators")
	// ErrNoUsers is returned when prompt seeding finds no users to reference.
	ErrNoUsers = errors.New("no users found, seed users first")
	// ErrNotConnected is returned when a query runs before a successful connect.
	ErrNotConnected = errors.New("database not connected")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors collapse
// into a generic 500 so transport and query failures leak no detail.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrPromptNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROMPT_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELDS")
	case errors.Is(err, ErrInvalidUsername):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_USERNAME")
	case errors.Is(err, ErrNoUsers):
		return NewHTTPError(http.StatusPreconditionFailed, err.Error(), "NO_USERS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
