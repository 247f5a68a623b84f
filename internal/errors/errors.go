package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when no record exists for the given id.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameExists is returned when the lowercased username is already taken.
	ErrUsernameExists = errors.New("username already exists")
	// ErrInvalidCredentials is the uniform login failure; it covers both
	// an unknown username and a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken is returned when a bearer token is absent, malformed or unknown.
	ErrInvalidToken = errors.New("invalid token")
	// ErrValidation is returned when required input fields are missing or malformed.
	ErrValidation = errors.New("missing or invalid fields")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Detail     string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Detail
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, detail, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Detail:     detail,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Detail: e.Detail,
		Code:   e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. The detail strings
// are part of the wire contract and must stay stable.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, "User not found", "USER_NOT_FOUND")
	case errors.Is(err, ErrUsernameExists):
		return NewHTTPError(http.StatusBadRequest, "Username already exists", "USERNAME_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, "Invalid username or password", "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, "Not authenticated", "NOT_AUTHENTICATED")
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "VALIDATION_ERROR")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
