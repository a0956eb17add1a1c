// Package errors provides custom error types for folio
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrUnknownRoute = errors.New("unknown route")
	ErrMissingUser  = errors.New("missing required setting 'github-user'")
	ErrRateLimited  = errors.New("GitHub API rate limit exceeded")
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized: invalid or expired token")
	ErrForbidden    = errors.New("forbidden: insufficient permissions")
	ErrNotAvailable = errors.New("not available in this environment")
)

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// RouteError reports a route that is not part of the site
type RouteError struct {
	Path string
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("%v: %q (try 'folio routes')", ErrUnknownRoute, e.Path)
}

func (e *RouteError) Unwrap() error {
	return ErrUnknownRoute
}

// NewRouteError creates a new route error
func NewRouteError(path string) *RouteError {
	return &RouteError{Path: path}
}

// APIError represents a GitHub API error
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("GitHub API error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("GitHub API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new API error
func NewAPIError(statusCode int, message string, err error) *APIError {
	return &APIError{StatusCode: statusCode, Message: message, Err: err}
}

// IsRateLimited checks if the error is a rate limit error
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return errors.Is(err, ErrRateLimited)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return errors.Is(err, ErrNotFound)
}
