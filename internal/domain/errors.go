package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface enables extensible error handling (OCP compliance).
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a referenced topic, answer, course or user was not found,
	// either in local storage or at the remote user directory.
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates authentication failure
	UnauthorizedError struct {
		Message string
	}

	// PermissionDeniedError indicates an ownership/role policy denial.
	// Surfaced as 418 on purpose: the platform distinguishes policy denials
	// from generic 403 responses produced by the outer security layer.
	PermissionDeniedError struct {
		Message string
	}

	// BusinessRuleError indicates a domain invariant conflict, such as marking
	// a second best answer or editing a topic whose author no longer exists.
	BusinessRuleError struct {
		Message string
	}
)

// Error implementations
func (e *NotFoundError) Error() string         { return e.Message }
func (e *ValidationError) Error() string       { return e.Message }
func (e *UnauthorizedError) Error() string     { return e.Message }
func (e *PermissionDeniedError) Error() string { return e.Message }
func (e *BusinessRuleError) Error() string     { return e.Message }

// StatusCode implementations (HTTPError interface)
func (e *NotFoundError) StatusCode() int         { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int       { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int     { return http.StatusUnauthorized }
func (e *PermissionDeniedError) StatusCode() int { return http.StatusTeapot }
func (e *BusinessRuleError) StatusCode() int     { return http.StatusUnprocessableEntity }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrValidation        = errors.New("validation failed")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrPermissionDenied  = errors.New("insufficient privilege")
	ErrBusinessRule      = errors.New("business rule violated")
	ErrRemoteUnavailable = errors.New("user directory unavailable")
)

// Is allows errors.Is() matching against the taxonomy sentinels, so callers
// can branch on the error family without knowing the concrete type.
func (e *NotFoundError) Is(target error) bool         { return target == ErrNotFound }
func (e *UnauthorizedError) Is(target error) bool     { return target == ErrUnauthorized }
func (e *ValidationError) Is(target error) bool       { return target == ErrValidation }
func (e *PermissionDeniedError) Is(target error) bool { return target == ErrPermissionDenied }
func (e *BusinessRuleError) Is(target error) bool     { return target == ErrBusinessRule }

// ConflictError represents a storage-level uniqueness conflict. The best-answer
// and username/email uniqueness invariants are check-then-act in the services;
// the database constraint is the backstop, and it surfaces here.
type ConflictError struct {
	Message      string // Human-readable error message
	ResourceType string // Type of resource (topic, answer, course)
	ResourceID   string // ID of the existing/conflicting resource
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return e.Message
}

// StatusCode implements the HTTPError interface
func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// RemoteUnavailableError indicates the user directory timed out or refused the
// connection. Never produced for a clean domain "not found" answer from the
// directory; that maps to NotFoundError.
type RemoteUnavailableError struct {
	Message string
}

func (e *RemoteUnavailableError) Error() string   { return e.Message }
func (e *RemoteUnavailableError) StatusCode() int { return http.StatusBadGateway }
func (e *RemoteUnavailableError) Is(target error) bool {
	return target == ErrRemoteUnavailable
}

// RemoteError indicates the user directory answered with an unexpected status.
// Carries the upstream status and body for boundary logging.
type RemoteError struct {
	Message        string
	UpstreamStatus int
	Body           string
}

func (e *RemoteError) Error() string   { return e.Message }
func (e *RemoteError) StatusCode() int { return http.StatusBadGateway }
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteUnavailable
}
