package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Error represents a Crowdin operation error with context about the operation that failed.
// It is used for failures detected locally (input validation, configuration) and keeps
// the underlying cause available through Unwrap.
type Error struct {
	// Op is the operation that failed (e.g., "uploadToStorage", "getOrCreateFolder")
	Op string

	// ProjectID is the Crowdin project ID (if applicable)
	ProjectID int64

	// Name is the file, folder or storage name (if applicable)
	Name string

	// Err is the underlying error
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.ProjectID != 0 && e.Name != "" {
		return fmt.Sprintf("crowdin.%s project %d %q: %v", e.Op, e.ProjectID, e.Name, e.Err)
	}
	if e.ProjectID != 0 {
		return fmt.Sprintf("crowdin.%s project %d: %v", e.Op, e.ProjectID, e.Err)
	}
	if e.Name != "" {
		return fmt.Sprintf("crowdin.%s %q: %v", e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("crowdin.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithProject adds project context to an existing error.
func (e *Error) WithProject(projectID int64) *Error {
	e.ProjectID = projectID
	return e
}

// WithName adds file or folder name context to an existing error.
func (e *Error) WithName(name string) *Error {
	e.Name = name
	return e
}

// WithMessage wraps the underlying error with a custom message.
func (e *Error) WithMessage(message string) *Error {
	e.Err = fmt.Errorf("%s: %w", message, e.Err)
	return e
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// NewValidationError creates a new Error for an invalid argument.
func NewValidationError(op, message string) *Error {
	return NewError(op, ErrInvalidInput).WithMessage(message)
}

// FieldError describes one rejected field of a validation error response.
type FieldError struct {
	// Key is the request field the API rejected
	Key string

	// Code is the API's machine-readable reason
	Code string

	// Message is the API's human-readable reason
	Message string
}

// APIError is returned by the REST transport when Crowdin answers with a non-2xx status.
// It matches the package sentinel errors through errors.Is.
type APIError struct {
	// Method and Path identify the failed request
	Method string
	Path   string

	// StatusCode is the HTTP status of the response
	StatusCode int

	// Code is the classification derived from the status code
	Code ErrorCode

	// Message is the error message reported by the API, if any
	Message string

	// Fields carries per-field validation failures
	Fields []FieldError
}

// Error implements the error interface.
func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "crowdin api %s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Code)
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	for _, f := range e.Fields {
		fmt.Fprintf(&b, "; %s: %s", f.Key, f.Message)
	}
	return b.String()
}

// Is lets errors.Is match an APIError against the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == CodeNotFound
	case ErrUnauthorized:
		return e.Code == CodeUnauthorized
	case ErrForbidden:
		return e.Code == CodeForbidden
	case ErrConflict:
		return e.Code == CodeConflict
	case ErrValidation:
		return e.Code == CodeInvalidInput
	case ErrRateLimited:
		return e.Code == CodeRateLimit
	case ErrUnavailable:
		return e.Code == CodeUnavailable || e.Code == CodeInternal
	}
	return false
}

// NewAPIError builds an APIError for the given request and response status.
func NewAPIError(method, path string, status int, message string, fields []FieldError) *APIError {
	return &APIError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Code:       CodeForStatus(status),
		Message:    message,
		Fields:     fields,
	}
}

// Sentinel errors for common Crowdin operation failures.
// These can be used with errors.Is() for error checking.
var (
	// ErrInvalidInput indicates that an argument failed local validation
	ErrInvalidInput = errors.New("crowdin: invalid input")

	// ErrInvalidConfig indicates that the client configuration is unusable
	ErrInvalidConfig = errors.New("crowdin: invalid configuration")

	// ErrMissingToken indicates that no personal access token could be resolved
	ErrMissingToken = errors.New("crowdin: missing access token")

	// ErrNotFound indicates that the requested resource does not exist
	ErrNotFound = errors.New("crowdin: not found")

	// ErrUnauthorized indicates that the token was rejected
	ErrUnauthorized = errors.New("crowdin: unauthorized")

	// ErrForbidden indicates that the token lacks permission for the resource
	ErrForbidden = errors.New("crowdin: forbidden")

	// ErrConflict indicates that the resource already exists or is in a conflicting state
	ErrConflict = errors.New("crowdin: conflict")

	// ErrValidation indicates that the API rejected the request payload
	ErrValidation = errors.New("crowdin: validation failed")

	// ErrRateLimited indicates that the request rate is too high
	ErrRateLimited = errors.New("crowdin: rate limited")

	// ErrUnavailable indicates a server-side failure
	ErrUnavailable = errors.New("crowdin: service unavailable")
)

// CodeOf classifies any error returned by this module.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}

	switch {
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrMissingToken):
		return CodeInvalidConfig
	case errors.Is(err, context.DeadlineExceeded):
		return CodeTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return CodeTimeout
		}
		return CodeNetwork
	}

	return CodeUnknown
}

// IsRetryable reports whether err is a transient failure worth retrying.
// Context cancellation and expired deadlines are never retryable.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return CodeOf(err).Retryable()
}

// IsNotFound checks if an error indicates that a resource was not found.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput checks if an error indicates invalid input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsRateLimited checks if an error indicates the rate limit was hit.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// Is reports whether any error in err's chain matches target. It mirrors the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target. It mirrors the standard library.
func As(err error, target any) bool {
	return errors.As(err, target)
}
