// Package errors provides error types and classification for Crowdin operations.
// It pairs an operation-scoped Error wrapper with string error codes that
// classify failures reported by the Crowdin API.
package errors

// ErrorCode represents a specific error condition reported by, or derived from, the Crowdin API.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates a requested project, file, directory or storage does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeConflict indicates a resource state conflict, such as a duplicate name.
	CodeConflict ErrorCode = "CONFLICT"

	// Permission errors.

	// CodeUnauthorized indicates the request lacks a valid personal access token.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// CodeForbidden indicates the token lacks the scope or project role for the operation.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a client configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Infrastructure errors.

	// CodeNetwork indicates a network operation failed.
	CodeNetwork ErrorCode = "NETWORK_ERROR"

	// CodeTimeout indicates an operation exceeded its time limit.
	CodeTimeout ErrorCode = "TIMEOUT"

	// CodeRateLimit indicates the rate limit has been exceeded.
	CodeRateLimit ErrorCode = "RATE_LIMIT_EXCEEDED"

	// System errors.

	// CodeInternal indicates the API reported an internal error.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnavailable indicates the service is temporarily unavailable.
	CodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// Retryable reports whether failures with this code are transient.
func (c ErrorCode) Retryable() bool {
	switch c {
	case CodeRateLimit, CodeUnavailable, CodeInternal, CodeNetwork, CodeTimeout:
		return true
	default:
		return false
	}
}

// CodeForStatus maps an HTTP status code returned by the Crowdin API to an ErrorCode.
func CodeForStatus(status int) ErrorCode {
	switch {
	case status == 400, status == 422:
		return CodeInvalidInput
	case status == 401:
		return CodeUnauthorized
	case status == 403:
		return CodeForbidden
	case status == 404:
		return CodeNotFound
	case status == 409:
		return CodeConflict
	case status == 429:
		return CodeRateLimit
	case status == 502, status == 503, status == 504:
		return CodeUnavailable
	case status >= 500:
		return CodeInternal
	default:
		return CodeUnknown
	}
}
