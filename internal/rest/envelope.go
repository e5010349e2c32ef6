package rest

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/errors"
)

// dataEnvelope wraps single-resource responses: {"data": {...}}.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// listEnvelope wraps collection responses: {"data": [{"data": {...}}], "pagination": {...}}.
type listEnvelope[T any] struct {
	Data []struct {
		Data T `json:"data"`
	} `json:"data"`
	Pagination struct {
		Offset int `json:"offset"`
		Limit  int `json:"limit"`
	} `json:"pagination"`
}

// errorEnvelope covers both error shapes returned by the API:
//
//	{"error": {"code": 404, "message": "..."}}
//	{"errors": [{"error": {"key": "name", "errors": [{"code": "...", "message": "..."}]}}]}
type errorEnvelope struct {
	Error *struct {
		Code    any    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Errors []struct {
		Error struct {
			Key    string `json:"key"`
			Errors []struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"errors"`
		} `json:"error"`
	} `json:"errors"`
}

func toAPIError(method, path string, resp *resty.Response) *errors.APIError {
	var (
		message string
		fields  []errors.FieldError
	)

	if env, ok := resp.Error().(*errorEnvelope); ok && env != nil {
		if env.Error != nil {
			message = env.Error.Message
		}
		for _, e := range env.Errors {
			for _, fe := range e.Error.Errors {
				fields = append(fields, errors.FieldError{
					Key:     e.Error.Key,
					Code:    fe.Code,
					Message: fe.Message,
				})
			}
		}
	}

	if message == "" && len(fields) == 0 {
		message = strings.TrimSpace(http.StatusText(resp.StatusCode()))
	}

	return errors.NewAPIError(method, path, resp.StatusCode(), message, fields)
}

// shouldRetry retries network failures and responses classified as transient.
// Context cancellation and deadline errors are never retried.
func shouldRetry(resp *resty.Response, err error) bool {
	if err != nil {
		return errors.IsRetryable(err)
	}
	if resp == nil {
		return false
	}
	return errors.CodeForStatus(resp.StatusCode()).Retryable()
}

// retryAfter honours a Retry-After header given in seconds; zero falls back to exponential backoff.
func retryAfter(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
	if resp == nil {
		return 0, nil
	}
	value := resp.Header().Get("Retry-After")
	if value == "" {
		return 0, nil
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0, nil
	}
	return time.Duration(seconds) * time.Second, nil
}
