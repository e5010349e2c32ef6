// Package rest implements the crowdinapi capability interfaces over the Crowdin v2 REST API.
//
// The client owns everything the orchestration layer delegates: base URL
// selection, bearer authentication, request IDs, JSON envelopes, offset
// pagination for fetch-all listings, error mapping and retries of transient
// failures.
package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdinapi"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/errors"
)

const (
	// DefaultBaseURL is the crowdin.com API root.
	DefaultBaseURL = "https://api.crowdin.com/api/v2"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "catalyst-forge-crowdin"

	// RequestIDHeader carries a per-request UUID for correlation with logs.
	RequestIDHeader = "X-Request-Id"

	defaultRetryWait    = 250 * time.Millisecond
	defaultRetryMaxWait = 20 * time.Second
)

// Client is a Crowdin REST API client implementing crowdinapi.API.
// It is safe for concurrent use.
type Client struct {
	http        *resty.Client
	credentials crowdintypes.TokenProvider
	logger      *slog.Logger
	baseURL     string
}

var _ crowdinapi.API = (*Client)(nil)

// BaseURL returns the API root for an organization.
// An empty organization selects crowdin.com.
func BaseURL(organization string) string {
	if organization == "" {
		return DefaultBaseURL
	}
	return fmt.Sprintf("https://%s.api.crowdin.com/api/v2", organization)
}

// New creates a REST client from the module client configuration.
func New(cfg *crowdintypes.ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, errors.NewError("rest client", errors.ErrInvalidConfig).WithMessage("config cannot be nil")
	}
	if cfg.Credentials == nil {
		return nil, errors.NewError("rest client", errors.ErrMissingToken)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = BaseURL(cfg.Organization)
	}
	baseURL = strings.TrimRight(baseURL, "/")

	var hc *resty.Client
	if cfg.HTTPClient != nil {
		hc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		hc = resty.New()
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	hc.SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetRetryCount(max(cfg.MaxRetries, 0)).
		SetRetryWaitTime(defaultRetryWait).
		SetRetryMaxWaitTime(defaultRetryMaxWait).
		SetRetryAfter(retryAfter).
		AddRetryCondition(shouldRetry)

	if cfg.Timeout > 0 {
		hc.SetTimeout(cfg.Timeout)
	}

	return &Client{
		http:        hc,
		credentials: cfg.Credentials,
		logger:      cfg.Logger,
		baseURL:     baseURL,
	}, nil
}

// SetRetryWait overrides the backoff bounds used between retries.
func (c *Client) SetRetryWait(wait, maxWait time.Duration) {
	c.http.SetRetryWaitTime(wait).SetRetryMaxWaitTime(maxWait)
}

// request prepares an authenticated request bound to ctx.
func (c *Client) request(ctx context.Context) (*resty.Request, string, error) {
	token, err := c.credentials.Token(ctx)
	if err != nil {
		return nil, "", err
	}
	if token.IsZero() {
		return nil, "", errors.NewError("authenticate", errors.ErrMissingToken)
	}

	requestID := uuid.NewString()
	req := c.http.R().
		SetContext(ctx).
		SetAuthToken(token.Value()).
		SetHeader(RequestIDHeader, requestID).
		SetError(&errorEnvelope{})

	return req, requestID, nil
}

// do executes req and converts non-2xx responses into *errors.APIError.
func (c *Client) do(req *resty.Request, requestID, method, path string) (*resty.Response, error) {
	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		if c.logger != nil {
			c.logger.DebugContext(req.Context(), "crowdin request failed",
				"method", method,
				"path", path,
				"request_id", requestID,
				"error", err)
		}
		return nil, err
	}

	if c.logger != nil {
		c.logger.DebugContext(req.Context(), "crowdin request",
			"method", method,
			"path", resp.Request.URL,
			"status", resp.StatusCode(),
			"attempts", resp.Request.Attempt,
			"request_id", requestID,
			"duration", time.Since(start))
	}

	if resp.IsError() {
		return nil, toAPIError(method, path, resp)
	}
	return resp, nil
}

// list performs a GET on a list endpoint, following offsets when page requests fetch-all.
func list[T any](
	ctx context.Context,
	c *Client,
	path string,
	pathParams map[string]string,
	query map[string]string,
	page *crowdinapi.ListOptions,
) ([]T, error) {
	limit, offset := 0, 0
	if page != nil {
		limit, offset = page.Limit, page.Offset
		if page.FetchAll {
			limit = page.PageSize()
		}
	}

	var items []T
	for {
		req, requestID, err := c.request(ctx)
		if err != nil {
			return nil, err
		}

		var env listEnvelope[T]
		req.SetPathParams(pathParams).
			SetQueryParams(query).
			SetResult(&env)
		if limit > 0 {
			req.SetQueryParam("limit", strconv.Itoa(limit))
		}
		if offset > 0 {
			req.SetQueryParam("offset", strconv.Itoa(offset))
		}

		if _, err := c.do(req, requestID, http.MethodGet, path); err != nil {
			return nil, err
		}

		for _, item := range env.Data {
			items = append(items, item.Data)
		}

		if page == nil || !page.FetchAll || len(env.Data) < limit {
			return items, nil
		}
		offset += len(env.Data)
	}
}

func projectParams(projectID int64) map[string]string {
	return map[string]string{"projectId": strconv.FormatInt(projectID, 10)}
}
