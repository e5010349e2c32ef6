package crowdin

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/credentials"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdinapi"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/internal/rest"
)

// Environment variables consulted by New when the matching option is not given.
const (
	EnvToken        = credentials.EnvToken
	EnvOrganization = "CROWDIN_ORGANIZATION"
	EnvBaseURL      = "CROWDIN_BASE_URL"
)

const (
	defaultMaxRetries = 3
	defaultPageSize   = crowdinapi.DefaultMaxLimit
)

// Client orchestrates Crowdin API calls.
// It is safe for concurrent use.
type Client struct {
	// api is the underlying Crowdin API implementation
	api crowdinapi.API

	// logger receives operation logs; nil disables logging
	logger *slog.Logger

	// pageSize is the page size used for fetch-all listings
	pageSize int

	// mu protects fs
	mu sync.RWMutex

	// fs is used by SyncDirectory to read local files
	fs billy.Filesystem

	// osRoot reports that fs is the default OS filesystem rooted at /
	osRoot bool
}

// New creates a new Client backed by the Crowdin REST API.
//
// Credentials default to the CROWDIN_PERSONAL_TOKEN environment variable,
// and the organization and base URL fall back to CROWDIN_ORGANIZATION and
// CROWDIN_BASE_URL. A missing token is reported by the first request, not
// by New.
//
// Example:
//
//	client, err := crowdin.New(
//	    crowdin.WithOrganization("acme"),
//	    crowdin.WithMaxRetries(5),
//	)
func New(opts ...crowdintypes.Option) (*Client, error) {
	cfg := newConfig(opts...)

	if cfg.Credentials == nil {
		cfg.Credentials = credentials.Default()
	}
	if cfg.Organization == "" {
		cfg.Organization = os.Getenv(EnvOrganization)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv(EnvBaseURL)
	}

	api, err := rest.New(cfg)
	if err != nil {
		return nil, err
	}

	return newClient(api, cfg), nil
}

// NewWithClient creates a new Client with a custom crowdinapi.API implementation.
// This is primarily used for testing with mocked clients. Transport options
// such as WithToken or WithBaseURL have no effect.
func NewWithClient(api crowdinapi.API, opts ...crowdintypes.Option) *Client {
	return newClient(api, newConfig(opts...))
}

func newConfig(opts ...crowdintypes.Option) *crowdintypes.ClientConfig {
	cfg := &crowdintypes.ClientConfig{
		MaxRetries: defaultMaxRetries,
		PageSize:   defaultPageSize,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func newClient(api crowdinapi.API, cfg *crowdintypes.ClientConfig) *Client {
	filesystem := cfg.Filesystem
	osRoot := filesystem == nil
	if osRoot {
		filesystem = osfs.New("/")
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > crowdinapi.DefaultMaxLimit {
		pageSize = defaultPageSize
	}

	return &Client{
		api:      api,
		logger:   cfg.Logger,
		pageSize: pageSize,
		fs:       filesystem,
		osRoot:   osRoot,
	}
}

// API returns the underlying API implementation.
func (c *Client) API() crowdinapi.API {
	return c.api
}

// SetFilesystem sets the filesystem used by SyncDirectory.
// This is useful for testing or when the filesystem needs to be changed after creation.
func (c *Client) SetFilesystem(filesystem billy.Filesystem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fs = filesystem
	c.osRoot = false
}

func (c *Client) filesystem() billy.Filesystem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fs
}

// localRoot returns the filesystem and the path to scan for localPath.
// On the default OS filesystem relative paths resolve against the working directory.
func (c *Client) localRoot(localPath string) (billy.Filesystem, string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.osRoot {
		return c.fs, localPath, nil
	}
	absPath, err := filepath.Abs(localPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve local path: %w", err)
	}
	return c.fs, absPath, nil
}

func (c *Client) fetchAll() *crowdinapi.ListOptions {
	return crowdinapi.FetchAll(c.pageSize)
}
