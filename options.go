// Package crowdin provides functional options for configuring client behavior.
// These options follow the functional options pattern for clean, composable configuration.
package crowdin

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-git/go-billy/v5"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/credentials"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
)

// WithToken authenticates with a fixed personal access token.
func WithToken(token string) crowdintypes.Option {
	return func(c *crowdintypes.ClientConfig) {
		c.Credentials = credentials.Static(token)
	}
}

// WithCredentials sets the provider that resolves the access token before each request.
func WithCredentials(provider crowdintypes.TokenProvider) crowdintypes.Option {
	return func(c *crowdintypes.ClientConfig) {
		c.Credentials = provider
	}
}

// WithOrganization targets a Crowdin Enterprise organization.
func WithOrganization(organization string) crowdintypes.Option {
	return func(c *crowdintypes.ClientConfig) {
		c.Organization = organization
	}
}

// WithBaseURL overrides the API base URL. It takes precedence over WithOrganization.
func WithBaseURL(baseURL string) crowdintypes.Option {
	return func(c *crowdintypes.ClientConfig) {
		c.BaseURL = baseURL
	}
}

// WithTimeout sets the timeout for individual HTTP requests.
// Default is no timeout (0).
func WithTimeout(timeout time.Duration) crowdintypes.Option {
	return func(c *crowdintypes.ClientConfig) {
		c.Timeout = timeout
	}
}

// WithMaxRetries sets the maximum number of retries for transient failures.
// Default is 3 retries. Set to 0 to disable retries.
func WithMaxRetries(maxRetries int) crowdintypes.Option {
	return func(c *crowdintypes.ClientConfig) {
		if maxRetries >= 0 {
			c.MaxRetries = maxRetries
		}
	}
}

// WithPageSize sets the page size of fetch-all listings.
// Default is 500, the largest page Crowdin serves.
func WithPageSize(pageSize int) crowdintypes.Option {
	return func(c *crowdintypes.ClientConfig) {
		if pageSize > 0 {
			c.PageSize = pageSize
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) crowdintypes.Option {
	return func(c *crowdintypes.ClientConfig) {
		c.HTTPClient = client
	}
}

// WithLogger configures the client with a logger.
func WithLogger(logger *slog.Logger) crowdintypes.Option {
	return func(c *crowdintypes.ClientConfig) {
		c.Logger = logger
	}
}

// WithFilesystem sets the filesystem SyncDirectory reads from.
// Default is the OS filesystem rooted at /.
func WithFilesystem(filesystem billy.Filesystem) crowdintypes.Option {
	return func(c *crowdintypes.ClientConfig) {
		c.Filesystem = filesystem
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) crowdintypes.Option {
	return func(c *crowdintypes.ClientConfig) {
		c.UserAgent = userAgent
	}
}

// WithContentType sets the content type of a storage upload.
func WithContentType(contentType string) crowdintypes.UploadOption {
	return func(c *crowdintypes.UploadOptionConfig) {
		c.ContentType = contentType
	}
}

// WithBranchID places a newly created file in a branch.
func WithBranchID(branchID int64) crowdintypes.FileOption {
	return func(c *crowdintypes.FileOptionConfig) {
		c.BranchID = branchID
	}
}

// WithFileContentType sets the content type of the storage upload made for a file.
func WithFileContentType(contentType string) crowdintypes.FileOption {
	return func(c *crowdintypes.FileOptionConfig) {
		c.ContentType = contentType
	}
}

// WithExportPattern overrides the export pattern of a newly created file.
func WithExportPattern(pattern string) crowdintypes.FileOption {
	return func(c *crowdintypes.FileOptionConfig) {
		c.ExportPattern = pattern
	}
}

// WithSyncIncludePattern only syncs files matching pattern.
// Can be given several times; a file matching any include pattern is kept.
func WithSyncIncludePattern(pattern string) crowdintypes.SyncOption {
	return func(c *crowdintypes.SyncOptionConfig) {
		c.IncludePatterns = append(c.IncludePatterns, pattern)
	}
}

// WithSyncExcludePattern skips files matching pattern. Excludes win over includes.
func WithSyncExcludePattern(pattern string) crowdintypes.SyncOption {
	return func(c *crowdintypes.SyncOptionConfig) {
		c.ExcludePatterns = append(c.ExcludePatterns, pattern)
	}
}

// WithSyncDryRun plans the sync without creating folders or uploading files.
func WithSyncDryRun(dryRun bool) crowdintypes.SyncOption {
	return func(c *crowdintypes.SyncOptionConfig) {
		c.DryRun = dryRun
	}
}

// WithSyncParentFolder nests the target folder under parent.
func WithSyncParentFolder(parent *crowdintypes.Directory) crowdintypes.SyncOption {
	return func(c *crowdintypes.SyncOptionConfig) {
		c.ParentFolder = parent
	}
}

// WithSyncFileType sets the Crowdin file type of files created by the sync.
func WithSyncFileType(fileType string) crowdintypes.SyncOption {
	return func(c *crowdintypes.SyncOptionConfig) {
		c.FileType = fileType
	}
}

// WithSyncRecursive includes files in subdirectories. Files are still
// pushed flat into the target folder under their base names.
func WithSyncRecursive(recursive bool) crowdintypes.SyncOption {
	return func(c *crowdintypes.SyncOptionConfig) {
		c.Recursive = recursive
	}
}

// WithSyncFailFast stops the sync at the first failed file.
func WithSyncFailFast(failFast bool) crowdintypes.SyncOption {
	return func(c *crowdintypes.SyncOptionConfig) {
		c.FailFast = failFast
	}
}

// WithSyncTitleFunc derives the title of created files from their names.
func WithSyncTitleFunc(fn func(name string) string) crowdintypes.SyncOption {
	return func(c *crowdintypes.SyncOptionConfig) {
		c.TitleFunc = fn
	}
}
