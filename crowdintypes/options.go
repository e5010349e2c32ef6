package crowdintypes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-git/go-billy/v5"
)

// ClientConfig holds configuration for the Crowdin client.
type ClientConfig struct {
	// Credentials resolves the personal access token
	Credentials TokenProvider

	// Organization selects the Crowdin Enterprise host; empty means crowdin.com
	Organization string

	// BaseURL overrides the API base URL entirely
	BaseURL string

	// Timeout bounds each HTTP request; zero means no timeout
	Timeout time.Duration

	// MaxRetries is the number of retries for transient failures
	MaxRetries int

	// PageSize is the page size used by fetch-all listings
	PageSize int

	// UserAgent is sent with every request
	UserAgent string

	// HTTPClient replaces the default HTTP client
	HTTPClient *http.Client

	// Logger receives operation logs; nil disables logging
	Logger *slog.Logger

	// Filesystem is used by SyncDirectory to read local files
	Filesystem billy.Filesystem
}

// Option configures a ClientConfig.
type Option func(*ClientConfig)

// UploadOptionConfig holds per-call storage upload settings.
type UploadOptionConfig struct {
	ContentType string
}

// UploadOption configures a storage upload.
type UploadOption func(*UploadOptionConfig)

// FileOptionConfig holds per-call settings for UpdateOrCreateFile.
type FileOptionConfig struct {
	// BranchID places a newly created file in a branch
	BranchID int64

	// ContentType is forwarded to the storage upload
	ContentType string

	// ExportPattern is sent as exportOptions.exportPattern when the file is created
	ExportPattern string
}

// FileOption configures UpdateOrCreateFile.
type FileOption func(*FileOptionConfig)

// SyncOptionConfig holds settings for SyncDirectory.
type SyncOptionConfig struct {
	IncludePatterns []string
	ExcludePatterns []string
	DryRun          bool
	Recursive       bool
	FailFast        bool

	// ParentFolder nests the target folder under an existing directory
	ParentFolder *Directory

	// FileType is applied to files created by the sync; empty lets Crowdin detect it
	FileType string

	// TitleFunc derives a file title from its name; nil leaves titles empty
	TitleFunc func(name string) string
}

// SyncOption configures SyncDirectory.
type SyncOption func(*SyncOptionConfig)

// SyncOperationType is the kind of change planned for one file.
type SyncOperationType string

const (
	// SyncCreate adds a file that does not exist remotely
	SyncCreate SyncOperationType = "create"

	// SyncUpdate replaces the content of an existing remote file
	SyncUpdate SyncOperationType = "update"

	// SyncSkip marks a remote file with no local counterpart
	SyncSkip SyncOperationType = "skip"
)

// SyncOperation is one planned change.
type SyncOperation struct {
	Type      SyncOperationType
	Name      string
	LocalPath string
	FileID    int64
	Size      int64
}

// SyncError records a per-file failure.
type SyncError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e SyncError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e SyncError) Unwrap() error {
	return e.Err
}

// SyncResult summarizes a SyncDirectory run.
type SyncResult struct {
	FilesCreated  int
	FilesUpdated  int
	FilesSkipped  int
	BytesUploaded int64

	// Folder is the target directory; nil in a dry run when it does not exist yet
	Folder        *Directory
	FolderCreated bool

	// Operations is the executed (or, in a dry run, planned) change list
	Operations []SyncOperation
	Errors     []SyncError
	Duration   time.Duration
}
