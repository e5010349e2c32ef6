// Package crowdinapi defines the capability interfaces this module expects from a Crowdin API client.
// The REST transport in this module implements them; tests and callers may supply their own.
package crowdinapi

import (
	"context"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
)

// DefaultMaxLimit is the largest page size the Crowdin API accepts.
const DefaultMaxLimit = 500

// ListOptions controls pagination of list calls.
// With FetchAll set, the client keeps requesting pages of MaxLimit items
// (DefaultMaxLimit when zero) until a short page is returned.
type ListOptions struct {
	Limit    int
	Offset   int
	FetchAll bool
	MaxLimit int
}

// FetchAll returns ListOptions that retrieve every item, using maxLimit as the page size.
// A zero maxLimit selects DefaultMaxLimit.
func FetchAll(maxLimit int) *ListOptions {
	return &ListOptions{FetchAll: true, MaxLimit: maxLimit}
}

// PageSize returns the effective page size for a fetch-all listing.
func (o *ListOptions) PageSize() int {
	if o == nil || o.MaxLimit <= 0 {
		return DefaultMaxLimit
	}
	return o.MaxLimit
}

// StorageAPI uploads raw content into temporary storage.
type StorageAPI interface {
	// AddStorage stores content under fileName. An empty contentType lets the client decide.
	AddStorage(ctx context.Context, fileName string, content []byte, contentType string) (*crowdintypes.Storage, error)
}

// SourceFilesAPI manages source files and directories of a project.
type SourceFilesAPI interface {
	// CreateFile adds a source file from a storage upload
	CreateFile(ctx context.Context, projectID int64, req *crowdintypes.CreateFileRequest) (*crowdintypes.File, error)

	// UpdateOrRestoreFile replaces a source file's content from a storage upload
	UpdateOrRestoreFile(
		ctx context.Context,
		projectID, fileID int64,
		req *crowdintypes.ReplaceFileRequest,
	) (*crowdintypes.File, error)

	// ListDirectories lists project directories
	ListDirectories(ctx context.Context, projectID int64, page *ListOptions) ([]crowdintypes.Directory, error)

	// CreateDirectory adds a directory
	CreateDirectory(
		ctx context.Context,
		projectID int64,
		req *crowdintypes.CreateDirectoryRequest,
	) (*crowdintypes.Directory, error)

	// ListFiles lists project source files matching opts
	ListFiles(
		ctx context.Context,
		projectID int64,
		opts *crowdintypes.ListFilesOptions,
		page *ListOptions,
	) ([]crowdintypes.File, error)
}

// TranslationsAPI imports translations.
type TranslationsAPI interface {
	// UploadTranslation imports a storage upload as translations of one file into languageID
	UploadTranslation(
		ctx context.Context,
		projectID int64,
		languageID string,
		req *crowdintypes.UploadTranslationRequest,
	) (*crowdintypes.UploadTranslationResponse, error)
}

// API is the full capability set used by the crowdin package.
type API interface {
	StorageAPI
	SourceFilesAPI
	TranslationsAPI
}
