// Package testutil provides a builder for creating mock Crowdin clients.
package testutil

import (
	"context"
	"sync"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdinapi"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
)

// Recorder captures the arguments of every call made against a mock built by MockBuilder.
type Recorder struct {
	mu sync.Mutex

	StorageNames        []string
	StorageContents     [][]byte
	StorageContentTypes []string
	CreatedFiles        []crowdintypes.CreateFileRequest
	ReplacedFiles       map[int64]crowdintypes.ReplaceFileRequest
	CreatedDirectories  []crowdintypes.CreateDirectoryRequest
	FileListings        []crowdintypes.ListFilesOptions
	Pages               []*crowdinapi.ListOptions
	ProjectIDs          []int64
}

// Calls returns the number of recorded project-scoped calls.
func (r *Recorder) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ProjectIDs)
}

func (r *Recorder) project(id int64) {
	r.ProjectIDs = append(r.ProjectIDs, id)
}

// MockBuilder provides a fluent interface for building MockAPI instances
// backed by an in-memory project.
type MockBuilder struct {
	client      *MockAPI
	recorder    *Recorder
	directories []crowdintypes.Directory
	files       []crowdintypes.File
	nextID      int64
	storageID   int64
}

// NewMockBuilder creates a new MockBuilder.
func NewMockBuilder() *MockBuilder {
	return &MockBuilder{
		client:   &MockAPI{},
		recorder: &Recorder{ReplacedFiles: make(map[int64]crowdintypes.ReplaceFileRequest)},
		nextID:   100,
	}
}

// WithDirectories seeds the remote directory tree.
func (b *MockBuilder) WithDirectories(dirs ...crowdintypes.Directory) *MockBuilder {
	b.directories = append(b.directories, dirs...)
	return b
}

// WithFiles seeds the remote source files.
func (b *MockBuilder) WithFiles(files ...crowdintypes.File) *MockBuilder {
	b.files = append(b.files, files...)
	return b
}

// WithStorageID fixes the storage ID returned by AddStorage.
func (b *MockBuilder) WithStorageID(id int64) *MockBuilder {
	b.storageID = id
	return b
}

// WithNextID sets the first ID assigned to created files and directories.
func (b *MockBuilder) WithNextID(id int64) *MockBuilder {
	b.nextID = id
	return b
}

// Recorder returns the call recorder shared with the built mock.
func (b *MockBuilder) Recorder() *Recorder {
	return b.recorder
}

// Build returns the configured MockAPI.
func (b *MockBuilder) Build() *MockAPI {
	rec := b.recorder

	b.client.AddStorageFunc = func(_ context.Context, name string, content []byte, ct string) (*crowdintypes.Storage, error) {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.StorageNames = append(rec.StorageNames, name)
		rec.StorageContents = append(rec.StorageContents, content)
		rec.StorageContentTypes = append(rec.StorageContentTypes, ct)
		return &crowdintypes.Storage{ID: b.storageID, FileName: name}, nil
	}

	b.client.CreateFileFunc = func(_ context.Context, projectID int64, req *crowdintypes.CreateFileRequest) (*crowdintypes.File, error) {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.project(projectID)
		rec.CreatedFiles = append(rec.CreatedFiles, *req)
		b.nextID++
		f := crowdintypes.File{ID: b.nextID, ProjectID: projectID, Name: req.Name, DirectoryID: req.DirectoryID}
		b.files = append(b.files, f)
		return &f, nil
	}

	b.client.UpdateOrRestoreFileFunc = func(_ context.Context, projectID, fileID int64, req *crowdintypes.ReplaceFileRequest) (*crowdintypes.File, error) {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.project(projectID)
		rec.ReplacedFiles[fileID] = *req
		return &crowdintypes.File{ID: fileID, ProjectID: projectID}, nil
	}

	b.client.ListDirectoriesFunc = func(_ context.Context, projectID int64, page *crowdinapi.ListOptions) ([]crowdintypes.Directory, error) {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.project(projectID)
		rec.Pages = append(rec.Pages, page)
		return append([]crowdintypes.Directory(nil), b.directories...), nil
	}

	b.client.CreateDirectoryFunc = func(_ context.Context, projectID int64, req *crowdintypes.CreateDirectoryRequest) (*crowdintypes.Directory, error) {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.project(projectID)
		rec.CreatedDirectories = append(rec.CreatedDirectories, *req)
		b.nextID++
		d := crowdintypes.Directory{ID: b.nextID, ProjectID: projectID, Name: req.Name, DirectoryID: req.DirectoryID}
		b.directories = append(b.directories, d)
		return &d, nil
	}

	b.client.ListFilesFunc = func(_ context.Context, projectID int64, opts *crowdintypes.ListFilesOptions, page *crowdinapi.ListOptions) ([]crowdintypes.File, error) {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.project(projectID)
		rec.Pages = append(rec.Pages, page)
		var filter crowdintypes.ListFilesOptions
		if opts != nil {
			filter = *opts
		}
		rec.FileListings = append(rec.FileListings, filter)

		var out []crowdintypes.File
		for _, f := range b.files {
			if filter.DirectoryID != nil && (f.DirectoryID == nil || *f.DirectoryID != *filter.DirectoryID) {
				continue
			}
			out = append(out, f)
		}
		return out, nil
	}

	b.client.UploadTranslationFunc = func(_ context.Context, projectID int64, languageID string, req *crowdintypes.UploadTranslationRequest) (*crowdintypes.UploadTranslationResponse, error) {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.project(projectID)
		return &crowdintypes.UploadTranslationResponse{
			ProjectID:  projectID,
			LanguageID: languageID,
			FileID:     req.FileID,
			StorageID:  req.StorageID,
		}, nil
	}

	return b.client
}
