// Package testutil provides test utilities and mocks for Crowdin operations.
// This package is internal and should only be used for testing within the Crowdin module.
package testutil

import (
	"context"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdinapi"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
)

// MockAPI is a mock implementation of the crowdinapi.API interface for testing.
// It allows customization of each operation through function fields.
// Unset fields return zero-value responses.
type MockAPI struct {
	AddStorageFunc          func(context.Context, string, []byte, string) (*crowdintypes.Storage, error)
	CreateFileFunc          func(context.Context, int64, *crowdintypes.CreateFileRequest) (*crowdintypes.File, error)
	UpdateOrRestoreFileFunc func(context.Context, int64, int64, *crowdintypes.ReplaceFileRequest) (*crowdintypes.File, error)
	ListDirectoriesFunc     func(context.Context, int64, *crowdinapi.ListOptions) ([]crowdintypes.Directory, error)
	CreateDirectoryFunc     func(context.Context, int64, *crowdintypes.CreateDirectoryRequest) (*crowdintypes.Directory, error)
	ListFilesFunc           func(context.Context, int64, *crowdintypes.ListFilesOptions, *crowdinapi.ListOptions) ([]crowdintypes.File, error)
	UploadTranslationFunc   func(context.Context, int64, string, *crowdintypes.UploadTranslationRequest) (*crowdintypes.UploadTranslationResponse, error)
}

// AddStorage mocks the storage upload operation.
func (m *MockAPI) AddStorage(
	ctx context.Context,
	fileName string,
	content []byte,
	contentType string,
) (*crowdintypes.Storage, error) {
	if m.AddStorageFunc != nil {
		return m.AddStorageFunc(ctx, fileName, content, contentType)
	}
	return &crowdintypes.Storage{}, nil
}

// CreateFile mocks the add-file operation.
func (m *MockAPI) CreateFile(
	ctx context.Context,
	projectID int64,
	req *crowdintypes.CreateFileRequest,
) (*crowdintypes.File, error) {
	if m.CreateFileFunc != nil {
		return m.CreateFileFunc(ctx, projectID, req)
	}
	return &crowdintypes.File{}, nil
}

// UpdateOrRestoreFile mocks the replace-file operation.
func (m *MockAPI) UpdateOrRestoreFile(
	ctx context.Context,
	projectID, fileID int64,
	req *crowdintypes.ReplaceFileRequest,
) (*crowdintypes.File, error) {
	if m.UpdateOrRestoreFileFunc != nil {
		return m.UpdateOrRestoreFileFunc(ctx, projectID, fileID, req)
	}
	return &crowdintypes.File{ID: fileID}, nil
}

// ListDirectories mocks the directory listing operation.
func (m *MockAPI) ListDirectories(
	ctx context.Context,
	projectID int64,
	page *crowdinapi.ListOptions,
) ([]crowdintypes.Directory, error) {
	if m.ListDirectoriesFunc != nil {
		return m.ListDirectoriesFunc(ctx, projectID, page)
	}
	return nil, nil
}

// CreateDirectory mocks the add-directory operation.
func (m *MockAPI) CreateDirectory(
	ctx context.Context,
	projectID int64,
	req *crowdintypes.CreateDirectoryRequest,
) (*crowdintypes.Directory, error) {
	if m.CreateDirectoryFunc != nil {
		return m.CreateDirectoryFunc(ctx, projectID, req)
	}
	return &crowdintypes.Directory{Name: req.Name, DirectoryID: req.DirectoryID}, nil
}

// ListFiles mocks the file listing operation.
func (m *MockAPI) ListFiles(
	ctx context.Context,
	projectID int64,
	opts *crowdintypes.ListFilesOptions,
	page *crowdinapi.ListOptions,
) ([]crowdintypes.File, error) {
	if m.ListFilesFunc != nil {
		return m.ListFilesFunc(ctx, projectID, opts, page)
	}
	return nil, nil
}

// UploadTranslation mocks the translation import operation.
func (m *MockAPI) UploadTranslation(
	ctx context.Context,
	projectID int64,
	languageID string,
	req *crowdintypes.UploadTranslationRequest,
) (*crowdintypes.UploadTranslationResponse, error) {
	if m.UploadTranslationFunc != nil {
		return m.UploadTranslationFunc(ctx, projectID, languageID, req)
	}
	return &crowdintypes.UploadTranslationResponse{}, nil
}

// Ensure MockAPI implements crowdinapi.API interface
var _ crowdinapi.API = (*MockAPI)(nil)
