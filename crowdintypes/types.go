// Package crowdintypes provides shared type definitions for the Crowdin module.
package crowdintypes

import (
	"time"
)

// Directory is a remote folder node inside a Crowdin project.
// A Directory whose ID is zero has not been created remotely yet.
type Directory struct {
	ID            int64     `json:"id"`
	ProjectID     int64     `json:"projectId"`
	BranchID      *int64    `json:"branchId"`
	DirectoryID   *int64    `json:"directoryId"`
	Name          string    `json:"name"`
	Title         string    `json:"title,omitempty"`
	ExportPattern string    `json:"exportPattern,omitempty"`
	Path          string    `json:"path,omitempty"`
	Priority      string    `json:"priority,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ParentID returns the parent directory ID, or 0 for a root-level directory.
func (d *Directory) ParentID() int64 {
	if d == nil || d.DirectoryID == nil {
		return 0
	}
	return *d.DirectoryID
}

// File is a source file descriptor inside a Crowdin project.
type File struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"projectId"`
	BranchID    *int64    `json:"branchId"`
	DirectoryID *int64    `json:"directoryId"`
	Name        string    `json:"name"`
	Title       string    `json:"title,omitempty"`
	Type        string    `json:"type,omitempty"`
	Path        string    `json:"path,omitempty"`
	Status      string    `json:"status,omitempty"`
	RevisionID  int64     `json:"revisionId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FileEntity is one localizable source file to be pushed.
// It is built by the caller and never modified by this module.
type FileEntity struct {
	// Name is the remote file name, including extension
	Name string

	// Title is an optional display title
	Title string

	// Type is the Crowdin file type (e.g., "auto", "json", "android")
	Type string

	// ExportPattern is an optional export pattern applied when the file is created
	ExportPattern string

	// Content is the raw file content
	Content []byte
}

// Storage is a temporary upload slot referenced by a subsequent file or translation request.
type Storage struct {
	ID       int64  `json:"id"`
	FileName string `json:"fileName,omitempty"`
}

// ExportOptions holds per-file export settings sent on file creation.
type ExportOptions struct {
	ExportPattern string `json:"exportPattern,omitempty"`
}

// CreateFileRequest is the payload for adding a source file.
// Pointer fields are omitted from the JSON body when nil.
type CreateFileRequest struct {
	StorageID     int64          `json:"storageId"`
	Name          string         `json:"name"`
	Title         *string        `json:"title,omitempty"`
	Type          *string        `json:"type,omitempty"`
	DirectoryID   *int64         `json:"directoryId,omitempty"`
	BranchID      *int64         `json:"branchId,omitempty"`
	ExportOptions *ExportOptions `json:"exportOptions,omitempty"`
}

// ReplaceFileRequest is the payload for replacing a source file's content from storage.
type ReplaceFileRequest struct {
	StorageID int64 `json:"storageId"`
}

// CreateDirectoryRequest is the payload for adding a directory.
type CreateDirectoryRequest struct {
	Name          string  `json:"name"`
	DirectoryID   *int64  `json:"directoryId,omitempty"`
	BranchID      *int64  `json:"branchId,omitempty"`
	Title         *string `json:"title,omitempty"`
	ExportPattern *string `json:"exportPattern,omitempty"`
	Priority      *string `json:"priority,omitempty"`
}

// ListFilesOptions filters a source file listing.
type ListFilesOptions struct {
	DirectoryID *int64
	BranchID    *int64
}

// UploadTranslationRequest is the payload for importing translations of one file.
type UploadTranslationRequest struct {
	StorageID                   int64 `json:"storageId"`
	FileID                      int64 `json:"fileId"`
	ImportEqSuggestions         *bool `json:"importEqSuggestions,omitempty"`
	AutoApproveImported         *bool `json:"autoApproveImported,omitempty"`
	MarkAddedTranslationsAsDone *bool `json:"markAddedTranslationsAsDone,omitempty"`
	TranslateHidden             *bool `json:"translateHidden,omitempty"`
}

// UploadTranslationResponse is the API acknowledgment of a translation upload.
type UploadTranslationResponse struct {
	ProjectID  int64  `json:"projectId"`
	StorageID  int64  `json:"storageId"`
	LanguageID string `json:"languageId"`
	FileID     int64  `json:"fileId"`
}

// TranslationOptions are the import flags forwarded with a translation upload.
// Nil fields are left to the project defaults.
type TranslationOptions struct {
	ImportEqSuggestions         *bool
	AutoApproveImported         *bool
	MarkAddedTranslationsAsDone *bool
	TranslateHidden             *bool

	// ContentType is passed to the storage upload; empty means unspecified
	ContentType string
}

// UploadTranslationResult acknowledges a translation upload.
type UploadTranslationResult struct {
	ProjectID  int64
	LanguageID string
	FileID     int64
	StorageID  int64
}

// FolderResult is the outcome of a folder lookup.
type FolderResult struct {
	// Folder is the matching directory, or nil when the lookup missed
	Folder *Directory

	// Files are the source files inside Folder
	Files []File

	// Created reports whether Folder was created by this call
	Created bool
}

// Found reports whether the lookup produced a folder.
func (r *FolderResult) Found() bool {
	return r != nil && r.Folder != nil
}

// FileByName returns the first file in the result with the given name.
func (r *FolderResult) FileByName(name string) *File {
	if r == nil {
		return nil
	}
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}
