package crowdin

import (
	"context"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/internal/validation"
)

// UpdateOrCreateFile pushes entity into a project and returns the file ID.
//
// The content is uploaded to storage first. When existing is nil a new file
// is created in directoryID (0 places it at the project root) and its new ID
// is returned. Otherwise the content of existing is replaced and existing.ID
// is returned unchanged. Optional fields that are empty are left out of the
// create request.
func (c *Client) UpdateOrCreateFile(
	ctx context.Context,
	projectID int64,
	entity crowdintypes.FileEntity,
	directoryID int64,
	existing *crowdintypes.File,
	opts ...crowdintypes.FileOption,
) (int64, error) {
	const op = "updateOrCreateFile"
	if err := validation.ValidateProjectID(op, projectID); err != nil {
		return 0, err
	}
	if err := validation.ValidateName(op, entity.Name); err != nil {
		return 0, err
	}
	if existing != nil {
		if err := validation.ValidateFileID(op, existing.ID); err != nil {
			return 0, err
		}
	}

	cfg := &crowdintypes.FileOptionConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	storageID, err := c.UploadToStorage(ctx, entity.Name, entity.Content, WithContentType(cfg.ContentType))
	if err != nil {
		return 0, err
	}

	if existing != nil {
		if _, err := c.api.UpdateOrRestoreFile(ctx, projectID, existing.ID, &crowdintypes.ReplaceFileRequest{
			StorageID: storageID,
		}); err != nil {
			c.logFailure(ctx, op, projectID, entity.Name, err)
			return 0, err
		}

		if c.logger != nil {
			c.logger.InfoContext(ctx, "updated source file",
				"project_id", projectID,
				"file_id", existing.ID,
				"name", entity.Name)
		}
		return existing.ID, nil
	}

	file, err := c.api.CreateFile(ctx, projectID, newCreateFileRequest(storageID, entity, directoryID, cfg))
	if err != nil {
		c.logFailure(ctx, op, projectID, entity.Name, err)
		return 0, err
	}

	if c.logger != nil {
		c.logger.InfoContext(ctx, "created source file",
			"project_id", projectID,
			"file_id", file.ID,
			"directory_id", directoryID,
			"name", entity.Name)
	}
	return file.ID, nil
}

func newCreateFileRequest(
	storageID int64,
	entity crowdintypes.FileEntity,
	directoryID int64,
	cfg *crowdintypes.FileOptionConfig,
) *crowdintypes.CreateFileRequest {
	req := &crowdintypes.CreateFileRequest{
		StorageID: storageID,
		Name:      entity.Name,
	}
	if entity.Title != "" {
		req.Title = &entity.Title
	}
	if entity.Type != "" {
		req.Type = &entity.Type
	}
	if directoryID != 0 {
		req.DirectoryID = &directoryID
	}
	if cfg.BranchID != 0 {
		req.BranchID = &cfg.BranchID
	}

	pattern := entity.ExportPattern
	if cfg.ExportPattern != "" {
		pattern = cfg.ExportPattern
	}
	if pattern != "" {
		req.ExportOptions = &crowdintypes.ExportOptions{ExportPattern: pattern}
	}
	return req
}

func (c *Client) logFailure(ctx context.Context, op string, projectID int64, name string, err error) {
	if c.logger == nil {
		return
	}
	c.logger.ErrorContext(ctx, "crowdin operation failed",
		"operation", op,
		"project_id", projectID,
		"name", name,
		"error", err)
}
