package crowdin

import (
	"context"
	"time"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/errors"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/internal/sync/planner"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/internal/sync/scanner"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/internal/validation"
)

// UpdateSourceFiles pushes files into the folder directoryName under parent,
// creating the folder when it does not exist. Files already present in the
// folder are replaced; the others are created. Files are pushed one by one
// and the first failure is returned. The returned result describes the
// folder as it was before the push.
func (c *Client) UpdateSourceFiles(
	ctx context.Context,
	projectID int64,
	directoryName string,
	files []crowdintypes.FileEntity,
	parent *crowdintypes.Directory,
) (*crowdintypes.FolderResult, error) {
	if err := validation.ValidateParent("updateSourceFiles", parent); err != nil {
		return nil, err
	}

	directories, err := c.ListDirectories(ctx, projectID)
	if err != nil {
		return nil, err
	}

	result, err := c.GetOrCreateFolder(ctx, directories, projectID, directoryName, parent)
	if err != nil {
		return nil, err
	}

	for _, entity := range files {
		existing := result.FileByName(entity.Name)
		if _, err := c.UpdateOrCreateFile(ctx, projectID, entity, result.Folder.ID, existing); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// SyncDirectory pushes the files of a local directory into the Crowdin folder directoryName.
//
// Local files are matched to remote files by name: matches are replaced and
// the rest are created. Remote files without a local counterpart are left
// alone and reported as skipped. Files are processed sequentially in name
// order. Unless WithSyncFailFast is set, per-file failures are collected in
// the result and the sync continues. In a dry run the plan is returned
// without creating the folder or uploading anything.
//
// Example:
//
//	result, err := client.SyncDirectory(ctx, "./locales/en", projectID, "en",
//	    crowdin.WithSyncIncludePattern("*.json"),
//	)
func (c *Client) SyncDirectory(
	ctx context.Context,
	localPath string,
	projectID int64,
	directoryName string,
	opts ...crowdintypes.SyncOption,
) (*crowdintypes.SyncResult, error) {
	const op = "syncDirectory"
	start := time.Now()

	if err := validation.ValidateProjectID(op, projectID); err != nil {
		return nil, err
	}
	if err := validation.ValidateName(op, directoryName); err != nil {
		return nil, err
	}
	if localPath == "" {
		return nil, errors.NewValidationError(op, "local path cannot be empty")
	}

	cfg := &crowdintypes.SyncOptionConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := validation.ValidateParent(op, cfg.ParentFolder); err != nil {
		return nil, err
	}

	filesystem, root, err := c.localRoot(localPath)
	if err != nil {
		return nil, errors.NewError(op, err).WithName(localPath)
	}

	scan := scanner.NewScanner(filesystem)
	localFiles, err := scan.ScanLocal(ctx, root, cfg.Recursive, cfg.IncludePatterns, cfg.ExcludePatterns)
	if err != nil {
		return nil, errors.NewError(op, err).WithName(localPath)
	}

	plan := planner.NewPlanner()
	if err := plan.Validate(localFiles); err != nil {
		return nil, errors.NewValidationError(op, err.Error()).WithName(localPath)
	}

	if c.logger != nil {
		c.logger.InfoContext(ctx, "syncing directory",
			"project_id", projectID,
			"local_path", localPath,
			"folder", directoryName,
			"files", len(localFiles),
			"dry_run", cfg.DryRun)
	}

	directories, err := c.ListDirectories(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var folder *crowdintypes.FolderResult
	if cfg.DryRun {
		folder, err = c.GetFolder(ctx, directories, projectID, directoryName, cfg.ParentFolder)
	} else {
		folder, err = c.GetOrCreateFolder(ctx, directories, projectID, directoryName, cfg.ParentFolder)
	}
	if err != nil {
		return nil, err
	}

	operations, err := plan.Plan(localFiles, folder.Files)
	if err != nil {
		return nil, errors.NewValidationError(op, err.Error()).WithName(localPath)
	}

	result := &crowdintypes.SyncResult{
		Folder:        folder.Folder,
		FolderCreated: folder.Created,
	}

	if cfg.DryRun {
		summary := planner.Summarize(operations)
		result.FilesCreated = summary.Creates
		result.FilesUpdated = summary.Updates
		result.FilesSkipped = summary.Skips
		result.BytesUploaded = summary.Bytes
		result.Operations = operations
		result.Duration = time.Since(start)
		return result, nil
	}

	localByPath := make(map[string]*scanner.LocalFile, len(localFiles))
	for _, lf := range localFiles {
		localByPath[lf.Path] = lf
	}

	for _, operation := range operations {
		if err := ctx.Err(); err != nil {
			result.Duration = time.Since(start)
			return result, err
		}

		if operation.Type == crowdintypes.SyncSkip {
			result.FilesSkipped++
			result.Operations = append(result.Operations, operation)
			continue
		}

		fileID, err := c.syncFile(ctx, scan, localByPath[operation.LocalPath], operation, projectID, folder.Folder.ID, cfg)
		if err != nil {
			if cfg.FailFast {
				result.Duration = time.Since(start)
				return result, err
			}
			result.Errors = append(result.Errors, crowdintypes.SyncError{Name: operation.Name, Err: err})
			continue
		}

		operation.FileID = fileID
		result.Operations = append(result.Operations, operation)
		result.BytesUploaded += operation.Size
		if operation.Type == crowdintypes.SyncCreate {
			result.FilesCreated++
		} else {
			result.FilesUpdated++
		}
	}

	result.Duration = time.Since(start)

	if c.logger != nil {
		c.logger.InfoContext(ctx, "directory sync finished",
			"project_id", projectID,
			"folder", directoryName,
			"created", result.FilesCreated,
			"updated", result.FilesUpdated,
			"skipped", result.FilesSkipped,
			"failed", len(result.Errors),
			"duration", result.Duration)
	}
	return result, nil
}

func (c *Client) syncFile(
	ctx context.Context,
	scan *scanner.Scanner,
	local *scanner.LocalFile,
	operation crowdintypes.SyncOperation,
	projectID, folderID int64,
	cfg *crowdintypes.SyncOptionConfig,
) (int64, error) {
	content, err := scan.ReadFile(local)
	if err != nil {
		return 0, errors.NewError("syncDirectory", err).WithName(operation.Name)
	}

	entity := crowdintypes.FileEntity{
		Name:    operation.Name,
		Type:    cfg.FileType,
		Content: content,
	}
	if cfg.TitleFunc != nil {
		entity.Title = cfg.TitleFunc(operation.Name)
	}

	var existing *crowdintypes.File
	if operation.Type == crowdintypes.SyncUpdate {
		existing = &crowdintypes.File{ID: operation.FileID, Name: operation.Name}
	}

	return c.UpdateOrCreateFile(ctx, projectID, entity, folderID, existing)
}
