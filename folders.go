package crowdin

import (
	"context"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/internal/validation"
)

// FindFolder returns the first directory named name whose parent is parent.
// A nil parent matches root-level directories only. When several entries
// match, the first one in input order wins. FindFolder returns nil when no
// entry matches.
func FindFolder(directories []crowdintypes.Directory, name string, parent *crowdintypes.Directory) *crowdintypes.Directory {
	for i := range directories {
		d := &directories[i]
		if d.Name != name {
			continue
		}
		if parent == nil {
			if d.DirectoryID == nil {
				return d
			}
			continue
		}
		if d.DirectoryID != nil && *d.DirectoryID == parent.ID {
			return d
		}
	}
	return nil
}

// ListDirectories returns every directory of a project.
func (c *Client) ListDirectories(ctx context.Context, projectID int64) ([]crowdintypes.Directory, error) {
	if err := validation.ValidateProjectID("listDirectories", projectID); err != nil {
		return nil, err
	}

	dirs, err := c.api.ListDirectories(ctx, projectID, c.fetchAll())
	if err != nil {
		c.logFailure(ctx, "listDirectories", projectID, "", err)
		return nil, err
	}
	return dirs, nil
}

// GetFolder looks up a folder in directories and lists its files.
// A lookup miss is not an error: the result has a nil Folder and no request is made.
func (c *Client) GetFolder(
	ctx context.Context,
	directories []crowdintypes.Directory,
	projectID int64,
	name string,
	parent *crowdintypes.Directory,
) (*crowdintypes.FolderResult, error) {
	const op = "getFolder"
	if err := validation.ValidateProjectID(op, projectID); err != nil {
		return nil, err
	}
	if err := validation.ValidateName(op, name); err != nil {
		return nil, err
	}
	if err := validation.ValidateParent(op, parent); err != nil {
		return nil, err
	}

	folder := FindFolder(directories, name, parent)
	if folder == nil {
		return &crowdintypes.FolderResult{}, nil
	}

	files, err := c.listFolderFiles(ctx, projectID, folder)
	if err != nil {
		return nil, err
	}
	return &crowdintypes.FolderResult{Folder: folder, Files: files}, nil
}

// GetOrCreateFolder looks up a folder in directories, creating it under parent when it is missing,
// and lists its files. Created reports whether the folder was created by this call.
// A folder created before a failing file listing is left in place.
func (c *Client) GetOrCreateFolder(
	ctx context.Context,
	directories []crowdintypes.Directory,
	projectID int64,
	name string,
	parent *crowdintypes.Directory,
) (*crowdintypes.FolderResult, error) {
	result, err := c.GetFolder(ctx, directories, projectID, name, parent)
	if err != nil || result.Found() {
		return result, err
	}

	var parentID int64
	req := &crowdintypes.CreateDirectoryRequest{Name: name}
	if parent != nil {
		parentID = parent.ID
		req.DirectoryID = &parentID
	}

	folder, err := c.api.CreateDirectory(ctx, projectID, req)
	if err != nil {
		c.logFailure(ctx, "getOrCreateFolder", projectID, name, err)
		return nil, err
	}

	if c.logger != nil {
		c.logger.InfoContext(ctx, "created folder",
			"project_id", projectID,
			"directory_id", folder.ID,
			"parent_id", parentID,
			"name", name)
	}

	files, err := c.listFolderFiles(ctx, projectID, folder)
	if err != nil {
		return nil, err
	}
	return &crowdintypes.FolderResult{Folder: folder, Files: files, Created: true}, nil
}

func (c *Client) listFolderFiles(
	ctx context.Context,
	projectID int64,
	folder *crowdintypes.Directory,
) ([]crowdintypes.File, error) {
	folderID := folder.ID
	files, err := c.api.ListFiles(ctx, projectID, &crowdintypes.ListFilesOptions{DirectoryID: &folderID}, c.fetchAll())
	if err != nil {
		c.logFailure(ctx, "listFiles", projectID, folder.Name, err)
		return nil, err
	}
	return files, nil
}
