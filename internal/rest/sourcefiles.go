package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdinapi"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
)

// CreateFile adds a source file: POST /projects/{projectId}/files.
func (c *Client) CreateFile(
	ctx context.Context,
	projectID int64,
	body *crowdintypes.CreateFileRequest,
) (*crowdintypes.File, error) {
	var file dataEnvelope[crowdintypes.File]
	if err := c.send(ctx, http.MethodPost, "/projects/{projectId}/files", projectParams(projectID), body, &file); err != nil {
		return nil, err
	}
	return &file.Data, nil
}

// UpdateOrRestoreFile replaces a source file: PUT /projects/{projectId}/files/{fileId}.
func (c *Client) UpdateOrRestoreFile(
	ctx context.Context,
	projectID, fileID int64,
	body *crowdintypes.ReplaceFileRequest,
) (*crowdintypes.File, error) {
	params := projectParams(projectID)
	params["fileId"] = strconv.FormatInt(fileID, 10)

	var file dataEnvelope[crowdintypes.File]
	if err := c.send(ctx, http.MethodPut, "/projects/{projectId}/files/{fileId}", params, body, &file); err != nil {
		return nil, err
	}
	return &file.Data, nil
}

// ListDirectories lists directories: GET /projects/{projectId}/directories.
func (c *Client) ListDirectories(
	ctx context.Context,
	projectID int64,
	page *crowdinapi.ListOptions,
) ([]crowdintypes.Directory, error) {
	return list[crowdintypes.Directory](ctx, c, "/projects/{projectId}/directories", projectParams(projectID), nil, page)
}

// CreateDirectory adds a directory: POST /projects/{projectId}/directories.
func (c *Client) CreateDirectory(
	ctx context.Context,
	projectID int64,
	body *crowdintypes.CreateDirectoryRequest,
) (*crowdintypes.Directory, error) {
	var dir dataEnvelope[crowdintypes.Directory]
	if err := c.send(ctx, http.MethodPost, "/projects/{projectId}/directories", projectParams(projectID), body, &dir); err != nil {
		return nil, err
	}
	return &dir.Data, nil
}

// ListFiles lists source files: GET /projects/{projectId}/files.
func (c *Client) ListFiles(
	ctx context.Context,
	projectID int64,
	opts *crowdintypes.ListFilesOptions,
	page *crowdinapi.ListOptions,
) ([]crowdintypes.File, error) {
	query := map[string]string{}
	if opts != nil {
		if opts.DirectoryID != nil {
			query["directoryId"] = strconv.FormatInt(*opts.DirectoryID, 10)
		}
		if opts.BranchID != nil {
			query["branchId"] = strconv.FormatInt(*opts.BranchID, 10)
		}
	}
	return list[crowdintypes.File](ctx, c, "/projects/{projectId}/files", projectParams(projectID), query, page)
}

// send issues a JSON request and decodes the response body into result.
func (c *Client) send(ctx context.Context, method, path string, params map[string]string, body, result any) error {
	req, requestID, err := c.request(ctx)
	if err != nil {
		return err
	}

	req.SetPathParams(params).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(result)

	_, err = c.do(req, requestID, method, path)
	return err
}
