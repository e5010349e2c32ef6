package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gabriel-vasile/mimetype"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
)

// FileNameHeader names the uploaded file on POST /storages.
const FileNameHeader = "Crowdin-API-FileName"

// AddStorage uploads content to POST /storages.
// When contentType is empty it is detected from the content itself.
func (c *Client) AddStorage(
	ctx context.Context,
	fileName string,
	content []byte,
	contentType string,
) (*crowdintypes.Storage, error) {
	req, requestID, err := c.request(ctx)
	if err != nil {
		return nil, err
	}

	if contentType == "" {
		contentType = mimetype.Detect(content).String()
	}

	var env dataEnvelope[crowdintypes.Storage]
	req.SetHeader(FileNameHeader, url.PathEscape(fileName)).
		SetHeader("Content-Type", contentType).
		SetBody(content).
		SetResult(&env)

	if _, err := c.do(req, requestID, http.MethodPost, "/storages"); err != nil {
		return nil, err
	}
	return &env.Data, nil
}
