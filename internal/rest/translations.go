package rest

import (
	"context"
	"net/http"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
)

// UploadTranslation imports translations: POST /projects/{projectId}/translations/{languageId}.
func (c *Client) UploadTranslation(
	ctx context.Context,
	projectID int64,
	languageID string,
	body *crowdintypes.UploadTranslationRequest,
) (*crowdintypes.UploadTranslationResponse, error) {
	params := projectParams(projectID)
	params["languageId"] = languageID

	var ack dataEnvelope[crowdintypes.UploadTranslationResponse]
	if err := c.send(ctx, http.MethodPost, "/projects/{projectId}/translations/{languageId}", params, body, &ack); err != nil {
		return nil, err
	}
	return &ack.Data, nil
}
