package crowdin

import (
	"context"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/internal/validation"
)

// UploadToStorage uploads content to a temporary storage slot and returns its ID.
// The content is passed through unmodified in a single request. The content
// type is left empty unless WithContentType is given.
func (c *Client) UploadToStorage(
	ctx context.Context,
	fileName string,
	content []byte,
	opts ...crowdintypes.UploadOption,
) (int64, error) {
	if err := validation.ValidateName("uploadToStorage", fileName); err != nil {
		return 0, err
	}

	cfg := &crowdintypes.UploadOptionConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	storage, err := c.api.AddStorage(ctx, fileName, content, cfg.ContentType)
	if err != nil {
		if c.logger != nil {
			c.logger.ErrorContext(ctx, "storage upload failed",
				"file_name", fileName,
				"error", err)
		}
		return 0, err
	}

	if c.logger != nil {
		c.logger.DebugContext(ctx, "uploaded to storage",
			"file_name", fileName,
			"storage_id", storage.ID,
			"size", len(content))
	}
	return storage.ID, nil
}
