package crowdin

import (
	"context"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/internal/validation"
)

// UploadTranslations imports translated content for one source file.
//
// The content is uploaded to storage and then imported for languageID.
// The result echoes the API acknowledgment; identifiers the response leaves
// empty are filled from the request.
func (c *Client) UploadTranslations(
	ctx context.Context,
	projectID, fileID int64,
	languageID, fileName string,
	content []byte,
	opts crowdintypes.TranslationOptions,
) (*crowdintypes.UploadTranslationResult, error) {
	const op = "uploadTranslations"
	if err := validation.ValidateProjectID(op, projectID); err != nil {
		return nil, err
	}
	if err := validation.ValidateFileID(op, fileID); err != nil {
		return nil, err
	}
	if err := validation.ValidateLanguageID(op, languageID); err != nil {
		return nil, err
	}

	storageID, err := c.UploadToStorage(ctx, fileName, content, WithContentType(opts.ContentType))
	if err != nil {
		return nil, err
	}

	resp, err := c.api.UploadTranslation(ctx, projectID, languageID, &crowdintypes.UploadTranslationRequest{
		StorageID:                   storageID,
		FileID:                      fileID,
		ImportEqSuggestions:         opts.ImportEqSuggestions,
		AutoApproveImported:         opts.AutoApproveImported,
		MarkAddedTranslationsAsDone: opts.MarkAddedTranslationsAsDone,
		TranslateHidden:             opts.TranslateHidden,
	})
	if err != nil {
		c.logFailure(ctx, op, projectID, fileName, err)
		return nil, err
	}

	result := &crowdintypes.UploadTranslationResult{
		ProjectID:  projectID,
		LanguageID: languageID,
		FileID:     fileID,
		StorageID:  storageID,
	}
	if resp != nil {
		if resp.ProjectID != 0 {
			result.ProjectID = resp.ProjectID
		}
		if resp.LanguageID != "" {
			result.LanguageID = resp.LanguageID
		}
		if resp.FileID != 0 {
			result.FileID = resp.FileID
		}
		if resp.StorageID != 0 {
			result.StorageID = resp.StorageID
		}
	}

	if c.logger != nil {
		c.logger.InfoContext(ctx, "uploaded translations",
			"project_id", result.ProjectID,
			"file_id", result.FileID,
			"language_id", result.LanguageID)
	}
	return result, nil
}
