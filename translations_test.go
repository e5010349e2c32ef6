package crowdin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/errors"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/internal/testutil"
)

func TestUploadTranslations(t *testing.T) {
	var (
		gotName        string
		gotContent     []byte
		gotContentType string
		gotLanguage    string
		gotRequest     *crowdintypes.UploadTranslationRequest
	)
	mock := &testutil.MockAPI{
		AddStorageFunc: func(_ context.Context, name string, content []byte, contentType string) (*crowdintypes.Storage, error) {
			gotName, gotContent, gotContentType = name, content, contentType
			return &crowdintypes.Storage{ID: 3}, nil
		},
		UploadTranslationFunc: func(
			_ context.Context,
			_ int64,
			languageID string,
			req *crowdintypes.UploadTranslationRequest,
		) (*crowdintypes.UploadTranslationResponse, error) {
			gotLanguage, gotRequest = languageID, req
			return &crowdintypes.UploadTranslationResponse{}, nil
		},
	}
	client := NewWithClient(mock)

	opts := crowdintypes.TranslationOptions{AutoApproveImported: testutil.Bool(true)}
	result, err := client.UploadTranslations(context.Background(), 1, 2, "de", "a.json", []byte("{}"), opts)
	require.NoError(t, err)

	assert.Equal(t, &crowdintypes.UploadTranslationResult{
		ProjectID:  1,
		LanguageID: "de",
		FileID:     2,
		StorageID:  3,
	}, result)

	assert.Equal(t, "a.json", gotName)
	assert.Equal(t, []byte("{}"), gotContent)
	assert.Empty(t, gotContentType)
	assert.Equal(t, "de", gotLanguage)
	assert.Equal(t, &crowdintypes.UploadTranslationRequest{
		StorageID:           3,
		FileID:              2,
		AutoApproveImported: testutil.Bool(true),
	}, gotRequest)
}

func TestUploadTranslations_ResponseWins(t *testing.T) {
	mock := &testutil.MockAPI{
		AddStorageFunc: func(context.Context, string, []byte, string) (*crowdintypes.Storage, error) {
			return &crowdintypes.Storage{ID: 3}, nil
		},
		UploadTranslationFunc: func(context.Context, int64, string, *crowdintypes.UploadTranslationRequest) (*crowdintypes.UploadTranslationResponse, error) {
			return &crowdintypes.UploadTranslationResponse{ProjectID: 1, LanguageID: "de-AT", FileID: 2, StorageID: 4}, nil
		},
	}
	client := NewWithClient(mock)

	result, err := client.UploadTranslations(context.Background(), 1, 2, "de", "a.json", nil, crowdintypes.TranslationOptions{
		ContentType: "application/json",
	})
	require.NoError(t, err)
	assert.Equal(t, "de-AT", result.LanguageID)
	assert.Equal(t, int64(4), result.StorageID)
}

func TestUploadTranslations_Errors(t *testing.T) {
	apiErr := errors.NewAPIError("POST", "/projects/1/translations/de", 404, "file not found", nil)
	client := NewWithClient(&testutil.MockAPI{
		UploadTranslationFunc: func(context.Context, int64, string, *crowdintypes.UploadTranslationRequest) (*crowdintypes.UploadTranslationResponse, error) {
			return nil, apiErr
		},
	})

	_, err := client.UploadTranslations(context.Background(), 1, 2, "de", "a.json", nil, crowdintypes.TranslationOptions{})
	assert.Same(t, apiErr, err)
	assert.True(t, errors.IsNotFound(err))

	for name, call := range map[string]func() error{
		"project": func() error {
			_, err := client.UploadTranslations(context.Background(), 0, 2, "de", "a.json", nil, crowdintypes.TranslationOptions{})
			return err
		},
		"file": func() error {
			_, err := client.UploadTranslations(context.Background(), 1, 0, "de", "a.json", nil, crowdintypes.TranslationOptions{})
			return err
		},
		"language": func() error {
			_, err := client.UploadTranslations(context.Background(), 1, 2, "", "a.json", nil, crowdintypes.TranslationOptions{})
			return err
		},
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, errors.IsInvalidInput(call()))
		})
	}
}
