package crowdintypes

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_Redaction(t *testing.T) {
	token := Token("super-secret")

	assert.Equal(t, "super-secret", token.Value())
	assert.False(t, token.IsZero())
	assert.True(t, Token("").IsZero())

	formatted := []string{
		token.String(),
		fmt.Sprint(token),
		fmt.Sprintf("%s|%v|%+v|%#v|%q|%x", token, token, token, token, token, token),
		fmt.Sprintf("%v", struct{ T Token }{token}),
	}
	for _, out := range formatted {
		assert.NotContains(t, out, "super-secret")
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("auth", "token", token)
	assert.NotContains(t, buf.String(), "super-secret")
	assert.Contains(t, buf.String(), redacted)
}

func TestDirectory_ParentID(t *testing.T) {
	var nilDir *Directory
	assert.Zero(t, nilDir.ParentID())
	assert.Zero(t, (&Directory{}).ParentID())

	parent := int64(4)
	assert.Equal(t, int64(4), (&Directory{DirectoryID: &parent}).ParentID())
}

func TestFolderResult(t *testing.T) {
	var nilResult *FolderResult
	assert.False(t, nilResult.Found())
	assert.Nil(t, nilResult.FileByName("a"))

	r := &FolderResult{
		Folder: &Directory{ID: 1},
		Files:  []File{{ID: 2, Name: "a"}, {ID: 3, Name: "a"}},
	}
	assert.True(t, r.Found())
	assert.Equal(t, int64(2), r.FileByName("a").ID)
	assert.Nil(t, r.FileByName("b"))
}

func TestSyncError(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := SyncError{Name: "en.json", Err: cause}
	assert.Equal(t, "en.json: boom", err.Error())
	assert.ErrorIs(t, err, cause)
}
