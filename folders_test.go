package crowdin

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdinapi"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/errors"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/internal/testutil"
)

func TestFindFolder(t *testing.T) {
	parent := testutil.Dir(3, "root", nil)
	dirs := []crowdintypes.Directory{
		testutil.Dir(1, "docs", nil),
		testutil.Dir(2, "docs", testutil.Int64(3)),
		testutil.Dir(4, "docs", testutil.Int64(3)),
		testutil.Dir(5, "api", testutil.Int64(3)),
	}

	tests := []struct {
		name   string
		target string
		parent *crowdintypes.Directory
		wantID int64
	}{
		{name: "root level", target: "docs", wantID: 1},
		{name: "under parent, first match wins", target: "docs", parent: &parent, wantID: 2},
		{name: "nested only", target: "api", parent: &parent, wantID: 5},
		{name: "nested name is not root level", target: "api"},
		{name: "missing", target: "guides", parent: &parent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindFolder(dirs, tt.target, tt.parent)
			if tt.wantID == 0 {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}

	assert.Nil(t, FindFolder(nil, "docs", nil))
}

func TestGetFolder_Found(t *testing.T) {
	builder := testutil.NewMockBuilder().WithFiles(
		testutil.FileIn(10, "a.json", 2),
		testutil.FileIn(11, "b.json", 2),
		testutil.FileIn(12, "c.json", 1),
	)
	client := NewWithClient(builder.Build(), WithPageSize(100))

	dirs := []crowdintypes.Directory{testutil.Dir(1, "other", nil), testutil.Dir(2, "docs", nil)}
	result, err := client.GetFolder(context.Background(), dirs, 8, "docs", nil)
	require.NoError(t, err)

	require.True(t, result.Found())
	assert.Equal(t, int64(2), result.Folder.ID)
	assert.False(t, result.Created)
	require.Len(t, result.Files, 2)
	assert.Equal(t, int64(11), result.FileByName("b.json").ID)
	assert.Nil(t, result.FileByName("c.json"))

	rec := builder.Recorder()
	require.Len(t, rec.FileListings, 1)
	assert.Equal(t, testutil.Int64(2), rec.FileListings[0].DirectoryID)
	assert.Equal(t, []*crowdinapi.ListOptions{{FetchAll: true, MaxLimit: 100}}, rec.Pages)
}

func TestGetFolder_NotFound(t *testing.T) {
	builder := testutil.NewMockBuilder()
	client := NewWithClient(builder.Build())

	result, err := client.GetFolder(context.Background(), nil, 8, "docs", nil)
	require.NoError(t, err)
	assert.False(t, result.Found())
	assert.Empty(t, result.Files)
	assert.Zero(t, builder.Recorder().Calls())
}

func TestGetOrCreateFolder_Creates(t *testing.T) {
	builder := testutil.NewMockBuilder().WithNextID(20)
	client := NewWithClient(builder.Build())

	parent := testutil.Dir(3, "root", nil)
	result, err := client.GetOrCreateFolder(context.Background(), []crowdintypes.Directory{}, 1, "docs", &parent)
	require.NoError(t, err)

	rec := builder.Recorder()
	require.Len(t, rec.CreatedDirectories, 1)
	assert.Equal(t, crowdintypes.CreateDirectoryRequest{Name: "docs", DirectoryID: testutil.Int64(3)}, rec.CreatedDirectories[0])

	assert.True(t, result.Created)
	require.NotNil(t, result.Folder)
	assert.Equal(t, int64(21), result.Folder.ID)
	assert.Equal(t, "docs", result.Folder.Name)
	assert.Empty(t, result.Files)

	require.Len(t, rec.FileListings, 1)
	assert.Equal(t, testutil.Int64(21), rec.FileListings[0].DirectoryID)
}

func TestGetOrCreateFolder_CreatesAtRoot(t *testing.T) {
	builder := testutil.NewMockBuilder()
	client := NewWithClient(builder.Build())

	// A same-named folder under another parent does not match a root lookup.
	dirs := []crowdintypes.Directory{testutil.Dir(2, "docs", testutil.Int64(3))}
	result, err := client.GetOrCreateFolder(context.Background(), dirs, 1, "docs", nil)
	require.NoError(t, err)
	assert.True(t, result.Created)

	req := builder.Recorder().CreatedDirectories[0]
	assert.Equal(t, "docs", req.Name)
	assert.Nil(t, req.DirectoryID)
}

func TestGetOrCreateFolder_Existing(t *testing.T) {
	builder := testutil.NewMockBuilder().WithFiles(testutil.FileIn(10, "a.json", 2))
	client := NewWithClient(builder.Build())

	dirs := []crowdintypes.Directory{testutil.Dir(2, "docs", nil)}
	result, err := client.GetOrCreateFolder(context.Background(), dirs, 1, "docs", nil)
	require.NoError(t, err)

	assert.False(t, result.Created)
	assert.Equal(t, int64(2), result.Folder.ID)
	assert.Len(t, result.Files, 1)
	assert.Empty(t, builder.Recorder().CreatedDirectories)
}

func TestGetOrCreateFolder_ListFailureKeepsDirectory(t *testing.T) {
	listErr := fmt.Errorf("list failed")
	created := 0
	mock := &testutil.MockAPI{
		CreateDirectoryFunc: func(_ context.Context, _ int64, req *crowdintypes.CreateDirectoryRequest) (*crowdintypes.Directory, error) {
			created++
			return &crowdintypes.Directory{ID: 5, Name: req.Name}, nil
		},
		ListFilesFunc: func(context.Context, int64, *crowdintypes.ListFilesOptions, *crowdinapi.ListOptions) ([]crowdintypes.File, error) {
			return nil, listErr
		},
	}
	client := NewWithClient(mock)

	result, err := client.GetOrCreateFolder(context.Background(), nil, 1, "docs", nil)
	assert.Nil(t, result)
	assert.Same(t, listErr, err)
	assert.Equal(t, 1, created)
}

func TestGetOrCreateFolder_CreateFailure(t *testing.T) {
	apiErr := errors.NewAPIError("POST", "/projects/1/directories", 403, "", nil)
	mock := &testutil.MockAPI{
		CreateDirectoryFunc: func(context.Context, int64, *crowdintypes.CreateDirectoryRequest) (*crowdintypes.Directory, error) {
			return nil, apiErr
		},
	}
	client := NewWithClient(mock)

	_, err := client.GetOrCreateFolder(context.Background(), nil, 1, "docs", nil)
	assert.Same(t, apiErr, err)
	assert.ErrorIs(t, err, errors.ErrForbidden)
}

func TestGetOrCreateFolder_UnsavedParent(t *testing.T) {
	builder := testutil.NewMockBuilder()
	client := NewWithClient(builder.Build())

	parent := &crowdintypes.Directory{Name: "root"}
	_, err := client.GetOrCreateFolder(context.Background(), nil, 1, "docs", parent)
	assert.True(t, errors.IsInvalidInput(err))

	rec := builder.Recorder()
	assert.Empty(t, rec.CreatedDirectories)
	assert.Empty(t, rec.FileListings)
}

func TestListDirectories(t *testing.T) {
	builder := testutil.NewMockBuilder().WithDirectories(testutil.Dir(1, "a", nil), testutil.Dir(2, "b", testutil.Int64(1)))
	client := NewWithClient(builder.Build())

	dirs, err := client.ListDirectories(context.Background(), 4)
	require.NoError(t, err)
	assert.Len(t, dirs, 2)
	assert.Equal(t, []*crowdinapi.ListOptions{{FetchAll: true, MaxLimit: crowdinapi.DefaultMaxLimit}}, builder.Recorder().Pages)

	_, err = client.ListDirectories(context.Background(), -1)
	assert.True(t, errors.IsInvalidInput(err))
}
