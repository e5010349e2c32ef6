// Package crowdin provides tests for client initialization and configuration.
package crowdin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/credentials"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdinapi"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/errors"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/internal/testutil"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := newConfig()
	assert.Equal(t, defaultMaxRetries, cfg.MaxRetries)
	assert.Equal(t, crowdinapi.DefaultMaxLimit, cfg.PageSize)
	assert.Nil(t, cfg.Credentials)
	assert.Nil(t, cfg.Logger)
}

func TestOptions(t *testing.T) {
	fs := memfs.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	httpClient := &http.Client{}
	provider := credentials.Static("p")

	cfg := newConfig(
		WithToken("tok"),
		WithCredentials(provider),
		WithOrganization("acme"),
		WithBaseURL("http://localhost/api/v2"),
		WithMaxRetries(5),
		WithMaxRetries(-1),
		WithPageSize(50),
		WithPageSize(0),
		WithHTTPClient(httpClient),
		WithLogger(logger),
		WithFilesystem(fs),
		WithUserAgent("ua/1"),
	)

	assert.Equal(t, provider, cfg.Credentials)
	assert.Equal(t, "acme", cfg.Organization)
	assert.Equal(t, "http://localhost/api/v2", cfg.BaseURL)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Same(t, httpClient, cfg.HTTPClient)
	assert.Same(t, logger, cfg.Logger)
	assert.Equal(t, fs, cfg.Filesystem)
	assert.Equal(t, "ua/1", cfg.UserAgent)

	assert.Equal(t, credentials.Static("tok"), newConfig(WithToken("tok")).Credentials)
}

func TestNewWithClient_PageSizeClamp(t *testing.T) {
	c := NewWithClient(&testutil.MockAPI{}, WithPageSize(10_000))
	assert.Equal(t, crowdinapi.DefaultMaxLimit, c.pageSize)

	c = NewWithClient(&testutil.MockAPI{}, WithPageSize(10))
	assert.Equal(t, 10, c.pageSize)
	assert.NotNil(t, c.API())
}

func TestClient_SetFilesystem_Concurrent(t *testing.T) {
	c := NewWithClient(&testutil.MockAPI{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.SetFilesystem(memfs.New())
		}()
		go func() {
			defer wg.Done()
			assert.NotNil(t, c.filesystem())
		}()
	}
	wg.Wait()
}

// fakeCrowdin is a minimal in-memory Crowdin API served over HTTP.
type fakeCrowdin struct {
	mu          sync.Mutex
	directories []crowdintypes.Directory
	files       []crowdintypes.File
	nextID      int64
	authHeaders []string
	storages    map[int64]string
}

func (f *fakeCrowdin) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.authHeaders = append(f.authHeaders, r.Header.Get("Authorization"))
	w.Header().Set("Content-Type", "application/json")

	path := strings.TrimPrefix(r.URL.Path, "/api/v2")
	switch {
	case r.Method == http.MethodPost && path == "/storages":
		body, _ := io.ReadAll(r.Body)
		f.nextID++
		f.storages[f.nextID] = string(body)
		writeData(w, crowdintypes.Storage{ID: f.nextID, FileName: r.Header.Get("Crowdin-API-FileName")})

	case r.Method == http.MethodGet && path == "/projects/1/directories":
		writeList(w, f.directories)

	case r.Method == http.MethodPost && path == "/projects/1/directories":
		var req crowdintypes.CreateDirectoryRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.nextID++
		d := crowdintypes.Directory{ID: f.nextID, ProjectID: 1, Name: req.Name, DirectoryID: req.DirectoryID}
		f.directories = append(f.directories, d)
		writeData(w, d)

	case r.Method == http.MethodGet && path == "/projects/1/files":
		var out []crowdintypes.File
		for _, file := range f.files {
			if r.URL.Query().Get("directoryId") == "" || (file.DirectoryID != nil &&
				r.URL.Query().Get("directoryId") == jsonNumber(*file.DirectoryID)) {
				out = append(out, file)
			}
		}
		writeList(w, out)

	case r.Method == http.MethodPost && path == "/projects/1/files":
		var req crowdintypes.CreateFileRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if _, ok := f.storages[req.StorageID]; !ok {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"errors":[{"error":{"key":"storageId","errors":[{"code":"notFound","message":"Storage not found"}]}}]}`)
			return
		}
		f.nextID++
		file := crowdintypes.File{ID: f.nextID, ProjectID: 1, Name: req.Name, DirectoryID: req.DirectoryID}
		f.files = append(f.files, file)
		writeData(w, file)

	case r.Method == http.MethodPut && strings.HasPrefix(path, "/projects/1/files/"):
		writeData(w, crowdintypes.File{ID: 1})

	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":{"code":404,"message":"Not Found"}}`)
	}
}

func jsonNumber(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func writeData(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(map[string]any{"data": v})
}

func writeList[T any](w http.ResponseWriter, items []T) {
	wrapped := make([]map[string]any, 0, len(items))
	for _, item := range items {
		wrapped = append(wrapped, map[string]any{"data": item})
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data":       wrapped,
		"pagination": map[string]int{"offset": 0, "limit": len(items)},
	})
}

func TestNew_EndToEnd(t *testing.T) {
	fake := &fakeCrowdin{nextID: 100, storages: map[int64]string{}}
	server := httptest.NewServer(fake)
	defer server.Close()

	t.Setenv(EnvToken, "env-token")
	t.Setenv(EnvBaseURL, server.URL+"/api/v2")

	var logs bytes.Buffer
	client, err := New(WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	require.NoError(t, err)

	files := []crowdintypes.FileEntity{{Name: "en.json", Content: []byte(`{"a":"b"}`)}}
	result, err := client.UpdateSourceFiles(context.Background(), 1, "docs", files, nil)
	require.NoError(t, err)
	assert.True(t, result.Created)

	// A second push finds the folder and replaces the file.
	result, err = client.UpdateSourceFiles(context.Background(), 1, "docs", files, nil)
	require.NoError(t, err)
	assert.False(t, result.Created)
	require.NotNil(t, result.FileByName("en.json"))

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Len(t, fake.directories, 1)
	assert.Len(t, fake.files, 1)
	for _, h := range fake.authHeaders {
		assert.Equal(t, "Bearer env-token", h)
	}

	assert.Contains(t, logs.String(), "created folder")
	assert.Contains(t, logs.String(), "request_id=")
	assert.NotContains(t, logs.String(), "env-token")
}

func TestNew_APIErrorsPassThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"code":401,"message":"Unauthorized"}}`)
	}))
	defer server.Close()

	client, err := New(WithToken("bad"), WithBaseURL(server.URL), WithMaxRetries(0))
	require.NoError(t, err)

	_, err = client.ListDirectories(context.Background(), 1)
	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.ErrorIs(t, err, errors.ErrUnauthorized)
}

func TestNew_MissingToken(t *testing.T) {
	t.Setenv(EnvToken, "")
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("no request expected")
	}))
	defer server.Close()

	client, err := New(WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.ListDirectories(context.Background(), 1)
	assert.ErrorIs(t, err, errors.ErrMissingToken)
}
