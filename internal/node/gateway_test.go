package node

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchUsesContentDisposition(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Path, "/bzz/"), "unexpected path %s", r.URL.Path)
		w.Header().Set("Content-Disposition", `attachment; filename="report.pdf"`)
		_, _ = w.Write([]byte("pdf bytes"))
	}))
	defer server.Close()

	g := NewGateway(strings.TrimPrefix(server.URL, "http://"))

	destDir := t.TempDir()
	path, err := g.Fetch(context.Background(), "abcd1234", destDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(destDir, "report.pdf"), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(content))
}

func TestFetchFallbackFilename(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("data"))
	}))
	defer server.Close()

	g := NewGateway(strings.TrimPrefix(server.URL, "http://"))

	destDir := t.TempDir()
	path, err := g.Fetch(context.Background(), "feedbeef", destDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(destDir, "downloaded_file_feedbeef.dat"), path)
}

func TestFetchErrorStatusWritesNoFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	g := NewGateway(strings.TrimPrefix(server.URL, "http://"))

	destDir := t.TempDir()
	_, err := g.Fetch(context.Background(), "missing", destDir)
	require.Error(t, err)

	entries, err := os.ReadDir(destDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no files or temp artifacts should remain")
}

func TestFilenameFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "quoted", header: `attachment; filename="data.tar"`, want: "data.tar"},
		{name: "unquoted", header: `attachment; filename=data.tar`, want: "data.tar"},
		{name: "empty_header", header: "", want: ""},
		{name: "no_filename_param", header: "attachment", want: ""},
		{name: "path_stripped", header: `attachment; filename="/etc/passwd"`, want: "passwd"},
		{name: "traversal_rejected", header: `attachment; filename=".."`, want: ""},
		{name: "garbage", header: `;;;`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filenameFromHeader(tt.header))
		})
	}
}
