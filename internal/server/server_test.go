package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"vsixfetch/internal/catalog"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *catalog.Catalog, string) {
	t.Helper()

	dir := t.TempDir()
	cat, err := catalog.Open(filepath.Join(dir, "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { cat.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	ts := httptest.NewServer(New(cat, log).Router())
	t.Cleanup(ts.Close)

	return ts, cat, dir
}

func recordPackage(t *testing.T, cat *catalog.Catalog, dir string, content []byte) *catalog.Entry {
	t.Helper()

	path := filepath.Join(dir, "ms-vscode.cpptools-1.21.6.vsix")
	require.NoError(t, os.WriteFile(path, content, 0644))

	entry := &catalog.Entry{
		ID:          "ms-vscode.cpptools",
		Publisher:   "ms-vscode",
		Name:        "cpptools",
		DisplayName: "C/C++",
		Version:     "1.21.6",
		FilePath:    path,
		FileSize:    int64(len(content)),
	}
	require.NoError(t, cat.Record(entry))
	return entry
}

func TestRootReportsCount(t *testing.T) {
	ts, cat, dir := newTestServer(t)
	recordPackage(t, cat, dir, []byte("bytes"))

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Service    string `json:"service"`
		Extensions int64  `json:"extensions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(1), body.Extensions)
}

func TestListExtensions(t *testing.T) {
	ts, cat, dir := newTestServer(t)
	recordPackage(t, cat, dir, []byte("bytes"))

	resp, err := http.Get(ts.URL + "/extensions")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Extensions []catalog.Entry `json:"extensions"`
		Total      int             `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "ms-vscode.cpptools", body.Extensions[0].ID)
}

func TestGetExtension(t *testing.T) {
	ts, cat, dir := newTestServer(t)
	recordPackage(t, cat, dir, []byte("bytes"))

	resp, err := http.Get(ts.URL + "/extensions/ms-vscode/cpptools")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entry catalog.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entry))
	assert.Equal(t, "1.21.6", entry.Version)
}

func TestGetExtensionNotFound(t *testing.T) {
	ts, _, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/extensions/nonexistent/invalid-extension")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServeVsix(t *testing.T) {
	ts, cat, dir := newTestServer(t)
	content := []byte("vsix package bytes")
	recordPackage(t, cat, dir, content)

	resp, err := http.Get(ts.URL + "/vsix/ms-vscode/cpptools")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "ms-vscode.cpptools-1.21.6.vsix")

	served, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, content, served)
}

func TestServeVsixMissingFile(t *testing.T) {
	ts, cat, dir := newTestServer(t)
	entry := recordPackage(t, cat, dir, []byte("bytes"))
	require.NoError(t, os.Remove(entry.FilePath))

	resp, err := http.Get(ts.URL + "/vsix/ms-vscode/cpptools")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
