package assets

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfig struct {
	env    string
	source string
	dir    string
}

func (c fakeConfig) GetAppEnv() string                { return c.env }
func (c fakeConfig) GetAppPort() string               { return "0" }
func (c fakeConfig) GetAppBaseURL() string            { return "http://localhost" }
func (c fakeConfig) GetLogFormat() string             { return "text" }
func (c fakeConfig) GetAssetSource() string           { return c.source }
func (c fakeConfig) GetStaticDir() string             { return c.dir }
func (c fakeConfig) GetStatusInterval() time.Duration { return time.Second }

func TestNewEmbeddedBundle(t *testing.T) {
	fsys, err := New(fakeConfig{source: "embed"})
	require.NoError(t, err)

	data, err := afero.ReadFile(fsys, "css/app.css")
	require.NoError(t, err)
	assert.Contains(t, string(data), "htmx-indicator")
}

func TestNewDiskDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "app.css"), []byte("body{}"), 0o644))

	fsys, err := New(fakeConfig{source: "disk", dir: dir})
	require.NoError(t, err)

	data, err := afero.ReadFile(fsys, "css/app.css")
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(data))
}

func TestNewRejectsUnknownSource(t *testing.T) {
	_, err := New(fakeConfig{source: "ftp"})
	assert.ErrorContains(t, err, "unknown asset source")
}

func TestHandlerServesFiles(t *testing.T) {
	fsys, err := New(fakeConfig{source: "embed"})
	require.NoError(t, err)

	srv := httptest.NewServer(http.StripPrefix("/static/", Handler(fsys)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/static/css/app.css")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
