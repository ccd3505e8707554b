package source

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/untangled-web/server/internal/document"
	"github.com/untangled-web/server/internal/logger"
	"olympos.io/encoding/edn"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// chdir is a stand-in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}

func writeTempEDN(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.edn")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

// ── absolute paths ────────────────────────────────────────────────────────────

// TestLoad_AbsolutePath verifies that an absolute path is read directly from
// the filesystem and parsed.
func TestLoad_AbsolutePath(t *testing.T) {
	path := writeTempEDN(t, `{:port 8080}`)

	loader := NewLoader(nil, logger.Nop())
	doc, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, document.Document{edn.Keyword("port"): int64(8080)}, doc)
}

// TestLoad_AbsolutePathMissing verifies that a missing absolute path yields
// ErrNotFound rather than a fatal error.
func TestLoad_AbsolutePathMissing(t *testing.T) {
	loader := NewLoader(nil, logger.Nop())

	doc, err := loader.Load(filepath.Join(t.TempDir(), "nope.edn"))
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── relative paths ────────────────────────────────────────────────────────────

// TestLoad_RelativePathFromResources verifies that a relative path is first
// resolved against the embedded resource space.
func TestLoad_RelativePathFromResources(t *testing.T) {
	resources := fstest.MapFS{
		"config/defaults.edn": &fstest.MapFile{Data: []byte(`{:from :resources}`)},
	}

	loader := NewLoader(resources, logger.Nop())
	doc, err := loader.Load("config/defaults.edn")
	require.NoError(t, err)

	assert.Equal(t, document.Document{edn.Keyword("from"): edn.Keyword("resources")}, doc)
}

// TestLoad_RelativePathFallsBackToFilesystem verifies that a relative path
// absent from the resource space is read relative to the working directory.
func TestLoad_RelativePathFallsBackToFilesystem(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "local.edn"), []byte(`{:from :disk}`), 0o600))
	chdir(t, dir)

	loader := NewLoader(fstest.MapFS{}, logger.Nop())
	doc, err := loader.Load("local.edn")
	require.NoError(t, err)

	assert.Equal(t, document.Document{edn.Keyword("from"): edn.Keyword("disk")}, doc)
}

// TestLoad_ResourcesWinOverFilesystem verifies lookup precedence when a
// relative path exists in both spaces.
func TestLoad_ResourcesWinOverFilesystem(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "both.edn"), []byte(`{:from :disk}`), 0o600))
	chdir(t, dir)

	resources := fstest.MapFS{
		"both.edn": &fstest.MapFile{Data: []byte(`{:from :resources}`)},
	}

	loader := NewLoader(resources, logger.Nop())
	doc, err := loader.Load("both.edn")
	require.NoError(t, err)

	assert.Equal(t, document.Document{edn.Keyword("from"): edn.Keyword("resources")}, doc)
}

// TestLoad_RelativePathMissingEverywhere verifies that a relative path absent
// from both spaces yields ErrNotFound.
func TestLoad_RelativePathMissingEverywhere(t *testing.T) {
	chdir(t, t.TempDir())

	loader := NewLoader(fstest.MapFS{}, logger.Nop())
	doc, err := loader.Load("invalid/file")
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestLoad_EmptyPath verifies that an unspecified path is reported as not
// found; supplying a concrete path is the caller's responsibility.
func TestLoad_EmptyPath(t *testing.T) {
	loader := NewLoader(nil, logger.Nop())

	doc, err := loader.Load("")
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── malformed sources ─────────────────────────────────────────────────────────

// TestLoad_MalformedSourceCarriesPath verifies that a parse failure surfaces
// as *MalformedSourceError naming the offending path.
func TestLoad_MalformedSourceCarriesPath(t *testing.T) {
	path := writeTempEDN(t, `{:unterminated`)

	loader := NewLoader(nil, logger.Nop())
	doc, err := loader.Load(path)
	assert.Nil(t, doc)

	var malformed *MalformedSourceError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, path, malformed.Path)
	assert.Contains(t, err.Error(), path)
}

// TestLoad_MalformedEmbeddedSource verifies that parse failures are detected
// for embedded resources as well.
func TestLoad_MalformedEmbeddedSource(t *testing.T) {
	resources := fstest.MapFS{
		"bad.edn": &fstest.MapFile{Data: []byte(`#{1 2`)},
	}

	loader := NewLoader(resources, logger.Nop())
	_, err := loader.Load("bad.edn")

	var malformed *MalformedSourceError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "bad.edn", malformed.Path)
}
