package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Full(t *testing.T) {
	data := []byte(`
version: "1"
packages:
  - ./examples/...
  - ./internal/extra
suffix: _gen
runtime_import: example.com/fork/flatregex
comments: false
`)

	f, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, []string{"./examples/...", "./internal/extra"}, f.Packages)
	assert.Equal(t, "_gen", f.Suffix)
	assert.Equal(t, "example.com/fork/flatregex", f.RuntimeImport)
	assert.False(t, f.CommentsEnabled())
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, []string{"./..."}, f.Packages)
	assert.Empty(t, f.Suffix)
	assert.Empty(t, f.RuntimeImport)
	assert.True(t, f.CommentsEnabled())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("packages: {not: [a, list"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte("packages: [./pkg]\n"), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"./pkg"}, f.Packages)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
