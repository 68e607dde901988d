package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pkg", "nested")

	files := []GeneratedFile{
		{Dir: dir, Filename: "status_flatregex.go", Content: []byte("package pkg\n")},
	}

	require.NoError(t, WriteFiles(files))

	data, err := os.ReadFile(filepath.Join(dir, "status_flatregex.go"))
	require.NoError(t, err)
	assert.Equal(t, "package pkg\n", string(data))
}

func TestWriteFiles_NoDir(t *testing.T) {
	err := WriteFiles([]GeneratedFile{{Filename: "x.go", Content: []byte("package x\n")}})
	assert.Error(t, err)
}
