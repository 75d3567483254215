package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dex/internal/adapters/fs"
	"go.trai.ch/dex/internal/core/domain"
)

func TestWriter_Write(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "info.json")
	writer := fs.NewWriter()

	outcome, err := writer.Write(path, []byte("one"))
	require.NoError(t, err)
	assert.Equal(t, domain.WriteCreated, outcome)

	outcome, err = writer.Write(path, []byte("one"))
	require.NoError(t, err)
	assert.Equal(t, domain.WriteUnchanged, outcome)

	outcome, err = writer.Write(path, []byte("two"))
	require.NoError(t, err)
	assert.Equal(t, domain.WriteUpdated, outcome)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestWriter_Write_RewritesUnchangedContent(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "index.html")
	require.NoError(t, os.WriteFile(path, []byte("same"), 0o600))

	old := mustModTime(t, path).Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))

	outcome, err := fs.NewWriter().Write(path, []byte("same"))
	require.NoError(t, err)
	assert.Equal(t, domain.WriteUnchanged, outcome)
	assert.True(t, mustModTime(t, path).After(old), "expected the file to be rewritten")
}

func TestWriter_Write_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "index.html")

	_, err := fs.NewWriter().Write(path, []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write file")
}

func mustModTime(t *testing.T, path string) time.Time {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return info.ModTime()
}
