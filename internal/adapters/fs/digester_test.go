package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dex/internal/adapters/fs"
)

func TestDigester_SHA256File(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	digester := fs.NewDigester()

	d1, err := digester.SHA256File(path)
	require.NoError(t, err)
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", d1.Hex)
	assert.Equal(t, int64(5), d1.Size)

	// Verify determinism
	d2, err := digester.SHA256File(path)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestDigester_SHA256File_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	d, err := fs.NewDigester().SHA256File(path)
	require.NoError(t, err)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", d.Hex)
	assert.Zero(t, d.Size)
}

func TestDigester_SHA1File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	d, err := fs.NewDigester().SHA1File(path)
	require.NoError(t, err)
	assert.Equal(t, "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d", d.Hex)
}

func TestDigester_MissingFile(t *testing.T) {
	_, err := fs.NewDigester().SHA256File(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}
