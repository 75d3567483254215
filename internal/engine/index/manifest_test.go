package index_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dex/internal/core/domain"
	"go.trai.ch/dex/internal/engine/index"
)

func TestRenderManifest(t *testing.T) {
	tests := []struct {
		name     string
		manifest *domain.Manifest
	}{
		{
			name: "manifest_basic",
			manifest: &domain.Manifest{
				Files: []domain.ManifestFile{
					{Name: "a&b.jar", SHA256: "8ed3f6ad685b959ead7022518e1af76cd816f8e8ec7ccdda1ed4018e8f2223f8"},
					{Name: "lib-1.0.jar", SHA256: "b718f1354f7247312eca086d9a024afe5fa717ddea5adeddd6f12bcf945b2e8c"},
				},
				Dirs: []domain.ManifestDir{{Name: "sub"}},
			},
		},
		{
			name:     "manifest_empty",
			manifest: domain.NewManifest(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := index.RenderManifest(tt.manifest)
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.name, data)
		})
	}
}

func TestParseManifest(t *testing.T) {
	m, err := index.ParseManifest([]byte(`{"files":[{"name":"x","sha256":"ab"}],"dirs":[]}`))
	require.NoError(t, err)
	assert.Equal(t, []domain.ManifestFile{{Name: "x", SHA256: "ab"}}, m.Files)
	assert.Empty(t, m.Dirs)

	_, err = index.ParseManifest([]byte("{"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest")
}

func TestRenderManifest_NonASCII(t *testing.T) {
	m := &domain.Manifest{
		Files: []domain.ManifestFile{{Name: "café-😀.jar", SHA256: "ab"}},
		Dirs:  []domain.ManifestDir{},
	}

	data, err := index.RenderManifest(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "caf\u00e9-\ud83d\ude00.jar"`)

	parsed, err := index.ParseManifest(data)
	require.NoError(t, err)
	assert.Equal(t, m.Files, parsed.Files)
}

func TestParseManifest_RejectsNonChildNames(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"parent file", `{"files":[{"name":"../../x","sha256":"ab"}],"dirs":[]}`},
		{"dot dot", `{"files":[{"name":"..","sha256":"ab"}],"dirs":[]}`},
		{"nested", `{"files":[{"name":"a/b","sha256":"ab"}],"dirs":[]}`},
		{"backslash", `{"files":[{"name":"a\\b","sha256":"ab"}],"dirs":[]}`},
		{"empty", `{"files":[{"name":"","sha256":"ab"}],"dirs":[]}`},
		{"dir", `{"files":[],"dirs":[{"name":"../up"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := index.ParseManifest([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid manifest entry")
		})
	}
}
