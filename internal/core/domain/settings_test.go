package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/dex/internal/core/domain"
)

func TestDefaultSettings(t *testing.T) {
	s := domain.DefaultSettings()

	assert.Equal(t, []string{".jar"}, s.PackageExtensions)
	assert.Equal(t, domain.DefaultSiteTitle, s.Site.Title)

	for _, name := range []string{"build.py", "build.sh", "robots.txt", "dex.yaml"} {
		assert.True(t, s.IsRootExcluded(name), name)
	}
	assert.False(t, s.IsRootExcluded("README.md"))
}

func TestSettings_IsPackageFile(t *testing.T) {
	s := &domain.Settings{PackageExtensions: []string{".jar", ".aar"}}

	assert.True(t, s.IsPackageFile("lib-1.0.jar"))
	assert.True(t, s.IsPackageFile("lib-1.0.aar"))
	assert.False(t, s.IsPackageFile("lib-1.0.pom"))
	assert.False(t, s.IsPackageFile(".jar"))
	assert.False(t, s.IsPackageFile("jar"))
}

func TestSettings_IsRootExcluded_Glob(t *testing.T) {
	s := &domain.Settings{RootExclude: []string{"*.sh", "CNAME"}}

	assert.True(t, s.IsRootExcluded("deploy.sh"))
	assert.True(t, s.IsRootExcluded("CNAME"))
	assert.False(t, s.IsRootExcluded("deploy.py"))
}

func TestIsGenerated(t *testing.T) {
	assert.True(t, domain.IsGenerated("index.html"))
	assert.True(t, domain.IsGenerated("info.json"))
	assert.True(t, domain.IsGenerated("info.md"))
	assert.False(t, domain.IsGenerated("lib-1.0.pom"))
}

func TestEntry(t *testing.T) {
	assert.True(t, domain.Entry{Name: ".git", Kind: domain.EntryDir}.IsHidden())
	assert.True(t, domain.Entry{Name: ".git", Kind: domain.EntryDir}.IsDir())
	assert.False(t, domain.Entry{Name: "a.jar"}.IsHidden())
	assert.False(t, domain.Entry{Name: "a.jar"}.IsDir())
}

func TestPassReport(t *testing.T) {
	r := domain.NewPassReport()
	r.RecordWrite(domain.ArtifactListing, domain.WriteCreated)
	r.RecordWrite(domain.ArtifactListing, domain.WriteUnchanged)
	r.RecordWrite(domain.ArtifactManifest, domain.WriteUpdated)

	assert.Equal(t, 2, r.Count(domain.ArtifactListing))
	assert.Equal(t, 1, r.Count(domain.ArtifactManifest))
	assert.Equal(t, 0, r.Count(domain.ArtifactSidecar))
	assert.Equal(t, 2, r.Changed())
}
