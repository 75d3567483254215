package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// SettingsFileName is the settings file looked up at the repository root.
const SettingsFileName = "dex.yaml"

// DefaultSiteTitle is used when no title is configured.
const DefaultSiteTitle = "Maven Repository"

// Settings is the resolved configuration of a run.
type Settings struct {
	// PackageExtensions lists the file suffixes that mark package files.
	PackageExtensions []string
	// RootExclude holds glob patterns hidden from the root listing only.
	RootExclude []string
	// Site configures the look of the listing pages.
	Site Site
}

// Site holds presentation settings for listing pages.
type Site struct {
	Title string
	// Footer is an HTML fragment rendered below the listing.
	Footer string
	// Stylesheet replaces the built-in CSS when non-empty.
	Stylesheet string
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() *Settings {
	return &Settings{
		PackageExtensions: []string{".jar"},
		RootExclude:       []string{"build.py", "build.sh", "robots.txt", SettingsFileName},
		Site: Site{
			Title: DefaultSiteTitle,
		},
	}
}

// IsPackageFile reports whether name ends in one of the package extensions.
func (s *Settings) IsPackageFile(name string) bool {
	for _, ext := range s.PackageExtensions {
		if strings.HasSuffix(name, ext) && len(name) > len(ext) {
			return true
		}
	}
	return false
}

// IsRootExcluded reports whether name matches one of the root exclusion patterns.
// Patterns are validated on load, so match errors are treated as no match.
func (s *Settings) IsRootExcluded(name string) bool {
	for _, pattern := range s.RootExclude {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// IsGenerated reports whether name is one of the files the index generator owns.
func IsGenerated(name string) bool {
	return slices.Contains(GeneratedNames(), name)
}
