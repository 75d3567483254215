// Package config provides the settings loader for dex.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/dex/internal/core/domain"
	"go.trai.ch/dex/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the settings for the repository at root.
// With an empty path, root/dex.yaml is used if it exists and defaults apply otherwise.
// An explicit path must exist.
func (l *Loader) Load(root, path string) (*domain.Settings, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, domain.SettingsFileName)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return nil, zerr.With(domain.ErrConfigNotFound, "path", path)
			}
			return domain.DefaultSettings(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var dexfile Dexfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&dexfile); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	settings, err := l.resolve(root, path, &dexfile)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.Logger.Info("loaded settings from " + path)
	return settings, nil
}

func (l *Loader) resolve(root, path string, dexfile *Dexfile) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	if dexfile.PackageExtensions != nil {
		for _, ext := range dexfile.PackageExtensions {
			if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
				return nil, zerr.With(domain.ErrInvalidPackageExtension, "extension", ext)
			}
		}
		settings.PackageExtensions = canonicalizeStrings(dexfile.PackageExtensions)
	}

	if dexfile.RootExclude != nil {
		for _, pattern := range dexfile.RootExclude {
			if _, err := filepath.Match(pattern, ""); err != nil {
				return nil, zerr.With(domain.ErrInvalidExcludePattern, "pattern", pattern)
			}
		}
		settings.RootExclude = canonicalizeStrings(append(dexfile.RootExclude, domain.SettingsFileName))
	}

	// A settings file kept at the root never shows up in the root listing.
	if sameDir(filepath.Dir(path), root) {
		name := filepath.Base(path)
		if !slices.Contains(settings.RootExclude, name) {
			settings.RootExclude = append(settings.RootExclude, name)
		}
	}

	if dexfile.Site.Title != "" {
		settings.Site.Title = dexfile.Site.Title
	}
	settings.Site.Footer = dexfile.Site.Footer

	if dexfile.Site.Stylesheet != "" {
		cssPath := dexfile.Site.Stylesheet
		if !filepath.IsAbs(cssPath) {
			cssPath = filepath.Join(root, cssPath)
		}
		css, err := os.ReadFile(cssPath) //nolint:gosec // path is provided by user
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStylesheetReadFailed.Error()), "stylesheet", cssPath)
		}
		settings.Site.Stylesheet = string(css)
	}

	return settings, nil
}

func sameDir(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

func canonicalizeStrings(strs []string) []string {
	if len(strs) == 0 {
		return []string{}
	}

	sorted := slices.Clone(strs)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
