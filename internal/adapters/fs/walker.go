// Package fs provides file system adapters for reading, hashing and writing the repository tree.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"go.trai.ch/dex/internal/core/domain"
	"go.trai.ch/dex/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TreeReader = (*Walker)(nil)

// Walker provides directory listing and file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// ReadDir returns the immediate children of dir sorted by name.
// Hidden names and names for which skip reports true are dropped before they
// are resolved, so a dangling link among them is never touched.
// Entries that are neither regular files nor directories (sockets, devices)
// are dropped. Symlinks are resolved so a link to a directory lists as a directory.
// A dangling symlink that is kept is an error.
func (w *Walker) ReadDir(dir string, skip func(name string) bool) ([]domain.Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDirectoryReadFailed.Error()), "path", dir)
	}

	entries := make([]domain.Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		if w.isHidden(d) || (skip != nil && skip(d.Name())) {
			continue
		}
		kind, ok, err := w.classify(dir, d)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		entries = append(entries, domain.Entry{
			Name:    d.Name(),
			Kind:    kind,
			Symlink: d.Type()&fs.ModeSymlink != 0,
		})
	}

	return entries, nil
}

func (w *Walker) classify(dir string, d fs.DirEntry) (domain.EntryKind, bool, error) {
	mode := d.Type()
	if mode&fs.ModeSymlink != 0 {
		path := filepath.Join(dir, d.Name())
		info, err := os.Stat(path)
		if err != nil {
			return 0, false, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
		}
		mode = info.Mode().Type()
	}

	switch {
	case mode.IsDir():
		return domain.EntryDir, true, nil
	case mode.IsRegular():
		return domain.EntryFile, true, nil
	default:
		return 0, false, nil
	}
}

// WalkFiles yields all regular files below root, skipping hidden files and directories
// and the direct children of root for which skipRoot reports true.
// Symlinked files are yielded; symlinked directories are not followed.
// Walk errors are yielded once and end the iteration.
func (w *Walker) WalkFiles(root string, skipRoot func(name string) bool) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stopped := false
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrDirectoryReadFailed.Error()), "path", path)
			}

			if path != root && (w.isHidden(d) || w.skipAtRoot(root, path, d, skipRoot)) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			kind, ok, err := w.classify(filepath.Dir(path), d)
			if err != nil {
				return err
			}
			if !ok || kind != domain.EntryFile {
				return nil
			}

			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}

			return nil
		})
		if err != nil && !stopped {
			yield("", err)
		}
	}
}

// ReadFile returns the content of the file at path.
func (w *Walker) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	return data, nil
}

func (w *Walker) skipAtRoot(root, path string, d fs.DirEntry, skipRoot func(string) bool) bool {
	return skipRoot != nil && filepath.Dir(path) == filepath.Clean(root) && skipRoot(d.Name())
}

func (w *Walker) isHidden(d fs.DirEntry) bool {
	return domain.Entry{Name: d.Name()}.IsHidden()
}
