package fs

import (
	"errors"
	"io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/dex/internal/core/domain"
	"go.trai.ch/dex/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactWriter = (*Writer)(nil)

// artifactPerm is the permission used for generated files; they are served publicly.
const artifactPerm = 0o644

// Writer overwrites generated artifacts and reports whether their content changed.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write replaces the file at path with data. The previous content is compared
// by XXHash only to classify the outcome; the file is rewritten in every case.
func (w *Writer) Write(path string, data []byte) (domain.WriteOutcome, error) {
	outcome, err := w.compare(path, data)
	if err != nil {
		return "", err
	}

	//nolint:gosec // Generated artifacts are meant to be world readable
	if err := os.WriteFile(path, data, artifactPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}

	return outcome, nil
}

func (w *Writer) compare(path string, data []byte) (domain.WriteOutcome, error) {
	previous, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.WriteCreated, nil
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}

	if len(previous) == len(data) && xxhash.Sum64(previous) == xxhash.Sum64(data) {
		return domain.WriteUnchanged, nil
	}
	return domain.WriteUpdated, nil
}
