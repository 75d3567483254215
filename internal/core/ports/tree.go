package ports

import (
	"iter"

	"go.trai.ch/dex/internal/core/domain"
)

// TreeReader defines read access to the repository tree.
//
//go:generate mockgen -source=tree.go -destination=mocks/mock_tree.go -package=mocks
type TreeReader interface {
	// ReadDir returns the immediate children of dir in lexical order.
	// Hidden entries and names for which skip reports true are dropped
	// without being resolved. skip may be nil.
	ReadDir(dir string, skip func(name string) bool) ([]domain.Entry, error)

	// WalkFiles yields every regular file below root, skipping hidden entries
	// and the children of root for which skipRoot reports true. skipRoot may be nil.
	// A non-nil error ends the walk.
	WalkFiles(root string, skipRoot func(name string) bool) iter.Seq2[string, error]

	// ReadFile returns the content of a file.
	ReadFile(path string) ([]byte, error)
}
