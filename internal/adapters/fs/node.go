package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dex/internal/core/ports"
)

const (
	// TreeReaderNodeID is the unique identifier for the tree reader Graft node.
	TreeReaderNodeID graft.ID = "adapter.fs.tree_reader"
	// DigesterNodeID is the unique identifier for the digester Graft node.
	DigesterNodeID graft.ID = "adapter.fs.digester"
	// WriterNodeID is the unique identifier for the artifact writer Graft node.
	WriterNodeID graft.ID = "adapter.fs.writer"
)

func init() {
	graft.Register(graft.Node[ports.TreeReader]{
		ID:        TreeReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TreeReader, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Digester]{
		ID:        DigesterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Digester, error) {
			return NewDigester(), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactWriter, error) {
			return NewWriter(), nil
		},
	})
}
