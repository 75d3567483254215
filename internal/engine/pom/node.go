package pom

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dex/internal/adapters/fs"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dex/internal/adapters/metrics" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dex/internal/core/ports"
)

// NodeID is the unique identifier for the descriptor synthesizer Graft node.
const NodeID graft.ID = "engine.pom"

func init() {
	graft.Register(graft.Node[*Synthesizer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.TreeReaderNodeID,
			fs.DigesterNodeID,
			fs.WriterNodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Synthesizer, error) {
			reader, err := graft.Dep[ports.TreeReader](ctx)
			if err != nil {
				return nil, err
			}

			digester, err := graft.Dep[ports.Digester](ctx)
			if err != nil {
				return nil, err
			}

			writer, err := graft.Dep[ports.ArtifactWriter](ctx)
			if err != nil {
				return nil, err
			}

			m, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}

			return NewSynthesizer(reader, digester, writer, m), nil
		},
	})
}
