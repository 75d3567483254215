package verify

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dex/internal/adapters/fs"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dex/internal/adapters/metrics" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/dex/internal/core/ports"
)

// NodeID is the unique identifier for the verifier Graft node.
const NodeID graft.ID = "engine.verify"

func init() {
	graft.Register(graft.Node[*Verifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.TreeReaderNodeID,
			fs.DigesterNodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Verifier, error) {
			reader, err := graft.Dep[ports.TreeReader](ctx)
			if err != nil {
				return nil, err
			}

			digester, err := graft.Dep[ports.Digester](ctx)
			if err != nil {
				return nil, err
			}

			m, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}

			return NewVerifier(reader, digester, m), nil
		},
	})
}
