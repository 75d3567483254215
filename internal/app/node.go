package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dex/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/dex/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/dex/internal/adapters/metrics"            //nolint:depguard // Wired in app layer
	"go.trai.ch/dex/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/dex/internal/core/ports"
	"go.trai.ch/dex/internal/engine/index"
	"go.trai.ch/dex/internal/engine/pom"
	"go.trai.ch/dex/internal/engine/verify"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			pom.NodeID,
			index.NodeID,
			verify.NodeID,
			progrock.NodeID,
			metrics.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(a, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	synthesizer, err := graft.Dep[*pom.Synthesizer](ctx)
	if err != nil {
		return nil, err
	}

	generator, err := graft.Dep[*index.Generator](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[*verify.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	m, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, synthesizer, generator, verifier, telemetry, m, log), nil
}
