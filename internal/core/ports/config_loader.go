package ports

import "go.trai.ch/dex/internal/core/domain"

// ConfigLoader defines the interface for resolving the settings of a run.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the settings for the repository at root.
	// An empty path selects the default settings file at the root, which may be absent.
	Load(root, path string) (*domain.Settings, error)
}
