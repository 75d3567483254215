// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/dex/internal/adapters/config"
	_ "go.trai.ch/dex/internal/adapters/fs"
	_ "go.trai.ch/dex/internal/adapters/logger"
	_ "go.trai.ch/dex/internal/adapters/metrics"
	_ "go.trai.ch/dex/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/dex/internal/app"
	_ "go.trai.ch/dex/internal/engine/index"
	_ "go.trai.ch/dex/internal/engine/pom"
	_ "go.trai.ch/dex/internal/engine/verify"
)
