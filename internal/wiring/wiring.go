// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/edgetabs/internal/adapters/config"
	_ "go.trai.ch/edgetabs/internal/adapters/fuzzy"
	_ "go.trai.ch/edgetabs/internal/adapters/logger"
	_ "go.trai.ch/edgetabs/internal/adapters/telemetry"
	_ "go.trai.ch/edgetabs/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/edgetabs/internal/app"
)
