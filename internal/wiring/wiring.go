// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/herald/internal/adapters/config"
	_ "go.trai.ch/herald/internal/adapters/journal"
	_ "go.trai.ch/herald/internal/adapters/logger"
	_ "go.trai.ch/herald/internal/adapters/queue"
	_ "go.trai.ch/herald/internal/adapters/shell"
	_ "go.trai.ch/herald/internal/adapters/telemetry"
	_ "go.trai.ch/herald/internal/adapters/watcher"
	// Register the app node.
	_ "go.trai.ch/herald/internal/app"
)
