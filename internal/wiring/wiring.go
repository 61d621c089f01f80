// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.tarn.ch/denv/internal/adapters/catalog"
	_ "go.tarn.ch/denv/internal/adapters/config"
	_ "go.tarn.ch/denv/internal/adapters/logger"
	_ "go.tarn.ch/denv/internal/adapters/snapshot"
	_ "go.tarn.ch/denv/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.tarn.ch/denv/internal/app"
	_ "go.tarn.ch/denv/internal/engine/compose"
)
