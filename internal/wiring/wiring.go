// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mesonci/internal/adapters/config"
	_ "go.trai.ch/mesonci/internal/adapters/crossfile"
	_ "go.trai.ch/mesonci/internal/adapters/docker"
	_ "go.trai.ch/mesonci/internal/adapters/logger"
	_ "go.trai.ch/mesonci/internal/adapters/meson"
	_ "go.trai.ch/mesonci/internal/adapters/pip"
	_ "go.trai.ch/mesonci/internal/adapters/shell"
	_ "go.trai.ch/mesonci/internal/adapters/state"
	_ "go.trai.ch/mesonci/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/mesonci/internal/app"
	_ "go.trai.ch/mesonci/internal/engine/planner"
	_ "go.trai.ch/mesonci/internal/engine/runner"
)
