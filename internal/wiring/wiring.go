// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/wsdeps/internal/adapters/config"
	_ "go.trai.ch/wsdeps/internal/adapters/fs"
	_ "go.trai.ch/wsdeps/internal/adapters/logger"
	_ "go.trai.ch/wsdeps/internal/adapters/pnpm"
	_ "go.trai.ch/wsdeps/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/wsdeps/internal/app"
)
