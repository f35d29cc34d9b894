package ports

import "go.trai.ch/wsdeps/internal/core/domain"

// ConfigLoader defines the interface for locating and configuring a workspace.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from dir to the workspace root and returns its description.
	Load(dir string) (*domain.Workspace, error)
}
