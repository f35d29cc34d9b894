package ports

import "go.trai.ch/wsdeps/internal/core/domain"

// LockfileLoader defines the interface for reading a workspace lockfile.
//
//go:generate go run go.uber.org/mock/mockgen -source=lockfile_loader.go -destination=mocks/mock_lockfile_loader.go -package=mocks
type LockfileLoader interface {
	// Load reads and parses the lockfile at path.
	Load(path string) (*domain.Lockfile, error)
}
