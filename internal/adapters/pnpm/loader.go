package pnpm

import (
	"errors"
	iofs "io/fs"

	"go.trai.ch/wsdeps/internal/adapters/fs"
	"go.trai.ch/wsdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// Loader implements ports.LockfileLoader on top of a FileSystem.
type Loader struct {
	FS fs.FileSystem
}

// NewLoader creates a new Loader reading through the given file system.
func NewLoader(fsys fs.FileSystem) *Loader {
	return &Loader{FS: fsys}
}

// Load reads and parses the lockfile at path.
func (l *Loader) Load(path string) (*domain.Lockfile, error) {
	content, err := l.FS.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(domain.ErrLockfileNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockfileReadFailed.Error()), "path", path)
	}

	lock, err := Parse(content)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return lock, nil
}
