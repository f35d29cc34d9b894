// Package pnpm reads pnpm v9 lockfiles into the domain model.
package pnpm

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/wsdeps/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Parse deserializes pnpm-lock.yaml content.
// The root importer is kept; excluding it is left to the graph builder.
func Parse(content []byte) (*domain.Lockfile, error) {
	var dto lockfileDTO
	if err := yaml.Unmarshal(content, &dto); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockfileParseFailed.Error())
	}

	if dto.LockfileVersion == nil || *dto.LockfileVersion == "" {
		return nil, zerr.With(domain.ErrLockfileParseFailed, "missing_field", "lockfileVersion")
	}

	version := *dto.LockfileVersion
	if major, _, _ := strings.Cut(version, "."); major != domain.SupportedLockfileMajor {
		err := zerr.With(domain.ErrUnsupportedLockfileVersion, "lockfile_version", version)
		return nil, zerr.With(err, "supported_major", domain.SupportedLockfileMajor)
	}

	lock := &domain.Lockfile{
		Version:   version,
		Importers: make(map[string]*domain.Importer, len(dto.Importers)),
		Digest:    xxhash.Sum64(content),
	}

	for path, importerDTO := range dto.Importers {
		importer, err := convertImporter(path, importerDTO)
		if err != nil {
			return nil, err
		}
		lock.Importers[path] = importer
	}

	return lock, nil
}

func convertImporter(path string, dto *importerDTO) (*domain.Importer, error) {
	importer := &domain.Importer{Path: path}
	if dto == nil {
		// An importer without any dependency section is written as an empty mapping
		// or as null, both of which mean no dependencies.
		return importer, nil
	}

	sections := []struct {
		kind domain.DependencyKind
		src  map[string]*dependencyDTO
		dst  *map[string]domain.Dependency
	}{
		{domain.KindProd, dto.Dependencies, &importer.Dependencies},
		{domain.KindDev, dto.DevDependencies, &importer.DevDependencies},
		{domain.KindOptional, dto.OptionalDependencies, &importer.OptionalDependencies},
		{domain.KindPeer, dto.PeerDependencies, &importer.PeerDependencies},
	}

	for _, s := range sections {
		deps, err := convertDependencies(path, s.kind, s.src)
		if err != nil {
			return nil, err
		}
		*s.dst = deps
	}

	return importer, nil
}

func convertDependencies(
	importerPath string,
	kind domain.DependencyKind,
	src map[string]*dependencyDTO,
) (map[string]domain.Dependency, error) {
	if len(src) == 0 {
		return nil, nil
	}

	deps := make(map[string]domain.Dependency, len(src))
	for name, dto := range src {
		var missing string
		switch {
		case dto == nil || dto.Specifier == nil:
			missing = "specifier"
		case dto.Version == nil:
			missing = "version"
		}
		if missing != "" {
			err := zerr.With(domain.ErrLockfileParseFailed, "importer", importerPath)
			err = zerr.With(err, "section", kind.String())
			err = zerr.With(err, "dependency", name)
			return nil, zerr.With(err, "missing_field", missing)
		}

		deps[name] = domain.Dependency{
			Specifier: *dto.Specifier,
			Version:   *dto.Version,
		}
	}
	return deps, nil
}
