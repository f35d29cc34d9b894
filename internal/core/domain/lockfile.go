// Package domain contains the core models and algorithms of the workspace dependency graph.
package domain

import (
	"iter"
	"slices"
)

const (
	// LockfileName is the name of the pnpm lockfile at the workspace root.
	LockfileName = "pnpm-lock.yaml"

	// SupportedLockfileMajor is the only lockfile major version the parser accepts.
	SupportedLockfileMajor = "9"

	// RootImporter is the importer key of the workspace root package.
	// It is never a node of the graph.
	RootImporter = "."
)

// Lockfile is the part of a pnpm lockfile the graph engine needs.
type Lockfile struct {
	// Version is the raw lockfileVersion value, e.g. "9.0".
	Version string

	// Importers maps workspace-relative importer paths to their records.
	Importers map[string]*Importer

	// Digest is the xxhash-64 of the raw lockfile content.
	Digest uint64
}

// Dependency is one entry of an importer's dependency map.
type Dependency struct {
	Specifier string
	Version   string
}

// DependencyKind distinguishes the dependency maps of an importer.
type DependencyKind uint8

const (
	// KindProd is a regular dependency.
	KindProd DependencyKind = iota
	// KindDev is a devDependency.
	KindDev
	// KindOptional is an optionalDependency. Optional dependencies never become graph edges.
	KindOptional
	// KindPeer is a peerDependency.
	KindPeer
)

func (k DependencyKind) String() string {
	switch k {
	case KindProd:
		return "dependencies"
	case KindDev:
		return "devDependencies"
	case KindOptional:
		return "optionalDependencies"
	case KindPeer:
		return "peerDependencies"
	default:
		return "unknown"
	}
}

// Importer is one workspace package as declared in the lockfile.
type Importer struct {
	Path                 string
	Dependencies         map[string]Dependency
	DevDependencies      map[string]Dependency
	OptionalDependencies map[string]Dependency
	PeerDependencies     map[string]Dependency
}

// Deps returns the dependency map of the given kind.
func (i *Importer) Deps(kind DependencyKind) map[string]Dependency {
	switch kind {
	case KindProd:
		return i.Dependencies
	case KindDev:
		return i.DevDependencies
	case KindOptional:
		return i.OptionalDependencies
	case KindPeer:
		return i.PeerDependencies
	default:
		return nil
	}
}

// edgeKinds are the dependency kinds that contribute graph edges.
var edgeKinds = []DependencyKind{KindProd, KindDev, KindPeer}

// LinkedDependencies yields the dependencies that may become graph edges,
// kind by kind and sorted by name within a kind.
func (i *Importer) LinkedDependencies() iter.Seq2[string, Dependency] {
	return func(yield func(string, Dependency) bool) {
		for _, kind := range edgeKinds {
			deps := i.Deps(kind)
			names := make([]string, 0, len(deps))
			for name := range deps {
				names = append(names, name)
			}
			slices.Sort(names)

			for _, name := range names {
				if !yield(name, deps[name]) {
					return
				}
			}
		}
	}
}
