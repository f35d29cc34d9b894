package domain

import (
	"maps"
	"slices"
)

// Dependents maps each package id to the set of packages that link to it.
type Dependents map[string]map[string]struct{}

// Dependents inverts the graph's edges. Every node gets an entry, empty when
// nothing depends on it. Dangling targets get none.
func (g *Graph) Dependents() Dependents {
	idx := make(Dependents, len(g.nodes))
	for id := range g.nodes {
		idx[id] = make(map[string]struct{})
	}

	for id, n := range g.nodes {
		for dep := range n.Deps {
			if set, ok := idx[dep]; ok {
				set[id] = struct{}{}
			}
		}
	}

	return idx
}

// Of returns the packages depending on id in ascending order.
func (d Dependents) Of(id string) []string {
	return slices.Sorted(maps.Keys(d[id]))
}
