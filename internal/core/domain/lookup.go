package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// FindPackage looks a package up by exact id, then by substring of its id.
// No match and several matches are both errors; there is no best guess.
func (g *Graph) FindPackage(query string) (*Node, error) {
	if n, ok := g.nodes[query]; ok {
		return n, nil
	}

	var matches []string
	for _, id := range g.IDs() {
		if strings.Contains(id, query) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return nil, zerr.With(ErrPackageNotFound, "query", query)
	case 1:
		return g.nodes[matches[0]], nil
	default:
		err := zerr.With(ErrAmbiguousPackageQuery, "query", query)
		return nil, zerr.With(err, "matches", strings.Join(matches, ", "))
	}
}
