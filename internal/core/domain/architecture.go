package domain

import (
	"cmp"
	"slices"
)

// Violation is an edge that breaks the layering rule.
type Violation struct {
	Source string
	Target string
}

func (v Violation) String() string {
	return "Cross-app dependency: " + v.Source + " → " + v.Target
}

// ArchitectureViolations returns every application-to-application edge,
// ordered by source, then target. Every other edge shape is allowed.
func (g *Graph) ArchitectureViolations(layout Layout) []Violation {
	var violations []Violation
	for id, n := range g.nodes {
		if layout.Classify(id) != LayerApp {
			continue
		}
		for dep := range n.Deps {
			if layout.Classify(dep) == LayerApp {
				violations = append(violations, Violation{Source: id, Target: dep})
			}
		}
	}

	slices.SortFunc(violations, func(a, b Violation) int {
		return cmp.Or(cmp.Compare(a.Source, b.Source), cmp.Compare(a.Target, b.Target))
	})
	return violations
}
