package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// TopologicalOrder returns target and its transitive dependencies in build
// order: every package comes after the dependencies it links to.
// Dependencies without a node are leaves and are left out of the order.
// A cycle anywhere in the closure fails the sort with ErrCyclicDependency.
func (g *Graph) TopologicalOrder(target string) ([]string, error) {
	if _, ok := g.nodes[target]; !ok {
		return nil, zerr.With(ErrPackageNotFound, "query", target)
	}

	const (
		unvisited = iota
		visiting
		done
	)

	state := make(map[string]int)
	order := make([]string, 0)
	path := []string{target}
	stack := []frame{{id: target, deps: g.depsOf(target)}}
	state[target] = visiting

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.deps) {
			state[top.id] = done
			if _, ok := g.nodes[top.id]; ok {
				order = append(order, top.id)
			}
			path = path[:len(path)-1]
			stack = stack[:len(stack)-1]
			continue
		}

		dep := top.deps[top.next]
		top.next++

		switch state[dep] {
		case visiting:
			return nil, cycleError(target, path, dep)
		case unvisited:
			state[dep] = visiting
			path = append(path, dep)
			stack = append(stack, frame{id: dep, deps: g.depsOf(dep)})
		}
	}

	return order, nil
}

// cycleError builds an ErrCyclicDependency carrying the cycle path.
func cycleError(target string, path []string, dep string) error {
	start := 0
	for i, id := range path {
		if id == dep {
			start = i
			break
		}
	}

	cycle := strings.Join(path[start:], " -> ") + " -> " + dep
	err := zerr.With(ErrCyclicDependency, "cycle", cycle)
	return zerr.With(err, "target", target)
}
