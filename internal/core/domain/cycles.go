package domain

import "strings"

// Cycle is a sequence of package ids where each id depends on the next
// and the last depends on the first.
type Cycle []string

// String renders the cycle closed back onto its first id, e.g. "a → b → a".
func (c Cycle) String() string {
	if len(c) == 0 {
		return ""
	}
	return strings.Join(c, " → ") + " → " + c[0]
}

// sameNodes reports whether both cycles visit the same set of ids.
func (c Cycle) sameNodes(other Cycle) bool {
	if len(c) != len(other) {
		return false
	}
	set := make(map[string]struct{}, len(c))
	for _, id := range c {
		set[id] = struct{}{}
	}
	for _, id := range other {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

// frame is one level of an explicit depth-first traversal.
type frame struct {
	id   string
	deps []string
	next int
}

// Cycles reports every distinct cycle of the graph. Cycles visiting the same
// set of packages are reported once, whatever their rotation or entry point.
// Traversal follows ascending id order, so the result is stable for a graph.
func (g *Graph) Cycles() []Cycle {
	var cycles []Cycle
	visited := make(map[string]bool, len(g.nodes))

	for _, root := range g.IDs() {
		if visited[root] {
			continue
		}

		// onStack maps ids on the current path to their index in path.
		onStack := map[string]int{root: 0}
		path := []string{root}
		stack := []frame{{id: root, deps: g.depsOf(root)}}
		visited[root] = true

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.deps) {
				delete(onStack, top.id)
				path = path[:len(path)-1]
				stack = stack[:len(stack)-1]
				continue
			}

			dep := top.deps[top.next]
			top.next++

			if !visited[dep] {
				visited[dep] = true
				onStack[dep] = len(path)
				path = append(path, dep)
				stack = append(stack, frame{id: dep, deps: g.depsOf(dep)})
				continue
			}

			if start, ok := onStack[dep]; ok {
				cycle := Cycle(append([]string(nil), path[start:]...))
				if !containsCycle(cycles, cycle) {
					cycles = append(cycles, cycle)
				}
			}
		}
	}

	return cycles
}

func containsCycle(cycles []Cycle, c Cycle) bool {
	for _, existing := range cycles {
		if existing.sameNodes(c) {
			return true
		}
	}
	return false
}
