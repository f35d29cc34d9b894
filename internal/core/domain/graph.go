package domain

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Node is one internal workspace package.
type Node struct {
	// ID is the workspace-relative package path. It doubles as the display name.
	ID string
	// Name is the last path segment. Names may collide across packages.
	Name string
	// Deps holds the ids this package links to. Targets may be absent from the graph.
	Deps map[string]struct{}
}

// NewNode creates a node for the given path with the given dependency ids.
func NewNode(id string, deps ...string) *Node {
	n := &Node{
		ID:   id,
		Name: NodeName(id),
		Deps: make(map[string]struct{}, len(deps)),
	}
	for _, dep := range deps {
		n.Deps[dep] = struct{}{}
	}
	return n
}

// SortedDeps returns the node's dependency ids in ascending order.
func (n *Node) SortedDeps() []string {
	return slices.Sorted(maps.Keys(n.Deps))
}

// NodeName derives a package name from its path.
func NodeName(path string) string {
	name := path[strings.LastIndex(path, "/")+1:]
	if name == "" {
		return path
	}
	return name
}

// Edge is an internal dependency relationship between two packages.
type Edge struct {
	From string
	To   string
}

// Graph is the dependency graph of one lockfile snapshot.
// It is built once and only read afterwards.
type Graph struct {
	nodes map[string]*Node
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
	}
}

// AddNode adds a node to the graph.
// It returns an error if a node with the same id already exists.
func (g *Graph) AddNode(n *Node) error {
	if _, exists := g.nodes[n.ID]; exists {
		return zerr.With(ErrDuplicatePackage, "package", n.ID)
	}
	g.nodes[n.ID] = n
	return nil
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// IDs returns all node ids in ascending order.
func (g *Graph) IDs() []string {
	return slices.Sorted(maps.Keys(g.nodes))
}

// Nodes yields all nodes ordered by id.
func (g *Graph) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, id := range g.IDs() {
			if !yield(g.nodes[id]) {
				return
			}
		}
	}
}

// Edges returns every edge ordered by source, then target.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for n := range g.Nodes() {
		for _, dep := range n.SortedDeps() {
			edges = append(edges, Edge{From: n.ID, To: dep})
		}
	}
	return edges
}

// Roots returns the ids of nodes nothing depends on, in ascending order.
func (g *Graph) Roots() []string {
	dependents := g.Dependents()
	var roots []string
	for _, id := range g.IDs() {
		if len(dependents[id]) == 0 {
			roots = append(roots, id)
		}
	}
	return roots
}

// depsOf returns the sorted deps of id, or nil when id has no node.
func (g *Graph) depsOf(id string) []string {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return n.SortedDeps()
}
