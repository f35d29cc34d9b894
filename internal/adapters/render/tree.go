package render

import (
	"fmt"

	"go.trai.ch/wsdeps/internal/core/domain"
	"go.trai.ch/wsdeps/internal/ui/style"
)

// Tree prints every package reachable from the graph roots as an indented tree.
// When every package has a dependent, all packages are used as roots.
func (r *Renderer) Tree(g *domain.Graph) {
	if g.Len() == 0 {
		r.println(r.styled("No packages found in workspace", style.Yellow).String())
		return
	}

	r.header("Dependency Graph", style.Iris)

	roots := g.Roots()
	if len(roots) == 0 {
		roots = g.IDs()
	}

	onBranch := make(map[string]struct{})
	for _, root := range roots {
		r.treeNode(g, root, "", true, onBranch)
	}

	r.println("")
	r.println(r.out.String(fmt.Sprintf("Total: %d packages", g.Len())).Faint().String())
}

// treeNode prints id and its dependencies. onBranch holds the ids on the path
// from the current root, so a repeat marks a cycle and ends the branch.
func (r *Renderer) treeNode(g *domain.Graph, id, prefix string, last bool, onBranch map[string]struct{}) {
	connector := style.Branch
	if last {
		connector = style.LastBranch
	}

	if _, seen := onBranch[id]; seen {
		r.println(prefix + connector + id + " " + r.styled("(cycle)", style.Red).String())
		return
	}
	r.println(prefix + connector + id)

	node, ok := g.Node(id)
	if !ok {
		return
	}

	onBranch[id] = struct{}{}
	defer delete(onBranch, id)

	childPrefix := prefix + style.Pipe
	if last {
		childPrefix = prefix + style.Blank
	}

	deps := node.SortedDeps()
	for i, dep := range deps {
		r.treeNode(g, dep, childPrefix, i == len(deps)-1, onBranch)
	}
}
