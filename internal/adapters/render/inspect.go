package render

import (
	"errors"

	"go.trai.ch/wsdeps/internal/core/domain"
	"go.trai.ch/wsdeps/internal/ui/style"
	"go.trai.ch/zerr"
)

// Inspect prints one package: what it links to, what links to it, and the
// order its workspace dependencies have to be built in.
func (r *Renderer) Inspect(g *domain.Graph, node *domain.Node) {
	r.header(node.ID, style.Iris)

	r.println(r.styled("Dependencies:", style.Green).String())
	r.list(node.SortedDeps())
	r.println("")

	r.println(r.styled("Dependents (packages that depend on this):", style.Yellow).String())
	r.list(g.Dependents().Of(node.ID))
	r.println("")

	r.println(r.styled("Build order (dependencies first):", style.Cyan).String())
	order, err := g.TopologicalOrder(node.ID)
	if err != nil {
		r.println("  " + r.styled(style.Warning, style.Yellow).String() + " " + describeOrderError(err))
		return
	}

	for i, id := range order {
		marker := " "
		if id == node.ID {
			marker = style.Arrow
		}
		r.printf("  %s %d. %s\n", marker, i+1, id)
	}
}

func (r *Renderer) list(ids []string) {
	if len(ids) == 0 {
		r.println("  " + r.out.String("(none)").Faint().String())
		return
	}
	for _, id := range ids {
		r.println("  " + style.LastBranch + id)
	}
}

// describeOrderError renders a sort failure on one line, naming the cycle when known.
func describeOrderError(err error) string {
	var zErr *zerr.Error
	if errors.As(err, &zErr) {
		if cycle, ok := zErr.Metadata()["cycle"].(string); ok {
			return domain.ErrCyclicDependency.Error() + ": " + cycle
		}
	}
	return err.Error()
}
