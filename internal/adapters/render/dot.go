package render

import (
	"errors"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"go.trai.ch/wsdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// DOT prints the graph in Graphviz format. Packages are labeled with their
// name and dangling link targets are drawn dashed.
func (r *Renderer) DOT(g *domain.Graph, layout domain.Layout) error {
	dg := graph.New(graph.StringHash, graph.Directed())

	for n := range g.Nodes() {
		err := dg.AddVertex(n.ID,
			graph.VertexAttribute("label", n.Name),
			graph.VertexAttribute("tooltip", n.ID),
			graph.VertexAttribute("shape", shapeOf(layout.Classify(n.ID))),
		)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to add vertex"), "package", n.ID)
		}
	}

	for _, e := range g.Edges() {
		if _, ok := g.Node(e.To); !ok {
			err := dg.AddVertex(e.To,
				graph.VertexAttribute("label", domain.NodeName(e.To)),
				graph.VertexAttribute("style", "dashed"),
			)
			if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
				return zerr.With(zerr.Wrap(err, "failed to add vertex"), "package", e.To)
			}
		}
		if err := dg.AddEdge(e.From, e.To); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return zerr.With(zerr.Wrap(err, "failed to add edge"), "edge", e.From+" -> "+e.To)
		}
	}

	if err := draw.DOT(dg, r.out, draw.GraphAttribute("rankdir", "LR")); err != nil {
		return zerr.Wrap(err, "failed to render graph")
	}
	return nil
}

func shapeOf(layer domain.Layer) string {
	switch layer {
	case domain.LayerApp:
		return "box"
	case domain.LayerLib:
		return "ellipse"
	case domain.LayerPackage:
		return "component"
	default:
		return "plaintext"
	}
}
