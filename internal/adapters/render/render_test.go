package render_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wsdeps/internal/adapters/render"
	"go.trai.ch/wsdeps/internal/core/domain"
	"go.trai.ch/wsdeps/internal/ui/output"
)

// newRenderer returns a renderer without colors and the buffer it writes to.
func newRenderer(t *testing.T) (*render.Renderer, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	return render.New(output.NewWithProfile(buf, termenv.Ascii)), buf
}

func newGraph(t *testing.T, edges map[string][]string) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	for id, deps := range edges {
		require.NoError(t, g.AddNode(domain.NewNode(id, deps...)))
	}
	return g
}

func workspaceGraph(t *testing.T) *domain.Graph {
	t.Helper()
	return newGraph(t, map[string][]string{
		"apps/web":   {"libs/ui", "libs/utils"},
		"apps/admin": {"libs/ui"},
		"libs/ui":    {"libs/utils"},
		"libs/utils": nil,
	})
}

func cyclicGraph(t *testing.T) *domain.Graph {
	t.Helper()
	return newGraph(t, map[string][]string{
		"a": {"b"},
		"b": {"a"},
		"c": {"a"},
	})
}

func TestRenderer_Tree(t *testing.T) {
	tests := []struct {
		name       string
		graph      func(*testing.T) *domain.Graph
		goldenName string
	}{
		{name: "workspace", graph: workspaceGraph, goldenName: "tree_workspace"},
		{name: "cycle marker", graph: cyclicGraph, goldenName: "tree_cycle"},
		{
			name: "every package has a dependent",
			graph: func(t *testing.T) *domain.Graph {
				return newGraph(t, map[string][]string{"x": {"y"}, "y": {"x"}})
			},
			goldenName: "tree_no_roots",
		},
		{
			name:       "empty workspace",
			graph:      func(t *testing.T) *domain.Graph { return newGraph(t, nil) },
			goldenName: "tree_empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, buf := newRenderer(t)
			r.Tree(tt.graph(t))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestRenderer_Inspect(t *testing.T) {
	tests := []struct {
		name       string
		graph      func(*testing.T) *domain.Graph
		pkg        string
		goldenName string
	}{
		{name: "library", graph: workspaceGraph, pkg: "libs/ui", goldenName: "inspect_library"},
		{name: "leaf", graph: workspaceGraph, pkg: "libs/utils", goldenName: "inspect_leaf"},
		{name: "cyclic", graph: cyclicGraph, pkg: "a", goldenName: "inspect_cyclic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graph := tt.graph(t)
			node, ok := graph.Node(tt.pkg)
			require.True(t, ok)

			r, buf := newRenderer(t)
			r.Inspect(graph, node)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestRenderer_Check(t *testing.T) {
	tests := []struct {
		name       string
		cycles     []domain.Cycle
		violations []domain.Violation
		goldenName string
	}{
		{name: "clean", goldenName: "check_clean"},
		{
			name:       "violations",
			violations: []domain.Violation{{Source: "apps/admin", Target: "apps/web"}, {Source: "apps/web", Target: "apps/api"}},
			goldenName: "check_violations",
		},
		{
			name:       "cycles hide architecture results",
			cycles:     []domain.Cycle{{"a", "b"}, {"c"}},
			violations: []domain.Violation{{Source: "apps/web", Target: "apps/api"}},
			goldenName: "check_cycles",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, buf := newRenderer(t)
			r.Check(tt.cycles, tt.violations)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestRenderer_JSON(t *testing.T) {
	graph := newGraph(t, map[string][]string{
		"apps/web":     {"libs/ui", "libs/ghost"},
		"libs/ui":      {"libs/theme"},
		"libs/theme":   {"libs/ui"},
		"packages/sdk": nil,
		"tools/lint":   nil,
	})

	r, buf := newRenderer(t)
	require.NoError(t, r.JSON(graph, &domain.Lockfile{Digest: 0xdeadbeef}, domain.DefaultLayout()))

	var report struct {
		Format         string `json:"format"`
		LockfileDigest string `json:"lockfile_digest"`
		Packages       []struct {
			ID              string `json:"id"`
			Path            string `json:"path"`
			Type            string `json:"type"`
			DepsCount       int    `json:"deps_count"`
			DependentsCount int    `json:"dependents_count"`
		} `json:"packages"`
		Edges []struct {
			From string `json:"from"`
			To   string `json:"to"`
		} `json:"edges"`
		Cycles [][]string `json:"cycles"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.Equal(t, render.ReportFormat, report.Format)
	assert.Equal(t, "00000000deadbeef", report.LockfileDigest)

	require.Len(t, report.Packages, 5)
	ids := make([]string, 0, len(report.Packages))
	for _, p := range report.Packages {
		ids = append(ids, p.ID)
		assert.Equal(t, p.ID, p.Path)
	}
	assert.Equal(t, []string{"apps/web", "libs/theme", "libs/ui", "packages/sdk", "tools/lint"}, ids)

	web := report.Packages[0]
	assert.Equal(t, "app", web.Type)
	assert.Equal(t, 2, web.DepsCount)
	assert.Equal(t, 0, web.DependentsCount)

	ui := report.Packages[2]
	assert.Equal(t, "lib", ui.Type)
	assert.Equal(t, 2, ui.DependentsCount)

	assert.Equal(t, "package", report.Packages[3].Type)
	assert.Equal(t, "unknown", report.Packages[4].Type)

	require.Len(t, report.Edges, 4)
	assert.Equal(t, "apps/web", report.Edges[0].From)
	assert.Equal(t, "libs/ghost", report.Edges[0].To)

	assert.Equal(t, [][]string{{"libs/ui", "libs/theme"}}, report.Cycles)
}

func TestRenderer_JSON_EmptyCollections(t *testing.T) {
	r, buf := newRenderer(t)
	require.NoError(t, r.JSON(newGraph(t, nil), nil, domain.DefaultLayout()))

	assert.Contains(t, buf.String(), `"packages": []`)
	assert.Contains(t, buf.String(), `"edges": []`)
	assert.Contains(t, buf.String(), `"cycles": []`)
	assert.Contains(t, buf.String(), `"lockfile_digest": ""`)
}

func TestRenderer_DOT(t *testing.T) {
	graph := newGraph(t, map[string][]string{
		"apps/web":     {"libs/ui", "libs/ghost"},
		"libs/ui":      nil,
		"packages/sdk": {"libs/ghost"},
	})

	r, buf := newRenderer(t)
	require.NoError(t, r.DOT(graph, domain.DefaultLayout()))

	out := buf.String()
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, `rankdir="LR"`)
	assert.Contains(t, out, `"apps/web" -> "libs/ui"`)
	assert.Contains(t, out, `"apps/web" -> "libs/ghost"`)
	assert.Contains(t, out, `"packages/sdk" -> "libs/ghost"`)
	assert.Contains(t, out, `label="web"`)
	assert.Contains(t, out, `shape="box"`)
	assert.Contains(t, out, `style="dashed"`)
}
