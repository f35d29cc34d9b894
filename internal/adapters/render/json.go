package render

import (
	"encoding/json"
	"fmt"

	"go.trai.ch/wsdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// ReportFormat identifies the schema of the JSON report.
const ReportFormat = "wsdeps.deps.v1"

type depsReport struct {
	Format         string        `json:"format"`
	LockfileDigest string        `json:"lockfile_digest"`
	Packages       []packageInfo `json:"packages"`
	Edges          []edgeInfo    `json:"edges"`
	Cycles         [][]string    `json:"cycles"`
}

type packageInfo struct {
	ID              string `json:"id"`
	Path            string `json:"path"`
	Type            string `json:"type"`
	DepsCount       int    `json:"deps_count"`
	DependentsCount int    `json:"dependents_count"`
}

type edgeInfo struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// JSON prints the machine readable graph report.
func (r *Renderer) JSON(g *domain.Graph, lock *domain.Lockfile, layout domain.Layout) error {
	dependents := g.Dependents()

	report := depsReport{
		Format:   ReportFormat,
		Packages: make([]packageInfo, 0, g.Len()),
		Edges:    []edgeInfo{},
		Cycles:   [][]string{},
	}
	if lock != nil {
		report.LockfileDigest = fmt.Sprintf("%016x", lock.Digest)
	}

	for n := range g.Nodes() {
		report.Packages = append(report.Packages, packageInfo{
			ID:              n.ID,
			Path:            n.ID,
			Type:            layout.Classify(n.ID).String(),
			DepsCount:       len(n.Deps),
			DependentsCount: len(dependents[n.ID]),
		})
	}
	for _, e := range g.Edges() {
		report.Edges = append(report.Edges, edgeInfo{From: e.From, To: e.To})
	}
	for _, c := range g.Cycles() {
		report.Cycles = append(report.Cycles, []string(c))
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode dependency report")
	}
	r.println(string(data))
	return nil
}
