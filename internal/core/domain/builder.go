package domain

// BuildGraph assembles the internal dependency graph of a lockfile.
// The root importer is skipped and only workspace links become edges.
func BuildGraph(lock *Lockfile) *Graph {
	g := NewGraph()

	for path, importer := range lock.Importers {
		if path == RootImporter {
			continue
		}

		n := NewNode(path)
		if importer != nil {
			for _, dep := range importer.LinkedDependencies() {
				if target, ok := ResolveWorkspaceLink(path, dep.Version); ok {
					n.Deps[target] = struct{}{}
				}
			}
		}

		// Importer paths are map keys, so ids cannot collide.
		_ = g.AddNode(n)
	}

	return g
}
