package pnpm

// lockfileDTO is the subset of pnpm-lock.yaml the graph engine reads.
// Sections such as packages, snapshots and settings are ignored.
type lockfileDTO struct {
	LockfileVersion *string                 `yaml:"lockfileVersion"`
	Importers       map[string]*importerDTO `yaml:"importers"`
}

type importerDTO struct {
	Dependencies         map[string]*dependencyDTO `yaml:"dependencies"`
	DevDependencies      map[string]*dependencyDTO `yaml:"devDependencies"`
	OptionalDependencies map[string]*dependencyDTO `yaml:"optionalDependencies"`
	PeerDependencies     map[string]*dependencyDTO `yaml:"peerDependencies"`
}

// dependencyDTO uses pointers so that a missing field can be told apart from an empty one.
type dependencyDTO struct {
	Specifier *string `yaml:"specifier"`
	Version   *string `yaml:"version"`
}
