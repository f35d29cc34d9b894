package config

// Configfile represents the structure of the wsdeps.yaml configuration file.
type Configfile struct {
	Version  string     `yaml:"version"`
	Lockfile string     `yaml:"lockfile"`
	Layers   *LayersDTO `yaml:"layers"`
}

// LayersDTO lists the path prefixes of each architectural layer.
// An omitted list keeps the default prefix, an empty list disables the layer.
type LayersDTO struct {
	Apps     []string `yaml:"apps"`
	Libs     []string `yaml:"libs"`
	Packages []string `yaml:"packages"`
}
