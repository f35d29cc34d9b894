package domain

import "strings"

const (
	// ConfigFileName is the name of the optional workspace configuration file.
	ConfigFileName = "wsdeps.yaml"

	// ConfigVersion is the only supported config file version.
	ConfigVersion = "1"
)

// Layer is the architectural layer of a package.
type Layer uint8

const (
	// LayerUnknown is a package outside every configured layer.
	LayerUnknown Layer = iota
	// LayerApp is a deployable application.
	LayerApp
	// LayerLib is a shared library.
	LayerLib
	// LayerPackage is a publishable package.
	LayerPackage
)

func (l Layer) String() string {
	switch l {
	case LayerApp:
		return "app"
	case LayerLib:
		return "lib"
	case LayerPackage:
		return "package"
	default:
		return "unknown"
	}
}

// Layout classifies packages into layers by path prefix.
type Layout struct {
	Apps     []string
	Libs     []string
	Packages []string
}

// DefaultLayout returns the conventional apps/, libs/ and packages/ layout.
func DefaultLayout() Layout {
	return Layout{
		Apps:     []string{"apps/"},
		Libs:     []string{"libs/"},
		Packages: []string{"packages/"},
	}
}

// Classify returns the layer of the package at path.
// App prefixes are checked first, then libs, then packages.
func (l Layout) Classify(path string) Layer {
	switch {
	case hasAnyPrefix(path, l.Apps):
		return LayerApp
	case hasAnyPrefix(path, l.Libs):
		return LayerLib
	case hasAnyPrefix(path, l.Packages):
		return LayerPackage
	default:
		return LayerUnknown
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// Workspace describes where a workspace lives and how it is laid out.
type Workspace struct {
	// Root is the directory holding the lockfile or the config file.
	Root string
	// ConfigPath is the config file path, empty when the workspace has none.
	ConfigPath string
	// LockfilePath is the path of the pnpm lockfile.
	LockfilePath string
	// Layout classifies packages for architecture validation.
	Layout Layout
}
