package domain

import "go.trai.ch/zerr"

var (
	// ErrLockfileNotFound is returned when no lockfile exists at the expected path.
	ErrLockfileNotFound = zerr.New("pnpm-lock.yaml not found, run 'pnpm install' first or point --dir at the workspace root")

	// ErrLockfileReadFailed is returned when the lockfile exists but cannot be read.
	ErrLockfileReadFailed = zerr.New("failed to read lockfile")

	// ErrLockfileParseFailed is returned when the lockfile is not valid YAML or does not match the schema.
	ErrLockfileParseFailed = zerr.New("failed to parse lockfile")

	// ErrUnsupportedLockfileVersion is returned when the lockfile declares a major version other than the supported one.
	ErrUnsupportedLockfileVersion = zerr.New("unsupported lockfile version")

	// ErrDuplicatePackage is returned when a node with the same id is added to a graph twice.
	ErrDuplicatePackage = zerr.New("package already exists")

	// ErrCyclicDependency is returned when the closure of a sort target contains a cycle.
	ErrCyclicDependency = zerr.New("circular dependency detected")

	// ErrPackageNotFound is returned when a package query matches no package.
	ErrPackageNotFound = zerr.New("package not found in workspace")

	// ErrAmbiguousPackageQuery is returned when a package query matches more than one package.
	ErrAmbiguousPackageQuery = zerr.New("ambiguous package query")

	// ErrCyclesDetected is returned by check when the workspace graph contains cycles.
	ErrCyclesDetected = zerr.New("circular dependency cycle(s) found")

	// ErrArchitectureViolations is returned by check when layering rules are broken.
	ErrArchitectureViolations = zerr.New("architecture violation(s) found")

	// ErrCheckFailed marks a check that ran to completion and reported problems.
	ErrCheckFailed = zerr.New("workspace check failed")

	// ErrWorkspaceNotFound is returned when no workspace root can be found above the given directory.
	ErrWorkspaceNotFound = zerr.New("could not find pnpm-lock.yaml or wsdeps.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrInvalidLayerPrefix is returned when a layer prefix in the config is empty or absolute.
	ErrInvalidLayerPrefix = zerr.New("invalid layer prefix")

	// ErrWatchFailed is returned when the lockfile watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch workspace files")
)
