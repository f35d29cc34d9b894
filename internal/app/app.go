// Package app implements the application layer for wsdeps.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"go.trai.ch/wsdeps/internal/adapters/detector"
	"go.trai.ch/wsdeps/internal/adapters/render"
	"go.trai.ch/wsdeps/internal/adapters/watcher"
	"go.trai.ch/wsdeps/internal/core/domain"
	"go.trai.ch/wsdeps/internal/core/ports"
	"go.trai.ch/wsdeps/internal/ui/output"
	"go.trai.ch/zerr"
)

// App loads the workspace graph and presents it.
type App struct {
	configLoader   ports.ConfigLoader
	lockfileLoader ports.LockfileLoader
	logger         ports.Logger
	watcher        ports.Watcher
	stdout         io.Writer
	debounce       time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	lockfileLoader ports.LockfileLoader,
	log ports.Logger,
	w ports.Watcher,
) *App {
	return &App{
		configLoader:   loader,
		lockfileLoader: lockfileLoader,
		logger:         log,
		watcher:        w,
		stdout:         os.Stdout,
		debounce:       watcher.DefaultDebounceWindow,
	}
}

// WithOutput redirects rendered output, which goes to stdout by default.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithDebounceWindow sets how long watch mode waits for file events to settle.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounce = d
	return a
}

// Options configures a single command invocation.
type Options struct {
	// Dir is where workspace discovery starts.
	Dir string
	// Color is the --color flag value: auto, always or never.
	Color string
}

// snapshot is one consistent view of the workspace.
type snapshot struct {
	workspace *domain.Workspace
	lockfile  *domain.Lockfile
	graph     *domain.Graph
}

func (a *App) load(opts Options) (*snapshot, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	ws, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load workspace")
	}

	lock, err := a.lockfileLoader.Load(ws.LockfilePath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load lockfile")
	}

	return &snapshot{
		workspace: ws,
		lockfile:  lock,
		graph:     domain.BuildGraph(lock),
	}, nil
}

func (a *App) renderer(opts Options) *render.Renderer {
	mode := detector.ResolveMode(opts.Color)
	profile := detector.Profile(mode, detector.DetectEnvironment(a.stdout))
	return render.New(output.NewWithProfile(a.stdout, profile))
}

// plainRenderer is used for machine readable formats, which never carry colors.
func (a *App) plainRenderer() *render.Renderer {
	return render.New(output.NewWithProfile(a.stdout, detector.Profile(detector.ColorNever, detector.Environment{})))
}

// Tree prints the dependency tree of the workspace.
func (a *App) Tree(_ context.Context, opts Options) error {
	snap, err := a.load(opts)
	if err != nil {
		return err
	}
	a.renderer(opts).Tree(snap.graph)
	return nil
}

// JSON prints the machine readable dependency report.
func (a *App) JSON(_ context.Context, opts Options) error {
	snap, err := a.load(opts)
	if err != nil {
		return err
	}
	return a.plainRenderer().JSON(snap.graph, snap.lockfile, snap.workspace.Layout)
}

// Dot prints the dependency graph in Graphviz format.
func (a *App) Dot(_ context.Context, opts Options) error {
	snap, err := a.load(opts)
	if err != nil {
		return err
	}
	return a.plainRenderer().DOT(snap.graph, snap.workspace.Layout)
}

// Show prints the package matching query with its dependencies, dependents and build order.
func (a *App) Show(_ context.Context, query string, opts Options) error {
	snap, err := a.load(opts)
	if err != nil {
		return err
	}

	node, err := snap.graph.FindPackage(query)
	if err != nil {
		return err
	}

	a.renderer(opts).Inspect(snap.graph, node)
	return nil
}

// Check prints the cycle and architecture report. Problems are returned as an
// error matching domain.ErrCheckFailed.
func (a *App) Check(_ context.Context, opts Options) error {
	snap, err := a.load(opts)
	if err != nil {
		return err
	}
	return a.check(snap, a.renderer(opts))
}

func (a *App) check(snap *snapshot, r *render.Renderer) error {
	cycles := snap.graph.Cycles()

	var violations []domain.Violation
	if len(cycles) == 0 {
		violations = snap.graph.ArchitectureViolations(snap.workspace.Layout)
	}

	r.Check(cycles, violations)
	return checkOutcome(cycles, violations)
}

func checkOutcome(cycles []domain.Cycle, violations []domain.Violation) error {
	switch {
	case len(cycles) > 0:
		return errors.Join(domain.ErrCheckFailed, zerr.With(domain.ErrCyclesDetected, "count", len(cycles)))
	case len(violations) > 0:
		return errors.Join(domain.ErrCheckFailed, zerr.With(domain.ErrArchitectureViolations, "count", len(violations)))
	default:
		return nil
	}
}
