package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/wsdeps/internal/adapters/render"
	"go.trai.ch/wsdeps/internal/adapters/watcher"
	"go.trai.ch/wsdeps/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// Watch runs Check, then runs it again whenever the lockfile or the config
// file changes. Rewrites that leave the lockfile content untouched are skipped.
// Load failures after the first run are logged and watching continues.
// Watch returns nil once ctx is done.
func (a *App) Watch(ctx context.Context, opts Options) error {
	snap, err := a.load(opts)
	if err != nil {
		return err
	}

	r := a.renderer(opts)
	a.reportCheck(snap, r)

	files := []string{snap.workspace.LockfilePath}
	if snap.workspace.ConfigPath != "" {
		files = append(files, snap.workspace.ConfigPath)
	}

	g, gctx := errgroup.WithContext(ctx)
	if err := a.watcher.Start(gctx, files...); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("watching %s for changes", filepath.Base(snap.workspace.LockfilePath)))

	changes := make(chan []string)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		select {
		case changes <- paths:
		case <-gctx.Done():
		}
	})
	defer debouncer.Stop()

	g.Go(func() error {
		<-gctx.Done()
		return a.watcher.Stop()
	})

	g.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		last := snap
		for {
			select {
			case <-gctx.Done():
				return nil
			case paths := <-changes:
				last = a.rerun(last, paths, opts, r)
			}
		}
	})

	return g.Wait()
}

// rerun reloads the workspace after paths changed and returns the snapshot to
// compare the next change against.
func (a *App) rerun(last *snapshot, paths []string, opts Options, r *render.Renderer) *snapshot {
	next, err := a.load(opts)
	if err != nil {
		a.logger.Error(err)
		return last
	}

	configChanged := last.workspace.ConfigPath != "" && slices.Contains(paths, last.workspace.ConfigPath)
	if !configChanged && next.lockfile.Digest == last.lockfile.Digest {
		return next
	}

	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	a.logger.Info(fmt.Sprintf("change detected in %s, re-checking", strings.Join(names, ", ")))
	a.reportCheck(next, r)
	return next
}

// reportCheck runs a check in watch mode, where a failing check is only reported.
func (a *App) reportCheck(snap *snapshot, r *render.Renderer) {
	if err := a.check(snap, r); err != nil && !errors.Is(err, domain.ErrCheckFailed) {
		a.logger.Error(err)
	}
}
