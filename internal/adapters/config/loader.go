// Package config locates the workspace root and reads the optional wsdeps.yaml.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.trai.ch/wsdeps/internal/adapters/fs"
	"go.trai.ch/wsdeps/internal/core/domain"
	"go.trai.ch/wsdeps/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
	FS     fs.FileSystem
}

// NewLoader creates a new Loader with the given logger and file system.
func NewLoader(logger ports.Logger, fsys fs.FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load walks up from dir until it finds a directory holding wsdeps.yaml or
// pnpm-lock.yaml and describes the workspace rooted there.
func (l *Loader) Load(dir string) (*domain.Workspace, error) {
	start, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve directory"), "dir", dir)
	}

	root, configPath, err := l.findRoot(start)
	if err != nil {
		return nil, err
	}

	ws := &domain.Workspace{
		Root:         root,
		LockfilePath: filepath.Join(root, domain.LockfileName),
		Layout:       domain.DefaultLayout(),
	}
	if configPath == "" {
		return ws, nil
	}

	ws.ConfigPath = configPath
	if err := l.applyConfigfile(ws); err != nil {
		return nil, zerr.With(err, "config", configPath)
	}
	return ws, nil
}

func (l *Loader) findRoot(start string) (root, configPath string, err error) {
	currentDir := start
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if l.isFile(candidate) {
			return currentDir, candidate, nil
		}
		if l.isFile(filepath.Join(currentDir, domain.LockfileName)) {
			return currentDir, "", nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", "", zerr.With(domain.ErrWorkspaceNotFound, "dir", start)
}

func (l *Loader) isFile(path string) bool {
	info, err := l.FS.Stat(path)
	return err == nil && !info.IsDir()
}

func (l *Loader) applyConfigfile(ws *domain.Workspace) error {
	var cfg Configfile
	if err := l.readAndDecodeYAML(ws.ConfigPath, &cfg); err != nil {
		return err
	}

	if cfg.Version != "" && cfg.Version != domain.ConfigVersion {
		err := zerr.With(domain.ErrUnsupportedConfigVersion, "version", cfg.Version)
		return zerr.With(err, "supported_version", domain.ConfigVersion)
	}

	if cfg.Lockfile != "" {
		ws.LockfilePath = resolvePath(ws.Root, cfg.Lockfile)
	}

	if cfg.Layers == nil {
		return nil
	}

	layout, err := buildLayout(cfg.Layers)
	if err != nil {
		return err
	}
	if len(layout.Apps) == 0 {
		l.Logger.Warn(fmt.Sprintf("no app layer configured in %s, architecture validation will report nothing", domain.ConfigFileName))
	}
	ws.Layout = layout
	return nil
}

// readAndDecodeYAML reads a YAML file and decodes it strictly into the target struct.
// An empty file leaves the target untouched.
func (l *Loader) readAndDecodeYAML(path string, target any) error {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

func buildLayout(dto *LayersDTO) (domain.Layout, error) {
	layout := domain.DefaultLayout()

	layers := []struct {
		name string
		src  []string
		dst  *[]string
	}{
		{"apps", dto.Apps, &layout.Apps},
		{"libs", dto.Libs, &layout.Libs},
		{"packages", dto.Packages, &layout.Packages},
	}

	for _, layer := range layers {
		if layer.src == nil {
			continue
		}
		prefixes := make([]string, 0, len(layer.src))
		for _, raw := range layer.src {
			prefix, err := normalizePrefix(raw)
			if err != nil {
				return domain.Layout{}, zerr.With(err, "layer", layer.name)
			}
			prefixes = append(prefixes, prefix)
		}
		*layer.dst = prefixes
	}

	return layout, nil
}

// normalizePrefix turns a configured layer prefix into a workspace-relative
// directory prefix ending in "/", so that "apps" does not match "appsfoo".
func normalizePrefix(raw string) (string, error) {
	prefix := strings.TrimPrefix(filepath.ToSlash(strings.TrimSpace(raw)), "./")
	if prefix == "" || strings.HasPrefix(prefix, "/") || prefix == ".." || strings.HasPrefix(prefix, "../") {
		return "", zerr.With(domain.ErrInvalidLayerPrefix, "prefix", raw)
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix, nil
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
