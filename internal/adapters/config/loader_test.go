package config_test

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wsdeps/internal/adapters/config"
	"go.trai.ch/wsdeps/internal/adapters/fs"
	"go.trai.ch/wsdeps/internal/core/domain"
	"go.trai.ch/wsdeps/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

var repoRoot = filepath.Join(string(filepath.Separator), "repo")

func newLoader(t *testing.T, files fstest.MapFS) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	return config.NewLoader(mockLogger, fs.NewMapFSAdapter(repoRoot, files)), mockLogger
}

func TestLoader_Load_LockfileOnly(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		domain.LockfileName:  {Data: []byte("lockfileVersion: '9.0'\n")},
		"apps/web/src/.keep": {},
	})

	ws, err := loader.Load(filepath.Join(repoRoot, "apps", "web", "src"))
	require.NoError(t, err)

	assert.Equal(t, repoRoot, ws.Root)
	assert.Empty(t, ws.ConfigPath)
	assert.Equal(t, filepath.Join(repoRoot, domain.LockfileName), ws.LockfilePath)
	assert.Equal(t, domain.DefaultLayout(), ws.Layout)
}

func TestLoader_Load_ConfigWinsOverLockfileAtSameLevel(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		domain.LockfileName:   {Data: []byte("lockfileVersion: '9.0'\n")},
		domain.ConfigFileName: {Data: []byte("version: \"1\"\n")},
	})

	ws, err := loader.Load(repoRoot)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(repoRoot, domain.ConfigFileName), ws.ConfigPath)
	assert.Equal(t, filepath.Join(repoRoot, domain.LockfileName), ws.LockfilePath)
	assert.Equal(t, domain.DefaultLayout(), ws.Layout)
}

func TestLoader_Load_NearestMarkerWins(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		domain.ConfigFileName:              {Data: []byte("version: \"1\"\n")},
		"nested/" + domain.LockfileName:    {Data: []byte("lockfileVersion: '9.0'\n")},
		"nested/packages/sdk/package.json": {Data: []byte("{}")},
	})

	ws, err := loader.Load(filepath.Join(repoRoot, "nested", "packages", "sdk"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(repoRoot, "nested"), ws.Root)
	assert.Empty(t, ws.ConfigPath)
}

func TestLoader_Load_FullConfig(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		domain.ConfigFileName: {Data: []byte(`version: "1"
lockfile: frontend/pnpm-lock.yaml
layers:
  apps: ["apps", "./services/"]
  libs: ["shared/"]
`)},
	})

	ws, err := loader.Load(repoRoot)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(repoRoot, "frontend", domain.LockfileName), ws.LockfilePath)
	assert.Equal(t, domain.Layout{
		Apps:     []string{"apps/", "services/"},
		Libs:     []string{"shared/"},
		Packages: []string{"packages/"},
	}, ws.Layout)
}

func TestLoader_Load_EmptyConfig(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		domain.ConfigFileName: {Data: []byte("")},
	})

	ws, err := loader.Load(repoRoot)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLayout(), ws.Layout)
}

func TestLoader_Load_WarnsWithoutAppLayer(t *testing.T) {
	loader, mockLogger := newLoader(t, fstest.MapFS{
		domain.ConfigFileName: {Data: []byte("version: \"1\"\nlayers:\n  apps: []\n")},
	})
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	ws, err := loader.Load(repoRoot)
	require.NoError(t, err)
	assert.Empty(t, ws.Layout.Apps)
	assert.Equal(t, []string{"libs/"}, ws.Layout.Libs)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		wantErr  error
		wantMeta map[string]any
	}{
		{
			name:    "unknown field",
			config:  "version: \"1\"\nlockfiles: x\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "wrong kind",
			config:  "layers:\n  apps: apps/\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:     "unsupported version",
			config:   "version: \"2\"\n",
			wantErr:  domain.ErrUnsupportedConfigVersion,
			wantMeta: map[string]any{"version": "2", "supported_version": "1"},
		},
		{
			name:     "empty prefix",
			config:   "layers:\n  libs: [\"\"]\n",
			wantErr:  domain.ErrInvalidLayerPrefix,
			wantMeta: map[string]any{"layer": "libs", "prefix": ""},
		},
		{
			name:     "absolute prefix",
			config:   "layers:\n  packages: [\"/opt/pkgs\"]\n",
			wantErr:  domain.ErrInvalidLayerPrefix,
			wantMeta: map[string]any{"layer": "packages", "prefix": "/opt/pkgs"},
		},
		{
			name:     "prefix escaping the root",
			config:   "layers:\n  apps: [\"../apps\"]\n",
			wantErr:  domain.ErrInvalidLayerPrefix,
			wantMeta: map[string]any{"layer": "apps"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t, fstest.MapFS{
				domain.ConfigFileName: {Data: []byte(tt.config)},
			})

			ws, err := loader.Load(repoRoot)
			require.Error(t, err)
			assert.Nil(t, ws)
			assert.ErrorContains(t, err, tt.wantErr.Error())

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			meta := zErr.Metadata()
			assert.Equal(t, filepath.Join(repoRoot, domain.ConfigFileName), meta["config"])
			for key, want := range tt.wantMeta {
				assert.Equal(t, want, meta[key], "metadata %q", key)
			}
		})
	}
}

func TestLoader_Load_WorkspaceNotFound(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"apps/web/package.json": {Data: []byte("{}")},
	})

	_, err := loader.Load(filepath.Join(repoRoot, "apps", "web"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrWorkspaceNotFound.Error())
}
