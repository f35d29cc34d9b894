package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wsdeps/internal/core/domain"
)

func TestLayout_Classify(t *testing.T) {
	layout := domain.DefaultLayout()

	tests := []struct {
		path string
		want domain.Layer
	}{
		{path: "apps/web", want: domain.LayerApp},
		{path: "libs/ui", want: domain.LayerLib},
		{path: "packages/sdk", want: domain.LayerPackage},
		{path: "tools/codegen", want: domain.LayerUnknown},
		{path: "appsfoo/bar", want: domain.LayerUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, layout.Classify(tt.path))
		})
	}
}

func TestLayer_String(t *testing.T) {
	assert.Equal(t, "app", domain.LayerApp.String())
	assert.Equal(t, "lib", domain.LayerLib.String())
	assert.Equal(t, "package", domain.LayerPackage.String())
	assert.Equal(t, "unknown", domain.LayerUnknown.String())
}

func TestGraph_ArchitectureViolations(t *testing.T) {
	tests := []struct {
		name   string
		edges  map[string][]string
		layout domain.Layout
		want   []domain.Violation
	}{
		{
			name: "app to app",
			edges: map[string][]string{
				"apps/web": {"apps/api"},
				"apps/api": nil,
			},
			layout: domain.DefaultLayout(),
			want:   []domain.Violation{{Source: "apps/web", Target: "apps/api"}},
		},
		{
			name: "allowed shapes",
			edges: map[string][]string{
				"apps/web":     {"libs/ui", "packages/sdk"},
				"libs/ui":      {"libs/env", "apps/web"},
				"libs/env":     nil,
				"packages/sdk": {"apps/web"},
			},
			layout: domain.DefaultLayout(),
			want:   nil,
		},
		{
			name: "dangling app target still counts",
			edges: map[string][]string{
				"apps/web": {"apps/removed"},
			},
			layout: domain.DefaultLayout(),
			want:   []domain.Violation{{Source: "apps/web", Target: "apps/removed"}},
		},
		{
			name: "sorted by source then target",
			edges: map[string][]string{
				"apps/web":   {"apps/b", "apps/a"},
				"apps/admin": {"apps/web"},
				"apps/a":     nil,
				"apps/b":     nil,
			},
			layout: domain.DefaultLayout(),
			want: []domain.Violation{
				{Source: "apps/admin", Target: "apps/web"},
				{Source: "apps/web", Target: "apps/a"},
				{Source: "apps/web", Target: "apps/b"},
			},
		},
		{
			name: "custom layout",
			edges: map[string][]string{
				"services/billing": {"services/auth"},
				"services/auth":    nil,
			},
			layout: domain.Layout{Apps: []string{"services/"}},
			want:   []domain.Violation{{Source: "services/billing", Target: "services/auth"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGraph(t, tt.edges)
			assert.Equal(t, tt.want, g.ArchitectureViolations(tt.layout))
		})
	}
}

func TestViolation_String(t *testing.T) {
	v := domain.Violation{Source: "apps/web", Target: "apps/api"}
	assert.Equal(t, "Cross-app dependency: apps/web → apps/api", v.String())
}
