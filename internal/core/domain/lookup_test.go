package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wsdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestGraph_FindPackage(t *testing.T) {
	g := newGraph(t, map[string][]string{
		"apps/web":        {"libs/ui"},
		"apps/web-admin":  {"libs/ui"},
		"libs/ui":         nil,
		"libs/api-client": nil,
	})

	t.Run("exact id wins over substring matches", func(t *testing.T) {
		n, err := g.FindPackage("apps/web")
		require.NoError(t, err)
		assert.Equal(t, "apps/web", n.ID)
	})

	t.Run("unique substring", func(t *testing.T) {
		n, err := g.FindPackage("api-client")
		require.NoError(t, err)
		assert.Equal(t, "libs/api-client", n.ID)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := g.FindPackage("payments")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrPackageNotFound.Error())

		zErr, ok := err.(*zerr.Error)
		require.True(t, ok, "expected *zerr.Error, got %T", err)
		assert.Equal(t, "payments", zErr.Metadata()["query"])
	})

	t.Run("ambiguous match", func(t *testing.T) {
		_, err := g.FindPackage("web")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrAmbiguousPackageQuery.Error())

		zErr, ok := err.(*zerr.Error)
		require.True(t, ok, "expected *zerr.Error, got %T", err)
		assert.Equal(t, "apps/web, apps/web-admin", zErr.Metadata()["matches"])
	})
}
