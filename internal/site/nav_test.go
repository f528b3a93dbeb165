package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	siteerrors "git.home.luguber.info/inful/docsite/internal/errors"
)

func TestRenderNav(t *testing.T) {
	root := t.TempDir()
	toc := TableOfContents{
		"CCM":        {"fetch::download.md"},
		"components": {"fmonagent.md", "profile::functions.md"},
	}

	require.NoError(t, RenderNav(toc, root, "Quattor documentation"))

	data, err := os.ReadFile(filepath.Join(root, NavFileName))
	require.NoError(t, err)

	want := `site_name: Quattor documentation
pages:
- CCM:
  - 'CCM/fetch::download.md'
- components:
  - 'components/fmonagent.md'
  - 'components/profile::functions.md'
`
	assert.Equal(t, want, string(data))

	// The navigation file must be consumable by the site generator.
	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.Equal(t, "Quattor documentation", parsed["site_name"])
}

func TestRenderNavByteIdenticalRegardlessOfOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	require.NoError(t, RenderNav(TableOfContents{
		"components": {"fmonagent.md", "profile::functions.md"},
		"CCM":        {"fetch::download.md"},
	}, first, "Docs"))
	require.NoError(t, RenderNav(TableOfContents{
		"CCM":        {"fetch::download.md"},
		"components": {"profile::functions.md", "fmonagent.md"},
	}, second, "Docs"))

	a, err := os.ReadFile(filepath.Join(first, NavFileName))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(second, NavFileName))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRenderNavMissingDirectoryFails(t *testing.T) {
	err := RenderNav(TableOfContents{"docs": {"a.md"}}, filepath.Join(t.TempDir(), "nope"), "Docs")
	require.Error(t, err)

	var se *siteerrors.SiteError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, siteerrors.CategoryFileSystem, se.Category)
}
