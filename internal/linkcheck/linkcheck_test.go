package linkcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/site"
)

func TestVerifyResolvingLinks(t *testing.T) {
	pages := site.Pages{
		"components-grid": {"fmonagent.md": ""},
		"components": {
			"icinga.md": "I refer to [fmonagent](../components-grid/fmonagent.md).",
		},
	}
	assert.Empty(t, Verify(pages))
}

func TestVerifyReportsBrokenLinks(t *testing.T) {
	pages := site.Pages{
		"components": {
			"icinga.md": "See [gone](../components-grid/gone.md) and [ok](https://example.org/page).",
		},
	}

	broken := Verify(pages)
	require.Len(t, broken, 1)
	assert.Equal(t, "components", broken[0].Section)
	assert.Equal(t, "icinga.md", broken[0].Page)
	assert.Equal(t, "../components-grid/gone.md", broken[0].Destination)
}

func TestVerifySkipsExternalAndAnchorLinks(t *testing.T) {
	pages := site.Pages{
		"docs": {
			"page.md": "[a](https://example.org) [b](#section) [c](mailto:x@y.z) [d](/absolute)",
		},
	}
	assert.Empty(t, Verify(pages))
}

func TestVerifyResolvesScopedPageNames(t *testing.T) {
	pages := site.Pages{
		"CCM": {"Fetch::Download.md": ""},
		"docs": {
			"intro.md": "See [Fetch::Download](../CCM/Fetch::Download.md).",
		},
	}
	assert.Empty(t, Verify(pages))
}
