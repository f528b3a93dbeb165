package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPageName(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		targets []string
		want    string
		wantOK  bool
	}{
		{
			name:    "suffix after matching marker, extension replaced, separators scoped",
			source:  "/tmp/qdoc/src/CCM/target/doc/pod/EDG/WP4/CCM/Fetch/Download.pod",
			targets: []string{"EDG/WP4/CCM/"},
			want:    "Fetch::Download.md",
			wantOK:  true,
		},
		{
			name:    "first matching marker wins over later ones",
			source:  "/src/repo/target/pan/components/profile/functions.pan",
			targets: []string{"/NCM/Component/", "/components/", "/pan/quattor/"},
			want:    "profile::functions.md",
			wantOK:  true,
		},
		{
			name:    "single path element",
			source:  "/src/repo/target/doc/pod/NCM/Component/fmonagent.pod",
			targets: []string{"/NCM/Component/"},
			want:    "fmonagent.md",
			wantOK:  true,
		},
		{
			name:    "no marker matches",
			source:  "/src/repo/README.pod",
			targets: []string{"/NCM/Component/", "/components/"},
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CanonicalPageName(tt.source, tt.targets)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBuildStructure(t *testing.T) {
	mappings := map[string]Mapping{
		"configuration-modules-core": {
			Section: "components",
			Targets: []string{"/NCM/Component/", "/components/", "/pan/quattor/"},
		},
		"CCM": {
			Section: "CCM",
			Targets: []string{"EDG/WP4/CCM/"},
		},
	}
	catalog := Catalog{
		"CCM": {
			"/tmp/qdoc/src/CCM/target/doc/pod/EDG/WP4/CCM/Fetch/Download.pod": "# NAME\n\nEDG::WP4::CC",
		},
		"configuration-modules-core": {
			"/tmp/doc/src/configuration-modules-core/ncm-profile/target/pan/components/profile/functions.pan": "\n### Functions\n",
			"/tmp/doc/src/configuration-modules-core/ncm-fmonagent/target/doc/pod/NCM/Component/fmonagent.pod": "Hello",
			"/tmp/doc/src/configuration-modules-core/ncm-freeipa/target/pan/quattor/aii/freeipa/schema.pan":    "Hello2",
		},
	}

	pages, errs := BuildStructure(catalog, mappings)
	require.Empty(t, errs)

	want := Pages{
		"CCM": {
			"Fetch::Download.md": "# NAME\n\nEDG::WP4::CC",
		},
		"components": {
			"aii::freeipa::schema.md": "Hello2",
			"fmonagent.md":            "Hello",
			"profile::functions.md":   "\n### Functions\n",
		},
	}
	assert.Equal(t, want, pages)
}

func TestBuildStructureUnmatchedTarget(t *testing.T) {
	mappings := map[string]Mapping{
		"repo": {Section: "components", Targets: []string{"/NCM/Component/"}},
	}
	catalog := Catalog{
		"repo": {
			"/src/repo/somewhere/else/page.pod": "content",
		},
	}

	pages, errs := BuildStructure(catalog, mappings)

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "/src/repo/somewhere/else/page.pod")
	assert.Contains(t, errs[0].Error(), "/NCM/Component/")
	for _, sectionPages := range pages {
		assert.Empty(t, sectionPages)
	}
}

func TestBuildStructureCollisionLaterPageWins(t *testing.T) {
	mappings := map[string]Mapping{
		"repo": {Section: "components", Targets: []string{"/pod/"}},
	}
	catalog := Catalog{
		"repo": {
			"/a/pod/page.pod": "first",
			"/b/pod/page.pod": "second",
		},
	}

	pages, errs := BuildStructure(catalog, mappings)
	require.Empty(t, errs)
	// Sources are walked in sorted order, so /b wins.
	assert.Equal(t, "second", pages["components"]["page.md"])
}

func TestBuildStructureDeterministic(t *testing.T) {
	mappings := map[string]Mapping{
		"repo": {Section: "docs", Targets: []string{"/pod/"}},
	}
	catalog := Catalog{
		"repo": {
			"/r/pod/a.pod": "A",
			"/r/pod/b.pod": "B",
			"/r/pod/c.pod": "C",
		},
	}

	first, _ := BuildStructure(catalog, mappings)
	for range 10 {
		again, _ := BuildStructure(catalog, mappings)
		assert.Equal(t, first, again)
	}
}
