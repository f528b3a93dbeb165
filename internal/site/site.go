// Package site holds the cross-repository assembly core: mapping
// generated markdown pages into site sections under canonical names,
// rewriting textual cross-references into relative hyperlinks, and
// deriving the table of contents used for navigation.
package site

import "sort"

// Catalog maps a repository name to its generated markdown pages,
// keyed by raw source path. Produced by the scanner/converter
// collaborators and consumed exactly once by BuildStructure.
type Catalog map[string]map[string]string

// Pages maps a site section to its pages, keyed by canonical page
// name. Page names are unique within a section; a later page with a
// colliding name overwrites an earlier one.
type Pages map[string]map[string]string

// TableOfContents maps a section to its case-insensitively sorted,
// deduplicated page file names.
type TableOfContents map[string][]string

// Mapping describes where one repository's pages land on the site.
type Mapping struct {
	Section string   // Destination section name
	Targets []string // Ordered path markers, first match wins
}

// Clone returns a deep copy of the page set. Stages hand each other
// fresh values instead of aliasing shared maps.
func (p Pages) Clone() Pages {
	out := make(Pages, len(p))
	for section, pages := range p {
		cp := make(map[string]string, len(pages))
		for name, content := range pages {
			cp[name] = content
		}
		out[section] = cp
	}
	return out
}

// PageCount returns the total number of pages across all sections.
func (p Pages) PageCount() int {
	n := 0
	for _, pages := range p {
		n += len(pages)
	}
	return n
}

// sortedKeys returns map keys in lexical order. All catalog and page
// iteration goes through this so rewrite order is reproducible across
// runs instead of depending on map iteration order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
