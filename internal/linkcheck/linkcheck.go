// Package linkcheck verifies that relative links in assembled pages
// resolve to pages that actually exist on the site. It is an analysis
// pass: it reports, it never rewrites.
package linkcheck

import (
	"path"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/docsite/internal/site"
)

// Broken describes one relative link whose target page does not exist.
type Broken struct {
	Section     string // Section of the page containing the link
	Page        string // Page containing the link
	Destination string // The link destination as written
}

// Verify walks every page's markdown AST and collects relative links
// that do not land on a known (section, page) pair. Absolute URLs,
// anchors, and mailto links are out of scope.
func Verify(pages site.Pages) []Broken {
	var broken []Broken

	for section, sectionPages := range pages {
		for name, content := range sectionPages {
			for _, dest := range extractDestinations([]byte(content)) {
				if isExternal(dest) {
					continue
				}
				if !resolves(pages, section, dest) {
					broken = append(broken, Broken{Section: section, Page: name, Destination: dest})
				}
			}
		}
	}

	return broken
}

// extractDestinations parses markdown and returns inline link
// destinations. Images are skipped: interlinking never generates them.
func extractDestinations(body []byte) []string {
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var dests []string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if link, ok := n.(*gmast.Link); ok {
			dests = append(dests, string(link.Destination))
		}
		return gmast.WalkContinue, nil
	})
	return dests
}

func isExternal(dest string) bool {
	return strings.HasPrefix(dest, "http://") ||
		strings.HasPrefix(dest, "https://") ||
		strings.HasPrefix(dest, "#") ||
		strings.HasPrefix(dest, "mailto:") ||
		strings.HasPrefix(dest, "/")
}

// resolves reports whether dest, interpreted relative to the linking
// page's section directory, names an existing page.
func resolves(pages site.Pages, fromSection, dest string) bool {
	// Strip any fragment before resolving.
	if i := strings.IndexByte(dest, '#'); i >= 0 {
		dest = dest[:i]
	}
	if dest == "" {
		return true
	}

	resolved := path.Clean(path.Join(fromSection, dest))
	parts := strings.SplitN(resolved, "/", 2)
	if len(parts) != 2 {
		return false
	}
	section, page := parts[0], parts[1]

	sectionPages, ok := pages[section]
	if !ok {
		return false
	}
	_, ok = sectionPages[page]
	return ok
}
