package site

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// BuildStructure remaps a catalog of generated pages into site
// sections under canonical page names, per the repository mappings.
//
// Pages whose source path matches none of their repository's target
// markers are excluded and reported in the returned error slice; the
// build continues without them. A colliding canonical name within a
// section overwrites the earlier page.
func BuildStructure(catalog Catalog, mappings map[string]Mapping) (Pages, []error) {
	pages := make(Pages)
	var errs []error

	for _, repo := range sortedKeys(catalog) {
		mapping, ok := mappings[repo]
		if !ok {
			errs = append(errs, fmt.Errorf("no site mapping for repository %s", repo))
			continue
		}

		section := pages[mapping.Section]
		if section == nil {
			section = make(map[string]string)
			pages[mapping.Section] = section
		}

		sources := catalog[repo]
		for _, source := range sortedKeys(sources) {
			name, ok := CanonicalPageName(source, mapping.Targets)
			if !ok {
				errs = append(errs, fmt.Errorf("no suitable target found for %s in %v", source, mapping.Targets))
				continue
			}
			if _, exists := section[name]; exists {
				slog.Debug("Canonical page name collision, later page wins",
					logfields.Section(mapping.Section), logfields.Page(name), logfields.Source(source))
			}
			section[name] = sources[source]
		}
	}

	return pages, errs
}

// CanonicalPageName derives a page's site name from its source path:
// the path suffix after the first matching target marker, extension
// swapped for ".md", path separators replaced by a "::" scope
// separator. Returns false when no marker occurs in the path.
func CanonicalPageName(source string, targets []string) (string, bool) {
	for _, target := range targets {
		idx := strings.LastIndex(source, target)
		if idx < 0 {
			continue
		}
		name := source[idx+len(target):]
		name = strings.TrimSuffix(name, path.Ext(name))
		return strings.ReplaceAll(name, "/", "::") + ".md", true
	}
	return "", false
}
