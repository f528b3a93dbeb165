package site

import (
	"regexp"
	"strings"
)

// cpanBase is where legacy documentation cross-references point; pages
// already hyperlinked there get rewritten to the new relative link.
const cpanBase = "https://metacpan.org/pod/"

// legacyNamespaces maps the four legacy section names to the module
// namespace prefix used by their external documentation links.
var legacyNamespaces = map[string]string{
	"CCM":             "EDG::WP4::CCM",
	"Unittest":        "Test",
	"components":      "NCM::Component",
	"components-grid": "NCM::Component",
}

// selfLinkException is the one term allowed to link back to the page
// that defines it.
const selfLinkException = "Quattor"

// Interlink scans every page for textual references to other known
// pages and rewrites matches into relative markdown hyperlinks. The
// input is left untouched; the returned copy is authoritative.
//
// Rewrites are cumulative: later patterns operate on already-rewritten
// content, and when two target pages could claim the same span the
// last one processed wins. Sections and pages are walked in sorted
// order so the winner is the same on every run.
func Interlink(pages Pages) Pages {
	out := pages.Clone()

	for _, section := range sortedKeys(out) {
		for _, page := range sortedKeys(out[section]) {
			basename := strings.TrimSuffix(page, ".md")
			link := "../" + section + "/" + page
			for _, pattern := range referencePatterns(section, basename) {
				rewriteReferences(out, pattern, basename, link)
			}
		}
	}

	return out
}

// referencePatterns builds the candidate reference set for one page:
// the backticked basename, the backticked section-qualified form, the
// legacy external hyperlink form for known legacy sections, and the
// "ncm-" naming convention for the component sections.
func referencePatterns(section, basename string) []string {
	patterns := []string{
		regexp.QuoteMeta("`" + basename + "`"),
		regexp.QuoteMeta("`" + section + "::" + basename + "`"),
	}

	if namespace, ok := legacyNamespaces[section]; ok {
		qualified := namespace + "::" + basename
		patterns = append(patterns, regexp.QuoteMeta("["+qualified+"]("+cpanBase+qualified+")"))
	}

	if section == "components" || section == "components-grid" {
		patterns = append(patterns,
			regexp.QuoteMeta("`ncm-"+basename+"`"),
			regexp.QuoteMeta("ncm-"+basename),
		)
	}

	return patterns
}

// rewriteReferences replaces whole-word occurrences of pattern in every
// eligible page with a relative hyperlink to the target page. A page
// whose own name contains the basename is skipped so pages do not link
// to themselves, except for the fixed root term.
func rewriteReferences(pages Pages, pattern, basename, link string) {
	// The pattern must sit on a word boundary: preceded by start of
	// text, a space or a newline, and followed by one of ",. $".
	re := regexp.MustCompile(`( |^|\n)` + pattern + `([,. $])`)
	replacement := "${1}[" + basename + "](" + link + ")${2}"

	for _, section := range sortedKeys(pages) {
		for _, name := range sortedKeys(pages[section]) {
			if strings.Contains(name, basename) && basename != selfLinkException {
				continue
			}
			content := pages[section][name]
			if !strings.Contains(content, basename) {
				continue
			}
			pages[section][name] = re.ReplaceAllString(content, replacement)
		}
	}
}
