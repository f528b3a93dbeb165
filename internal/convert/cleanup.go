package convert

import (
	"log/slog"
	"regexp"
	"strings"
)

// Cleanup pass implementations. Each pass takes markdown in, markdown
// out; passes are applied in the order the operator listed them.
var cleanupPasses = map[string]func(string) string{
	"strip-html-comments":   stripHTMLComments,
	"collapse-blank-lines":  collapseBlankLines,
	"strip-metacpan-footer": stripMetacpanFooter,
}

// KnownCleanupOptions returns the names Cleanup understands, for
// configuration validation and help output.
func KnownCleanupOptions() []string {
	names := make([]string, 0, len(cleanupPasses))
	for name := range cleanupPasses {
		names = append(names, name)
	}
	return names
}

// Cleanup applies the named cleanup options to generated markdown.
// Unknown option names are logged and skipped rather than failing the
// build; the content passes through unchanged for them.
func Cleanup(content string, options []string) string {
	for _, option := range options {
		pass, ok := cleanupPasses[option]
		if !ok {
			slog.Warn("Unknown cleanup option, skipping", slog.String("option", option))
			continue
		}
		content = pass(content)
	}
	return content
}

var htmlCommentRe = regexp.MustCompile(`(?s)<!--.*?-->`)

func stripHTMLComments(content string) string {
	return htmlCommentRe.ReplaceAllString(content, "")
}

var blankRunRe = regexp.MustCompile(`\n{3,}`)

func collapseBlankLines(content string) string {
	return blankRunRe.ReplaceAllString(content, "\n\n")
}

// stripMetacpanFooter drops the boilerplate lines pod2markdown leaves
// at the end of converted pod pointing readers back at CPAN.
func stripMetacpanFooter(content string) string {
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.Contains(line, "metacpan.org") && strings.HasPrefix(strings.TrimSpace(line), "[Source]") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
