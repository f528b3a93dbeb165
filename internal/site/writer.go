package site

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/docsite/internal/util/sets"
)

// Write persists the page set below root/docsSubdir, one directory per
// section, and returns the derived table of contents. Existing files
// are overwritten; there is no rollback on partial failure, a rerun
// from a clean output directory is the recovery path.
func Write(pages Pages, root, docsSubdir string) (TableOfContents, error) {
	toc := make(TableOfContents, len(pages))

	for _, section := range sortedKeys(pages) {
		dir := filepath.Join(root, docsSubdir, section)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create section directory %s: %w", dir, err)
		}

		names := sets.New[string]()
		for name, content := range pages[section] {
			if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
				return nil, fmt.Errorf("write page %s/%s: %w", section, name, err)
			}
			names.Add(name)
		}

		toc[section] = sortPageNames(names.Values())
	}

	return toc, nil
}

// sortPageNames orders page names ignoring case, so the table of
// contents is stable regardless of input insertion order.
func sortPageNames(names []string) []string {
	collate.New(language.Und, collate.IgnoreCase).SortStrings(names)
	return names
}
