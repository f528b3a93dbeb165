package builder

import "time"

// Report summarizes one build run.
type Report struct {
	BuildID      string             // Run identifier, one per invocation
	Started      time.Time          // When the run began
	Duration     time.Duration      // Total wall time
	Repositories []RepositoryReport // Per-repository outcome, in build order
	Sections     map[string]int     // Pages written per site section
	SkippedPages int                // Pages excluded for unmatched target markers
	BrokenLinks  int                // Relative links that do not resolve after interlinking
}

// RepositoryReport records what one repository contributed.
type RepositoryReport struct {
	Name    string
	Commit  string // Abbreviated HEAD commit, empty if not a git checkout
	Branch  string
	Sources int // Convertible source files found
	Pages   int // Markdown pages generated
}

// PagesWritten returns the total page count across sections.
func (r *Report) PagesWritten() int {
	n := 0
	for _, count := range r.Sections {
		n += count
	}
	return n
}
