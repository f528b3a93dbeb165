// Package builder orchestrates a full documentation build: precondition
// checks, per-repository scanning and conversion, site assembly,
// interlinking, writing, and navigation rendering.
package builder

import (
	"context"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/convert"
	"git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/gitinfo"
	"git.home.luguber.info/inful/docsite/internal/linkcheck"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/site"
	"git.home.luguber.info/inful/docsite/internal/source"
	"git.home.luguber.info/inful/docsite/internal/toolcheck"
)

// Options are the per-run knobs resolved from CLI flags and config.
type Options struct {
	SourceRoot       string // Directory containing one checkout per repository
	OutputDir        string // Must exist and be empty
	RunExternalBuild bool   // Run the repository build tool before scanning
}

// Builder runs one documentation build. It holds no cross-run state;
// every invocation rebuilds the site from scratch.
type Builder struct {
	cfg       *config.Config
	opts      Options
	tools     toolcheck.Checker
	scanner   *source.Scanner
	generator convert.Generator
}

// New creates a builder with the real collaborators wired in.
func New(cfg *config.Config, opts Options) *Builder {
	return &Builder{
		cfg:       cfg,
		opts:      opts,
		tools:     toolcheck.PathChecker{},
		scanner:   source.NewScanner(cfg.Build.BuildCommand),
		generator: convert.NewPodGenerator(cfg.Build.ConverterCommand),
	}
}

// NewWithCollaborators creates a builder with injected collaborators,
// for tests and embedding.
func NewWithCollaborators(cfg *config.Config, opts Options, tools toolcheck.Checker, scanner *source.Scanner, generator convert.Generator) *Builder {
	return &Builder{cfg: cfg, opts: opts, tools: tools, scanner: scanner, generator: generator}
}

// Run executes the whole pipeline and returns the build report.
// Per-page problems (unmatched targets, failed conversions) are logged
// and counted but do not abort the run; precondition, filesystem, and
// template failures do.
func (b *Builder) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		BuildID: uuid.NewString(),
		Started: time.Now(),
	}
	slog.Info("Starting documentation build",
		logfields.BuildID(report.BuildID),
		slog.Int("repositories", len(b.cfg.Repositories)),
		slog.String("output", b.opts.OutputDir))

	if err := b.checkPreconditions(); err != nil {
		return nil, err
	}

	catalog, err := b.buildCatalog(ctx, report)
	if err != nil {
		return nil, err
	}

	pages, pageErrs := site.BuildStructure(catalog, b.mappings())
	for _, perr := range pageErrs {
		slog.Error("Page excluded from site", logfields.Error(perr))
	}
	report.SkippedPages = len(pageErrs)

	slog.Info("Creating interlinks", slog.Int("pages", pages.PageCount()))
	pages = site.Interlink(pages)

	for _, link := range linkcheck.Verify(pages) {
		slog.Warn("Relative link does not resolve",
			logfields.Section(link.Section), logfields.Page(link.Page),
			slog.String("destination", link.Destination))
		report.BrokenLinks++
	}

	toc, err := site.Write(pages, b.opts.OutputDir, b.cfg.Output.DocsSubdir)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal,
			"failed to write site")
	}
	report.Sections = make(map[string]int, len(toc))
	for section, names := range toc {
		report.Sections[section] = len(names)
	}

	if err := site.RenderNav(toc, b.opts.OutputDir, b.cfg.SiteName); err != nil {
		return nil, err
	}

	report.Duration = time.Since(report.Started)
	slog.Info("Build finished",
		logfields.BuildID(report.BuildID),
		slog.Int("pages", report.PagesWritten()),
		slog.Int("skipped", report.SkippedPages),
		slog.Int("broken_links", report.BrokenLinks),
		logfields.DurationMS(float64(report.Duration.Milliseconds())))
	return report, nil
}

// buildCatalog scans and converts every configured repository into the
// page catalog consumed by the site core.
func (b *Builder) buildCatalog(ctx context.Context, report *Report) (site.Catalog, error) {
	catalog := make(site.Catalog, len(b.cfg.Repositories))

	repos := append([]config.Repository(nil), b.cfg.Repositories...)
	sort.Slice(repos, func(i, j int) bool { return repos[i].Name < repos[j].Name })

	for _, repo := range repos {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, errors.CategoryBuild, errors.SeverityFatal, "build canceled")
		}

		repoPath := filepath.Join(b.opts.SourceRoot, repo.Name)
		if repo.Subdir != "" {
			repoPath = filepath.Join(repoPath, repo.Subdir)
		}
		slog.Info("Building documentation for repository",
			logfields.Repository(repo.Name), logfields.Path(repoPath))

		repoReport := RepositoryReport{Name: repo.Name}
		if info, err := gitinfo.Resolve(repoPath); err == nil {
			repoReport.Commit = info.Commit
			repoReport.Branch = info.Branch
		} else {
			slog.Debug("No git metadata for repository",
				logfields.Repository(repo.Name), logfields.Error(err))
		}

		sources, err := b.scanner.Scan(ctx, repoPath, b.opts.RunExternalBuild)
		if err != nil {
			slog.Error("Failed to scan repository, skipping",
				logfields.Repository(repo.Name), logfields.Error(err))
			report.Repositories = append(report.Repositories, repoReport)
			continue
		}
		repoReport.Sources = len(sources)

		pages := make(map[string]string, len(sources))
		for _, src := range sources {
			markdown, err := b.generator.Generate(ctx, src)
			if err != nil {
				slog.Error("Failed to convert source file",
					logfields.Repository(repo.Name), logfields.Source(src), logfields.Error(err))
				continue
			}
			pages[src] = convert.Cleanup(markdown, b.cfg.Cleanup)
		}
		repoReport.Pages = len(pages)
		catalog[repo.Name] = pages
		report.Repositories = append(report.Repositories, repoReport)
	}

	return catalog, nil
}

// mappings projects the repository configuration into the site core's
// view of it.
func (b *Builder) mappings() map[string]site.Mapping {
	m := make(map[string]site.Mapping, len(b.cfg.Repositories))
	for _, repo := range b.cfg.Repositories {
		m[repo.Name] = site.Mapping{Section: repo.SiteSection, Targets: repo.Targets}
	}
	return m
}
