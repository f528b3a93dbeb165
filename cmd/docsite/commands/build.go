package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/docsite/internal/builder"
	"git.home.luguber.info/inful/docsite/internal/config"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Source   string `short:"s" help:"Repository root containing one checkout per configured repository"`
	Output   string `short:"o" help:"Output directory for the generated site (must exist and be empty)"`
	RunBuild bool   `name:"run-build" help:"Run the external repository build tool before scanning sources"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	opts := builder.Options{
		SourceRoot:       resolveSourceRoot(b.Source, cfg),
		OutputDir:        resolveOutputDir(b.Output, cfg),
		RunExternalBuild: b.RunBuild || cfg.Build.RunExternalBuild,
	}

	report, err := builder.New(cfg, opts).Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Built %d pages in %d sections (%s)\n",
		report.PagesWritten(), len(report.Sections), report.Duration.Round(time.Millisecond))
	for _, repo := range report.Repositories {
		slog.Info("Repository summary",
			slog.String("repository", repo.Name),
			slog.String("commit", repo.Commit),
			slog.Int("sources", repo.Sources),
			slog.Int("pages", repo.Pages))
	}
	return nil
}
