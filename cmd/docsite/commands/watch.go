package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"git.home.luguber.info/inful/docsite/internal/builder"
	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/watch"
)

// WatchCmd implements the 'watch' command: rebuild the site whenever
// sources under the repository root change. The output directory is
// owned by the watcher and cleared before every rebuild, so each run
// still starts from a clean slate.
type WatchCmd struct {
	Source string `short:"s" help:"Repository root containing one checkout per configured repository"`
	Output string `short:"o" help:"Output directory for the generated site"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sourceRoot := resolveSourceRoot(w.Source, cfg)
	outputDir := resolveOutputDir(w.Output, cfg)

	rebuild := func(ctx context.Context) error {
		if err := clearDir(outputDir); err != nil {
			return err
		}
		opts := builder.Options{
			SourceRoot:       sourceRoot,
			OutputDir:        outputDir,
			RunExternalBuild: cfg.Build.RunExternalBuild,
		}
		_, err := builder.New(cfg, opts).Run(ctx)
		return err
	}

	watcher, err := watch.New(sourceRoot, rebuild)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watcher.Run(ctx)
}

// clearDir empties dir, creating it if absent.
func clearDir(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read output directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("clear output directory %s: %w", dir, err)
		}
	}
	return nil
}
