package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsite/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docsite.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" help:"Build the documentation site from configured repositories"`
	Init  InitCmd  `cmd:"" help:"Initialize a new configuration file"`
	Check CheckCmd `cmd:"" help:"Check build preconditions without building"`
	Watch WatchCmd `cmd:"" help:"Rebuild the site whenever sources change"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// resolveSourceRoot gives the CLI flag precedence over the configured
// repository root.
func resolveSourceRoot(cliSource string, cfg *config.Config) string {
	if cliSource != "" {
		return cliSource
	}
	return cfg.SourceRoot
}

// resolveOutputDir gives the CLI flag precedence over the configured
// output directory.
func resolveOutputDir(cliOutput string, cfg *config.Config) string {
	if cliOutput != "" {
		return cliOutput
	}
	return cfg.Output.Directory
}
