package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/toolcheck"
)

// CheckCmd verifies the environment a build would need: configuration,
// source root, and the external binaries.
type CheckCmd struct {
	Source string `short:"s" help:"Repository root containing one checkout per configured repository"`
}

func (c *CheckCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	tools := toolcheck.PathChecker{}
	ok := true

	for _, tool := range []string{cfg.Build.ConverterCommand, cfg.Build.BuildCommand} {
		if tools.CommandAvailable(tool) {
			fmt.Printf("ok: %s found\n", tool)
		} else {
			fmt.Printf("missing: %s not found on PATH\n", tool)
			if tool == cfg.Build.ConverterCommand || cfg.Build.RunExternalBuild {
				ok = false
			}
		}
	}

	sourceRoot := resolveSourceRoot(c.Source, cfg)
	if sourceRoot == "" {
		fmt.Println("missing: no repository root configured")
		ok = false
	} else {
		fmt.Printf("ok: repository root %s\n", sourceRoot)
	}

	if !ok {
		return fmt.Errorf("environment is not ready for a build")
	}
	fmt.Printf("configuration valid: %d repositories\n", len(cfg.Repositories))
	return nil
}
