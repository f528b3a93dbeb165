package builder

import (
	"os"

	"git.home.luguber.info/inful/docsite/internal/errors"
)

// checkPreconditions verifies the environment before any page is
// processed: input and output locations, and the external binaries the
// run will need. Any failure aborts the whole run up front, so a
// failed build never leaves partial output behind.
func (b *Builder) checkPreconditions() error {
	if b.opts.SourceRoot == "" {
		return errors.New(errors.CategoryPrecondition, errors.SeverityFatal,
			"repository root not specified")
	}
	if b.opts.OutputDir == "" {
		return errors.New(errors.CategoryPrecondition, errors.SeverityFatal,
			"output location not specified")
	}

	if err := requireDir(b.opts.SourceRoot, "repository root"); err != nil {
		return err
	}
	if err := requireDir(b.opts.OutputDir, "output location"); err != nil {
		return err
	}

	entries, err := os.ReadDir(b.opts.OutputDir)
	if err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal,
			"failed to read output location").WithContext("path", b.opts.OutputDir)
	}
	if len(entries) != 0 {
		return errors.Newf(errors.CategoryPrecondition, errors.SeverityFatal,
			"output location %s is not empty", b.opts.OutputDir)
	}

	if b.opts.RunExternalBuild && !b.tools.CommandAvailable(b.cfg.Build.BuildCommand) {
		return errors.Newf(errors.CategoryTool, errors.SeverityFatal,
			"required build tool %s is not available on this system", b.cfg.Build.BuildCommand)
	}
	if !b.tools.CommandAvailable(b.cfg.Build.ConverterCommand) {
		return errors.Newf(errors.CategoryTool, errors.SeverityFatal,
			"required converter %s is not available on this system", b.cfg.Build.ConverterCommand)
	}

	return nil
}

func requireDir(path, what string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Newf(errors.CategoryPrecondition, errors.SeverityFatal,
			"%s %s does not exist", what, path)
	}
	if !info.IsDir() {
		return errors.Newf(errors.CategoryPrecondition, errors.SeverityFatal,
			"%s %s is not a directory", what, path)
	}
	return nil
}
