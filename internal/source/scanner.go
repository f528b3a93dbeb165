// Package source discovers convertible documentation source files in a
// repository checkout, optionally running the repository's external
// build first so generated sources exist before scanning.
package source

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// convertibleExtensions are the source file types the markdown
// generator knows how to handle.
var convertibleExtensions = map[string]struct{}{
	".pod": {},
	".pm":  {},
	".pl":  {},
	".pan": {},
}

// skipDirs are directory names never descended into while scanning.
var skipDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	".svn":         {},
}

// Scanner collects convertible source files from repository checkouts.
type Scanner struct {
	buildCommand string
	buildArgs    []string
}

// NewScanner creates a scanner; buildCommand is the external build tool
// invoked when a repository build is requested (typically "mvn").
func NewScanner(buildCommand string) *Scanner {
	return &Scanner{
		buildCommand: buildCommand,
		buildArgs:    []string{"package", "-q"},
	}
}

// Scan returns the sorted convertible source files below repoPath.
// When runBuild is set, the external build tool is executed in the
// repository first so build-generated sources are present.
func (s *Scanner) Scan(ctx context.Context, repoPath string, runBuild bool) ([]string, error) {
	if runBuild {
		if err := s.runExternalBuild(ctx, repoPath); err != nil {
			return nil, err
		}
	}

	var files []string
	err := filepath.WalkDir(repoPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := convertibleExtensions[ext]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan repository %s: %w", repoPath, err)
	}

	sort.Strings(files)
	return files, nil
}

func (s *Scanner) runExternalBuild(ctx context.Context, repoPath string) error {
	slog.Info("Running external repository build",
		logfields.Command(s.buildCommand), logfields.Path(repoPath))

	cmd := exec.CommandContext(ctx, s.buildCommand, s.buildArgs...)
	cmd.Dir = repoPath
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("external build %s in %s: %w: %s",
			s.buildCommand, repoPath, err, strings.TrimSpace(string(out)))
	}
	return nil
}
