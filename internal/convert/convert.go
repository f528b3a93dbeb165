// Package convert turns discovered source files into markdown via the
// external pod2markdown helper, and applies operator-selected cleanup
// passes before the content enters the site core.
package convert

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Generator converts a single source file into markdown text.
type Generator interface {
	Generate(ctx context.Context, sourcePath string) (string, error)
}

// PodGenerator shells out to the pod2markdown helper for perl pod
// sources, and emits schema files as fenced code blocks.
type PodGenerator struct {
	command string
}

// NewPodGenerator creates a generator using the given converter binary
// (typically "pod2markdown").
func NewPodGenerator(command string) *PodGenerator {
	return &PodGenerator{command: command}
}

// Generate converts sourcePath into markdown. Pod-style sources go
// through the converter binary; pan schema files are wrapped as a
// titled code block since they have no pod to extract.
func (g *PodGenerator) Generate(ctx context.Context, sourcePath string) (string, error) {
	switch strings.ToLower(filepath.Ext(sourcePath)) {
	case ".pod", ".pm", ".pl":
		return g.runConverter(ctx, sourcePath)
	case ".pan":
		return panToMarkdown(sourcePath)
	default:
		return "", fmt.Errorf("no converter for %s", sourcePath)
	}
}

func (g *PodGenerator) runConverter(ctx context.Context, sourcePath string) (string, error) {
	cmd := exec.CommandContext(ctx, g.command, sourcePath)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("%s %s: %w: %s", g.command, sourcePath, err,
				strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("%s %s: %w", g.command, sourcePath, err)
	}
	return string(out), nil
}

func panToMarkdown(sourcePath string) (string, error) {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return "", fmt.Errorf("read pan source %s: %w", sourcePath, err)
	}
	name := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	return fmt.Sprintf("# %s\n\n```pan\n%s\n```\n", name, strings.TrimRight(string(data), "\n")), nil
}
