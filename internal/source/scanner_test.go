package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, root string, parts ...string) string {
	t.Helper()
	path := filepath.Join(root, filepath.Join(parts...))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	return path
}

func TestScanCollectsConvertibleSources(t *testing.T) {
	root := t.TempDir()
	pod := touch(t, root, "doc", "pod", "NCM", "Component", "icinga.pod")
	pan := touch(t, root, "pan", "schema.pan")
	pm := touch(t, root, "lib", "Module.pm")
	touch(t, root, "README.txt")
	touch(t, root, "src", "main.c")

	files, err := NewScanner("mvn").Scan(context.Background(), root, false)
	require.NoError(t, err)

	// Sorted output, convertible extensions only.
	assert.Equal(t, []string{pod, pm, pan}, files)
}

func TestScanSkipsVCSDirectories(t *testing.T) {
	root := t.TempDir()
	touch(t, root, ".git", "hooks", "sample.pl")
	kept := touch(t, root, "doc", "page.pod")

	files, err := NewScanner("mvn").Scan(context.Background(), root, false)
	require.NoError(t, err)
	assert.Equal(t, []string{kept}, files)
}

func TestScanNonexistentPath(t *testing.T) {
	_, err := NewScanner("mvn").Scan(context.Background(), filepath.Join(t.TempDir(), "nope"), false)
	require.Error(t, err)
}

func TestScanExternalBuildFailure(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "doc", "page.pod")

	// A build command that cannot exist makes the scan fail up front.
	_, err := NewScanner("definitely-not-a-real-build-tool-1234").Scan(context.Background(), root, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "external build")
}
