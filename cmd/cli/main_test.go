package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/framegen/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestRun_InitAndGenerate(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	spec := filepath.Join(dir, "FrameworkSpec.hcl")
	out := &bytes.Buffer{}

	// --- Act ---
	require.NoError(t, run(out, []string{"init", spec}))
	require.NoError(t, run(out, []string{"generate", spec, "--print-tree"}))

	// --- Assert ---
	_, err := os.Stat(filepath.Join(dir, "MyFramework.xcodeproj", "project.yaml"))
	require.NoError(t, err, "the project description should be written next to the specification")
	require.Contains(t, out.String(), "MyFramework.framework")
}

func TestRun_LoadError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An HCL file with a syntax error fails while loading the specification.
	invalidHCL := `
		project "Sample" {
		  language "swift" {
		// Missing closing braces here
	`
	filePath := filepath.Join(t.TempDir(), "FrameworkSpec.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0o600))

	// --- Act ---
	runErr := run(&bytes.Buffer{}, []string{filePath})

	// --- Assert ---
	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "failed to load specification")
	require.Contains(t, runErr.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Act ---
	err := run(&bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	// --- Assert ---
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "--this-is-not-a-valid-flag")
}
