package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/framegen/internal/app"
	"github.com/specialistvlad/framegen/internal/hcl"
	"github.com/specialistvlad/framegen/internal/projectfile"
	"github.com/specialistvlad/framegen/internal/yamlspec"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Root      string
	LogOutput string
	Err       error
	// Raw is the written project description; Description is Raw decoded.
	// Both are empty when the run failed.
	Raw         []byte
	Description *projectfile.Description
}

// Loaders returns the loaders the command-line entrypoint registers.
func Loaders() app.Loaders {
	yamlLoader := yamlspec.NewLoader()
	return app.Loaders{
		".hcl":  hcl.NewLoader(),
		".yaml": yamlLoader,
		".yml":  yamlLoader,
	}
}

// WriteFiles writes files, keyed by slash-separated relative path, below
// root.
func WriteFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// RunIntegrationTest provides a standardized harness for running integration
// tests using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunIntegrationTestIn(context.Background(), t, t.TempDir(), files, cfg)
}

// RunIntegrationTestIn writes files below root and runs generate against
// them. cfg.SpecPath and cfg.OutputPath are relative to root; SpecPath
// defaults to FrameworkSpec.hcl and OutputPath to "project.yaml".
func RunIntegrationTestIn(ctx context.Context, t *testing.T, root string, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	WriteFiles(t, root, files)

	if cfg.Command == "" {
		cfg.Command = app.CommandGenerate
	}
	if cfg.SpecPath == "" {
		cfg.SpecPath = app.DefaultSpecPath
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "project.yaml"
	}
	cfg.SpecPath = filepath.Join(root, cfg.SpecPath)
	cfg.OutputPath = filepath.Join(root, cfg.OutputPath)

	testApp, logs := app.SetupAppTest(t, &cfg, Loaders())
	result := &HarnessResult{Root: root, Err: testApp.Run(ctx)}
	result.LogOutput = logs.String()
	if result.Err != nil {
		return result
	}

	raw, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err, "the run succeeded but wrote no description")
	result.Raw = raw

	var d projectfile.Description
	require.NoError(t, yaml.Unmarshal(raw, &d))
	result.Description = &d
	return result
}
