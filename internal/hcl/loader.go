package hcl

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/framegen/internal/config"
	"github.com/specialistvlad/framegen/internal/ctxlog"
	"github.com/specialistvlad/framegen/internal/schema"
)

// ErrNoProject is returned when a file has no project block.
var ErrNoProject = errors.New("no project block")

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL specification loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load reads and translates the HCL specification at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Project, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read specification: %w", err)
	}
	return l.Parse(ctx, path, src)
}

// Parse translates HCL source. filename is only used in diagnostics.
func (l *Loader) Parse(ctx context.Context, filename string, src []byte) (*config.Project, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "file", filename)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root schema.File
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	if root.Project == nil {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoProject)
	}

	project, err := l.translateFile(ctx, &root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	logger.Debug("HCL loading complete.", "project", project.Name, "targets", len(project.Targets))
	return project, nil
}
