package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/framegen/internal/builder"
	"github.com/specialistvlad/framegen/internal/config"
	"github.com/specialistvlad/framegen/internal/inmemoryproject"
	"github.com/specialistvlad/framegen/internal/projectfile"
)

// generate loads and validates the specification, builds the project model
// and writes its description.
func (a *App) generate(ctx context.Context) error {
	cfg := a.config

	loader, err := a.loaderFor(cfg.SpecPath)
	if err != nil {
		return err
	}
	spec, err := loader.Load(ctx, cfg.SpecPath)
	if err != nil {
		return fmt.Errorf("failed to load specification: %w", err)
	}
	a.logger.Debug("Specification loaded.", "project", spec.Name, "targets", len(spec.Targets))

	if err := config.Validate(spec); err != nil {
		return err
	}
	a.logger.Debug("Specification validated.")

	root := cfg.Root
	if root == "" {
		root = filepath.Dir(cfg.SpecPath)
	}

	model := inmemoryproject.New(spec.Name)
	gen := builder.NewGenerator(model, builder.Options{
		Root:        root,
		Workers:     cfg.WorkerCount,
		StrictOrder: cfg.StrictOrder,
	})
	res, err := gen.Generate(ctx, spec)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	for target, names := range res.ThirdParty() {
		a.logger.Debug("Third-party dependencies.", "target", target, "names", names)
	}

	dest := cfg.OutputPath
	if dest == "" {
		dest = projectfile.DefaultPath(root, spec.Name)
	}
	if err := projectfile.Write(ctx, dest, model); err != nil {
		return err
	}

	if cfg.PrintTree {
		if err := projectfile.RenderTree(a.outW, model); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
