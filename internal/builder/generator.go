package builder

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/specialistvlad/framegen/internal/config"
	"github.com/specialistvlad/framegen/internal/ctxlog"
	"github.com/specialistvlad/framegen/internal/fileset"
	"github.com/specialistvlad/framegen/internal/fsutil"
	"github.com/specialistvlad/framegen/internal/project"
	"github.com/specialistvlad/framegen/internal/scheme"
	"github.com/specialistvlad/framegen/internal/scripts"
	"golang.org/x/sync/errgroup"
)

// Options controls a generation run.
type Options struct {
	// Root is the project root on disk. Patterns are relative to it and the
	// copy-frameworks template is copied below it.
	Root string
	// FS is the filesystem globs are expanded against. Defaults to
	// os.DirFS(Root). Patterns that leave Root are expanded against the
	// operating system filesystem instead.
	FS fs.FS
	// Workers bounds concurrent file expansion. Zero means GOMAXPROCS.
	Workers int
	// StrictOrder turns out-of-order dependencies into an error.
	StrictOrder bool
}

// Result summarises a generation run.
type Result struct {
	Targets []*TargetResult
	Schemes []*project.Scheme
	// Issues lists the out-of-order dependencies found before building.
	Issues []OrderIssue
}

// ThirdParty returns the third-party dependencies per target name.
func (r *Result) ThirdParty() map[string][]string {
	out := make(map[string][]string, len(r.Targets))
	for _, t := range r.Targets {
		if len(t.ThirdParty) > 0 {
			out[t.Target.Name] = t.ThirdParty
		}
	}
	return out
}

// Generator builds every target of a specification into a project model.
type Generator struct {
	model project.Model
	opts  Options
}

// NewGenerator creates a generator writing into model.
func NewGenerator(model project.Model, opts Options) *Generator {
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.FS == nil {
		opts.FS = os.DirFS(opts.Root)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	return &Generator{model: model, opts: opts}
}

// Generate runs the order check, file expansion, target construction and
// scheme configuration phases for p. p must already be validated.
func (g *Generator) Generate(ctx context.Context, p *config.Project) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting generation.", "project", p.Name, "targets", len(p.Targets))

	// Phase 1: Order check
	issues := CheckOrder(p)
	if len(issues) > 0 {
		if g.opts.StrictOrder {
			return nil, &OrderError{Issues: issues}
		}
		for _, i := range issues {
			logger.Warn("Dependency is not provided by an earlier target.",
				"target", i.Target, "dependency", i.Dependency, "provider", i.Provider)
		}
	}

	// Phase 2: File expansion
	expansions, err := g.expand(ctx, p.Targets)
	if err != nil {
		return nil, err
	}

	// Phase 3: Target construction
	provisioner := scripts.NewProvisioner(g.model, g.opts.Root, p.ScriptsDirectory)
	tb := NewTargetBuilder(g.model, provisioner)
	res := &Result{Issues: issues}
	for i := range p.Targets {
		t := &p.Targets[i]
		built, err := tb.Build(ctx, t, p.LanguageFor(t), expansions[i])
		if err != nil {
			return nil, err
		}
		res.Targets = append(res.Targets, built)
	}

	// Phase 4: Scheme configuration
	res.Schemes = g.configureSchemes(ctx, p)

	logger.Info("Generation complete.",
		"project", p.Name,
		"targets", len(res.Targets),
		"schemes", len(res.Schemes),
		"products", len(g.model.Products()),
	)
	return res, nil
}

func (g *Generator) expand(ctx context.Context, targets []config.Target) ([]*fileset.Expansion, error) {
	logger := ctxlog.FromContext(ctx)
	expansions := make([]*fileset.Expansion, len(targets))
	finder := fsutil.Finder{FS: g.opts.FS, Root: g.opts.Root}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Workers)
	for i := range targets {
		i := i
		t := &targets[i]
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			exp, err := fileset.ExpandTarget(finder, t.IncludeFiles, t.ExcludeFiles, t.ResourceFiles)
			if err != nil {
				return fmt.Errorf("target %q: %w", t.Name, err)
			}
			expansions[i] = exp
			logger.Debug("Files expanded.", "target", t.Name, "files", exp.Count())
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return expansions, nil
}

// configureSchemes sets up one scheme per non-test target and per test target
// that no other target links through its test target.
func (g *Generator) configureSchemes(ctx context.Context, p *config.Project) []*project.Scheme {
	logger := ctxlog.FromContext(ctx)

	linked := make(map[string]bool)
	for i := range p.Targets {
		if tt := p.Targets[i].TestTarget; tt != nil {
			linked[*tt] = true
		}
	}

	var schemes []*project.Scheme
	for i := range p.Targets {
		t := &p.Targets[i]
		if t.IsTest() && linked[t.Name] {
			continue
		}
		s := g.model.Scheme(t.Name)
		scheme.Configure(s, t)
		schemes = append(schemes, s)
		logger.Debug("Scheme configured.", "scheme", s.Name, "testables", s.Test.Testables)
	}
	return schemes
}
