package hcl

import (
	"context"
	"fmt"

	"github.com/specialistvlad/framegen/internal/config"
	"github.com/specialistvlad/framegen/internal/ctxlog"
	"github.com/specialistvlad/framegen/internal/project"
	"github.com/specialistvlad/framegen/internal/schema"
)

// translateFile converts the HCL-specific schema into the agnostic model.
func (l *Loader) translateFile(ctx context.Context, f *schema.File) (*config.Project, error) {
	p := &config.Project{
		Name:             f.Project.Name,
		Language:         translateLanguage(f.Project.Language),
		ScriptsDirectory: f.Project.ScriptsDirectory,
	}
	for _, t := range f.Targets {
		target, err := l.translateTarget(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", t.Name, err)
		}
		p.Targets = append(p.Targets, *target)
	}
	return p, nil
}

// translateTarget converts one target block. The target type defaults to
// framework.
func (l *Loader) translateTarget(ctx context.Context, s *schema.Target) (*config.Target, error) {
	kind := project.ProductFramework
	if s.Type != nil {
		kind = project.ProductType(*s.Type)
	}

	exclude, err := nestedStringList(s.ExcludeFiles)
	if err != nil {
		return nil, fmt.Errorf("exclude_files: %w", err)
	}
	arguments, _, err := stringList(s.LaunchArguments)
	if err != nil {
		return nil, fmt.Errorf("launch_arguments: %w", err)
	}
	env, _, err := environment(s.EnvironmentVariables)
	if err != nil {
		return nil, fmt.Errorf("environment_variables: %w", err)
	}

	t := &config.Target{
		Name:                 s.Name,
		Language:             translateLanguage(s.Language),
		InfoPlist:            s.InfoPlist,
		BundleID:             s.BundleID,
		Header:               s.Header,
		IncludeFiles:         s.IncludeFiles,
		ExcludeFiles:         exclude,
		ResourceFiles:        s.ResourceFiles,
		Dependencies:         s.Dependencies,
		Kind:                 kind,
		PreBuildScripts:      translateScripts(s.PreBuildScripts),
		PostBuildScripts:     translateScripts(s.PostBuildScripts),
		TestTarget:           s.TestTarget,
		SafeForExtensions:    s.SafeForExtensions,
		CodeCoverage:         s.CodeCoverage,
		LaunchArguments:      arguments,
		EnvironmentVariables: env,
	}
	for _, p := range s.Platforms {
		t.Platforms = append(t.Platforms, config.Platform{
			Kind:           config.PlatformKind(p.Kind),
			MinimumVersion: p.MinimumVersion,
			SearchPaths:    p.SearchPaths,
		})
	}

	ctxlog.FromContext(ctx).Debug("Translated target.",
		"target", t.Name,
		"kind", t.Kind,
		"platforms", len(t.Platforms),
	)
	return t, nil
}

func translateLanguage(s *schema.Language) *config.Language {
	if s == nil {
		return nil
	}
	return &config.Language{Kind: config.LanguageKind(s.Kind), Version: s.Version}
}

func translateScripts(in []*schema.Script) []config.Script {
	if len(in) == 0 {
		return nil
	}
	out := make([]config.Script, 0, len(in))
	for _, s := range in {
		out = append(out, config.Script{Name: s.Name, Body: s.Body, Inputs: s.Inputs})
	}
	return out
}
