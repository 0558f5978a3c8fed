package builder

import (
	"context"
	"fmt"

	"github.com/specialistvlad/framegen/internal/config"
	"github.com/specialistvlad/framegen/internal/ctxlog"
	"github.com/specialistvlad/framegen/internal/fileset"
	"github.com/specialistvlad/framegen/internal/linker"
	"github.com/specialistvlad/framegen/internal/project"
	"github.com/specialistvlad/framegen/internal/scripts"
	"github.com/specialistvlad/framegen/internal/settings"
)

// publicHeaderSettings marks a header build file as public.
var publicHeaderSettings = map[string]any{"ATTRIBUTES": []string{"Public"}}

// TargetResult describes what building one target produced.
type TargetResult struct {
	Target     *project.Target
	ThirdParty []string
	Sources    []fileset.ResolvedFile
	Resources  []fileset.ResolvedFile
}

// TargetBuilder turns one target specification into a native target.
type TargetBuilder struct {
	model       project.Model
	files       *fileset.Resolver
	provisioner *scripts.Provisioner
}

// NewTargetBuilder creates a target builder writing into model.
func NewTargetBuilder(model project.Model, provisioner *scripts.Provisioner) *TargetBuilder {
	return &TargetBuilder{
		model:       model,
		files:       fileset.NewResolver(model),
		provisioner: provisioner,
	}
}

// Build runs the fixed per-target sequence:
//
//  1. create the native target shell and its configuration list
//  2. attach pre-build scripts
//  3. attach supporting files (info plist; public header for non-test targets)
//  4. attach resolved source files
//  5. apply composed settings to every configuration
//  6. create and register the product reference
//  7. append the resources and frameworks phases
//  8. attach post-build scripts
//  9. link dependencies
//  10. attach resolved resource files
//  11. provision the copy-frameworks phase for test targets with third-party dependencies
//
// The language must already be resolved against the project default.
func (b *TargetBuilder) Build(ctx context.Context, t *config.Target, language *config.Language, files *fileset.Expansion) (*TargetResult, error) {
	logger := ctxlog.FromContext(ctx).With("target", t.Name)
	logger.Debug("Building target.", "kind", t.Kind)

	if language == nil {
		return nil, fmt.Errorf("target %q has no language", t.Name)
	}
	if files == nil {
		files = &fileset.Expansion{}
	}

	target := b.model.NewNativeTarget(t.Name)
	target.ProductName = t.Name
	target.ProductType = t.Kind
	if target.ConfigurationList == nil {
		target.ConfigurationList = b.model.NewConfigurationList(project.FamilyOSX, string(language.Kind), t.Kind)
	}

	b.provisioner.AddScripts(ctx, target, scripts.StagePreBuild, t.PreBuildScripts)

	b.addSupportingFiles(ctx, target, t)

	b.model.BuildPhase(target, project.PhaseSources)
	sources := b.files.Attach(ctx, target, project.PhaseSources, files.Sources)

	settings.Apply(target.ConfigurationList, t, language)
	logger.Debug("Build settings applied.", "configurations", len(target.Configurations()))

	product := b.model.NewProduct(target)
	logger.Debug("Product registered.", "product", product.Path)

	b.model.BuildPhase(target, project.PhaseResources)
	b.model.BuildPhase(target, project.PhaseFrameworks)

	b.provisioner.AddScripts(ctx, target, scripts.StagePostBuild, t.PostBuildScripts)

	thirdParty := linker.Link(ctx, b.model, target, t.Dependencies)

	resources := b.files.Attach(ctx, target, project.PhaseResources, files.Resources)

	if target.IsTest() && len(thirdParty) > 0 {
		if _, err := b.provisioner.ProvisionCopyFrameworks(ctx, target, thirdParty); err != nil {
			return nil, fmt.Errorf("target %q: %w", t.Name, err)
		}
	}

	logger.Debug("Target built.",
		"phases", len(target.Phases),
		"sources", len(sources),
		"resources", len(resources),
		"third_party", len(thirdParty),
	)
	return &TargetResult{
		Target:     target,
		ThirdParty: thirdParty,
		Sources:    sources,
		Resources:  resources,
	}, nil
}

func (b *TargetBuilder) addSupportingFiles(ctx context.Context, target *project.Target, t *config.Target) {
	logger := ctxlog.FromContext(ctx).With("target", t.Name)

	if _, created := b.files.Reference(t.InfoPlist); created {
		logger.Debug("Info plist referenced.", "path", t.InfoPlist)
	}

	if target.IsTest() || t.Header == nil {
		return
	}
	header, _ := b.files.Reference(*t.Header)
	if b.model.AddFile(b.model.BuildPhase(target, project.PhaseHeaders), header, publicHeaderSettings) {
		logger.Debug("Public header attached.", "path", *t.Header)
	}
}
