package builder

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/specialistvlad/framegen/internal/config"
	"github.com/specialistvlad/framegen/internal/ctxlog"
	"github.com/specialistvlad/framegen/internal/inmemoryproject"
	"github.com/specialistvlad/framegen/internal/project"
	"github.com/specialistvlad/framegen/internal/scripts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleFS() fstest.MapFS {
	return fstest.MapFS{
		"Info.plist":                  {},
		"Sources/Core.h":              {},
		"Sources/Core.swift":          {},
		"Sources/Generated/Gen.swift": {},
		"Sources/Model/User.swift":    {},
		"Resources/data.json":         {},
		"Tests/Info.plist":            {},
		"Tests/CoreTests.swift":       {},
	}
}

func sampleProject() *config.Project {
	ios := []config.Platform{{Kind: config.PlatformIOS, MinimumVersion: "12.0"}}
	return &config.Project{
		Name:     "Sample",
		Language: &config.Language{Kind: config.LanguageSwift, Version: "5.0"},
		Targets: []config.Target{
			{
				Name:             "Core",
				Platforms:        ios,
				InfoPlist:        "Info.plist",
				BundleID:         "com.example.core",
				Header:           strPtr("Sources/Core.h"),
				IncludeFiles:     []string{"Sources/**/*.swift"},
				ExcludeFiles:     [][]string{{"Sources/Generated/*.swift"}},
				ResourceFiles:    []string{"Resources/*.json"},
				Dependencies:     []string{"Alamofire"},
				Kind:             project.ProductFramework,
				PreBuildScripts:  []config.Script{{Name: "Lint", Body: "swiftlint"}},
				PostBuildScripts: []config.Script{{Name: "Stamp", Body: "date > stamp"}},
				TestTarget:       strPtr("CoreTests"),
				CodeCoverage:     true,
				LaunchArguments:  []string{"-verbose"},
			},
			{
				Name:         "CoreTests",
				Platforms:    ios,
				InfoPlist:    "Tests/Info.plist",
				BundleID:     "com.example.core.tests",
				Header:       strPtr("Sources/Core.h"),
				IncludeFiles: []string{"Tests/**/*.swift"},
				Dependencies: []string{"Core", "Quick.framework"},
				Kind:         project.ProductUnitTestBundle,
			},
		},
	}
}

func generate(t *testing.T, model project.Model, p *config.Project, opts Options) *Result {
	t.Helper()
	if opts.FS == nil {
		opts.FS = sampleFS()
	}
	if opts.Root == "" {
		opts.Root = t.TempDir()
	}
	res, err := NewGenerator(model, opts).Generate(ctxlog.Discard(context.Background()), p)
	require.NoError(t, err)
	return res
}

func phaseNames(target *project.Target) []string {
	names := make([]string, 0, len(target.Phases))
	for _, p := range target.Phases {
		names = append(names, p.Name)
	}
	return names
}

func filePaths(p *project.BuildPhase) []string {
	var paths []string
	for _, f := range p.Files {
		paths = append(paths, f.Ref.Path)
	}
	return paths
}

func mustPhase(t *testing.T, target *project.Target, kind project.PhaseKind) *project.BuildPhase {
	t.Helper()
	p, ok := target.Phase(kind)
	require.True(t, ok, "target %s has no %s phase", target.Name, kind)
	return p
}

func TestGenerate_PhaseOrder(t *testing.T) {
	model := inmemoryproject.New("Sample")
	res := generate(t, model, sampleProject(), Options{})

	require.Len(t, res.Targets, 2)
	core := res.Targets[0].Target
	assert.Equal(t, []string{"Lint", "Headers", "Sources", "Resources", "Frameworks", "Stamp"}, phaseNames(core))

	tests := res.Targets[1].Target
	assert.Equal(t, []string{"Sources", "Resources", "Frameworks", scripts.CopyFrameworksPhase}, phaseNames(tests))
}

func scriptBodies(target *project.Target) []string {
	var bodies []string
	for _, p := range target.Phases {
		if p.Kind == project.PhaseShellScript {
			bodies = append(bodies, p.ShellScript)
		}
	}
	return bodies
}

func TestGenerate_ScriptsWithSharedNames(t *testing.T) {
	p := sampleProject()
	p.Targets[0].PreBuildScripts = []config.Script{
		{Name: "Run Script", Body: "echo a"},
		{Name: "Run Script", Body: "echo b"},
	}
	p.Targets[0].PostBuildScripts = []config.Script{{Name: "Run Script", Body: "echo c"}}

	model := inmemoryproject.New("Sample")
	root := t.TempDir()
	res := generate(t, model, p, Options{Root: root})
	core := res.Targets[0].Target

	want := []string{"Run Script", "Run Script", "Headers", "Sources", "Resources", "Frameworks", "Run Script"}
	assert.Equal(t, want, phaseNames(core))
	assert.Equal(t, []string{"echo a", "echo b", "echo c"}, scriptBodies(core))

	generate(t, model, p, Options{Root: root})
	assert.Equal(t, want, phaseNames(core), "a second run reuses the same phases")
	assert.Equal(t, []string{"echo a", "echo b", "echo c"}, scriptBodies(core))
}

func TestGenerate_PreAndPostScriptWithSameName(t *testing.T) {
	p := sampleProject()
	p.Targets[0].PreBuildScripts = []config.Script{{Name: "Lint", Body: "pre-lint"}}
	p.Targets[0].PostBuildScripts = []config.Script{{Name: "Lint", Body: "post-lint"}}

	model := inmemoryproject.New("Sample")
	res := generate(t, model, p, Options{})
	core := res.Targets[0].Target

	assert.Equal(t, []string{"Lint", "Headers", "Sources", "Resources", "Frameworks", "Lint"}, phaseNames(core))
	assert.Equal(t, []string{"pre-lint", "post-lint"}, scriptBodies(core))
}

func TestGenerate_FilesAndHeader(t *testing.T) {
	model := inmemoryproject.New("Sample")
	res := generate(t, model, sampleProject(), Options{})
	core := res.Targets[0].Target

	assert.Equal(t, []string{"Sources/Core.swift", "Sources/Model/User.swift"}, filePaths(mustPhase(t, core, project.PhaseSources)))
	assert.Equal(t, []string{"Resources/data.json"}, filePaths(mustPhase(t, core, project.PhaseResources)))

	headers := mustPhase(t, core, project.PhaseHeaders)
	require.Len(t, headers.Files, 1)
	assert.Equal(t, "Sources/Core.h", headers.Files[0].Ref.Path)
	assert.Equal(t, []string{"Public"}, headers.Files[0].Settings["ATTRIBUTES"])

	_, ok := res.Targets[1].Target.Phase(project.PhaseHeaders)
	assert.False(t, ok, "test targets never get a headers phase")
}

func TestGenerate_LinksEarlierProductsOnly(t *testing.T) {
	model := inmemoryproject.New("Sample")
	res := generate(t, model, sampleProject(), Options{})

	core, tests := res.Targets[0], res.Targets[1]
	assert.Empty(t, mustPhase(t, core.Target, project.PhaseFrameworks).Files)
	assert.Equal(t, []string{"Alamofire.framework"}, core.ThirdParty)

	assert.Equal(t, []string{"Core.framework"}, filePaths(mustPhase(t, tests.Target, project.PhaseFrameworks)))
	assert.Equal(t, []string{"Quick.framework"}, tests.ThirdParty)

	assert.Equal(t, map[string][]string{
		"Core":      {"Alamofire.framework"},
		"CoreTests": {"Quick.framework"},
	}, res.ThirdParty())
}

func TestGenerate_CopyFrameworksOnlyForTestTargets(t *testing.T) {
	model := inmemoryproject.New("Sample")
	res := generate(t, model, sampleProject(), Options{})

	_, ok := res.Targets[0].Target.ScriptPhase(scripts.CopyFrameworksPhase)
	assert.False(t, ok)

	phase, ok := res.Targets[1].Target.ScriptPhase(scripts.CopyFrameworksPhase)
	require.True(t, ok)
	assert.Equal(t, scripts.Template(), phase.ShellScript)
	assert.Equal(t, []string{"Quick.framework"}, phase.InputPaths)
}

func TestGenerate_ScriptsDirectory(t *testing.T) {
	root := t.TempDir()
	p := sampleProject()
	p.ScriptsDirectory = strPtr("Scripts")

	model := inmemoryproject.New("Sample")
	res := generate(t, model, p, Options{Root: root})

	phase, ok := res.Targets[1].Target.ScriptPhase(scripts.CopyFrameworksPhase)
	require.True(t, ok)
	assert.Equal(t, ` exec "${SRCROOT}/Scripts/copy-carthage-frameworks.sh"`, phase.ShellScript)

	info, err := os.Stat(filepath.Join(root, "Scripts", scripts.TemplateName))
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o755), info.Mode().Perm())
}

func TestGenerate_SourcesOutsideRoot(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "App")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "Shared"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "Shared", "Log.swift"), nil, 0o644))

	p := sampleProject()
	p.Targets = p.Targets[:1]
	p.Targets[0].IncludeFiles = []string{"../Shared/*.swift"}
	p.Targets[0].ExcludeFiles = nil
	p.Targets[0].ResourceFiles = nil
	p.Targets[0].TestTarget = nil

	model := inmemoryproject.New("Sample")
	res := generate(t, model, p, Options{Root: root, FS: os.DirFS(root)})

	core := res.Targets[0].Target
	assert.Equal(t, []string{"../Shared/Log.swift"}, filePaths(mustPhase(t, core, project.PhaseSources)))
}

func TestGenerate_Settings(t *testing.T) {
	model := inmemoryproject.New("Sample")
	res := generate(t, model, sampleProject(), Options{})
	core := res.Targets[0].Target

	require.NotNil(t, core.ConfigurationList)
	assert.Equal(t, project.FamilyOSX, core.ConfigurationList.Family)
	assert.Equal(t, "swift", core.ConfigurationList.Language)
	for _, c := range core.Configurations() {
		assert.Equal(t, "com.example.core", c.Settings["PRODUCT_BUNDLE_IDENTIFIER"], c.Name)
		assert.Equal(t, "iphoneos iphonesimulator", c.Settings["SUPPORTED_PLATFORMS"], c.Name)
		assert.Equal(t, "12.0", c.Settings["IPHONEOS_DEPLOYMENT_TARGET"], c.Name)
		assert.NotContains(t, c.Settings, "CODE_SIGN_IDENTITY", c.Name)
	}
}

func TestGenerate_Schemes(t *testing.T) {
	model := inmemoryproject.New("Sample")
	res := generate(t, model, sampleProject(), Options{})

	require.Len(t, res.Schemes, 1, "a linked test target gets no scheme of its own")
	s := res.Schemes[0]
	assert.Equal(t, "Core", s.Name)
	assert.Equal(t, []string{"Core"}, s.BuildTargets)
	assert.Equal(t, []string{"CoreTests"}, s.Test.Testables)
	assert.True(t, s.Test.CodeCoverageEnabled)
	assert.Equal(t, []project.CommandLineArgument{{Argument: "-verbose", Enabled: true}}, s.Launch.Arguments)
	assert.Nil(t, s.Launch.Environment)
}

func TestGenerate_UnlinkedTestTargetGetsScheme(t *testing.T) {
	p := sampleProject()
	p.Targets[0].TestTarget = nil

	model := inmemoryproject.New("Sample")
	res := generate(t, model, p, Options{})

	require.Len(t, res.Schemes, 2)
	assert.Equal(t, "CoreTests", res.Schemes[1].Name)
	assert.Equal(t, []string{"CoreTests"}, res.Schemes[1].Test.Testables)
}

func TestGenerate_Idempotent(t *testing.T) {
	model := inmemoryproject.New("Sample")
	root := t.TempDir()
	generate(t, model, sampleProject(), Options{Root: root})

	snapshot := func() map[string][]string {
		out := map[string][]string{}
		for _, target := range model.Targets() {
			out[target.Name] = phaseNames(target)
			for _, p := range target.Phases {
				out[target.Name+"/"+p.Name] = append(filePaths(p), p.InputPaths...)
			}
		}
		return out
	}
	first := snapshot()
	products := len(model.Products())

	generate(t, model, sampleProject(), Options{Root: root})

	assert.Equal(t, first, snapshot())
	assert.Len(t, model.Targets(), 2)
	assert.Len(t, model.Products(), products)
	assert.Len(t, model.Schemes(), 1)
}

func TestGenerate_ProjectLanguageFallback(t *testing.T) {
	p := sampleProject()
	p.Targets[1].Language = &config.Language{Kind: config.LanguageObjC}

	model := inmemoryproject.New("Sample")
	res := generate(t, model, p, Options{})

	assert.Equal(t, "swift", res.Targets[0].Target.ConfigurationList.Language)
	assert.Equal(t, "objc", res.Targets[1].Target.ConfigurationList.Language)
}

func TestGenerate_ForwardDependencyWarnsByDefault(t *testing.T) {
	p := sampleProject()
	p.Targets[0].Dependencies = []string{"CoreTests.xctest", "Core"}

	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))
	model := inmemoryproject.New("Sample")
	res, err := NewGenerator(model, Options{Root: t.TempDir(), FS: sampleFS()}).Generate(ctx, p)
	require.NoError(t, err)

	require.Len(t, res.Issues, 1)
	assert.Equal(t, OrderIssue{Target: "Core", Dependency: "Core", Provider: "Core"}, res.Issues[0])
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Equal(t, []string{"CoreTests.xctest.framework"}, res.Targets[0].ThirdParty)
	assert.Equal(t, []string{"Core.framework"}, filePaths(mustPhase(t, res.Targets[0].Target, project.PhaseFrameworks)))
}

func TestGenerate_ForwardDependencyStrict(t *testing.T) {
	p := sampleProject()
	p.Targets = []config.Target{p.Targets[1], p.Targets[0]}

	model := inmemoryproject.New("Sample")
	_, err := NewGenerator(model, Options{Root: t.TempDir(), FS: sampleFS(), StrictOrder: true}).
		Generate(ctxlog.Discard(context.Background()), p)

	var orderErr *OrderError
	require.ErrorAs(t, err, &orderErr)
	require.Len(t, orderErr.Issues, 1)
	assert.Equal(t, "CoreTests", orderErr.Issues[0].Target)
	assert.Equal(t, "Core", orderErr.Issues[0].Provider)
	assert.Empty(t, model.Targets(), "strict mode fails before touching the model")
}

type brokenFS struct{ fstest.MapFS }

func (b brokenFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return nil, errors.New("disk on fire")
}

func TestGenerate_ExpansionErrorAborts(t *testing.T) {
	model := inmemoryproject.New("Sample")
	_, err := NewGenerator(model, Options{Root: t.TempDir(), FS: brokenFS{sampleFS()}, Workers: 1}).
		Generate(ctxlog.Discard(context.Background()), sampleProject())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
	assert.Empty(t, model.Targets())
}

func TestCheckOrder(t *testing.T) {
	p := &config.Project{Targets: []config.Target{
		{Name: "App", Kind: project.ProductApplication, Dependencies: []string{"Core", "Kit.framework"}},
		{Name: "Core", Kind: project.ProductFramework},
		{Name: "Kit", Kind: project.ProductFramework, Dependencies: []string{"Core", "Alamofire"}},
	}}

	issues := CheckOrder(p)
	assert.Equal(t, []OrderIssue{
		{Target: "App", Dependency: "Core", Provider: "Core"},
		{Target: "App", Dependency: "Kit.framework", Provider: "Kit"},
	}, issues)
	assert.Contains(t, issues[0].String(), "declares later")
}
