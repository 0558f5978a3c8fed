package fileset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/specialistvlad/framegen/internal/ctxlog"
	"github.com/specialistvlad/framegen/internal/fsutil"
	"github.com/specialistvlad/framegen/internal/inmemoryproject"
	"github.com/specialistvlad/framegen/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sourcesFS() fsutil.Finder {
	return fsutil.Finder{FS: fstest.MapFS{
		"Sources/Bar.swift":           {},
		"Sources/Generated/Foo.swift": {},
		"Sources/Generated/Qux.swift": {},
		"Sources/Model/User.swift":    {},
		"Resources/data.json":         {},
		"Resources/Generated.json":    {},
	}}
}

func phasePaths(p *project.BuildPhase) []string {
	var paths []string
	for _, f := range p.Files {
		paths = append(paths, f.Ref.Path)
	}
	return paths
}

func TestExpandSources_ExclusionPrecedence(t *testing.T) {
	sources, err := ExpandSources(sourcesFS(),
		[]string{"Sources/**/*.swift"},
		[][]string{{"Sources/Generated/*.swift"}},
	)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Sources/Bar.swift", "Sources/Model/User.swift"}}, sources)
}

func TestExpandSources_ExclusionIsUnionOfSublists(t *testing.T) {
	sources, err := ExpandSources(sourcesFS(),
		[]string{"Sources/**/*.swift"},
		[][]string{{"Sources/Generated/Foo.swift"}, {"Sources/Model/*.swift", "Sources/Generated/Qux.swift"}},
	)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Sources/Bar.swift"}}, sources)
}

func TestExpandSources_KeepsGroupingAndDuplicates(t *testing.T) {
	sources, err := ExpandSources(sourcesFS(),
		[]string{"Sources/*.swift", "Sources/**/*.swift"},
		nil,
	)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, []string{"Sources/Bar.swift"}, sources[0])
	assert.Contains(t, sources[1], "Sources/Bar.swift")
}

func TestExpandSources_InvalidExclude(t *testing.T) {
	_, err := ExpandSources(sourcesFS(), []string{"Sources/*.swift"}, [][]string{{"Sources/[x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exclude pattern")
}

func TestExpandSources_OutsideRootWithExclusion(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "App")
	shared := filepath.Join(base, "Shared")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(shared, "Generated"), 0o755))
	for _, name := range []string{"Log.swift", "Generated/Gen.swift"} {
		require.NoError(t, os.WriteFile(filepath.Join(shared, filepath.FromSlash(name)), nil, 0o644))
	}

	sources, err := ExpandSources(fsutil.NewFinder(root),
		[]string{"../Shared/**/*.swift"},
		[][]string{{"../Shared/Generated/*.swift"}},
	)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"../Shared/Log.swift"}}, sources)
}

func TestExpandResources_NoExclusionAndNil(t *testing.T) {
	res, err := ExpandResources(sourcesFS(), nil)
	require.NoError(t, err)
	assert.Nil(t, res)

	res, err = ExpandResources(sourcesFS(), []string{"Resources/*.json"})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Resources/Generated.json", "Resources/data.json"}}, res)
}

func TestAttach_FilesIntoNestedGroupsAndDeduplicates(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	model := inmemoryproject.New("Sample")
	target := model.NewNativeTarget("Core")
	r := NewResolver(model)

	files := [][]string{
		{"Sources/Bar.swift", "Sources/Model/User.swift"},
		{"Sources/Bar.swift"},
	}
	added := r.Attach(ctx, target, project.PhaseSources, files)
	assert.Equal(t, []ResolvedFile{
		{Path: "Sources/Bar.swift", Group: "Sources"},
		{Path: "Sources/Model/User.swift", Group: "Sources/Model"},
	}, added)

	phase, ok := target.Phase(project.PhaseSources)
	require.True(t, ok)
	assert.Equal(t, []string{"Sources/Bar.swift", "Sources/Model/User.swift"}, phasePaths(phase))

	sourcesGroup := model.Group("Sources")
	require.Len(t, sourcesGroup.Files, 1)
	require.Len(t, sourcesGroup.Children, 1)
	assert.Equal(t, "Model", sourcesGroup.Children[0].Name)

	// A second pass over the same files is a no-op.
	assert.Empty(t, r.Attach(ctx, target, project.PhaseSources, files))
	assert.Len(t, phase.Files, 2)
	assert.Len(t, sourcesGroup.Files, 1)
}

func TestReference_GetOrCreate(t *testing.T) {
	model := inmemoryproject.New("Sample")
	r := NewResolver(model)

	first, created := r.Reference("Core/Info.plist")
	require.True(t, created)
	second, created := r.Reference("Core/Info.plist")
	assert.False(t, created)
	assert.Same(t, first, second)
}
