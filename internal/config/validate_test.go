package config

import (
	"testing"

	"github.com/specialistvlad/framegen/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTarget(name string) Target {
	return Target{
		Name:      name,
		Platforms: []Platform{{Kind: PlatformIOS, MinimumVersion: "11.0"}},
		InfoPlist: name + "/Info.plist",
		BundleID:  "com.example." + name,
		Kind:      project.ProductFramework,
	}
}

func validProject() *Project {
	return &Project{
		Name:     "Sample",
		Language: &Language{Kind: LanguageSwift, Version: "5.0"},
		Targets:  []Target{validTarget("Core"), validTarget("Utils")},
	}
}

func TestValidate_Valid(t *testing.T) {
	require.NoError(t, Validate(validProject()))
}

func TestValidate_DuplicatePlatformKind(t *testing.T) {
	p := validProject()
	p.Targets[0].Platforms = append(p.Targets[0].Platforms, Platform{Kind: PlatformIOS, MinimumVersion: "12.0"})

	err := Validate(p)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Problems, 1)
	assert.Contains(t, vErr.Problems[0], "Platforms")
	assert.Contains(t, vErr.Problems[0], "kind")
}

func TestValidate_DuplicateTargetName(t *testing.T) {
	p := validProject()
	p.Targets[1].Name = "Core"

	err := Validate(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Targets must not repeat the same name")
}

func TestValidate_UnknownEnums(t *testing.T) {
	p := validProject()
	p.Targets[0].Kind = "plugin"
	p.Targets[1].Platforms[0].Kind = "visionos"

	var vErr *ValidationError
	require.ErrorAs(t, Validate(p), &vErr)
	require.Len(t, vErr.Problems, 2)
	assert.Contains(t, vErr.Problems[0], `unknown target type "plugin"`)
	assert.Contains(t, vErr.Problems[1], "must be one of [macos ios watchos tvos]")
}

func TestValidate_MissingLanguage(t *testing.T) {
	p := validProject()
	p.Language = nil
	p.Targets[0].Language = &Language{Kind: LanguageObjC}

	var vErr *ValidationError
	require.ErrorAs(t, Validate(p), &vErr)
	require.Len(t, vErr.Problems, 1)
	assert.Equal(t, `target "Utils": no language given and the project has no default language`, vErr.Problems[0])
}

func TestValidate_RequiredFields(t *testing.T) {
	p := validProject()
	p.Targets[0].InfoPlist = ""
	p.Targets[0].Platforms = nil

	var vErr *ValidationError
	require.ErrorAs(t, Validate(p), &vErr)
	assert.Contains(t, vErr.Problems, "Targets[0].Platforms is required")
	assert.Contains(t, vErr.Problems, "Targets[0].InfoPlist is required")
}

func TestLanguageFor(t *testing.T) {
	p := validProject()
	own := &Language{Kind: LanguageObjC}
	p.Targets[1].Language = own

	assert.Same(t, p.Language, p.LanguageFor(&p.Targets[0]))
	assert.Same(t, own, p.LanguageFor(&p.Targets[1]))
}
