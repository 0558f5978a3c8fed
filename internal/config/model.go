package config

import "github.com/specialistvlad/framegen/internal/project"

// PlatformKind is one of the fixed set of platforms a target can support.
type PlatformKind string

const (
	PlatformMacOS   PlatformKind = "macos"   // desktop
	PlatformIOS     PlatformKind = "ios"     // mobile
	PlatformWatchOS PlatformKind = "watchos" // wearable
	PlatformTVOS    PlatformKind = "tvos"    // living room
)

// PlatformKinds returns every platform kind in canonical order.
func PlatformKinds() []PlatformKind {
	return []PlatformKind{PlatformMacOS, PlatformIOS, PlatformWatchOS, PlatformTVOS}
}

// LanguageKind is the source language of a target.
type LanguageKind string

const (
	LanguageSwift LanguageKind = "swift"
	LanguageObjC  LanguageKind = "objc"
)

// Project is the root of a specification.
type Project struct {
	Name     string    `validate:"required"`
	Language *Language `validate:"omitempty"`
	// ScriptsDirectory, when set, is where the copy-frameworks template is
	// copied to, relative to the project root.
	ScriptsDirectory *string
	Targets          []Target `validate:"unique=Name,dive"`
}

// Target is the description of one buildable unit.
type Target struct {
	Name      string     `validate:"required"`
	Platforms []Platform `validate:"required,min=1,unique=Kind,dive"`
	// Language falls back to the project language when nil.
	Language  *Language `validate:"omitempty"`
	InfoPlist string    `validate:"required"`
	BundleID  string    `validate:"required"`
	Header    *string

	IncludeFiles  []string
	ExcludeFiles  [][]string
	ResourceFiles []string
	Dependencies  []string

	Kind             project.ProductType `validate:"required,product_type"`
	PreBuildScripts  []Script            `validate:"dive"`
	PostBuildScripts []Script            `validate:"dive"`

	// TestTarget names the test target exercised by this target's scheme.
	TestTarget        *string
	SafeForExtensions bool
	CodeCoverage      bool

	// Launch arguments and environment variables are applied to the scheme
	// only when non-nil. An empty, non-nil list clears the scheme's list.
	LaunchArguments      []string
	EnvironmentVariables []EnvironmentVariable `validate:"omitempty,unique=Key,dive"`
}

// IsTest reports whether the target builds a test bundle.
func (t *Target) IsTest() bool {
	return t.Kind.IsTest()
}

// Platform describes one supported platform of a target.
type Platform struct {
	Kind           PlatformKind `validate:"required,oneof=macos ios watchos tvos"`
	MinimumVersion string       `validate:"required"`
	SearchPaths    []string
}

// Language describes the source language of a target.
type Language struct {
	Kind    LanguageKind `validate:"required,oneof=swift objc"`
	Version string
}

// Script is a build script attached before or after a target's main phases.
type Script struct {
	Name   string `validate:"required"`
	Body   string
	Inputs []string
}

// EnvironmentVariable is one entry of a target's ordered environment mapping.
type EnvironmentVariable struct {
	Key   string `validate:"required"`
	Value string
}
