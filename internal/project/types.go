package project

// PhaseKind identifies the kind of a build phase.
type PhaseKind string

const (
	PhaseHeaders     PhaseKind = "Headers"
	PhaseSources     PhaseKind = "Sources"
	PhaseResources   PhaseKind = "Resources"
	PhaseFrameworks  PhaseKind = "Frameworks"
	PhaseShellScript PhaseKind = "ShellScript"
)

// Family is the platform family a configuration list is created for.
type Family string

// FamilyOSX is the only family the generator asks for; per-platform values are
// expressed through conditional settings instead.
const FamilyOSX Family = "osx"

// BuildSettings maps a setting key to its value. Values are either a string or
// a []string.
type BuildSettings map[string]any

// FileReference points at a file on disk, relative to the project root.
type FileReference struct {
	Path string
	// SourceTree is "<group>" for regular files and "BUILT_PRODUCTS_DIR" for
	// products.
	SourceTree string
}

// Group is a node in the group tree. Group paths mirror directory paths.
type Group struct {
	Name     string
	Path     string
	Children []*Group
	Files    []*FileReference
}

// BuildFile is a file reference placed in a build phase.
type BuildFile struct {
	Ref      *FileReference
	Settings map[string]any
}

// BuildPhase is an ordered collection of actions of one kind.
type BuildPhase struct {
	Kind  PhaseKind
	Name  string
	Files []*BuildFile

	// Shell script phases only. Key identifies the phase within its target
	// and is not persisted; Name is only a display label and may repeat.
	Key         string
	ShellScript string
	InputPaths  []string
}

// HasFile reports whether ref is already part of the phase.
func (p *BuildPhase) HasFile(ref *FileReference) bool {
	for _, f := range p.Files {
		if f.Ref == ref {
			return true
		}
	}
	return false
}

// BuildConfiguration is one named configuration (Debug, Release) and its
// settings dictionary.
type BuildConfiguration struct {
	Name     string
	Settings BuildSettings
}

// ConfigurationList holds the configurations of a target.
type ConfigurationList struct {
	Family         Family
	Language       string
	Configurations []*BuildConfiguration
}

// Target is a native target.
type Target struct {
	Name              string
	ProductName       string
	ProductType       ProductType
	ConfigurationList *ConfigurationList
	Phases            []*BuildPhase
	Product           *FileReference
}

// Configurations returns the target's build configurations, or nil when no
// configuration list has been attached yet.
func (t *Target) Configurations() []*BuildConfiguration {
	if t.ConfigurationList == nil {
		return nil
	}
	return t.ConfigurationList.Configurations
}

// Phase returns the first phase of the given kind, if any.
func (t *Target) Phase(kind PhaseKind) (*BuildPhase, bool) {
	for _, p := range t.Phases {
		if p.Kind == kind {
			return p, true
		}
	}
	return nil, false
}

// ScriptPhase returns the first shell script phase with the given name, if
// any.
func (t *Target) ScriptPhase(name string) (*BuildPhase, bool) {
	for _, p := range t.Phases {
		if p.Kind == PhaseShellScript && p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// IsTest reports whether the target builds a test bundle.
func (t *Target) IsTest() bool {
	return t.ProductType.IsTest()
}

// CommandLineArgument is one launch argument of a scheme.
type CommandLineArgument struct {
	Argument string
	Enabled  bool
}

// EnvironmentVariable is one environment entry of a scheme.
type EnvironmentVariable struct {
	Key     string
	Value   string
	Enabled bool
}

// LaunchAction configures how the scheme runs its target.
type LaunchAction struct {
	Arguments   []CommandLineArgument
	Environment []EnvironmentVariable
}

// TestAction configures how the scheme tests its target.
type TestAction struct {
	Testables           []string
	CodeCoverageEnabled bool
}

// Scheme is a shared scheme for one target.
type Scheme struct {
	Name         string
	BuildTargets []string
	Test         TestAction
	Launch       LaunchAction
}
