package project

// Model is the project-model collaborator. Every operation the generator
// performs on a project goes through this interface.
//
// Creation operations have get-or-create semantics so that running the same
// specification twice against one model does not duplicate targets, phases,
// file references or products.
type Model interface {
	// Name returns the project name.
	Name() string

	// NewNativeTarget returns the native target called name, creating and
	// appending it to the target list if it does not exist yet.
	NewNativeTarget(name string) *Target

	// Targets returns all native targets in creation order.
	Targets() []*Target

	// Group returns the group for a directory path relative to the project
	// root, creating any missing intermediate groups. "" and "." denote the
	// main group.
	Group(dir string) *Group

	// MainGroup returns the root of the group tree.
	MainGroup() *Group

	// FindFile returns the file reference with exactly this path in group g.
	FindFile(g *Group, path string) (*FileReference, bool)

	// NewFileReference creates a file reference for path under group g.
	NewFileReference(g *Group, path string) *FileReference

	// BuildPhase returns the target's phase of the given kind, appending an
	// empty one when the target has none. For PhaseShellScript it returns the
	// script phase with the empty key, as ScriptPhase(t, "", "ShellScript")
	// would.
	BuildPhase(t *Target, kind PhaseKind) *BuildPhase

	// AddFile appends ref to phase p unless p already holds it. It reports
	// whether the phase changed.
	AddFile(p *BuildPhase, ref *FileReference, settings map[string]any) bool

	// ScriptPhase returns the target's shell script phase identified by key,
	// appending an empty one when the target has none. The phase is labelled
	// name. Distinct keys always yield distinct phases, even when their names
	// are equal.
	ScriptPhase(t *Target, key, name string) *BuildPhase

	// NewConfigurationList creates the configuration list for a target of
	// the given product type, seeded with the default settings of the
	// (family, language) pair.
	NewConfigurationList(family Family, language string, productType ProductType) *ConfigurationList

	// Product looks up the product registry by product path.
	Product(path string) (*FileReference, bool)

	// Products returns the product registry in registration order.
	Products() []*FileReference

	// NewProduct creates the product reference for target t and registers it.
	// A target that already has a product gets it back unchanged.
	NewProduct(t *Target) *FileReference

	// Scheme returns the shared scheme called name, creating it if needed.
	Scheme(name string) *Scheme

	// Schemes returns all schemes in creation order.
	Schemes() []*Scheme
}
