// Package inmemoryproject provides an ephemeral, in-memory implementation of
// the project.Model interface.
//
// # Characteristics
//
//   - **Ephemeral:** Created fresh for each generation run; persistence is the
//     job of package projectfile.
//   - **Single Owner:** No locking. The generation run is the only writer.
//   - **Idempotent:** Every creation operation is get-or-create, so replaying
//     a specification against an existing model changes nothing.
//   - **Deterministic:** Targets, phases, groups, files and products keep
//     their insertion order.
package inmemoryproject

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/framegen/internal/project"
)

// Store is an in-memory project model.
type Store struct {
	name      string
	mainGroup *project.Group
	targets   []*project.Target
	products  []*project.FileReference
	schemes   []*project.Scheme
}

// New creates an empty project model called name.
func New(name string) *Store {
	return &Store{
		name:      name,
		mainGroup: &project.Group{},
	}
}

var _ project.Model = (*Store)(nil)

// Name implements project.Model.
func (s *Store) Name() string {
	return s.name
}

// NewNativeTarget implements project.Model.
func (s *Store) NewNativeTarget(name string) *project.Target {
	for _, t := range s.targets {
		if t.Name == name {
			return t
		}
	}
	t := &project.Target{Name: name}
	s.targets = append(s.targets, t)
	return t
}

// Targets implements project.Model.
func (s *Store) Targets() []*project.Target {
	return s.targets
}

// MainGroup implements project.Model.
func (s *Store) MainGroup() *project.Group {
	return s.mainGroup
}

// Group implements project.Model.
func (s *Store) Group(dir string) *project.Group {
	dir = path.Clean(filepath.ToSlash(dir))
	g := s.mainGroup
	if dir == "." || dir == "" || dir == "/" {
		return g
	}
	for _, component := range strings.Split(strings.TrimPrefix(dir, "/"), "/") {
		g = childGroup(g, component)
	}
	return g
}

func childGroup(parent *project.Group, name string) *project.Group {
	for _, c := range parent.Children {
		if c.Name == name {
			return c
		}
	}
	child := &project.Group{Name: name, Path: name}
	parent.Children = append(parent.Children, child)
	return child
}

// FindFile implements project.Model.
func (s *Store) FindFile(g *project.Group, filePath string) (*project.FileReference, bool) {
	for _, f := range g.Files {
		if f.Path == filePath {
			return f, true
		}
	}
	return nil, false
}

// NewFileReference implements project.Model.
func (s *Store) NewFileReference(g *project.Group, filePath string) *project.FileReference {
	ref := &project.FileReference{Path: filePath, SourceTree: "<group>"}
	g.Files = append(g.Files, ref)
	return ref
}

// BuildPhase implements project.Model.
func (s *Store) BuildPhase(t *project.Target, kind project.PhaseKind) *project.BuildPhase {
	if kind == project.PhaseShellScript {
		return s.ScriptPhase(t, "", string(kind))
	}
	if p, ok := t.Phase(kind); ok {
		return p
	}
	p := &project.BuildPhase{Kind: kind, Name: string(kind)}
	t.Phases = append(t.Phases, p)
	return p
}

// AddFile implements project.Model.
func (s *Store) AddFile(p *project.BuildPhase, ref *project.FileReference, settings map[string]any) bool {
	if p.HasFile(ref) {
		return false
	}
	p.Files = append(p.Files, &project.BuildFile{Ref: ref, Settings: settings})
	return true
}

// ScriptPhase implements project.Model.
func (s *Store) ScriptPhase(t *project.Target, key, name string) *project.BuildPhase {
	for _, p := range t.Phases {
		if p.Kind == project.PhaseShellScript && p.Key == key {
			p.Name = name
			return p
		}
	}
	p := &project.BuildPhase{Kind: project.PhaseShellScript, Key: key, Name: name}
	t.Phases = append(t.Phases, p)
	return p
}

// NewConfigurationList implements project.Model.
func (s *Store) NewConfigurationList(family project.Family, language string, productType project.ProductType) *project.ConfigurationList {
	list := &project.ConfigurationList{Family: family, Language: language}
	for _, name := range configurationNames {
		list.Configurations = append(list.Configurations, &project.BuildConfiguration{
			Name:     name,
			Settings: defaultSettings(name, language, productType),
		})
	}
	return list
}

// Product implements project.Model.
func (s *Store) Product(productPath string) (*project.FileReference, bool) {
	for _, p := range s.products {
		if p.Path == productPath {
			return p, true
		}
	}
	return nil, false
}

// Products implements project.Model.
func (s *Store) Products() []*project.FileReference {
	return s.products
}

// NewProduct implements project.Model.
func (s *Store) NewProduct(t *project.Target) *project.FileReference {
	if t.Product != nil {
		return t.Product
	}
	productPath := t.ProductType.ProductPath(t.Name)
	ref, ok := s.Product(productPath)
	if !ok {
		ref = &project.FileReference{Path: productPath, SourceTree: "BUILT_PRODUCTS_DIR"}
		s.products = append(s.products, ref)
	}
	t.Product = ref
	return ref
}

// Scheme implements project.Model.
func (s *Store) Scheme(name string) *project.Scheme {
	for _, sc := range s.schemes {
		if sc.Name == name {
			return sc
		}
	}
	sc := &project.Scheme{Name: name}
	s.schemes = append(s.schemes, sc)
	return sc
}

// Schemes implements project.Model.
func (s *Store) Schemes() []*project.Scheme {
	return s.schemes
}
