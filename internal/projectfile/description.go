package projectfile

import (
	"path"

	"github.com/specialistvlad/framegen/internal/project"
)

// Description is the serialized form of a project model.
type Description struct {
	Name      string              `yaml:"name"`
	Targets   []TargetDescription `yaml:"targets"`
	MainGroup GroupDescription    `yaml:"main_group"`
	Products  []FileDescription   `yaml:"products"`
	Schemes   []SchemeDescription `yaml:"schemes,omitempty"`
}

// TargetDescription describes one native target.
type TargetDescription struct {
	Name           string                    `yaml:"name"`
	ProductName    string                    `yaml:"product_name"`
	ProductType    string                    `yaml:"product_type"`
	Product        string                    `yaml:"product,omitempty"`
	Configurations ConfigurationsDescription `yaml:"build_configuration_list"`
	Phases         []PhaseDescription        `yaml:"build_phases"`
}

// ConfigurationsDescription describes a target's configuration list.
type ConfigurationsDescription struct {
	Family         string                     `yaml:"family"`
	Language       string                     `yaml:"language"`
	Configurations []ConfigurationDescription `yaml:"configurations"`
}

// ConfigurationDescription describes one build configuration.
type ConfigurationDescription struct {
	Name     string                `yaml:"name"`
	Settings project.BuildSettings `yaml:"build_settings"`
}

// PhaseDescription describes one build phase.
type PhaseDescription struct {
	Kind        string                 `yaml:"kind"`
	Name        string                 `yaml:"name,omitempty"`
	Files       []BuildFileDescription `yaml:"files,omitempty"`
	ShellScript string                 `yaml:"shell_script,omitempty"`
	InputPaths  []string               `yaml:"input_paths,omitempty"`
}

// BuildFileDescription describes one file of a build phase.
type BuildFileDescription struct {
	Path     string         `yaml:"path"`
	Settings map[string]any `yaml:"settings,omitempty"`
}

// GroupDescription describes a group and everything below it.
type GroupDescription struct {
	Name     string             `yaml:"name,omitempty"`
	Path     string             `yaml:"path,omitempty"`
	Children []GroupDescription `yaml:"children,omitempty"`
	Files    []FileDescription  `yaml:"files,omitempty"`
}

// FileDescription describes a file reference.
type FileDescription struct {
	Path       string `yaml:"path"`
	SourceTree string `yaml:"source_tree"`
}

// SchemeDescription describes a shared scheme.
type SchemeDescription struct {
	Name         string            `yaml:"name"`
	BuildTargets []string          `yaml:"build_targets"`
	Test         TestDescription   `yaml:"test_action"`
	Launch       LaunchDescription `yaml:"launch_action"`
}

// TestDescription describes a scheme's test action.
type TestDescription struct {
	Testables           []string `yaml:"testables,omitempty"`
	CodeCoverageEnabled bool     `yaml:"code_coverage_enabled"`
}

// LaunchDescription describes a scheme's launch action.
type LaunchDescription struct {
	Arguments   []ArgumentDescription    `yaml:"command_line_arguments,omitempty"`
	Environment []EnvironmentDescription `yaml:"environment_variables,omitempty"`
}

// ArgumentDescription describes one launch argument.
type ArgumentDescription struct {
	Argument string `yaml:"argument"`
	Enabled  bool   `yaml:"enabled"`
}

// EnvironmentDescription describes one launch environment variable.
type EnvironmentDescription struct {
	Key     string `yaml:"key"`
	Value   string `yaml:"value"`
	Enabled bool   `yaml:"enabled"`
}

// Describe converts a project model into its serialized form.
func Describe(m project.Model) *Description {
	d := &Description{
		Name:      m.Name(),
		MainGroup: describeGroup(m.MainGroup()),
	}
	for _, t := range m.Targets() {
		d.Targets = append(d.Targets, describeTarget(t))
	}
	for _, p := range m.Products() {
		d.Products = append(d.Products, describeFile(p))
	}
	for _, s := range m.Schemes() {
		d.Schemes = append(d.Schemes, describeScheme(s))
	}
	return d
}

func describeTarget(t *project.Target) TargetDescription {
	td := TargetDescription{
		Name:        t.Name,
		ProductName: t.ProductName,
		ProductType: t.ProductType.UTI(),
	}
	if t.Product != nil {
		td.Product = t.Product.Path
	}
	if l := t.ConfigurationList; l != nil {
		td.Configurations.Family = string(l.Family)
		td.Configurations.Language = l.Language
		for _, c := range l.Configurations {
			td.Configurations.Configurations = append(td.Configurations.Configurations, ConfigurationDescription{
				Name:     c.Name,
				Settings: c.Settings,
			})
		}
	}
	for _, p := range t.Phases {
		pd := PhaseDescription{
			Kind:        string(p.Kind),
			ShellScript: p.ShellScript,
			InputPaths:  p.InputPaths,
		}
		if p.Kind == project.PhaseShellScript {
			pd.Name = p.Name
		}
		for _, f := range p.Files {
			pd.Files = append(pd.Files, BuildFileDescription{Path: f.Ref.Path, Settings: f.Settings})
		}
		td.Phases = append(td.Phases, pd)
	}
	return td
}

func describeGroup(g *project.Group) GroupDescription {
	gd := GroupDescription{Name: g.Name, Path: g.Path}
	for _, c := range g.Children {
		gd.Children = append(gd.Children, describeGroup(c))
	}
	for _, f := range g.Files {
		gd.Files = append(gd.Files, FileDescription{Path: path.Base(f.Path), SourceTree: f.SourceTree})
	}
	return gd
}

func describeFile(f *project.FileReference) FileDescription {
	return FileDescription{Path: f.Path, SourceTree: f.SourceTree}
}

func describeScheme(s *project.Scheme) SchemeDescription {
	sd := SchemeDescription{
		Name:         s.Name,
		BuildTargets: s.BuildTargets,
		Test: TestDescription{
			Testables:           s.Test.Testables,
			CodeCoverageEnabled: s.Test.CodeCoverageEnabled,
		},
	}
	for _, a := range s.Launch.Arguments {
		sd.Launch.Arguments = append(sd.Launch.Arguments, ArgumentDescription{Argument: a.Argument, Enabled: a.Enabled})
	}
	for _, e := range s.Launch.Environment {
		sd.Launch.Environment = append(sd.Launch.Environment, EnvironmentDescription{Key: e.Key, Value: e.Value, Enabled: e.Enabled})
	}
	return sd
}
