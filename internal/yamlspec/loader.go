package yamlspec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/framegen/internal/config"
	"github.com/specialistvlad/framegen/internal/ctxlog"
	"github.com/specialistvlad/framegen/internal/project"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML specification loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load reads and translates the YAML specification at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Project, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read specification: %w", err)
	}
	return l.Parse(ctx, path, src)
}

// Parse translates YAML source. Unknown keys are rejected. filename is only
// used in error messages.
func (l *Loader) Parse(ctx context.Context, filename string, src []byte) (*config.Project, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "file", filename)

	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
	}

	p := &config.Project{
		Name:             doc.Name,
		Language:         translateLanguage(doc.Language),
		ScriptsDirectory: doc.ScriptsDirectory,
	}
	for i := range doc.Targets {
		t, err := translateTarget(&doc.Targets[i])
		if err != nil {
			return nil, fmt.Errorf("%s: target %q: %w", filename, doc.Targets[i].Name, err)
		}
		p.Targets = append(p.Targets, *t)
	}

	logger.Debug("YAML loading complete.", "project", p.Name, "targets", len(p.Targets))
	return p, nil
}

func translateTarget(s *target) (*config.Target, error) {
	kind := project.ProductFramework
	if s.Type != nil {
		kind = project.ProductType(*s.Type)
	}

	exclude, err := excludeFiles(&s.ExcludeFiles)
	if err != nil {
		return nil, fmt.Errorf("exclude_files: %w", err)
	}
	env, err := environment(&s.EnvironmentVariables)
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
		LaunchArguments:      s.LaunchArguments,
		EnvironmentVariables: env,
	}
	for _, p := range s.Platforms {
		t.Platforms = append(t.Platforms, config.Platform{
			Kind:           config.PlatformKind(p.Kind),
			MinimumVersion: p.MinimumVersion,
			SearchPaths:    p.SearchPaths,
		})
	}
	return t, nil
}

// absent reports whether a node was left out or set to null.
func absent(n *yaml.Node) bool {
	return n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

func excludeFiles(n *yaml.Node) ([][]string, error) {
	if absent(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: must be a list", n.Line)
	}

	nested := len(n.Content) > 0 && n.Content[0].Kind == yaml.SequenceNode
	if !nested {
		var flat []string
		if err := n.Decode(&flat); err != nil {
			return nil, err
		}
		if flat == nil {
			flat = []string{}
		}
		return [][]string{flat}, nil
	}

	var out [][]string
	if err := n.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func environment(n *yaml.Node) ([]config.EnvironmentVariable, error) {
	if absent(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: must be a mapping", n.Line)
	}

	vars := make([]config.EnvironmentVariable, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: variable %q must be a scalar", v.Line, k.Value)
		}
		vars = append(vars, config.EnvironmentVariable{Key: k.Value, Value: v.Value})
	}
	return vars, nil
}

func translateLanguage(s *language) *config.Language {
	if s == nil {
		return nil
	}
	return &config.Language{Kind: config.LanguageKind(s.Kind), Version: s.Version}
}

func translateScripts(in []script) []config.Script {
	if len(in) == 0 {
		return nil
	}
	out := make([]config.Script, 0, len(in))
	for _, s := range in {
		out = append(out, config.Script{Name: s.Name, Body: s.Body, Inputs: s.Inputs})
	}
	return out
}
