package testutil

import (
	"testing"

	"github.com/specialistvlad/framegen/internal/projectfile"
	"github.com/stretchr/testify/require"
)

// RequireTarget returns the described target called name, failing the test
// when there is none.
func RequireTarget(t *testing.T, result *HarnessResult, name string) projectfile.TargetDescription {
	t.Helper()
	require.NoError(t, result.Err)
	for _, target := range result.Description.Targets {
		if target.Name == name {
			return target
		}
	}
	require.Failf(t, "target not found", "no target %q in the project description", name)
	return projectfile.TargetDescription{}
}

// RequireScheme returns the described scheme called name.
func RequireScheme(t *testing.T, result *HarnessResult, name string) projectfile.SchemeDescription {
	t.Helper()
	require.NoError(t, result.Err)
	for _, s := range result.Description.Schemes {
		if s.Name == name {
			return s
		}
	}
	require.Failf(t, "scheme not found", "no scheme %q in the project description", name)
	return projectfile.SchemeDescription{}
}

// PhaseLabels lists a target's phases, using the name for script phases and
// the kind for the rest.
func PhaseLabels(target projectfile.TargetDescription) []string {
	labels := make([]string, 0, len(target.Phases))
	for _, p := range target.Phases {
		if p.Name != "" {
			labels = append(labels, p.Name)
			continue
		}
		labels = append(labels, p.Kind)
	}
	return labels
}

// Phase returns the first phase of target with the given label.
func Phase(t *testing.T, target projectfile.TargetDescription, label string) projectfile.PhaseDescription {
	t.Helper()
	for _, p := range target.Phases {
		if p.Name == label || (p.Name == "" && p.Kind == label) {
			return p
		}
	}
	require.Failf(t, "phase not found", "target %q has no %q phase", target.Name, label)
	return projectfile.PhaseDescription{}
}

// FilePaths lists the file paths of a phase in order.
func FilePaths(p projectfile.PhaseDescription) []string {
	paths := make([]string, 0, len(p.Files))
	for _, f := range p.Files {
		paths = append(paths, f.Path)
	}
	return paths
}
