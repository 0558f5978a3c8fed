// Package scheme configures the launch and test actions of shared schemes.
package scheme

import (
	"github.com/specialistvlad/framegen/internal/config"
	"github.com/specialistvlad/framegen/internal/project"
)

// ConfigureLaunch replaces the launch action's argument list when arguments
// is non-nil, and its environment list when environment is non-nil. A nil
// list leaves the corresponding attribute untouched; an empty one clears it.
func ConfigureLaunch(action *project.LaunchAction, arguments []string, environment []config.EnvironmentVariable) {
	if arguments != nil {
		args := make([]project.CommandLineArgument, 0, len(arguments))
		for _, a := range arguments {
			args = append(args, project.CommandLineArgument{Argument: a, Enabled: true})
		}
		action.Arguments = args
	}

	if environment != nil {
		env := make([]project.EnvironmentVariable, 0, len(environment))
		for _, e := range environment {
			env = append(env, project.EnvironmentVariable{Key: e.Key, Value: e.Value, Enabled: true})
		}
		action.Environment = env
	}
}

// Configure sets up the scheme of target t: its build target, its linked
// test target, code coverage and the launch action.
func Configure(s *project.Scheme, t *config.Target) {
	s.BuildTargets = []string{t.Name}

	switch {
	case t.TestTarget != nil:
		s.Test.Testables = []string{*t.TestTarget}
	case t.IsTest():
		s.Test.Testables = []string{t.Name}
	}
	s.Test.CodeCoverageEnabled = t.CodeCoverage

	ConfigureLaunch(&s.Launch, t.LaunchArguments, t.EnvironmentVariables)
}
