package yamlspec

import "gopkg.in/yaml.v3"

type document struct {
	Name             string    `yaml:"name"`
	Language         *language `yaml:"language"`
	ScriptsDirectory *string   `yaml:"scripts_directory"`
	Targets          []target  `yaml:"targets"`
}

type target struct {
	Name              string     `yaml:"name"`
	Type              *string    `yaml:"type"`
	Language          *language  `yaml:"language"`
	Platforms         []platform `yaml:"platforms"`
	InfoPlist         string     `yaml:"info_plist"`
	BundleID          string     `yaml:"bundle_id"`
	Header            *string    `yaml:"header"`
	IncludeFiles      []string   `yaml:"include_files"`
	ResourceFiles     []string   `yaml:"resource_files"`
	Dependencies      []string   `yaml:"dependencies"`
	PreBuildScripts   []script   `yaml:"pre_build_scripts"`
	PostBuildScripts  []script   `yaml:"post_build_scripts"`
	TestTarget        *string    `yaml:"test_target"`
	SafeForExtensions bool       `yaml:"safe_for_extensions"`
	CodeCoverage      bool       `yaml:"enable_code_coverage"`
	LaunchArguments   []string   `yaml:"launch_arguments"`

	// Decoded by hand: a flat list is accepted as one sublist.
	ExcludeFiles yaml.Node `yaml:"exclude_files"`
	// Decoded by hand to keep document order.
	EnvironmentVariables yaml.Node `yaml:"environment_variables"`
}

type language struct {
	Kind    string `yaml:"kind"`
	Version string `yaml:"version"`
}

type platform struct {
	Kind           string   `yaml:"kind"`
	MinimumVersion string   `yaml:"minimum_version"`
	SearchPaths    []string `yaml:"search_paths"`
}

type script struct {
	Name   string   `yaml:"name"`
	Body   string   `yaml:"body"`
	Inputs []string `yaml:"inputs"`
}
