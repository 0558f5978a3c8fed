package schema

import "github.com/hashicorp/hcl/v2"

// --- Specification File ---

// File represents the top-level structure of a specification file: one
// project block followed by any number of target blocks.
type File struct {
	Project *Project  `hcl:"project,block"`
	Targets []*Target `hcl:"target,block"`
}

// Project represents the `project` block. Its language is the default for
// targets that declare none.
type Project struct {
	Name             string    `hcl:"name,label"`
	ScriptsDirectory *string   `hcl:"scripts_directory,optional"`
	Language         *Language `hcl:"language,block"`
}

// --- Target Structures ---

// Target represents a `target` block.
//
// Attributes whose absence must be told apart from an empty value
// (exclude_files, launch_arguments, environment_variables) are kept as raw
// expressions and evaluated during translation.
type Target struct {
	Name              string   `hcl:"name,label"`
	Type              *string  `hcl:"type,optional"`
	InfoPlist         string   `hcl:"info_plist,optional"`
	BundleID          string   `hcl:"bundle_id,optional"`
	Header            *string  `hcl:"header,optional"`
	IncludeFiles      []string `hcl:"include_files,optional"`
	ResourceFiles     []string `hcl:"resource_files,optional"`
	Dependencies      []string `hcl:"dependencies,optional"`
	TestTarget        *string  `hcl:"test_target,optional"`
	SafeForExtensions bool     `hcl:"safe_for_extensions,optional"`
	CodeCoverage      bool     `hcl:"enable_code_coverage,optional"`

	ExcludeFiles         hcl.Expression `hcl:"exclude_files,optional"`
	LaunchArguments      hcl.Expression `hcl:"launch_arguments,optional"`
	EnvironmentVariables hcl.Expression `hcl:"environment_variables,optional"`

	Language         *Language   `hcl:"language,block"`
	Platforms        []*Platform `hcl:"platform,block"`
	PreBuildScripts  []*Script   `hcl:"pre_build_script,block"`
	PostBuildScripts []*Script   `hcl:"post_build_script,block"`
}

// Language represents a `language "<kind>"` block.
type Language struct {
	Kind    string `hcl:"kind,label"`
	Version string `hcl:"version,optional"`
}

// Platform represents a `platform "<kind>"` block.
type Platform struct {
	Kind           string   `hcl:"kind,label"`
	MinimumVersion string   `hcl:"minimum_version,optional"`
	SearchPaths    []string `hcl:"search_paths,optional"`
}

// Script represents a `pre_build_script` or `post_build_script` block.
type Script struct {
	Name   string   `hcl:"name,label"`
	Body   string   `hcl:"body,optional"`
	Inputs []string `hcl:"inputs,optional"`
}
