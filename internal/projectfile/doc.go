// Package projectfile persists a project model as a YAML project description
// and renders its group tree for inspection.
//
// The description is deterministic: targets, phases, files, groups, products
// and schemes keep model order, and build settings are emitted with sorted
// keys. Two runs over the same specification and filesystem produce
// byte-identical output.
package projectfile
