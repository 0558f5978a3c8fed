// Package config defines the format-agnostic specification model for the
// generator, along with the Loader interface that format-specific packages
// (HCL, YAML) implement.
//
// The `config.Project` is the single source of truth for the `builder`
// package. A loader produces it, Validate checks it, and from then on it is
// treated as immutable.
package config
