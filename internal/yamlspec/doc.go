// Package yamlspec provides the YAML implementation of the config.Loader
// interface. Mapping order in the document is significant: environment
// variables keep the order they are written in.
package yamlspec
