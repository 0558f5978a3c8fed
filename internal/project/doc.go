// Package project defines the project-model collaborator that the generator
// drives: native targets, build phases, configuration lists, the group tree,
// the product registry and schemes.
//
// The generator never writes a project file itself. It mutates a Model through
// the narrow set of operations declared in model.go, and a separate
// persistence layer (see package projectfile) serializes the result.
//
// # Ownership
//
// A Model has exactly one owner for its whole lifetime: the generation run.
// Implementations are not required to be safe for concurrent writers and the
// in-memory implementation is not.
package project
