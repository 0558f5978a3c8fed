// Package hcl provides the HCL implementation of the config.Loader
// interface. It is responsible for file parsing, decoding into the schema
// package's structs, and translating those into the format-agnostic model,
// evaluating the attributes that need cty-level handling on the way.
package hcl
