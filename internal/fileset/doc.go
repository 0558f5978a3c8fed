// Package fileset resolves a target's include, exclude and resource globs into
// concrete paths and files them into the project model.
//
// Resolution happens in two stages. Expand only reads the filesystem, so it
// can run for many targets at once. Attach then writes into the project model
// and must run on the goroutine that owns it.
//
// Expanded paths keep one sequence per include glob. Duplicates across globs
// are not removed during expansion; Attach skips any path whose reference
// already exists in its group, which also makes attaching idempotent.
package fileset
