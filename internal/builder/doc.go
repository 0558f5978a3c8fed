/*
Package builder compiles a validated specification into native targets of a
project model. It is the bridge between the static specification (package
config) and the project-model collaborator (package project).

A generation run is a multi-phase process:

 1. Order Check: Dependencies that name a target declared later (or the
    target itself) are reported. They can never be linked, because the linker
    only sees products that already exist. By default they are logged and
    treated as third-party; in strict mode they abort the run.

 2. File Expansion: The include, exclude and resource globs of every target
    are expanded against the filesystem. This phase only reads, so it runs
    concurrently with a bounded number of workers.

 3. Target Construction: Targets are built one at a time, in declaration
    order, by TargetBuilder. Each one goes through a fixed sequence (see
    TargetBuilder.Build) whose build-phase ordering is observable in the
    emitted project description.

 4. Scheme Configuration: Once every target exists, a shared scheme is set up
    for each non-test target and for each test target no host links.

The run owns the project model from the first target to the last. No other
goroutine writes to it; only phase 2 runs concurrently and it never touches
the model.
*/
package builder
