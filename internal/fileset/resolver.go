package fileset

import (
	"context"
	"path"

	"github.com/specialistvlad/framegen/internal/ctxlog"
	"github.com/specialistvlad/framegen/internal/project"
)

// ResolvedFile is a path together with the group path it was filed under.
type ResolvedFile struct {
	Path  string
	Group string
}

// Resolver files paths into the group tree of a project model.
type Resolver struct {
	model project.Model
}

// NewResolver creates a resolver for model.
func NewResolver(model project.Model) *Resolver {
	return &Resolver{model: model}
}

// Locate returns the group a path belongs in, creating nested groups for its
// directory components as needed.
func (r *Resolver) Locate(p string) (*project.Group, ResolvedFile) {
	dir := path.Dir(p)
	return r.model.Group(dir), ResolvedFile{Path: p, Group: dir}
}

// Reference returns the file reference for p, creating it if its group does
// not hold one yet. created reports whether a new reference was made.
func (r *Resolver) Reference(p string) (ref *project.FileReference, created bool) {
	g, _ := r.Locate(p)
	if existing, ok := r.model.FindFile(g, p); ok {
		return existing, false
	}
	return r.model.NewFileReference(g, p), true
}

// Attach files every path into its group and appends new references to the
// target's phase of the given kind. Paths that already have a reference in
// their group are skipped. It returns the files that were added.
func (r *Resolver) Attach(ctx context.Context, t *project.Target, kind project.PhaseKind, files [][]string) []ResolvedFile {
	logger := ctxlog.FromContext(ctx).With("target", t.Name, "phase", kind)

	var added []ResolvedFile
	for _, group := range files {
		for _, p := range group {
			g, resolved := r.Locate(p)
			if _, ok := r.model.FindFile(g, p); ok {
				logger.Debug("File already referenced, skipping.", "path", p)
				continue
			}
			ref := r.model.NewFileReference(g, p)
			r.model.AddFile(r.model.BuildPhase(t, kind), ref, nil)
			added = append(added, resolved)
		}
	}
	logger.Debug("Files attached.", "added", len(added))
	return added
}
