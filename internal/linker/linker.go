// Package linker links a target's frameworks phase against products that
// earlier targets of the same run have already registered.
package linker

import (
	"context"
	"strings"

	"github.com/specialistvlad/framegen/internal/ctxlog"
	"github.com/specialistvlad/framegen/internal/project"
)

// Normalize appends the framework extension to name unless it already ends
// with it.
func Normalize(name string) string {
	if strings.HasSuffix(name, project.FrameworkExtension) {
		return name
	}
	return name + project.FrameworkExtension
}

// Partition splits the normalized dependency names into products present in
// the registry and third-party names. Both lists keep the declared order.
func Partition(model project.Model, dependencies []string) (known []*project.FileReference, unknown []string) {
	for _, dep := range dependencies {
		name := Normalize(dep)
		if product, ok := model.Product(name); ok {
			known = append(known, product)
			continue
		}
		unknown = append(unknown, name)
	}
	return known, unknown
}

// Link appends every known dependency product to the target's frameworks
// phase, in declared order, and returns the third-party names. A nil
// dependency list behaves exactly like an empty one.
func Link(ctx context.Context, model project.Model, t *project.Target, dependencies []string) []string {
	if len(dependencies) == 0 {
		return nil
	}
	logger := ctxlog.FromContext(ctx).With("target", t.Name)

	known, unknown := Partition(model, dependencies)
	if len(known) > 0 {
		phase := model.BuildPhase(t, project.PhaseFrameworks)
		for _, product := range known {
			if model.AddFile(phase, product, nil) {
				logger.Debug("Linked framework.", "product", product.Path)
			}
		}
	}
	if len(unknown) > 0 {
		logger.Debug("Dependencies not built by this project, treating as third-party.", "names", unknown)
	}
	return unknown
}
