package builder

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/framegen/internal/config"
	"github.com/specialistvlad/framegen/internal/linker"
)

// OrderIssue is a dependency on a target that is not declared before the
// dependent target.
type OrderIssue struct {
	Target     string
	Dependency string
	// Provider is the target whose product the dependency names.
	Provider string
}

func (i OrderIssue) String() string {
	if i.Provider == i.Target {
		return fmt.Sprintf("target %q depends on its own product %q", i.Target, i.Dependency)
	}
	return fmt.Sprintf("target %q depends on %q, which target %q declares later", i.Target, i.Dependency, i.Provider)
}

// OrderError is returned in strict mode when the declaration order prevents
// dependencies from being linked.
type OrderError struct {
	Issues []OrderIssue
}

// Error implements the error interface for OrderError.
func (e *OrderError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, i := range e.Issues {
		msgs = append(msgs, i.String())
	}
	return "dependencies declared out of order: " + strings.Join(msgs, "; ")
}

// CheckOrder reports every dependency naming the product of the same target
// or of a target declared later. A forward dependency is treated as
// third-party at link time; a self dependency links the target's own product.
func CheckOrder(p *config.Project) []OrderIssue {
	providers := make(map[string]int, len(p.Targets))
	for i := range p.Targets {
		t := &p.Targets[i]
		if _, ok := providers[t.Kind.ProductPath(t.Name)]; !ok {
			providers[t.Kind.ProductPath(t.Name)] = i
		}
	}

	var issues []OrderIssue
	for i := range p.Targets {
		t := &p.Targets[i]
		for _, dep := range t.Dependencies {
			j, ok := providers[linker.Normalize(dep)]
			if !ok || j < i {
				continue
			}
			issues = append(issues, OrderIssue{
				Target:     t.Name,
				Dependency: dep,
				Provider:   p.Targets[j].Name,
			})
		}
	}
	return issues
}
