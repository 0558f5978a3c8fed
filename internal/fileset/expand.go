package fileset

import (
	"fmt"

	"github.com/specialistvlad/framegen/internal/fsutil"
)

// Expansion holds the expanded file lists of one target.
type Expansion struct {
	Sources   [][]string
	Resources [][]string
}

// Count returns the total number of expanded paths.
func (e *Expansion) Count() int {
	n := 0
	for _, group := range e.Sources {
		n += len(group)
	}
	for _, group := range e.Resources {
		n += len(group)
	}
	return n
}

// ExpandTarget expands the source and resource globs of one target.
func ExpandTarget(finder fsutil.Finder, include []string, exclude [][]string, resources []string) (*Expansion, error) {
	sources, err := ExpandSources(finder, include, exclude)
	if err != nil {
		return nil, err
	}
	res, err := ExpandResources(finder, resources)
	if err != nil {
		return nil, err
	}
	return &Expansion{Sources: sources, Resources: res}, nil
}

// ExpandSources expands every include glob and drops the paths matched by any
// pattern of any exclude sublist.
func ExpandSources(finder fsutil.Finder, include []string, exclude [][]string) ([][]string, error) {
	var excludes []*fsutil.Pattern
	for _, sublist := range exclude {
		for _, pattern := range sublist {
			p, err := fsutil.Compile(pattern)
			if err != nil {
				return nil, fmt.Errorf("exclude pattern: %w", err)
			}
			excludes = append(excludes, p)
		}
	}

	result := make([][]string, 0, len(include))
	for _, pattern := range include {
		matches, err := finder.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("include pattern: %w", err)
		}
		kept := make([]string, 0, len(matches))
		for _, m := range matches {
			if !excluded(excludes, m) {
				kept = append(kept, m)
			}
		}
		result = append(result, kept)
	}
	return result, nil
}

func excluded(excludes []*fsutil.Pattern, p string) bool {
	for _, e := range excludes {
		if e.Match(p) {
			return true
		}
	}
	return false
}

// ExpandResources expands resource globs. Resources have no exclusion step.
func ExpandResources(finder fsutil.Finder, patterns []string) ([][]string, error) {
	if patterns == nil {
		return nil, nil
	}
	result := make([][]string, 0, len(patterns))
	for _, pattern := range patterns {
		matches, err := finder.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("resource pattern: %w", err)
		}
		result = append(result, matches)
	}
	return result, nil
}
