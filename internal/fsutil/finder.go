// Package fsutil provides file system utility functions: shell-style path
// patterns and glob expansion over an fs.FS.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

const metaChars = "*?[{"

// Pattern is a compiled shell-style path pattern. `*`, `?` and `[...]` never
// match a path separator; `**/` matches zero or more whole directories.
type Pattern struct {
	source string
	globs  []glob.Glob
}

// Compile normalizes and compiles a pattern.
func Compile(pattern string) (*Pattern, error) {
	normalized := Normalize(pattern)
	p := &Pattern{source: normalized}
	for _, variant := range expandDoubleStar(normalized) {
		g, err := glob.Compile(variant, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		p.globs = append(p.globs, g)
	}
	return p, nil
}

// String returns the normalized pattern.
func (p *Pattern) String() string {
	return p.source
}

// Match reports whether a slash-separated relative path matches the pattern.
func (p *Pattern) Match(name string) bool {
	name = Normalize(name)
	for _, g := range p.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Normalize converts a path or pattern to its slash-separated, cleaned,
// root-relative form.
func Normalize(p string) string {
	p = path.Clean(filepath.ToSlash(p))
	return strings.TrimPrefix(p, "./")
}

// expandDoubleStar returns every variant of p in which each "**/" is either
// kept or dropped, so that "a/**/b" also matches "a/b".
func expandDoubleStar(p string) []string {
	i := strings.Index(p, "**/")
	if i < 0 {
		return []string{p}
	}
	head, tail := p[:i], p[i+len("**/"):]
	var variants []string
	for _, rest := range expandDoubleStar(tail) {
		variants = append(variants, head+"**/"+rest, head+rest)
	}
	return variants
}

func hasMeta(p string) bool {
	return strings.ContainsAny(p, metaChars)
}

// staticRoot returns the leading directory components of p that contain no
// pattern characters.
func staticRoot(p string) string {
	var static []string
	components := strings.Split(p, "/")
	for _, c := range components[:len(components)-1] {
		if hasMeta(c) {
			break
		}
		static = append(static, c)
	}
	if len(static) == 0 {
		return "."
	}
	return strings.Join(static, "/")
}

func depth(p string) int {
	if p == "." {
		return 0
	}
	return strings.Count(p, "/") + 1
}

// Glob expands pattern against fsys and returns the matching files and
// directories in lexical walk order. A pattern without wildcards yields the
// path itself when it exists. A missing starting directory is not an error;
// any other filesystem error is returned.
//
// Entries whose name starts with "." are only considered when the pattern
// explicitly names a dot path.
func Glob(fsys fs.FS, pattern string) ([]string, error) {
	normalized := Normalize(pattern)

	if !hasMeta(normalized) {
		if _, err := fs.Stat(fsys, normalized); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to stat %q: %w", normalized, err)
		}
		return []string{normalized}, nil
	}

	matcher, err := Compile(normalized)
	if err != nil {
		return nil, err
	}

	root := staticRoot(normalized)
	recursive := strings.Contains(normalized, "**")
	maxDepth := depth(normalized)
	allowHidden := strings.HasPrefix(normalized, ".") || strings.Contains(normalized, "/.")

	var matches []string
	err = fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if p == root && errors.Is(walkErr, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return walkErr
		}
		if p == root {
			return nil
		}
		if !allowHidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if matcher.Match(p) {
			matches = append(matches, p)
		}
		if d.IsDir() && !recursive && depth(p) >= maxDepth {
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to expand %q: %w", pattern, err)
	}
	return matches, nil
}

// Finder expands patterns relative to a project root. Patterns that stay
// inside the root are expanded against FS. Absolute patterns and patterns
// that climb out of the root with ".." cannot be expressed in an fs.FS; they
// are expanded against the operating system filesystem, Root-relative, and
// their matches keep the pattern's own prefix.
type Finder struct {
	FS   fs.FS
	Root string
}

// NewFinder returns a Finder for the directory root on disk.
func NewFinder(root string) Finder {
	return Finder{FS: os.DirFS(root), Root: root}
}

// Glob expands pattern. See the package-level Glob for the matching rules.
func (f Finder) Glob(pattern string) ([]string, error) {
	normalized := Normalize(pattern)
	base := staticRoot(normalized)
	if !hasMeta(normalized) {
		base = path.Dir(normalized)
	}
	if base == "" {
		base = "/"
	}
	if fs.ValidPath(base) {
		return Glob(f.FS, normalized)
	}

	dir := filepath.FromSlash(base)
	if !filepath.IsAbs(dir) {
		root := f.Root
		if root == "" {
			root = "."
		}
		dir = filepath.Join(root, dir)
	}
	rest := strings.TrimPrefix(strings.TrimPrefix(normalized, base), "/")
	matches, err := Glob(os.DirFS(dir), rest)
	if err != nil {
		return nil, fmt.Errorf("pattern %q outside the project root: %w", pattern, err)
	}
	for i, m := range matches {
		matches[i] = path.Join(base, m)
	}
	return matches, nil
}
