package projectfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/specialistvlad/framegen/internal/ctxlog"
	"github.com/specialistvlad/framegen/internal/project"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the name of the description inside the project bundle.
const DefaultFileName = "project.yaml"

// DefaultPath returns where the description of a project called name is
// written below root: "<root>/<name>.xcodeproj/project.yaml".
func DefaultPath(root, name string) string {
	return filepath.Join(root, name+".xcodeproj", DefaultFileName)
}

// Encode writes the YAML description of m to w.
func Encode(w io.Writer, m project.Model) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Describe(m)); err != nil {
		return fmt.Errorf("failed to encode project description: %w", err)
	}
	return enc.Close()
}

// Write saves the YAML description of m to dest, creating parent
// directories. The file is replaced atomically.
func Write(ctx context.Context, dest string, m project.Model) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dest, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s: %w", dest, err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, m); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", dest, err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("failed to replace %s: %w", dest, err)
	}

	ctxlog.FromContext(ctx).Info("Project description written.", "path", dest, "targets", len(m.Targets()))
	return nil
}
