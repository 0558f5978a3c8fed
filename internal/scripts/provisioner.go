// Package scripts attaches script build phases to targets and provisions the
// "copy frameworks" phase that test targets need for third-party frameworks.
package scripts

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/specialistvlad/framegen/internal/config"
	"github.com/specialistvlad/framegen/internal/ctxlog"
	"github.com/specialistvlad/framegen/internal/project"
)

const (
	// TemplateName is the file name of the copy-frameworks template.
	TemplateName = "copy-carthage-frameworks.sh"
	// CopyFrameworksPhase is the name of the provisioned phase.
	CopyFrameworksPhase = "Copy Carthage Frameworks"
)

// Stage tells whether scripts run before or after the target's build phases.
type Stage string

const (
	StagePreBuild  Stage = "pre-build"
	StagePostBuild Stage = "post-build"
)

// copyFrameworksKey identifies the copy-frameworks phase; it cannot collide
// with a stage key.
const copyFrameworksKey = "copy-frameworks"

// phaseKey identifies the index-th script of a stage.
func phaseKey(stage Stage, index int) string {
	return fmt.Sprintf("%s/%d", stage, index)
}

//go:embed copy-carthage-frameworks.sh
var template string

// Template returns the body of the copy-frameworks template.
func Template() string {
	return template
}

// Provisioner creates script phases for one generation run. It remembers
// whether the template has been copied so the copy happens once per run.
type Provisioner struct {
	model            project.Model
	root             string
	scriptsDirectory *string
	copied           bool
}

// NewProvisioner creates a provisioner. root is the project root on disk;
// scriptsDirectory, when non-nil, is where the template is copied to,
// relative to root.
func NewProvisioner(model project.Model, root string, scriptsDirectory *string) *Provisioner {
	return &Provisioner{
		model:            model,
		root:             root,
		scriptsDirectory: scriptsDirectory,
	}
}

// AddScripts appends one script phase per script, in list order, carrying the
// body and input paths verbatim. Phases are identified by stage and position,
// so scripts sharing a name stay separate phases while a repeated run
// updates the phases it created before.
func (p *Provisioner) AddScripts(ctx context.Context, t *project.Target, stage Stage, scripts []config.Script) []*project.BuildPhase {
	if len(scripts) == 0 {
		return nil
	}
	logger := ctxlog.FromContext(ctx).With("target", t.Name, "stage", stage)

	phases := make([]*project.BuildPhase, 0, len(scripts))
	for i, s := range scripts {
		phase := p.model.ScriptPhase(t, phaseKey(stage, i), s.Name)
		phase.ShellScript = s.Body
		phase.InputPaths = append([]string(nil), s.Inputs...)
		phases = append(phases, phase)
		logger.Debug("Script phase attached.", "name", s.Name, "inputs", len(s.Inputs))
	}
	return phases
}

// ProvisionCopyFrameworks adds the copy-frameworks phase to a test target.
// The phase inputs are the normalized third-party dependency names. Without a
// scripts directory the phase embeds the template; with one, the template is
// copied there and the phase executes the copy.
func (p *Provisioner) ProvisionCopyFrameworks(ctx context.Context, t *project.Target, thirdParty []string) (*project.BuildPhase, error) {
	logger := ctxlog.FromContext(ctx).With("target", t.Name)

	body := template
	if p.scriptsDirectory != nil {
		if err := p.copyTemplate(ctx); err != nil {
			return nil, err
		}
		scriptPath := path.Join("${SRCROOT}", filepath.ToSlash(*p.scriptsDirectory), TemplateName)
		body = fmt.Sprintf(" exec \"%s\"", scriptPath)
	}

	phase := p.model.ScriptPhase(t, copyFrameworksKey, CopyFrameworksPhase)
	phase.ShellScript = body
	phase.InputPaths = append([]string(nil), thirdParty...)
	logger.Debug("Copy frameworks phase provisioned.", "frameworks", thirdParty)
	return phase, nil
}

// copyTemplate writes the template into the scripts directory, replacing any
// existing copy. Only the first call of a run touches the disk.
func (p *Provisioner) copyTemplate(ctx context.Context) error {
	if p.copied {
		return nil
	}
	dest := filepath.Join(p.root, *p.scriptsDirectory, TemplateName)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed to create scripts directory for %s: %w", dest, err)
	}
	if err := os.WriteFile(dest, []byte(template), 0o755); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", TemplateName, dest, err)
	}
	if err := os.Chmod(dest, 0o755); err != nil {
		return fmt.Errorf("failed to make %s executable: %w", dest, err)
	}
	p.copied = true
	ctxlog.FromContext(ctx).Info("Copied framework copy script.", "path", dest)
	return nil
}
