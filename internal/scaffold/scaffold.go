// Package scaffold sequences one end-to-end scaffold run: generate a
// starter project with the external generator, merge declared
// dependencies into its manifest, optionally provision it, then capture
// the resulting tree as a FileMap with configured files removed.
package scaffold

import (
	"context"
	"os"
	"path/filepath"

	"github.com/genesis3lib/code-react/internal/config"
	"github.com/genesis3lib/code-react/internal/debug"
	"github.com/genesis3lib/code-react/internal/events"
	"github.com/genesis3lib/code-react/internal/filemap"
	"github.com/genesis3lib/code-react/internal/manifest"
	"github.com/genesis3lib/code-react/internal/runner"
)

const scaffoldComponent = "scaffold"

// Generator templates understood by create-vite.
const (
	TemplateReactTS = "react-ts"
	TemplateReact   = "react"
)

// UIInitStatus is the outcome of the best-effort UI library
// initialization step.
type UIInitStatus int

const (
	// UIInitSkipped means the step did not run (fast/test mode).
	UIInitSkipped UIInitStatus = iota
	// UIInitSucceeded means the UI library was initialized.
	UIInitSucceeded
	// UIInitFailedNonFatal means initialization failed but the run
	// continued without the UI library.
	UIInitFailedNonFatal
)

// String returns the status name.
func (s UIInitStatus) String() string {
	switch s {
	case UIInitSucceeded:
		return "succeeded"
	case UIInitFailedNonFatal:
		return "failed (non-fatal)"
	default:
		return "skipped"
	}
}

// Result contains the outcome of one scaffold run. Ownership of Files
// passes to the caller; the orchestrator retains no reference after
// returning.
type Result struct {
	// Files is the captured project tree with configured removals applied.
	Files filemap.FileMap
	// Removed lists the removal-list paths that were actually present.
	Removed []string
	// UIInit is the outcome of the UI library initialization step.
	UIInit UIInitStatus
	// Digest is a content digest of Files, usable for change detection.
	Digest uint64
}

// Orchestrator runs the scaffold pipeline. Each Run owns its own
// temporary workspace; independent runs share no mutable state.
type Orchestrator struct {
	runner   runner.Runner
	sink     events.Sink
	settings *config.Settings
}

// New creates an Orchestrator. A nil settings value gets defaults; a nil
// sink discards diagnostics.
func New(r runner.Runner, sink events.Sink, settings *config.Settings) *Orchestrator {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	return &Orchestrator{
		runner:   r,
		sink:     sink,
		settings: settings,
	}
}

// Run executes one scaffold run and returns the captured file map.
//
// Steps run strictly in order: generate, augment, provision (unless
// skipped), capture, filter. The temporary workspace is removed on every
// exit path, including early error returns and context cancellation; a
// cleanup failure is reported as a diagnostic and never masks the run's
// primary result.
func (o *Orchestrator) Run(ctx context.Context, cfg *config.ModuleConfig, rc config.RunContext) (*Result, error) {
	debug.DebugSection("[scaffold] Run start")
	debug.DebugValue("[scaffold] Project", rc.Project.Name)

	if cfg == nil {
		return nil, NewValidationError("module configuration is required", nil)
	}
	if err := config.ValidateRunContext(rc); err != nil {
		return nil, NewValidationError("invalid run context", err)
	}

	workspace, err := os.MkdirTemp("", "code-react-")
	if err != nil {
		return nil, NewWorkspaceError("failed to create temporary workspace", err)
	}
	defer o.cleanup(workspace)
	debug.DebugValue("[scaffold] Workspace", workspace)

	projectDir := filepath.Join(workspace, rc.Project.Name)

	// Generate
	template := o.template(cfg, rc)
	debug.DebugValue("[scaffold] Template", template)
	generate := runner.CommandSpec{
		Command: o.settings.NpxBin,
		Args:    []string{"--yes", o.settings.GeneratorPackage, rc.Project.Name, "--template", template},
		Dir:     workspace,
	}
	if err := o.runner.Run(ctx, generate); err != nil {
		return nil, NewGenerateError("project generation failed", err)
	}

	// Augment
	groups := o.dependencyGroups(cfg, rc)
	manifestPath := filepath.Join(projectDir, "package.json")
	if err := manifest.MergeDependencies(manifestPath, groups, o.sink); err != nil {
		return nil, NewAugmentError("dependency merge failed", err)
	}

	// Provision
	uiInit := UIInitSkipped
	if o.settings.SkipInstall {
		events.Info(o.sink, scaffoldComponent, "fast mode: skipping install and UI initialization")
	} else {
		install := runner.CommandSpec{
			Command: o.settings.NpmBin,
			Args:    []string{"install"},
			Dir:     projectDir,
		}
		if err := o.runner.Run(ctx, install); err != nil {
			return nil, NewProvisionError("package installation failed", err)
		}

		uiInitSpec := runner.CommandSpec{
			Command: o.settings.NpxBin,
			Args:    []string{"--yes", o.settings.UIInitPackage, "init", "-d"},
			Dir:     projectDir,
		}
		if err := o.runner.Run(ctx, uiInitSpec); err != nil {
			events.Warn(o.sink, scaffoldComponent, "UI library initialization failed, continuing without it: %v", err)
			uiInit = UIInitFailedNonFatal
		} else {
			uiInit = UIInitSucceeded
		}
	}

	// Capture
	files, err := filemap.Snapshot(projectDir, o.sink)
	if err != nil {
		return nil, NewCaptureError("failed to capture generated project", err)
	}

	// Filter
	removed := filemap.Remove(files, cfg.RemovalList(), o.sink)

	result := &Result{
		Files:   files,
		Removed: removed,
		UIInit:  uiInit,
		Digest:  files.Digest(),
	}
	debug.Debug("[scaffold] Run complete: files=%d, removed=%d, uiInit=%s, digest=%016x",
		len(result.Files), len(result.Removed), result.UIInit, result.Digest)

	return result, nil
}

// template selects the generator template: an explicit override from the
// module configuration wins, otherwise the TypeScript flag decides.
func (o *Orchestrator) template(cfg *config.ModuleConfig, rc config.RunContext) string {
	if override := cfg.TemplateOverride(); override != "" {
		return override
	}
	if rc.Module.FieldValues.TypeScriptEnabled() {
		return TemplateReactTS
	}
	return TemplateReact
}

// dependencyGroups builds the groups to merge without mutating the
// read-only module configuration. A reactVersion field value pins
// react/react-dom unless the configuration already declares them.
func (o *Orchestrator) dependencyGroups(cfg *config.ModuleConfig, rc config.RunContext) manifest.DependencyGroups {
	groups := manifest.DependencyGroups{}
	if npm := cfg.Dependencies.NPM; npm != nil {
		groups.NPM = &manifest.NPMDependencies{
			Dependencies:    cloneVersions(npm.Dependencies),
			DevDependencies: cloneVersions(npm.DevDependencies),
		}
	}

	if v := rc.Module.FieldValues.ReactVersion; v != "" {
		if groups.NPM == nil {
			groups.NPM = &manifest.NPMDependencies{}
		}
		if groups.NPM.Dependencies == nil {
			groups.NPM.Dependencies = map[string]string{}
		}
		if _, ok := groups.NPM.Dependencies["react"]; !ok {
			groups.NPM.Dependencies["react"] = v
		}
		if _, ok := groups.NPM.Dependencies["react-dom"]; !ok {
			groups.NPM.Dependencies["react-dom"] = v
		}
	}

	return groups
}

// cleanup removes the temporary workspace. Failure is diagnostic only.
func (o *Orchestrator) cleanup(workspace string) {
	debug.Debug("[scaffold] Removing workspace: %s", workspace)
	if err := os.RemoveAll(workspace); err != nil {
		events.Warn(o.sink, scaffoldComponent, "failed to remove temporary workspace %s: %v", workspace, err)
	}
}

func cloneVersions(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
