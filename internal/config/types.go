// Package config defines the declarative inputs of a scaffold run (module
// configuration and run context) and the tool-level settings that control
// which external binaries the scaffolder invokes.
package config

import (
	"github.com/genesis3lib/code-react/internal/manifest"
)

// ModuleConfig is the declarative description of one scaffold run,
// supplied by the calling orchestrator. It is read-only input and is
// never mutated by the scaffold pipeline.
type ModuleConfig struct {
	// Generation configures the base template and post-generation file
	// removals.
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	// Dependencies are extra dependency groups merged into the generated
	// project's manifest.
	Dependencies manifest.DependencyGroups `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// GenerationConfig configures project generation.
type GenerationConfig struct {
	// BaseTemplate configures the external generator template.
	BaseTemplate *BaseTemplateConfig `json:"baseTemplate,omitempty" yaml:"baseTemplate,omitempty"`
	// Files configures post-generation file handling.
	Files *FilesConfig `json:"files,omitempty" yaml:"files,omitempty"`
}

// BaseTemplateConfig configures the external generator template.
type BaseTemplateConfig struct {
	// Config holds template options passed through to the generator.
	Config TemplateOptions `json:"config,omitempty" yaml:"config,omitempty"`
}

// TemplateOptions are options for the external generator.
type TemplateOptions struct {
	// Template explicitly selects a generator template, overriding the
	// one derived from the run context's TypeScript flag.
	Template string `json:"template,omitempty" yaml:"template,omitempty"`
}

// FilesConfig configures post-generation file handling.
type FilesConfig struct {
	// Remove lists relative paths to drop from the captured file map.
	Remove []string `json:"remove,omitempty" yaml:"remove,omitempty"`
}

// RemovalList returns the configured removal paths, or nil when none are
// configured.
func (c *ModuleConfig) RemovalList() []string {
	if c.Generation.Files == nil {
		return nil
	}
	return c.Generation.Files.Remove
}

// TemplateOverride returns the explicitly configured generator template,
// or "" when the template should be derived from the run context.
func (c *ModuleConfig) TemplateOverride() string {
	if c.Generation.BaseTemplate == nil {
		return ""
	}
	return c.Generation.BaseTemplate.Config.Template
}

// RunContext carries caller-supplied project identity and module field
// values for one scaffold run.
type RunContext struct {
	// Project identifies the project being scaffolded.
	Project ProjectContext `json:"project" yaml:"project"`
	// Module carries the module's field values.
	Module ModuleContext `json:"module" yaml:"module"`
}

// ProjectContext identifies the project being scaffolded.
type ProjectContext struct {
	// Name is the project name, used as the generated directory name.
	Name string `json:"name" yaml:"name"`
}

// ModuleContext carries module field values.
type ModuleContext struct {
	// FieldValues are the configurable field values for this module.
	FieldValues FieldValues `json:"fieldValues" yaml:"fieldValues"`
}

// FieldValues are the configurable field values for a scaffold run.
type FieldValues struct {
	// UseTypeScript selects the TypeScript template variant. Defaults to
	// enabled when nil; only an explicit false disables it.
	UseTypeScript *bool `json:"useTypeScript,omitempty" yaml:"useTypeScript,omitempty"`
	// ReactVersion pins react/react-dom in the dependency merge when set.
	ReactVersion string `json:"reactVersion,omitempty" yaml:"reactVersion,omitempty"`
	// BuildTool selects the frontend build tool. Only "vite" is supported.
	BuildTool string `json:"buildTool,omitempty" yaml:"buildTool,omitempty"`
}

// TypeScriptEnabled reports whether the TypeScript template variant is
// selected. TypeScript is on unless explicitly disabled.
func (f FieldValues) TypeScriptEnabled() bool {
	return f.UseTypeScript == nil || *f.UseTypeScript
}
