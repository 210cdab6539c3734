package config

import (
	"regexp"
	"strings"
)

// BuildToolVite is the only supported frontend build tool.
const BuildToolVite = "vite"

// projectNamePattern restricts project names to what create-vite and the
// filesystem both accept as a directory name.
var projectNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._~][a-zA-Z0-9._~-]*$`)

// ValidateRunContext validates a run context once at the orchestrator
// boundary. Components downstream assume a validated context.
func ValidateRunContext(rc RunContext) error {
	name := rc.Project.Name
	if name == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "project.name", "project name is required")
	}
	if strings.Contains(name, "/") || strings.Contains(name, "\\") || strings.Contains(name, "..") {
		return NewConfigErrorWithField(ConfigValidationFailed, "project.name", "project name must not contain path separators or '..'")
	}
	if !projectNamePattern.MatchString(name) {
		return NewConfigErrorWithField(ConfigValidationFailed, "project.name", "project name contains unsupported characters")
	}

	if tool := rc.Module.FieldValues.BuildTool; tool != "" && tool != BuildToolVite {
		return NewConfigErrorWithField(ConfigValidationFailed, "module.fieldValues.buildTool", "unsupported build tool: "+tool)
	}

	return nil
}
