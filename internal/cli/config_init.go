package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/genesis3lib/code-react/internal/config"
	"github.com/genesis3lib/code-react/internal/manifest"
	"github.com/genesis3lib/code-react/internal/scaffold"
)

// configCmd groups module-configuration subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage module configurations",
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Interactively create a module configuration file",
	Long: `Create a module configuration file by answering a few prompts.

The file format is selected by extension (.json, .yaml or .yml).

Examples:
  code-react config init
  code-react config init module.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := "code-react-module.json"
	if len(args) == 1 {
		path = args[0]
	}

	cfg, err := promptForModuleConfig()
	if err != nil {
		return fmt.Errorf("failed to collect module configuration: %w", err)
	}

	if err := config.SaveModuleConfig(path, cfg); err != nil {
		return err
	}

	printSuccess(fmt.Sprintf("Wrote module configuration to %s", path))
	return nil
}

// promptForModuleConfig interactively collects a module configuration.
func promptForModuleConfig() (*config.ModuleConfig, error) {
	cfg := &config.ModuleConfig{}

	useTypeScript := true
	if err := survey.AskOne(&survey.Confirm{
		Message: "Use the TypeScript template?",
		Default: true,
	}, &useTypeScript); err != nil {
		return nil, err
	}
	if !useTypeScript {
		// The template derived from the run context defaults to
		// TypeScript; a JavaScript choice is recorded as an explicit
		// template override.
		cfg.Generation.BaseTemplate = &config.BaseTemplateConfig{
			Config: config.TemplateOptions{Template: scaffold.TemplateReact},
		}
	}

	var removeRaw string
	if err := survey.AskOne(&survey.Input{
		Message: "Files to remove from the captured tree (comma-separated):",
		Help:    "Relative paths inside the generated project, e.g. src/App.css,public/vite.svg",
	}, &removeRaw); err != nil {
		return nil, err
	}
	if remove := splitList(removeRaw); len(remove) > 0 {
		cfg.Generation.Files = &config.FilesConfig{Remove: remove}
	}

	deps, err := promptForDependencies("Extra dependencies (name@version, comma-separated):")
	if err != nil {
		return nil, err
	}
	devDeps, err := promptForDependencies("Extra devDependencies (name@version, comma-separated):")
	if err != nil {
		return nil, err
	}
	if len(deps) > 0 || len(devDeps) > 0 {
		cfg.Dependencies.NPM = &manifest.NPMDependencies{
			Dependencies:    deps,
			DevDependencies: devDeps,
		}
	}

	return cfg, nil
}

// promptForDependencies prompts for a comma-separated dependency list and
// parses it into a name -> version map.
func promptForDependencies(message string) (map[string]string, error) {
	var raw string
	if err := survey.AskOne(&survey.Input{
		Message: message,
		Help:    "Example: tailwindcss@^3.4.0,clsx@^2.1.0 (version defaults to \"latest\")",
	}, &raw); err != nil {
		return nil, err
	}

	specs := splitList(raw)
	if len(specs) == 0 {
		return nil, nil
	}

	deps := make(map[string]string, len(specs))
	for _, spec := range specs {
		name, version := parseDependencySpec(spec)
		if name == "" {
			return nil, fmt.Errorf("invalid dependency spec %q", spec)
		}
		deps[name] = version
	}
	return deps, nil
}

// parseDependencySpec splits "name@version" into its parts. The version
// separator is the last '@' so scoped packages ("@scope/name@1.0.0") work.
// A spec without a version yields "latest".
func parseDependencySpec(spec string) (name, version string) {
	at := strings.LastIndex(spec, "@")
	if at <= 0 {
		// No version, or a scoped package without one.
		return spec, "latest"
	}
	return spec[:at], spec[at+1:]
}

// splitList splits a comma-separated input into trimmed non-empty items.
func splitList(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			items = append(items, p)
		}
	}
	return items
}
