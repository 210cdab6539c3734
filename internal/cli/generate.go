package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/genesis3lib/code-react/internal/config"
	"github.com/genesis3lib/code-react/internal/runner"
	"github.com/genesis3lib/code-react/internal/scaffold"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <module-config>",
	Short: "Scaffold a React project from a module configuration",
	Long: `Generate a starter React project from a module configuration file
(JSON or YAML), merge its declared dependencies into the generated
package.json, provision it, and capture the result.

The captured file map is written to --output as real files, emitted as
JSON with --json, or both. With neither, only a summary is printed.

Examples:
  code-react generate module.json --project my-app --output ./my-app
  code-react generate module.yaml -p my-app --no-typescript --json files.json
  CODE_REACT_SKIP_INSTALL=true code-react generate module.json -p my-app --json -`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

// Generate command flags
var (
	generateProject      string
	generateNoTypeScript bool
	generateReactVersion string
	generateBuildTool    string
	generateOutputDir    string
	generateJSONPath     string
)

func init() {
	generateCmd.Flags().StringVarP(&generateProject, "project", "p", "", "Project name (required)")
	generateCmd.Flags().BoolVar(&generateNoTypeScript, "no-typescript", false, "Use the plain JavaScript template")
	generateCmd.Flags().StringVar(&generateReactVersion, "react-version", "", "Pin react/react-dom to this version")
	generateCmd.Flags().StringVar(&generateBuildTool, "build-tool", config.BuildToolVite, "Frontend build tool")
	generateCmd.Flags().StringVarP(&generateOutputDir, "output", "o", "", "Write the captured files under this directory")
	generateCmd.Flags().StringVar(&generateJSONPath, "json", "", "Write the captured file map as JSON (\"-\" for stdout)")
	_ = generateCmd.MarkFlagRequired("project")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadModuleConfig(args[0])
	if err != nil {
		return err
	}

	useTypeScript := !generateNoTypeScript
	rc := config.RunContext{
		Project: config.ProjectContext{Name: generateProject},
		Module: config.ModuleContext{
			FieldValues: config.FieldValues{
				UseTypeScript: &useTypeScript,
				ReactVersion:  generateReactVersion,
				BuildTool:     generateBuildTool,
			},
		},
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}
	settings, err := config.LoadSettings(cwd)
	if err != nil {
		return err
	}

	sink := termSink{}
	orch := scaffold.New(runner.NewRunner(sink), sink, settings)

	result, err := orch.Run(cmd.Context(), cfg, rc)
	if err != nil {
		return err
	}

	printGenerateSummary(result)

	if generateOutputDir != "" {
		if err := result.Files.WriteTo(generateOutputDir); err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("Wrote %d files to %s", len(result.Files), generateOutputDir))
	}

	if generateJSONPath != "" {
		if err := writeFileMapJSON(result, generateJSONPath); err != nil {
			return err
		}
	}

	return nil
}

// printGenerateSummary prints run statistics.
func printGenerateSummary(result *scaffold.Result) {
	var total int64
	for _, p := range result.Files.Paths() {
		total += int64(len(result.Files[p].Content))
	}

	printSuccess(fmt.Sprintf("Captured %d files (%s)", len(result.Files), formatBytes(total)))
	if len(result.Removed) > 0 {
		printInfo(fmt.Sprintf("Removed %d configured files", len(result.Removed)))
	}
	if result.UIInit == scaffold.UIInitFailedNonFatal {
		printWarning("UI library initialization failed; project generated without it")
	}
	printInfo(fmt.Sprintf("Content digest: %016x", result.Digest))
}

// writeFileMapJSON emits the captured file map as JSON to path, or to
// stdout when path is "-".
func writeFileMapJSON(result *scaffold.Result, path string) error {
	data, err := json.MarshalIndent(result.Files, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal file map: %w", err)
	}
	data = append(data, '\n')

	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file map JSON: %w", err)
	}
	printSuccess(fmt.Sprintf("Wrote file map JSON to %s", path))
	return nil
}
