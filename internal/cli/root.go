package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/genesis3lib/code-react/internal/debug"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "code-react",
	Short: "React project scaffolding helper",
	Long: `code-react scaffolds a React web application from a declarative
module configuration.

Use "code-react generate <module-config>" to:
  1. Generate a starter project with create-vite
  2. Merge declared dependencies into the generated package.json
  3. Install packages and initialize the UI component library
  4. Capture the resulting tree with configured files removed

The captured tree can be written to a directory or emitted as JSON for a
calling orchestrator. Set CODE_REACT_SKIP_INSTALL=true to skip the install
and UI initialization steps (fast/test mode).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; absence is not an error.
		_ = godotenv.Load()

		if globalDebug {
			debug.SetDebug(true)
		}
		debug.SetNoColor(globalNoColor)
		applyOutputFlags()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&globalDebug, "debug", false, "Enable debug output")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
