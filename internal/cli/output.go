package cli

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/genesis3lib/code-react/internal/events"
)

// applyOutputFlags configures pterm from the global flags.
func applyOutputFlags() {
	if globalNoColor {
		pterm.DisableColor()
	}
}

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	pterm.Println(msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	pterm.Success.Println(msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	pterm.Warning.Println(msg)
}

// printError prints an error message to stderr
func printError(err error) {
	pterm.Error.WithWriter(os.Stderr).Printfln("Error: %v", err)
}

// formatBytes formats bytes as human-readable string
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// termSink renders pipeline diagnostics on the terminal.
type termSink struct{}

// Emit implements events.Sink.
func (termSink) Emit(e events.Event) {
	switch e.Level {
	case events.LevelWarn:
		pterm.Warning.Printfln("[%s] %s", e.Component, e.Message)
	default:
		if globalQuiet {
			return
		}
		pterm.Info.Printfln("[%s] %s", e.Component, e.Message)
	}
}
