// SPDX-License-Identifier: MPL-2.0

// Package cli contains the Cobra command tree of pumlgen.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// logLevel is the value of the --log-level flag.
	logLevel string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "pumlgen",
		Short: "Generate PlantUML libraries and diagrams",
		Long: TitleStyle.Render("pumlgen") + SubtitleStyle.Render(" - Generate PlantUML libraries and diagrams") + `

pumlgen turns a YAML manifest into a distributable PlantUML library:
sprites, element procedures, snippets and markdown documentation.
It also batch renders standalone .puml diagrams, skipping the ones
which did not change since the previous run.

` + SubtitleStyle.Render("Examples:") + `
  pumlgen library generate manifest.yaml   Generate the library artifacts
  pumlgen library schema                   Print the manifest JSON schema
  pumlgen diagram generate -s diagrams     Render the mutated diagrams`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "set the verbosity of the logs (debug, info, warn, error)")

	rootCmd.AddCommand(newLibraryCommand())
	rootCmd.AddCommand(newDiagramCommand())
	rootCmd.AddCommand(newCompletionCommand())
}

func setupLogging(level string) error {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("unknown log level %q", level)
	}
	log.SetLevel(parsed)
	log.SetReportTimestamp(false)
	return nil
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
