package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/housebox/pkg/buildinfo"
)

// Execute runs the housebox CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (generate,
// plan, presets), configures logging based on the --verbose flag, and
// executes the command tree against ctx, which carries signal-driven
// cancellation from main.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "housebox",
		Short:        "housebox generates laser-cutting SVG for finger-jointed house boxes",
		Long:         `housebox computes the full panel geometry of a house-shaped box (floor, walls, gable walls, roof) with kerf-compensated finger joints, places architectural components like windows, doors and chimneys, packs the panels onto material sheets and writes a cutting-ready SVG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newPlanCmd())
	root.AddCommand(newPresetsCmd())

	return root.ExecuteContext(ctx)
}
