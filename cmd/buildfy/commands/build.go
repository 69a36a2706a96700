package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/buildfy/internal/app"
	"go.trai.ch/buildfy/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [source.py]",
		Short: "Package a Python script into an executable",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source string
			if len(args) > 0 {
				source = args[0]
			}

			flags := cmd.Flags()
			name, _ := flags.GetString("name")
			icon, _ := flags.GetString("icon")
			out, _ := flags.GetString("out")
			bundleID, _ := flags.GetString("bundle-id")
			inspect, _ := flags.GetBool("inspect")
			inspectOnError, _ := flags.GetBool("inspect-on-error")
			outputMode, _ := flags.GetString("output-mode")
			ci, _ := flags.GetBool("ci")
			watch, _ := flags.GetBool("watch")
			noInstall, _ := flags.GetBool("no-install")

			// If --ci is set, override output-mode to "linear"
			if ci {
				outputMode = domain.OutputModeLinear
			}

			return c.app.Build(cmd.Context(), source, app.BuildOptions{
				Name:           name,
				Icon:           icon,
				OutputDir:      out,
				BundleID:       bundleID,
				OneFile:        changedBool(cmd, "onefile"),
				Windowed:       changedBool(cmd, "windowed"),
				Clean:          changedBool(cmd, "clean"),
				OutputMode:     outputMode,
				Inspect:        inspect,
				InspectOnError: inspectOnError,
				Watch:          watch,
				NoInstall:      noInstall,
			})
		},
	}

	cmd.Flags().StringP("name", "n", "", "Application name (defaults to the script name)")
	cmd.Flags().String("icon", "", "Icon file (.ico on Windows, .icns on macOS)")
	cmd.Flags().StringP("out", "o", "", "Output directory for the dist and build folders")
	cmd.Flags().Bool("onefile", true, "Bundle everything into a single executable")
	cmd.Flags().Bool("windowed", true, "Do not open a console window")
	cmd.Flags().Bool("clean", true, "Clean the PyInstaller cache before building")
	cmd.Flags().String("bundle-id", "", "macOS bundle identifier")
	cmd.Flags().String("output-mode", "", "Output mode: auto, tui, linear or ci")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	cmd.Flags().BoolP("inspect", "i", false, "Inspect the TUI after build completion (prevents auto-exit)")
	cmd.Flags().Bool("inspect-on-error", true, "Keep TUI open if build fails")
	cmd.Flags().BoolP("watch", "w", false, "Rebuild whenever the script changes")
	cmd.Flags().Bool("no-install", false, "Do not install PyInstaller when it is missing")
	return cmd
}

// changedBool returns the flag value only when it was set explicitly.
func changedBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}
