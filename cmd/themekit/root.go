package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/config"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "themekit",
		Short:         "Render themed button components in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(config.KeyDocument, "", "YAML document with the theme and buttons (default: built-in page)")
	flags.String(config.KeyMode, "light", "Ambient palette: light or dark")
	flags.String(config.KeyColor, "auto", "Color profile: auto, ascii, ansi, ansi256 or truecolor")
	flags.String(config.KeyLogLevel, "warn", "Log level: trace, debug, info, warn, error or disabled")
	flags.BoolP(config.KeyVerbose, "v", false, "Enable verbose logging")

	cmd.Flags().String(config.KeyFormat, "text", "Output format: text, json or yaml")

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newThemeCmd())
	cmd.AddCommand(newDiffCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
