package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/showcase"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the page once",
		Long:  `Render the logo and buttons once, or print the resolved attribute sets and global rules with --format json|yaml.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd)
		},
	}

	cmd.Flags().String(config.KeyFormat, "text", "Output format: text, json or yaml")

	return cmd
}

func runRender(cmd *cobra.Command) error {
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}
	return writePage(cmd.OutOrStdout(), app.page, app.settings.Format)
}

func writePage(w io.Writer, page *showcase.Showcase, format string) error {
	if format == "text" {
		_, err := fmt.Fprintln(w, page.View())
		return err
	}
	return writeSnapshot(w, page.Snapshot(), format)
}

// writeSnapshot encodes a snapshot as JSON, or as YAML for any other format.
func writeSnapshot(w io.Writer, snap showcase.Snapshot, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
