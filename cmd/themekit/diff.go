package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/pkg/diff"
)

func newDiffCmd() *cobra.Command {
	var against string

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare the resolved attributes of two documents",
		Long: `Resolve the active document and the one given with --against under the same
mode and print a unified diff of their attribute sets and global rules.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			other, err := loadDocument(against, app.log)
			if err != nil {
				return err
			}
			_, otherPage, err := mountDocument(other, app.scope.Mode(), app.log)
			if err != nil {
				return err
			}

			format := app.settings.Format
			var before, after bytes.Buffer
			if err := writeSnapshot(&before, app.page.Snapshot(), format); err != nil {
				return err
			}
			if err := writeSnapshot(&after, otherPage.Snapshot(), format); err != nil {
				return err
			}

			out, stats := diff.Unified(before.Bytes(), after.Bytes(), documentLabel(app.settings.DocumentPath), against)
			app.log.WithFields(map[string]any{"added": stats.Added, "removed": stats.Removed}).Info("documents compared")
			if stats.Empty() {
				fmt.Fprintln(cmd.OutOrStdout(), "no differences")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&against, "against", "", "Document to compare with")
	cmd.Flags().String(config.KeyFormat, "yaml", "Snapshot format to compare: json or yaml")
	_ = cmd.MarkFlagRequired("against")

	return cmd
}

func documentLabel(path string) string {
	if path == "" {
		return "(built-in)"
	}
	return path
}
