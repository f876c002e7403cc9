package main

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themekit/internal/tui"
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the page with the animated logo",
		Long:  `Keep the page on screen with a spinning logo. Falls back to a single render when output is not a terminal.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				app.log.Info("output is not a terminal, rendering once")
				return writePage(out, app.page, "text")
			}

			program := tea.NewProgram(
				tui.NewModel(app.page, app.log),
				tea.WithAltScreen(),
				tea.WithOutput(out),
				tea.WithContext(cmd.Context()),
			)
			_, err = program.Run()
			return err
		},
	}

	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
