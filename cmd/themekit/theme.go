package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themekit/internal/ui/components"
)

type themeReport struct {
	Mode  components.Mode  `yaml:"mode"`
	Theme components.Theme `yaml:"theme"`
}

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Print the active theme and its global rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(themeReport{Mode: app.scope.Mode(), Theme: app.scope.Theme()})
			if err != nil {
				return fmt.Errorf("encode theme: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, string(data))
			fmt.Fprintln(out)
			for _, rule := range app.scope.Rules() {
				fmt.Fprintln(out, rule.CSS())
			}
			return nil
		},
	}

	return cmd
}
