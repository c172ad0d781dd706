package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ansikit/pkg/style"
)

func newColorsCmd(app *AppContext) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "List every color and format name with a sample",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sample := func(name string, spec style.Spec) string {
				if plain {
					return name
				}
				return style.Render(name, spec)
			}

			var rows [][]any
			for _, name := range style.ColorNames() {
				c, _ := style.ParseColor(name)
				rows = append(rows, []any{style.EnumForeground, int(c), sample(name, style.Spec{Foreground: c})})
			}
			for _, name := range style.BackgroundNames() {
				b, _ := style.ParseBackground(name)
				rows = append(rows, []any{style.EnumBackground, int(b), sample(name, style.Spec{Background: b})})
			}
			for _, name := range style.FormatNames() {
				f, _ := style.ParseFormat(name)
				rows = append(rows, []any{style.EnumFormat, int(f), sample(name, style.Spec{Formats: []style.Format{f}})})
			}

			return app.Console.Table(rows, []any{"Kind", "Code", "Name"})
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print names without styling")
	return cmd
}
