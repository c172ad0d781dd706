package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ansikit/pkg/console"
)

func newBoxCmd(app *AppContext) *cobra.Command {
	var (
		sf     styleFlags
		border string
		width  int
	)

	cmd := &cobra.Command{
		Use:   "box TEXT...",
		Short: "Frame text inside a border",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []console.BoxOption
			if border != "" {
				opts = append(opts, console.BoxBorder(border))
			}
			if width > 0 {
				opts = append(opts, console.BoxWidth(width))
			}
			if sf.set() {
				spec, err := sf.spec()
				if err != nil {
					return err
				}
				opts = append(opts, console.BoxStyle(spec))
			}
			return app.Console.Box(strings.Join(args, " "), opts...)
		},
	}

	addStyleFlags(cmd, &sf)
	cmd.Flags().StringVar(&border, "border", "", "Border preset: ascii, double, normal, rounded, thick")
	cmd.Flags().IntVar(&width, "box-width", 0, "Total box width (default terminal width)")
	return cmd
}
