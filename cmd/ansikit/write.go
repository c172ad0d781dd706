package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ansikit/pkg/console"
	"github.com/alexisbeaulieu97/ansikit/pkg/style"
)

func newWriteCmd(app *AppContext) *cobra.Command {
	var (
		sf   styleFlags
		wrap int
	)

	cmd := &cobra.Command{
		Use:   "write TEXT...",
		Short: "Write styled text to stdout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := sf.writeOptions()
			if err != nil {
				return err
			}
			if wrap > 0 {
				opts = append(opts, console.WithWidth(wrap))
			}
			return app.Console.Write(strings.Join(args, " "), opts...)
		},
	}

	addStyleFlags(cmd, &sf)
	cmd.Flags().IntVar(&wrap, "wrap", 0, "Wrap the text every N characters")
	return cmd
}

func newErrorCmd(app *AppContext) *cobra.Command {
	var (
		fg      string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "error TEXT...",
		Short: "Write a message to stderr in the error color",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []console.WriteOption
			switch {
			case noColor:
				opts = append(opts, console.WithForeground(style.NoColor))
			case fg != "":
				opts = append(opts, console.WithNamedStyle(fg, ""))
			}
			return app.Console.Error(strings.Join(args, " "), opts...)
		},
	}

	cmd.Flags().StringVar(&fg, "fg", "", "Override the configured error color")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Write the message without styling")
	return cmd
}

func newStyleCmd(app *AppContext) *cobra.Command {
	var (
		sf    styleFlags
		quote bool
	)

	cmd := &cobra.Command{
		Use:   "style TEXT",
		Short: "Print TEXT wrapped in escape sequences, without a trailing newline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Console.Style(args[0], sf.fg, sf.bg, sf.formats...)
			if err != nil {
				return err
			}
			if quote {
				out = fmt.Sprintf("%q", out)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	addStyleFlags(cmd, &sf)
	cmd.Flags().BoolVarP(&quote, "quote", "q", false, "Print the result as a Go-quoted string")
	return cmd
}
