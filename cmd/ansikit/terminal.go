package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBeepCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "beep [N]",
		Short: "Ring the terminal bell N times",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := countArg(args)
			if err != nil {
				return err
			}
			return app.Console.Beep(n)
		},
	}
}

func newNewLineCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "newline [N]",
		Short: "Write N line terminators",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := countArg(args)
			if err != nil {
				return err
			}
			return app.Console.NewLine(n)
		},
	}
}

func newClearCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the screen and move the cursor home",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Console.Clear()
		},
	}
}

func newWidthCmd(app *AppContext) *cobra.Command {
	var def int

	cmd := &cobra.Command{
		Use:   "width",
		Short: "Print the detected terminal width",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.Console.Width(def))
			return err
		},
	}

	cmd.Flags().IntVar(&def, "default", 0, "Width to report when the terminal cannot be measured")
	return cmd
}
