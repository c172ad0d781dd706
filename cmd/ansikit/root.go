package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	width      int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "ansikit",
		Short:         "ansikit writes styled, wrapped, boxed and tabulated text to the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file (default $ANSIKIT_CONFIG)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().IntVarP(&flags.width, "width", "w", 0, "Fallback terminal width when it cannot be detected")

	cmd.AddCommand(newWriteCmd(app))
	cmd.AddCommand(newErrorCmd(app))
	cmd.AddCommand(newStyleCmd(app))
	cmd.AddCommand(newTableCmd(app))
	cmd.AddCommand(newBoxCmd(app))
	cmd.AddCommand(newProgressCmd(app))
	cmd.AddCommand(newBeepCmd(app))
	cmd.AddCommand(newNewLineCmd(app))
	cmd.AddCommand(newClearCmd(app))
	cmd.AddCommand(newWidthCmd(app))
	cmd.AddCommand(newColorsCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
