package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ansikit/internal/progressbar"
)

type progressOptions struct {
	Steps int
	Total int64
	Delay time.Duration
	Bar   bool
}

func newProgressCmd(app *AppContext) *cobra.Command {
	opts := progressOptions{}

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Demonstrate a live-updating progress line",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Steps < 1 {
				return fmt.Errorf("steps must be at least 1")
			}
			return runProgress(cmd, app, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Steps, "steps", 10, "Number of updates")
	cmd.Flags().Int64Var(&opts.Total, "total", 1_000_000, "Item count the progress counts up to")
	cmd.Flags().DurationVar(&opts.Delay, "delay", 200*time.Millisecond, "Pause between updates")
	cmd.Flags().BoolVar(&opts.Bar, "bar", true, "Draw a progress bar in front of the counter")
	return cmd
}

func runProgress(cmd *cobra.Command, app *AppContext, opts progressOptions) error {
	bar := progressbar.New(opts.Total,
		progressbar.WithWidth(app.Config.Progress.Width),
		progressbar.WithBar(opts.Bar),
	)
	ctx := cmd.Context()

	counts := bar.Steps(opts.Steps)
	for i, done := range counts {
		finalize := i == len(counts)-1
		if err := app.Console.LiveLine(bar.View(done), finalize); err != nil {
			return err
		}
		if finalize || opts.Delay <= 0 {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(opts.Delay):
		}
	}
	return nil
}
