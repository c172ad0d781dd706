package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ansikit/internal/config"
	"github.com/alexisbeaulieu97/ansikit/internal/logger"
	"github.com/alexisbeaulieu97/ansikit/pkg/console"
	"github.com/alexisbeaulieu97/ansikit/pkg/geometry"
	"github.com/alexisbeaulieu97/ansikit/pkg/sink"
)

// probeOverride lets tests pin terminal detection.
var probeOverride *geometry.Probe

// AppContext bundles the services every command uses.
type AppContext struct {
	Config  *config.Config
	Logger  *logger.Logger
	Console *console.Console
}

func (a *AppContext) init(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.width > 0 {
		cfg.Width = flags.width
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	log = log.WithFields(map[string]any{"command": cmd.Name()})

	opts, err := cfg.ConsoleOptions(log.Zerolog())
	if err != nil {
		return err
	}
	opts = append(opts,
		console.WithStdout(sink.NewStream("stdout", cmd.OutOrStdout())),
		console.WithStderr(sink.NewStream("stderr", cmd.ErrOrStderr())),
	)
	if probeOverride != nil {
		opts = append(opts, console.WithProbe(*probeOverride))
	}

	a.Config = cfg
	a.Logger = log
	a.Console = console.New(opts...)
	log.Debug("console ready")
	return nil
}
