package config

import (
	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/ansikit/pkg/console"
	"github.com/alexisbeaulieu97/ansikit/pkg/style"
)

// ConsoleOptions translates the configuration into console options.
func (c *Config) ConsoleOptions(logger zerolog.Logger) ([]console.Option, error) {
	errorColor := style.NoColor
	if c.ErrorColor != "" {
		parsed, err := style.ParseColor(c.ErrorColor)
		if err != nil {
			return nil, err
		}
		errorColor = parsed
	}

	spec, err := c.BoxSpec()
	if err != nil {
		return nil, err
	}

	return []console.Option{
		console.WithDefaultWidth(c.Width),
		console.WithErrorColor(errorColor),
		console.WithBoxStyle(c.Box.Border, spec),
		console.WithLogger(logger),
	}, nil
}
