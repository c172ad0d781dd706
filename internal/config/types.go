package config

import (
	"github.com/alexisbeaulieu97/ansikit/pkg/box"
	"github.com/alexisbeaulieu97/ansikit/pkg/console"
	"github.com/alexisbeaulieu97/ansikit/pkg/style"
)

// Config represents the ansikit configuration document.
type Config struct {
	// Width is the fallback terminal width; 0 lets ansikit detect it.
	Width int `yaml:"width,omitempty" validate:"min=0,max=1000"`
	// ErrorColor is the foreground used by the error command. An empty
	// string disables styling.
	ErrorColor string         `yaml:"error_color" validate:"omitempty,foreground"`
	Box        BoxConfig      `yaml:"box,omitempty"`
	Progress   ProgressConfig `yaml:"progress,omitempty"`
	LogLevel   string         `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error disabled"`
}

// BoxConfig holds the default frame of the box command.
type BoxConfig struct {
	Border     string   `yaml:"border,omitempty" validate:"omitempty,border"`
	Foreground string   `yaml:"foreground,omitempty" validate:"omitempty,foreground"`
	Background string   `yaml:"background,omitempty" validate:"omitempty,background"`
	Formats    []string `yaml:"formats,omitempty" validate:"omitempty,dive,format"`
}

// ProgressConfig tunes the progress command.
type ProgressConfig struct {
	Width int `yaml:"width,omitempty" validate:"omitempty,min=10,max=200"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		ErrorColor: console.DefaultErrorColor.String(),
		Box:        BoxConfig{Border: box.DefaultBorderName},
		Progress:   ProgressConfig{Width: 40},
		LogLevel:   "warn",
	}
}

// BoxSpec resolves the box colors. Config values are validated, so an error
// here means the config was built by hand.
func (c *Config) BoxSpec() (style.Spec, error) {
	return style.ParseSpec(c.Box.Foreground, c.Box.Background, c.Box.Formats)
}
