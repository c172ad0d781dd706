// Package console is the entry point of ansikit. A Console writes styled,
// wrapped, tabulated and boxed text to a standard and an error sink, and owns
// the live-line state for its standard sink.
//
// The package-level functions operate on a process-wide Console bound to
// os.Stdout and os.Stderr:
//
//	console.Write("Hello!", console.WithForeground(style.Green))
//	console.Table([][]any{{1, "John"}, {2, "Mary"}}, []any{"ID", "Name"})
//	console.LiveLine("50%", false)
//
// Tests and embedders construct their own Console with New and capture sinks.
package console

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/ansikit/pkg/box"
	"github.com/alexisbeaulieu97/ansikit/pkg/geometry"
	"github.com/alexisbeaulieu97/ansikit/pkg/liveline"
	"github.com/alexisbeaulieu97/ansikit/pkg/sink"
	"github.com/alexisbeaulieu97/ansikit/pkg/style"
	"github.com/alexisbeaulieu97/ansikit/pkg/table"
)

// Control sequences written by the console.
const (
	Bell        = "\x07"
	ClearScreen = "\x1b[H\x1b[2J"
)

// DefaultErrorColor is the foreground Error uses unless told otherwise.
const DefaultErrorColor = style.Red

// Console writes formatted output. It is not safe for concurrent use.
type Console struct {
	stdout     sink.Sink
	stderr     sink.Sink
	probe      geometry.Probe
	live       *liveline.Line
	errorColor style.Color
	width      int
	boxBorder  string
	boxStyle   style.Spec
	logger     zerolog.Logger
}

// Option configures a Console.
type Option func(*Console)

// WithStdout replaces the standard sink.
func WithStdout(s sink.Sink) Option {
	return func(c *Console) { c.stdout = s }
}

// WithStderr replaces the error sink.
func WithStderr(s sink.Sink) Option {
	return func(c *Console) { c.stderr = s }
}

// WithProbe replaces width detection.
func WithProbe(p geometry.Probe) Option {
	return func(c *Console) { c.probe = p }
}

// WithErrorColor sets the default foreground of Error. style.NoColor
// disables it.
func WithErrorColor(color style.Color) Option {
	return func(c *Console) { c.errorColor = color }
}

// WithDefaultWidth sets the width used when the terminal cannot be measured.
func WithDefaultWidth(width int) Option {
	return func(c *Console) { c.width = width }
}

// WithBoxStyle sets the default border preset and colors of Box.
func WithBoxStyle(border string, spec style.Spec) Option {
	return func(c *Console) {
		c.boxBorder = border
		c.boxStyle = spec
	}
}

// WithLogger sets the logger for debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Console) { c.logger = logger }
}

// New creates a Console. Without options it writes to the process's stdout
// and stderr and measures the real terminal.
func New(opts ...Option) *Console {
	c := &Console{
		stdout:     sink.Stdout(),
		stderr:     sink.Stderr(),
		probe:      geometry.DefaultProbe(),
		errorColor: DefaultErrorColor,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.probe.Logger = c.logger
	c.live = liveline.New(c.stdout).WithLogger(c.logger)
	return c
}

// Stdout returns the standard sink.
func (c *Console) Stdout() sink.Sink { return c.stdout }

// Stderr returns the error sink.
func (c *Console) Stderr() sink.Sink { return c.stderr }

// Width returns the terminal width, falling back to def, then to the
// console's default width, then to geometry.DefaultWidth.
func (c *Console) Width(def int) int {
	if def <= 0 {
		def = c.width
	}
	return c.probe.Width(def)
}

// Wrap wraps text at width, or at the terminal width when width is not
// positive.
func (c *Console) Wrap(text string, width int) string {
	if width <= 0 {
		width = c.Width(0)
	}
	return geometry.Wrap(text, width)
}

// IsWindows reports what the console's probe believes about the platform.
func (c *Console) IsWindows() bool {
	return c.probe.IsWindows != nil && c.probe.IsWindows()
}

// Style renders text with color and format names.
func (c *Console) Style(text, fg, bg string, formats ...string) (string, error) {
	return style.Style(text, fg, bg, formats...)
}

// Write styles text, wraps it when a width is given, and writes it with a
// line terminator to the standard sink.
func (c *Console) Write(text string, opts ...WriteOption) error {
	w, err := resolveWrite(opts)
	if err != nil {
		return err
	}
	if err := c.live.Close(); err != nil {
		return err
	}
	return c.emit(c.stdout, w.format(text))
}

// Error writes like Write to the error sink. The default error color
// applies unless a foreground option overrides it.
func (c *Console) Error(text string, opts ...WriteOption) error {
	w, err := resolveWrite(append([]WriteOption{WithForeground(c.errorColor)}, opts...))
	if err != nil {
		return err
	}
	if err := c.live.Close(); err != nil {
		return err
	}
	return c.emit(c.stderr, w.format(text))
}

// Beep rings the terminal bell n times.
func (c *Console) Beep(n int) error {
	if n < 1 {
		return nil
	}
	_, err := io.WriteString(c.stdout, strings.Repeat(Bell, n))
	return err
}

// NewLine writes n line terminators.
func (c *Console) NewLine(n int) error {
	if n < 1 {
		return nil
	}
	c.live.Reset()
	_, err := io.WriteString(c.stdout, strings.Repeat(geometry.EOL, n))
	return err
}

// Clear clears the screen and moves the cursor home.
func (c *Console) Clear() error {
	c.live.Reset()
	_, err := io.WriteString(c.stdout, ClearScreen)
	return err
}

// LiveLine redraws the current line with text; finalize terminates it.
func (c *Console) LiveLine(text string, finalize bool) error {
	return c.live.Update(text, finalize)
}

// Table renders rows, with an optional header, to the standard sink.
func (c *Console) Table(rows [][]any, header []any) error {
	if err := c.live.Close(); err != nil {
		return err
	}
	return table.Render(c.stdout, rows, header)
}

// Box frames text. Without options the box spans the terminal width and
// uses the console's default border and colors.
func (c *Console) Box(text string, opts ...BoxOption) error {
	b := boxSettings{border: c.boxBorder, spec: c.boxStyle}
	for _, opt := range opts {
		opt(&b)
	}
	if b.width <= 0 {
		b.width = c.Width(0)
	}

	o := box.Options{Width: b.width, Style: b.spec}
	if b.border != "" {
		border, err := box.BorderByName(b.border)
		if err != nil {
			return err
		}
		o.Border = border
	}

	if err := c.live.Close(); err != nil {
		return err
	}
	return box.Render(c.stdout, text, o)
}

func (c *Console) emit(s sink.Sink, text string) error {
	_, err := io.WriteString(s, text+geometry.EOL)
	return err
}

// BoxOption adjusts a single Box call.
type BoxOption func(*boxSettings)

type boxSettings struct {
	width  int
	border string
	spec   style.Spec
}

// BoxWidth sets the total box width.
func BoxWidth(width int) BoxOption {
	return func(b *boxSettings) { b.width = width }
}

// BoxBorder selects a border preset by name.
func BoxBorder(name string) BoxOption {
	return func(b *boxSettings) { b.border = name }
}

// BoxStyle colors the box.
func BoxStyle(spec style.Spec) BoxOption {
	return func(b *boxSettings) { b.spec = spec }
}
