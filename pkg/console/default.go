package console

import "sync"

var (
	defaultOnce    sync.Once
	defaultConsole *Console
)

// Default returns the process-wide Console over os.Stdout and os.Stderr.
func Default() *Console {
	defaultOnce.Do(func() {
		defaultConsole = New()
	})
	return defaultConsole
}

// Write writes text to stdout through the default console.
func Write(text string, opts ...WriteOption) error {
	return Default().Write(text, opts...)
}

// Error writes text to stderr through the default console.
func Error(text string, opts ...WriteOption) error {
	return Default().Error(text, opts...)
}

// Beep rings the bell n times.
func Beep(n int) error {
	return Default().Beep(n)
}

// NewLine writes n line terminators.
func NewLine(n int) error {
	return Default().NewLine(n)
}

// Clear clears the screen.
func Clear() error {
	return Default().Clear()
}

// LiveLine redraws the current stdout line.
func LiveLine(text string, finalize bool) error {
	return Default().LiveLine(text, finalize)
}

// Table renders a table to stdout.
func Table(rows [][]any, header []any) error {
	return Default().Table(rows, header)
}

// Box frames text on stdout.
func Box(text string, opts ...BoxOption) error {
	return Default().Box(text, opts...)
}

// Style renders text with color and format names.
func Style(text, fg, bg string, formats ...string) (string, error) {
	return Default().Style(text, fg, bg, formats...)
}

// Width returns the terminal width, or def when it cannot be measured.
func Width(def int) int {
	return Default().Width(def)
}

// Wrap wraps text at width, or at the terminal width when width is not
// positive.
func Wrap(text string, width int) string {
	return Default().Wrap(text, width)
}
