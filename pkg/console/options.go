package console

import (
	"github.com/alexisbeaulieu97/ansikit/pkg/geometry"
	"github.com/alexisbeaulieu97/ansikit/pkg/style"
)

// WriteOption adjusts a single Write or Error call.
type WriteOption func(*writeSettings) error

type writeSettings struct {
	spec  style.Spec
	width int
}

// WithForeground sets the text color. style.NoColor removes it.
func WithForeground(c style.Color) WriteOption {
	return func(w *writeSettings) error {
		w.spec.Foreground = c
		return nil
	}
}

// WithBackground sets the background color.
func WithBackground(b style.Background) WriteOption {
	return func(w *writeSettings) error {
		w.spec.Background = b
		return nil
	}
}

// WithFormats appends text formats, in order.
func WithFormats(formats ...style.Format) WriteOption {
	return func(w *writeSettings) error {
		w.spec.Formats = append(w.spec.Formats, formats...)
		return nil
	}
}

// WithSpec replaces the whole style.
func WithSpec(spec style.Spec) WriteOption {
	return func(w *writeSettings) error {
		w.spec = spec
		return nil
	}
}

// WithNamedStyle resolves color and format names. Empty names leave the
// current value untouched; unknown names fail the write.
func WithNamedStyle(fg, bg string, formats ...string) WriteOption {
	return func(w *writeSettings) error {
		spec, err := style.ParseSpec(fg, bg, formats)
		if err != nil {
			return err
		}
		if fg != "" {
			w.spec.Foreground = spec.Foreground
		}
		if bg != "" {
			w.spec.Background = spec.Background
		}
		w.spec.Formats = append(w.spec.Formats, spec.Formats...)
		return nil
	}
}

// WithWidth wraps the text every width characters.
func WithWidth(width int) WriteOption {
	return func(w *writeSettings) error {
		w.width = width
		return nil
	}
}

func resolveWrite(opts []WriteOption) (writeSettings, error) {
	var w writeSettings
	for _, opt := range opts {
		if err := opt(&w); err != nil {
			return writeSettings{}, err
		}
	}
	return w, nil
}

// format wraps the raw text, then styles the result. Unstyled text is left
// bare.
func (w writeSettings) format(text string) string {
	if w.width > 0 {
		text = geometry.Wrap(text, w.width)
	}
	if w.spec.IsZero() {
		return text
	}
	return style.Render(text, w.spec)
}
