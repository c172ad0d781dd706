// Package style composes ANSI escape sequences around text.
//
// A Spec holds at most one foreground, at most one background and an ordered
// list of formats. Rendering always terminates the text with the reset
// sequence, even when nothing was styled:
//
//	style.Render("foo", style.Spec{})                          // "foo\x1b[0m"
//	style.Render("foo", style.Spec{Foreground: style.Red})     // "\x1b[0;31mfoo\x1b[0m"
//	out, err := style.Style("foo", "red", "blue", "bold")      // names resolve or fail
package style

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	// ESC starts every control sequence.
	ESC = "\x1b"
	// Reset clears all styling.
	Reset = ESC + "[0m"
)

// Spec describes the styling applied to a piece of text.
type Spec struct {
	Foreground Color
	Background Background
	Formats    []Format
}

// IsZero reports whether the spec applies no styling at all.
func (s Spec) IsZero() bool {
	return s.Foreground == NoColor && s.Background == NoBackground && len(s.Formats) == 0
}

// Prefix returns the escape codes that open the spec, without the reset.
func (s Spec) Prefix() string {
	var b strings.Builder
	if s.Foreground != NoColor {
		b.WriteString(ESC + "[0;")
		b.WriteString(strconv.Itoa(int(s.Foreground)))
		b.WriteByte('m')
	}
	if s.Background != NoBackground {
		b.WriteString(ESC + "[")
		b.WriteString(strconv.Itoa(int(s.Background)))
		b.WriteByte('m')
	}
	for _, f := range s.Formats {
		b.WriteString(ESC + "[")
		b.WriteString(strconv.Itoa(int(f)))
		b.WriteByte('m')
	}
	return b.String()
}

// Render wraps text with the spec's escape codes and the reset sequence.
func Render(text string, spec Spec) string {
	return spec.Prefix() + text + Reset
}

// ParseSpec resolves color and format names. Empty fg or bg leave the
// corresponding slot unset. Format names have no such escape: an empty
// format name is unknown. The first unknown name fails the whole spec.
func ParseSpec(fg, bg string, formats []string) (Spec, error) {
	var spec Spec
	if fg != "" {
		c, err := ParseColor(fg)
		if err != nil {
			return Spec{}, err
		}
		spec.Foreground = c
	}
	if bg != "" {
		c, err := ParseBackground(bg)
		if err != nil {
			return Spec{}, err
		}
		spec.Background = c
	}
	if len(formats) > 0 {
		spec.Formats = make([]Format, 0, len(formats))
		for _, name := range formats {
			f, err := ParseFormat(name)
			if err != nil {
				return Spec{}, err
			}
			spec.Formats = append(spec.Formats, f)
		}
	}
	return spec, nil
}

// Style renders text using color and format names. An empty fg or bg means
// "no color" and is not an error, whereas every entry in formats must name a
// format; "" among the formats fails with an InvalidValueError.
func Style(text, fg, bg string, formats ...string) (string, error) {
	spec, err := ParseSpec(fg, bg, formats)
	if err != nil {
		return "", err
	}
	return Render(text, spec), nil
}

// Strip removes every ANSI escape sequence from s.
func Strip(s string) string {
	return ansi.Strip(s)
}
