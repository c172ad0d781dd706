// Package box frames a paragraph of text inside a border.
package box

import (
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	ansierrors "github.com/alexisbeaulieu97/ansikit/pkg/errors"
	"github.com/alexisbeaulieu97/ansikit/pkg/geometry"
	"github.com/alexisbeaulieu97/ansikit/pkg/style"
)

// EnumBorder names the border enumeration in InvalidValue errors.
const EnumBorder = "border"

// DefaultBorderName names the preset used when Options.Border is empty.
const DefaultBorderName = "normal"

// Overhead is the number of columns the frame adds around the content: a
// border and a padding space on each side.
const Overhead = 4

var borders = map[string]lipgloss.Border{
	"normal":  lipgloss.NormalBorder(),
	"rounded": lipgloss.RoundedBorder(),
	"double":  lipgloss.DoubleBorder(),
	"thick":   lipgloss.ThickBorder(),
	"ascii":   lipgloss.ASCIIBorder(),
}

// BorderByName returns a border preset.
func BorderByName(name string) (lipgloss.Border, error) {
	b, ok := borders[name]
	if !ok {
		return lipgloss.Border{}, ansierrors.NewInvalidValueError(name, EnumBorder)
	}
	return b, nil
}

// BorderNames lists the available presets.
func BorderNames() []string {
	names := make([]string, 0, len(borders))
	for name := range borders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options controls the frame.
type Options struct {
	// Width is the total box width including the frame. Non-positive
	// values use geometry.DefaultWidth.
	Width int
	// Border defaults to the DefaultBorderName preset.
	Border lipgloss.Border
	// Style, when set, colors every line of the box.
	Style style.Spec
}

// Lines wraps text to the content width of opts and frames it. Wrapping
// counts terminal cells, so no line is wider than opts.Width unless a single
// rune does not fit. The returned lines carry no terminator.
func Lines(text string, opts Options) []string {
	width := opts.Width
	if width <= 0 {
		width = geometry.DefaultWidth
	}
	content := max(width-Overhead, 1)

	border := opts.Border
	if border == (lipgloss.Border{}) {
		border = lipgloss.NormalBorder()
	}

	var wrapped []string
	for _, paragraph := range strings.Split(text, "\n") {
		wrapped = append(wrapped, geometry.CellChunks(strings.TrimRight(paragraph, "\r"), content)...)
	}

	inner := 0
	for _, line := range wrapped {
		inner = max(inner, geometry.DisplayWidth(line))
	}

	out := make([]string, 0, len(wrapped)+2)
	out = append(out, border.TopLeft+strings.Repeat(border.Top, inner+2)+border.TopRight)
	for _, line := range wrapped {
		out = append(out, border.Left+" "+geometry.PadRight(line, inner)+" "+border.Right)
	}
	out = append(out, border.BottomLeft+strings.Repeat(border.Bottom, inner+2)+border.BottomRight)

	if !opts.Style.IsZero() {
		for i, line := range out {
			out[i] = style.Render(line, opts.Style)
		}
	}
	return out
}

// Format renders the framed box, one terminated line per row.
func Format(text string, opts Options) string {
	return strings.Join(Lines(text, opts), geometry.EOL) + geometry.EOL
}

// Render writes the framed box to w.
func Render(w io.Writer, text string, opts Options) error {
	_, err := io.WriteString(w, Format(text, opts))
	return err
}
