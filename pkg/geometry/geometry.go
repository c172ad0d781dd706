// Package geometry measures the terminal and fits text to it.
package geometry

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// DefaultWidth is used whenever the terminal cannot be measured.
const DefaultWidth = 80

// Probe answers the platform questions width detection depends on. Both
// functions may be replaced, e.g. to pretend to be on Windows in tests.
type Probe struct {
	IsWindows func() bool
	Query     func() (int, error)
	Logger    zerolog.Logger
}

// DefaultProbe inspects the running process and its stdout.
func DefaultProbe() Probe {
	return Probe{
		IsWindows: IsWindows,
		Query:     StdoutWidth,
		Logger:    zerolog.Nop(),
	}
}

// IsWindows reports whether the process runs on Windows.
func IsWindows() bool {
	return runtime.GOOS == "windows"
}

// StdoutWidth queries the column count of the terminal attached to stdout.
func StdoutWidth() (int, error) {
	return FileWidth(os.Stdout)
}

// FileWidth queries the column count of the terminal behind f.
func FileWidth(f *os.File) (int, error) {
	if f == nil {
		return 0, fmt.Errorf("no file to query")
	}
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return 0, fmt.Errorf("%s is not a terminal", f.Name())
	}
	width, _, err := term.GetSize(int(fd))
	if err != nil {
		return 0, fmt.Errorf("query terminal size: %w", err)
	}
	return width, nil
}

// Width returns the terminal width. On Windows, or when the query fails or
// reports a non-positive width, it returns def, or DefaultWidth if def is not
// positive.
func (p Probe) Width(def int) int {
	if def <= 0 {
		def = DefaultWidth
	}

	if p.IsWindows != nil && p.IsWindows() {
		return def
	}
	if p.Query == nil {
		return def
	}

	width, err := p.Query()
	if err != nil {
		p.Logger.Debug().Err(err).Int("fallback", def).Msg("terminal width unavailable")
		return def
	}
	if width <= 0 {
		p.Logger.Debug().Int("reported", width).Int("fallback", def).Msg("terminal reported invalid width")
		return def
	}
	return width
}

// Wrap wraps text at width, or at the detected terminal width when width is
// not positive.
func (p Probe) Wrap(text string, width int) string {
	if width <= 0 {
		width = p.Width(0)
	}
	return Wrap(text, width)
}

// Chunks splits text into consecutive pieces of width runes. The last piece
// may be shorter; no empty trailing piece is produced.
func Chunks(text string, width int) []string {
	if width <= 0 || text == "" {
		return []string{text}
	}

	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+width-1)/width)
	for start := 0; start < len(runes); start += width {
		end := min(start+width, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// CellChunks splits text into pieces that each occupy at most width terminal
// cells. Escape sequences are kept intact and count as zero; wide runes count
// as two. A rune wider than width gets a piece of its own.
func CellChunks(text string, width int) []string {
	if width <= 0 || text == "" {
		return []string{text}
	}

	chunks := strings.Split(ansi.HardwrapWc(text, width, true), "\n")
	if len(chunks) > 1 && chunks[0] == "" && !strings.HasPrefix(text, "\n") {
		chunks = chunks[1:]
	}
	return chunks
}

// Wrap splits text every width runes and joins the pieces with EOL. Wrapping
// is positional, not word aware.
func Wrap(text string, width int) string {
	return strings.Join(Chunks(text, width), EOL)
}

// DisplayWidth returns the number of terminal cells s occupies. Escape
// sequences count as zero and wide runes as two.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// PadRight appends spaces to s until it occupies width cells.
func PadRight(s string, width int) string {
	gap := width - DisplayWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
