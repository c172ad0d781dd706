package box

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	ansierrors "github.com/alexisbeaulieu97/ansikit/pkg/errors"
	"github.com/alexisbeaulieu97/ansikit/pkg/geometry"
	"github.com/alexisbeaulieu97/ansikit/pkg/style"
)

const lorem = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Etiam" +
	" sem lacus, rutrum vel neque eu, aliquam aliquet neque."

func TestLinesASCII(t *testing.T) {
	t.Parallel()

	got := Lines("Hello world", Options{Width: 9, Border: lipgloss.ASCIIBorder()})
	require.Equal(t, []string{
		"+-------+",
		"| Hello |",
		"|  worl |",
		"| d     |",
		"+-------+",
	}, got)
}

func TestLinesShrinkToContent(t *testing.T) {
	t.Parallel()

	got := Lines("hi", Options{Width: 40, Border: lipgloss.ASCIIBorder()})
	require.Equal(t, []string{"+----+", "| hi |", "+----+"}, got)
}

func TestLinesKeepParagraphs(t *testing.T) {
	t.Parallel()

	got := Lines("one\nthree", Options{Width: 20})
	require.Equal(t, []string{
		"┌───────┐",
		"│ one   │",
		"│ three │",
		"└───────┘",
	}, got)
}

func TestFormatWrapsLongText(t *testing.T) {
	t.Parallel()

	out := Format(lorem, Options{Width: 30, Border: lipgloss.RoundedBorder()})
	rows := strings.Split(strings.TrimSuffix(out, geometry.EOL), geometry.EOL)

	require.True(t, strings.HasPrefix(rows[0], "╭"))
	require.True(t, strings.HasPrefix(rows[len(rows)-1], "╰"))
	for _, row := range rows {
		require.Equal(t, 30, geometry.DisplayWidth(row), row)
	}
	require.Contains(t, out, "Lorem")
}

func TestLinesWrapWideRunesByCells(t *testing.T) {
	t.Parallel()

	got := Lines("日本語日本語日本語", Options{Width: 10})
	require.Equal(t, []string{
		"┌────────┐",
		"│ 日本語 │",
		"│ 日本語 │",
		"│ 日本語 │",
		"└────────┘",
	}, got)
	for _, row := range got {
		require.Equal(t, 10, geometry.DisplayWidth(row), row)
	}
}

func TestLinesKeepPreStyledTextIntact(t *testing.T) {
	t.Parallel()

	red := style.Render("abcdef", style.Spec{Foreground: style.Red})
	got := Lines(red, Options{Width: 7, Border: lipgloss.ASCIIBorder()})
	require.Len(t, got, 4)
	for _, row := range got {
		require.Equal(t, 7, geometry.DisplayWidth(row), row)
	}
	require.Equal(t, "| \x1b[0;31mabc |", got[1])
}

func TestStyledLines(t *testing.T) {
	t.Parallel()

	spec := style.Spec{Foreground: style.White, Background: style.OnBlue}
	got := Lines("x", Options{Width: 10, Border: lipgloss.ASCIIBorder(), Style: spec})
	require.Equal(t, style.Render("| x |", spec), got[1])
	require.Equal(t, 5, geometry.DisplayWidth(got[0]))
}

func TestNarrowWidthIsClamped(t *testing.T) {
	t.Parallel()

	got := Lines("ab", Options{Width: 1, Border: lipgloss.ASCIIBorder()})
	require.Equal(t, []string{"+---+", "| a |", "| b |", "+---+"}, got)
}

func TestBorderByName(t *testing.T) {
	t.Parallel()

	b, err := BorderByName("double")
	require.NoError(t, err)
	require.Equal(t, lipgloss.DoubleBorder(), b)

	_, err = BorderByName("dotted")
	var invalid *ansierrors.InvalidValueError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, EnumBorder, invalid.Enum)

	require.Equal(t, []string{"ascii", "double", "normal", "rounded", "thick"}, BorderNames())
}

func TestRender(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	require.NoError(t, Render(buf, lorem, Options{}))
	require.Contains(t, buf.String(), "Lorem")
	require.True(t, strings.HasSuffix(buf.String(), "┘"+geometry.EOL))
}
