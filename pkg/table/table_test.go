package table

import (
	"bytes"
	stdErrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/ansikit/pkg/geometry"
)

func lines(ls ...string) string {
	return strings.Join(ls, geometry.EOL) + geometry.EOL
}

func TestFormatWithoutHeader(t *testing.T) {
	t.Parallel()

	got := Format([][]any{{1, "John"}, {2, "Mary"}}, nil)
	want := lines(
		"+---+------+",
		"| 1 | John |",
		"| 2 | Mary |",
		"+---+------+",
		"",
	)
	require.Equal(t, want, got)
}

func TestFormatWithHeader(t *testing.T) {
	t.Parallel()

	got := Format([][]any{{1, "John"}, {2, "Mary"}}, []any{"ID", "Name"})
	want := lines(
		"+----+------+",
		"| ID | Name |",
		"+----+------+",
		"| 1  | John |",
		"| 2  | Mary |",
		"+----+------+",
		"",
	)
	require.Equal(t, want, got)
}

func TestFormatRaggedRows(t *testing.T) {
	t.Parallel()

	got := Format([][]any{{"a"}, {"b", "longer", true}}, []any{"x", "y"})
	want := lines(
		"+---+--------+------+",
		"| x | y      |      |",
		"+---+--------+------+",
		"| a |        |      |",
		"| b | longer | true |",
		"+---+--------+------+",
		"",
	)
	require.Equal(t, want, got)
}

func TestFormatMeasuresDisplayWidth(t *testing.T) {
	t.Parallel()

	got := Format([][]any{{"日本"}, {"ab"}}, nil)
	want := lines(
		"+------+",
		"| 日本 |",
		"| ab   |",
		"+------+",
		"",
	)
	require.Equal(t, want, got)
}

func TestFormatIgnoresEscapeSequencesInWidths(t *testing.T) {
	t.Parallel()

	red := "\x1b[0;31mab\x1b[0m"
	got := Format([][]any{{red}, {"abc"}}, nil)
	want := lines(
		"+-----+",
		"| "+red+"  |",
		"| abc |",
		"+-----+",
		"",
	)
	require.Equal(t, want, got)
}

func TestFormatWithoutColumnsIsEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rows   [][]any
		header []any
	}{
		{name: "nothing"},
		{name: "empty header", header: []any{}},
		{name: "single empty row", rows: [][]any{{}}},
		{name: "empty rows under empty header", rows: [][]any{{}, {}}, header: []any{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, "", Format(tt.rows, tt.header))

			buf := &bytes.Buffer{}
			require.NoError(t, Render(buf, tt.rows, tt.header))
			require.Zero(t, buf.Len())
		})
	}
}

func TestLayoutWidths(t *testing.T) {
	t.Parallel()

	layout := NewLayout([][]any{{1, "John"}, {22, "Al"}}, []any{"ID"})
	require.Equal(t, []int{2, 4}, layout.Widths)
	require.Equal(t, "+----+------+", layout.Border())
	require.Equal(t, "| ID |      |", layout.Line(layout.Header))
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, stdErrors.New("closed") }

func TestRender(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	require.NoError(t, Render(&b, [][]any{{1}}, nil))
	require.Equal(t, lines("+---+", "| 1 |", "+---+", ""), b.String())

	require.Error(t, Render(errWriter{}, [][]any{{1}}, nil))
	require.NoError(t, Render(errWriter{}, nil, nil))
}
