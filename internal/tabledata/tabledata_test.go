package tabledata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	ansierrors "github.com/alexisbeaulieu97/ansikit/pkg/errors"
	"github.com/alexisbeaulieu97/ansikit/pkg/table"
)

func TestParseYAML(t *testing.T) {
	t.Parallel()

	doc, err := Parse("people.yaml", []byte("header: [ID, Name]\nrows:\n  - [1, John]\n  - [2, Mary]\n"), FormatYAML, false)
	require.NoError(t, err)
	require.Equal(t, []any{"ID", "Name"}, doc.Header)
	require.Len(t, doc.Rows, 2)

	out := table.Format(doc.Rows, doc.Header)
	require.Contains(t, out, "| 1  | John |")
}

func TestParseCSV(t *testing.T) {
	t.Parallel()

	data := []byte("ID,Name\n1,John\n2,Mary,extra\n")

	doc, err := Parse("people.csv", data, FormatCSV, true)
	require.NoError(t, err)
	require.Equal(t, []any{"ID", "Name"}, doc.Header)
	require.Equal(t, [][]any{{"1", "John"}, {"2", "Mary", "extra"}}, doc.Rows)

	doc, err = Parse("people.csv", data, FormatCSV, false)
	require.NoError(t, err)
	require.Nil(t, doc.Header)
	require.Len(t, doc.Rows, 3)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		data   string
		format Format
		assert func(t *testing.T, err error)
	}{
		{
			name:   "yaml without rows",
			data:   "header: [A]\n",
			format: FormatYAML,
			assert: func(t *testing.T, err error) {
				var validationErr *ansierrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "rows", validationErr.Field)
				require.Equal(t, "rows failed validation for tag 'required'", validationErr.Message)
			},
		},
		{
			name:   "yaml with wrong shape",
			data:   "rows: 3\n",
			format: FormatYAML,
			assert: func(t *testing.T, err error) {
				var parseErr *ansierrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:   "csv with bad quoting",
			data:   "a,b\n\"c,d\n",
			format: FormatCSV,
			assert: func(t *testing.T, err error) {
				var parseErr *ansierrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:   "header only csv",
			data:   "a,b\n",
			format: FormatCSV,
			assert: func(t *testing.T, err error) {
				var validationErr *ansierrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "rows", validationErr.Field)
			},
		},
		{
			name:   "unknown format",
			data:   "x",
			format: Format("xml"),
			assert: func(t *testing.T, err error) {
				require.ErrorIs(t, err, ansierrors.ErrInvalidValue)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse("doc", []byte(tc.data), tc.format, true)
			tc.assert(t, err)
		})
	}
}

func TestRead(t *testing.T) {
	t.Parallel()

	doc, err := Read("-", strings.NewReader("rows:\n  - [a]\n"), FormatYAML, false)
	require.NoError(t, err)
	require.Equal(t, [][]any{{"a"}}, doc.Rows)
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	require.Equal(t, FormatCSV, DetectFormat("people.CSV"))
	require.Equal(t, FormatYAML, DetectFormat("people.yaml"))
	require.Equal(t, FormatYAML, DetectFormat("-"))
}
