// Package table renders rows of values as an ASCII bordered table.
//
//	+----+------+
//	| ID | Name |
//	+----+------+
//	| 1  | John |
//	| 2  | Mary |
//	+----+------+
package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/ansikit/pkg/geometry"
)

// Layout holds the rendered cells and computed column widths of a table.
type Layout struct {
	Header []string
	Rows   [][]string
	Widths []int
}

// NewLayout renders every cell with fmt.Sprint and measures the columns.
// Widths are display widths so wide runes and styled cells line up.
func NewLayout(rows [][]any, header []any) Layout {
	layout := Layout{Rows: make([][]string, len(rows))}

	columns := len(header)
	for _, row := range rows {
		columns = max(columns, len(row))
	}
	layout.Widths = make([]int, columns)

	if header != nil {
		layout.Header = layout.measure(header)
	}
	for i, row := range rows {
		layout.Rows[i] = layout.measure(row)
	}
	return layout
}

func (l *Layout) measure(values []any) []string {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = fmt.Sprint(v)
		l.Widths[i] = max(l.Widths[i], geometry.DisplayWidth(cells[i]))
	}
	return cells
}

// Border returns the horizontal rule, without line terminator.
func (l Layout) Border() string {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range l.Widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	return b.String()
}

// Line renders one row of cells. Missing trailing cells render empty.
func (l Layout) Line(cells []string) string {
	var b strings.Builder
	b.WriteByte('|')
	for i, w := range l.Widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteByte(' ')
		b.WriteString(geometry.PadRight(cell, w))
		b.WriteString(" |")
	}
	return b.String()
}

// String renders the whole table: top border, optional header followed by
// a border, rows, bottom border, and a trailing blank line. A table without
// columns renders nothing.
func (l Layout) String() string {
	if len(l.Widths) == 0 {
		return ""
	}

	var b strings.Builder
	border := l.Border()
	writeLine := func(s string) {
		b.WriteString(s)
		b.WriteString(geometry.EOL)
	}

	writeLine(border)
	if l.Header != nil {
		writeLine(l.Line(l.Header))
		writeLine(border)
	}
	for _, row := range l.Rows {
		writeLine(l.Line(row))
	}
	writeLine(border)
	b.WriteString(geometry.EOL)
	return b.String()
}

// Format renders rows with an optional header. A nil header omits the
// header section.
func Format(rows [][]any, header []any) string {
	return NewLayout(rows, header).String()
}

// Render writes the table to w in a single write.
func Render(w io.Writer, rows [][]any, header []any) error {
	out := Format(rows, header)
	if out == "" {
		return nil
	}
	_, err := io.WriteString(w, out)
	return err
}
