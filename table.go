package txtclean

import (
	"fmt"
	"io"
	"strings"
)

// Table is an extracted table: column names and rows of equal width.
// Column names need not be unique. A Table is not modified by rendering.
type Table struct {
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// Summary is the size of a table, for user feedback.
type Summary struct {
	Columns int
	Rows    int
}

// String returns e.g. "3 columns, 120 rows".
func (s Summary) String() string {
	return fmt.Sprintf("%d %s, %d %s", s.Columns, plural(s.Columns, "column"), s.Rows, plural(s.Rows, "row"))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// Summary returns the column and row counts of t.
func (t *Table) Summary() Summary {
	return Summary{Columns: len(t.Columns), Rows: len(t.Rows)}
}

// Empty reports whether t has no rows.
func (t *Table) Empty() bool { return t == nil || len(t.Rows) == 0 }

// Render writes t as delimited text: an optional header line, then one
// line per row, each terminated by a newline.
func (t *Table) Render(w io.Writer, opts RenderOptions) error {
	return Write(w, Text, t, opts)
}

// Marshal returns t rendered as delimited text.
func (t *Table) Marshal(opts RenderOptions) ([]byte, error) {
	return Marshal(Text, t, opts)
}

// header returns the column names when opts asks for them.
func (t *Table) header(opts RenderOptions) []string {
	if t == nil || !opts.IncludeHeader || len(t.Columns) == 0 {
		return nil
	}
	return t.Columns
}

// rows returns the rows to render, capped by MaxRows and with decimal
// commas replaced when requested. The table's own rows are never
// modified.
func (t *Table) rows(opts RenderOptions) [][]string {
	if t == nil {
		return nil
	}
	rows := t.Rows
	if opts.MaxRows > 0 && len(rows) > opts.MaxRows {
		rows = rows[:opts.MaxRows]
	}
	if !opts.DecimalCommaToDot {
		return rows
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		fixed := make([]string, len(row))
		for j, cell := range row {
			fixed[j] = strings.ReplaceAll(cell, ",", ".")
		}
		out[i] = fixed
	}
	return out
}
