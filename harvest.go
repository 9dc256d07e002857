package txtclean

import (
	"fmt"
	"strings"
)

// Harvest builds the table found at loc. Rows are read from loc.Data until
// a blank line, a "[section]" line, or the end of input. Lines with fewer
// than two tokens or containing one of the indicator substrings are
// skipped. Each row is then reconciled against the column count: one cell
// short is padded, longer rows are truncated, and rows two or more cells
// short are dropped.
//
// Without a header row the columns are named col1..colN after the widest
// row. A location that was not found yields an empty table.
func Harvest(lines []string, loc Location, h Heuristics) *Table {
	h = h.normalized()
	t := &Table{}
	if !loc.Found() || loc.Data >= len(lines) {
		return t
	}
	if loc.HasHeader() && loc.Header < len(lines) {
		t.Columns = Tokenize(lines[loc.Header])
	}

	raw := harvestRows(lines[loc.Data:], h)

	if len(t.Columns) == 0 {
		t.Columns = syntheticColumns(widest(raw))
	}
	t.Rows = reconcile(raw, len(t.Columns))
	return t
}

func harvestRows(lines []string, h Heuristics) [][]string {
	indicators := lowerAll(h.Indicators)
	var rows [][]string
	for _, ln := range lines {
		trimmed := strings.TrimSpace(ln)
		if isBoundary(trimmed) {
			break
		}
		tokens := Tokenize(trimmed)
		if len(tokens) < 2 || containsAny(strings.ToLower(trimmed), indicators) {
			continue
		}
		if h.StopOnWidthDrift && len(rows) > 0 && abs(len(tokens)-len(rows[0])) > h.WidthTolerance {
			break
		}
		rows = append(rows, tokens)
	}
	return rows
}

// isBoundary reports whether a trimmed line ends a table: a blank line or a
// new "[section]" tag.
func isBoundary(trimmed string) bool {
	if trimmed == "" {
		return true
	}
	return strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func lowerAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(s)
	}
	return out
}

func widest(rows [][]string) int {
	n := 0
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

func syntheticColumns(n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = fmt.Sprintf("col%d", i+1)
	}
	return cols
}

// reconcile fits every row to width cells.
func reconcile(rows [][]string, width int) [][]string {
	var out [][]string
	for _, row := range rows {
		if fitted, ok := reconcileRow(row, width); ok {
			out = append(out, fitted)
		}
	}
	return out
}

func reconcileRow(row []string, width int) ([]string, bool) {
	switch {
	case len(row) == width:
		return row, true
	case len(row) == width-1:
		padded := make([]string, width)
		copy(padded, row)
		return padded, true
	case len(row) > width:
		return row[:width:width], true
	default:
		return nil, false
	}
}
