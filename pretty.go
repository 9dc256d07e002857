package txtclean

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// rule is a horizontal line: left edge, fill repeated over each column,
// join between columns, right edge.
type rule struct {
	left, fill, join, right string
}

func glyphs(s string) *rule {
	r := []rune(s)
	return &rule{left: string(r[0]), fill: string(r[1]), join: string(r[2]), right: string(r[3])}
}

// frame describes how a border style draws rows and rules. A nil rule is
// not drawn. pad is how far rules extend past the cell width.
type frame struct {
	open, sep, close string
	top, mid, bottom *rule
	pad              int
}

var frames = map[BorderStyle]frame{
	BorderRounded: {
		open: "│ ", sep: " │ ", close: " │",
		top: glyphs("╭─┬╮"), mid: glyphs("├─┼┤"), bottom: glyphs("╰─┴╯"),
		pad: 2,
	},
	BorderASCII: {
		open: "| ", sep: " | ", close: " |",
		top: glyphs("+-++"), mid: glyphs("+-++"), bottom: glyphs("+-++"),
		pad: 2,
	},
	BorderNone: {
		sep: "  ",
		mid: &rule{fill: "-", join: "  "},
	},
}

type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

// writePretty renders an aligned, human-readable table. Columns whose
// cells are all numeric are right-aligned.
func writePretty(w io.Writer, t *Table, opts RenderOptions) error {
	header := t.header(opts)
	rows := t.rows(opts)
	if len(header) == 0 && len(rows) == 0 {
		return nil
	}

	widths := computeWidths(colCount(header, rows), header, rows)
	aligns := columnAlignments(len(widths), rows)
	f, ok := frames[opts.Border]
	if !ok {
		f = frames[BorderRounded]
	}

	lines := make([]string, 0, len(rows)+4)
	lines = f.top.appendTo(lines, widths, f.pad)
	if len(header) > 0 {
		lines = append(lines, f.row(header, widths, aligns))
		lines = f.mid.appendTo(lines, widths, f.pad)
	}
	for _, row := range rows {
		lines = append(lines, f.row(row, widths, aligns))
	}
	lines = f.bottom.appendTo(lines, widths, f.pad)

	for _, ln := range lines {
		if _, err := fmt.Fprintln(w, ln); err != nil {
			return err
		}
	}
	return nil
}

func (r *rule) appendTo(lines []string, widths []int, pad int) []string {
	if r == nil {
		return lines
	}
	fills := make([]string, len(widths))
	for i, width := range widths {
		fills[i] = strings.Repeat(r.fill, width+pad)
	}
	return append(lines, r.left+strings.Join(fills, r.join)+r.right)
}

// row lays out cells to widths. Trailing spaces are trimmed so borderless
// rows do not end in padding.
func (f frame) row(cells []string, widths []int, aligns []alignment) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = alignCell(cellAt(cells, i), width, aligns[i])
	}
	return strings.TrimRight(f.open+strings.Join(parts, f.sep)+f.close, " ")
}

func colCount(header []string, rows [][]string) int {
	return max(len(header), widest(rows))
}

// computeWidths returns the display width of every column.
func computeWidths(numCols int, header []string, rows [][]string) []int {
	widths := make([]int, numCols)
	measure := func(cells []string) {
		for i, cell := range cells {
			if i < numCols {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}
	return widths
}

// columnAlignments right-aligns columns whose non-empty cells are all
// numeric. A table without rows is left-aligned.
func columnAlignments(numCols int, rows [][]string) []alignment {
	aligns := make([]alignment, numCols)
	for col := range aligns {
		numeric := len(rows) > 0
		for _, row := range rows {
			if cell := cellAt(row, col); cell != "" && !IsNumeric(cell) {
				numeric = false
				break
			}
		}
		if numeric {
			aligns[col] = alignRight
		}
	}
	return aligns
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

func alignCell(s string, width int, align alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	if align == alignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}
