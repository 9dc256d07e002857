package txtclean

import (
	"fmt"
	"io"
	"strings"
)

// writeMarkdown renders a GitHub-flavored table. Markdown requires a
// header row, so column names are always written.
func writeMarkdown(w io.Writer, t *Table, opts RenderOptions) error {
	if t == nil || len(t.Columns) == 0 {
		return nil
	}
	header := escapePipes(t.Columns)
	src := t.rows(opts)
	rows := make([][]string, len(src))
	for i, row := range src {
		rows[i] = escapePipes(row)
	}
	numCols := len(header)

	// Minimum width 3 for the alignment markers.
	widths := computeWidths(numCols, header, rows)
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}
	aligns := columnAlignments(numCols, src)

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}

	sep := make([]string, numCols)
	for i, width := range widths {
		if aligns[i] == alignRight {
			sep[i] = strings.Repeat("-", width-1) + ":"
		} else {
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func escapePipes(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return out
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cellAt(cells, i), width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
