package txtclean

import (
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"
)

func writeCSV(w io.Writer, t *Table, opts RenderOptions) error {
	comma, size := utf8.DecodeRuneInString(string(opts.Separator))
	if size != len(opts.Separator) {
		return fmt.Errorf("%w: csv needs a single-character separator, got %q", ErrUnsupportedSeparator, opts.Separator)
	}
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if header := t.header(opts); header != nil {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	for _, row := range t.rows(opts) {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
