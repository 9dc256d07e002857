package txtclean

import (
	"fmt"
	"io"
	"strings"
)

func writeText(w io.Writer, t *Table, opts RenderOptions) error {
	sep := string(opts.Separator)
	if header := t.header(opts); header != nil {
		if _, err := fmt.Fprintln(w, strings.Join(header, sep)); err != nil {
			return err
		}
	}
	for _, row := range t.rows(opts) {
		if _, err := fmt.Fprintln(w, strings.Join(row, sep)); err != nil {
			return err
		}
	}
	return nil
}
