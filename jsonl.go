package txtclean

import (
	"encoding/json"
	"io"
)

// writeJSONL writes one JSON array per line: the column names first when
// requested, then every row.
func writeJSONL(w io.Writer, t *Table, opts RenderOptions) error {
	enc := json.NewEncoder(w)
	if header := t.header(opts); header != nil {
		if err := enc.Encode(header); err != nil {
			return err
		}
	}
	for _, row := range t.rows(opts) {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
