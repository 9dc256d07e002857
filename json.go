package txtclean

import (
	"encoding/json"
	"io"
)

// document is the shape of JSON and YAML output.
type document struct {
	Columns []string   `json:"columns,omitempty" yaml:"columns,omitempty"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

func newDocument(t *Table, opts RenderOptions) document {
	rows := t.rows(opts)
	if rows == nil {
		rows = [][]string{}
	}
	return document{Columns: t.header(opts), Rows: rows}
}

func writeJSON(w io.Writer, t *Table, opts RenderOptions) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newDocument(t, opts))
}
