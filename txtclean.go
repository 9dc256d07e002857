package txtclean

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNotFound             = errors.New("table not found")
	ErrEmptyTable           = errors.New("table has no valid rows")
	ErrUnsupportedFormat    = errors.New("unsupported format")
	ErrUnsupportedSeparator = errors.New("unsupported separator")
)

// Format represents an output format.
type Format string

const (
	Text     Format = "text"
	CSV      Format = "csv"
	Pretty   Format = "table"
	Markdown Format = "markdown"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
)

var formats = []Format{Text, CSV, Pretty, Markdown, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name. The empty string selects [Text].
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return Text, nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Separator is the delimiter placed between cells of delimited output.
type Separator string

const (
	Tab       Separator = "\t"
	Comma     Separator = ","
	Semicolon Separator = ";"
	Space     Separator = " "
)

var separatorNames = []struct {
	name string
	sep  Separator
}{
	{"tab", Tab},
	{"comma", Comma},
	{"semicolon", Semicolon},
	{"space", Space},
}

// Name returns the separator's flag name, or the raw string for a
// separator outside the named set.
func (s Separator) Name() string {
	for _, n := range separatorNames {
		if n.sep == s {
			return n.name
		}
	}
	return string(s)
}

// Separators returns the supported separator names in display order.
func Separators() []string {
	out := make([]string, len(separatorNames))
	for i, n := range separatorNames {
		out[i] = n.name
	}
	return out
}

// ParseSeparator accepts a separator name (tab, comma, semicolon, space,
// case-insensitive) or the literal character. The empty string selects
// [Tab]. A literal "\t" escape is also accepted.
func ParseSeparator(s string) (Separator, error) {
	if s == "" {
		return Tab, nil
	}
	for _, n := range separatorNames {
		if strings.EqualFold(s, n.name) || s == string(n.sep) {
			return n.sep, nil
		}
	}
	if s == `\t` {
		return Tab, nil
	}
	return "", fmt.Errorf("%w: %q (expected %s)", ErrUnsupportedSeparator, s, strings.Join(Separators(), ", "))
}

// BorderStyle controls border characters of the [Pretty] format.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
)

// RenderOptions controls how a table is serialized.
type RenderOptions struct {
	// Separator joins cells in Text and CSV output. Default: tab.
	Separator Separator

	// IncludeHeader emits the column names before the rows.
	IncludeHeader bool

	// DecimalCommaToDot replaces every comma inside a cell with a period.
	// It does not tell decimal commas from other commas. Column names are
	// left untouched.
	DecimalCommaToDot bool

	// MaxRows caps the number of rendered rows. Zero renders all rows.
	MaxRows int

	// Border selects the border of Pretty output.
	Border BorderStyle
}

// DefaultRenderOptions returns tab-separated output with a header row.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Separator: Tab, IncludeHeader: true}
}

// Write renders t in format f to w.
func Write(w io.Writer, f Format, t *Table, opts RenderOptions) error {
	if opts.Separator == "" {
		opts.Separator = Tab
	}
	switch f {
	case Text, "":
		return writeText(w, t, opts)
	case CSV:
		return writeCSV(w, t, opts)
	case Pretty:
		return writePretty(w, t, opts)
	case Markdown:
		return writeMarkdown(w, t, opts)
	case JSON:
		return writeJSON(w, t, opts)
	case JSONL:
		return writeJSONL(w, t, opts)
	case YAML:
		return writeYAML(w, t, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders t in format f and returns the bytes.
func Marshal(f Format, t *Table, opts RenderOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
