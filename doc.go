// Package txtclean extracts the data table from semi-structured instrument
// export files and re-emits it as clean delimited text.
//
// Thermal-analysis exports (TRIOS, TA Instruments and similar) mix free-form
// metadata with whitespace-aligned tables. The package finds the first
// table, reconciles its row widths and renders it with a chosen separator.
//
// # Pipeline
//
// [Extract] runs the whole pipeline on raw file bytes:
//
//	res, err := txtclean.Extract(data, txtclean.DefaultOptions())
//	switch {
//	case errors.Is(err, txtclean.ErrNotFound):
//		// suggest a marker or a skip count
//	case errors.Is(err, txtclean.ErrEmptyTable):
//		// a start was found, but no row survived
//	}
//	res.Table.Render(os.Stdout, txtclean.DefaultRenderOptions())
//
// The stages are exported for callers that prepare lines themselves:
//
//   - [Decode] and [SplitLines] turn bytes into lines (UTF-8, Latin-1 fallback)
//   - [Prepare] drops a manual skip count and slices from a marker line
//   - [Locate] finds the header, units and data offsets
//   - [Harvest] reads and reconciles the rows into a [Table]
//
// # Detection
//
// [Locate] first looks for a header-like line after each occurrence of the
// marker (default "[step]") and after the start of input, expecting a units
// line and numeric data right behind it. Failing that it accepts the first
// run of numeric lines of similar width, with no header. The first
// plausible position wins. Thresholds live in [Heuristics].
//
// # Rendering
//
// [Table.Render] writes delimited text: an optional header line, then one
// line per row. [RenderOptions] selects the [Separator], header inclusion,
// decimal-comma substitution and a row cap for previews. [Write] and
// [Marshal] also support the csv, table, markdown, json, jsonl and yaml
// formats; use [ParseFormat] and [ParseSeparator] on flag values.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNotFound] — no table start was identified
//   - [ErrEmptyTable] — a start was found but no valid rows were harvested
//   - [ErrUnsupportedFormat] — unknown format name
//   - [ErrUnsupportedSeparator] — unknown separator name
package txtclean
