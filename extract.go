package txtclean

import "fmt"

// Options configures [Extract].
type Options struct {
	// Skip drops this many leading lines before any heuristic runs.
	Skip int

	// Heuristics tunes detection. Its Marker also slices the input: when
	// present, detection starts at the first line containing it.
	Heuristics Heuristics
}

// DefaultOptions returns options with [DefaultHeuristics] and no skip.
func DefaultOptions() Options {
	return Options{Heuristics: DefaultHeuristics()}
}

// Result is the outcome of [Extract].
type Result struct {
	// Table is the extracted table.
	Table *Table

	// Location is relative to the prepared lines; use
	// Location.Absolute(Offset) for line numbers in the original file.
	Location Location

	// Offset is the number of lines dropped by skip and marker slicing.
	Offset int

	// Lines is the line count of the decoded input.
	Lines int

	// Fallback reports that the input was not valid UTF-8 and was decoded
	// as Latin-1.
	Fallback bool
}

// Extract decodes data, prepares its lines, locates the table and
// harvests its rows.
//
// It returns [ErrNotFound] when no table start was identified, and
// [ErrEmptyTable] when a start was found but no row survived
// reconciliation. Both come with a non-nil Result so callers can report
// how far detection got; Result.Table is nil for ErrNotFound.
func Extract(data []byte, opts Options) (*Result, error) {
	text, fallback := Decode(data)
	all := SplitLines(text)
	h := opts.Heuristics.normalized()
	if opts.Skip < 0 {
		return nil, fmt.Errorf("skip must not be negative, got %d", opts.Skip)
	}

	lines, offset := Prepare(all, opts.Skip, h.Marker)
	res := &Result{
		Location: Locate(lines, h),
		Offset:   offset,
		Lines:    len(all),
		Fallback: fallback,
	}
	if !res.Location.Found() {
		return res, ErrNotFound
	}
	res.Table = Harvest(lines, res.Location, h)
	if res.Table.Empty() {
		return res, fmt.Errorf("%w: start at line %d", ErrEmptyTable, res.Location.Data+offset+1)
	}
	return res, nil
}
