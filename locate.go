package txtclean

import "strings"

// Absent marks a missing line offset in a [Location].
const Absent = -1

// Location is the result of [Locate]: line offsets of the header row, the
// units row and the first data row. When Header is present, Units and Data
// follow it directly. When Header is [Absent] but Data is not, Data is the
// start of a headerless numeric block.
type Location struct {
	Header int
	Units  int
	Data   int
}

// NotFound is the Location returned when no table could be identified.
var NotFound = Location{Header: Absent, Units: Absent, Data: Absent}

// Found reports whether a data start was identified.
func (l Location) Found() bool { return l.Data != Absent }

// HasHeader reports whether the table carries a column header row.
func (l Location) HasHeader() bool { return l.Header != Absent }

// Absolute shifts every present offset by offset, mapping a location in a
// sliced line sequence back to the original file.
func (l Location) Absolute(offset int) Location {
	shift := func(i int) int {
		if i == Absent {
			return Absent
		}
		return i + offset
	}
	return Location{Header: shift(l.Header), Units: shift(l.Units), Data: shift(l.Data)}
}

// DefaultMarker is the section tag TRIOS-style exports place before the
// column header row.
const DefaultMarker = "[step]"

// DefaultIndicators are the case-insensitive substrings that mark stray
// log or metadata lines interleaved with data rows.
var DefaultIndicators = []string{":", "segment", "started", "version", "entry", "log", "calibration"}

// Heuristics holds the tunable parameters of table detection and row
// harvesting. Zero numeric fields and a nil Indicators take their values
// from [DefaultHeuristics], so setting a single field keeps the rest at
// their defaults.
type Heuristics struct {
	// Marker anchors the header search. Matched case-insensitively as a
	// substring. Empty means only the start of input is tried.
	Marker string `yaml:"marker"`

	// MinNumericRatio is the share of numeric tokens a line needs to count
	// as a data row. Zero selects 0.6.
	MinNumericRatio float64 `yaml:"min_numeric_ratio"`

	// WidthTolerance is the allowed token-count difference between the
	// lines of a headerless numeric block. Zero selects 1.
	WidthTolerance int `yaml:"width_tolerance"`

	// BlockLength is how many lines after a headerless candidate must also
	// look numeric. Zero selects 5.
	BlockLength int `yaml:"block_length"`

	// Indicators are substrings that make a harvested line be skipped.
	Indicators []string `yaml:"indicators"`

	// StopOnWidthDrift ends harvesting at the first row whose width
	// differs from the first row by more than WidthTolerance.
	StopOnWidthDrift bool `yaml:"stop_on_width_drift"`
}

// DefaultHeuristics returns the heuristics tuned for thermal-analysis
// exports.
func DefaultHeuristics() Heuristics {
	indicators := make([]string, len(DefaultIndicators))
	copy(indicators, DefaultIndicators)
	return Heuristics{
		Marker:          DefaultMarker,
		MinNumericRatio: 0.6,
		WidthTolerance:  1,
		BlockLength:     5,
		Indicators:      indicators,
	}
}

// normalized replaces zero or negative numeric fields and a nil Indicators
// with the defaults. A zero Heuristics is replaced wholesale, Marker
// included.
func (h Heuristics) normalized() Heuristics {
	def := DefaultHeuristics()
	if h.MinNumericRatio == 0 && h.WidthTolerance == 0 && h.BlockLength == 0 && h.Indicators == nil && h.Marker == "" && !h.StopOnWidthDrift {
		return def
	}
	if h.MinNumericRatio <= 0 {
		h.MinNumericRatio = def.MinNumericRatio
	}
	if h.WidthTolerance <= 0 {
		h.WidthTolerance = def.WidthTolerance
	}
	if h.BlockLength <= 0 {
		h.BlockLength = def.BlockLength
	}
	if h.Indicators == nil {
		h.Indicators = def.Indicators
	}
	return h
}

// Locate finds where the table starts in lines. The first plausible
// position wins:
//
//  1. From every line containing the marker, and finally from line 0, the
//     first header-like line followed by a units line and two numeric data
//     lines.
//  2. Otherwise the first numeric line followed by BlockLength numeric lines
//     of similar width, with no header.
//
// When neither succeeds Locate returns [NotFound].
func Locate(lines []string, h Heuristics) Location {
	h = h.normalized()
	if loc, ok := locateHeader(lines, h); ok {
		return loc
	}
	if loc, ok := locateBlock(lines, h); ok {
		return loc
	}
	return NotFound
}

func locateHeader(lines []string, h Heuristics) (Location, bool) {
	for _, start := range anchors(lines, h.Marker) {
		for i := start; i < len(lines)-2; i++ {
			if !IsHeaderLike(lines[i]) {
				continue
			}
			data := i + 2
			if data+1 >= len(lines) {
				continue
			}
			if numericLine(Tokenize(lines[data]), h.MinNumericRatio) &&
				numericLine(Tokenize(lines[data+1]), h.MinNumericRatio) {
				return Location{Header: i, Units: i + 1, Data: data}, true
			}
		}
	}
	return NotFound, false
}

// anchors returns the indices of every line containing marker, followed by
// 0 so the whole input is always tried.
func anchors(lines []string, marker string) []int {
	var out []int
	if m := strings.ToLower(marker); m != "" {
		for i, ln := range lines {
			if strings.Contains(strings.ToLower(ln), m) {
				out = append(out, i)
			}
		}
	}
	return append(out, 0)
}

func locateBlock(lines []string, h Heuristics) (Location, bool) {
	for i := 0; i+h.BlockLength < len(lines); i++ {
		first := Tokenize(lines[i])
		if !numericLine(first, h.MinNumericRatio) {
			continue
		}
		if blockFollows(lines[i+1:i+1+h.BlockLength], len(first), h) {
			return Location{Header: Absent, Units: Absent, Data: i}, true
		}
	}
	return NotFound, false
}

func blockFollows(next []string, width int, h Heuristics) bool {
	for _, ln := range next {
		tokens := Tokenize(ln)
		if !numericLine(tokens, h.MinNumericRatio) {
			return false
		}
		if abs(len(tokens)-width) > h.WidthTolerance {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
