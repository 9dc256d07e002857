package txtclean

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Decode converts raw file bytes to text. Valid UTF-8 is returned as is.
// Anything else is decoded as Latin-1, which maps every byte to a rune and
// therefore never fails; fallback reports that this happened.
func Decode(data []byte) (text string, fallback bool) {
	if utf8.Valid(data) {
		return string(data), false
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// Latin-1 covers all 256 byte values; keep the lossy conversion
		// as a last resort anyway.
		return strings.ToValidUTF8(string(data), string(utf8.RuneError)), true
	}
	return string(out), true
}

// SplitLines splits text into lines. "\r\n" and each of "\n", "\r", "\v",
// "\f", "\x1c", "\x1d", "\x1e", U+0085, U+2028 and U+2029 end a line. A
// trailing line terminator does not produce an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for text != "" {
		i := strings.IndexFunc(text, isLineBreak)
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i])
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '\r' && strings.HasPrefix(text[i+size:], "\n") {
			size++
		}
		text = text[i+size:]
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// Prepare applies the caller-side slicing that runs before detection:
// the first skip lines are dropped, then, when marker is not blank and
// occurs in a remaining line (case-insensitive), everything before that
// line is dropped too. offset is the index in the original lines of the
// returned slice's first line.
func Prepare(lines []string, skip int, marker string) (sliced []string, offset int) {
	if skip > 0 {
		if skip > len(lines) {
			skip = len(lines)
		}
		lines = lines[skip:]
		offset = skip
	}
	if strings.TrimSpace(marker) == "" {
		return lines, offset
	}
	m := strings.ToLower(marker)
	for i, ln := range lines {
		if strings.Contains(strings.ToLower(ln), m) {
			return lines[i:], offset + i
		}
	}
	return lines, offset
}
