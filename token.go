package txtclean

import (
	"regexp"
	"strings"
	"unicode"
)

var numericRE = regexp.MustCompile(`^[+-]?((\d+(\.\d*)?)|(\.\d+))([eE][+-]?\d+)?$`)

// Tokenize splits line on runs of whitespace. Blank input yields an empty
// slice.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// IsNumeric reports whether tok is a plain decimal number: optional sign,
// digits with an optional fraction (or a bare ".5" fraction), and an
// optional exponent. Locale forms such as "1,5" are not numeric.
func IsNumeric(tok string) bool {
	return numericRE.MatchString(tok)
}

// NumericRatio returns the fraction of tokens that are numeric.
func NumericRatio(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	n := 0
	for _, tok := range tokens {
		if IsNumeric(tok) {
			n++
		}
	}
	return float64(n) / float64(len(tokens))
}

// IsHeaderLike reports whether line looks like a row of column names:
// at least two tokens, at least two of them alphabetic with no digits, and
// no token carrying a colon (colons mark "key: value" metadata).
//
//	Time Temperature Weight Weight   -> true
//	Sample: TGA-01                   -> false
func IsHeaderLike(line string) bool {
	tokens := Tokenize(line)
	if len(tokens) < 2 {
		return false
	}
	alpha := 0
	for _, tok := range tokens {
		if strings.Contains(tok, ":") {
			return false
		}
		if hasLetter(tok) && !hasDigit(tok) {
			alpha++
		}
	}
	return alpha >= 2
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, isDigit) >= 0
}

// isDigit also accepts superscript and subscript digits, so units such as
// "mm²" carry a digit.
func isDigit(r rune) bool {
	switch {
	case unicode.IsDigit(r):
		return true
	case r == '⁰', r == '¹', r == '²', r == '³':
		return true
	case r >= '⁴' && r <= '⁹', r >= '₀' && r <= '₉':
		return true
	}
	return false
}

// numericLine reports whether tokens look like a data row under the given
// ratio threshold.
func numericLine(tokens []string, minRatio float64) bool {
	return len(tokens) >= 2 && NumericRatio(tokens) >= minRatio
}
