package token

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// Lookup tables for ASCII identifier characters.
// Non-ASCII bytes (>= 128) are always false, branching to the Unicode path.
var asciiStart, asciiContinue [256]bool

func init() {
	for i := 0; i < 128; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

// ID_Start and ID_Continue. Pattern_Syntax and Pattern_White_Space code
// points are excluded at lookup.
var (
	idStart = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_ID_Start)

	idContinue = rangetable.Merge(
		unicode.L, unicode.Nl, unicode.Other_ID_Start,
		unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue,
	)
)

func isPattern(chr rune) bool {
	return unicode.In(chr, unicode.Pattern_Syntax, unicode.Pattern_White_Space)
}

// IsIdentifierStart reports whether chr may begin an IdentifierName.
func IsIdentifierStart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiStart[chr]
	}
	return unicode.Is(idStart, chr) && !isPattern(chr)
}

// IsIdentifierPart reports whether chr may continue an IdentifierName.
func IsIdentifierPart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiContinue[chr]
	}
	// ZWNJ and ZWJ
	if chr == '\u200c' || chr == '\u200d' {
		return true
	}
	return unicode.Is(idContinue, chr) && !isPattern(chr)
}

// IsIdentifierName reports whether s is a valid IdentifierName without
// escapes. Reserved words are identifier names.
func IsIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == utf8.RuneError {
			return false
		}
		if i == 0 {
			if !IsIdentifierStart(r) {
				return false
			}
		} else if !IsIdentifierPart(r) {
			return false
		}
	}
	return true
}

// IsCanonicalNumber reports whether s is exactly the text FormatNumber
// produces for some finite, non-negative number.
func IsCanonicalNumber(s string) bool {
	if s == "" || s[0] == '-' || s[0] == '+' {
		return false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return FormatNumber(v) == s && s != "NaN" && s != "Infinity"
}
