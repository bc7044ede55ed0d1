package token

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrInvalidString is returned by Unquote for text that is not a string literal.
var ErrInvalidString = errors.New("invalid string literal")

const lowerHex = "0123456789abcdef"

// Quote returns the double-quoted JavaScript string literal for s, escaped
// the way JSON.stringify escapes strings. U+2028 and U+2029 are escaped as
// well so the result is a valid literal in every edition of the language.
//
// Invalid UTF-8 sequences are replaced with U+FFFD.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028', '\u2029':
			writeUnicodeEscape(&b, r)
		default:
			if r < 0x20 {
				writeUnicodeEscape(&b, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func writeUnicodeEscape(b *strings.Builder, r rune) {
	b.WriteString(`\u`)
	b.WriteByte(lowerHex[r>>12&0xf])
	b.WriteByte(lowerHex[r>>8&0xf])
	b.WriteByte(lowerHex[r>>4&0xf])
	b.WriteByte(lowerHex[r&0xf])
}

// Unquote interprets lit as a single- or double-quoted JavaScript string
// literal and returns the string value it denotes.
func Unquote(lit string) (string, error) {
	if len(lit) < 2 {
		return "", ErrInvalidString
	}
	delim := lit[0]
	if delim != '"' && delim != '\'' || lit[len(lit)-1] != delim {
		return "", ErrInvalidString
	}
	body := lit[1 : len(lit)-1]

	var str strings.Builder
	str.Grow(len(body))
	for i := 0; i < len(body); {
		c := body[i]
		switch c {
		case delim, '\r', '\n':
			return "", fmt.Errorf("%w: unescaped %q at offset %d", ErrInvalidString, c, i+1)
		case '\\':
			n, err := readEscape(&str, body[i+1:])
			if err != nil {
				return "", fmt.Errorf("%w: %v at offset %d", ErrInvalidString, err, i+1)
			}
			i += 1 + n
		default:
			str.WriteByte(c)
			i++
		}
	}
	return str.String(), nil
}

// readEscape decodes the escape sequence following a backslash and returns
// the number of bytes consumed.
func readEscape(str *strings.Builder, s string) (int, error) {
	if s == "" {
		return 0, errors.New("unterminated escape")
	}
	chr, size := utf8.DecodeRuneInString(s)

	switch chr {
	case '\u000a', '\u2028', '\u2029':
		// Line continuation.
		return size, nil
	case '\u000d':
		if len(s) > 1 && s[1] == '\n' {
			return 2, nil
		}
		return 1, nil
	case 'b':
		str.WriteRune('\u0008')
	case 'f':
		str.WriteRune('\u000c')
	case 'n':
		str.WriteRune('\u000a')
	case 'r':
		str.WriteRune('\u000d')
	case 't':
		str.WriteRune('\u0009')
	case 'v':
		str.WriteRune('\u000b')
	case '0':
		if len(s) > 1 && isDecimalDigit(s[1]) {
			return 0, errors.New("octal escape sequence")
		}
		str.WriteRune(0)
	case 'x':
		if len(s) < 3 {
			return 0, errors.New("short hexadecimal escape")
		}
		hi, ok1 := hexDigit(s[1])
		lo, ok2 := hexDigit(s[2])
		if !ok1 || !ok2 {
			return 0, errors.New("invalid hexadecimal escape")
		}
		str.WriteRune(hi<<4 | lo)
		return 3, nil
	case 'u':
		r, n, err := unicodeEscape(s[1:])
		if err != nil {
			return 0, err
		}
		n++
		if utf16.IsSurrogate(r) && len(s) > n+1 && s[n] == '\\' && s[n+1] == 'u' {
			if r2, n2, err := unicodeEscape(s[n+2:]); err == nil {
				if pair := utf16.DecodeRune(r, r2); pair != utf8.RuneError {
					str.WriteRune(pair)
					return n + 2 + n2, nil
				}
			}
		}
		str.WriteRune(r)
		return n, nil
	default:
		if isDecimalDigit(byte(chr)) && chr < utf8.RuneSelf {
			return 0, errors.New("octal escape sequence")
		}
		str.WriteRune(chr)
	}
	return size, nil
}

// unicodeEscape decodes XXXX or {X...} and returns the consumed length.
func unicodeEscape(s string) (rune, int, error) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return 0, 0, errors.New("invalid code point escape")
		}
		var r rune
		for i := 1; i < end; i++ {
			d, ok := hexDigit(s[i])
			if !ok {
				return 0, 0, errors.New("invalid code point escape")
			}
			r = r<<4 | d
			if r > utf8.MaxRune {
				return 0, 0, errors.New("code point out of range")
			}
		}
		return r, end + 1, nil
	}
	if len(s) < 4 {
		return 0, 0, errors.New("short unicode escape")
	}
	var r rune
	for i := 0; i < 4; i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return 0, 0, errors.New("invalid unicode escape")
		}
		r = r<<4 | d
	}
	return r, 4, nil
}

func hexDigit(b byte) (rune, bool) {
	switch {
	case '0' <= b && b <= '9':
		return rune(b - '0'), true
	case 'a' <= b && b <= 'f':
		return rune(b - 'a' + 10), true
	case 'A' <= b && b <= 'F':
		return rune(b - 'A' + 10), true
	}
	return 0, false
}

func isDecimalDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
