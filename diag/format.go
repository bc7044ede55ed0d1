package diag

import (
	"fmt"
	"strings"
)

// Location is where a diagnostic applies. *token.Range implements it, and
// a location that renders as "" is treated as absent.
type Location interface {
	String() string
}

func locationString(loc Location) string {
	if loc == nil {
		return ""
	}
	return loc.String()
}

// Format substitutes args into text and prefixes the location.
//
// %s is replaced by the next argument and %% by a single percent sign.
// Any other placeholder, and a %s with no argument left, stays as is.
func Format(loc Location, text string, args ...any) string {
	var b strings.Builder
	if l := locationString(loc); l != "" {
		b.WriteString(l)
		b.WriteString(": ")
	}

	next := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '%' || i+1 == len(text) {
			b.WriteByte(c)
			continue
		}
		switch text[i+1] {
		case 's':
			if next < len(args) {
				b.WriteString(fmt.Sprint(args[next]))
				next++
			} else {
				b.WriteString("%s")
			}
			i++
		case '%':
			b.WriteByte('%')
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
