// Package timeutil translates Unicode date patterns into Go layouts.
package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	// DefaultPattern is used when an event date string has no pattern.
	DefaultPattern = "MM/dd/yyyy"
	// ISOPattern is the storage format for days.
	ISOPattern = "yyyy-MM-dd"
)

// ErrUnsupportedPattern is returned for pattern letters with no Go layout
// equivalent.
var ErrUnsupportedPattern = errors.New("timeutil: unsupported date pattern")

var fields = map[rune][]struct {
	width  int
	layout string
}{
	'y': {{4, "2006"}, {2, "06"}, {1, "2006"}},
	'M': {{4, "January"}, {3, "Jan"}, {2, "01"}, {1, "1"}},
	'L': {{4, "January"}, {3, "Jan"}, {2, "01"}, {1, "1"}},
	'd': {{2, "02"}, {1, "2"}},
	'E': {{4, "Monday"}, {1, "Mon"}},
	'H': {{2, "15"}, {1, "15"}},
	'h': {{2, "03"}, {1, "3"}},
	'm': {{2, "04"}, {1, "4"}},
	's': {{2, "05"}, {1, "5"}},
	'a': {{1, "PM"}},
	'Z': {{1, "-0700"}},
	'X': {{3, "Z07:00"}, {1, "Z0700"}},
}

// Layout converts a pattern such as "MM/dd/yyyy" into the Go reference
// layout "01/02/2006". Quoted text ('T') is copied literally; literals with
// digits or layout words such as Jan or PM are rejected since Go would read
// them as fields.
func Layout(pattern string) (string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	var b strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\'':
			if i+1 < len(runes) && runes[i+1] == '\'' {
				b.WriteRune('\'')
				i += 2
				continue
			}
			literal, next, ok := quoted(runes, i+1)
			if !ok {
				return "", fmt.Errorf("%w: unterminated quote in %q", ErrUnsupportedPattern, pattern)
			}
			if err := checkLiteral(literal, pattern); err != nil {
				return "", err
			}
			b.WriteString(literal)
			i = next
		case unicode.IsLetter(r) && r < unicode.MaxASCII:
			n := 1
			for i+n < len(runes) && runes[i+n] == r {
				n++
			}
			layout, ok := fieldLayout(r, n)
			if !ok {
				return "", fmt.Errorf("%w: %q in %q", ErrUnsupportedPattern, strings.Repeat(string(r), n), pattern)
			}
			b.WriteString(layout)
			i += n
		default:
			if err := checkLiteral(string(r), pattern); err != nil {
				return "", err
			}
			b.WriteRune(r)
			i++
		}
	}
	return b.String(), nil
}

// quoted reads a quoted literal starting after its opening quote. A doubled
// quote inside the literal is a quote character.
func quoted(runes []rune, i int) (string, int, bool) {
	var b strings.Builder
	for i < len(runes) {
		if runes[i] != '\'' {
			b.WriteRune(runes[i])
			i++
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '\'' {
			b.WriteRune('\'')
			i += 2
			continue
		}
		return b.String(), i + 1, true
	}
	return "", i, false
}

func fieldLayout(r rune, n int) (string, bool) {
	widths, ok := fields[r]
	if !ok {
		return "", false
	}
	for _, w := range widths {
		if n >= w.width {
			return w.layout, true
		}
	}
	return "", false
}

// layoutWords are the letter tokens time.Parse reads as fields. January and
// Monday are covered by their prefixes.
var layoutWords = []string{"Jan", "Mon", "MST", "PM", "pm"}

func checkLiteral(literal, pattern string) error {
	if strings.IndexFunc(literal, unicode.IsDigit) >= 0 {
		return fmt.Errorf("%w: literal digits in %q", ErrUnsupportedPattern, pattern)
	}
	for _, word := range layoutWords {
		if strings.Contains(literal, word) {
			return fmt.Errorf("%w: literal %q reads as a layout field in %q", ErrUnsupportedPattern, word, pattern)
		}
	}
	return nil
}
