package codec

import (
	"encoding/json"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// ParseDateArray converts the platform's date wire shape, a JSON array of
// integer components [year, month, day, ...], into a time.Time. Arrays
// shorter than three components or with non-integer elements are rejected.
func ParseDateArray(components []any) (time.Time, error) {
	if len(components) < 3 {
		return time.Time{}, Invalidf("date array must have at least 3 components, got %d", len(components))
	}

	parts := make([]int, 0, len(components))
	for _, c := range components {
		n, ok := c.(json.Number)
		if !ok {
			return time.Time{}, Invalidf("date array component %v is not an integer", c)
		}
		i, err := n.Int64()
		if err != nil {
			return time.Time{}, Invalidf("date array component %v is not an integer", c)
		}
		parts = append(parts, int(i))
	}

	return time.Date(parts[0], time.Month(parts[1]), parts[2], 0, 0, 0, 0, time.UTC), nil
}

// FormatDate renders a date through the given Java-style pattern and
// locale, the shape the platform expects in request payloads. The locale
// tag is validated; the rendered names use Go's English tables.
func FormatDate(t time.Time, pattern, locale string) (string, error) {
	if pattern == "" {
		return "", Invalidf("date format cannot be empty")
	}
	if locale == "" {
		return "", Invalidf("locale cannot be empty")
	}
	if _, err := language.Parse(locale); err != nil {
		return "", Invalidf("locale %q is not a valid language tag", locale)
	}

	layout, err := javaPatternToLayout(pattern)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// javaPatternTokens maps runs of SimpleDateFormat pattern letters to Go
// reference-layout fragments. Longest tokens first.
var javaPatternTokens = []struct {
	java string
	gol  string
}{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"dd", "02"},
	{"d", "2"},
	{"EEEE", "Monday"},
	{"EEE", "Mon"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
}

// javaPatternToLayout translates a SimpleDateFormat pattern such as
// "dd MMMM yyyy" into the equivalent Go time layout.
func javaPatternToLayout(pattern string) (string, error) {
	var layout strings.Builder
	for i := 0; i < len(pattern); {
		matched := false
		for _, token := range javaPatternTokens {
			if strings.HasPrefix(pattern[i:], token.java) {
				layout.WriteString(token.gol)
				i += len(token.java)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		c := pattern[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return "", Invalidf("unsupported date pattern letter %q in %q", string(c), pattern)
		}
		layout.WriteByte(c)
		i++
	}
	return layout.String(), nil
}
