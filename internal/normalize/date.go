package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISODate is the canonical output layout.
const ISODate = "2006-01-02"

// DisplayLayout is used for human-readable dates ("20 June 2025").
const DisplayLayout = "2 January 2006"

// dayMonthYearRe matches the upstream's dominant DD-MM-YYYY format.
// It must be tried before generic layouts, which would read it as MM-DD.
var dayMonthYearRe = regexp.MustCompile(`\b(\d{1,2})[-/.](\d{1,2})[-/.](\d{4})\b`)

var ordinalRe = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)\b`)

var genericLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	ISODate,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	"Monday, 2 January 2006",
	"Monday 2 January 2006",
	"Monday, January 2, 2006",
	"Mon, 2 Jan 2006",
	"Mon, 02 Jan 2006",
	"2 January 2006",
	"2 January, 2006",
	"2 Jan 2006",
	"2 Jan. 2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"02-Jan-2006",
	"2006/01/02",
}

// ParseDate converts raw into YYYY-MM-DD. DD-MM-YYYY is tried first and is
// only zero padded, then the generic layouts; if both fail now is used.
func ParseDate(raw string, now time.Time) string {
	if d, m, y, ok := matchDayMonthYear(raw); ok {
		return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
	}
	if t, ok := parseGeneric(raw); ok {
		return t.Format(ISODate)
	}
	return now.Format(ISODate)
}

// ParseDateStrict runs the same cascade as ParseDate but reports failure
// instead of substituting the current date. Impossible calendar dates fail.
func ParseDateStrict(raw string) (time.Time, bool) {
	if d, m, y, ok := matchDayMonthYear(raw); ok {
		t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
		if t.Day() != d || int(t.Month()) != m {
			return time.Time{}, false
		}
		return t, true
	}
	return parseGeneric(raw)
}

// DisplayDate formats raw as "20 June 2025". Unparsable text is returned as
// is and empty input stays empty.
func DisplayDate(raw string) string {
	raw = CleanText(raw)
	if raw == "" {
		return ""
	}
	t, ok := ParseDateStrict(raw)
	if !ok {
		return raw
	}
	return t.Format(DisplayLayout)
}

// ISO returns the YYYY-MM-DD form of raw, or the cleaned raw text when it
// cannot be parsed.
func ISO(raw string) string {
	raw = CleanText(raw)
	if raw == "" {
		return ""
	}
	if t, ok := ParseDateStrict(raw); ok {
		return t.Format(ISODate)
	}
	return raw
}

func matchDayMonthYear(raw string) (day, month, year int, ok bool) {
	m := dayMonthYearRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, 0, 0, false
	}
	day, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	year, _ = strconv.Atoi(m[3])
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return 0, 0, 0, false
	}
	return day, month, year, true
}

func parseGeneric(raw string) (time.Time, bool) {
	s := CleanText(raw)
	if s == "" {
		return time.Time{}, false
	}
	s = ordinalRe.ReplaceAllString(s, "$1")

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CleanText collapses runs of whitespace (including NBSP) to single spaces.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
