package logtally

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ISODate is the canonical date layout used as the key of every tally.
const ISODate = "2006-01-02"

var (
	isoDateRe   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	slashDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4})$`)
	namedDateRe = regexp.MustCompile(`^([A-Za-z]+)\.?\s+(\d{1,2})\s+(\d{4})(?:[ T].*)?$`)
)

var monthNames = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

// fallbackLayouts stand in for a generic date parser and are tried last.
var fallbackLayouts = []string{
	time.RFC3339,
	time.RFC1123,
	"2006/1/2",
	"2006.1.2",
	"2-Jan-2006",
	"2-Jan-06",
	"2 Jan 2006",
	"2 January 2006",
	"Mon Jan 2 2006",
	"January 2006",
}

// maxExcelSerial is 9999-12-31 as an Excel 1900 serial date.
const maxExcelSerial = 2958465

// NormalizeDate converts a cell to a canonical YYYY-MM-DD string. It reports
// false when the value does not look like a date.
func NormalizeDate(c Cell) (string, bool) {
	switch c.Kind {
	case CellTime:
		if c.Time.IsZero() {
			return "", false
		}
		return c.Time.Format(ISODate), true
	case CellNumber:
		if c.Num < 1 || c.Num > maxExcelSerial {
			return "", false
		}
		t, err := excelize.ExcelDateToTime(c.Num, false)
		if err != nil {
			return "", false
		}
		return t.Format(ISODate), true
	case CellString:
		return ParseDate(c.Str)
	}
	return "", false
}

// ParseDate normalizes a date string. Patterns are tried in order: ISO
// year-month-day, slash month/day/year, English month name, then a set of
// common layouts. A time-of-day suffix is ignored.
//
// Slash dates are ambiguous: when the first part is 12 or less it is taken as
// the month, otherwise as the day.
func ParseDate(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	token := s
	if i := strings.IndexAny(s, " T"); i >= 0 {
		token = s[:i]
	}

	if m := isoDateRe.FindStringSubmatch(token); m != nil {
		y, mo, d := atoi(m[1]), atoi(m[2]), atoi(m[3])
		if validMonthDay(mo, d) {
			return formatISO(y, mo, d), true
		}
	}

	if m := slashDateRe.FindStringSubmatch(token); m != nil {
		y := atoi(m[3])
		if y < 100 {
			y += 2000
		}
		a, b := atoi(m[1]), atoi(m[2])
		month, day := a, b
		if a > 12 {
			month, day = b, a
		}
		if validMonthDay(month, day) {
			return formatISO(y, month, day), true
		}
	}

	if m := namedDateRe.FindStringSubmatch(strings.ReplaceAll(s, ",", "")); m != nil {
		mo := monthNames[strings.ToLower(m[1])]
		d, y := atoi(m[2]), atoi(m[3])
		if mo != 0 && d >= 1 && d <= 31 {
			return formatISO(y, mo, d), true
		}
	}

	for _, candidate := range []string{token, s} {
		for _, layout := range fallbackLayouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				return t.Format(ISODate), true
			}
		}
	}
	return "", false
}

// DayOfMonth returns the day part of a canonical date, or 0 when iso is not
// canonical.
func DayOfMonth(iso string) int {
	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return 0
	}
	return atoi(parts[2])
}

func validMonthDay(month, day int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

func formatISO(y, m, d int) string {
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// ProgramNormalizer canonicalizes free-text program labels so log entries
// and template rows compare equal.
type ProgramNormalizer struct {
	aliases map[string]string
}

// NewProgramNormalizer builds a normalizer. Alias keys are matched against the
// upper-cased label with all whitespace removed.
func NewProgramNormalizer(aliases map[string]string) ProgramNormalizer {
	m := make(map[string]string, len(aliases))
	for k, v := range aliases {
		m[strings.ToUpper(strings.Join(strings.Fields(k), ""))] = v
	}
	return ProgramNormalizer{aliases: m}
}

// Normalize returns the alias target for label, or the trimmed upper-cased
// label when no alias applies. Internal whitespace is only removed for the
// alias lookup, never from the returned fallback.
func (p ProgramNormalizer) Normalize(label string) string {
	trimmed := strings.TrimSpace(label)
	key := strings.ToUpper(strings.Join(strings.Fields(trimmed), ""))
	if v, ok := p.aliases[key]; ok && v != "" {
		return v
	}
	return strings.ToUpper(trimmed)
}
