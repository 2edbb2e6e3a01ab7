package xlsx

import (
	"strings"

	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
)

// Helper to extract the number format applied by a style ID. It returns the
// format ID and, for custom formats, the format code.
func GetNumFmt(ss spreadsheet.StyleSheet, styleID uint32) (uint32, string, bool) {
	x := ss.X()
	if x == nil || x.CellXfs == nil || int(styleID) >= len(x.CellXfs.Xf) {
		return 0, "", false
	}
	xf := x.CellXfs.Xf[styleID]
	if xf == nil || xf.NumFmtIdAttr == nil {
		return 0, "", false
	}
	id := *xf.NumFmtIdAttr
	return id, GetNumFmtCode(x, id), true
}

// GetNumFmtCode looks up the format code of a custom number format.
func GetNumFmtCode(x *sml.StyleSheet, id uint32) string {
	if x.NumFmts == nil {
		return ""
	}
	for _, nf := range x.NumFmts.NumFmt {
		if nf != nil && nf.NumFmtIdAttr == id {
			return nf.FormatCodeAttr
		}
	}
	return ""
}

// IsDateFormat reports whether a number format renders its value as a date
// or time. Built-in IDs are checked first, then the custom code is scanned
// for date tokens outside quoted text and bracketed sections.
func IsDateFormat(id uint32, code string) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	if code == "" {
		return false
	}
	var b strings.Builder
	inQuote, inBracket := false, false
	for _, r := range code {
		switch {
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		default:
			b.WriteRune(r)
		}
	}
	return strings.ContainsAny(strings.ToLower(b.String()), "ymdhs")
}
