package logtally

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CellKind identifies which value a Cell carries.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellString
	CellNumber
	CellTime
)

// Cell is one optional-typed value of a Grid.
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
	Time time.Time
}

// StringCell returns a text cell.
func StringCell(s string) Cell { return Cell{Kind: CellString, Str: s} }

// NumberCell returns a numeric cell.
func NumberCell(n float64) Cell { return Cell{Kind: CellNumber, Num: n} }

// TimeCell returns a date/time cell.
func TimeCell(t time.Time) Cell { return Cell{Kind: CellTime, Time: t} }

// Blank reports whether the cell has no value or holds the empty string.
func (c Cell) Blank() bool {
	switch c.Kind {
	case CellEmpty:
		return true
	case CellString:
		return c.Str == ""
	}
	return false
}

// Text is the display form of the cell. Midnight times render as a bare date.
func (c Cell) Text() string {
	switch c.Kind {
	case CellString:
		return c.Str
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case CellTime:
		if c.Time.Hour() == 0 && c.Time.Minute() == 0 && c.Time.Second() == 0 {
			return c.Time.Format("2006-01-02")
		}
		return c.Time.Format("2006-01-02 15:04:05")
	}
	return ""
}

// Float reads the cell as a number. Text cells are parsed from their leading
// numeric prefix, so "5 Mon" yields 5.
func (c Cell) Float() (float64, bool) {
	switch c.Kind {
	case CellNumber:
		return c.Num, true
	case CellString:
		return parseLeadingFloat(c.Str)
	}
	return 0, false
}

var leadingFloatRe = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

func parseLeadingFloat(s string) (float64, bool) {
	m := leadingFloatRe.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Row is an ordered sequence of cells. Rows in a Grid may differ in length.
type Row []Cell

// Cell returns the cell at column c, or false when c is outside the row.
func (r Row) Cell(c int) (Cell, bool) {
	if c < 0 || c >= len(r) {
		return Cell{}, false
	}
	return r[c], true
}

// Grid is a two-dimensional sheet of rows.
type Grid struct {
	Rows []Row
}

// GridFromStrings builds a Grid of text cells. Empty strings become empty cells.
func GridFromStrings(rows [][]string) Grid {
	g := Grid{Rows: make([]Row, len(rows))}
	for i, rec := range rows {
		row := make(Row, len(rec))
		for j, v := range rec {
			if v != "" {
				row[j] = StringCell(v)
			}
		}
		g.Rows[i] = row
	}
	return g
}

// Len returns the number of rows.
func (g Grid) Len() int { return len(g.Rows) }

// Width returns the length of the longest row.
func (g Grid) Width() int {
	w := 0
	for _, r := range g.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

// Row returns row r, or false when r is outside the grid.
func (g Grid) Row(r int) (Row, bool) {
	if r < 0 || r >= len(g.Rows) {
		return nil, false
	}
	return g.Rows[r], true
}

// Cell returns the cell at (r, c), or false when either index is absent.
func (g Grid) Cell(r, c int) (Cell, bool) {
	row, ok := g.Row(r)
	if !ok {
		return Cell{}, false
	}
	return row.Cell(c)
}

// Label returns the trimmed text of column 0 in row r.
func (g Grid) Label(r int) string {
	c, _ := g.Cell(r, 0)
	return strings.TrimSpace(c.Text())
}

// Set writes v at (r, c), growing the row with empty cells as needed.
// Rows beyond the end of the grid are appended.
func (g *Grid) Set(r, c int, v Cell) {
	if r < 0 || c < 0 {
		return
	}
	for len(g.Rows) <= r {
		g.Rows = append(g.Rows, nil)
	}
	row := g.Rows[r]
	if c >= len(row) {
		grown := make(Row, c+1)
		copy(grown, row)
		row = grown
	}
	row[c] = v
	g.Rows[r] = row
}

// Clone returns a copy whose rows share no storage with g.
func (g Grid) Clone() Grid {
	out := Grid{Rows: make([]Row, len(g.Rows))}
	for i, r := range g.Rows {
		if r == nil {
			continue
		}
		out.Rows[i] = append(Row(nil), r...)
	}
	return out
}

// Strings returns the display text of every cell.
func (g Grid) Strings() [][]string {
	out := make([][]string, len(g.Rows))
	for i, r := range g.Rows {
		rec := make([]string, len(r))
		for j, c := range r {
			rec[j] = c.Text()
		}
		out[i] = rec
	}
	return out
}
