package xlsx

import (
	"fmt"
	"time"
)

// Intermediate representation for workbooks read from xlsx/xls files or
// built from a filled report.

// CellKind tells which of the typed values of a RenderCell is meaningful.
type CellKind int

const (
	KindString CellKind = iota
	KindNumber
	KindTime
)

func (k CellKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindTime:
		return "time"
	}
	return "string"
}

// RenderCell is the IR for a single cell (or merged master).
type RenderCell struct {
	Ref       string    // e.g. "A1"
	Kind      CellKind  // which typed value below applies
	Value     string    // already formatted value
	Number    float64   // set for KindNumber
	Time      time.Time // set for KindTime
	ColSpan   int       // 1 if not merged
	RowSpan   int       // 1 if not merged
	Highlight bool      // rendered with the "filled" class
}

func (c RenderCell) String() string {
	return fmt.Sprintf("Ref: %s, Kind: %s, Value: %s, ColSpan: %d, RowSpan: %d, Highlight: %t", c.Ref, c.Kind, c.Value, c.ColSpan, c.RowSpan, c.Highlight)
}

// RenderRow represents one logical row in a sheet.
type RenderRow struct {
	Hidden bool
	Cells  []*RenderCell // may contain nil for blank cells
}

// Empty reports whether the row has no non-blank cell.
func (r RenderRow) Empty() bool {
	for _, c := range r.Cells {
		if c != nil && c.Value != "" {
			return false
		}
	}
	return true
}

func (r RenderRow) String() string {
	return fmt.Sprintf("Hidden: %t, Cells: %d", r.Hidden, len(r.Cells))
}

// RenderSheet is the intermediate representation of a worksheet.
type RenderSheet struct {
	Name     string
	ColCount int
	Rows     []RenderRow // in order, sparse rows filled with empty RenderRows
}

func (s RenderSheet) String() string {
	return fmt.Sprintf("Name: %s, ColCount: %d, Rows: %d", s.Name, s.ColCount, len(s.Rows))
}

// WorkbookModel is the top-level IR containing all sheets.
type WorkbookModel struct {
	Sheets []RenderSheet
}

// Sheet returns the sheet called preferred, or the first sheet when there is
// no such sheet. It reports false for a workbook without sheets.
func (m WorkbookModel) Sheet(preferred string) (RenderSheet, bool) {
	if len(m.Sheets) == 0 {
		return RenderSheet{}, false
	}
	for _, s := range m.Sheets {
		if preferred != "" && s.Name == preferred {
			return s, true
		}
	}
	return m.Sheets[0], true
}
