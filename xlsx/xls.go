package xlsx

import (
	"fmt"
	"io"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// xlsMaxCols is the column limit of the BIFF8 format.
const xlsMaxCols = 256

// ParseXLS reads a legacy binary workbook. Every cell comes back as its
// formatted text since the format exposes no typed values.
func ParseXLS(r io.ReadSeeker) (model WorkbookModel, err error) {
	// The decoder panics on malformed records instead of returning errors.
	defer func() {
		if p := recover(); p != nil {
			model, err = WorkbookModel{}, fmt.Errorf("xls: %v", p)
		}
	}()

	wb, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return WorkbookModel{}, err
	}

	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		rs := RenderSheet{Name: sheet.Name}
		for ri := 0; ri <= int(sheet.MaxRow); ri++ {
			var rr RenderRow
			if row := xlsRow(sheet, ri); row != nil {
				// Rows built from cell records alone carry no column span.
				last := row.LastCol()
				if last <= row.FirstCol() {
					last = xlsMaxCols
				}
				for ci := row.FirstCol(); ci < last; ci++ {
					v := row.Col(ci)
					if v == "" {
						continue
					}
					if ci >= len(rr.Cells) {
						grown := make([]*RenderCell, ci+1)
						copy(grown, rr.Cells)
						rr.Cells = grown
					}
					rr.Cells[ci] = &RenderCell{
						Ref:     cellRef(ci, ri),
						Value:   v,
						ColSpan: 1,
						RowSpan: 1,
					}
					if ci+1 > rs.ColCount {
						rs.ColCount = ci + 1
					}
				}
			}
			rs.Rows = append(rs.Rows, rr)
		}
		model.Sheets = append(model.Sheets, rs)
	}
	return model, nil
}

// xlsRow returns row i of sheet, or nil when the sheet has no record for it.
func xlsRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	// WorkSheet.Row dereferences the row before checking it exists.
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

// cellRef names a zero-based (col, row) pair, e.g. (0, 0) is "A1".
func cellRef(col, row int) string {
	ref, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return fmt.Sprintf("R%dC%d", row+1, col+1)
	}
	return ref
}
