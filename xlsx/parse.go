package xlsx

import (
	"fmt"
	"io"
	"strconv"

	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
	"github.com/xuri/excelize/v2"
)

// ParseWorkbookModel reads an XLSX from r/size and returns the intermediate representation.
// Date-formatted cells keep their time value, numeric cells their number.
func ParseWorkbookModel(r io.ReaderAt, size int64) (WorkbookModel, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return WorkbookModel{}, err
	}

	strs := &sharedStrings{r: r, size: size}
	defer strs.Close()

	var model WorkbookModel

	for _, sheet := range wb.Sheets() {
		rs := RenderSheet{Name: sheet.Name()}

		// --- process merges ---
		mergeMaster := make(map[[2]int]struct{ rowSpan, colSpan int })
		skipCells := make(map[[2]int]bool)
		if sheet.X().MergeCells != nil {
			for _, mc := range sheet.X().MergeCells.MergeCell {
				from, to, err := reference.ParseRangeReference(mc.RefAttr)
				if err != nil {
					continue
				}
				fromRow := int(from.RowIdx - 1)
				fromCol := int(from.ColumnIdx)
				toRow := int(to.RowIdx - 1)
				toCol := int(to.ColumnIdx)
				mergeMaster[[2]int{fromRow, fromCol}] = struct{ rowSpan, colSpan int }{toRow - fromRow + 1, toCol - fromCol + 1}

				for r := fromRow; r <= toRow; r++ {
					for c := fromCol; c <= toCol; c++ {
						if r == fromRow && c == fromCol {
							continue
						}
						skipCells[[2]int{r, c}] = true
					}
				}
			}
		}

		// --- build rows ---
		for _, row := range sheet.Rows() {
			rowIdx := int(row.RowNumber()) - 1
			if rowIdx < 0 {
				continue
			}
			if rowIdx >= len(rs.Rows) {
				// grow slice to accommodate sparse rows
				newRows := make([]RenderRow, rowIdx-len(rs.Rows)+1)
				rs.Rows = append(rs.Rows, newRows...)
			}

			rr := &rs.Rows[rowIdx]
			rr.Hidden = row.IsHidden()

			for _, cell := range row.Cells() {
				colName, err := cell.Column()
				if err != nil {
					continue
				}
				colIdx := int(reference.ColumnToIndex(colName))
				if skipCells[[2]int{rowIdx, colIdx}] {
					continue
				}

				ref := fmt.Sprintf("%s%d", colName, rowIdx+1)
				rc := convertCell(wb, cell)
				rc.Ref = ref
				if rc.Value == "" && cell.X().TAttr == sml.ST_CellTypeS {
					rc.Value = strs.lookup(rs.Name, ref)
				}
				if info, ok := mergeMaster[[2]int{rowIdx, colIdx}]; ok {
					rc.RowSpan = info.rowSpan
					rc.ColSpan = info.colSpan
				}

				if colIdx >= len(rr.Cells) {
					grown := make([]*RenderCell, colIdx+1)
					copy(grown, rr.Cells)
					rr.Cells = grown
				}
				rr.Cells[colIdx] = rc
				if colIdx+1 > rs.ColCount {
					rs.ColCount = colIdx + 1
				}
			}
		}

		model.Sheets = append(model.Sheets, rs)
	}

	return model, nil
}

// convertCell resolves the typed value of a unioffice cell.
func convertCell(wb *spreadsheet.Workbook, cell spreadsheet.Cell) *RenderCell {
	rc := &RenderCell{
		Value:   cell.GetFormattedValue(),
		ColSpan: 1,
		RowSpan: 1,
	}
	x := cell.X()
	if x.V == nil {
		return rc
	}
	raw := *x.V

	switch x.TAttr {
	case sml.ST_CellTypeN, sml.ST_CellTypeUnset:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return rc
		}
		if x.SAttr != nil {
			if id, code, ok := GetNumFmt(wb.StyleSheet, *x.SAttr); ok && IsDateFormat(id, code) {
				if t, err := excelize.ExcelDateToTime(v, false); err == nil {
					rc.Kind = KindTime
					rc.Time = t
					return rc
				}
			}
		}
		rc.Kind = KindNumber
		rc.Number = v
	}
	return rc
}

// sharedStrings resolves string table cells that unioffice leaves blank.
// unioffice only follows a relative string table target, while excelize
// writes "/xl/sharedStrings.xml", so for those workbooks the table is read
// again with excelize on first use.
type sharedStrings struct {
	r    io.ReaderAt
	size int64
	f    *excelize.File
	err  error
}

func (s *sharedStrings) lookup(sheet, ref string) string {
	if s.f == nil && s.err == nil {
		s.f, s.err = excelize.OpenReader(io.NewSectionReader(s.r, 0, s.size))
	}
	if s.err != nil {
		return ""
	}
	v, err := s.f.GetCellValue(sheet, ref, excelize.Options{RawCellValue: true})
	if err != nil {
		return ""
	}
	return v
}

func (s *sharedStrings) Close() {
	if s.f != nil {
		_ = s.f.Close()
	}
}
