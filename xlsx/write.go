package xlsx

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook writes a single-sheet workbook built from the first sheet of
// m. Number and time cells keep their type.
func WriteWorkbook(w io.Writer, m WorkbookModel) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const defaultSheet = "Sheet1"
	sheet, ok := m.Sheet("")
	if !ok {
		_, err := f.WriteTo(w)
		return err
	}
	name := defaultSheet
	if sheet.Name != "" && sheet.Name != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet.Name); err != nil {
			return err
		}
		name = sheet.Name
	}

	for ri, row := range sheet.Rows {
		if len(row.Cells) == 0 {
			continue
		}
		values := make([]interface{}, len(row.Cells))
		for ci, c := range row.Cells {
			if c == nil {
				continue
			}
			switch c.Kind {
			case KindNumber:
				values[ci] = c.Number
			case KindTime:
				values[ci] = c.Time
			default:
				values[ci] = c.Value
			}
		}
		start, err := excelize.CoordinatesToCellName(1, ri+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, start, &values); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}
