package logtally

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aerissecure/logtally/xlsx"
)

// WriteCSV writes g as comma-separated text with CRLF line endings. Rows keep
// their own length.
func WriteCSV(w io.Writer, g Grid) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	for _, rec := range g.Strings() {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WorkbookModel converts g to the workbook IR under sheetName. Cells listed
// in highlight are marked for the HTML preview.
func (g Grid) WorkbookModel(sheetName string, highlight map[[2]int]bool) xlsx.WorkbookModel {
	rs := xlsx.RenderSheet{Name: sheetName, ColCount: g.Width()}
	rs.Rows = make([]xlsx.RenderRow, len(g.Rows))
	for r, row := range g.Rows {
		cells := make([]*xlsx.RenderCell, len(row))
		for c, cell := range row {
			if cell.Kind == CellEmpty {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				continue
			}
			rc := &xlsx.RenderCell{
				Ref:       ref,
				Value:     cell.Text(),
				ColSpan:   1,
				RowSpan:   1,
				Highlight: highlight[[2]int{r, c}],
			}
			switch cell.Kind {
			case CellNumber:
				rc.Kind = xlsx.KindNumber
				rc.Number = cell.Num
			case CellTime:
				rc.Kind = xlsx.KindTime
				rc.Time = cell.Time
			}
			cells[c] = rc
		}
		rs.Rows[r] = xlsx.RenderRow{Cells: cells}
	}
	return xlsx.WorkbookModel{Sheets: []xlsx.RenderSheet{rs}}
}

// Export writes g in the format selected by the extension of name: .xlsx,
// .html (preview with highlighted cells) or CSV for anything else.
func Export(w io.Writer, name string, g Grid, highlight map[[2]int]bool) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return xlsx.WriteWorkbook(w, g.WorkbookModel("Report", highlight))
	case ".html", ".htm":
		_, err := io.WriteString(w, xlsx.RenderWorkbookHTML(g.WorkbookModel("Report", highlight)))
		return err
	}
	return WriteCSV(w, g)
}

// ReportFileName names the single-date report, e.g. Library_Mapua_Report_5.csv.
func ReportFileName(prefix, date string) string {
	return fmt.Sprintf("%s_Report_%d.csv", prefix, DayOfMonth(date))
}

// RangeReportFileName names the report filled for every date of r.
func RangeReportFileName(prefix string, r DateRange) string {
	return fmt.Sprintf("%s_Report_%s.csv", prefix, r.Suffix())
}

// MasterRangeFileName names the column-filtered master template.
func MasterRangeFileName(r DateRange) string {
	return fmt.Sprintf("Master_RangeOnly_%s.csv", r.Suffix())
}
