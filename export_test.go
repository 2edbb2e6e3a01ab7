package logtally

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aerissecure/logtally/xlsx"
)

func TestWriteCSV(t *testing.T) {
	g := Grid{Rows: []Row{
		{StringCell("PROGRAM"), NumberCell(5), StringCell("Total")},
		{},
		{StringCell("IT, Dept"), NumberCell(2.5), Cell{}},
	}}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, g); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	want := "PROGRAM,5,Total\r\n\r\n\"IT, Dept\",2.5,\r\n"
	if got := buf.String(); got != want {
		t.Fatalf("csv = %q, want %q", got, want)
	}
}

func TestExportCSVRoundTrip(t *testing.T) {
	e := testEngine()
	master := masterTemplate()
	var buf bytes.Buffer
	if err := Export(&buf, "report.csv", master, nil); err != nil {
		t.Fatalf("Export: %v", err)
	}
	g, err := e.ParseFile("report.csv", buf.Bytes(), false)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if g.Len() != master.Len() {
		t.Fatalf("rows = %d, want %d", g.Len(), master.Len())
	}
	for r := range master.Rows {
		if g.Label(r) != master.Label(r) {
			t.Fatalf("row %d label = %q, want %q", r, g.Label(r), master.Label(r))
		}
	}
}

func TestExportXLSX(t *testing.T) {
	e := testEngine()
	res := e.Fill(masterTemplate(), []string{"2024-01-05"}, &Tallies{
		Programs: DateTallyMap{"2024-01-05": {"IT": 3}},
	})
	var buf bytes.Buffer
	if err := Export(&buf, "report.XLSX", res.Grid, res.Filled); err != nil {
		t.Fatalf("Export: %v", err)
	}
	g, err := e.ParseFile("report.xlsx", buf.Bytes(), false)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	c, ok := g.Cell(2, 2)
	if !ok || c.Kind != CellNumber || c.Num != 3 {
		t.Fatalf("IT day 5 = %#v", c)
	}
}

func TestExportXLSXRoundTripKeepsText(t *testing.T) {
	e := testEngine()
	master := masterTemplate()
	var buf bytes.Buffer
	if err := Export(&buf, "report.xlsx", master, nil); err != nil {
		t.Fatalf("Export: %v", err)
	}
	g, err := e.ParseFile("report.xlsx", buf.Bytes(), false)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if g.Len() != master.Len() {
		t.Fatalf("rows = %d, want %d", g.Len(), master.Len())
	}
	for r := range master.Rows {
		if g.Label(r) != master.Label(r) {
			t.Fatalf("row %d label = %q, want %q", r, g.Label(r), master.Label(r))
		}
	}
	if got := cellText(t, g, 1, 3); got != "Total" {
		t.Fatalf("D2 = %q, want Total", got)
	}
	if c, ok := e.FindDayColumn(g, 5); !ok || c != 2 {
		t.Fatalf("FindDayColumn(5) = %d, %t; want 2, true", c, ok)
	}
}

func TestExportHTMLHighlightsFilledCells(t *testing.T) {
	g := grid(
		[]string{"PROGRAM", "5"},
		[]string{"IT", ""},
	)
	g.Set(1, 1, NumberCell(2))
	var buf bytes.Buffer
	if err := Export(&buf, "preview.html", g, map[[2]int]bool{{1, 1}: true}); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(buf.String(), `<td data-cell="B2" class="filled">2</td>`) {
		t.Fatalf("filled cell not highlighted:\n%s", buf.String())
	}
}

func TestGridWorkbookModel(t *testing.T) {
	g := Grid{Rows: []Row{{StringCell("IT"), Cell{}, NumberCell(4)}}}
	g.Set(4, 27, StringCell("wide"))
	m := g.WorkbookModel("Report", nil)
	sheet, ok := m.Sheet("Report")
	if !ok || sheet.ColCount != 28 {
		t.Fatalf("sheet = %v", sheet)
	}
	cells := sheet.Rows[0].Cells
	if cells[1] != nil {
		t.Fatalf("empty cell emitted: %v", cells[1])
	}
	if cells[2].Kind != xlsx.KindNumber || cells[2].Ref != "C1" {
		t.Fatalf("C1 = %v", cells[2])
	}
	if wide := sheet.Rows[4].Cells[27]; wide == nil || wide.Ref != "AB5" {
		t.Fatalf("AB5 = %v", wide)
	}
}

func TestReportFileNames(t *testing.T) {
	r := DateRange{Start: "2024-01-05", End: "2024-01-09"}
	tests := []struct {
		got, want string
	}{
		{ReportFileName("Library_Mapua", "2024-01-05"), "Library_Mapua_Report_5.csv"},
		{ReportFileName("Branch", "2024-01-31"), "Branch_Report_31.csv"},
		{RangeReportFileName("Library_Mapua", r), "Library_Mapua_Report_2024-01-05_to_2024-01-09.csv"},
		{MasterRangeFileName(r), "Master_RangeOnly_2024-01-05_to_2024-01-09.csv"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("file name = %q, want %q", tt.got, tt.want)
		}
	}
}
