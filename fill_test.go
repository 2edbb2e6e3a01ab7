package logtally

import (
	"reflect"
	"testing"
)

func masterTemplate() Grid {
	return grid(
		[]string{"LIBRARY MONTHLY REPORT"},
		[]string{"PROGRAM", "4", "5", "Total"},
		[]string{"IT", "", "", ""},
		[]string{"MARKETING", "7", "", ""},
		[]string{"TOTAL", "", "", ""},
		[]string{"TIME", "4", "5", "Total"},
		[]string{"7:00-8:00", "", "", ""},
		[]string{"9:00-10:00", "", "", ""},
		[]string{"7:00-8:00", "", "", ""},
	)
}

func TestFindDayColumn(t *testing.T) {
	e := testEngine()
	g := masterTemplate()
	if c, ok := e.FindDayColumn(g, 5); !ok || c != 2 {
		t.Fatalf("FindDayColumn(5) = %d, %t; want 2, true", c, ok)
	}
	if _, ok := e.FindDayColumn(g, 6); ok {
		t.Fatalf("FindDayColumn(6) should not match")
	}
}

func TestFindDayColumnSkipsLabelColumn(t *testing.T) {
	e := testEngine()
	g := grid(
		[]string{"5", "x", "5"},
	)
	if c, ok := e.FindDayColumn(g, 5); !ok || c != 2 {
		t.Fatalf("FindDayColumn = %d, %t; want 2, true", c, ok)
	}
}

func TestFindDayColumnScanLimit(t *testing.T) {
	e := testEngine()
	rows := make([][]string, 20)
	for i := range rows {
		rows[i] = []string{"row", "", ""}
	}
	rows[12] = []string{"deep", "", "5"}
	g := GridFromStrings(rows)
	if c, ok := e.FindDayColumn(g, 5); ok {
		t.Fatalf("day found at column %d beyond the scan limit", c)
	}

	rows[11] = []string{"header", "5", ""}
	g = GridFromStrings(rows)
	if c, ok := e.FindDayColumn(g, 5); !ok || c != 1 {
		t.Fatalf("FindDayColumn = %d, %t; want 1, true", c, ok)
	}
}

func TestFindDayColumnNumericCells(t *testing.T) {
	e := testEngine()
	g := Grid{Rows: []Row{{StringCell("PROGRAM"), NumberCell(1), StringCell("2 Tue"), NumberCell(3)}}}
	if c, ok := e.FindDayColumn(g, 2); !ok || c != 2 {
		t.Fatalf("FindDayColumn(2) = %d, %t; want 2, true", c, ok)
	}
	if c, ok := e.FindDayColumn(g, 3); !ok || c != 3 {
		t.Fatalf("FindDayColumn(3) = %d, %t; want 3, true", c, ok)
	}
}

func TestFillEndToEnd(t *testing.T) {
	e := testEngine()
	tallies, err := e.BuildTallies(grid(
		[]string{"Date", "Program", "Time"},
		[]string{"1/5/2024", "IT", "9:15 AM"},
		[]string{"1/5/2024", "it", ""},
	))
	if err != nil {
		t.Fatalf("BuildTallies: %v", err)
	}

	master := masterTemplate()
	res := e.Fill(master, []string{"2024-01-05"}, tallies)

	if len(res.Missing) != 0 {
		t.Fatalf("unexpected missing days %v", res.Missing)
	}
	if got := cellText(t, res.Grid, 2, 2); got != "2" {
		t.Fatalf("IT day 5 = %q, want 2", got)
	}
	if got := cellText(t, res.Grid, 7, 2); got != "1" {
		t.Fatalf("9:00-10:00 day 5 = %q, want 1", got)
	}
	if !res.Filled[[2]int{2, 2}] || !res.Filled[[2]int{7, 2}] || len(res.Filled) != 2 {
		t.Fatalf("filled cells = %v", res.Filled)
	}

	// Totals are recomputed for both blocks.
	if got := cellText(t, res.Grid, 2, 3); got != "2" {
		t.Fatalf("IT total = %q, want 2", got)
	}
	if got := cellText(t, res.Grid, 3, 3); got != "7" {
		t.Fatalf("MARKETING total = %q, want 7", got)
	}
	if got := cellText(t, res.Grid, 7, 3); got != "1" {
		t.Fatalf("9:00-10:00 total = %q, want 1", got)
	}
	if got := cellText(t, res.Grid, 6, 3); got != "" {
		t.Fatalf("7:00-8:00 total = %q, want blank", got)
	}

	// The input template is untouched.
	if got := cellText(t, master, 2, 2); got != "" {
		t.Fatalf("master mutated: IT day 5 = %q", got)
	}
}

func TestFillKeepsTemplateValueForZeroCounts(t *testing.T) {
	e := testEngine()
	master := grid(
		[]string{"REPORT"},
		[]string{"PROGRAM", "5"},
		[]string{"IT", "3"},
		[]string{"CS", "seed"},
		[]string{"TIME", "5"},
		[]string{"8:00-9:00", "4"},
	)
	tallies := &Tallies{
		Programs: DateTallyMap{"2024-01-05": {"IT": 2}},
		Slots:    DateTallyMap{"2024-01-05": {"8:00-9:00": 0}},
	}
	res := e.Fill(master, []string{"2024-01-05"}, tallies)
	if got := cellText(t, res.Grid, 2, 1); got != "2" {
		t.Fatalf("IT = %q, want 2", got)
	}
	if got := cellText(t, res.Grid, 3, 1); got != "seed" {
		t.Fatalf("CS = %q, want seed", got)
	}
	if got := cellText(t, res.Grid, 5, 1); got != "4" {
		t.Fatalf("8:00-9:00 = %q, want 4", got)
	}
}

func TestFillEveningSlotUsesSecondOccurrence(t *testing.T) {
	e := testEngine()
	tallies := &Tallies{
		Programs: DateTallyMap{"2024-01-05": {"IT": 3}},
		Slots: DateTallyMap{"2024-01-05": {
			"7:00-8:00":     1,
			"7:00-8:00_EVE": 2,
		}},
	}
	res := e.Fill(masterTemplate(), []string{"2024-01-05"}, tallies)
	if got := cellText(t, res.Grid, 6, 2); got != "1" {
		t.Fatalf("morning 7:00-8:00 = %q, want 1", got)
	}
	if got := cellText(t, res.Grid, 8, 2); got != "2" {
		t.Fatalf("evening 7:00-8:00 = %q, want 2", got)
	}

	// A second pass over a fresh grid starts counting again.
	res = e.Fill(masterTemplate(), []string{"2024-01-05"}, tallies)
	if got := cellText(t, res.Grid, 6, 2); got != "1" {
		t.Fatalf("second run morning 7:00-8:00 = %q, want 1", got)
	}
}

func TestFillReportsMissingDays(t *testing.T) {
	e := testEngine()
	tallies := &Tallies{
		Programs: DateTallyMap{
			"2024-01-05": {"IT": 1},
			"2024-01-06": {"IT": 4},
		},
	}
	res := e.Fill(masterTemplate(), []string{"2024-01-05", "2024-01-06"}, tallies)
	if !reflect.DeepEqual(res.Missing, []int{6}) {
		t.Fatalf("missing = %v, want [6]", res.Missing)
	}
	if got := cellText(t, res.Grid, 2, 2); got != "1" {
		t.Fatalf("IT day 5 = %q, want 1", got)
	}
}

func TestRecomputeTotals(t *testing.T) {
	e := testEngine()
	master := grid(
		[]string{"REPORT"},
		[]string{"PROGRAM", "1", "2", "3", "Total"},
		[]string{"X", "3", "5", "", ""},
		[]string{"Y", "", "", "", "99"},
		[]string{"", "1", "1", "1", ""},
		[]string{"SUMMARY", "1", "", "", ""},
		[]string{"Z", "4", "", "", ""},
	)
	res := e.Fill(master, nil, nil)
	if got := cellText(t, res.Grid, 2, 4); got != "8" {
		t.Fatalf("X total = %q, want 8", got)
	}
	y, _ := res.Grid.Cell(3, 4)
	if y.Kind != CellString || y.Str != "" {
		t.Fatalf("Y total = %#v, want blank string", y)
	}
	if got := cellText(t, res.Grid, 4, 4); got != "" {
		t.Fatalf("unlabeled row total = %q, want untouched blank", got)
	}
	if got := cellText(t, res.Grid, 6, 4); got != "" {
		t.Fatalf("row past SUMMARY was totalled: %q", got)
	}
}

func TestFilterRange(t *testing.T) {
	e := testEngine()
	master := grid(
		[]string{"REPORT"},
		[]string{"PROGRAM", "4", "5", "Total"},
		[]string{"IT", "1", "2", "3"},
	)
	out, err := e.FilterRange(master, DateRange{Start: "2024-01-05", End: "2024-01-06"})
	if err != nil {
		t.Fatalf("FilterRange: %v", err)
	}
	want := [][]string{
		{"REPORT"},
		{"PROGRAM", "5"},
		{"IT", "2"},
	}
	if got := out.Strings(); !reflect.DeepEqual(got, want) {
		t.Fatalf("filtered = %v, want %v", got, want)
	}

	if _, err := e.FilterRange(master, DateRange{Start: "2024-01-06", End: "2024-01-05"}); err != ErrInvalidRange {
		t.Fatalf("reversed range: expected ErrInvalidRange, got %v", err)
	}
}

func TestFillTreatsSuffixedLabelAsProgramRow(t *testing.T) {
	e := testEngine()
	master := grid(
		[]string{"REPORT"},
		[]string{"TIME", "5"},
		[]string{"7:00-8:00", ""},
		[]string{"7:00-8:00_EVE", "keep"},
		[]string{"7:00-8:00", ""},
	)
	tallies := &Tallies{
		Slots: DateTallyMap{"2024-01-05": {
			"7:00-8:00":     1,
			"7:00-8:00_EVE": 2,
		}},
	}
	res := e.Fill(master, []string{"2024-01-05"}, tallies)
	if got := cellText(t, res.Grid, 3, 1); got != "keep" {
		t.Fatalf("suffixed label row = %q, want keep", got)
	}
	if got := cellText(t, res.Grid, 2, 1); got != "1" {
		t.Fatalf("morning 7:00-8:00 = %q, want 1", got)
	}
	if got := cellText(t, res.Grid, 4, 1); got != "2" {
		t.Fatalf("evening 7:00-8:00 = %q, want 2", got)
	}
}
