package logtally

// FindDayColumn returns the column whose cell equals day in the first
// ScanRows rows of g. Column 0 holds row labels and is never matched. Day
// numbers only appear in header rows near the top, so deeper rows are not
// searched.
func (e *Engine) FindDayColumn(g Grid, day int) (int, bool) {
	limit := min(len(g.Rows), e.cfg.ScanRows)
	for r := 0; r < limit; r++ {
		for c := 1; c < len(g.Rows[r]); c++ {
			n, ok := g.Rows[r][c].Float()
			if ok && n == float64(day) {
				return c, true
			}
		}
	}
	return -1, false
}

// FillResult is a filled copy of a master template.
type FillResult struct {
	Grid Grid
	// Missing lists day numbers that have no column in the template.
	Missing []int
	// Filled marks the cells written from tallies, keyed by [row, col].
	Filled map[[2]int]bool
}

// Fill writes the tallies of every date in dates into a copy of master. Days
// without a column are reported in Missing and skipped. Cells whose tally is
// zero keep their template value. Total columns are recomputed afterwards.
func (e *Engine) Fill(master Grid, dates []string, t *Tallies) FillResult {
	res := FillResult{
		Grid:   master.Clone(),
		Filled: make(map[[2]int]bool),
	}
	if t == nil {
		t = &Tallies{}
	}
	for _, iso := range dates {
		day := DayOfMonth(iso)
		col, ok := e.FindDayColumn(res.Grid, day)
		if !ok {
			res.Missing = append(res.Missing, day)
			continue
		}
		e.fillColumn(&res, col, t.Programs.For(iso), t.Slots.For(iso))
	}
	if len(res.Missing) > 0 {
		e.log.Warn("day columns not found in master", "missing", res.Missing)
	}
	e.recomputeProgramTotals(&res.Grid)
	e.recomputeTimeTotals(&res.Grid)
	return res
}

func (e *Engine) fillColumn(res *FillResult, col int, programs, slots TallyMap) {
	// Slot labels repeat for morning and evening rows, so occurrences are
	// counted per label within this pass.
	seen := make(map[string]int)
	for r := range res.Grid.Rows {
		label := res.Grid.Label(r)
		if label == "" || e.cfg.Labels.Reserved(label) {
			continue
		}

		var count int
		if e.slots.IsLabel(label) {
			seen[label]++
			count = slots[string(e.slots.Resolve(label, seen[label]))]
		} else {
			count = programs[e.programs.Normalize(label)]
		}
		if count == 0 {
			continue
		}
		res.Grid.Set(r, col, NumberCell(float64(count)))
		res.Filled[[2]int{r, col}] = true
	}
}

// totalColumn returns the column of header row r whose text is "total".
func (e *Engine) totalColumn(g Grid, r int) (int, bool) {
	row, ok := g.Row(r)
	if !ok {
		return -1, false
	}
	for c, cell := range row {
		if e.cfg.Labels.is(cell.Text(), e.cfg.Labels.Total) {
			return c, true
		}
	}
	return -1, false
}

// recomputeProgramTotals sums the day columns of each program row into the
// Total column. The block starts below the totals header row and ends at the
// first summary or time row.
func (e *Engine) recomputeProgramTotals(g *Grid) {
	header := e.cfg.TotalsHeaderRow
	totalCol, ok := e.totalColumn(*g, header)
	if !ok {
		return
	}
	for r := header + 1; r < len(g.Rows); r++ {
		label := g.Label(r)
		if e.cfg.Labels.Boundary(label) {
			break
		}
		if label == "" || e.cfg.Labels.is(label, e.cfg.Labels.Total) {
			continue
		}
		g.Set(r, totalCol, sumCell(g.Rows[r], totalCol))
	}
}

// recomputeTimeTotals does the same for the time block, which starts at the
// row labeled "TIME" and runs to the end of the sheet.
func (e *Engine) recomputeTimeTotals(g *Grid) {
	header := -1
	for r := range g.Rows {
		if e.cfg.Labels.is(g.Label(r), e.cfg.Labels.Time) {
			header = r
			break
		}
	}
	if header < 0 {
		return
	}
	totalCol, ok := e.totalColumn(*g, header)
	if !ok {
		return
	}
	for r := header + 1; r < len(g.Rows); r++ {
		if g.Label(r) == "" {
			continue
		}
		g.Set(r, totalCol, sumCell(g.Rows[r], totalCol))
	}
}

// sumCell adds the numeric cells in columns 1..totalCol-1. A zero sum is
// written as a blank string to match the template's empty cells.
func sumCell(row Row, totalCol int) Cell {
	var sum float64
	for c := 1; c < totalCol; c++ {
		cell, ok := row.Cell(c)
		if !ok {
			continue
		}
		if n, ok := cell.Float(); ok {
			sum += n
		}
	}
	if sum == 0 {
		return StringCell("")
	}
	return NumberCell(sum)
}

// FilterRange returns master restricted to column 0 and the day columns of
// every date in r. Days without a column are left out silently.
func (e *Engine) FilterRange(master Grid, r DateRange) (Grid, error) {
	days := r.Days()
	if len(days) == 0 {
		return Grid{}, ErrInvalidRange
	}
	keep := map[int]bool{0: true}
	for _, iso := range days {
		if c, ok := e.FindDayColumn(master, DayOfMonth(iso)); ok {
			keep[c] = true
		}
	}
	out := Grid{Rows: make([]Row, len(master.Rows))}
	for i, row := range master.Rows {
		filtered := make(Row, 0, len(keep))
		for c, cell := range row {
			if keep[c] {
				filtered = append(filtered, cell)
			}
		}
		out.Rows[i] = filtered
	}
	return out, nil
}
