package logtally

import (
	"sort"
	"strings"
)

// TallyMap counts observations per category (program or slot key).
type TallyMap map[string]int

// Total is the sum of every count.
func (m TallyMap) Total() int {
	n := 0
	for _, v := range m {
		n += v
	}
	return n
}

// DateTallyMap holds one TallyMap per canonical date. A missing date means
// nothing was observed that day.
type DateTallyMap map[string]TallyMap

// For returns the tallies of date, or nil when the date was never seen.
func (m DateTallyMap) For(date string) TallyMap {
	return m[date]
}

func (m DateTallyMap) add(date, key string) {
	t, ok := m[date]
	if !ok {
		t = make(TallyMap)
		m[date] = t
	}
	t[key]++
}

// Tallies is everything extracted from one log file.
type Tallies struct {
	// Programs counts rows per normalized program label.
	Programs DateTallyMap
	// Slots counts rows per time slot key.
	Slots DateTallyMap
	// Dates lists every date with at least one counted row, earliest first.
	Dates []string
	// Counted and Skipped are the data rows that did and did not produce a
	// program tally.
	Counted int
	Skipped int
}

// Default returns the earliest date, or "" when the log had no valid rows.
func (t *Tallies) Default() string {
	if t == nil || len(t.Dates) == 0 {
		return ""
	}
	return t.Dates[0]
}

// Empty reports whether no rows were counted.
func (t *Tallies) Empty() bool {
	return t == nil || len(t.Programs) == 0
}

// logColumns are the positions of the log columns found in the header row.
type logColumns struct {
	header  int
	program int
	date    int
	time    int
}

// findLogColumns returns the first row naming both a program and a date
// column, together with the column positions. The time column is optional
// and is -1 when absent.
func (e *Engine) findLogColumns(g Grid) (logColumns, bool) {
	l := e.cfg.Labels
	for r, row := range g.Rows {
		program := indexContaining(row, l.ProgramColumn, -1)
		if program < 0 {
			continue
		}
		date := indexContaining(row, l.DateColumn, program)
		if date < 0 {
			continue
		}
		cols := logColumns{header: r, program: program, date: date, time: -1}
		for i, c := range row {
			if i == program || i == date {
				continue
			}
			if strings.Contains(strings.ToLower(c.Text()), l.TimeColumn) {
				cols.time = i
				break
			}
		}
		return cols, true
	}
	return logColumns{}, false
}

func indexContaining(row Row, keyword string, skip int) int {
	for i, c := range row {
		if i == skip {
			continue
		}
		if strings.Contains(strings.ToLower(c.Text()), keyword) {
			return i
		}
	}
	return -1
}

// BuildTallies scans a log grid and counts rows per (date, program) and per
// (date, slot). Rows with an unparsable date or an empty program are
// skipped. The time slot only needs a valid date, so a row without a
// program still counts toward its slot.
func (e *Engine) BuildTallies(g Grid) (*Tallies, error) {
	cols, ok := e.findLogColumns(g)
	if !ok {
		return nil, ErrHeaderNotFound
	}
	e.log.Debug("log header found", "row", cols.header, "program_col", cols.program, "date_col", cols.date, "time_col", cols.time)

	t := &Tallies{
		Programs: make(DateTallyMap),
		Slots:    make(DateTallyMap),
	}
	for r := cols.header + 1; r < len(g.Rows); r++ {
		row := g.Rows[r]
		dateCell, _ := row.Cell(cols.date)
		progCell, _ := row.Cell(cols.program)

		date, ok := NormalizeDate(dateCell)
		if !ok {
			t.Skipped++
			e.log.Debug("log row skipped", "row", r, "date", dateCell.Text())
			continue
		}

		if cols.time >= 0 {
			timeCell, _ := row.Cell(cols.time)
			if hour, ok := ParseHour(timeCell); ok {
				if slot, ok := e.slots.ForHour(hour); ok {
					t.Slots.add(date, string(slot))
				}
			}
		}

		prog := e.programs.Normalize(progCell.Text())
		if prog == "" || prog == e.cfg.Labels.Program {
			t.Skipped++
			e.log.Debug("log row skipped", "row", r, "date", date, "program", prog)
			continue
		}
		t.Programs.add(date, prog)
		t.Counted++
	}

	t.Dates = make([]string, 0, len(t.Programs))
	for d := range t.Programs {
		t.Dates = append(t.Dates, d)
	}
	sort.Strings(t.Dates)
	return t, nil
}
