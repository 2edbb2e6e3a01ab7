package logtally

import (
	"sort"
)

// Entry is one category and its count.
type Entry struct {
	Key   string
	Count int
}

// Summary is the per-date view shown next to a loaded log.
type Summary struct {
	Date     string
	Total    int
	Programs []Entry // by count, highest first
	Slots    []Entry // in slot order, zero counts omitted
	Peak     Entry   // busiest slot; zero Entry when no times were logged
}

// Summarize builds the summary of date from t.
func (e *Engine) Summarize(t *Tallies, date string) Summary {
	s := Summary{Date: date}
	if t == nil {
		return s
	}
	programs := t.Programs.For(date)
	s.Total = programs.Total()
	for k, v := range programs {
		s.Programs = append(s.Programs, Entry{Key: k, Count: v})
	}
	sort.Slice(s.Programs, func(i, j int) bool {
		if s.Programs[i].Count != s.Programs[j].Count {
			return s.Programs[i].Count > s.Programs[j].Count
		}
		return s.Programs[i].Key < s.Programs[j].Key
	})

	slots := t.Slots.For(date)
	for _, slot := range e.slots.Order() {
		n := slots[string(slot)]
		if n == 0 {
			continue
		}
		s.Slots = append(s.Slots, Entry{Key: string(slot), Count: n})
		if n > s.Peak.Count {
			s.Peak = Entry{Key: string(slot), Count: n}
		}
	}
	return s
}

// TotalInRange sums the program counts of every date in r.
func TotalInRange(t *Tallies, r DateRange) int {
	if t == nil {
		return 0
	}
	n := 0
	for _, d := range r.Days() {
		n += t.Programs.For(d).Total()
	}
	return n
}
