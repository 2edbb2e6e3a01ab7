package logtally

import (
	"reflect"
	"testing"
)

func TestDateRangeDays(t *testing.T) {
	tests := []struct {
		r    DateRange
		want []string
	}{
		{DateRange{"2024-01-30", "2024-02-02"}, []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}},
		{DateRange{"2024-01-05", "2024-01-05"}, []string{"2024-01-05"}},
		{DateRange{"2024-01-06", "2024-01-05"}, nil},
		{DateRange{"", "2024-01-05"}, nil},
		{DateRange{"2024-01-05", "Jan 6"}, nil},
	}
	for _, tt := range tests {
		if got := tt.r.Days(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%+v.Days() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	e := testEngine()
	tallies := &Tallies{
		Programs: DateTallyMap{
			"2024-01-05": {"IT": 2, "CS": 2, "MARKETING": 5},
			"2024-01-06": {"IT": 1},
		},
		Slots: DateTallyMap{
			"2024-01-05": {"1:00-2:00": 3, "9:00-10:00": 1, "7:00-8:00_EVE": 3, "8:00-9:00": 0},
		},
	}

	s := e.Summarize(tallies, "2024-01-05")
	if s.Total != 9 {
		t.Fatalf("total = %d, want 9", s.Total)
	}
	wantPrograms := []Entry{{"MARKETING", 5}, {"CS", 2}, {"IT", 2}}
	if !reflect.DeepEqual(s.Programs, wantPrograms) {
		t.Fatalf("programs = %v, want %v", s.Programs, wantPrograms)
	}
	wantSlots := []Entry{{"9:00-10:00", 1}, {"1:00-2:00", 3}, {"7:00-8:00_EVE", 3}}
	if !reflect.DeepEqual(s.Slots, wantSlots) {
		t.Fatalf("slots = %v, want %v", s.Slots, wantSlots)
	}
	// Ties keep the earlier slot.
	if s.Peak != (Entry{"1:00-2:00", 3}) {
		t.Fatalf("peak = %v", s.Peak)
	}

	empty := e.Summarize(tallies, "2024-02-01")
	if empty.Total != 0 || len(empty.Programs) != 0 || empty.Peak.Count != 0 {
		t.Fatalf("summary of an unseen date = %+v", empty)
	}
	if got := e.Summarize(nil, "2024-01-05"); got.Total != 0 {
		t.Fatalf("summary of nil tallies = %+v", got)
	}
}

func TestTotalInRange(t *testing.T) {
	tallies := &Tallies{Programs: DateTallyMap{
		"2024-01-04": {"IT": 7},
		"2024-01-05": {"IT": 2, "CS": 1},
		"2024-01-06": {"IT": 1},
	}}
	if got := TotalInRange(tallies, DateRange{"2024-01-05", "2024-01-08"}); got != 4 {
		t.Fatalf("TotalInRange = %d, want 4", got)
	}
	if got := TotalInRange(tallies, DateRange{"2024-01-08", "2024-01-05"}); got != 0 {
		t.Fatalf("reversed range total = %d, want 0", got)
	}
}
