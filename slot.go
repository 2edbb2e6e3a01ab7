package logtally

import (
	"regexp"
	"strings"
)

// Slot is the key of an hourly time bucket, e.g. "9:00-10:00". Slots whose
// label repeats in the evening carry the EveningSuffix.
type Slot string

// EveningSuffix marks the second occurrence of a repeated slot label.
const EveningSuffix = "_EVE"

// Label is the text printed for the slot in the master template.
func (s Slot) Label() string {
	return strings.TrimSuffix(string(s), EveningSuffix)
}

// SlotTable maps hours of the day to slots.
type SlotTable struct {
	byHour map[int]Slot
	order  []Slot
	labels map[string]bool
}

// DefaultSlots covers 7:00 through 21:00 in fourteen one-hour buckets.
func DefaultSlots() SlotTable {
	return NewSlotTable(map[int]Slot{
		7:  "7:00-8:00",
		8:  "8:00-9:00",
		9:  "9:00-10:00",
		10: "10:00-11:00",
		11: "11:00-12:00",
		12: "12:00-1:00",
		13: "1:00-2:00",
		14: "2:00-3:00",
		15: "3:00-4:00",
		16: "4:00-5:00",
		17: "5:00-6:00",
		18: "6:00-7:00",
		19: "7:00-8:00" + EveningSuffix,
		20: "8:00-9:00" + EveningSuffix,
	})
}

// NewSlotTable builds a table from an hour to slot mapping.
func NewSlotTable(byHour map[int]Slot) SlotTable {
	t := SlotTable{
		byHour: make(map[int]Slot, len(byHour)),
		labels: make(map[string]bool, len(byHour)),
	}
	for h := 0; h < 24; h++ {
		s, ok := byHour[h]
		if !ok {
			continue
		}
		t.byHour[h] = s
		t.order = append(t.order, s)
		t.labels[s.Label()] = true
	}
	return t
}

// ForHour returns the slot containing hour, or false when the hour falls
// outside the table.
func (t SlotTable) ForHour(hour int) (Slot, bool) {
	s, ok := t.byHour[hour]
	return s, ok
}

// Order returns the slots from earliest to latest hour.
func (t SlotTable) Order() []Slot {
	return append([]Slot(nil), t.order...)
}

// IsLabel reports whether label is the display text of any slot. Only slot
// keys carry the evening suffix, so a label spelled with it never matches.
func (t SlotTable) IsLabel(label string) bool {
	return t.labels[label]
}

// Resolve picks the slot for the n-th (1-based) template row printed with
// label. The first occurrence is the morning slot, later ones the evening
// slot.
func (t SlotTable) Resolve(label string, occurrence int) Slot {
	if occurrence <= 1 {
		return Slot(label)
	}
	return Slot(label + EveningSuffix)
}

var (
	clock12Re = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::\d{2})?\s*(AM|PM)$`)
	clock24Re = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::\d{2})?$`)
)

// ParseHour reads the hour of day from a time cell or a "H:MM AM" / "H:MM"
// string.
func ParseHour(c Cell) (int, bool) {
	switch c.Kind {
	case CellTime:
		return c.Time.Hour(), true
	case CellString:
	default:
		return 0, false
	}
	s := strings.ToUpper(strings.TrimSpace(c.Str))
	if m := clock12Re.FindStringSubmatch(s); m != nil {
		h := atoi(m[1])
		switch {
		case m[3] == "PM" && h != 12:
			h += 12
		case m[3] == "AM" && h == 12:
			h = 0
		}
		return h, true
	}
	if m := clock24Re.FindStringSubmatch(s); m != nil {
		return atoi(m[1]), true
	}
	return 0, false
}
