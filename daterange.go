package logtally

import (
	"time"
)

// DateRange is an inclusive span of canonical dates.
type DateRange struct {
	Start string
	End   string
}

// Days lists every date from Start to End inclusive. It is empty when either
// end is blank or unparsable, or when Start is after End.
func (r DateRange) Days() []string {
	if r.Start == "" || r.End == "" {
		return nil
	}
	start, err := time.Parse(ISODate, r.Start)
	if err != nil {
		return nil
	}
	end, err := time.Parse(ISODate, r.End)
	if err != nil || start.After(end) {
		return nil
	}
	var out []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format(ISODate))
	}
	return out
}

// Suffix is the file name fragment for the range.
func (r DateRange) Suffix() string {
	return r.Start + "_to_" + r.End
}
