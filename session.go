package logtally

import (
	"log/slog"

	"github.com/google/uuid"
)

// Session holds the state of one user working through a report: the loaded
// log tallies, the selected date and the master template. Uploads replace
// state wholesale; a failed upload leaves the previous state untouched.
type Session struct {
	ID string

	engine *Engine
	log    *slog.Logger

	tallies   *Tallies
	selected  string
	master    Grid
	hasMaster bool
}

// NewSession starts an empty session on engine.
func NewSession(engine *Engine) *Session {
	id := uuid.NewString()
	return &Session{
		ID:     id,
		engine: engine,
		log:    engine.log.With("session", id),
	}
}

// Report is a grid ready to be written under FileName.
type Report struct {
	FileName string
	Grid     Grid
	// Missing lists days without a template column. Only set for filled
	// reports.
	Missing []int
	// Filled marks the cells written from tallies.
	Filled map[[2]int]bool
}

// LoadLog parses a daily log and replaces the session's tallies. The earliest
// date becomes the selected date.
func (s *Session) LoadLog(name string, data []byte) error {
	g, err := s.engine.ParseFile(name, data, true)
	if err != nil {
		s.log.Error("log upload failed", "file", name, "error", err)
		return err
	}
	t, err := s.engine.BuildTallies(g)
	if err != nil {
		s.log.Error("log upload failed", "file", name, "error", err)
		return err
	}
	s.tallies = t
	s.selected = t.Default()
	s.log.Info("log loaded", "file", name, "dates", len(t.Dates), "counted", t.Counted, "skipped", t.Skipped)
	return nil
}

// LoadMaster parses a master template, keeping blank rows, and replaces the
// session's template.
func (s *Session) LoadMaster(name string, data []byte) error {
	g, err := s.engine.ParseFile(name, data, false)
	if err != nil {
		s.log.Error("master upload failed", "file", name, "error", err)
		return err
	}
	s.master = g
	s.hasMaster = true
	s.log.Info("master loaded", "file", name, "rows", g.Len())
	return nil
}

// Tallies returns the tallies of the loaded log, or nil.
func (s *Session) Tallies() *Tallies { return s.tallies }

// Dates returns the dates found in the loaded log, earliest first.
func (s *Session) Dates() []string {
	if s.tallies == nil {
		return nil
	}
	return s.tallies.Dates
}

// Selected returns the date currently previewed.
func (s *Session) Selected() string { return s.selected }

// SelectDate switches the previewed date. Dates absent from the log are
// allowed and simply have no tallies.
func (s *Session) SelectDate(iso string) {
	s.selected = iso
}

// Master returns the loaded template and whether one is loaded.
func (s *Session) Master() (Grid, bool) { return s.master, s.hasMaster }

// Summary summarizes the selected date.
func (s *Session) Summary() Summary {
	return s.engine.Summarize(s.tallies, s.selected)
}

// ExportDay fills the master template for the selected date.
func (s *Session) ExportDay() (Report, error) {
	if !s.hasMaster || s.master.Len() == 0 {
		return Report{}, ErrNoMaster
	}
	if s.selected == "" {
		return Report{}, ErrNoLog
	}
	res := s.engine.Fill(s.master, []string{s.selected}, s.tallies)
	rep := Report{
		FileName: ReportFileName(s.engine.cfg.ReportPrefix, s.selected),
		Grid:     res.Grid,
		Missing:  res.Missing,
		Filled:   res.Filled,
	}
	s.log.Info("day report built", "date", s.selected, "file", rep.FileName, "missing", rep.Missing)
	return rep, nil
}

// ExportRange fills the master template for every date of r.
func (s *Session) ExportRange(r DateRange) (Report, error) {
	if !s.hasMaster || s.master.Len() == 0 {
		return Report{}, ErrNoMaster
	}
	if r.Start == "" || r.End == "" {
		return Report{}, ErrInvalidRange
	}
	if s.tallies.Empty() {
		return Report{}, ErrNoLog
	}
	days := r.Days()
	if len(days) == 0 {
		return Report{}, ErrInvalidRange
	}
	res := s.engine.Fill(s.master, days, s.tallies)
	rep := Report{
		FileName: RangeReportFileName(s.engine.cfg.ReportPrefix, r),
		Grid:     res.Grid,
		Missing:  res.Missing,
		Filled:   res.Filled,
	}
	s.log.Info("range report built", "start", r.Start, "end", r.End, "file", rep.FileName, "missing", rep.Missing)
	return rep, nil
}

// ExportMasterRange restricts the master template to the day columns of r.
func (s *Session) ExportMasterRange(r DateRange) (Report, error) {
	if !s.hasMaster || s.master.Len() == 0 {
		return Report{}, ErrNoMaster
	}
	g, err := s.engine.FilterRange(s.master, r)
	if err != nil {
		return Report{}, err
	}
	rep := Report{FileName: MasterRangeFileName(r), Grid: g}
	s.log.Info("master range built", "start", r.Start, "end", r.End, "file", rep.FileName)
	return rep, nil
}
