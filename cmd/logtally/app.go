package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aerissecure/logtally"
)

// App wires the configuration, engine and session behind the commands.
type App struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	logLevel   string

	engine  *logtally.Engine
	session *logtally.Session
}

func NewApp(out, errOut io.Writer) *App {
	return &App{out: out, errOut: errOut}
}

// Init loads the configuration and starts a session. It runs before every
// command.
func (a *App) Init() error {
	level := slog.LevelInfo
	if a.logLevel == "" {
		a.logLevel = os.Getenv("LOGTALLY_LOG_LEVEL")
	}
	if a.logLevel != "" {
		if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", a.logLevel, err)
		}
	}
	logger := slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if a.configPath == "" {
		a.configPath = os.Getenv("LOGTALLY_CONFIG")
	}
	cfg, err := logtally.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.engine = logtally.NewEngine(cfg, logger)
	a.session = logtally.NewSession(a.engine)
	return nil
}

func (a *App) loadLog(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return a.session.LoadLog(filepath.Base(path), data)
}

func (a *App) loadMaster(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return a.session.LoadMaster(filepath.Base(path), data)
}

// Tally prints the dates of a log and the tallies of one of them.
func (a *App) Tally(logPath, date string) error {
	if err := a.loadLog(logPath); err != nil {
		return err
	}
	if date != "" {
		iso, ok := logtally.ParseDate(date)
		if !ok {
			return fmt.Errorf("invalid --date %q", date)
		}
		a.session.SelectDate(iso)
	}
	renderSummary(a.out, a.session.Dates(), a.session.Summary())
	return nil
}

// Fill writes the report for a single date.
func (a *App) Fill(logPath, masterPath, date, output string) error {
	if err := a.loadLog(logPath); err != nil {
		return err
	}
	if err := a.loadMaster(masterPath); err != nil {
		return err
	}
	if date != "" {
		iso, ok := logtally.ParseDate(date)
		if !ok {
			return fmt.Errorf("invalid --date %q", date)
		}
		a.session.SelectDate(iso)
	}
	rep, err := a.session.ExportDay()
	if err != nil {
		return err
	}
	return a.write(rep, output)
}

// Range writes the report filled for every date from start to end.
func (a *App) Range(logPath, masterPath, start, end, output string) error {
	if err := a.loadLog(logPath); err != nil {
		return err
	}
	if err := a.loadMaster(masterPath); err != nil {
		return err
	}
	rep, err := a.session.ExportRange(logtally.DateRange{Start: start, End: end})
	if err != nil {
		return err
	}
	renderRangeTotal(a.out, start, end, logtally.TotalInRange(a.session.Tallies(), logtally.DateRange{Start: start, End: end}))
	return a.write(rep, output)
}

// Filter writes the master template cut down to the columns of a range.
func (a *App) Filter(masterPath, start, end, output string) error {
	if err := a.loadMaster(masterPath); err != nil {
		return err
	}
	rep, err := a.session.ExportMasterRange(logtally.DateRange{Start: start, End: end})
	if err != nil {
		return err
	}
	return a.write(rep, output)
}

// write saves rep to output, or to its default file name in the working
// directory. An output that is an existing directory receives the default
// name inside it.
func (a *App) write(rep logtally.Report, output string) error {
	path := output
	if path == "" {
		path = rep.FileName
	} else if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		path = filepath.Join(path, rep.FileName)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := logtally.Export(f, path, rep.Grid, rep.Filled); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	if len(rep.Missing) > 0 {
		days := make([]string, len(rep.Missing))
		for i, d := range rep.Missing {
			days[i] = fmt.Sprint(d)
		}
		renderWarning(a.out, fmt.Sprintf("Day column not found in master for day(s): %s", strings.Join(days, ", ")))
	}
	fmt.Fprintf(a.out, "Report saved to %s\n", path)
	return nil
}
