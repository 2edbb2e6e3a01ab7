package logtally

import (
	"errors"
	"log/slog"
)

var (
	// ErrHeaderNotFound is returned when no log row names both a Program and
	// a Date column.
	ErrHeaderNotFound = errors.New(`could not find "Program" and "Date" columns in the log file`)
	// ErrInvalidRange is returned for a blank, unparsable or reversed range.
	ErrInvalidRange = errors.New("date range is invalid or empty")
	// ErrUnsupportedFileType is returned for uploads that are not csv, xlsx or xls.
	ErrUnsupportedFileType = errors.New("unsupported file type, please upload .csv or .xlsx")
	// ErrEmptyWorkbook is returned for workbooks without any sheet.
	ErrEmptyWorkbook = errors.New("workbook has no sheets")
	// ErrNoMaster is returned by exports that need a master template.
	ErrNoMaster = errors.New("upload the master template first")
	// ErrNoLog is returned by exports that need a loaded log.
	ErrNoLog = errors.New("upload the daily log first")
)

// Engine reconciles attendance logs with master report templates.
type Engine struct {
	cfg      Config
	programs ProgramNormalizer
	slots    SlotTable
	log      *slog.Logger
}

// NewEngine returns an engine using cfg and the default time slots. A nil
// logger uses slog.Default().
func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	cfg.normalize()
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		cfg:      cfg,
		programs: NewProgramNormalizer(cfg.Aliases),
		slots:    DefaultSlots(),
		log:      logger,
	}
}

// Config returns the engine's settings.
func (e *Engine) Config() Config { return e.cfg }

// Slots returns the engine's time slot table.
func (e *Engine) Slots() SlotTable { return e.slots }

// NormalizeProgram canonicalizes a program label with the configured aliases.
func (e *Engine) NormalizeProgram(label string) string {
	return e.programs.Normalize(label)
}
