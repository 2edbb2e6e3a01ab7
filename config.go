package logtally

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Labels is the closed set of sentinel words used to classify rows and
// header cells. Every row classification in the package reads from here.
type Labels struct {
	// Row labels (column 0) in the master template, compared upper-cased.
	Program string `yaml:"program"`
	Summary string `yaml:"summary"`
	Time    string `yaml:"time"`
	Total   string `yaml:"total"`

	// Header keywords in the log file, matched as case-insensitive substrings.
	ProgramColumn string `yaml:"program_column"`
	DateColumn    string `yaml:"date_column"`
	TimeColumn    string `yaml:"time_column"`
}

// DefaultLabels returns the labels used by the stock master template.
func DefaultLabels() Labels {
	return Labels{
		Program:       "PROGRAM",
		Summary:       "SUMMARY",
		Time:          "TIME",
		Total:         "TOTAL",
		ProgramColumn: "program",
		DateColumn:    "date",
		TimeColumn:    "time",
	}
}

// Reserved reports whether label is a section header or footer rather than a
// data row.
func (l Labels) Reserved(label string) bool {
	up := strings.ToUpper(strings.TrimSpace(label))
	switch up {
	case l.Program, l.Summary, l.Time, l.Total:
		return true
	}
	return false
}

// Boundary reports whether label ends the program block.
func (l Labels) Boundary(label string) bool {
	up := strings.ToUpper(strings.TrimSpace(label))
	return up == l.Summary || up == l.Time
}

func (l Labels) is(label, want string) bool {
	return strings.ToUpper(strings.TrimSpace(label)) == want
}

// Config holds the tunables of the engine and the export naming.
type Config struct {
	// ReportPrefix starts every filled report file name.
	ReportPrefix string `yaml:"report_prefix"`
	// PreferredSheet is read from workbooks when present, else the first sheet.
	PreferredSheet string `yaml:"preferred_sheet"`
	// ScanRows bounds how many template rows are searched for day numbers.
	ScanRows int `yaml:"scan_rows"`
	// TotalsHeaderRow is the row holding the program block's "Total" header.
	TotalsHeaderRow int               `yaml:"totals_header_row"`
	Aliases         map[string]string `yaml:"aliases"`
	Labels          Labels            `yaml:"labels"`
}

// DefaultConfig returns the settings the stock template was built against.
func DefaultConfig() Config {
	return Config{
		ReportPrefix:    "Library_Mapua",
		PreferredSheet:  "Report",
		ScanRows:        12,
		TotalsHeaderRow: 1,
		Aliases: map[string]string{
			"MKT": "MARKETING",
			"MSE": "MEMSE",
		},
		Labels: DefaultLabels(),
	}
}

// LoadConfig starts from DefaultConfig, overlays the YAML file at path (when
// path is not empty) and then the LOGTALLY_* environment variables.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LOGTALLY_PREFIX"); v != "" {
		c.ReportPrefix = v
	}
	if v := os.Getenv("LOGTALLY_SHEET"); v != "" {
		c.PreferredSheet = v
	}
	if v := os.Getenv("LOGTALLY_SCAN_ROWS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("LOGTALLY_SCAN_ROWS must be a positive integer, got %q", v)
		}
		c.ScanRows = n
	}
	return nil
}

// normalize fills zero values left by a partial YAML file and upper-cases
// alias keys and row labels so lookups stay case-insensitive.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.ScanRows <= 0 {
		c.ScanRows = def.ScanRows
	}
	if c.TotalsHeaderRow < 0 {
		c.TotalsHeaderRow = def.TotalsHeaderRow
	}
	if c.ReportPrefix == "" {
		c.ReportPrefix = def.ReportPrefix
	}
	aliases := make(map[string]string, len(c.Aliases))
	for k, v := range c.Aliases {
		aliases[strings.ToUpper(strings.Join(strings.Fields(k), ""))] = strings.ToUpper(strings.TrimSpace(v))
	}
	c.Aliases = aliases

	l := &c.Labels
	fill := func(dst *string, def string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = def
		}
	}
	fill(&l.Program, def.Labels.Program)
	fill(&l.Summary, def.Labels.Summary)
	fill(&l.Time, def.Labels.Time)
	fill(&l.Total, def.Labels.Total)
	fill(&l.ProgramColumn, def.Labels.ProgramColumn)
	fill(&l.DateColumn, def.Labels.DateColumn)
	fill(&l.TimeColumn, def.Labels.TimeColumn)
	l.Program = strings.ToUpper(strings.TrimSpace(l.Program))
	l.Summary = strings.ToUpper(strings.TrimSpace(l.Summary))
	l.Time = strings.ToUpper(strings.TrimSpace(l.Time))
	l.Total = strings.ToUpper(strings.TrimSpace(l.Total))
	l.ProgramColumn = strings.ToLower(strings.TrimSpace(l.ProgramColumn))
	l.DateColumn = strings.ToLower(strings.TrimSpace(l.DateColumn))
	l.TimeColumn = strings.ToLower(strings.TrimSpace(l.TimeColumn))
}
