package logtally

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/aerissecure/logtally/xlsx"
)

// ReadFile loads the file at path with ParseFile.
func (e *Engine) ReadFile(path string, skipEmpty bool) (Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Grid{}, err
	}
	return e.ParseFile(filepath.Base(path), data, skipEmpty)
}

// ParseFile turns uploaded bytes into a Grid. The extension of name selects
// the format: .csv, .xlsx or .xls. Workbooks are read from the preferred
// sheet when present, else from the first sheet. With skipEmpty, rows without
// any value are dropped; otherwise blank rows are kept in place.
func (e *Engine) ParseFile(name string, data []byte, skipEmpty bool) (Grid, error) {
	var (
		g   Grid
		err error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		g, err = parseCSV(bytes.NewReader(data))
	case ".xlsx":
		var m xlsx.WorkbookModel
		m, err = xlsx.ParseWorkbookModel(bytes.NewReader(data), int64(len(data)))
		if err == nil {
			g, err = e.gridFromWorkbook(m)
		}
	case ".xls":
		var m xlsx.WorkbookModel
		m, err = xlsx.ParseXLS(bytes.NewReader(data))
		if err == nil {
			g, err = e.gridFromWorkbook(m)
		}
	default:
		return Grid{}, fmt.Errorf("%s: %w", name, ErrUnsupportedFileType)
	}
	if err != nil {
		return Grid{}, fmt.Errorf("parse %s: %w", name, err)
	}
	if skipEmpty {
		g = dropEmptyRows(g)
	}
	e.log.Debug("file parsed", "file", name, "rows", g.Len(), "skip_empty", skipEmpty)
	return g, nil
}

// parseCSV reads delimited text. A UTF-8 or UTF-16 byte order mark is
// honoured and the delimiter is picked by sniffDelimiter. Blank lines, which
// encoding/csv skips, are restored as empty rows from the line positions of
// the records around them.
func parseCSV(r io.Reader) (Grid, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	text, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return Grid{}, err
	}
	reader := csv.NewReader(bytes.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var g Grid
	lastLine := 0
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Grid{}, err
		}
		start, _ := reader.FieldPos(0)
		for ; lastLine+1 < start; lastLine++ {
			g.Rows = append(g.Rows, Row{})
		}
		endLine, _ := reader.FieldPos(len(rec) - 1)
		lastLine = endLine + strings.Count(rec[len(rec)-1], "\n")

		row := make(Row, len(rec))
		for i, v := range rec {
			if v != "" {
				row[i] = StringCell(v)
			}
		}
		g.Rows = append(g.Rows, row)
	}
	return g, nil
}

// csvDelimiters are the separators spreadsheet exports use, in order of
// preference on a tie.
var csvDelimiters = []rune{',', ';', '\t', '|'}

// sniffLines is how many non-blank lines sniffDelimiter looks at.
const sniffLines = 5

// sniffDelimiter counts each candidate separator outside quoted text on the
// first non-blank lines and returns the most frequent one. Text without any
// candidate is read as comma separated.
func sniffDelimiter(text []byte) rune {
	counts := make(map[rune]int, len(csvDelimiters))
	var (
		inQuote  bool
		lines    int
		nonBlank bool
	)
	for _, ch := range string(text) {
		switch {
		case ch == '"':
			inQuote = !inQuote
		case inQuote:
		case ch == '\n':
			if nonBlank {
				lines++
			}
			nonBlank = false
		case ch == '\r' || ch == ' ':
		default:
			nonBlank = true
			if slices.Contains(csvDelimiters, ch) {
				counts[ch]++
			}
		}
		if lines >= sniffLines {
			break
		}
	}
	best := csvDelimiters[0]
	for _, d := range csvDelimiters[1:] {
		if counts[d] > counts[best] {
			best = d
		}
	}
	return best
}

func (e *Engine) gridFromWorkbook(m xlsx.WorkbookModel) (Grid, error) {
	sheet, ok := m.Sheet(e.cfg.PreferredSheet)
	if !ok {
		return Grid{}, ErrEmptyWorkbook
	}
	g := Grid{Rows: make([]Row, len(sheet.Rows))}
	for i, rr := range sheet.Rows {
		row := make(Row, len(rr.Cells))
		for j, rc := range rr.Cells {
			if rc == nil {
				continue
			}
			switch rc.Kind {
			case xlsx.KindNumber:
				row[j] = NumberCell(rc.Number)
			case xlsx.KindTime:
				row[j] = TimeCell(rc.Time)
			default:
				if rc.Value != "" {
					row[j] = StringCell(rc.Value)
				}
			}
		}
		g.Rows[i] = row
	}
	return g, nil
}

func dropEmptyRows(g Grid) Grid {
	out := Grid{Rows: make([]Row, 0, len(g.Rows))}
	for _, row := range g.Rows {
		for _, c := range row {
			if !c.Blank() {
				out.Rows = append(out.Rows, row)
				break
			}
		}
	}
	return out
}
