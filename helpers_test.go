package logtally

import (
	"io"
	"log/slog"
	"testing"
)

func testEngine() *Engine {
	return NewEngine(DefaultConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func grid(rows ...[]string) Grid {
	return GridFromStrings(rows)
}

func cellText(t *testing.T, g Grid, r, c int) string {
	t.Helper()
	cell, ok := g.Cell(r, c)
	if !ok {
		t.Fatalf("cell (%d,%d) absent", r, c)
	}
	return cell.Text()
}
