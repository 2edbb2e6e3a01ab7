package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aerissecure/logtally"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle  = lipgloss.NewStyle().Width(16)
	countStyle  = lipgloss.NewStyle().Width(6).Align(lipgloss.Right).Foreground(lipgloss.Color("212"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
)

func renderSummary(w io.Writer, dates []string, s logtally.Summary) {
	fmt.Fprintln(w, titleStyle.Render("Attendance "+s.Date))
	if len(dates) > 0 {
		fmt.Fprintln(w, mutedStyle.Render("Dates in log: "+strings.Join(dates, ", ")))
	}
	fmt.Fprintf(w, "%s %d\n\n", headerStyle.Render("Total students:"), s.Total)

	fmt.Fprintln(w, headerStyle.Render("Programs"))
	if len(s.Programs) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  none"))
	}
	for _, e := range s.Programs {
		fmt.Fprintln(w, "  "+labelStyle.Render(e.Key)+countStyle.Render(fmt.Sprint(e.Count)))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Time slots"))
	if len(s.Slots) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  none"))
	}
	for _, e := range s.Slots {
		label := logtally.Slot(e.Key).Label()
		if strings.HasSuffix(e.Key, logtally.EveningSuffix) {
			label += " (eve)"
		}
		fmt.Fprintln(w, "  "+labelStyle.Render(label)+countStyle.Render(fmt.Sprint(e.Count)))
	}
	if s.Peak.Count > 0 {
		fmt.Fprintf(w, "\n%s %s (%d)\n", headerStyle.Render("Peak slot:"), logtally.Slot(s.Peak.Key).Label(), s.Peak.Count)
	}
}

func renderRangeTotal(w io.Writer, start, end string, total int) {
	fmt.Fprintf(w, "%s %d\n", headerStyle.Render(fmt.Sprintf("Students %s to %s:", start, end)), total)
}

func renderWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warnStyle.Render("warning: ")+msg)
}
