package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/dhoelle/stringify/internal/conformance"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	reasonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			PaddingLeft(4)
)

func printReport(w io.Writer, report conformance.Report) {
	fmt.Fprintln(w, titleStyle.Render("stringify conformance"))
	for i, res := range report.Results {
		fmt.Fprintf(w, "Test %d - %s: %s\n", i+1, res.Case.Description, status(res))
		if !res.Passed {
			fmt.Fprintln(w, reasonStyle.Render(res.Reason))
		}
	}

	summary := fmt.Sprintf("%d passed, %d failed", report.Passed(), report.Failed())
	if report.Failed() > 0 {
		summary = failStyle.Render(summary)
	} else {
		summary = passStyle.Render(summary)
	}
	fmt.Fprintln(w, summary)
}

func status(res conformance.Result) string {
	switch {
	case res.Passed && res.Case.WantError:
		return passStyle.Render("✅ Passed (Expected error)")
	case res.Passed:
		return passStyle.Render("✅ Passed")
	}
	return failStyle.Render("❌ Failed")
}
