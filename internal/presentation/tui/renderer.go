package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/tovenja/blocksift/pkg/domain"
)

// NewRenderer returns a function that renders markdown using glamour.
// It auto-detects the terminal background for the style.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// FormatReport renders a pass report as markdown for terminal display.
func FormatReport(session domain.Session, report *domain.Report) string {
	var b strings.Builder

	title, verb := "Search", "found"
	if session.Commit {
		title, verb = "Replace", "replaced"
	}
	noun := "matches"
	if report.Count == 1 {
		noun = "match"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "**%d** %s %s for `%s`.\n", report.Count, noun, verb, session.Search)

	if len(report.Matches) > 0 && !session.Commit {
		b.WriteString("\n## Matched fields\n\n")
		for _, m := range report.Matches {
			fmt.Fprintf(&b, "- %s\n", m)
		}
	}
	return b.String()
}

// PlainReport renders a pass report as plain text for piped or --plain
// output. Matched terms are emphasized through termenv, which degrades to
// unstyled text when the output is not a terminal.
func PlainReport(session domain.Session, report *domain.Report) string {
	var b strings.Builder

	verb := "found"
	if session.Commit {
		verb = "replaced"
	}
	noun := "matches"
	if report.Count == 1 {
		noun = "match"
	}
	fmt.Fprintf(&b, "%d %s %s for %q.\n", report.Count, noun, verb, session.Search)

	if len(report.Matches) > 0 && !session.Commit {
		for _, m := range report.Matches {
			fmt.Fprintf(&b, "  - %s\n", HighlightMatch(m, session.Search))
		}
	}
	return b.String()
}

// HighlightMatch emphasizes the matched term inside a field text for plain
// (non-markdown) output.
func HighlightMatch(text, term string) string {
	if term == "" {
		return text
	}
	p := termenv.ColorProfile()
	styled := termenv.String(term).Foreground(p.Color("#f472b6")).Bold().String()
	return strings.ReplaceAll(text, term, styled)
}
