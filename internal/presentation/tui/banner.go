package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Banner returns the ASCII art banner with the running version. Colors
// degrade through termenv when the output is not a terminal.
func Banner(version string) string {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`  _     _            _        _  __ _   `, "#818cf8"},
		{` | |__ | | ___   ___| | _____(_)/ _| |_ `, "#a78bfa"},
		{` | '_ \| |/ _ \ / __| |/ / __| | |_| __|`, "#c084fc"},
		{` | |_) | | (_) | (__|   <\__ \ |  _| |_ `, "#e879f9"},
		{` |_.__/|_|\___/ \___|_|\_\___/_|_|  \__|`, "#f472b6"},
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, l := range lines {
		b.WriteString(termenv.String(l.text).Foreground(p.Color(l.color)).String())
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "  v%s\n\n", strings.TrimSpace(version))
	return b.String()
}

// PrintBanner outputs the banner to stdout.
func PrintBanner(version string) {
	fmt.Print(Banner(version))
}
