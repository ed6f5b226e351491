package ui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/termstat/internal/errors"
	"golang.org/x/term"
)

// Output styles accepted by HeaderStyler and the output.style config key.
const (
	StyleAuto  = "auto"
	StylePlain = "plain"
	StyleColor = "color"
)

// ValidStyles lists the accepted output styles.
var ValidStyles = []string{StyleAuto, StylePlain, StyleColor}

// ParseStyle validates an output style. The empty string means StyleAuto.
func ParseStyle(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", StyleAuto:
		return StyleAuto, nil
	case StylePlain:
		return StylePlain, nil
	case StyleColor:
		return StyleColor, nil
	}
	return "", errors.New(errors.ErrConfig,
		"Unknown output style: "+s,
		"Use one of: "+strings.Join(ValidStyles, ", "))
}

// IsTerminal returns true if the file descriptor is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// HeaderStyler returns a function that colors a rendered table header.
// Group label lines are bold, the field name line uses ColorSecondary and
// every "|" separator is muted. The returned function never changes the
// visible width of a line.
//
// style is one of the Style constants; StyleAuto colors only when isTTY.
func HeaderStyler(style string, isTTY bool) func(string) string {
	profile := profileFor(style, isTTY)
	if profile == termenv.Ascii {
		return func(s string) string { return s }
	}

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	group := r.NewStyle().Bold(true).Foreground(ColorPrimary)
	field := r.NewStyle().Foreground(ColorSecondary)
	sep := r.NewStyle().Foreground(ColorMuted).Render("|")

	return func(header string) string {
		if header == "" {
			return header
		}
		lines := strings.Split(header, "\n")
		for i, line := range lines {
			st := group
			if i == len(lines)-1 {
				st = field
			}
			lines[i] = styleLine(line, st, sep)
		}
		return strings.Join(lines, "\n")
	}
}

func profileFor(style string, isTTY bool) termenv.Profile {
	switch style {
	case StylePlain:
		return termenv.Ascii
	case StyleColor:
		return termenv.ANSI
	}
	if !isTTY {
		return termenv.Ascii
	}
	p := lipgloss.ColorProfile()
	if p == termenv.Ascii {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// styleLine styles the text between separators. Runs of spaces are left
// unstyled so underlines and backgrounds never bleed into padding.
func styleLine(line string, st lipgloss.Style, sep string) string {
	parts := strings.Split(line, "|")
	for i, p := range parts {
		parts[i] = styleWords(p, st)
	}
	return strings.Join(parts, sep)
}

func styleWords(s string, st lipgloss.Style) string {
	var b strings.Builder
	start := -1
	for i, c := range s {
		if c == ' ' {
			if start >= 0 {
				b.WriteString(st.Render(s[start:i]))
				start = -1
			}
			b.WriteByte(' ')
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		b.WriteString(st.Render(s[start:]))
	}
	return b.String()
}
