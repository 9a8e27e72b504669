package main

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/RyanBlaney/sonido-negativo/logging"
)

var (
	colorAccent = lipgloss.Color("#2CD7C7")
	colorBorder = lipgloss.Color("#16858E")
	colorMuted  = lipgloss.Color("#2C4A54")
)

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	cell   lipgloss.Style
	frame  lipgloss.Style
}

func newStyles(colors bool) styles {
	s := styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Bold(true).PaddingRight(2),
		label:  lipgloss.NewStyle().PaddingRight(2),
		cell:   lipgloss.NewStyle().PaddingRight(2),
		frame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
	if colors {
		s.title = s.title.Foreground(colorAccent)
		s.header = s.header.Foreground(colorAccent)
		s.label = s.label.Foreground(colorMuted)
		s.frame = s.frame.BorderForeground(colorBorder)
	}
	return s
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && logging.IsTerminal(f)
}

// table lays rows out in left-aligned columns sized to their widest cell
func (s styles) table(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, c := range row {
			if i < len(widths) && lipgloss.Width(c) > widths[i] {
				widths[i] = lipgloss.Width(c)
			}
		}
	}

	render := func(style lipgloss.Style, cells []string) string {
		out := make([]string, len(cells))
		for i, c := range cells {
			out[i] = style.Width(widths[i] + style.GetPaddingRight()).Render(c)
		}
		return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, out...), " ")
	}

	lines := []string{render(s.header, header)}
	for _, row := range rows {
		lines = append(lines, render(s.cell, row))
	}
	return strings.Join(lines, "\n")
}

func (s styles) keyValues(rows [][2]string) string {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r[0]))
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = s.label.Width(width+s.label.GetPaddingRight()).Render(r[0]) + r[1]
	}
	return strings.Join(lines, "\n")
}

func (s styles) box(title, body string) string {
	return s.frame.Render(s.title.Render(title) + "\n\n" + body)
}
