// Package outline shows extracted headings in the terminal, either as a
// printed outline or as an interactive picker.
package outline

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/metcalfc/simpletoc/internal/toc"
)

var (
	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFAA00"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			PaddingLeft(2)

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#BBBBBB")).
			PaddingLeft(4)

	anchorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			PaddingLeft(2)
)

// Print writes the headings of one document as an indented outline.
func Print(w io.Writer, name string, headings []toc.Heading) error {
	if _, err := fmt.Fprintln(w, nameStyle.Render(name)); err != nil {
		return err
	}
	if len(headings) == 0 {
		_, err := fmt.Fprintln(w, emptyStyle.Render("(no headings)"))
		return err
	}
	for _, h := range headings {
		if _, err := fmt.Fprintln(w, line(h)); err != nil {
			return err
		}
	}
	return nil
}

func line(h toc.Heading) string {
	style := primaryStyle
	if h.Tier == toc.Secondary {
		style = secondaryStyle
	}
	return style.Render(h.Text) + "  " + anchorStyle.Render("#"+h.ID)
}
