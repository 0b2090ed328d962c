package outline

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/metcalfc/simpletoc/internal/toc"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("ENTER", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("Q", "quit"),
	),
}

var (
	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)
)

// Browser is a bubbletea model for picking one heading of a document.
type Browser struct {
	name     string
	headings []toc.Heading
	cursor   int
	selected int
	height   int
}

// NewBrowser creates a picker over headings.
func NewBrowser(name string, headings []toc.Heading) Browser {
	return Browser{
		name:     name,
		headings: headings,
		selected: -1,
		height:   24,
	}
}

func (b Browser) Init() tea.Cmd {
	return nil
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if b.cursor > 0 {
				b.cursor--
			}
			return b, nil

		case key.Matches(msg, keys.Down):
			if b.cursor < len(b.headings)-1 {
				b.cursor++
			}
			return b, nil

		case key.Matches(msg, keys.Select):
			if len(b.headings) > 0 {
				b.selected = b.cursor
			}
			return b, tea.Quit

		case key.Matches(msg, keys.Quit):
			return b, tea.Quit
		}

	case tea.WindowSizeMsg:
		b.height = msg.Height
		return b, nil
	}

	return b, nil
}

func (b Browser) View() string {
	if b.selected >= 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(nameStyle.Render(b.name))
	sb.WriteString("\n")

	if len(b.headings) == 0 {
		sb.WriteString(emptyStyle.Render("(no headings)"))
		sb.WriteString("\n")
	}

	// Reserve 2 lines: 1 for the name at top, 1 for controls at bottom
	avail := b.height - 2
	if avail < 1 {
		avail = 1
	}
	start := 0
	if b.cursor >= avail {
		start = b.cursor - avail + 1
	}
	end := start + avail
	if end > len(b.headings) {
		end = len(b.headings)
	}

	for i := start; i < end; i++ {
		marker := "  "
		if i == b.cursor {
			marker = cursorStyle.Render("> ")
		}
		sb.WriteString(marker)
		sb.WriteString(line(b.headings[i]))
		sb.WriteString("\n")
	}

	sb.WriteString(controlsStyle.Render(helpLine()))
	return sb.String()
}

// Selected returns the heading chosen with Enter, if any.
func (b Browser) Selected() (toc.Heading, bool) {
	if b.selected < 0 || b.selected >= len(b.headings) {
		return toc.Heading{}, false
	}
	return b.headings[b.selected], true
}

func helpLine() string {
	var parts []string
	for _, k := range []key.Binding{keys.Up, keys.Down, keys.Select, keys.Quit} {
		h := k.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
