package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxVisibleOptions is how many options are listed at once.
const maxVisibleOptions = 10

var (
	accentColor = lipgloss.Color("208")
	titleStyle  = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
	cursorStyle = lipgloss.NewStyle().Foreground(accentColor)
)

// FilterableSelectModel implements a bubbletea model for filterable selection with a visible text input
type FilterableSelectModel struct {
	prompt      string
	options     []string
	filtered    []string
	selected    int
	filterInput textinput.Model
	cancelled   bool
	done        bool
}

func newFilterableSelectModel(prompt string, options []string) FilterableSelectModel {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 60
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(accentColor)
	ti.TextStyle = lipgloss.NewStyle().Foreground(accentColor)
	ti.PlaceholderStyle = hintStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(accentColor)

	if len(options) > 0 {
		ti.Placeholder = options[0]
	} else {
		ti.Placeholder = "Start typing to filter..."
	}

	return FilterableSelectModel{
		prompt:      prompt,
		options:     options,
		filtered:    options,
		filterInput: ti,
	}
}

// Init initializes the filterable select model with cursor blink
func (m FilterableSelectModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input events for the filterable select model
func (m FilterableSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if len(m.filtered) > 0 {
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		case "up", "ctrl+p":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "ctrl+n", "tab":
			if m.selected < len(m.filtered)-1 {
				m.selected++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	prevValue := m.filterInput.Value()
	m.filterInput, cmd = m.filterInput.Update(msg)

	if m.filterInput.Value() != prevValue {
		m.filterOptions()
	}

	return m, cmd
}

func (m *FilterableSelectModel) filterOptions() {
	filter := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))
	m.selected = 0

	if filter == "" {
		m.filtered = m.options
		return
	}

	var filtered []string
	for _, opt := range m.options {
		if strings.Contains(strings.ToLower(opt), filter) {
			filtered = append(filtered, opt)
		}
	}
	m.filtered = filtered

	if len(filtered) > 0 {
		m.filterInput.Placeholder = filtered[0]
	}
}

// window returns the range of filtered options to display, keeping the
// selected option visible.
func (m FilterableSelectModel) window() (int, int) {
	start := 0
	if m.selected >= maxVisibleOptions {
		start = m.selected - maxVisibleOptions + 1
	}
	end := min(start+maxVisibleOptions, len(m.filtered))
	return start, end
}

// View renders the filterable select model
func (m FilterableSelectModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.prompt) + "\n\n")

	if m.done {
		if m.selected < len(m.filtered) {
			fmt.Fprintf(&b, "> %s\n\n", m.filtered[m.selected])
		}
		return b.String()
	}

	b.WriteString(m.filterInput.View() + "\n\n")

	if len(m.filtered) == 0 {
		b.WriteString("  No matches found\n")
	} else {
		start, end := m.window()
		for i := start; i < end; i++ {
			if i == m.selected {
				b.WriteString(cursorStyle.Render(">") + " " + m.filtered[i] + "\n")
				continue
			}
			fmt.Fprintf(&b, "  %s\n", m.filtered[i])
		}
		if hidden := len(m.filtered) - (end - start); hidden > 0 {
			b.WriteString("\n" + hintStyle.Render(fmt.Sprintf("  (%d more...)", hidden)) + "\n")
		}
	}

	b.WriteString("\n" + hintStyle.Render("Type to filter, ↑/↓ to move, enter to select, esc to cancel"))
	return b.String()
}
