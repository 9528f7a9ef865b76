package ui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Provider provides the terminal output sink and interactive prompts
type Provider interface {
	// FilterableSelect presents a filterable list of options and returns the selected index and value
	FilterableSelect(prompt string, options []string) (int, string, error)

	// Interactive reports whether prompts can be shown
	Interactive() bool

	// ShowInfo displays an informational message (no emoji, no special formatting)
	ShowInfo(message string)

	// ShowSuccess displays a success message
	ShowSuccess(message string)
}

var _ Provider = (*BubbleteaUI)(nil)

// BubbleteaUI implementation of the UI Provider interface.
type BubbleteaUI struct {
	stdout         io.Writer
	stderr         io.Writer
	interactive    bool
	programOptions []tea.ProgramOption
}

// New creates a new UI instance using bubbletea. Prompts are enabled when
// stdin and stdout are terminals and CI is not set. Prompts render on stderr
// so stdout only carries command output.
func New() *BubbleteaUI {
	return &BubbleteaUI{
		stdout:         os.Stdout,
		stderr:         os.Stderr,
		interactive:    isTerminal(os.Stdin) && isTerminal(os.Stdout) && os.Getenv("CI") == "",
		programOptions: []tea.ProgramOption{tea.WithOutput(os.Stderr)},
	}
}

// NewWithOptions creates a new UI instance with custom options for testing
func NewWithOptions(stdout, stderr io.Writer, input io.Reader) *BubbleteaUI {
	var options []tea.ProgramOption

	if input != nil {
		options = append(options, tea.WithInput(input))
	}

	if stderr != nil {
		options = append(options, tea.WithOutput(stderr))
	}

	// Always disable renderer for testing to avoid TTY issues
	options = append(options, tea.WithoutRenderer())

	return &BubbleteaUI{
		stdout:         stdout,
		stderr:         stderr,
		interactive:    input != nil,
		programOptions: options,
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Interactive reports whether prompts can be shown
func (ui *BubbleteaUI) Interactive() bool {
	return ui.interactive
}

// FilterableSelect presents a filterable list of options and returns the selected index and value
func (ui *BubbleteaUI) FilterableSelect(prompt string, options []string) (int, string, error) {
	if len(options) == 0 {
		return 0, "", fmt.Errorf("no options to select from")
	}

	model := newFilterableSelectModel(prompt, options)
	program := tea.NewProgram(model, ui.programOptions...)

	finalModel, err := program.Run()
	if err != nil {
		return 0, "", fmt.Errorf("error running filterable select: %w", err)
	}

	m := finalModel.(FilterableSelectModel)
	if m.cancelled {
		return 0, "", fmt.Errorf("selection cancelled")
	}

	if len(m.filtered) == 0 || m.selected >= len(m.filtered) {
		return 0, "", fmt.Errorf("no valid selection")
	}

	// map the filtered selection back to the caller's index
	selectedValue := m.filtered[m.selected]
	for i, option := range options {
		if option == selectedValue {
			return i, selectedValue, nil
		}
	}

	return 0, "", fmt.Errorf("selected item not found in original options")
}

// ShowInfo displays an informational message (no emoji, no special formatting)
func (ui *BubbleteaUI) ShowInfo(message string) {
	fmt.Fprintln(ui.stdout, message)
}

// ShowSuccess displays a success message
func (ui *BubbleteaUI) ShowSuccess(message string) {
	fmt.Fprintln(ui.stdout, message)
}
