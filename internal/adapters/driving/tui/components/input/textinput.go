// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ares-tools/ares-cli/internal/adapters/driving/tui/styles"
)

// ICOInput wraps a bubbles textinput for identifier entry.
type ICOInput struct {
	textinput textinput.Model
	styles    *styles.Styles
}

// NewICOInput creates a new identifier input component.
func NewICOInput(s *styles.Styles) *ICOInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Enter IČO..."
	ti.Focus()
	// Eight digits plus room for pasted whitespace.
	ti.CharLimit = 16
	ti.Width = 20

	return &ICOInput{
		textinput: ti,
		styles:    s,
	}
}

// Init initialises the input.
func (i *ICOInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (i *ICOInput) Update(msg tea.Msg) (*ICOInput, tea.Cmd) {
	var cmd tea.Cmd
	i.textinput, cmd = i.textinput.Update(msg)
	return i, cmd
}

// View renders the input.
func (i *ICOInput) View() string {
	label := i.styles.Title.Render("IČO: ")
	field := i.styles.InputField.Render(i.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (i *ICOInput) Value() string {
	return i.textinput.Value()
}

// SetValue sets the input value.
func (i *ICOInput) SetValue(value string) {
	i.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (i *ICOInput) Focus() tea.Cmd {
	return i.textinput.Focus()
}

// Blur removes focus from the input.
func (i *ICOInput) Blur() {
	i.textinput.Blur()
}

// Reset clears the input.
func (i *ICOInput) Reset() {
	i.textinput.Reset()
}
