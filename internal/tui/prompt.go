package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skarn-dev/sqlsweep/pkg/sqlsweep"
)

type promptStyles struct {
	Title lipgloss.Style
	Input lipgloss.Style
	Help  lipgloss.Style
}

func defaultPromptStyles() promptStyles {
	return promptStyles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Input: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// TargetPrompt is a single-field prompt asking for the target URL.
type TargetPrompt struct {
	input     textinput.Model
	styles    promptStyles
	value     string
	cancelled bool
	done      bool
}

// NewTargetPrompt creates the target URL prompt.
func NewTargetPrompt() TargetPrompt {
	ti := textinput.New()
	ti.Placeholder = "http://example.com/item.php?id=1"
	ti.CharLimit = sqlsweep.MaxTargetLength
	ti.Width = 60
	ti.Focus()

	return TargetPrompt{
		input:  ti,
		styles: defaultPromptStyles(),
	}
}

// Init implements tea.Model.
func (p TargetPrompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (p TargetPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			p.value = strings.TrimSpace(p.input.Value())
			p.done = true
			return p, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View implements tea.Model.
func (p TargetPrompt) View() string {
	if p.done || p.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(p.styles.Title.Render("Enter target URL"))
	b.WriteString("\n")
	b.WriteString(p.styles.Input.Render(p.input.View()))
	b.WriteString("\n")
	b.WriteString(p.styles.Help.Render("enter confirm • esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// Value returns the trimmed target URL entered by the user.
func (p TargetPrompt) Value() string {
	return p.value
}

// Cancelled returns true if the prompt was dismissed without a value.
func (p TargetPrompt) Cancelled() bool {
	return p.cancelled
}

// RunTargetPrompt executes the prompt and returns the entered target URL.
// Returns sqlsweep.ErrPromptCancelled when the user dismisses the prompt.
func RunTargetPrompt() (string, error) {
	p := tea.NewProgram(NewTargetPrompt())

	model, err := p.Run()
	if err != nil {
		return "", err
	}

	prompt := model.(TargetPrompt)
	if prompt.Cancelled() {
		return "", sqlsweep.ErrPromptCancelled
	}
	return prompt.Value(), nil
}
