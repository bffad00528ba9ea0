package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ares-tools/ares-cli/internal/adapters/driving/tui/components/input"
	"github.com/ares-tools/ares-cli/internal/adapters/driving/tui/styles"
	"github.com/ares-tools/ares-cli/internal/core/domain"
)

// quitInputs are typed inputs that end the session, matched
// case-insensitively after whitespace stripping. Mirrors the prompt
// command's sentinel set so muscle memory carries over.
var quitInputs = map[string]struct{}{
	"q":       {},
	"quit":    {},
	"quit()":  {},
	"exit":    {},
	"exit()":  {},
	"abort":   {},
	"abort()": {},
	"0":       {},
}

// lookupDoneMsg carries a successful resolution into the update loop.
type lookupDoneMsg struct {
	subject *domain.Subject
	desc    string
}

// lookupFailedMsg carries a failed resolution into the update loop.
type lookupFailedMsg struct {
	err error
}

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// icoInput is the identifier entry component.
	icoInput *input.ICOInput

	// subject is the last resolved record, nil before the first lookup.
	subject *domain.Subject

	// desc is the formal description of the last resolved record.
	desc string

	// failed reports whether the last lookup failed.
	failed bool

	// loading reports an in-flight lookup.
	loading bool

	// width and height are terminal dimensions.
	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:    ports,
		ctx:      context.Background(),
		styles:   s,
		icoInput: input.NewICOInput(s),
	}, nil
}

// WithContext sets the context used for lookups.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	return a.icoInput.Init()
}

// Update handles messages and updates application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyEnter:
			return a.startLookup()
		}

	case lookupDoneMsg:
		a.loading = false
		a.failed = false
		a.subject = msg.subject
		a.desc = msg.desc
		return a, nil

	case lookupFailedMsg:
		a.loading = false
		a.failed = true
		a.subject = nil
		a.desc = ""
		return a, nil
	}

	var cmd tea.Cmd
	a.icoInput, cmd = a.icoInput.Update(msg)
	return a, cmd
}

// startLookup validates the typed input and dispatches the async lookup.
func (a *App) startLookup() (tea.Model, tea.Cmd) {
	raw := domain.StripWhitespace(a.icoInput.Value())
	if _, quit := quitInputs[strings.ToLower(raw)]; quit {
		return a, tea.Quit
	}
	if raw == "" {
		return a, nil
	}

	a.loading = true
	a.icoInput.Reset()
	return a, a.lookupCmd(raw)
}

// lookupCmd resolves raw input off the update loop.
func (a *App) lookupCmd(raw string) tea.Cmd {
	return func() tea.Msg {
		subject, err := a.ports.Lookup.LookupRaw(a.ctx, raw)
		if err != nil {
			return lookupFailedMsg{err: err}
		}

		// Sparse records still render their fields; the description
		// line is simply omitted.
		desc, err := subject.FormalDescription()
		if err != nil {
			desc = ""
		}
		return lookupDoneMsg{subject: subject, desc: desc}
	}
}

// View renders the application.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("ARES subject lookup"))
	b.WriteString("\n\n")
	b.WriteString(a.icoInput.View())
	b.WriteString("\n\n")

	switch {
	case a.loading:
		b.WriteString(a.styles.Muted.Render("Looking up..."))
	case a.failed:
		b.WriteString(a.styles.Error.Render("Subject could not be found.\nCheck the IČO and your network connection."))
	case a.subject != nil:
		b.WriteString(a.renderSubject())
	}

	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("enter: look up • esc/q: quit"))

	return b.String()
}

// renderSubject renders the result panel for the last resolved record.
func (a *App) renderSubject() string {
	var lines []string

	if a.desc != "" {
		lines = append(lines, a.styles.Success.Render(a.desc), "")
	}
	lines = append(lines,
		a.styles.Normal.Render("Name:    "+a.subject.Name),
		a.styles.Normal.Render("IČO:     "+a.subject.ICO),
		a.styles.Normal.Render("Seat:    "+a.subject.Seat.Text),
	)
	if a.subject.DIC != "" {
		lines = append(lines, a.styles.Normal.Render("DIČ:     "+a.subject.DIC))
	}
	if a.subject.LegalForm != "" {
		lines = append(lines, a.styles.Normal.Render("Form:    "+a.subject.LegalForm))
	}

	return a.styles.ResultPanel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
