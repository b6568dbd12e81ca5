package ui

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/ragchat/internal/keys"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// Modal represents a popup dialog. State is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message shown under the modal content
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered on a screen of the given size
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Width(ModalWidth-6).Render(m.error)
	}

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		ModalStyle.Render(content),
	)
}

// =============================================================================
// AddFilesState - State for the Add Files modal
// =============================================================================

// AddFilesState asks for file paths and glob patterns, resolved against BaseDir.
type AddFilesState struct {
	BaseDir  string
	patterns string
	form     *huh.Form
}

func (*AddFilesState) modalState() {}

func (s *AddFilesState) Title() string { return "Add Files" }

func (s *AddFilesState) Help() string {
	return "Enter: add  Esc: cancel  Quote paths with spaces"
}

func (s *AddFilesState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

// Update passes keys to the form. Enter and Escape are left to the app.
func (s *AddFilesState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter, keys.Escape:
			return s, nil
		}
	}
	m, cmd := s.form.Update(msg)
	s.form = m.(*huh.Form)
	return s, cmd
}

// Patterns returns the text typed so far
func (s *AddFilesState) Patterns() string {
	return s.patterns
}

// NewAddFilesState creates the add-files dialog for patterns relative to baseDir
func NewAddFilesState(baseDir string) *AddFilesState {
	s := &AddFilesState{BaseDir: baseDir}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Files").
				Description("Relative to "+TruncatePath(baseDir, ModalWidth-20)).
				Placeholder("report.pdf docs/*.md").
				CharLimit(ModalInputCharLimit).
				Value(&s.patterns),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6).
		WithLayout(huh.LayoutStack)

	s.form.Init()
	return s
}

// TruncatePath shortens a path from the left to fit width columns
func TruncatePath(path string, width int) string {
	r := []rune(path)
	if len(r) <= width || width < 2 {
		return path
	}
	return "…" + string(r[len(r)-width+1:])
}

// ModalTheme returns a huh theme that matches the current color palette.
// It is called each time a form is created to pick up the current theme.
func ModalTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
		t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(ColorWarning).SetString(" *")
		t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(ColorWarning)

		t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(ColorPrimary)
		t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(ColorTextMuted)
		t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(ColorPrimary)
		t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(ColorText)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base

		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		t.Help = help.New().Styles

		return t
	})
}
