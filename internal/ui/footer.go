package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the color and icon of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashMessage is a short-lived notice shown in place of the key hints
type FlashMessage struct {
	Text string
	Type FlashType
}

// Focus identifies which panel receives keys
type Focus int

const (
	FocusChat Focus = iota
	FocusFiles
)

var (
	chatBindings = []KeyBinding{
		{Key: "enter", Desc: "send"},
		{Key: "shift+enter", Desc: "newline"},
		{Key: "ctrl+o", Desc: "add files"},
		{Key: "tab", Desc: "files"},
		{Key: "ctrl+y", Desc: "copy reply"},
		{Key: "ctrl+t", Desc: "theme"},
		{Key: "ctrl+c", Desc: "quit"},
	}
	filesBindings = []KeyBinding{
		{Key: "↑/↓", Desc: "select"},
		{Key: "x", Desc: "remove"},
		{Key: "ctrl+o", Desc: "add files"},
		{Key: "tab", Desc: "chat"},
		{Key: "ctrl+l", Desc: "reset"},
		{Key: "ctrl+c", Desc: "quit"},
	}
	modalBindings = []KeyBinding{
		{Key: "enter", Desc: "add"},
		{Key: "esc", Desc: "cancel"},
	}
)

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	focus        Focus
	modalOpen    bool
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(focus Focus, modalOpen bool) {
	f.focus = focus
	f.modalOpen = modalOpen
}

// Bindings returns the key hints for the current context
func (f *Footer) Bindings() []KeyBinding {
	switch {
	case f.modalOpen:
		return modalBindings
	case f.focus == FocusFiles:
		return filesBindings
	default:
		return chatBindings
	}
}

// SetFlash shows text until ClearFlash is called
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.flashMessage = &FlashMessage{Text: text, Type: flashType}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// Flash returns the current flash message, or nil
func (f *Footer) Flash() *FlashMessage {
	return f.flashMessage
}

func (f *Footer) renderFlash() string {
	var icon string
	style := FlashInfoStyle
	switch f.flashMessage.Type {
	case FlashSuccess:
		icon, style = "✓ ", FlashSuccessStyle
	case FlashWarning:
		icon, style = "⚠ ", FlashWarningStyle
	case FlashError:
		icon, style = "✗ ", FlashErrorStyle
	default:
		icon = "ℹ "
	}
	return style.Render(icon + f.flashMessage.Text)
}

// View renders the footer
func (f *Footer) View() string {
	var content string
	if f.flashMessage != nil {
		content = f.renderFlash()
	} else {
		var parts []string
		for _, b := range f.Bindings() {
			parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
		}
		content = strings.Join(parts, "  "+FooterSepStyle.Render("|")+"  ")
	}

	// Keep to a single line: cut what doesn't fit
	content = ansi.Truncate(content, max(f.width-2, 0), "…")
	return FooterStyle.Width(f.width).Render(content)
}
