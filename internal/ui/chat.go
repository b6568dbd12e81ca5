package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/zhubert/ragchat/internal/keys"
	"github.com/zhubert/ragchat/internal/widget"
)

// Chat is the left panel: the message thread above a growing text input.
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	width    int
	height   int
	focused  bool
	messages []widget.Message
	now      func() time.Time
}

// NewChat creates a new chat panel
func NewChat() *Chat {
	ti := textarea.New()
	ti.Placeholder = "Ask about your documents..."
	ti.CharLimit = 0
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	ti.MaxHeight = MaxInputHeight
	ti.SetHeight(MinInputHeight)
	// Enter submits; newlines come from InsertNewline
	ti.KeyMap.InsertNewline.SetEnabled(false)
	ApplyTextareaStyles(&ti)

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport: vp,
		input:    ti,
		now:      time.Now,
	}
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.layout()
}

// layout sizes the viewport and input from the panel size and the number
// of lines currently in the input.
func (c *Chat) layout() {
	inputHeight := c.input.Height()
	chatPanelHeight := c.height - inputHeight - BorderSize

	c.viewport.SetWidth(max(c.width-BorderSize, 1))
	c.viewport.SetHeight(max(chatPanelHeight-BorderSize, 1))
	c.input.SetWidth(max(c.width-BorderSize-InputPaddingWidth, 1))
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) tea.Cmd {
	c.focused = focused
	if focused {
		return c.input.Focus()
	}
	c.input.Blur()
	return nil
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetMessages replaces the displayed thread and scrolls to the newest message.
func (c *Chat) SetMessages(messages []widget.Message) {
	c.messages = messages
	c.updateContent()
}

// MessageCount returns the number of displayed messages
func (c *Chat) MessageCount() int {
	return len(c.messages)
}

// InputValue returns the raw input text
func (c *Chat) InputValue() string {
	return c.input.Value()
}

// SetInput replaces the input text
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
	c.resizeInput()
}

// ClearInput empties the input and shrinks it back to one line
func (c *Chat) ClearInput() {
	c.input.Reset()
	c.resizeInput()
}

// InsertNewline adds a line break at the cursor
func (c *Chat) InsertNewline() {
	c.input.InsertString("\n")
	c.resizeInput()
}

// InputHeight returns the visible input height in lines
func (c *Chat) InputHeight() int {
	return c.input.Height()
}

// resizeInput grows the input with its content up to MaxInputHeight;
// beyond that the textarea scrolls.
func (c *Chat) resizeInput() {
	lines := min(max(c.input.LineCount(), MinInputHeight), MaxInputHeight)
	if lines == c.input.Height() {
		return
	}
	c.input.SetHeight(lines)
	c.layout()
	c.viewport.GotoBottom()
}

func (c *Chat) updateContent() {
	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	if len(c.messages) == 0 {
		c.viewport.SetContent(ChatPlaceholderStyle.Render("No messages yet. Ask a question, or press ctrl+o to add documents."))
		return
	}

	var sb strings.Builder
	for i, msg := range c.messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(c.renderLabel(msg))
		sb.WriteString("\n")

		if msg.Sender == widget.SenderAssistant {
			sb.WriteString(renderMarkdown(msg.Text, wrapWidth))
		} else {
			sb.WriteString(ChatMessageStyle.Render(wrapText(msg.Text, wrapWidth)))
		}
	}

	c.viewport.SetContent(sb.String())
	c.viewport.GotoBottom()
}

func (c *Chat) renderLabel(msg widget.Message) string {
	style, name := ChatUserStyle, "You"
	if msg.Sender == widget.SenderAssistant {
		style, name = ChatAssistantStyle, "Assistant"
	}
	label := style.Render(name)
	if msg.CreatedAt.IsZero() {
		return label
	}
	return label + ChatTimestampStyle.Render(" · "+humanize.RelTime(msg.CreatedAt, c.now(), "ago", "from now"))
}

// SetClock sets the time source for relative timestamps.
func (c *Chat) SetClock(now func() time.Time) {
	c.now = now
	c.updateContent()
}

// Refresh re-renders the thread, picking up theme changes and relative
// timestamps.
func (c *Chat) Refresh() {
	ApplyTextareaStyles(&c.input)
	c.updateContent()
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
		switch keyMsg.String() {
		case keys.PgUp, keys.PgDown, keys.CtrlU, keys.CtrlD:
			var cmd tea.Cmd
			c.viewport, cmd = c.viewport.Update(msg)
			return c, cmd
		}

		if !c.focused {
			return c, nil
		}

		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		c.resizeInput()
		return c, cmd
	}

	if paste, ok := msg.(tea.PasteMsg); ok && c.focused {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(paste)
		c.resizeInput()
		return c, cmd
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

// View renders the chat panel
func (c *Chat) View() string {
	panelStyle := PanelStyle
	inputStyle := ChatInputStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
		inputStyle = ChatInputFocusedStyle
	}

	chatPanelHeight := c.height - c.input.Height() - BorderSize
	chatPanel := panelStyle.Width(c.width).Height(chatPanelHeight).Render(c.viewport.View())
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, chatPanel, inputArea)
}
