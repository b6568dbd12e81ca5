package ui

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/ragchat/internal/widget"
)

func newSizedChat(t *testing.T) *Chat {
	t.Helper()
	c := NewChat()
	c.SetSize(60, 24)
	c.SetFocused(true)
	return c
}

func TestChat_Placeholder(t *testing.T) {
	c := newSizedChat(t)
	view := ansi.Strip(c.View())
	if !strings.Contains(view, "No messages yet") {
		t.Errorf("empty chat should show a placeholder, got:\n%s", view)
	}
}

func TestChat_SetMessages(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := newSizedChat(t)
	c.now = func() time.Time { return now }

	c.SetMessages([]widget.Message{
		{ID: "1", Text: "what is in the report?", Sender: widget.SenderUser, CreatedAt: now.Add(-2 * time.Minute)},
		{ID: "2", Text: "It covers **revenue**.", Sender: widget.SenderAssistant, CreatedAt: now},
	})

	if c.MessageCount() != 2 {
		t.Errorf("MessageCount() = %d, want 2", c.MessageCount())
	}

	view := ansi.Strip(c.View())
	for _, want := range []string{"You · 2 minutes ago", "what is in the report?", "Assistant · now", "It covers revenue."} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "No messages yet") {
		t.Error("placeholder should be gone once messages exist")
	}
}

func TestChat_ScrollsToNewest(t *testing.T) {
	c := NewChat()
	c.SetSize(40, 10)

	var messages []widget.Message
	for i := range 30 {
		messages = append(messages, widget.Message{Text: strings.Repeat("x", i+1), Sender: widget.SenderUser})
	}
	c.SetMessages(messages)

	if !c.viewport.AtBottom() {
		t.Error("viewport should be scrolled to the newest message")
	}
}

func TestChat_InputGrowsAndShrinks(t *testing.T) {
	c := newSizedChat(t)

	if c.InputHeight() != MinInputHeight {
		t.Fatalf("initial InputHeight() = %d, want %d", c.InputHeight(), MinInputHeight)
	}

	c.SetInput("first")
	c.InsertNewline()
	c.InsertNewline()
	if c.InputHeight() != 3 {
		t.Errorf("InputHeight() after two newlines = %d, want 3", c.InputHeight())
	}

	for range MaxInputHeight * 2 {
		c.InsertNewline()
	}
	if c.InputHeight() != MaxInputHeight {
		t.Errorf("InputHeight() = %d, want cap at %d", c.InputHeight(), MaxInputHeight)
	}
	if got := strings.Count(c.InputValue(), "\n"); got != 2+MaxInputHeight*2 {
		t.Errorf("input has %d newlines, want every newline kept", got)
	}

	c.ClearInput()
	if c.InputValue() != "" {
		t.Errorf("InputValue() after ClearInput = %q", c.InputValue())
	}
	if c.InputHeight() != MinInputHeight {
		t.Errorf("InputHeight() after ClearInput = %d, want %d", c.InputHeight(), MinInputHeight)
	}
}

func TestChat_EnterDoesNotInsertNewline(t *testing.T) {
	c := newSizedChat(t)
	c.SetInput("hello")

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if c.InputValue() != "hello" {
		t.Errorf("InputValue() = %q, enter should be left to the caller", c.InputValue())
	}
}

func TestChat_TypingRequiresFocus(t *testing.T) {
	c := newSizedChat(t)
	c.SetFocused(false)

	c, _ = c.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if c.InputValue() != "" {
		t.Errorf("blurred chat accepted input %q", c.InputValue())
	}

	c.SetFocused(true)
	c, _ = c.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if c.InputValue() != "a" {
		t.Errorf("InputValue() = %q, want %q", c.InputValue(), "a")
	}
}

func TestChat_ViewHeight(t *testing.T) {
	c := newSizedChat(t)
	if h := strings.Count(c.View(), "\n") + 1; h != 24 {
		t.Errorf("view height = %d, want 24", h)
	}
	c.InsertNewline()
	if h := strings.Count(c.View(), "\n") + 1; h != 24 {
		t.Errorf("view height with taller input = %d, want 24", h)
	}
}
