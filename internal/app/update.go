package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/ragchat/internal/clipboard"
	"github.com/zhubert/ragchat/internal/errors"
	"github.com/zhubert/ragchat/internal/files"
	"github.com/zhubert/ragchat/internal/keys"
	"github.com/zhubert/ragchat/internal/sched"
	"github.com/zhubert/ragchat/internal/ui"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case sched.FireMsg:
		if m.loop != nil {
			m.loop.Fire(msg)
		}

	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKeyPress(msg))

	case tea.PasteMsg:
		cmds = append(cmds, m.handlePaste(msg))

	case tea.MouseClickMsg:
		cmds = append(cmds, m.handleMouseClick(msg))

	case tea.MouseWheelMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		cmds = append(cmds, cmd)

	case FilesResolvedMsg:
		cmds = append(cmds, m.handleFilesResolved(msg))

	case PasteResolvedMsg:
		cmds = append(cmds, m.handlePasteResolved(msg))

	case DropBatchMsg:
		m.log.Debug("drop folder batch", "paths", len(msg.Paths))
		cmds = append(cmds, m.describeDropped(msg.Paths), m.listenForDrops())

	default:
		// Cursor blinks and form internals
		var cmd tea.Cmd
		if m.modal.IsVisible() {
			m.modal, cmd = m.modal.Update(msg)
		} else {
			m.chat, cmd = m.chat.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	if m.loop != nil {
		cmds = append(cmds, m.loop.Cmd())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == keys.CtrlC {
		return tea.Quit
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	switch key {
	case keys.CtrlO:
		m.modal.Show(ui.NewAddFilesState(m.config.GetStartDir()))
		return nil
	case keys.CtrlY:
		return m.copyLastReply()
	case keys.CtrlT:
		return m.cycleTheme()
	case keys.CtrlL:
		m.widget.Reset()
		return m.ShowFlashInfo("Conversation cleared")
	case keys.Tab, keys.ShiftTab:
		if m.focus == ui.FocusChat {
			return m.setFocus(ui.FocusFiles)
		}
		return m.setFocus(ui.FocusChat)
	}

	if m.focus == ui.FocusFiles {
		return m.handleFilesKey(msg)
	}
	return m.handleChatKey(msg)
}

func (m *Model) handleChatKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case keys.Enter:
		m.widget.SubmitText(m.chat.InputValue())
		return nil
	case keys.ShiftEnter, keys.AltEnter:
		m.chat.InsertNewline()
		return nil
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return cmd
}

func (m *Model) handleFilesKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case keys.Up, "k":
		m.files.MoveUp()
		return nil
	case keys.Down, "j":
		m.files.MoveDown()
		return nil
	case "x", keys.Delete, keys.Backspace:
		if idx := m.files.Cursor(); idx >= 0 {
			m.widget.RemoveFile(idx)
		}
		return nil
	}

	// Scrolling keys still reach the message viewport
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return cmd
}

func (m *Model) handleModalKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return nil
	case keys.Enter:
		return m.submitAddFiles()
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return cmd
}

// submitAddFiles resolves the typed patterns off the event loop. The
// modal stays open until the result arrives.
func (m *Model) submitAddFiles() tea.Cmd {
	state, ok := m.modal.State.(*ui.AddFilesState)
	if !ok {
		m.modal.Hide()
		return nil
	}

	patterns, err := files.SplitArgs(state.Patterns())
	if err != nil {
		m.modal.SetError(err.Error())
		return nil
	}
	if len(patterns) == 0 {
		m.modal.SetError("Enter at least one path or pattern")
		return nil
	}

	ctx, baseDir := m.ctx, state.BaseDir
	m.log.Debug("resolving patterns", "baseDir", baseDir, "patterns", patterns)
	return func() tea.Msg {
		found, err := files.Resolve(ctx, baseDir, patterns)
		return FilesResolvedMsg{Files: found, Err: err, Source: SourceDialog}
	}
}

func (m *Model) handleFilesResolved(msg FilesResolvedMsg) tea.Cmd {
	if msg.Err != nil {
		m.log.Warn("file selection incomplete", "source", msg.Source, "found", len(msg.Files), "kind", errors.GetKind(msg.Err), "error", msg.Err)
	}

	if msg.Source == SourceDialog && m.modal.IsVisible() {
		if len(msg.Files) == 0 {
			text := "No files found"
			if msg.Err != nil {
				text = firstLine(msg.Err.Error())
			}
			m.modal.SetError(text)
			return nil
		}
		m.modal.Hide()
	}

	if len(msg.Files) == 0 {
		if msg.Err != nil {
			return m.ShowFlashWarning(firstLine(msg.Err.Error()))
		}
		return nil
	}

	m.widget.SelectFiles(msg.Files)
	if msg.Err != nil {
		return m.ShowFlashWarning(fmt.Sprintf("Some files were skipped: %s", firstLine(msg.Err.Error())))
	}
	return nil
}

// handlePaste treats a paste made of existing file paths as a file
// selection (terminal drag and drop). Text that looks like paths is
// checked on disk off the event loop; anything else goes to the input.
func (m *Model) handlePaste(msg tea.PasteMsg) tea.Cmd {
	var cmd tea.Cmd
	if m.modal.IsVisible() {
		m.modal, cmd = m.modal.Update(msg)
		return cmd
	}

	if _, ok := files.PastedPaths(msg.Content); ok {
		ctx, text := m.ctx, msg.Content
		return func() tea.Msg {
			found, ok := files.ParsePaste(ctx, text)
			return PasteResolvedMsg{Text: text, Files: found, OK: ok}
		}
	}

	m.chat, cmd = m.chat.Update(msg)
	return cmd
}

func (m *Model) handlePasteResolved(msg PasteResolvedMsg) tea.Cmd {
	if msg.OK {
		m.log.Debug("paste recognized as files", "count", len(msg.Files))
		m.widget.SelectFiles(msg.Files)
		return nil
	}

	var cmd tea.Cmd
	paste := tea.PasteMsg{Content: msg.Text}
	if m.modal.IsVisible() {
		m.modal, cmd = m.modal.Update(paste)
		return cmd
	}
	m.chat, cmd = m.chat.Update(paste)
	return cmd
}

func (m *Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft || m.modal.IsVisible() || m.width == 0 {
		return nil
	}

	originX, originY := m.layout.FilesOrigin()
	if mouse.X < originX {
		return m.setFocus(ui.FocusChat)
	}
	if mouse.Y < originY {
		return nil
	}

	cmd := m.setFocus(ui.FocusFiles)
	idx, onRemove := m.files.RowAt(mouse.X-originX, mouse.Y-originY)
	if idx >= 0 && onRemove {
		m.widget.RemoveFile(idx)
	}
	return cmd
}

func (m *Model) copyLastReply() tea.Cmd {
	reply, ok := m.widget.LastReply()
	if !ok {
		return m.ShowFlashWarning("No reply to copy yet")
	}
	if err := clipboard.WriteText(reply); err != nil {
		m.log.Warn("copy failed", "error", err)
		return m.ShowFlashError("Clipboard unavailable")
	}
	return m.ShowFlashSuccess("Copied reply to clipboard")
}

func (m *Model) cycleTheme() tea.Cmd {
	next := ui.NextTheme(ui.CurrentThemeName())
	ui.SetTheme(next)
	m.chat.Refresh()

	m.config.SetTheme(string(next))
	if err := m.config.Save(); err != nil {
		m.log.Warn("failed to save theme", "theme", next, "error", err)
		return m.ShowFlashWarning("Theme changed but could not be saved")
	}
	return m.ShowFlashInfo("Theme: " + ui.GetTheme(next).Name)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
