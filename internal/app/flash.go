package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/ragchat/internal/ui"
)

// ShowFlash displays a flash message in the footer and schedules its
// dismissal. A newer flash replaces the older one and its timer.
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)

	if m.flashTask != nil {
		m.flashTask.Cancel()
	}
	m.flashTask = m.scheduler.Schedule(ui.FlashDuration, m.footer.ClearFlash)

	if m.loop != nil {
		return m.loop.Cmd()
	}
	return nil
}

// ShowFlashError displays an error flash message
func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

// ShowFlashWarning displays a warning flash message
func (m *Model) ShowFlashWarning(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashWarning)
}

// ShowFlashInfo displays an info flash message
func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

// ShowFlashSuccess displays a success flash message
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}
