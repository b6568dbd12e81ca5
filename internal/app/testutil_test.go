package app

import (
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/ragchat/internal/config"
	"github.com/zhubert/ragchat/internal/keys"
	"github.com/zhubert/ragchat/internal/logger"
	"github.com/zhubert/ragchat/internal/sched"
	"github.com/zhubert/ragchat/internal/ui"
	"github.com/zhubert/ragchat/internal/widget"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	code := m.Run()
	logger.Reset()
	os.Exit(code)
}

// testConfig creates an empty config saved under a temp dir.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	t.Cleanup(func() { ui.SetTheme(ui.DefaultTheme) })
	return cfg
}

// testModel creates a sized Model driven by a virtual clock.
func testModel(t *testing.T, cfg *config.Config, opts ...Option) (*Model, *sched.Manual) {
	t.Helper()
	clock := sched.NewManual()
	m := New(cfg, "0.0.0-test", append([]Option{WithScheduler(clock)}, opts...)...)
	t.Cleanup(m.Close)
	return setSize(m, 120, 40), clock
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+c", "up", "down"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.ShiftEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}
	case keys.AltEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModAlt}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Delete:
		return tea.KeyPressMsg{Code: tea.KeyDelete}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlO:
		return tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	case keys.CtrlT:
		return tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}
	case keys.CtrlL:
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		// Fallback for unknown keys
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) *Model {
	for _, ch := range text {
		m = sendKey(m, string(ch))
	}
	return m
}

// setSize sends a window size message to the model.
func setSize(m *Model, width, height int) *Model {
	result, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return result.(*Model)
}

// send delivers msg and returns the updated model.
func send(m *Model, msg tea.Msg) *Model {
	result, _ := m.Update(msg)
	return result.(*Model)
}

func pendingNames(m *Model) []string {
	var names []string
	for _, f := range m.Widget().PendingFiles() {
		names = append(names, f.Name)
	}
	return names
}

func sampleFiles(names ...string) []widget.PendingFile {
	out := make([]widget.PendingFile, len(names))
	for i, n := range names {
		out[i] = widget.PendingFile{Name: n, Size: int64(1024 * (i + 1))}
	}
	return out
}
