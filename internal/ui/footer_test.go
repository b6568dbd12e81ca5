package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestFooter_BindingsFollowContext(t *testing.T) {
	tests := []struct {
		name      string
		focus     Focus
		modalOpen bool
		wantKey   string
		wantDesc  string
	}{
		{"chat focused", FocusChat, false, "enter", "send"},
		{"files focused", FocusFiles, false, "x", "remove"},
		{"modal open", FocusFiles, true, "esc", "cancel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFooter()
			f.SetWidth(200)
			f.SetContext(tt.focus, tt.modalOpen)

			found := false
			for _, b := range f.Bindings() {
				if b.Key == tt.wantKey && b.Desc == tt.wantDesc {
					found = true
				}
			}
			if !found {
				t.Errorf("Bindings() missing %s: %s", tt.wantKey, tt.wantDesc)
			}

			view := ansi.Strip(f.View())
			if !strings.Contains(view, tt.wantKey+": "+tt.wantDesc) {
				t.Errorf("view %q missing %q", view, tt.wantKey+": "+tt.wantDesc)
			}
		})
	}
}

func TestFooter_Flash(t *testing.T) {
	f := NewFooter()
	f.SetWidth(100)

	if f.HasFlash() || f.Flash() != nil {
		t.Fatal("new footer should have no flash")
	}

	tests := []struct {
		flashType FlashType
		icon      string
	}{
		{FlashInfo, "ℹ"},
		{FlashSuccess, "✓"},
		{FlashWarning, "⚠"},
		{FlashError, "✗"},
	}
	for _, tt := range tests {
		f.SetFlash("copied", tt.flashType)
		view := ansi.Strip(f.View())
		if !strings.Contains(view, tt.icon+" copied") {
			t.Errorf("flash view %q missing %q", view, tt.icon+" copied")
		}
		if strings.Contains(view, "send") {
			t.Errorf("flash should replace key hints: %q", view)
		}
	}

	f.ClearFlash()
	if f.HasFlash() {
		t.Error("ClearFlash should remove the flash")
	}
	if view := ansi.Strip(f.View()); !strings.Contains(view, "send") {
		t.Errorf("key hints should return after ClearFlash: %q", view)
	}
}

func TestFooter_TruncatesToOneLine(t *testing.T) {
	f := NewFooter()
	f.SetWidth(30)

	view := f.View()
	if strings.Contains(view, "\n") {
		t.Errorf("footer should be a single line, got %q", ansi.Strip(view))
	}
	if w := ansi.StringWidth(view); w > 30 {
		t.Errorf("footer width = %d, want at most 30", w)
	}
}
