package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/ragchat/internal/widget"
)

func sampleFiles(n int) []widget.PendingFile {
	files := make([]widget.PendingFile, n)
	for i := range files {
		files[i] = widget.PendingFile{Name: fmt.Sprintf("doc%d.pdf", i), Size: int64(1024 * (i + 1)), Type: "application/pdf"}
	}
	return files
}

func TestFilesPanel_EmptyView(t *testing.T) {
	f := NewFilesPanel()
	f.SetSize(30, 12)

	view := ansi.Strip(f.View())
	if !strings.Contains(view, "Documents (0)") || !strings.Contains(view, "No files selected") {
		t.Errorf("unexpected empty view:\n%s", view)
	}
	if f.Cursor() != -1 {
		t.Errorf("Cursor() = %d, want -1 for an empty list", f.Cursor())
	}
}

func TestFilesPanel_ViewListsFiles(t *testing.T) {
	f := NewFilesPanel()
	f.SetSize(50, 12)
	f.SetFiles([]widget.PendingFile{
		{Name: "report.pdf", Size: 1536, Type: "application/pdf"},
		{Name: "notes.md", Size: 500},
	})

	view := ansi.Strip(f.View())
	for _, want := range []string{"Documents (2)", "report.pdf", "1.50 KB · application/pdf", "notes.md", "500.00 Bytes", removeMark} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestFilesPanel_RenderRowFitsWidth(t *testing.T) {
	f := NewFilesPanel()
	long := widget.PendingFile{Name: strings.Repeat("very-long-name-", 8) + ".pdf", Size: 2048, Type: "application/pdf"}

	for _, width := range []int{12, 24, 40, 80} {
		row := ansi.Strip(f.renderRow(long, width))
		if got := runewidth.StringWidth(row); got > width {
			t.Errorf("row width %d exceeds %d: %q", got, width, row)
		}
		if !strings.HasSuffix(row, removeMark) {
			t.Errorf("row should end with the remove mark: %q", row)
		}
		if !strings.Contains(row, "…") {
			t.Errorf("long name should be truncated: %q", row)
		}
	}
}

func TestFilesPanel_StatusLine(t *testing.T) {
	f := NewFilesPanel()
	f.SetSize(40, 12)
	f.SetFiles(sampleFiles(1))

	f.SetStatus(widget.StatusProcessing)
	if view := ansi.Strip(f.View()); !strings.Contains(view, "Processing files") {
		t.Errorf("processing status missing:\n%s", view)
	}

	f.SetStatus(widget.SuccessStatus(1))
	if f.Status() != widget.SuccessStatus(1) {
		t.Errorf("Status() = %q", f.Status())
	}
	if view := ansi.Strip(f.View()); !strings.Contains(view, "Successfully added") {
		t.Errorf("success status missing:\n%s", view)
	}

	f.SetStatus(widget.StatusIdle)
	if view := ansi.Strip(f.View()); strings.Contains(view, "Successfully") {
		t.Errorf("idle status should hide the line:\n%s", view)
	}
}

func TestFilesPanel_CursorMovement(t *testing.T) {
	f := NewFilesPanel()
	f.SetSize(30, 12)
	f.SetFiles(sampleFiles(3))

	f.MoveUp()
	if f.Cursor() != 0 {
		t.Errorf("MoveUp at top: Cursor() = %d, want 0", f.Cursor())
	}
	f.MoveDown()
	f.MoveDown()
	f.MoveDown()
	if f.Cursor() != 2 {
		t.Errorf("MoveDown past end: Cursor() = %d, want 2", f.Cursor())
	}

	// Removing the last row pulls the cursor back into range
	f.SetFiles(sampleFiles(2))
	if f.Cursor() != 1 {
		t.Errorf("Cursor() after shrink = %d, want 1", f.Cursor())
	}
}

func TestFilesPanel_RowAt(t *testing.T) {
	f := NewFilesPanel()
	f.SetSize(30, 12)
	f.SetFiles(sampleFiles(3))

	markCol := 30 - 3

	tests := []struct {
		name      string
		x, y      int
		wantIndex int
		wantMark  bool
	}{
		{"top border", 5, 0, -1, false},
		{"title", 5, 1, -1, false},
		{"first row", 5, 2, 0, false},
		{"third row", 5, 4, 2, false},
		{"below last row", 5, 5, -1, false},
		{"remove mark", markCol, 3, 1, true},
		{"left border", 0, 2, -1, false},
		{"right border", 29, 2, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, onRemove := f.RowAt(tt.x, tt.y)
			if index != tt.wantIndex || onRemove != tt.wantMark {
				t.Errorf("RowAt(%d, %d) = (%d, %v), want (%d, %v)",
					tt.x, tt.y, index, onRemove, tt.wantIndex, tt.wantMark)
			}
		})
	}
}

func TestFilesPanel_ScrollFollowsCursor(t *testing.T) {
	f := NewFilesPanel()
	f.SetSize(30, 6) // room for three rows
	f.SetFiles(sampleFiles(5))

	for range 4 {
		f.MoveDown()
	}
	if f.offset != 2 {
		t.Errorf("offset = %d, want 2", f.offset)
	}
	if index, _ := f.RowAt(5, 2); index != 2 {
		t.Errorf("RowAt on first visible row = %d, want 2", index)
	}

	view := ansi.Strip(f.View())
	if strings.Contains(view, "doc0.pdf") || !strings.Contains(view, "doc4.pdf") {
		t.Errorf("scrolled view shows the wrong rows:\n%s", view)
	}
}
