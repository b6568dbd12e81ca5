package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/ragchat/internal/widget"
)

// removeMark is the clickable control at the end of each file row.
const removeMark = "×"

// FilesPanel is the right panel: pending files and the upload status line.
type FilesPanel struct {
	width   int
	height  int
	focused bool
	files   []widget.PendingFile
	status  string
	cursor  int
	offset  int // first visible row
}

// NewFilesPanel creates an empty files panel
func NewFilesPanel() *FilesPanel {
	return &FilesPanel{}
}

// SetSize sets the panel dimensions
func (f *FilesPanel) SetSize(width, height int) {
	f.width = width
	f.height = height
	f.ensureVisible()
}

// SetFocused sets the focus state
func (f *FilesPanel) SetFocused(focused bool) {
	f.focused = focused
}

// IsFocused returns the focus state
func (f *FilesPanel) IsFocused() bool {
	return f.focused
}

// SetFiles replaces the listed files, keeping the cursor in range
func (f *FilesPanel) SetFiles(files []widget.PendingFile) {
	f.files = files
	f.cursor = min(f.cursor, max(len(files)-1, 0))
	f.ensureVisible()
}

// Files returns the listed files
func (f *FilesPanel) Files() []widget.PendingFile {
	return f.files
}

// SetStatus sets the upload status line; "" hides it
func (f *FilesPanel) SetStatus(status string) {
	f.status = status
	f.ensureVisible()
}

// Status returns the upload status line
func (f *FilesPanel) Status() string {
	return f.status
}

// Cursor returns the highlighted row, or -1 when the list is empty
func (f *FilesPanel) Cursor() int {
	if len(f.files) == 0 {
		return -1
	}
	return f.cursor
}

// MoveUp moves the cursor up one row
func (f *FilesPanel) MoveUp() {
	if f.cursor > 0 {
		f.cursor--
		f.ensureVisible()
	}
}

// MoveDown moves the cursor down one row
func (f *FilesPanel) MoveDown() {
	if f.cursor < len(f.files)-1 {
		f.cursor++
		f.ensureVisible()
	}
}

func (f *FilesPanel) innerWidth() int {
	return max(f.width-BorderSize, 0)
}

// statusLines returns the wrapped status text
func (f *FilesPanel) statusLines() []string {
	if f.status == "" {
		return nil
	}
	return strings.Split(wrapText(f.status, max(f.innerWidth()-2, 1)), "\n")
}

// visibleRows is how many file rows fit between the title and the status.
func (f *FilesPanel) visibleRows() int {
	rows := f.height - BorderSize - TitleHeight
	if n := len(f.statusLines()); n > 0 {
		rows -= n + 1 // blank separator line
	}
	return max(rows, 1)
}

func (f *FilesPanel) ensureVisible() {
	visible := f.visibleRows()
	if f.cursor < f.offset {
		f.offset = f.cursor
	}
	if f.cursor >= f.offset+visible {
		f.offset = f.cursor - visible + 1
	}
	f.offset = max(min(f.offset, len(f.files)-visible), 0)
}

// RowAt maps a position relative to the panel's top-left corner to a file
// index. onRemove reports whether the position is on that row's removal
// control. It returns -1 when the position is not on a file row.
func (f *FilesPanel) RowAt(x, y int) (index int, onRemove bool) {
	row := y - 1 - TitleHeight // top border, then title
	if row < 0 || row >= f.visibleRows() || x <= 0 || x >= f.width-1 {
		return -1, false
	}
	index = f.offset + row
	if index >= len(f.files) {
		return -1, false
	}
	// The mark sits just inside the row's right padding
	markCol := f.width - 1 - 1 - runewidth.StringWidth(removeMark)
	return index, x >= markCol-1 && x <= markCol+1
}

// renderRow lays out one file as "name  size · type ×" within width columns.
func (f *FilesPanel) renderRow(file widget.PendingFile, width int) string {
	meta := widget.FormatSize(file.Size)
	if file.Type != "" {
		meta += " · " + file.Type
	}

	markWidth := runewidth.StringWidth(removeMark)
	avail := width - markWidth - 1 // name, gap and meta share this
	metaWidth := runewidth.StringWidth(meta)

	// Drop the metadata before squeezing the name below ten columns
	if avail-metaWidth-2 < 10 {
		meta, metaWidth = "", 0
	}

	minGap := 1
	if metaWidth > 0 {
		minGap = 2
	}
	name := runewidth.Truncate(file.Name, max(avail-metaWidth-minGap, 1), "…")
	gap := max(avail-runewidth.StringWidth(name)-metaWidth, minGap)

	return name + strings.Repeat(" ", gap) + FileMetaStyle.Render(meta) + " " + FileRemoveStyle.Render(removeMark)
}

func (f *FilesPanel) renderStatus() string {
	lines := f.statusLines()
	if len(lines) == 0 {
		return ""
	}
	style := StatusSuccessStyle
	if f.status == widget.StatusProcessing {
		style = StatusProcessingStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

// View renders the files panel
func (f *FilesPanel) View() string {
	panelStyle := PanelStyle
	if f.focused {
		panelStyle = PanelFocusedStyle
	}

	inner := f.innerWidth()
	title := PanelTitleStyle.Render(fmt.Sprintf("Documents (%d)", len(f.files)))

	var rows []string
	if len(f.files) == 0 {
		rows = append(rows, FileEmptyStyle.Render("No files selected"))
	} else {
		end := min(f.offset+f.visibleRows(), len(f.files))
		for i := f.offset; i < end; i++ {
			style := FileItemStyle
			if f.focused && i == f.cursor {
				style = FileSelectedStyle
			}
			rows = append(rows, style.Width(inner).Render(f.renderRow(f.files[i], max(inner-2, 1))))
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, rows...)...)

	if status := f.renderStatus(); status != "" {
		// Pin the status to the bottom of the panel
		bodyHeight := max(f.height-BorderSize-len(f.statusLines()), lipgloss.Height(body))
		body = lipgloss.NewStyle().Height(bodyHeight).Render(body)
		body = lipgloss.JoinVertical(lipgloss.Left, body, lipgloss.NewStyle().PaddingLeft(1).Render(status))
	}

	return panelStyle.Width(f.width).Height(f.height).Render(body)
}
