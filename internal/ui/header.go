package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"
)

// appTitle is shown at the left of the header
const appTitle = " ragchat"

// Header represents the top header bar
type Header struct {
	width        int
	messageCount int
	fileCount    int
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetCounts sets the message and pending file counts shown at the right
func (h *Header) SetCounts(messages, files int) {
	h.messageCount = messages
	h.fileCount = files
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// View renders the header
func (h *Header) View() string {
	rightText := plural(h.messageCount, "message") + " · " + plural(h.fileCount, "file") + " "

	// Drop the counts rather than overlap the title on narrow terminals
	if uniseg.StringWidth(appTitle)+uniseg.StringWidth(rightText)+1 > h.width {
		rightText = ""
	}

	paddingLen := max(h.width-uniseg.StringWidth(appTitle)-uniseg.StringWidth(rightText), 0)
	content := appTitle + strings.Repeat(" ", paddingLen) + rightText

	return renderGradient(content, uniseg.GraphemeClusterCount(appTitle))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient draws content on a background fading from the theme's
// primary color to its background color. The first boldCount grapheme
// clusters are bold.
func renderGradient(content string, boldCount int) string {
	if content == "" {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)

	total := uniseg.GraphemeClusterCount(content)
	var result strings.Builder

	gr := uniseg.NewGraphemes(content)
	for i := 0; gr.Next(); i++ {
		t := float64(i) / float64(total)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Foreground(textColor).
			Bold(i < boldCount)

		result.WriteString(style.Render(gr.Str()))
	}

	return result.String()
}
