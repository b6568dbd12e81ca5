package ui

import (
	"log/slog"

	"github.com/zhubert/ragchat/internal/logger"
)

// ViewContext holds centralized layout calculations.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	FilesWidth    int
	ChatWidth     int

	log *slog.Logger
}

// NewViewContext creates a layout for a terminal of unknown size.
func NewViewContext() *ViewContext {
	return &ViewContext{
		HeaderHeight: HeaderHeight,
		FooterHeight: FooterHeight,
		log:          logger.ComponentLogger("ui"),
	}
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height

	// Content area is everything between header and footer
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	v.FilesWidth = width / FilesWidthRatio
	v.ChatWidth = width - v.FilesWidth

	v.log.Debug("terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"filesWidth", v.FilesWidth,
		"chatWidth", v.ChatWidth,
	)
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return max(panelWidth-BorderSize, 0)
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return max(panelHeight-BorderSize, 0)
}

// FilesOrigin returns the screen column and row of the files panel's
// top-left corner.
func (v *ViewContext) FilesOrigin() (x, y int) {
	return v.ChatWidth, v.HeaderHeight
}
