package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// FilesWidthRatio is the denominator for the files panel width (1/3 of total width)
	FilesWidthRatio = 3

	// MinInputHeight is the height of an empty input textarea
	MinInputHeight = 1

	// MaxInputHeight is how far the input grows before it scrolls
	MaxInputHeight = 6

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// MinTerminalWidth and MinTerminalHeight keep layout math positive
	MinTerminalWidth  = 40
	MinTerminalHeight = 12
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 64

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 1024
)

// FlashDuration is how long a footer flash message stays visible.
const FlashDuration = 3 * time.Second
