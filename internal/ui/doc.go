// Package ui provides the user interface components for the ragchat TUI.
//
// # Overview
//
// The ui package implements the visual components of ragchat using the Bubble
// Tea framework and Lipgloss styling library. Components hold only what they
// need to draw; the chat widget in internal/widget owns the conversation and
// the pending files, and internal/app copies that state into these components.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├───────────────────────────────────┬─────────────────┤
//	│         Chat Panel                │   Files Panel   │
//	│         (2/3 width)               │   (1/3 width)   │
//	│                                   │                 │
//	├───────────────────────────────────┤   status line   │
//	│ Input (grows to MaxInputHeight)   │                 │
//	├───────────────────────────────────┴─────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Layout calculations for the current terminal size. The app
// owns one instance and passes it to the components that need it.
//
// Header: Application title plus message and file counts on a gradient.
//
// Footer: Context-aware keyboard shortcuts, replaced by a flash message
// when one is showing.
//
// Chat: Message viewport and the text input. Messages are labelled by
// sender and assistant replies are rendered as light markdown with
// syntax-highlighted code blocks.
//
// FilesPanel: Pending files with sizes, a removal control per row, and the
// upload status line.
//
// Modal: Popup dialog container. AddFilesState asks for paths and glob
// patterns using a huh form.
//
// # Focus System
//
// Tab toggles between FocusChat (keys go to the text input) and FocusFiles
// (arrow keys move through the pending files, x removes one).
package ui
