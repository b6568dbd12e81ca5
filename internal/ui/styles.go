package ui

import (
	"image/color"

	"charm.land/bubbles/v2/textarea"
	"charm.land/lipgloss/v2"
)

// Color palette, refreshed from the current theme by regenerateStyles
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorMuted       color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorUser        color.Color
	ColorAssistant   color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
)

// Header styles
var HeaderTitleStyle lipgloss.Style

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
	FooterSepStyle  lipgloss.Style
)

// Flash styles, one per FlashType
var (
	FlashInfoStyle    lipgloss.Style
	FlashSuccessStyle lipgloss.Style
	FlashWarningStyle lipgloss.Style
	FlashErrorStyle   lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Chat styles
var (
	ChatUserStyle         lipgloss.Style
	ChatAssistantStyle    lipgloss.Style
	ChatTimestampStyle    lipgloss.Style
	ChatMessageStyle      lipgloss.Style
	ChatPlaceholderStyle  lipgloss.Style
	ChatInputStyle        lipgloss.Style
	ChatInputFocusedStyle lipgloss.Style
)

// Files panel styles
var (
	FileItemStyle     lipgloss.Style
	FileSelectedStyle lipgloss.Style
	FileMetaStyle     lipgloss.Style
	FileRemoveStyle   lipgloss.Style
	FileEmptyStyle    lipgloss.Style
)

// Upload status styles
var (
	StatusProcessingStyle lipgloss.Style
	StatusSuccessStyle    lipgloss.Style
	StatusErrorStyle      lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Markdown rendering styles
var (
	MarkdownH1Style         lipgloss.Style
	MarkdownH2Style         lipgloss.Style
	MarkdownH3Style         lipgloss.Style
	MarkdownBoldStyle       lipgloss.Style
	MarkdownItalicStyle     lipgloss.Style
	MarkdownInlineCodeStyle lipgloss.Style
	MarkdownListBulletStyle lipgloss.Style
	MarkdownBlockquoteStyle lipgloss.Style
	MarkdownHRStyle         lipgloss.Style
	MarkdownLinkStyle       lipgloss.Style
)

func init() {
	regenerateStyles()
}

// regenerateStyles rebuilds every style from the current theme. SetTheme
// calls it, so components pick up a theme change on their next render.
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUser = lipgloss.Color(t.User)
	ColorAssistant = lipgloss.Color(t.Assistant)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	HeaderTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Padding(0, 1)
	FooterKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)
	FooterDescStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	FooterSepStyle = lipgloss.NewStyle().Foreground(ColorBorder)

	FlashInfoStyle = lipgloss.NewStyle().Foreground(ColorInfo)
	FlashSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	FlashWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	FlashErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)
	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)
	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	ChatUserStyle = lipgloss.NewStyle().Foreground(ColorUser).Bold(true)
	ChatAssistantStyle = lipgloss.NewStyle().Foreground(ColorAssistant).Bold(true)
	ChatTimestampStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
	ChatMessageStyle = lipgloss.NewStyle().Foreground(ColorText)
	ChatPlaceholderStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
	ChatInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	FileItemStyle = lipgloss.NewStyle().Foreground(ColorText).Padding(0, 1)
	FileSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)
	FileMetaStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	FileRemoveStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	FileEmptyStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).Padding(0, 1)

	StatusProcessingStyle = lipgloss.NewStyle().Foreground(ColorWarning).Italic(true)
	StatusSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	StatusErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	MarkdownH1Style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.MarkdownH1))
	MarkdownH2Style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.MarkdownH2))
	MarkdownH3Style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.MarkdownH3))
	MarkdownBoldStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	MarkdownItalicStyle = lipgloss.NewStyle().Italic(true).Foreground(ColorText)
	MarkdownInlineCodeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownCode)).
		Background(lipgloss.Color(t.MarkdownCodeBg))
	MarkdownListBulletStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.MarkdownListItem))
	MarkdownBlockquoteStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		BorderLeft(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	MarkdownHRStyle = lipgloss.NewStyle().Foreground(ColorBorder)
	MarkdownLinkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownLink)).
		Underline(true)
}

// ApplyTextareaStyles configures a textarea with transparent background styles
// so the terminal's own background shows through.
func ApplyTextareaStyles(ta *textarea.Model) {
	styles := ta.Styles()

	baseStyle := lipgloss.NewStyle()
	textStyle := lipgloss.NewStyle().Foreground(ColorText)
	placeholderStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)

	styles.Focused.Base = baseStyle
	styles.Focused.Text = textStyle
	styles.Focused.Placeholder = placeholderStyle
	styles.Focused.CursorLine = textStyle
	styles.Focused.Prompt = textStyle

	styles.Blurred.Base = baseStyle
	styles.Blurred.Text = textStyle
	styles.Blurred.Placeholder = placeholderStyle
	styles.Blurred.CursorLine = textStyle
	styles.Blurred.Prompt = textStyle

	ta.SetStyles(styles)
}
