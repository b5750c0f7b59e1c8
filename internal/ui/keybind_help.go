package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a bubbles/help model with the shared styling.
func newHelpModel() help.Model {
	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Hint
	helpModel.Styles.ShortSeparator = Styles.Hint
	helpModel.Styles.FullKey = helpModel.Styles.ShortKey
	helpModel.Styles.FullDesc = Styles.Hint
	return helpModel
}

// RenderKeybindHint renders the one-line help bar under the carousel.
func RenderKeybindHint(reg *KeybindRegistry, width int) string {
	if reg == nil {
		return ""
	}
	h := newHelpModel()
	h.Width = width
	return h.ShortHelpView(NewKeyMap(reg).ShortHelp())
}

// RenderKeybindHelp renders the full help shown in the help overlay.
func RenderKeybindHelp(reg *KeybindRegistry) string {
	if reg == nil {
		return ""
	}
	h := newHelpModel()
	content := Styles.Title.Render("Keys") + "\n" + h.FullHelpView(NewKeyMap(reg).FullHelp()) +
		"\n\n" + Styles.Hint.Render("Drag the strip with the mouse; click ‹ › or a number to navigate.")
	return Styles.Box.Render(content)
}
