package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for the current slide and dot
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for inactive borders
)

// Styles contains shared style definitions used by the carousel view.
var Styles = struct {
	Title lipgloss.Style // Bold accent color - deck title

	// Panel styles; width/height are applied per render
	Panel        lipgloss.Style // Inactive slide
	PanelCurrent lipgloss.Style // Current slide
	PanelTitle   lipgloss.Style // Slide heading
	PanelBody    lipgloss.Style // Slide text

	// Navigation
	Arrow      lipgloss.Style // ‹ and ›
	ArrowDim   lipgloss.Style // Arrow with no neighbor in that direction
	Dot        lipgloss.Style // Control item
	DotCurrent lipgloss.Style // Control item of the current slide

	Status lipgloss.Style // Status line
	Hint   lipgloss.Style // Help/hint text
	Box    lipgloss.Style // Help overlay box
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	PanelCurrent: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	PanelTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	PanelBody: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Arrow: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	ArrowDim: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Dot: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	DotCurrent: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1),
}
