package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for the enabled button, borders
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for the disabled button
)

// Styles contains shared style definitions used by the quote screen.
var Styles = struct {
	Title          lipgloss.Style // Bold accent color
	Box            lipgloss.Style // Rounded border around the quote
	Quote          lipgloss.Style // Quote text
	Error          lipgloss.Style // Failure description in place of the quote
	Button         lipgloss.Style // Refresh button, enabled
	ButtonDisabled lipgloss.Style // Refresh button, disabled
	Spinner        lipgloss.Style
	Status         lipgloss.Style // "updated ..." line
	Hint           lipgloss.Style // Help/hint text
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1, 0),
	Quote: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Italic(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	ButtonDisabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Strikethrough(true),
	Spinner: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
