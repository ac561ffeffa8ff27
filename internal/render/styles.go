package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for console output. Lipgloss
// automatically degrades to no-color when output is not a TTY.
type Styles struct {
	// Header is used for section headers (e.g. "Upcoming birthdays:").
	Header lipgloss.Style

	// Name styles contact names.
	Name lipgloss.Style

	// TableHeader styles the header row of the contact table.
	TableHeader lipgloss.Style

	// TableCell styles regular table cells.
	TableCell lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Muted is used for de-emphasized text like empty-book notices.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for console output.
func DefaultStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Name:        lipgloss.NewStyle().Bold(true),
		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableCell:   lipgloss.NewStyle().PaddingRight(1),
		Border:      lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
