// Package render draws menus for the terminal with lipgloss.
package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette of rendered menus.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Price highlights amounts.
	Price lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Price:      lipgloss.Color("#A6E3A1"), // Green
		Border:     lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for the week header.
	Title lipgloss.Style

	// Day style for day headers.
	Day lipgloss.Style

	// Dish style for dish names.
	Dish lipgloss.Style

	// Price style for amounts.
	Price lipgloss.Style

	// Muted style for labels and notes.
	Muted lipgloss.Style

	// Box style for the bordered week container.
	Box lipgloss.Style
}

// NewStyles creates styles from a theme for output written to w.
// Colours are dropped when w is not a terminal.
func NewStyles(w io.Writer, theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	r := lipgloss.NewRenderer(w)

	return &Styles{
		theme: theme,

		Title: r.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Day: r.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Dish: r.NewStyle().
			Foreground(theme.Foreground),

		Price: r.NewStyle().
			Foreground(theme.Price),

		Muted: r.NewStyle().
			Foreground(theme.Muted),

		Box: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
	}
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
