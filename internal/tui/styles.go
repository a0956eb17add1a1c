// Package tui provides the terminal user interface for folio
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Didstopia/folio/internal/header"
)

// Palette is one set of theme colors
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Surface lipgloss.Color
}

// LightPalette backs the headerWrapper class
var LightPalette = Palette{
	Primary: lipgloss.Color("#7C3AED"), // Purple
	Accent:  lipgloss.Color("#0284C7"), // Blue

	Success: lipgloss.Color("#16A34A"),
	Warning: lipgloss.Color("#CA8A04"),
	Error:   lipgloss.Color("#DC2626"),

	Text:    lipgloss.Color("#111827"),
	Muted:   lipgloss.Color("#6B7280"),
	Border:  lipgloss.Color("#E5E7EB"),
	Surface: lipgloss.Color("#FFFFFF"),
}

// DarkPalette backs the headerWrapperDark class
var DarkPalette = Palette{
	Primary: lipgloss.Color("#A78BFA"),
	Accent:  lipgloss.Color("#38BDF8"),

	Success: lipgloss.Color("#4ADE80"),
	Warning: lipgloss.Color("#FACC15"),
	Error:   lipgloss.Color("#F87171"),

	Text:    lipgloss.Color("#F9FAFB"),
	Muted:   lipgloss.Color("#9CA3AF"),
	Border:  lipgloss.Color("#374151"),
	Surface: lipgloss.Color("#111827"),
}

// Styles contains all the TUI styles
type Styles struct {
	Dark bool

	// App-level styles
	App     lipgloss.Style
	Content lipgloss.Style

	// Header styles
	Header     lipgloss.Style
	Logo       lipgloss.Style
	Link       lipgloss.Style
	LinkActive lipgloss.Style
	LinkResume lipgloss.Style
	Toggle     lipgloss.Style
	Hamburger  lipgloss.Style
	Menu       lipgloss.Style
	ScrollUp   lipgloss.Style

	// Footer styles
	Footer    lipgloss.Style
	HelpKey   lipgloss.Style
	HelpValue lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style

	// Spinner
	Spinner lipgloss.Style
}

// NewStyles builds the style set for a palette
func NewStyles(p Palette, dark bool) *Styles {
	s := &Styles{Dark: dark}

	// App-level
	s.App = lipgloss.NewStyle().
		Foreground(p.Text)

	s.Content = lipgloss.NewStyle().
		Padding(0, 1)

	// Header
	s.Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.Logo = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.Link = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.LinkActive = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(p.Primary)

	s.LinkResume = lipgloss.NewStyle().
		Foreground(p.Accent)

	s.Toggle = lipgloss.NewStyle().
		Foreground(p.Warning)

	s.Hamburger = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.Menu = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)

	s.ScrollUp = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(p.Surface).
		Background(p.Primary)

	// Footer
	s.Footer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.HelpValue = lipgloss.NewStyle().
		Foreground(p.Muted)

	// Status
	s.Success = lipgloss.NewStyle().
		Foreground(p.Success)

	s.Warning = lipgloss.NewStyle().
		Foreground(p.Warning)

	s.Error = lipgloss.NewStyle().
		Foreground(p.Error)

	s.Muted = lipgloss.NewStyle().
		Foreground(p.Muted)

	// Spinner
	s.Spinner = lipgloss.NewStyle().
		Foreground(p.Primary)

	return s
}

// Shared style sets
var (
	lightStyles = NewStyles(LightPalette, false)
	darkStyles  = NewStyles(DarkPalette, true)
)

// GetStyles returns the shared style set for the theme
func GetStyles(dark bool) *Styles {
	if dark {
		return darkStyles
	}
	return lightStyles
}

// StylesForClass returns the style set selected by a header root class
func StylesForClass(class string) *Styles {
	return GetStyles(class == header.ClassDark)
}
