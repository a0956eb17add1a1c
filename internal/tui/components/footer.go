package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/Didstopia/folio/internal/tui"
)

// Footer represents the app footer component with help
type Footer struct {
	HelpBindings []key.Binding
	ShowQuit     bool
	Status       string
	StatusError  bool
	Right        string
	Width        int
	styles       *tui.Styles
}

// NewFooter creates a new footer component
func NewFooter() *Footer {
	return &Footer{
		HelpBindings: make([]key.Binding, 0),
		ShowQuit:     true,
		styles:       tui.GetStyles(false),
	}
}

// SetBindings sets the help key bindings
func (f *Footer) SetBindings(bindings []key.Binding) {
	f.HelpBindings = bindings
}

// SetStatus shows a temporary message in place of the help
func (f *Footer) SetStatus(status string, isError bool) {
	f.Status = status
	f.StatusError = isError
}

// SetRight sets the right-aligned text
func (f *Footer) SetRight(text string) {
	f.Right = text
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.Width = width
}

// SetDark selects the style set
func (f *Footer) SetDark(dark bool) {
	f.styles = tui.GetStyles(dark)
}

// View renders the footer
func (f *Footer) View() string {
	var left string
	if f.Status != "" {
		if f.StatusError {
			left = f.styles.Error.Render(f.Status)
		} else {
			left = f.styles.Success.Render(f.Status)
		}
	} else {
		left = f.helpText()
	}

	width := f.Width
	if width == 0 {
		width = 80
	}
	innerWidth := width - f.styles.Footer.GetHorizontalFrameSize()

	right := ""
	if f.Right != "" {
		right = f.styles.Muted.Render(f.Right)
	}

	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Not enough room for both; help wins
		right = ""
		gap = 0
	}

	content := left + strings.Repeat(" ", gap) + right
	return f.styles.Footer.Width(innerWidth + f.styles.Footer.GetHorizontalPadding()).Render(content)
}

func (f *Footer) helpText() string {
	var helpItems []string
	seen := make(map[string]bool)

	for _, binding := range f.HelpBindings {
		if !binding.Enabled() {
			continue
		}
		help := binding.Help()
		if help.Key == "" || seen[help.Key] {
			continue
		}
		seen[help.Key] = true
		helpItems = append(helpItems, f.styles.HelpKey.Render(help.Key)+" "+f.styles.HelpValue.Render(help.Desc))
	}

	if f.ShowQuit && !seen["q"] {
		helpItems = append(helpItems, f.styles.HelpKey.Render("q")+" "+f.styles.HelpValue.Render("quit"))
	}

	return strings.Join(helpItems, "  ")
}
