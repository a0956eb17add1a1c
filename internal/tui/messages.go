package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Didstopia/folio/internal/github"
)

// ErrorMsg signals an error occurred
type ErrorMsg struct {
	Err error
}

// StatusMsg shows a temporary message in the footer
type StatusMsg struct {
	Text string
}

// ClearMessageMsg signals a temporary message should be cleared
type ClearMessageMsg struct{}

// ScrollToTopMsg asks the header to activate its scroll-up button
type ScrollToTopMsg struct{}

// Works Messages

// WorksLoadedMsg signals the works feed has been fetched
type WorksLoadedMsg struct {
	Works []github.Work
	Error error
}

// Command Helpers

// ClearMessageCmd returns a command to clear message after delay
func ClearMessageCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearMessageMsg{}
	})
}

// Constants

const (
	// MessageDisplayDuration is how long temporary messages are shown
	MessageDisplayDuration = 3 * time.Second
	// WheelLines is how many lines one mouse wheel notch scrolls
	WheelLines = 3
)
