// Package components provides reusable TUI components
package components

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/Didstopia/folio/internal/header"
	"github.com/Didstopia/folio/internal/router"
	"github.com/Didstopia/folio/internal/theme"
	"github.com/Didstopia/folio/internal/tui"
	"github.com/Didstopia/folio/internal/viewport"
)

const (
	scrollUpLabel  = "↑ top"
	hamburgerIcon  = "☰"
	closeIcon      = "✕"
	toDarkLabel    = "☾ dark"
	toLightLabel   = "☀ light"
	linkSeparator  = "  "
	defaultColumns = 80
)

type zoneKind int

const (
	zoneLink zoneKind = iota
	zoneLogo
	zoneToggle
	zoneHamburger
)

// zone is a clickable span on one header row; x1 is exclusive
type zone struct {
	kind zoneKind
	link header.Link
	x0   int
	x1   int
	y    int
}

// NavItem is a header link together with its highlight state
type NavItem struct {
	Link   header.Link
	Active bool
}

// HeaderView is the site header: logo, route links, theme toggle, the
// hamburger menu on narrow terminals and the scroll-to-top button.
type HeaderView struct {
	theme   theme.Context
	router  router.Context
	window  viewport.Signals
	bp      header.Breakpoints
	metrics viewport.Metrics
	keys    tui.KeyMap
	log     logrus.FieldLogger
	copy    func(string) error

	owner     string
	logo      string
	resumeURL string

	state     header.State
	removers  []viewport.RemoveFunc
	rootClass string
	darkSeen  bool
	menuOpen  bool
	styles    *tui.Styles

	zones []zone
}

// HeaderOption configures the HeaderView
type HeaderOption func(*HeaderView)

// WithBreakpoints sets the layout and scroll thresholds
func WithBreakpoints(bp header.Breakpoints) HeaderOption {
	return func(h *HeaderView) {
		h.bp = bp
	}
}

// WithMetrics sets the cell-to-pixel mapping used to lay the bar out
func WithMetrics(m viewport.Metrics) HeaderOption {
	return func(h *HeaderView) {
		h.metrics = m
	}
}

// WithIdentity sets the owner name and logo text
func WithIdentity(owner, logo string) HeaderOption {
	return func(h *HeaderView) {
		h.owner = owner
		if logo != "" {
			h.logo = logo
		}
	}
}

// WithResumeURL adds the résumé link
func WithResumeURL(url string) HeaderOption {
	return func(h *HeaderView) {
		h.resumeURL = url
	}
}

// WithHeaderLogger sets the logger
func WithHeaderLogger(log logrus.FieldLogger) HeaderOption {
	return func(h *HeaderView) {
		h.log = log
	}
}

// WithClipboard replaces the clipboard writer
func WithClipboard(fn func(string) error) HeaderOption {
	return func(h *HeaderView) {
		h.copy = fn
	}
}

// NewHeaderView creates a header reading the theme and route from the given
// contexts and listening to w once mounted
func NewHeaderView(t theme.Context, r router.Context, w viewport.Signals, opts ...HeaderOption) *HeaderView {
	h := &HeaderView{
		theme:   t,
		router:  r,
		window:  w,
		bp:      header.DefaultBreakpoints(),
		metrics: viewport.DefaultMetrics(),
		keys:    tui.GetKeyMap(),
		copy:    clipboard.WriteAll,
		logo:    "VT",
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		h.log = l
	}
	h.syncRootClass()

	return h
}

// Mount initializes the state from the window and subscribes to scroll and
// resize events. Mounting an already mounted header does nothing.
func (h *HeaderView) Mount() {
	if h.state.Mounted {
		return
	}

	h.state = h.bp.Reduce(h.state, header.MountEvent{
		Width:  h.window.InnerWidth(),
		Offset: h.window.ScrollY(),
	})
	h.removers = append(h.removers,
		h.window.AddListener(viewport.KindScroll, func(*viewport.Window) {
			h.apply(header.ScrollEvent{Offset: h.window.ScrollY()})
		}),
		h.window.AddListener(viewport.KindResize, func(*viewport.Window) {
			h.apply(header.ResizeEvent{Width: h.window.InnerWidth()})
		}),
	)
	h.syncRootClass()

	h.log.WithField("state", h.state.String()).Debug("Header mounted")
}

// Unmount removes the listeners registered by Mount and discards the state
func (h *HeaderView) Unmount() {
	for _, remove := range h.removers {
		remove()
	}
	h.removers = nil
	h.state = h.bp.Reduce(h.state, header.UnmountEvent{})
	h.menuOpen = false
	h.zones = nil

	h.log.Debug("Header unmounted")
}

// State returns the current header state
func (h *HeaderView) State() header.State {
	return h.state
}

// RootClass returns headerWrapper or headerWrapperDark
func (h *HeaderView) RootClass() string {
	return h.rootClass
}

// MenuOpen reports whether the mobile menu is expanded
func (h *HeaderView) MenuOpen() bool {
	return h.menuOpen
}

func (h *HeaderView) apply(ev header.Event) {
	prev := h.state
	h.state = h.bp.Reduce(h.state, ev)

	if h.state.Hidden != prev.Hidden {
		h.syncRootClass()
	}
	if h.state.Viewport == header.Desktop {
		h.menuOpen = false
	}

	if h.state != prev {
		h.log.WithField("state", h.state.String()).Debug("Header state changed")
	}
}

// syncRootClass re-derives the root class and style set from the theme
func (h *HeaderView) syncRootClass() {
	h.darkSeen = h.theme.IsDarkmode()
	h.rootClass = header.RootClass(h.darkSeen)
	h.styles = tui.StylesForClass(h.rootClass)
}

// Navigate activates path and scrolls the window back to the top
func (h *HeaderView) Navigate(path string) {
	h.router.Navigate(path)
	h.window.ScrollTo(0)
	h.menuOpen = false

	h.log.WithField("path", path).Debug("Header navigation")
}

// ToggleTheme flips the theme through the theme context
func (h *HeaderView) ToggleTheme() {
	h.theme.ToggleTheme()
	h.syncRootClass()
}

// ToggleMenu opens or closes the mobile menu
func (h *HeaderView) ToggleMenu() {
	if h.state.Viewport != header.Mobile {
		h.menuOpen = false
		return
	}
	h.menuOpen = !h.menuOpen
}

// ScrollToTop scrolls the window to offset 0
func (h *HeaderView) ScrollToTop() {
	h.window.ScrollTo(0)
}

// CopyResume returns a command copying the résumé link to the clipboard
func (h *HeaderView) CopyResume() tea.Cmd {
	if h.resumeURL == "" {
		return nil
	}

	url := h.resumeURL
	copyFn := h.copy
	return func() tea.Msg {
		if err := copyFn(url); err != nil {
			return tui.ErrorMsg{Err: fmt.Errorf("failed to copy resumé link: %w", err)}
		}
		return tui.StatusMsg{Text: "Copied resumé link: " + url}
	}
}

// Update handles header key bindings, clicks and scroll-to-top requests
func (h *HeaderView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, h.keys.Home):
			h.Navigate(header.PathHome)
		case key.Matches(msg, h.keys.About):
			h.Navigate(header.PathAbout)
		case key.Matches(msg, h.keys.Works):
			h.Navigate(header.PathWorks)
		case key.Matches(msg, h.keys.Contact):
			h.Navigate(header.PathContact)
		case key.Matches(msg, h.keys.Theme):
			h.ToggleTheme()
		case key.Matches(msg, h.keys.Menu):
			h.ToggleMenu()
		case key.Matches(msg, h.keys.Close):
			h.menuOpen = false
		case key.Matches(msg, h.keys.Top):
			h.ScrollToTop()
		case key.Matches(msg, h.keys.Resume):
			return h.CopyResume()
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if z, ok := h.zoneAt(msg.X, msg.Y); ok {
				return h.activate(z)
			}
		}

	case tui.ScrollToTopMsg:
		h.ScrollToTop()
	}

	return nil
}

func (h *HeaderView) activate(z zone) tea.Cmd {
	switch z.kind {
	case zoneLogo:
		h.Navigate(header.PathHome)
	case zoneToggle:
		h.ToggleTheme()
	case zoneHamburger:
		h.ToggleMenu()
	case zoneLink:
		if z.link.External() {
			return h.CopyResume()
		}
		h.Navigate(z.link.Path)
	}
	return nil
}

func (h *HeaderView) zoneAt(x, y int) (zone, bool) {
	for _, z := range h.zones {
		if y == z.y && x >= z.x0 && x < z.x1 {
			return z, true
		}
	}
	return zone{}, false
}

// LinkAt returns the link rendered at the given cell by the last View
func (h *HeaderView) LinkAt(x, y int) (header.Link, bool) {
	z, ok := h.zoneAt(x, y)
	if !ok || z.kind != zoneLink {
		return header.Link{}, false
	}
	return z.link, true
}

// NavItems returns the links in display order with the active one marked
func (h *HeaderView) NavItems() []NavItem {
	active := h.router.Path()
	links := header.Links(h.resumeURL)
	items := make([]NavItem, 0, len(links))
	for _, l := range links {
		items = append(items, NavItem{Link: l, Active: l.Active(active)})
	}
	return items
}

func (h *HeaderView) columns() int {
	cols := h.metrics.Columns(h.state.Width)
	if cols <= 0 {
		return defaultColumns
	}
	return cols
}

func (h *HeaderView) linkStyle(item NavItem) lipgloss.Style {
	switch {
	case item.Active:
		return h.styles.LinkActive
	case item.Link.External():
		return h.styles.LinkResume
	default:
		return h.styles.Link
	}
}

func (h *HeaderView) toggleLabel() string {
	if h.darkSeen {
		return toLightLabel
	}
	return toDarkLabel
}

// View renders the header. A hidden or unmounted header renders nothing.
func (h *HeaderView) View() string {
	h.zones = h.zones[:0]
	if !h.state.Mounted || h.state.Hidden {
		return ""
	}
	if h.darkSeen != h.theme.IsDarkmode() {
		h.syncRootClass()
	}

	if h.state.Viewport == header.Mobile {
		return h.mobileView()
	}
	return h.desktopView()
}

// segment is a piece of bar text, clickable when zone is set
type segment struct {
	text string
	zone *zone
}

// renderBar lays out left and right groups on one bar line and records their zones
func (h *HeaderView) renderBar(left, right []segment) string {
	style := h.styles.Header
	cols := h.columns()
	innerWidth := cols - style.GetHorizontalFrameSize()
	x := style.GetPaddingLeft() + style.GetBorderLeftSize()

	leftText, leftWidth := h.place(left, x)
	rightTextWidth := 0
	for _, s := range right {
		rightTextWidth += lipgloss.Width(s.text)
	}
	gap := innerWidth - leftWidth - rightTextWidth
	if gap < 1 {
		gap = 1
	}
	rightText, _ := h.place(right, x+leftWidth+gap)

	content := leftText + strings.Repeat(" ", gap) + rightText
	return style.Width(cols - style.GetHorizontalMargins() - style.GetHorizontalBorderSize()).Render(content)
}

// place concatenates segments starting at column x on row 0
func (h *HeaderView) place(segments []segment, x int) (string, int) {
	var b strings.Builder
	width := 0
	for _, s := range segments {
		w := lipgloss.Width(s.text)
		if s.zone != nil {
			z := *s.zone
			z.x0 = x + width
			z.x1 = x + width + w
			z.y = 0
			h.zones = append(h.zones, z)
		}
		b.WriteString(s.text)
		width += w
	}
	return b.String(), width
}

func (h *HeaderView) logoSegments(withOwner bool) []segment {
	segs := []segment{{text: h.styles.Logo.Render(h.logo), zone: &zone{kind: zoneLogo}}}
	if withOwner && h.owner != "" {
		segs = append(segs, segment{text: " " + h.styles.Muted.Render(h.owner)})
	}
	return segs
}

func (h *HeaderView) desktopView() string {
	var right []segment
	for _, item := range h.NavItems() {
		right = append(right,
			segment{text: h.linkStyle(item).Render(item.Link.Label), zone: &zone{kind: zoneLink, link: item.Link}},
			segment{text: linkSeparator},
		)
	}
	right = append(right, segment{text: h.styles.Toggle.Render(h.toggleLabel()), zone: &zone{kind: zoneToggle}})

	return h.renderBar(h.logoSegments(true), right)
}

func (h *HeaderView) mobileView() string {
	icon := hamburgerIcon
	if h.menuOpen {
		icon = closeIcon
	}
	right := []segment{
		{text: h.styles.Toggle.Render(h.toggleLabel()), zone: &zone{kind: zoneToggle}},
		{text: linkSeparator},
		{text: h.styles.Hamburger.Render(icon), zone: &zone{kind: zoneHamburger}},
	}
	bar := h.renderBar(h.logoSegments(false), right)
	if !h.menuOpen {
		return bar
	}

	menuStyle := h.styles.Menu
	top := lipgloss.Height(bar) + menuStyle.GetBorderTopSize() + menuStyle.GetPaddingTop()
	left := menuStyle.GetBorderLeftSize() + menuStyle.GetPaddingLeft()

	items := h.NavItems()
	lines := make([]string, 0, len(items))
	for i, item := range items {
		label := h.linkStyle(item).Render(item.Link.Label)
		h.zones = append(h.zones, zone{
			kind: zoneLink,
			link: item.Link,
			x0:   left,
			x1:   left + lipgloss.Width(label),
			y:    top + i,
		})
		lines = append(lines, label)
	}

	return lipgloss.JoinVertical(lipgloss.Left, bar, menuStyle.Render(strings.Join(lines, "\n")))
}

// ScrollUpView renders the scroll-to-top button while it is shown
func (h *HeaderView) ScrollUpView() string {
	if !h.state.Mounted || !h.state.ScrollUpShown {
		return ""
	}
	return h.styles.ScrollUp.Render(scrollUpLabel)
}
