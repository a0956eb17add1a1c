package components

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Didstopia/folio/internal/header"
	"github.com/Didstopia/folio/internal/tui"
	"github.com/Didstopia/folio/internal/viewport"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

type fakeTheme struct {
	dark    bool
	toggles int
}

func (f *fakeTheme) IsDarkmode() bool { return f.dark }
func (f *fakeTheme) ToggleTheme() {
	f.dark = !f.dark
	f.toggles++
}

type fakeRouter struct {
	path  string
	calls []string
}

func (f *fakeRouter) Path() string { return f.path }
func (f *fakeRouter) Navigate(path string) {
	f.calls = append(f.calls, path)
	f.path = path
}

func newTestHeader(widthPx int, opts ...HeaderOption) (*HeaderView, *fakeTheme, *fakeRouter, *viewport.Window) {
	th := &fakeTheme{}
	r := &fakeRouter{path: header.PathHome}
	w := viewport.NewWindow(widthPx, 0)
	opts = append([]HeaderOption{WithIdentity("Victor Timbwa", "VT")}, opts...)
	return NewHeaderView(th, r, w, opts...), th, r, w
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// locate returns the cell of the first occurrence of label in a rendered view
func locate(t *testing.T, view, label string) (int, int) {
	t.Helper()
	for y, line := range strings.Split(view, "\n") {
		if idx := strings.Index(line, label); idx >= 0 {
			return lipgloss.Width(line[:idx]), y
		}
	}
	t.Fatalf("%q not found in view:\n%s", label, view)
	return 0, 0
}

func TestHeaderView_MountBreakpoint(t *testing.T) {
	tests := []struct {
		width    int
		expected header.ViewportClass
	}{
		{width: 375, expected: header.Mobile},
		{width: 820, expected: header.Mobile},
		{width: 821, expected: header.Desktop},
		{width: 880, expected: header.Desktop},
		{width: 1024, expected: header.Desktop},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			h, _, _, _ := newTestHeader(tt.width)
			h.Mount()
			assert.Equal(t, tt.expected, h.State().Viewport, "width %d", tt.width)
		})
	}
}

func TestHeaderView_ResizeBreakpoint(t *testing.T) {
	h, _, _, w := newTestHeader(1024)
	h.Mount()

	w.Resize(900)
	assert.Equal(t, header.Mobile, h.State().Viewport)

	w.Resize(901)
	assert.Equal(t, header.Desktop, h.State().Viewport)

	// Between the two breakpoints the mount and resize answers differ
	w.Resize(880)
	assert.Equal(t, header.Mobile, h.State().Viewport)
}

func TestHeaderView_EndToEnd(t *testing.T) {
	h, _, _, w := newTestHeader(1024)
	h.Mount()
	assert.Equal(t, header.Desktop, h.State().Viewport)
	assert.NotEmpty(t, h.View())
	assert.Empty(t, h.ScrollUpView())

	w.ScrollTo(100)
	assert.True(t, h.State().Hidden)
	assert.True(t, h.State().ScrollUpShown)
	assert.Empty(t, h.View(), "hidden header renders nothing")
	assert.Contains(t, h.ScrollUpView(), "top")

	w.ScrollTo(10)
	assert.False(t, h.State().Hidden)
	assert.False(t, h.State().ScrollUpShown)
	assert.NotEmpty(t, h.View())
	assert.Empty(t, h.ScrollUpView())
}

func TestHeaderView_ScrollUpShowsHeader(t *testing.T) {
	h, _, _, w := newTestHeader(1024)
	h.Mount()

	w.ScrollTo(400)
	assert.True(t, h.State().Hidden)

	w.ScrollTo(300)
	assert.False(t, h.State().Hidden)
	assert.True(t, h.State().ScrollUpShown)

	w.ScrollTo(300)
	assert.False(t, h.State().Hidden, "equal offsets do not hide")
}

func TestHeaderView_Unmount(t *testing.T) {
	h, _, _, w := newTestHeader(1024)

	h.Mount()
	h.Mount()
	assert.Equal(t, 1, w.ListenerCount(viewport.KindScroll))
	assert.Equal(t, 1, w.ListenerCount(viewport.KindResize))

	h.Unmount()
	assert.Equal(t, 0, w.ListenerCount(viewport.KindScroll))
	assert.Equal(t, 0, w.ListenerCount(viewport.KindResize))
	assert.False(t, h.State().Mounted)

	w.ScrollTo(500)
	w.Resize(300)
	assert.Equal(t, header.State{}, h.State())
	assert.Empty(t, h.View())
	assert.Empty(t, h.ScrollUpView())

	// A second unmount is harmless
	h.Unmount()
	assert.Equal(t, 0, w.ListenerCount(viewport.KindScroll))
}

func TestHeaderView_NavigationKeys(t *testing.T) {
	tests := []struct {
		key  string
		path string
	}{
		{key: "1", path: header.PathHome},
		{key: "2", path: header.PathAbout},
		{key: "3", path: header.PathWorks},
		{key: "4", path: header.PathContact},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			h, _, r, w := newTestHeader(1024)
			h.Mount()
			w.ScrollTo(240)

			h.Update(runeKey(tt.key))

			assert.Equal(t, []string{tt.path}, r.calls)
			assert.Equal(t, 0, w.ScrollY())
			assert.Equal(t, 0, h.State().Offset)
			assert.False(t, h.State().ScrollUpShown)
		})
	}
}

func TestHeaderView_NavigationClicks(t *testing.T) {
	for _, link := range header.Routes() {
		t.Run(link.Label, func(t *testing.T) {
			h, _, r, w := newTestHeader(1024)
			h.Mount()
			w.ScrollTo(32)

			view := h.View()
			x, y := locate(t, view, link.Label)

			got, ok := h.LinkAt(x, y)
			require.True(t, ok)
			assert.Equal(t, link.Path, got.Path)

			h.Update(click(x, y))

			assert.Equal(t, []string{link.Path}, r.calls)
			assert.Equal(t, 0, w.ScrollY())
		})
	}
}

func TestHeaderView_ActiveLink(t *testing.T) {
	for _, width := range []int{600, 1024} {
		h, _, r, _ := newTestHeader(width)
		r.path = header.PathAbout
		h.Mount()

		var active []string
		for _, item := range h.NavItems() {
			if item.Active {
				active = append(active, item.Link.Label)
			}
		}
		assert.Equal(t, []string{"About me"}, active, "width %d", width)
	}
}

func TestHeaderView_ResumeNeverActive(t *testing.T) {
	h, _, r, _ := newTestHeader(1024, WithResumeURL("https://example.com/cv.pdf"))
	r.path = ""
	h.Mount()

	items := h.NavItems()
	require.Len(t, items, 5)
	assert.Equal(t, "Resumé", items[4].Link.Label)
	for _, item := range items {
		assert.False(t, item.Active)
	}
}

func TestHeaderView_DesktopLayout(t *testing.T) {
	h, _, _, _ := newTestHeader(1024, WithResumeURL("https://example.com/cv.pdf"))
	h.Mount()

	view := h.View()
	first := strings.Split(view, "\n")[0]
	for _, label := range []string{"VT", "Victor Timbwa", "Home", "About me", "Works", "Contact me", "Resumé", "dark"} {
		assert.Contains(t, first, label)
	}
	assert.NotContains(t, view, hamburgerIcon)
	assert.Equal(t, 128, lipgloss.Width(view))
}

func TestHeaderView_MobileMenu(t *testing.T) {
	h, _, r, _ := newTestHeader(600)
	h.Mount()

	view := h.View()
	assert.Contains(t, view, hamburgerIcon)
	assert.NotContains(t, view, "About me")

	h.Update(runeKey("m"))
	require.True(t, h.MenuOpen())

	view = h.View()
	assert.Contains(t, view, closeIcon)
	for _, label := range []string{"Home", "About me", "Works", "Contact me"} {
		assert.Contains(t, view, label)
	}

	x, y := locate(t, view, "Contact me")
	h.Update(click(x, y))
	assert.Equal(t, []string{header.PathContact}, r.calls)
	assert.False(t, h.MenuOpen(), "navigating closes the menu")
}

func TestHeaderView_HamburgerClick(t *testing.T) {
	h, _, _, _ := newTestHeader(600)
	h.Mount()

	x, y := locate(t, h.View(), hamburgerIcon)
	h.Update(click(x, y))
	assert.True(t, h.MenuOpen())

	h.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, h.MenuOpen())
}

func TestHeaderView_MenuClosesOnDesktop(t *testing.T) {
	h, _, _, w := newTestHeader(600)
	h.Mount()
	h.ToggleMenu()
	require.True(t, h.MenuOpen())

	w.Resize(1200)
	assert.False(t, h.MenuOpen())

	h.ToggleMenu()
	assert.False(t, h.MenuOpen(), "desktop layout has no menu")
}

func TestHeaderView_ThemeToggle(t *testing.T) {
	h, th, r, w := newTestHeader(1024)
	h.Mount()
	w.ScrollTo(48)
	assert.Equal(t, header.ClassLight, h.RootClass())

	h.Update(runeKey("t"))

	assert.Equal(t, 1, th.toggles)
	assert.True(t, th.dark)
	assert.Equal(t, header.ClassDark, h.RootClass())
	assert.Empty(t, r.calls)
	assert.Equal(t, header.PathHome, r.path)
	assert.Equal(t, 48, w.ScrollY())
	assert.Equal(t, 48, h.State().Offset)
}

func TestHeaderView_ThemeToggleClick(t *testing.T) {
	h, th, r, w := newTestHeader(1024)
	h.Mount()

	x, y := locate(t, h.View(), toDarkLabel)
	h.Update(click(x, y))

	assert.Equal(t, 1, th.toggles)
	assert.Equal(t, header.ClassDark, h.RootClass())
	assert.Empty(t, r.calls)
	assert.Equal(t, 0, w.ScrollY())
	assert.Contains(t, h.View(), toLightLabel)
}

func TestHeaderView_RootClassFollowsVisibility(t *testing.T) {
	h, th, _, w := newTestHeader(1024)
	h.Mount()

	// Theme flipped elsewhere; the next visibility change picks it up
	th.dark = true
	assert.Equal(t, header.ClassLight, h.RootClass())

	w.ScrollTo(200)
	assert.True(t, h.State().Hidden)
	assert.Equal(t, header.ClassDark, h.RootClass())
}

func TestHeaderView_ScrollToTop(t *testing.T) {
	h, _, _, w := newTestHeader(1024)
	h.Mount()

	w.ScrollTo(320)
	require.True(t, h.State().ScrollUpShown)
	h.Update(tui.ScrollToTopMsg{})
	assert.Equal(t, 0, w.ScrollY())
	assert.False(t, h.State().ScrollUpShown)

	w.ScrollTo(320)
	h.Update(runeKey("g"))
	assert.Equal(t, 0, w.ScrollY())
}

func TestHeaderView_CopyResume(t *testing.T) {
	var copied string
	h, _, _, _ := newTestHeader(1024,
		WithResumeURL("https://example.com/cv.pdf"),
		WithClipboard(func(s string) error {
			copied = s
			return nil
		}),
	)
	h.Mount()

	cmd := h.Update(runeKey("y"))
	require.NotNil(t, cmd)
	msg := cmd()

	status, ok := msg.(tui.StatusMsg)
	require.True(t, ok)
	assert.Contains(t, status.Text, "https://example.com/cv.pdf")
	assert.Equal(t, "https://example.com/cv.pdf", copied)
}

func TestHeaderView_CopyResumeFailure(t *testing.T) {
	h, _, _, _ := newTestHeader(1024,
		WithResumeURL("https://example.com/cv.pdf"),
		WithClipboard(func(string) error { return errors.New("no clipboard") }),
	)
	h.Mount()

	x, y := locate(t, h.View(), "Resumé")
	cmd := h.Update(click(x, y))
	require.NotNil(t, cmd)

	errMsg, ok := cmd().(tui.ErrorMsg)
	require.True(t, ok)
	assert.Contains(t, errMsg.Err.Error(), "no clipboard")
}

func TestHeaderView_CopyResumeWithoutURL(t *testing.T) {
	h, _, _, _ := newTestHeader(1024)
	h.Mount()

	assert.Nil(t, h.Update(runeKey("y")))
}

func TestHeaderView_LogoGoesHome(t *testing.T) {
	h, _, r, _ := newTestHeader(1024)
	r.path = header.PathWorks
	h.Mount()

	x, y := locate(t, h.View(), "VT")
	h.Update(click(x, y))
	assert.Equal(t, []string{header.PathHome}, r.calls)
}

func TestHeaderView_ClickOutsideLinks(t *testing.T) {
	h, th, r, _ := newTestHeader(1024)
	h.Mount()
	h.View()

	_, ok := h.LinkAt(40, 0)
	assert.False(t, ok)
	assert.Nil(t, h.Update(click(40, 0)))
	assert.Nil(t, h.Update(click(0, 5)))
	assert.Empty(t, r.calls)
	assert.Zero(t, th.toggles)
}
