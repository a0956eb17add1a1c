package header

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mounted(width, offset int) State {
	return Reduce(State{}, MountEvent{Width: width, Offset: offset})
}

func TestReduce_Mount(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected ViewportClass
	}{
		{name: "narrow is mobile", width: 375, expected: Mobile},
		{name: "breakpoint is mobile", width: 820, expected: Mobile},
		{name: "just above breakpoint is desktop", width: 821, expected: Desktop},
		{name: "between breakpoints is desktop", width: 880, expected: Desktop},
		{name: "wide is desktop", width: 1024, expected: Desktop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mounted(tt.width, 0)
			assert.True(t, s.Mounted)
			assert.Equal(t, tt.expected, s.Viewport)
			assert.False(t, s.Hidden)
			assert.False(t, s.ScrollUpShown)
		})
	}
}

func TestReduce_MountClampsNegativeMetrics(t *testing.T) {
	s := mounted(-10, -5)
	assert.Equal(t, 0, s.Width)
	assert.Equal(t, 0, s.Offset)
}

func TestReduce_Resize(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected ViewportClass
	}{
		{name: "narrow is mobile", width: 600, expected: Mobile},
		{name: "between breakpoints is mobile", width: 880, expected: Mobile},
		{name: "resize breakpoint is mobile", width: 900, expected: Mobile},
		{name: "above resize breakpoint is desktop", width: 901, expected: Desktop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Reduce(mounted(1280, 0), ResizeEvent{Width: tt.width})
			assert.Equal(t, tt.expected, s.Viewport)
			assert.Equal(t, tt.width, s.Width)
		})
	}
}

func TestReduce_SingleBreakpoint(t *testing.T) {
	b := Breakpoints{MountMobileMax: 820, ResizeMobileMax: 820, ScrollThreshold: 80}

	s := b.Reduce(State{}, MountEvent{Width: 880})
	assert.Equal(t, Desktop, s.Viewport)

	s = b.Reduce(s, ResizeEvent{Width: 880})
	assert.Equal(t, Desktop, s.Viewport)
}

func TestReduce_Scroll(t *testing.T) {
	t.Run("scrolling down past threshold hides header", func(t *testing.T) {
		s := Reduce(mounted(1024, 0), ScrollEvent{Offset: 100})
		assert.True(t, s.Hidden)
		assert.True(t, s.ScrollUpShown)
		assert.Equal(t, 100, s.Offset)
	})

	t.Run("scrolling up past threshold shows header", func(t *testing.T) {
		s := Reduce(mounted(1024, 0), ScrollEvent{Offset: 400})
		s = Reduce(s, ScrollEvent{Offset: 300})
		assert.False(t, s.Hidden)
		assert.True(t, s.ScrollUpShown)
	})

	t.Run("equal offsets do not hide", func(t *testing.T) {
		s := Reduce(mounted(1024, 0), ScrollEvent{Offset: 200})
		s = Reduce(s, ScrollEvent{Offset: 200})
		assert.False(t, s.Hidden)
		assert.True(t, s.ScrollUpShown)
	})

	t.Run("near top pins header and hides button", func(t *testing.T) {
		s := Reduce(mounted(1024, 0), ScrollEvent{Offset: 500})
		s = Reduce(s, ScrollEvent{Offset: 79})
		assert.False(t, s.Hidden)
		assert.False(t, s.ScrollUpShown)
		assert.Equal(t, 79, s.Offset)
	})

	t.Run("scrolling down below threshold stays pinned", func(t *testing.T) {
		s := Reduce(mounted(1024, 0), ScrollEvent{Offset: 40})
		assert.False(t, s.Hidden)
		assert.False(t, s.ScrollUpShown)
	})

	t.Run("threshold itself counts as scrolled", func(t *testing.T) {
		s := Reduce(mounted(1024, 0), ScrollEvent{Offset: 80})
		assert.True(t, s.Hidden)
		assert.True(t, s.ScrollUpShown)
	})
}

func TestReduce_IgnoresEventsWhenUnmounted(t *testing.T) {
	s := Reduce(State{}, ScrollEvent{Offset: 300})
	assert.Equal(t, State{}, s)

	s = Reduce(State{}, ResizeEvent{Width: 300})
	assert.Equal(t, State{}, s)

	s = Reduce(mounted(1024, 0), UnmountEvent{})
	assert.False(t, s.Mounted)
	assert.Equal(t, State{}, Reduce(s, ScrollEvent{Offset: 100}))
}

func TestReduce_ScrollProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		s := mounted(1024, 0)
		prev := s.Offset
		for i := 0; i < 50; i++ {
			offset := rng.Intn(400)
			s = Reduce(s, ScrollEvent{Offset: offset})

			if offset < DefaultScrollThreshold {
				require.False(t, s.Hidden, "offset %d below threshold must not hide", offset)
				require.False(t, s.ScrollUpShown, "offset %d below threshold must hide button", offset)
			} else {
				require.Equal(t, offset > prev, s.Hidden, "prev=%d offset=%d", prev, offset)
				require.True(t, s.ScrollUpShown)
			}
			require.Equal(t, offset, s.Offset)
			prev = offset
		}
	}
}

func TestReduce_EndToEnd(t *testing.T) {
	s := mounted(1024, 0)
	require.Equal(t, Desktop, s.Viewport)

	s = Reduce(s, ScrollEvent{Offset: 100})
	assert.True(t, s.Hidden)

	s = Reduce(s, ScrollEvent{Offset: 10})
	assert.False(t, s.Hidden)
	assert.False(t, s.ScrollUpShown)
}

func TestLinks(t *testing.T) {
	t.Run("routes in display order", func(t *testing.T) {
		routes := Routes()
		require.Len(t, routes, 4)
		assert.Equal(t, "Home", routes[0].Label)
		assert.Equal(t, PathContact, routes[3].Path)
	})

	t.Run("resume link appended when configured", func(t *testing.T) {
		links := Links("https://example.com/cv.pdf")
		require.Len(t, links, 5)
		assert.True(t, links[4].External())
		assert.False(t, links[4].Active(""))
	})

	t.Run("resume link omitted when empty", func(t *testing.T) {
		assert.Len(t, Links(""), 4)
	})

	t.Run("only the matching route is active", func(t *testing.T) {
		var active []string
		for _, l := range Links("https://example.com/cv.pdf") {
			if l.Active(PathAbout) {
				active = append(active, l.Label)
			}
		}
		assert.Equal(t, []string{"About me"}, active)
	})

	t.Run("known routes", func(t *testing.T) {
		assert.True(t, KnownRoute("/works"))
		assert.False(t, KnownRoute("/blog"))
	})
}

func TestRootClass(t *testing.T) {
	assert.Equal(t, ClassDark, RootClass(true))
	assert.Equal(t, ClassLight, RootClass(false))
}
