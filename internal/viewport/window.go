// Package viewport models the window the site is rendered into: its width,
// its vertical scroll position and the scroll/resize listeners attached to it.
//
// Terminal metrics are converted to pixels with Metrics so the header logic
// can keep working in the units its thresholds are defined in.
package viewport

// Kind identifies a window event
type Kind int

const (
	// KindScroll fires after the scroll position changes
	KindScroll Kind = iota
	// KindResize fires after the width changes
	KindResize
)

// String returns a human-readable name for the event kind
func (k Kind) String() string {
	switch k {
	case KindScroll:
		return "scroll"
	case KindResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Listener receives the window after an event has been applied
type Listener func(w *Window)

// RemoveFunc detaches the listener it was returned for
type RemoveFunc func()

// Signals is the window surface components subscribe to
type Signals interface {
	ScrollY() int
	InnerWidth() int
	AddListener(kind Kind, fn Listener) RemoveFunc
	ScrollTo(y int)
}

type listenerEntry struct {
	id uint64
	fn Listener
}

// Window holds scroll and width signals in pixels. It is driven from the
// bubbletea update loop and is not safe for concurrent use.
type Window struct {
	scrollY    int
	innerWidth int

	nextID    uint64
	listeners map[Kind][]listenerEntry
}

// NewWindow creates a window with the given width and scroll offset in pixels
func NewWindow(innerWidth, scrollY int) *Window {
	return &Window{
		scrollY:    clamp(scrollY),
		innerWidth: clamp(innerWidth),
		listeners:  make(map[Kind][]listenerEntry),
	}
}

// ScrollY returns the vertical scroll offset in pixels
func (w *Window) ScrollY() int {
	return w.scrollY
}

// InnerWidth returns the width in pixels
func (w *Window) InnerWidth() int {
	return w.innerWidth
}

// AddListener registers fn for kind. The returned function removes exactly
// this registration; calling it more than once is a no-op.
func (w *Window) AddListener(kind Kind, fn Listener) RemoveFunc {
	w.nextID++
	id := w.nextID
	w.listeners[kind] = append(w.listeners[kind], listenerEntry{id: id, fn: fn})

	return func() {
		entries := w.listeners[kind]
		for i, e := range entries {
			if e.id == id {
				w.listeners[kind] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of listeners registered for kind
func (w *Window) ListenerCount(kind Kind) int {
	return len(w.listeners[kind])
}

// ScrollTo sets the scroll offset and notifies scroll listeners.
// Listeners fire even when the offset is unchanged, like a browser scroll event.
func (w *Window) ScrollTo(y int) {
	w.scrollY = clamp(y)
	w.dispatch(KindScroll)
}

// Resize sets the width and notifies resize listeners
func (w *Window) Resize(innerWidth int) {
	w.innerWidth = clamp(innerWidth)
	w.dispatch(KindResize)
}

func (w *Window) dispatch(kind Kind) {
	// Copy so listeners may remove themselves while being notified
	entries := append([]listenerEntry(nil), w.listeners[kind]...)
	for _, e := range entries {
		e.fn(w)
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
