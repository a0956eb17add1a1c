// Package header holds the state model of the site header: scroll-driven
// visibility, the scroll-to-top affordance and the mobile/desktop layout class.
//
// All transitions go through Reduce so the behaviour can be exercised without
// a terminal.
package header

import "fmt"

// ViewportClass selects the header layout
type ViewportClass int

const (
	// Desktop renders links inline
	Desktop ViewportClass = iota
	// Mobile collapses links behind the hamburger menu
	Mobile
)

// String returns a human-readable name for the viewport class
func (c ViewportClass) String() string {
	switch c {
	case Mobile:
		return "mobile"
	case Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// Default thresholds, in pixels.
const (
	// DefaultMountMobileMax is the widest viewport treated as mobile when the header mounts
	DefaultMountMobileMax = 820
	// DefaultResizeMobileMax is the widest viewport treated as mobile after a resize
	DefaultResizeMobileMax = 900
	// DefaultScrollThreshold is the offset below which the header is pinned and the scroll-up button hidden
	DefaultScrollThreshold = 80
)

// Breakpoints configures the reducer. The mount and resize thresholds are
// deliberately separate values; set them equal for a single breakpoint.
type Breakpoints struct {
	MountMobileMax  int
	ResizeMobileMax int
	ScrollThreshold int
}

// DefaultBreakpoints returns the stock thresholds
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		MountMobileMax:  DefaultMountMobileMax,
		ResizeMobileMax: DefaultResizeMobileMax,
		ScrollThreshold: DefaultScrollThreshold,
	}
}

// Classify returns Mobile when width is at most max
func Classify(width, max int) ViewportClass {
	if width <= max {
		return Mobile
	}
	return Desktop
}

// State is the transient header state
type State struct {
	// Mounted is true between a MountEvent and an UnmountEvent
	Mounted bool
	// Offset is the last observed scroll offset in pixels
	Offset int
	// Width is the last observed viewport width in pixels
	Width int
	// Hidden is true while the page is being scrolled down past the threshold
	Hidden bool
	// ScrollUpShown controls the floating scroll-to-top button
	ScrollUpShown bool
	// Viewport is the current layout class
	Viewport ViewportClass
}

// String renders the state for logs and the render command
func (s State) String() string {
	return fmt.Sprintf("viewport=%s width=%d offset=%d hidden=%t scroll-up=%t",
		s.Viewport, s.Width, s.Offset, s.Hidden, s.ScrollUpShown)
}

// Event is an input to Reduce
type Event interface {
	isEvent()
}

// MountEvent initializes state from the current window metrics
type MountEvent struct {
	Width  int
	Offset int
}

// ScrollEvent reports a new vertical scroll offset
type ScrollEvent struct {
	Offset int
}

// ResizeEvent reports a new viewport width
type ResizeEvent struct {
	Width int
}

// UnmountEvent tears the header down
type UnmountEvent struct{}

func (MountEvent) isEvent()   {}
func (ScrollEvent) isEvent()  {}
func (ResizeEvent) isEvent()  {}
func (UnmountEvent) isEvent() {}

// Reduce applies ev to prev and returns the next state.
// Scroll and resize events are ignored while the header is not mounted.
func (b Breakpoints) Reduce(prev State, ev Event) State {
	switch ev := ev.(type) {
	case MountEvent:
		return State{
			Mounted:  true,
			Offset:   clamp(ev.Offset),
			Width:    clamp(ev.Width),
			Viewport: Classify(ev.Width, b.MountMobileMax),
		}

	case ScrollEvent:
		if !prev.Mounted {
			return prev
		}
		moving := clamp(ev.Offset)
		next := prev
		next.Hidden = prev.Offset < moving
		next.ScrollUpShown = true
		if moving < b.ScrollThreshold {
			next.Hidden = false
			next.ScrollUpShown = false
		}
		next.Offset = moving
		return next

	case ResizeEvent:
		if !prev.Mounted {
			return prev
		}
		next := prev
		next.Width = clamp(ev.Width)
		next.Viewport = Classify(ev.Width, b.ResizeMobileMax)
		return next

	case UnmountEvent:
		return State{}
	}

	return prev
}

// Reduce applies ev with the default breakpoints
func Reduce(prev State, ev Event) State {
	return DefaultBreakpoints().Reduce(prev, ev)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
