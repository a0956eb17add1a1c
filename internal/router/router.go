// Package router tracks the active route and its history
package router

// Context is the read/command surface the header depends on
type Context interface {
	// Path returns the active route
	Path() string
	// Navigate makes path the active route
	Navigate(path string)
}

// ChangeFunc is called after the active route changes
type ChangeFunc func(from, to string)

// Router is an in-memory history stack of route paths
type Router struct {
	current  string
	history  []string
	onChange []ChangeFunc
}

// New creates a router starting at path
func New(path string) *Router {
	if path == "" {
		path = "/"
	}
	return &Router{
		current: path,
		history: make([]string, 0),
	}
}

// Path returns the active route
func (r *Router) Path() string {
	return r.current
}

// Navigate pushes the current route onto the history and activates path.
// Navigating to the active route does not grow the history.
func (r *Router) Navigate(path string) {
	if path == "" || path == r.current {
		return
	}
	r.history = append(r.history, r.current)
	r.set(path)
}

// Back returns to the previous route. It reports false when there is no history.
func (r *Router) Back() bool {
	if len(r.history) == 0 {
		return false
	}
	prev := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	r.set(prev)
	return true
}

// OnChange registers fn to run after every route change
func (r *Router) OnChange(fn ChangeFunc) {
	r.onChange = append(r.onChange, fn)
}

func (r *Router) set(path string) {
	from := r.current
	r.current = path
	for _, fn := range r.onChange {
		fn(from, path)
	}
}
