// Package theme owns the light/dark flag shared by the header and the pages
package theme

import (
	"github.com/sirupsen/logrus"
)

// Context is the read/command surface the header depends on
type Context interface {
	IsDarkmode() bool
	ToggleTheme()
}

// Persister stores the theme preference
type Persister interface {
	SetDarkMode(dark bool) error
}

// Store is the single owner of the theme flag
type Store struct {
	dark      bool
	persister Persister
	log       logrus.FieldLogger
	listeners []func(dark bool)
}

// Option configures the Store
type Option func(*Store)

// WithPersister saves every toggle through p
func WithPersister(p Persister) Option {
	return func(s *Store) {
		s.persister = p
	}
}

// WithLogger sets the logger used for persistence failures
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// NewStore creates a store starting in the given mode
func NewStore(dark bool, opts ...Option) *Store {
	s := &Store{dark: dark}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		s.log = l
	}
	return s
}

// IsDarkmode reports whether the dark theme is active
func (s *Store) IsDarkmode() bool {
	return s.dark
}

// ToggleTheme flips the theme. A failed save is logged and does not undo the flip.
func (s *Store) ToggleTheme() {
	s.dark = !s.dark

	if s.persister != nil {
		if err := s.persister.SetDarkMode(s.dark); err != nil {
			s.log.WithError(err).Warn("Failed to save theme preference")
		}
	}

	for _, fn := range s.listeners {
		fn(s.dark)
	}
}

// OnChange registers fn to run after every toggle
func (s *Store) OnChange(fn func(dark bool)) {
	s.listeners = append(s.listeners, fn)
}

// Name returns "dark" or "light"
func (s *Store) Name() string {
	if s.dark {
		return "dark"
	}
	return "light"
}
