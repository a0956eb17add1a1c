// Package state provides persistence for viewer preferences and cached works
package state

import (
	"time"

	"github.com/google/uuid"
)

// Theme names stored in the state file
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// State represents the persisted application state
type State struct {
	Version     int           `yaml:"version"`
	InstallID   string        `yaml:"install_id"`
	Theme       string        `yaml:"theme,omitempty"`
	LastRoute   string        `yaml:"last_route,omitempty"`
	Visits      int           `yaml:"visits"`
	LastVisitAt time.Time     `yaml:"last_visit_at,omitempty"`
	RepoCache   []*CachedRepo `yaml:"repo_cache,omitempty"`
	CachedAt    time.Time     `yaml:"cached_at,omitempty"`
}

// CachedRepo represents cached repository metadata for the works page
type CachedRepo struct {
	FullName    string `yaml:"full_name"`
	Description string `yaml:"description,omitempty"`
	URL         string `yaml:"url"`
	Language    string `yaml:"language,omitempty"`
	Stars       int    `yaml:"stars"`
}

// NewState creates a new empty state with a fresh install ID
func NewState() *State {
	return &State{
		Version:   1,
		InstallID: uuid.New().String(),
		RepoCache: make([]*CachedRepo, 0),
	}
}

// HasTheme reports whether a theme preference has been stored
func (s *State) HasTheme() bool {
	return s.Theme == ThemeLight || s.Theme == ThemeDark
}

// IsDark reports whether the stored theme preference is dark
func (s *State) IsDark() bool {
	return s.Theme == ThemeDark
}

// SetDark stores the theme preference
func (s *State) SetDark(dark bool) {
	if dark {
		s.Theme = ThemeDark
	} else {
		s.Theme = ThemeLight
	}
}

// RecordVisit counts a launch
func (s *State) RecordVisit(now time.Time) {
	s.Visits++
	s.LastVisitAt = now
}

// ReplaceRepoCache swaps the cached works list
func (s *State) ReplaceRepoCache(repos []*CachedRepo, now time.Time) {
	s.RepoCache = make([]*CachedRepo, len(repos))
	copy(s.RepoCache, repos)
	s.CachedAt = now
}

// GetCachedRepo returns a cached repo by full name
func (s *State) GetCachedRepo(fullName string) *CachedRepo {
	for _, r := range s.RepoCache {
		if r.FullName == fullName {
			return r
		}
	}
	return nil
}
