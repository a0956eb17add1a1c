package state

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// StateFileName is the name of the state file
	StateFileName = "state.yaml"
	// ConfigDirName is the name of the config directory
	ConfigDirName = ".folio"
)

// Storage handles state persistence
type Storage struct {
	mu       sync.RWMutex
	filePath string
	state    *State
}

// DefaultDir returns the directory holding the state file
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ConfigDirName), nil
}

// NewStorage creates a new storage instance with the default path
func NewStorage() (*Storage, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return NewStorageWithPath(filepath.Join(dir, StateFileName)), nil
}

// NewStorageWithPath creates a new storage instance with a custom path
func NewStorageWithPath(filePath string) *Storage {
	return &Storage{
		filePath: filePath,
		state:    NewState(),
	}
}

// Path returns the state file path
func (s *Storage) Path() string {
	return s.filePath
}

// Load reads the state from disk
func (s *Storage) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No state file yet, use default empty state
			s.state = NewState()
			return nil
		}
		return fmt.Errorf("failed to read state file: %w", err)
	}

	var state State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to parse state file: %w", err)
	}

	// Migrate if needed
	if state.Version < 1 {
		state.Version = 1
	}
	if state.InstallID == "" {
		state.InstallID = NewState().InstallID
	}

	s.state = &state
	return nil
}

// Save writes the state to disk atomically
func (s *Storage) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveInternal()
}

// saveInternal performs the actual save (must be called with lock held)
func (s *Storage) saveInternal() error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := yaml.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}

	// Write atomically using temp file
	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write temp state file: %w", err)
	}

	if err := os.Rename(tempFile, s.filePath); err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to rename temp state file: %w", err)
	}

	return nil
}

// State returns the current state (read-only copy)
func (s *Storage) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.state
}

// InstallID returns the install identifier
func (s *Storage) InstallID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.InstallID
}

// Theme returns the stored theme preference and whether one was set
func (s *Storage) Theme() (dark bool, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsDark(), s.state.HasTheme()
}

// SetDarkMode stores the theme preference and saves
func (s *Storage) SetDarkMode(dark bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SetDark(dark)
	return s.saveInternal()
}

// LastRoute returns the route open when the app last exited
func (s *Storage) LastRoute() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.LastRoute
}

// SetLastRoute stores the active route and saves
func (s *Storage) SetLastRoute(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.LastRoute = path
	return s.saveInternal()
}

// RecordVisit counts a launch and saves
func (s *Storage) RecordVisit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.RecordVisit(time.Now())
	return s.saveInternal()
}

// GetRepoCache returns a copy of the cached works list
func (s *Storage) GetRepoCache() []*CachedRepo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	repos := make([]*CachedRepo, len(s.state.RepoCache))
	copy(repos, s.state.RepoCache)
	return repos
}

// ReplaceRepoCache swaps the cached works list and saves
func (s *Storage) ReplaceRepoCache(repos []*CachedRepo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.ReplaceRepoCache(repos, time.Now())
	return s.saveInternal()
}

// CachedAt returns when the works list was last replaced
func (s *Storage) CachedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.CachedAt
}
