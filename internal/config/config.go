// Package config provides configuration management for folio
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	folioerrors "github.com/Didstopia/folio/internal/errors"
	"github.com/Didstopia/folio/internal/header"
	"github.com/Didstopia/folio/internal/viewport"
)

const (
	// DefaultConfigFileName is the name of the config file (without extension)
	DefaultConfigFileName = ".folio"
	// DefaultConfigFileType is the config file extension
	DefaultConfigFileType = "yaml"
	// DefaultWorksTimeout is how long the works feed may take, in seconds
	DefaultWorksTimeout = 10
)

// Config holds all application configuration
type Config struct {
	// Global flags
	Verbose bool `yaml:"verbose"`

	// Site identity
	Owner      string `yaml:"owner"`
	Logo       string `yaml:"logo"`
	ResumeURL  string `yaml:"resume-url"`
	GitHubUser string `yaml:"github-user"`
	Token      string `yaml:"token"`

	// Appearance
	Dark bool `yaml:"dark"`

	// Pixel mapping of terminal cells
	CellWidth  int `yaml:"cell-width"`
	LineHeight int `yaml:"line-height"`

	// Header thresholds in pixels
	MountMobileMax  int `yaml:"mount-mobile-max"`
	ResizeMobileMax int `yaml:"resize-mobile-max"`
	ScrollThreshold int `yaml:"scroll-threshold"`

	// Works feed timeout in seconds
	WorksTimeout int `yaml:"works-timeout"`
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Verbose:         false,
		Owner:           "Victor Timbwa",
		Logo:            "VT",
		ResumeURL:       "",
		GitHubUser:      "",
		Token:           "",
		Dark:            false,
		CellWidth:       viewport.DefaultCellWidth,
		LineHeight:      viewport.DefaultLineHeight,
		MountMobileMax:  header.DefaultMountMobileMax,
		ResizeMobileMax: header.DefaultResizeMobileMax,
		ScrollThreshold: header.DefaultScrollThreshold,
		WorksTimeout:    DefaultWorksTimeout,
	}
}

// Validate checks the numeric settings
func (c *Config) Validate() error {
	positive := []struct {
		field string
		value int
	}{
		{"cell-width", c.CellWidth},
		{"line-height", c.LineHeight},
		{"mount-mobile-max", c.MountMobileMax},
		{"resize-mobile-max", c.ResizeMobileMax},
		{"scroll-threshold", c.ScrollThreshold},
		{"works-timeout", c.WorksTimeout},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return folioerrors.NewValidationError(p.field, "must be positive")
		}
	}
	return nil
}

// Breakpoints returns the header thresholds
func (c *Config) Breakpoints() header.Breakpoints {
	return header.Breakpoints{
		MountMobileMax:  c.MountMobileMax,
		ResizeMobileMax: c.ResizeMobileMax,
		ScrollThreshold: c.ScrollThreshold,
	}
}

// Metrics returns the cell-to-pixel mapping
func (c *Config) Metrics() viewport.Metrics {
	return viewport.Metrics{CellWidth: c.CellWidth, LineHeight: c.LineHeight}
}

// WorksTimeoutDuration returns the works feed timeout
func (c *Config) WorksTimeoutDuration() time.Duration {
	return time.Duration(c.WorksTimeout) * time.Second
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultConfigFileName+"."+DefaultConfigFileType), nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	path, err := GetConfigFilePath()
	if err != nil {
		return err
	}

	// Check if config file already exists
	if _, err := os.Stat(path); err == nil {
		return nil // File exists
	} else if !os.IsNotExist(err) {
		return err // Some other error
	}

	// Create default config
	cfg := DefaultConfig()
	return cfg.SaveTo(path)
}

// LoadFrom loads configuration from a file
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveTo saves configuration to a file with secure permissions
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// The file may hold a GitHub token
	return os.WriteFile(path, data, 0600)
}

// Clone returns a copy of the config
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// Redacted returns a copy safe to print
func (c *Config) Redacted() *Config {
	clone := c.Clone()
	if clone.Token != "" {
		clone.Token = "********"
	}
	return clone
}
