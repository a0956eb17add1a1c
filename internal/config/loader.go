package config

import (
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. FOLIO_GITHUB_USER
const EnvPrefix = "FOLIO"

var envKeyReplacer = strings.NewReplacer("-", "_")

// Loader manages configuration loading from multiple sources
type Loader struct {
	viper *viper.Viper
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	l := &Loader{
		viper: viper.New(),
	}
	l.setDefaults(DefaultConfig())
	return l
}

func (l *Loader) setDefaults(cfg *Config) {
	l.viper.SetDefault("verbose", cfg.Verbose)
	l.viper.SetDefault("owner", cfg.Owner)
	l.viper.SetDefault("logo", cfg.Logo)
	l.viper.SetDefault("resume-url", cfg.ResumeURL)
	l.viper.SetDefault("github-user", cfg.GitHubUser)
	l.viper.SetDefault("token", cfg.Token)
	l.viper.SetDefault("dark", cfg.Dark)
	l.viper.SetDefault("cell-width", cfg.CellWidth)
	l.viper.SetDefault("line-height", cfg.LineHeight)
	l.viper.SetDefault("mount-mobile-max", cfg.MountMobileMax)
	l.viper.SetDefault("resize-mobile-max", cfg.ResizeMobileMax)
	l.viper.SetDefault("scroll-threshold", cfg.ScrollThreshold)
	l.viper.SetDefault("works-timeout", cfg.WorksTimeout)
}

// Initialize sets up the configuration loader
func (l *Loader) Initialize() error {
	// Environment overrides apply even when no config file can be read
	l.viper.SetEnvPrefix(EnvPrefix)
	l.viper.SetEnvKeyReplacer(envKeyReplacer)
	l.viper.AutomaticEnv()

	// Ensure default config file exists
	if err := EnsureConfigFile(); err != nil {
		return err
	}

	// Search home directory for config file
	home, err := homedir.Dir()
	if err != nil {
		return err
	}
	l.viper.AddConfigPath(home)

	// Also search current directory
	l.viper.AddConfigPath(".")

	// Set config file name and type
	l.viper.SetConfigName(DefaultConfigFileName)
	l.viper.SetConfigType(DefaultConfigFileType)

	// Load configuration file
	return l.viper.ReadInConfig()
}

// ConfigFileUsed returns the path of the file that was read, if any
func (l *Loader) ConfigFileUsed() string {
	return l.viper.ConfigFileUsed()
}

// BindFlag binds a flag to a viper key
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	return l.viper.BindPFlag(key, flag)
}

// SetDefault sets a default value for a key
func (l *Loader) SetDefault(key string, value interface{}) {
	l.viper.SetDefault(key, value)
}

// GetString returns a string value
func (l *Loader) GetString(key string) string {
	return l.viper.GetString(key)
}

// GetBool returns a bool value
func (l *Loader) GetBool(key string) bool {
	return l.viper.GetBool(key)
}

// GetInt returns an int value
func (l *Loader) GetInt(key string) int {
	return l.viper.GetInt(key)
}

// IsSet checks if a key has been set
func (l *Loader) IsSet(key string) bool {
	return l.viper.IsSet(key)
}

// Config assembles a Config from every source the loader knows about
func (l *Loader) Config() *Config {
	return &Config{
		Verbose:         l.GetBool("verbose"),
		Owner:           l.GetString("owner"),
		Logo:            l.GetString("logo"),
		ResumeURL:       l.GetString("resume-url"),
		GitHubUser:      l.GetString("github-user"),
		Token:           l.GetString("token"),
		Dark:            l.GetBool("dark"),
		CellWidth:       l.GetInt("cell-width"),
		LineHeight:      l.GetInt("line-height"),
		MountMobileMax:  l.GetInt("mount-mobile-max"),
		ResizeMobileMax: l.GetInt("resize-mobile-max"),
		ScrollThreshold: l.GetInt("scroll-threshold"),
		WorksTimeout:    l.GetInt("works-timeout"),
	}
}

// InjectToCommand injects viper config values into command flags
// that weren't explicitly set via command line
func (l *Loader) InjectToCommand(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && l.viper.IsSet(f.Name) {
			_ = cmd.Flags().Set(f.Name, l.viper.GetString(f.Name))
		}
	})
}
