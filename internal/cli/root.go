// Package cli provides the command-line interface for folio
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Didstopia/folio/internal/config"
)

// Version information (set via ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	verbose    bool
	dark       bool
	token      string
	githubUser string
)

// Global logger
var log = logrus.New()

// Config loader
var configLoader *config.Loader

// Root command
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A portfolio for your terminal",
	Long: `folio renders a personal portfolio site in the terminal: a header with
route links and a theme toggle that hides while you scroll down, and the
pages behind it.

Run it without arguments to open the interactive view.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Inject config file values
		configLoader.InjectToCommand(cmd)

		// Re-read flags after injection
		verbose, _ = cmd.Flags().GetBool("verbose")
		applyLogLevel()

		return nil
	},
}

func init() {
	// Initialize config loader
	configLoader = config.NewLoader()
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&dark, "dark", false, "Start in the dark theme")
	rootCmd.PersistentFlags().StringVarP(&token, "token", "t", "", "GitHub API token for the works page")
	rootCmd.PersistentFlags().StringVar(&githubUser, "github-user", "", "GitHub user whose repositories are listed on the works page")
}

func initConfig() {
	if err := configLoader.Initialize(); err != nil {
		// Config initialization failure is not fatal for all commands
		log.Debugf("Config initialization: %v", err)
	}

	// Bind flags to viper
	for _, name := range []string{"verbose", "dark", "token", "github-user"} {
		if err := configLoader.BindFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			log.WithError(err).WithField("flag", name).Debug("Failed to bind flag")
		}
	}
}

func applyLogLevel() {
	if verbose || configLoader.GetBool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

// loadConfig returns the merged configuration after validating it
func loadConfig() (*config.Config, error) {
	cfg := configLoader.Config()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Execute runs the root command
func Execute() {
	// Create context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Debug("Received interrupt signal, shutting down")
		cancel()
	}()

	// Store context for subcommands
	rootCmd.SetContext(ctx)

	// Check if running with no arguments - launch TUI
	if len(os.Args) == 1 {
		initConfig()
		applyLogLevel()
		exit(RunTUI(ctx))
		return
	}

	exit(rootCmd.Execute())
}

// exit reports err and leaves with status 1; a cancelled context is a
// normal shutdown
func exit(err error) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
