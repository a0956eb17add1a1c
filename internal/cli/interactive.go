package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Didstopia/folio/internal/config"
	"github.com/Didstopia/folio/internal/content"
	"github.com/Didstopia/folio/internal/github"
	"github.com/Didstopia/folio/internal/header"
	"github.com/Didstopia/folio/internal/router"
	"github.com/Didstopia/folio/internal/state"
	"github.com/Didstopia/folio/internal/theme"
	"github.com/Didstopia/folio/internal/tui"
	"github.com/Didstopia/folio/internal/tui/components"
	"github.com/Didstopia/folio/internal/tui/screens"
	tuiutil "github.com/Didstopia/folio/internal/tui/util"
	"github.com/Didstopia/folio/internal/viewport"
)

// LogFileName is the log written while the TUI owns the terminal
const LogFileName = "folio.log"

var interactiveCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive portfolio",
	Long: `Launch folio in interactive TUI mode.

This command is equivalent to running 'folio' with no arguments
in an interactive terminal.`,
	Aliases: []string{"ui", "interactive"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunTUI(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// RunTUI launches the portfolio TUI
func RunTUI(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Check if terminal is interactive
	if !tuiutil.IsInteractive() {
		tui.PrintNonInteractiveHelp(os.Stdout)
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Initialize state storage
	storage, err := state.NewStorage()
	if err != nil {
		return fmt.Errorf("failed to initialize state storage: %w", err)
	}

	// Load existing state
	if err := storage.Load(); err != nil {
		log.WithError(err).Debug("Failed to load state, starting fresh")
	}
	if err := storage.RecordVisit(); err != nil {
		log.WithError(err).Debug("Failed to record visit")
	}

	// The alt screen owns stdout and stderr until the program exits
	closeLog, err := redirectLog(filepath.Dir(storage.Path()))
	if err != nil {
		log.WithError(err).Debug("Logging to a file is not available, discarding logs")
		log.SetOutput(io.Discard)
	}
	defer closeLog()

	logger := log.WithField("session", storage.InstallID())
	logger.WithFields(logrus.Fields{
		"version": Version,
		"visits":  storage.State().Visits,
	}).Info("Starting folio")

	app := buildApp(ctx, cfg, storage, logger)
	return tui.RunAppInstance(ctx, app)
}

// buildApp wires the header, footer and pages around shared router, theme and window
func buildApp(ctx context.Context, cfg *config.Config, storage *state.Storage, logger logrus.FieldLogger) *tui.App {
	themeStore := theme.NewStore(startDark(cfg, storage), theme.WithPersister(storage), theme.WithLogger(logger))

	start := header.PathHome
	if last := storage.LastRoute(); header.KnownRoute(last) {
		start = last
	}
	rtr := router.New(start)
	rtr.OnChange(func(_, to string) {
		if err := storage.SetLastRoute(to); err != nil {
			logger.WithError(err).Warn("Failed to save last route")
		}
	})
	themeStore.OnChange(func(bool) {
		logger.WithField("theme", themeStore.Name()).Debug("Theme changed")
	})

	metrics := cfg.Metrics()
	window := viewport.NewWindow(metrics.WidthPx(80), 0)

	hdr := components.NewHeaderView(themeStore, rtr, window,
		components.WithBreakpoints(cfg.Breakpoints()),
		components.WithMetrics(metrics),
		components.WithIdentity(cfg.Owner, cfg.Logo),
		components.WithResumeURL(cfg.ResumeURL),
		components.WithHeaderLogger(logger.WithField("component", "header")),
	)

	opts := []tui.AppOption{
		tui.WithContext(ctx),
		tui.WithConfig(cfg),
		tui.WithRouter(rtr),
		tui.WithTheme(themeStore),
		tui.WithWindow(window),
		tui.WithHeader(hdr),
		tui.WithFooter(components.NewFooter()),
		tui.WithStorage(storage),
		tui.WithLogger(logger),
		tui.WithVersion(Version, Commit, BuildDate),
	}
	if cfg.GitHubUser != "" {
		client := github.NewRetryableClient(github.NewClient(cfg.Token), github.DefaultRetryConfig())
		opts = append(opts, tui.WithGitHubClient(client))
	}

	app := tui.NewApp(opts...)
	screens.Register(app, content.NewRenderer())
	return app
}

// startDark picks the initial theme: an explicit --dark flag, then the saved
// preference, then the config file
func startDark(cfg *config.Config, storage *state.Storage) bool {
	if rootCmd.PersistentFlags().Changed("dark") {
		return cfg.Dark
	}
	if saved, ok := storage.Theme(); ok {
		return saved
	}
	return cfg.Dark
}

// redirectLog points the global logger at the log file in dir and returns a
// function restoring stderr
func redirectLog(dir string) (func(), error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return func() {}, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return func() {}, fmt.Errorf("failed to open log file: %w", err)
	}

	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}
