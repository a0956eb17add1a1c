package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Didstopia/folio/internal/config"
	folioerrors "github.com/Didstopia/folio/internal/errors"
	"github.com/Didstopia/folio/internal/header"
	"github.com/Didstopia/folio/internal/router"
	"github.com/Didstopia/folio/internal/theme"
	"github.com/Didstopia/folio/internal/tui/components"
	"github.com/Didstopia/folio/internal/viewport"
)

// renderOptions describes one header snapshot
type renderOptions struct {
	Route    string
	Columns  int
	Scrolls  []int
	OpenMenu bool
}

var renderOpts renderOptions

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the header for a route without starting the TUI",
	Long: `Mount the header at the given terminal width, apply a sequence of scroll
offsets in pixels and print what it renders together with its state.

Example:
  folio render --route /about --width 120 --scroll 0,100,10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return renderHeader(cmd.OutOrStdout(), cfg, renderOpts)
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderOpts.Route, "route", header.PathHome, "Active route")
	renderCmd.Flags().IntVar(&renderOpts.Columns, "width", 120, "Terminal width in columns")
	renderCmd.Flags().IntSliceVar(&renderOpts.Scrolls, "scroll", nil, "Scroll offsets in pixels, applied in order")
	renderCmd.Flags().BoolVar(&renderOpts.OpenMenu, "menu", false, "Open the mobile menu before rendering")
	rootCmd.AddCommand(renderCmd)
}

func renderHeader(w io.Writer, cfg *config.Config, opts renderOptions) error {
	if !header.KnownRoute(opts.Route) {
		return folioerrors.NewRouteError(opts.Route)
	}
	if opts.Columns <= 0 {
		return folioerrors.NewValidationError("width", "must be positive")
	}

	metrics := cfg.Metrics()
	window := viewport.NewWindow(metrics.WidthPx(opts.Columns), 0)
	hdr := components.NewHeaderView(theme.NewStore(cfg.Dark), router.New(opts.Route), window,
		components.WithBreakpoints(cfg.Breakpoints()),
		components.WithMetrics(metrics),
		components.WithIdentity(cfg.Owner, cfg.Logo),
		components.WithResumeURL(cfg.ResumeURL),
		components.WithHeaderLogger(log),
	)
	hdr.Mount()
	defer hdr.Unmount()

	for _, y := range opts.Scrolls {
		window.ScrollTo(y)
	}
	if opts.OpenMenu {
		hdr.ToggleMenu()
	}

	if view := hdr.View(); view != "" {
		fmt.Fprintln(w, view)
	} else {
		fmt.Fprintln(w, "(header hidden)")
	}
	if button := hdr.ScrollUpView(); button != "" {
		fmt.Fprintln(w, button)
	}
	fmt.Fprintf(w, "%s class=%s\n", hdr.State(), hdr.RootClass())

	return nil
}
