// Package screens holds the page bodies shown below the header
package screens

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Didstopia/folio/internal/config"
	"github.com/Didstopia/folio/internal/content"
	"github.com/Didstopia/folio/internal/header"
	"github.com/Didstopia/folio/internal/tui"
)

// renderKey identifies a rendered body; it changes with the terminal width and theme
type renderKey struct {
	width int
	dark  bool
}

// PageScreen shows one static markdown page
type PageScreen struct {
	app      *tui.App
	keys     tui.KeyMap
	renderer *content.Renderer

	page *content.Page
	err  error

	rendered    string
	renderedFor renderKey
}

// NewPageScreen loads the page for path
func NewPageScreen(app *tui.App, path string, renderer *content.Renderer) *PageScreen {
	page, err := content.Load(path, SiteFromConfig(app.Config()))
	if err != nil {
		app.Logger().WithError(err).WithField("path", path).Warn("Failed to load page")
	}

	return &PageScreen{
		app:      app,
		keys:     tui.GetKeyMap(),
		renderer: renderer,
		page:     page,
		err:      err,
	}
}

// SiteFromConfig returns the template data for the pages
func SiteFromConfig(cfg *config.Config) content.Site {
	return content.Site{
		Owner:      cfg.Owner,
		Logo:       cfg.Logo,
		ResumeURL:  cfg.ResumeURL,
		GitHubUser: cfg.GitHubUser,
	}
}

// Register adds a screen factory for every header route
func Register(app *tui.App, renderer *content.Renderer) {
	for _, l := range header.Routes() {
		path := l.Path
		if path == header.PathWorks {
			app.RegisterScreenFactory(path, func(ctx context.Context, a *tui.App) tui.ScreenModel {
				return NewWorksScreen(ctx, a, renderer)
			})
			continue
		}
		app.RegisterScreenFactory(path, func(_ context.Context, a *tui.App) tui.ScreenModel {
			return NewPageScreen(a, path, renderer)
		})
	}
}

// Title returns the page title
func (p *PageScreen) Title() string {
	if p.page == nil {
		return ""
	}
	return p.page.Title
}

// ShortHelp returns key bindings for the footer
func (p *PageScreen) ShortHelp() []key.Binding {
	return []key.Binding{p.keys.Home, p.keys.About, p.keys.Works, p.keys.Contact}
}

// Init initializes the page screen
func (p *PageScreen) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (p *PageScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return p, nil
}

// View renders the page markdown for the current width and theme
func (p *PageScreen) View() string {
	if p.err != nil {
		return p.app.Styles().Error.Render(p.err.Error())
	}
	return renderMarkdown(p.app, p.renderer, p.page.Markdown, &p.rendered, &p.renderedFor)
}

// renderMarkdown renders md into *cache unless it was already rendered for the
// app's current width and theme. Render failures fall back to the raw markdown.
func renderMarkdown(app *tui.App, r *content.Renderer, md string, cache *string, cachedFor *renderKey) string {
	k := renderKey{width: app.BodyWidth(), dark: app.Styles().Dark}
	if *cache != "" && *cachedFor == k {
		return *cache
	}

	out, err := r.Render(md, k.width, k.dark)
	if err != nil {
		app.Logger().WithError(err).Warn("Falling back to plain markdown")
		out = md
	}
	*cache = out
	*cachedFor = k
	return out
}
