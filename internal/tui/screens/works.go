package screens

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Didstopia/folio/internal/content"
	folioerrors "github.com/Didstopia/folio/internal/errors"
	"github.com/Didstopia/folio/internal/github"
	"github.com/Didstopia/folio/internal/header"
	"github.com/Didstopia/folio/internal/state"
	"github.com/Didstopia/folio/internal/tui"
)

// WorksCacheTTL is how long a fetched works list is reused before GitHub is asked again
const WorksCacheTTL = time.Hour

// WorksScreen shows the works page followed by the owner's public repositories
type WorksScreen struct {
	ctx      context.Context
	app      *tui.App
	keys     tui.KeyMap
	renderer *content.Renderer
	spinner  spinner.Model

	page *content.Page
	err  error

	works   []github.Work
	notice  string
	loading bool
	loaded  bool

	rendered    string
	renderedFor renderKey
}

// NewWorksScreen creates the works screen
func NewWorksScreen(ctx context.Context, app *tui.App, renderer *content.Renderer) *WorksScreen {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = app.Styles().Spinner

	page, err := content.Load(header.PathWorks, SiteFromConfig(app.Config()))

	return &WorksScreen{
		ctx:      ctx,
		app:      app,
		keys:     tui.GetKeyMap(),
		renderer: renderer,
		spinner:  s,
		page:     page,
		err:      err,
	}
}

// Title returns the page title
func (w *WorksScreen) Title() string {
	return content.Title(header.PathWorks)
}

// ShortHelp returns key bindings for the footer
func (w *WorksScreen) ShortHelp() []key.Binding {
	if !w.canFetch() {
		return nil
	}
	return []key.Binding{w.keys.Refresh}
}

// Works returns the listed works
func (w *WorksScreen) Works() []github.Work {
	return w.works
}

// Notice returns the message shown above the list, if any
func (w *WorksScreen) Notice() string {
	return w.notice
}

// Loading reports whether a fetch is in flight
func (w *WorksScreen) Loading() bool {
	return w.loading
}

// Init shows cached works when they are fresh and fetches otherwise
func (w *WorksScreen) Init() tea.Cmd {
	if w.loading || !w.canFetch() {
		return nil
	}
	if w.loaded {
		return nil
	}
	if works, ok := w.cachedWorks(true); ok {
		w.setWorks(works, "")
		return nil
	}
	return w.startFetch()
}

// Update handles messages
func (w *WorksScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, w.keys.Refresh) && w.canFetch() && !w.loading {
			return w, w.startFetch()
		}

	case tui.WorksLoadedMsg:
		w.loading = false
		if msg.Error != nil {
			w.app.Logger().WithError(msg.Error).Warn("Failed to fetch works")
			if stale, ok := w.cachedWorks(false); ok {
				w.setWorks(stale, "Showing saved works: "+describeFetchError(msg.Error))
			} else {
				w.setWorks(nil, "Could not load works: "+describeFetchError(msg.Error))
			}
			return w, nil
		}

		w.setWorks(msg.Works, "")
		w.saveCache(msg.Works)
		if len(msg.Works) == 0 {
			w.notice = "No public repositories yet."
		}

	case spinner.TickMsg:
		if w.loading {
			var cmd tea.Cmd
			w.spinner, cmd = w.spinner.Update(msg)
			return w, cmd
		}
	}

	return w, nil
}

// View renders the works page
func (w *WorksScreen) View() string {
	if w.err != nil {
		return w.app.Styles().Error.Render(w.err.Error())
	}

	md := content.WorksMarkdown(w.page.Markdown, w.works, w.notice)
	out := renderMarkdown(w.app, w.renderer, md, &w.rendered, &w.renderedFor)
	if w.loading {
		out = strings.TrimRight(out, "\n") + "\n\n  " + w.spinner.View() + " Loading works from GitHub..."
	}
	return out
}

func (w *WorksScreen) canFetch() bool {
	return w.app.GitHubClient() != nil && w.app.Config().GitHubUser != ""
}

func (w *WorksScreen) startFetch() tea.Cmd {
	w.loading = true
	return tea.Batch(w.spinner.Tick, w.fetch())
}

func (w *WorksScreen) fetch() tea.Cmd {
	ctx := w.ctx
	client := w.app.GitHubClient()
	cfg := w.app.Config()
	log := w.app.Logger()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, cfg.WorksTimeoutDuration())
		defer cancel()

		start := time.Now()
		works, err := github.FetchWorks(ctx, client, cfg.GitHubUser, github.DefaultWorksLimit)
		log.WithField("duration", time.Since(start).Round(time.Millisecond)).Debug("Works fetch finished")

		return tui.WorksLoadedMsg{Works: works, Error: err}
	}
}

func (w *WorksScreen) setWorks(works []github.Work, notice string) {
	w.works = works
	w.notice = notice
	w.loaded = true
	w.rendered = ""
}

// cachedWorks returns the saved works list. With fresh set, a list older
// than WorksCacheTTL is ignored.
func (w *WorksScreen) cachedWorks(fresh bool) ([]github.Work, bool) {
	storage := w.app.Storage()
	if storage == nil {
		return nil, false
	}
	cachedAt := storage.CachedAt()
	if cachedAt.IsZero() {
		return nil, false
	}
	if fresh && time.Since(cachedAt) > WorksCacheTTL {
		return nil, false
	}

	repos := storage.GetRepoCache()
	works := make([]github.Work, 0, len(repos))
	for _, r := range repos {
		if r == nil {
			continue
		}
		works = append(works, workFromCache(r))
	}
	return works, true
}

func (w *WorksScreen) saveCache(works []github.Work) {
	storage := w.app.Storage()
	if storage == nil {
		return
	}

	repos := make([]*state.CachedRepo, 0, len(works))
	for _, work := range works {
		repos = append(repos, &state.CachedRepo{
			FullName:    work.FullName,
			Description: work.Description,
			URL:         work.URL,
			Language:    work.Language,
			Stars:       work.Stars,
		})
	}
	if err := storage.ReplaceRepoCache(repos); err != nil {
		w.app.Logger().WithError(err).Warn("Failed to save works cache")
	}
}

func workFromCache(r *state.CachedRepo) github.Work {
	name := r.FullName
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return github.Work{
		Name:        name,
		FullName:    r.FullName,
		Description: r.Description,
		URL:         r.URL,
		Language:    r.Language,
		Stars:       r.Stars,
	}
}

func describeFetchError(err error) string {
	switch {
	case folioerrors.IsRateLimited(err):
		return "GitHub rate limit reached, try again later"
	case folioerrors.IsNotFound(err):
		return "GitHub user not found"
	case errors.Is(err, context.DeadlineExceeded):
		return "GitHub did not answer in time"
	default:
		return err.Error()
	}
}
