package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	pager "github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/Didstopia/folio/internal/config"
	"github.com/Didstopia/folio/internal/github"
	"github.com/Didstopia/folio/internal/router"
	"github.com/Didstopia/folio/internal/state"
	"github.com/Didstopia/folio/internal/theme"
	"github.com/Didstopia/folio/internal/viewport"
)

// ScreenModel is the interface that all page screens must implement.
// View returns the whole page body; the App scrolls it.
type ScreenModel interface {
	tea.Model
	// Title returns the page title
	Title() string
	// ShortHelp returns key bindings for the footer help
	ShortHelp() []key.Binding
}

// ScreenFactory creates a screen with dependencies
type ScreenFactory func(ctx context.Context, app *App) ScreenModel

// HeaderModel is the site header hosted above the page body
type HeaderModel interface {
	// Mount reads the window metrics and subscribes to window events
	Mount()
	// Unmount removes every subscription made by Mount
	Unmount()
	Update(msg tea.Msg) tea.Cmd
	// View renders the bar, or nothing while the header is hidden
	View() string
	// ScrollUpView renders the scroll-to-top button, or nothing while it is hidden
	ScrollUpView() string
}

// FooterModel renders the help line below the page body
type FooterModel interface {
	SetBindings(bindings []key.Binding)
	SetStatus(status string, isError bool)
	SetRight(text string)
	SetWidth(width int)
	SetDark(dark bool)
	View() string
}

// App is the main TUI application model
type App struct {
	// Context for cancellation
	ctx    context.Context
	cancel context.CancelFunc

	// Page screens keyed by route path (lazy initialized)
	currentPath     string
	screens         map[string]ScreenModel
	screenFactories map[string]ScreenFactory

	// Dependencies
	cfg      *config.Config
	router   *router.Router
	theme    *theme.Store
	window   *viewport.Window
	metrics  viewport.Metrics
	storage  *state.Storage
	ghClient github.Client
	log      logrus.FieldLogger

	// Chrome
	header HeaderModel
	footer FooterModel
	body   pager.Model

	// Rendered chrome from the last layout pass
	headerView   string
	footerView   string
	scrollUpView string

	// Terminal dimensions
	width  int
	height int

	// UI components
	keys KeyMap

	// State
	mounted  bool
	showHelp bool
	message  string
	isError  bool
	quitting bool

	// Version info
	version   string
	commit    string
	buildDate string
}

// AppOption configures the App
type AppOption func(*App)

// WithContext sets the context for the App
func WithContext(ctx context.Context) AppOption {
	return func(a *App) {
		a.ctx, a.cancel = context.WithCancel(ctx)
	}
}

// WithConfig sets the configuration
func WithConfig(cfg *config.Config) AppOption {
	return func(a *App) {
		a.cfg = cfg
	}
}

// WithRouter sets the router shared with the header
func WithRouter(r *router.Router) AppOption {
	return func(a *App) {
		a.router = r
	}
}

// WithTheme sets the theme store shared with the header
func WithTheme(t *theme.Store) AppOption {
	return func(a *App) {
		a.theme = t
	}
}

// WithWindow sets the window the header listens to
func WithWindow(w *viewport.Window) AppOption {
	return func(a *App) {
		a.window = w
	}
}

// WithHeader sets the header component
func WithHeader(h HeaderModel) AppOption {
	return func(a *App) {
		a.header = h
	}
}

// WithFooter sets the footer component
func WithFooter(f FooterModel) AppOption {
	return func(a *App) {
		a.footer = f
	}
}

// WithGitHubClient sets the GitHub client used by the works page
func WithGitHubClient(client github.Client) AppOption {
	return func(a *App) {
		a.ghClient = client
	}
}

// WithStorage sets the state storage
func WithStorage(storage *state.Storage) AppOption {
	return func(a *App) {
		a.storage = storage
	}
}

// WithLogger sets the logger
func WithLogger(log logrus.FieldLogger) AppOption {
	return func(a *App) {
		a.log = log
	}
}

// WithVersion sets the app version info for display
func WithVersion(version, commit, buildDate string) AppOption {
	return func(a *App) {
		a.version = version
		a.commit = commit
		a.buildDate = buildDate
	}
}

// NewApp creates a new TUI application
func NewApp(opts ...AppOption) *App {
	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		ctx:             ctx,
		cancel:          cancel,
		screens:         make(map[string]ScreenModel),
		screenFactories: make(map[string]ScreenFactory),
		keys:            DefaultKeyMap(),
		width:           80,
		height:          24,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.cfg == nil {
		app.cfg = config.DefaultConfig()
	}
	app.metrics = app.cfg.Metrics()
	if app.router == nil {
		app.router = router.New("/")
	}
	if app.theme == nil {
		app.theme = theme.NewStore(app.cfg.Dark)
	}
	if app.window == nil {
		app.window = viewport.NewWindow(app.metrics.WidthPx(app.width), 0)
	}
	if app.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		app.log = l
	}

	app.body = pager.New(app.width, app.height)
	app.body.MouseWheelEnabled = false
	app.currentPath = app.router.Path()

	return app
}

// RegisterScreenFactory registers a factory function for lazy screen creation
func (a *App) RegisterScreenFactory(path string, factory ScreenFactory) {
	a.screenFactories[path] = factory
}

// RegisterScreen registers a pre-created screen model
func (a *App) RegisterScreen(path string, model ScreenModel) {
	a.screens[path] = model
}

// getOrCreateScreen returns the screen model, creating it if necessary
func (a *App) getOrCreateScreen(path string) ScreenModel {
	if model, ok := a.screens[path]; ok {
		return model
	}

	if factory, ok := a.screenFactories[path]; ok {
		model := factory(a.ctx, a)
		a.screens[path] = model
		return model
	}

	return nil
}

// Context returns the app context
func (a *App) Context() context.Context {
	return a.ctx
}

// Config returns the configuration
func (a *App) Config() *config.Config {
	return a.cfg
}

// Router returns the router
func (a *App) Router() *router.Router {
	return a.router
}

// Theme returns the theme store
func (a *App) Theme() *theme.Store {
	return a.theme
}

// Window returns the window signals
func (a *App) Window() *viewport.Window {
	return a.window
}

// Styles returns the style set for the active theme
func (a *App) Styles() *Styles {
	return GetStyles(a.theme.IsDarkmode())
}

// GitHubClient returns the GitHub client
func (a *App) GitHubClient() github.Client {
	return a.ghClient
}

// Storage returns the state storage
func (a *App) Storage() *state.Storage {
	return a.storage
}

// Logger returns the app logger
func (a *App) Logger() logrus.FieldLogger {
	return a.log
}

// CurrentPath returns the route whose page is shown
func (a *App) CurrentPath() string {
	return a.currentPath
}

// Width returns the terminal width
func (a *App) Width() int {
	return a.width
}

// Height returns the terminal height
func (a *App) Height() int {
	return a.height
}

// BodyWidth returns the columns available to page content
func (a *App) BodyWidth() int {
	w := a.width - GetStyles(false).Content.GetHorizontalFrameSize()
	if w < 1 {
		return 1
	}
	return w
}

// ScrollOffset returns the page body offset in lines
func (a *App) ScrollOffset() int {
	return a.body.YOffset
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	a.currentPath = a.router.Path()
	if model := a.getOrCreateScreen(a.currentPath); model != nil {
		return model.Init()
	}
	return nil
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	forward := true

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.window.Resize(a.metrics.WidthPx(msg.Width))
		// The header classifies its layout with the mount breakpoint, so it
		// mounts once the real terminal width is known.
		if !a.mounted {
			a.mount()
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			a.quit()
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.showHelp = !a.showHelp
		case key.Matches(msg, a.keys.Back):
			if a.router.Back() {
				a.window.ScrollTo(0)
			}
		case key.Matches(msg, a.keys.Down):
			a.scrollBy(1)
		case key.Matches(msg, a.keys.Up):
			a.scrollBy(-1)
		case key.Matches(msg, a.keys.PageDown):
			a.scrollBy(a.body.Height)
		case key.Matches(msg, a.keys.PageUp):
			a.scrollBy(-a.body.Height)
		case key.Matches(msg, a.keys.Bottom):
			a.scrollBy(a.body.TotalLineCount())
		default:
			if a.header != nil {
				cmds = append(cmds, a.header.Update(msg))
			}
		}

	case tea.MouseMsg:
		forward = false
		cmds = append(cmds, a.handleMouse(msg))

	case ScrollToTopMsg:
		forward = false
		if a.header != nil {
			cmds = append(cmds, a.header.Update(msg))
		} else {
			a.window.ScrollTo(0)
		}

	case StatusMsg:
		a.message = msg.Text
		a.isError = false
		cmds = append(cmds, ClearMessageCmd(MessageDisplayDuration))

	case ErrorMsg:
		if msg.Err != nil {
			a.log.WithError(msg.Err).Warn("Error shown to user")
			a.message = msg.Err.Error()
			a.isError = true
			cmds = append(cmds, ClearMessageCmd(MessageDisplayDuration))
		}

	case ClearMessageMsg:
		a.message = ""
		a.isError = false

	}

	switch {
	case isAsyncResult(msg):
		// Results of commands started by a page may arrive after the
		// router moved on, so every created page sees them
		cmds = append(cmds, a.broadcast(msg))
	case forward:
		if model := a.getOrCreateScreen(a.currentPath); model != nil {
			cmds = append(cmds, a.updateScreen(a.currentPath, model, msg))
		}
	}

	cmds = append(cmds, a.syncRoute())
	a.layout()
	a.syncScroll()

	return a, tea.Batch(cmds...)
}

// isAsyncResult reports whether msg answers a command a page started earlier
func isAsyncResult(msg tea.Msg) bool {
	switch msg.(type) {
	case WorksLoadedMsg, spinner.TickMsg:
		return true
	}
	return false
}

// broadcast sends msg to every created page in path order
func (a *App) broadcast(msg tea.Msg) tea.Cmd {
	paths := make([]string, 0, len(a.screens))
	for path := range a.screens {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	cmds := make([]tea.Cmd, 0, len(paths))
	for _, path := range paths {
		cmds = append(cmds, a.updateScreen(path, a.screens[path], msg))
	}
	return tea.Batch(cmds...)
}

func (a *App) updateScreen(path string, model ScreenModel, msg tea.Msg) tea.Cmd {
	updatedModel, cmd := model.Update(msg)
	if screenModel, ok := updatedModel.(ScreenModel); ok {
		a.screens[path] = screenModel
	}
	return cmd
}

func (a *App) mount() {
	a.mounted = true
	if a.header != nil {
		a.header.Mount()
	}
	a.log.WithFields(logrus.Fields{
		"width_px": a.window.InnerWidth(),
		"route":    a.currentPath,
	}).Debug("Mounted")
}

func (a *App) quit() {
	a.quitting = true
	if a.mounted && a.header != nil {
		a.header.Unmount()
	}
	a.mounted = false
	a.cancel()
}

// scrollBy moves the page body and reports the new offset to the window
func (a *App) scrollBy(lines int) {
	before := a.body.YOffset
	if lines > 0 {
		a.body.ScrollDown(lines)
	} else if lines < 0 {
		a.body.ScrollUp(-lines)
	}
	if a.body.YOffset != before {
		a.window.ScrollTo(a.metrics.OffsetPx(a.body.YOffset))
	}
}

// syncScroll applies window scrolls made by others, e.g. the header's
// scroll-to-top, to the page body
func (a *App) syncScroll() {
	want := a.metrics.Lines(a.window.ScrollY())
	if want != a.body.YOffset {
		a.body.SetYOffset(want)
	}
}

// syncRoute swaps the page when the router moved
func (a *App) syncRoute() tea.Cmd {
	path := a.router.Path()
	if path == a.currentPath {
		return nil
	}

	a.log.WithFields(logrus.Fields{
		"from": a.currentPath,
		"to":   path,
	}).Debug("Route changed")
	a.currentPath = path

	a.body.GotoTop()
	if model := a.getOrCreateScreen(path); model != nil {
		return model.Init()
	}
	return nil
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.scrollBy(-WheelLines)
		return nil
	case tea.MouseButtonWheelDown:
		a.scrollBy(WheelLines)
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || a.header == nil {
		return nil
	}

	headerHeight := viewHeight(a.headerView)
	scrollUpRow := headerHeight + a.body.Height
	scrollUpWidth := lipgloss.Width(a.scrollUpView)

	switch {
	case msg.Y < headerHeight:
		return a.header.Update(msg)
	case msg.Y == scrollUpRow && scrollUpWidth > 0 && msg.X >= a.width-scrollUpWidth:
		return a.header.Update(ScrollToTopMsg{})
	}
	return nil
}

// layout renders the chrome and sizes the page body to fit between it
func (a *App) layout() {
	if a.header != nil && a.mounted {
		a.headerView = a.header.View()
		a.scrollUpView = a.header.ScrollUpView()
	} else {
		a.headerView = ""
		a.scrollUpView = ""
	}
	a.footerView = a.renderFooter()

	bodyHeight := a.height - viewHeight(a.headerView) - viewHeight(a.footerView) - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	a.body.Width = a.width
	a.body.Height = bodyHeight
	a.body.SetContent(a.renderBody())
}

func (a *App) renderBody() string {
	styles := a.Styles()
	model := a.getOrCreateScreen(a.currentPath)
	if model == nil {
		return styles.Content.Render(styles.Warning.Render(fmt.Sprintf("No page for %s", a.currentPath)))
	}
	return styles.Content.Render(model.View())
}

func (a *App) renderFooter() string {
	if a.footer == nil {
		return ""
	}

	var bindings []key.Binding
	if model := a.getOrCreateScreen(a.currentPath); model != nil {
		bindings = append(bindings, model.ShortHelp()...)
	}
	if a.showHelp {
		for _, group := range a.keys.FullHelp() {
			bindings = append(bindings, group...)
		}
	} else {
		bindings = append(bindings, a.keys.ShortHelp()...)
	}

	a.footer.SetBindings(bindings)
	a.footer.SetStatus(a.message, a.isError)
	a.footer.SetRight(formatVersion(a.version, a.commit, a.buildDate))
	a.footer.SetWidth(a.width)
	a.footer.SetDark(a.theme.IsDarkmode())
	return a.footer.View()
}

// View renders the app
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var parts []string
	if a.headerView != "" {
		parts = append(parts, a.headerView)
	}
	parts = append(parts,
		a.body.View(),
		lipgloss.PlaceHorizontal(a.width, lipgloss.Right, a.scrollUpView),
	)
	if a.footerView != "" {
		parts = append(parts, a.footerView)
	}

	return a.Styles().App.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// viewHeight is lipgloss.Height that counts an empty view as zero lines
func viewHeight(view string) int {
	if view == "" {
		return 0
	}
	return lipgloss.Height(view)
}

// formatVersion renders the footer version text.
// Production: v1.0.0 linux/amd64
// Dev build:  dev-abc1234 (2026-01-27) linux/amd64
func formatVersion(version, commit, buildDate string) string {
	if version == "" {
		return ""
	}
	platform := runtime.GOOS + "/" + runtime.GOARCH

	if version != "dev" {
		return "v" + strings.TrimPrefix(version, "v") + " " + platform
	}

	versionStr := "dev"
	if commit != "" && commit != "unknown" {
		commitShort := commit
		if len(commitShort) > 7 {
			commitShort = commitShort[:7]
		}
		versionStr += "-" + commitShort
	}
	if buildDate != "" && buildDate != "unknown" {
		dateStr := buildDate
		if len(dateStr) >= 10 {
			dateStr = dateStr[:10]
		}
		versionStr += " (" + dateStr + ")"
	}
	return versionStr + " " + platform
}

// RunAppInstance runs an existing App instance
func RunAppInstance(ctx context.Context, app *App) error {
	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if app.mounted {
		app.quit()
	}
	return shutdownErr(ctx, err)
}

// shutdownErr drops the error bubbletea reports when ctx was cancelled,
// since a signal ends the session the same way quitting does
func shutdownErr(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// PrintNonInteractiveHelp prints help when not in an interactive terminal
func PrintNonInteractiveHelp(w io.Writer) {
	fmt.Fprintln(w, "folio - a portfolio for your terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Interactive mode is not available in this environment.")
	fmt.Fprintln(w, "Use one of the following commands:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  folio render --route /about   - Print the header for a route")
	fmt.Fprintln(w, "  folio routes                  - List the site routes")
	fmt.Fprintln(w, "  folio config show             - Show the configuration")
	fmt.Fprintln(w, "  folio --help                  - Show all commands")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "For interactive mode, run folio in a terminal.")
}
