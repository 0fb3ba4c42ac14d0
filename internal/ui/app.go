package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/foodie/internal/access"
	"github.com/five82/foodie/internal/cookbook"
	"github.com/five82/foodie/internal/prefs"
	"github.com/five82/foodie/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewList View = iota
	ViewRecipe
	ViewForm
)

// Mutation kinds reported back to the model.
const (
	actionCreate   = "create"
	actionSave     = "save"
	actionFavorite = "favorite"
	actionDelete   = "delete"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Book      access.Cookbook
	Store     *state.Store
	Logger    *zap.Logger
	PollTick  time.Duration
	ThemeName string
	Filter    string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	book      access.Cookbook
	store     *state.Store
	logger    *zap.Logger
	prefsPath string
	pollTick  time.Duration
	keys      keyMap

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool
	modal       Modal

	// Data state
	snapshot state.Snapshot

	// List state
	selectedRow  int
	filterMode   Filter
	searchActive bool
	searchInput  textinput.Model
	searchQuery  string

	// Recipe view state
	recipeName     string
	recipeViewport viewport.Model

	// Form state
	form recipeForm

	// Header flash message
	statusMsg   string
	statusErr   bool
	statusShown time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultUIInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = "search recipes"
	search.CharLimit = 64

	return Model{
		ctx:         ctx,
		book:        opts.Book,
		store:       store,
		logger:      logger,
		prefsPath:   opts.PrefsPath,
		pollTick:    pollTick,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(themeName),
		currentView: ViewList,
		filterMode:  ParseFilter(opts.Filter),
		searchInput: search,
		snapshot:    store.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
		fetchSnapshotCmd(m.store),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initRecipeViewport()
		}
		m.ready = true
		m.updateRecipeViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case mutationMsg:
		return m.handleMutation(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// handleKey processes keyboard input. Text entry owns the keyboard in the
// form and the search prompt, so global keys only apply elsewhere.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	if m.currentView == ViewForm {
		return m.handleFormKey(msg)
	}
	if m.searchActive {
		return m.handleListKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.updateRecipeViewport()
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshCmd()
	}

	switch m.currentView {
	case ViewRecipe:
		return m.handleRecipeKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

// openForm switches to the form view with form.
func (m Model) openForm(form recipeForm) (tea.Model, tea.Cmd) {
	m.form = form
	m.currentView = ViewForm
	return m, m.form.setFocus(fieldTitle)
}

// handleFormKey forwards keys to the form and acts on submit and cancel.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, action := m.form.update(msg, m.keys)
	switch action {
	case formCancel:
		if m.form.editing && m.snapshot.Cookbook.Contains(m.form.original) {
			return m.openRecipe(m.form.original), nil
		}
		m.currentView = ViewList
		return m, nil
	case formSubmit:
		return m.submitForm()
	}
	return m, cmd
}

// submitForm builds the recipe and sends it to the backend. Build errors
// stay on the form.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	r, err := m.form.build(m.snapshot.Cookbook)
	if err != nil {
		m.form.message = errMessage(err)
		return m, nil
	}
	book := m.book
	if m.form.editing {
		original := m.form.original
		return m, m.mutate(actionSave, r.Name, func(ctx context.Context) error {
			return book.EditRecipe(ctx, original, r)
		})
	}
	return m, m.mutate(actionCreate, r.Name, func(ctx context.Context) error {
		return book.AddRecipe(ctx, r)
	})
}

// toggleFavoriteCmd flips the favorite flag of r.
func (m Model) toggleFavoriteCmd(r cookbook.Recipe) tea.Cmd {
	book := m.book
	return m.mutate(actionFavorite, r.Name, func(ctx context.Context) error {
		return access.Favorite(ctx, book, r.Name, !r.Fav)
	})
}

// deleteCmd removes the recipe titled name.
func (m Model) deleteCmd(name string) tea.Cmd {
	book := m.book
	return m.mutate(actionDelete, name, func(ctx context.Context) error {
		return book.DeleteRecipe(ctx, name)
	})
}

// mutate runs op against the backend, refreshes the shared store and reports
// the result with the fresh snapshot.
func (m Model) mutate(action, name string, op func(context.Context) error) tea.Cmd {
	ctx, book, store, logger := m.ctx, m.book, m.store, m.logger
	return func() tea.Msg {
		if book == nil {
			return mutationMsg{action: action, name: name, err: errors.New("no cookbook backend")}
		}
		opCtx, cancel := context.WithTimeout(ctx, MutationTimeout)
		defer cancel()

		err := op(opCtx)
		if err != nil {
			logger.Warn("recipe change failed",
				zap.String("action", action),
				zap.String("recipe", name),
				zap.Error(err),
			)
		} else {
			logger.Info("recipe changed",
				zap.String("action", action),
				zap.String("recipe", name),
			)
			if refreshErr := store.Refresh(opCtx, book); refreshErr != nil {
				logger.Warn("refresh after change failed", zap.Error(refreshErr))
			}
		}
		return mutationMsg{action: action, name: name, err: err, snapshot: store.Snapshot()}
	}
}

// refreshCmd fetches the cookbook now instead of waiting for the poller.
func (m Model) refreshCmd() tea.Cmd {
	ctx, book, store, logger := m.ctx, m.book, m.store, m.logger
	return func() tea.Msg {
		if book != nil {
			opCtx, cancel := context.WithTimeout(ctx, MutationTimeout)
			defer cancel()
			if err := store.Refresh(opCtx, book); err != nil {
				logger.Warn("manual refresh failed", zap.Error(err))
			}
		}
		return snapshotMsg(store.Snapshot())
	}
}

// handleMutation applies a finished mutation and moves to the view that
// follows it.
func (m Model) handleMutation(msg mutationMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.currentView == ViewForm {
			m.form.message = errMessage(msg.err)
		} else {
			m.flash(errMessage(msg.err), true)
		}
		return m, nil
	}

	m.applySnapshot(msg.snapshot)

	switch msg.action {
	case actionCreate:
		m.currentView = ViewList
		m.selectByName(msg.name)
		m.flash("Created "+msg.name, false)
	case actionSave:
		m = m.openRecipe(msg.name)
		m.flash("Saved "+msg.name, false)
	case actionDelete:
		if m.currentView == ViewRecipe {
			m.currentView = ViewList
		}
		m.updateSelection("")
		m.flash("Deleted "+msg.name, false)
	case actionFavorite:
		if r, ok := m.snapshot.Cookbook.Get(msg.name); ok && r.Fav {
			m.flash("Favorited "+msg.name, false)
		} else {
			m.flash("Unfavorited "+msg.name, false)
		}
	}
	return m, nil
}

// applySnapshot swaps in a new snapshot, keeping the selection and leaving
// the recipe view when its recipe is gone.
func (m *Model) applySnapshot(snap state.Snapshot) {
	current, _ := m.selectedRecipe()
	m.snapshot = snap
	m.updateSelection(current.Name)
	if m.currentView == ViewRecipe && !m.snapshot.Cookbook.Contains(m.recipeName) {
		m.currentView = ViewList
	}
	m.updateRecipeViewport()
}

func (m *Model) flash(text string, isErr bool) {
	m.statusMsg = text
	m.statusErr = isErr
	m.statusShown = time.Now()
}

// activeStatus returns the flash message while it is still fresh.
func (m Model) activeStatus() (string, bool) {
	if m.statusMsg == "" || time.Since(m.statusShown) > StatusFlashDuration {
		return "", false
	}
	return m.statusMsg, m.statusErr
}

// savePrefs persists the theme and list filter.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Filter: m.filterMode.String()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save preferences failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.pollTick))
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: logo + status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: command bar
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	// Main content
	b.WriteString(m.renderContent())

	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewRecipe:
		return m.renderRecipeView()
	case ViewForm:
		return m.renderFormView()
	default:
		return m.renderList()
	}
}

// renderFormView renders the form in a full-width box.
func (m Model) renderFormView() string {
	body := m.form.view(m.theme, m.width-4, m.theme.FocusBg)
	return m.renderTitledBox(m.form.heading(), body, m.width, m.height-2, true)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type mutationMsg struct {
	action   string
	name     string
	err      error
	snapshot state.Snapshot
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until it exits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
