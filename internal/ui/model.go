package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"cinematch/internal/config"
	"cinematch/internal/contact"
	"cinematch/internal/domain"
	"cinematch/internal/eventbus"
	"cinematch/internal/loader"
	"cinematch/internal/logger"
	"cinematch/internal/poster"
	"cinematch/internal/suggest"
	"cinematch/internal/ui/commands"
	"cinematch/internal/ui/handlers"
	"cinematch/internal/ui/input"
	inputtypes "cinematch/internal/ui/input/types"
	"cinematch/internal/ui/state"
	"cinematch/internal/ui/viewmodels"
	"cinematch/internal/ui/views"
)

// indicatorWidth is the room taken by the ‹ and › markers around the card strip
const indicatorWidth = 4

// Model represents the UI state
type Model struct {
	config *config.Config
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	spinner     spinner.Model
	inPagerMode bool // tracks if we're currently in pager mode

	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	helpRenderer *HelpRenderer
	eventHandler *handlers.EventHandler
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	opener       *Opener
	log          *log.Logger

	root   context.Context
	cancel context.CancelFunc

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. prober may be nil to skip poster checks.
func NewModel(bus eventbus.EventBus, cfg *config.Config, ld *loader.Loader, prober *poster.Prober) *Model {
	engine := suggest.Engine{MinQuery: cfg.Suggest.MinQuery, MaxResults: cfg.Suggest.MaxResults}
	appState := state.NewAppState(engine, cfg.UI.CardWidth)
	root, cancel := context.WithCancel(context.Background())

	m := &Model{
		config:       cfg,
		state:        appState,
		help:         help.New(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(views.NewStyles().Loading)),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(),
		opener:       NewOpener(),
		log:          logger.New("ui"),
		root:         root,
		cancel:       cancel,
	}

	if !cfg.UI.ProbePosters {
		prober = nil
	}
	m.cmdExecutor = commands.NewExecutor(root, appState, bus, ld, prober, cfg.UI.ContactReset.Duration)
	m.eventHandler = handlers.NewEventHandler(appState, m.cmdExecutor)
	m.viewModel = viewmodels.NewViewModel(appState, m.inputHandler)

	// Step width follows the real card size
	m.state.Slider.Measure(m.renderer.CardWidth(), 0, 0)

	// The app opens on the search input
	m.processActions(m.inputHandler.SetMode(inputtypes.ModeSearch, m.inputContext()))

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.opener.SetProgram(p)
}

// State exposes the application state
func (m *Model) State() *state.AppState {
	return m.state
}

// Init starts the catalog load
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.cmdExecutor.ExecuteLoadCatalog(),
		m.spinner.Tick,
		textinput.Blink,
	)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeSlider()
		return m, nil

	case tea.KeyMsg:
		// A blocking alert swallows the key that dismisses it
		if m.state.Contact.Alert() != "" {
			m.state.Contact.DismissAlert()
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		inputCmd := m.inputHandler.Update(msg)
		model, cmd := m.handleNonKeyboardMsg(msg)
		return model, tea.Batch(inputCmd, cmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}
	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetSpinner(m.spinner.View())
	m.viewModel.SetHelp(m.help, m.shortHelp())
	return m.renderer.Render(m.viewModel.BuildViewState())
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{State: m.state}
}

func (m *Model) resizeSlider() {
	container := m.renderer.ContentWidth(m.width) - indicatorWidth
	// The last card carries no trailing gap
	m.state.Slider.Resize(container + 2)
}

// processActions runs a list of actions, e.g. mode enter and exit hooks
func (m *Model) processActions(actions []inputtypes.Action) tea.Cmd {
	cmds := []tea.Cmd{}
	for _, action := range actions {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.log.Debug("processAction", "action", action.Type())
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.state.Suggestions.Up()
		case "down":
			m.state.Suggestions.Down()
		}

	case inputtypes.CommitSuggestionAction:
		if text, ok := m.state.Suggestions.Enter(); ok {
			m.commitSuggestion(text)
		}

	case inputtypes.PickSuggestionAction:
		if text, ok := m.state.Suggestions.Pick(a.Index); ok {
			m.commitSuggestion(text)
		}

	case inputtypes.CloseSuggestionsAction:
		m.state.CloseSuggestions()

	case inputtypes.UpdateTextAction:
		m.state.SetQuery(a.Text)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.state.CloseSuggestions()
			return m.cmdExecutor.ExecuteRecommend(a.Text)
		}

	case inputtypes.SwitchSectionAction:
		m.state.SwitchSection(a.Section)
		return m.syncModeToSection()

	case inputtypes.CycleSectionAction:
		m.state.CycleSection(a.Delta)
		return m.syncModeToSection()

	case inputtypes.SlideAction:
		switch a.Direction {
		case "next":
			m.state.Slider.Next()
		case "prev":
			m.state.Slider.Prev()
		}

	case inputtypes.OpenWatchAction:
		if card, ok := m.state.CurrentCard(); ok {
			return m.openWatch(card.Title)
		}

	case inputtypes.ShowCardInfoAction:
		if card, ok := m.state.CurrentCard(); ok {
			return m.showCardInfo(card)
		}

	case inputtypes.FocusFieldAction:
		n := len(contact.Fields)
		next := contact.Field(((int(m.state.ContactField)+a.Delta)%n + n) % n)
		m.state.ContactField = next
		m.inputHandler.FocusField(next)

	case inputtypes.UpdateFieldAction:
		m.state.Contact.Set(a.Field, a.Text)

	case inputtypes.SubmitContactAction:
		return m.cmdExecutor.ExecuteSendContact()

	case inputtypes.ReloadCatalogAction:
		m.state.StatusMessage = "Reloading movies..."
		return m.cmdExecutor.ExecuteLoadCatalog()

	case inputtypes.ToggleHelpAction:
		return m.showHelp()

	case inputtypes.QuitAction:
		m.state.CancelAll()
		m.cancel()
		return tea.Quit
	}

	return nil
}

// commitSuggestion puts a chosen title into the input and the query
func (m *Model) commitSuggestion(text string) {
	m.state.CommitSuggestion(text)
	m.inputHandler.SetQuery(text)
}

// syncModeToSection focuses the input that belongs to the current section
func (m *Model) syncModeToSection() tea.Cmd {
	mode := inputtypes.ModeBrowse
	switch m.state.Section {
	case domain.SectionSearch:
		mode = inputtypes.ModeSearch
	case domain.SectionContact:
		mode = inputtypes.ModeContact
	}
	cmd := m.processActions(m.inputHandler.SetMode(mode, m.inputContext()))
	if mode != inputtypes.ModeBrowse {
		return tea.Batch(cmd, textinput.Blink)
	}
	return cmd
}

// showHelp returns a command that shows help using the ov pager
func (m *Model) showHelp() tea.Cmd {
	content := m.helpRenderer.RenderHelpContent()
	return m.runPaused(func() tea.Msg {
		return helpPagerMsg{err: NewHelpOps(m.program).ShowInPager(content)}
	})
}

// showCardInfo returns a command that shows a card's details in the pager
func (m *Model) showCardInfo(card poster.Card) tea.Cmd {
	content := m.helpRenderer.RenderCardInfo(card, m.state.Movie)
	return m.runPaused(func() tea.Msg {
		return cardInfoPagerMsg{title: card.Title, err: NewHelpOps(m.program).ShowInPager(content)}
	})
}

// openWatch returns a command that opens the watch search for title
func (m *Model) openWatch(title string) tea.Cmd {
	url := WatchURL(title)
	m.log.Info("opening watch link", "title", title, "url", url)
	return m.runPaused(func() tea.Msg {
		return openURLMsg{title: title, err: m.opener.Open(url)}
	})
}

// runPaused wraps fn so rendering is paused while it owns the terminal
func (m *Model) runPaused(fn func() tea.Msg) tea.Cmd {
	return func() tea.Msg {
		if m.program != nil {
			m.program.Send(pauseRenderingMsg{})
			defer m.program.Send(resumeRenderingMsg{})
		}
		return fn()
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case commands.ContactResetMsg:
		if m.state.Contact.Reset(msg.Token) {
			m.inputHandler.SyncContact(m.state.Contact)
		}
		return m, nil

	case spinner.TickMsg:
		// Don't continue the tick loop while the pager owns the screen
		if m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case helpPagerMsg:
		if msg.err != nil {
			m.log.Warn("help pager failed", "err", msg.err)
		}
		return m, nil

	case cardInfoPagerMsg:
		if msg.err != nil {
			m.log.Warn("card pager failed", "title", msg.title, "err", msg.err)
			m.state.StatusMessage = fmt.Sprintf("Could not show %s", msg.title)
		}
		return m, nil

	case openURLMsg:
		if msg.err != nil {
			m.log.Warn("open watch link failed", "title", msg.title, "err", msg.err)
			m.state.StatusMessage = fmt.Sprintf("Could not open browser: %s", WatchURL(msg.title))
		} else {
			m.state.StatusMessage = fmt.Sprintf("Opened watch search for %s", msg.title)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.spinner.Tick

	default:
		return m, nil
	}
}

// shortHelp returns the key hints for the current mode and section
func (m *Model) shortHelp() []key.Binding {
	quit := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	sections := key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "section"))

	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSearch:
		return []key.Binding{
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "suggestions")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "recommend")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "browse")),
			sections,
			quit,
		}
	case inputtypes.ModeContact:
		return []key.Binding{
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
			key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "browse")),
			quit,
		}
	}

	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "section")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	}
	if len(m.state.Cards) > 0 {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "slide")),
			key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "watch")),
		)
	}
	return append(bindings,
		key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	)
}
