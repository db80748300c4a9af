package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"scribe/internal/config"
	"scribe/internal/editor"
	"scribe/internal/eventbus"
	"scribe/internal/search"
	"scribe/internal/ui/commands"
	"scribe/internal/ui/handlers"
	"scribe/internal/ui/input"
	inputtypes "scribe/internal/ui/input/types"
	"scribe/internal/ui/state"
	"scribe/internal/ui/viewmodels"
	"scribe/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState
	editor *editor.Editor
	search *search.Service
	help   help.Model

	// Handlers
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	eventHandler *handlers.EventHandler
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	helpOps      *HelpOps

	now          func() time.Time
	searchOrigin editor.State // cursor and scroll when the search prompt opened
	err          error

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model editing ed. fileName is empty for an
// untitled buffer.
func NewModel(cfg *config.Config, ed *editor.Editor, store commands.Saver, bus eventbus.EventBus, fileName string) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState(fileName)

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		editor:       ed,
		search:       search.NewService(bus, search.Options{IgnoreCase: cfg.Search.IgnoreCase}),
		help:         help.New(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		helpOps:      NewHelpOps(nil),
		now:          time.Now,
	}
	clock := func() time.Time { return m.now() }

	m.viewModel = viewmodels.NewViewModel(appState, cfg, ed)
	m.eventHandler = handlers.NewEventHandler(appState, clock)
	m.cmdExecutor = commands.NewExecutor(&commands.CommandContext{
		State:   appState,
		Bus:     bus,
		Store:   store,
		Editor:  ed,
		Now:     clock,
		Timeout: cfg.MessageDuration(),
	})
	m.search.SetNavigateFunction(ed.CenterOn)

	if cfg.UI.ShowHelpHint {
		appState.SetStatus("HELP: "+m.help.ShortHelpView(m.inputHandler.Keys().ShortHelp()), m.now())
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// SetClock replaces the time source used for status messages
func (m *Model) SetClock(now func() time.Time) {
	m.now = now
}

// Err returns the error that ended the program, if any
func (m *Model) Err() error {
	return m.err
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.state.StatusMessage != "" {
		return m.expireStatus()
	}
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.state.Ready = true
		m.help.Width = msg.Width
		// last row is the message bar
		m.editor.Resize(msg.Width, msg.Height-1)
		return m, nil

	case tea.KeyMsg:
		statusBefore := m.state.StatusTime

		actions, cmd := m.inputHandler.HandleKey(msg, m.context())

		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		cmds = append(cmds, m.statusChanged(statusBefore))

		return m, tea.Batch(cmds...)

	case EventMsg:
		statusBefore := m.state.StatusTime
		cmd := m.eventHandler.HandleEvent(msg.Event)
		return m, tea.Batch(cmd, m.statusChanged(statusBefore))

	case statusExpiredMsg:
		if m.state.VisibleStatus(m.now(), m.config.MessageDuration()) == "" {
			m.state.ClearStatus()
		}
		return m, nil

	case helpPagerMsg:
		m.state.InPagerMode = false
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.state.SetStatus(fmt.Sprintf("Help unavailable: %v", msg.err), m.now())
			return m, m.expireStatus()
		}
		return m, nil

	case commands.SaveFailedMsg:
		m.err = fmt.Errorf("failed to save %s: %w", msg.Path, msg.Err)
		m.state.Quitting = true
		return m, tea.Quit
	}

	// Handle non-keyboard messages for the text input, such as cursor blinks
	return m, m.inputHandler.Update(msg)
}

// View renders the UI
func (m *Model) View() string {
	if !m.state.Ready {
		return "Loading..."
	}
	if m.state.Quitting || m.state.InPagerMode {
		return ""
	}

	if prompt, ok := m.inputHandler.Prompt(); ok {
		if ti := m.inputHandler.TextInput(); ti != nil {
			m.viewModel.SetPrompt(prompt+ti.View(), true)
		} else if m.inputHandler.CurrentMode() == inputtypes.ModeSearchCycle {
			m.viewModel.SetPrompt(fmt.Sprintf("[%d/%d] %s", m.search.CurrentIndex()+1, m.search.MatchCount(), prompt), false)
		} else {
			m.viewModel.SetPrompt(prompt, false)
		}
	} else {
		m.viewModel.ClearPrompt()
	}

	vs := m.viewModel.BuildViewState(m.now())
	if m.state.Height < 2 {
		// no room for text, keep the message bar
		vs.Height = 0
	}
	return m.renderer.Render(vs)
}

// statusChanged schedules expiry of a status message set since before
func (m *Model) statusChanged(before time.Time) tea.Cmd {
	if m.state.StatusMessage == "" || m.state.StatusTime.Equal(before) {
		return nil
	}
	return m.expireStatus()
}

func (m *Model) expireStatus() tea.Cmd {
	return tea.Tick(m.config.MessageDuration(), func(time.Time) tea.Msg {
		return statusExpiredMsg{}
	})
}

func (m *Model) setStatus(msg string) {
	m.state.SetStatus(msg, m.now())
}

// context exposes model state to the input handler
func (m *Model) context() inputtypes.Context {
	return modelContext{m: m}
}

type modelContext struct {
	m *Model
}

func (c modelContext) Dirty() bool           { return c.m.editor.Dirty() }
func (c modelContext) Untitled() bool        { return c.m.state.Untitled() }
func (c modelContext) ConfirmQuit() bool     { return c.m.config.Editor.ConfirmQuit }
func (c modelContext) SearchMatchCount() int { return c.m.search.MatchCount() }
