package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge/internal/core"
)

// Game is what the host drives each frame.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig) error
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// footerHeight is the number of terminal rows kept for the help line.
const footerHeight = 1

// Model is the Bubble Tea model running one game session.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	err        error
	quitting   bool
}

// NewModel creates a model and starts the first session.
// A zero seed is replaced with a time-based one.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := game.Reset(cfg); err != nil {
		return Model{}, fmt.Errorf("tui: starting %s: %w", game.ID(), err)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 0)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the pressed action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.ActionFor(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		if err := m.game.Reset(m.config); err != nil {
			return m.fail(err)
		}
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		m.logger.Info("restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	if result.Err != nil {
		return m.fail(result.Err)
	}
	m.gameState = result.State
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// fail stops the program; Run reports the error.
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.err = err
	m.quitting = true
	m.logger.Error("game stopped", "game", m.game.ID(), "err", err)
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Err returns the fatal error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// State returns the state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program in the alternate screen and blocks until
// the player quits or the game fails.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, cfg, logger)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fmt.Errorf("tui: %s: %w", game.ID(), fm.err)
	}
	return nil
}
