package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Radialsum/X800W/internal/core"
	"github.com/Radialsum/X800W/internal/registry"
	"github.com/Radialsum/X800W/internal/storage"
)

// GameModel is the Bubble Tea model for playing a single game.
// Results are written to the store when a game is lost or won, and when it
// is abandoned by restarting, going back or quitting with a non-zero score.
// Every game gets its own UUID so repeated saves update one row.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	inputFrame core.InputFrame
	gameState  core.GameState
	player     string
	gameUUID   string

	// ScreenshotDir enables ctrl+s screenshots when set.
	ScreenshotDir string

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game and starts a new game.
// store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.Default()
	}

	game.Reset(cfg)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		player:     player,
		gameUUID:   uuid.NewString(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.recordResult()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.recordResult()
		m.backToMenu = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	m.gameState = m.game.State()

	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	restarting := m.inputFrame.Has(core.ActionRestart)
	if restarting {
		// The game restarts inside Step, so save the finished one first.
		m.recordResult()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case restarting && prev.Moves > 0 && m.gameState.Moves == 0:
		m.gameUUID = uuid.NewString()
	case m.gameState.GameOver && !prev.GameOver:
		m.recordResult()
	case m.gameState.Won && !prev.Won:
		m.recordResult()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordResult upserts the current game. Empty games are skipped.
func (m *GameModel) recordResult() {
	if m.store == nil || m.gameState.Score == 0 {
		return
	}

	st := m.gameState
	_, err := m.store.SaveResult(storage.Result{
		GameUUID: m.gameUUID,
		GameID:   m.game.ID(),
		Player:   m.player,
		Score:    st.Score,
		MaxTile:  st.MaxTile,
		Moves:    st.Moves,
		Won:      st.Won,
		Duration: st.Elapsed,
	})
	if err != nil {
		m.logger.Warn("could not save result", "game", m.game.ID(), "uuid", m.gameUUID, "error", err)
		return
	}
	m.logger.Debug("result saved", "game", m.game.ID(), "uuid", m.gameUUID, "score", st.Score)
}

// saveScreenshot writes the current screen as text to ScreenshotDir.
func (m *GameModel) saveScreenshot() {
	if m.ScreenshotDir == "" {
		return
	}

	m.game.Render(m.screen)

	if err := os.MkdirAll(m.ScreenshotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// GameUUID identifies the game in progress.
func (m GameModel) GameUUID() string {
	return m.gameUUID
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in its own Bubble Tea program until the player quits or
// goes back. The returned bool reports a back request.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) (bool, error) {
	model := NewGameModel(game, store, logger, cfg, player)
	model.ScreenshotDir = screenshotDir()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	return ok && m.BackToMenu(), nil
}
