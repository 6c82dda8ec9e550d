package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Eristhenis/arduinospaceinvaders/internal/core"
	"github.com/Eristhenis/arduinospaceinvaders/internal/registry"
	"github.com/Eristhenis/arduinospaceinvaders/internal/storage"
)

// The logical LCD panel the games draw into.
const (
	lcdWidth  = 128
	lcdHeight = 64
)

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	frame      *core.Frame
	store      *storage.Store
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	highScore  int
	roundTicks int
	quitting   bool
	roundSaved bool // Whether the current round-over has been persisted
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	high := 0
	if store != nil {
		//nolint:errcheck // Best-effort read, shown as 0 on failure
		high, _ = store.HighScore(game.ID())
	}

	return Model{
		game:       game,
		frame:      core.NewFrame(lcdWidth, lcdHeight),
		store:      store,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		highScore:  high,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. A key press counts as the button
// being held for the upcoming tick; the frame is cleared after every
// simulation step.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.roundTicks++

	// The game restarts rounds internally through its own key gesture;
	// the over -> running transition is where the round counter rewinds.
	if wasOver && !m.gameState.GameOver {
		m.roundTicks = 0
		m.roundSaved = false
	}

	// Persist the round once when it ends.
	if m.gameState.GameOver && !m.roundSaved {
		if m.store != nil {
			outcome := storage.OutcomeLost
			if m.gameState.Cleared {
				outcome = storage.OutcomeCleared
			}
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRound(m.game.ID(), m.gameState.Score, outcome, m.roundTicks)
		}
		if m.gameState.Score > m.highScore {
			m.highScore = m.gameState.Score
		}
		m.roundSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current panel contents to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.frame)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(RenderFrame(m.frame)+"\n"), 0o600)
}

// View renders the panel plus a status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.frame)

	status := fmt.Sprintf("Score %d   Lives %d   High %d   q: quit  ctrl+s: screenshot",
		m.gameState.Score, m.gameState.Lives, m.highScore)

	return panelStyle.Render(RenderFrame(m.frame)) + "\n" + statusStyle.Render(status)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
