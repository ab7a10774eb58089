package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// footerRows is the space below the playfield used by the help line.
const footerRows = 1

// overlay is a panel shown instead of the playfield. The game does not
// advance while one is open.
type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayRounds
)

// configLoader is implemented by games that load a configuration file on Reset.
type configLoader interface {
	LoadError() error
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	rounds     RoundLog
	roundsDone int // Rounds finished this session; the log keeps only the newest
	overlay    overlay
	started    time.Time
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg carries the full terminal size; the playfield gets all rows but the footer.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = discardLogger()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		rounds:     NewRoundLog(cfg.ScreenW, cfg.ScreenH),
		started:    time.Now(),
		logger:     logger.With("game", game.ID()),
	}
}

func playfieldHeight(screenH int) int {
	return max(screenH-footerRows, 0)
}

// playfieldConfig returns the runtime config the game sees.
func (m Model) playfieldConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = playfieldHeight(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.resetGame()
	m.logger.Info("game started",
		"width", m.config.ScreenW,
		"height", m.config.ScreenH,
		"seed", m.config.Seed,
	)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// resetGame rebuilds the game for the current size and reports config problems.
func (m Model) resetGame() {
	m.game.Reset(m.playfieldConfig())

	if cl, ok := m.game.(configLoader); ok {
		if err := cl.LoadError(); err != nil {
			m.logger.Warn("using default configuration", "error", err)
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.overlay = toggle(m.overlay, overlayHelp)
		return m, nil

	case key.Matches(msg, m.keys.Rounds):
		m.overlay = toggle(m.overlay, overlayRounds)
		return m, nil

	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	switch m.overlay {
	case overlayRounds:
		var cmd tea.Cmd
		m.rounds, cmd = m.rounds.Update(msg)
		return m, cmd
	case overlayHelp:
		return m, nil
	}

	m.keys.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

func toggle(current, target overlay) overlay {
	if current == target {
		return overlayNone
	}
	return target
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	m.rounds.Resize(msg.Width, msg.Height)

	// World size follows the terminal, so the round restarts
	m.resetGame()
	m.gameState = m.game.State()
	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.overlay != overlayNone {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, event := range result.Events {
		m.roundsDone++
		m.logger.Info("round ended", "round", m.roundsDone, "outcome", event)
		m.rounds.Add(RoundRecord{
			Number:  m.roundsDone,
			Elapsed: time.Since(m.started),
			Summary: event,
		})
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	dir := filepath.Join(home, ".invaders", "screenshots")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(screenText(m.screen)), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// screenText returns the screen as plain text without trailing blanks.
func screenText(s *core.Screen) string {
	var b strings.Builder
	for y := range s.Height() {
		b.WriteString(strings.TrimRight(s.Row(y), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.overlay {
	case overlayRounds:
		return m.rounds.View() + "\n" + helpStyle.Render(m.help.View(m.keys))
	case overlayHelp:
		full := m.help
		full.ShowAll = true
		panel := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Render(full.View(m.keys))
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, panel)
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Rounds returns the rounds finished so far.
func (m Model) Rounds() []RoundRecord {
	return m.rounds.Records()
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
