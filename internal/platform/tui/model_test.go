package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// stubGame records what the model feeds it.
type stubGame struct {
	resets  []core.RuntimeConfig
	steps   []core.InputFrame
	events  []string
	loadErr error
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	g.steps = append(g.steps, frame)

	events := g.events
	g.events = nil
	return core.StepResult{State: core.GameState{Score: len(g.steps)}, Events: events}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub playfield")
}

func (g *stubGame) State() core.GameState { return core.GameState{} }

func (g *stubGame) LoadError() error { return g.loadErr }

func newTestModel(g *stubGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelResetsWithPlayfieldSize(t *testing.T) {
	g := &stubGame{loadErr: errors.New("broken")}
	m := newTestModel(g)
	m.Init()

	if len(g.resets) != 1 {
		t.Fatalf("Expected one reset, got %d", len(g.resets))
	}
	if g.resets[0].ScreenW != 80 || g.resets[0].ScreenH != 24-footerRows {
		t.Errorf("Expected 80x%d playfield, got %dx%d", 24-footerRows, g.resets[0].ScreenW, g.resets[0].ScreenH)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if len(g.resets) != 2 || g.resets[1].ScreenH != 30-footerRows {
		t.Errorf("Resize should reset the game with the new size, got %+v", g.resets)
	}
}

func TestModelFeedsKeysToNextTick(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)

	m = update(t, m, runeKey('a'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	if len(g.steps) != 2 {
		t.Fatalf("Expected 2 steps, got %d", len(g.steps))
	}
	if !g.steps[0].Has(core.ActionLeft) || !g.steps[0].Has(core.ActionFire) {
		t.Errorf("First tick missing input: %v", g.steps[0].Actions)
	}
	if len(g.steps[1].Actions) != 0 {
		t.Errorf("Input should be cleared after a tick, got %v", g.steps[1].Actions)
	}
	if m.gameState.Score != 2 {
		t.Errorf("Expected state from last step, got %+v", m.gameState)
	}
}

func TestModelOverlayPausesGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, TickMsg{})
	if len(g.steps) != 0 {
		t.Error("Game should not advance while the round log is open")
	}
	if !strings.Contains(m.View(), "ROUNDS THIS SESSION") {
		t.Error("Expected the round log view")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, TickMsg{})
	if len(g.steps) != 1 {
		t.Errorf("Game should resume after closing the log, got %d steps", len(g.steps))
	}
}

func TestModelRecordsRounds(t *testing.T) {
	g := &stubGame{events: []string{"wave 1 cleared with 300 points"}}
	m := newTestModel(g)

	m = update(t, m, TickMsg{})

	rounds := m.Rounds()
	if len(rounds) != 1 {
		t.Fatalf("Expected one round, got %d", len(rounds))
	}
	if rounds[0].Number != 1 || rounds[0].Summary != "wave 1 cleared with 300 points" {
		t.Errorf("Unexpected round %+v", rounds[0])
	}
}

func TestModelNumbersRoundsPastLogCap(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)

	total := maxRoundRecords + 5
	for i := 0; i < total; i++ {
		g.events = []string{"game over"}
		m = update(t, m, TickMsg{})
	}

	rounds := m.Rounds()
	if len(rounds) != maxRoundRecords {
		t.Fatalf("Expected %d rounds kept, got %d", maxRoundRecords, len(rounds))
	}
	if first := rounds[0].Number; first != 6 {
		t.Errorf("Expected oldest kept round #6, got #%d", first)
	}
	if last := rounds[len(rounds)-1].Number; last != total {
		t.Errorf("Expected newest round #%d, got #%d", total, last)
	}
}

func TestScreenText(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "Score")
	s.DrawText(4, 2, "|")

	want := "Score\n\n    |\n"
	if got := screenText(s); got != want {
		t.Errorf("screenText() = %q, want %q", got, want)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&stubGame{})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("Quitting model should render nothing")
	}
}

func TestModelViewIncludesHelp(t *testing.T) {
	m := newTestModel(&stubGame{})

	view := m.View()
	if !strings.Contains(view, "stub playfield") {
		t.Error("Expected the game render")
	}
	if !strings.Contains(view, "fire") {
		t.Error("Expected the help line")
	}
}
