package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

type fakeGame struct {
	id string
}

func (g *fakeGame) ID() string { return g.id }
func (g *fakeGame) Title() string { return "Fake " + g.id }
func (g *fakeGame) Reset(core.RuntimeConfig) {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen) {}
func (g *fakeGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test-fake", func() Game { return &fakeGame{id: "test-fake"} })

	if !Exists("test-fake") {
		t.Fatal("Expected registered game to exist")
	}

	g, err := Create("test-fake")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "test-fake" {
		t.Errorf("Expected ID test-fake, got %s", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-fake" {
			found = true
			if info.Title != "Fake test-fake" {
				t.Errorf("Expected title from factory, got %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Expected ErrUnknownGame, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Game { return &fakeGame{id: "test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	Register("test-dup", func() Game { return &fakeGame{id: "test-dup"} })
}
