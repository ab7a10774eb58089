package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"a", runeKey('a'), core.ActionLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"s", runeKey('s'), core.ActionStop},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionStop},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire},
		{"w", runeKey('w'), core.ActionFire},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFire},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrameLatestMovementWins(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	keys.MapKeyToFrame(runeKey('a'), &frame)
	keys.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame)
	keys.MapKeyToFrame(runeKey('d'), &frame)

	if frame.Has(core.ActionLeft) {
		t.Error("Left should be replaced by the later Right")
	}
	if !frame.Has(core.ActionRight) || !frame.Has(core.ActionFire) {
		t.Errorf("Expected Right and Fire, got %v", frame.Actions)
	}

	if !keys.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should report quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("Quit is not a game action")
	}
}
