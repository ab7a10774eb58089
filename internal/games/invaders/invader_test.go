package invaders

import (
	"math"
	"testing"
	"time"
)

// scriptedSource returns queued values and records the n of every draw.
type scriptedSource struct {
	values []int
	draws  []int
}

func (s *scriptedSource) Intn(n int) int {
	s.draws = append(s.draws, n)
	if len(s.values) == 0 {
		return n - 1
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

func testLayout(t *testing.T) Layout {
	t.Helper()

	l, err := NewLayout(testWidth, testHeight)
	if err != nil {
		t.Fatalf("NewLayout failed: %v", err)
	}
	return l
}

func TestInvaderGridPosition(t *testing.T) {
	l := testLayout(t)

	inv := NewInvader(2, 3, l)
	if inv.X != 270 || inv.Y != 120 {
		t.Errorf("Expected (270, 120), got (%v, %v)", inv.X, inv.Y)
	}
	if inv.Length != 50 || inv.Height != 80 {
		t.Errorf("Expected 50x80, got %vx%v", inv.Length, inv.Height)
	}
	if !inv.Visible() {
		t.Error("New invader should be visible")
	}
}

func TestInvaderAdvance(t *testing.T) {
	l := testLayout(t)

	inv := NewInvader(0, 1, l)
	inv.Advance(Wave{Heading: HeadingRight, Speed: 40}, 500*time.Millisecond)
	if inv.X != 110 {
		t.Errorf("Expected X 110, got %v", inv.X)
	}

	inv.Advance(Wave{Heading: HeadingLeft, Speed: 40}, time.Second)
	if inv.X != 70 {
		t.Errorf("Expected X 70, got %v", inv.X)
	}
	if inv.Rect().Left != inv.X {
		t.Error("Rect not updated after Advance")
	}
}

func TestInvaderTakeAim(t *testing.T) {
	l := testLayout(t)
	odds := AimOdds{Near: 150, Far: 2000}

	tests := []struct {
		name      string
		shipX     float64
		values    []int
		want      bool
		wantDraws []int
	}{
		{"far miss", 800, nil, false, []int{2000}},
		{"far hit", 800, []int{0}, true, []int{2000}},
		{"near hit", 20, []int{0}, true, []int{150}},
		{"near miss falls back to far", 20, []int{1, 0}, true, []int{150, 2000}},
		{"near and far miss", 20, nil, false, []int{150, 2000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Invader spans 0..50
			inv := NewInvader(0, 0, l)

			src := &scriptedSource{values: tt.values}
			if got := inv.TakeAim(src, odds, tt.shipX, l.ShipLength); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if len(src.draws) != len(tt.wantDraws) {
				t.Fatalf("Expected draws %v, got %v", tt.wantDraws, src.draws)
			}
			for i := range tt.wantDraws {
				if src.draws[i] != tt.wantDraws[i] {
					t.Errorf("Draw %d: expected n=%d, got %d", i, tt.wantDraws[i], src.draws[i])
				}
			}
		})
	}
}

func TestInvaderAtEdge(t *testing.T) {
	l := testLayout(t)

	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"left inside", 0, false},
		{"left outside", -0.1, true},
		{"right inside", testWidth - 50, false},
		{"right outside", testWidth - 49.9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := NewInvader(0, 0, l)
			inv.X = tt.x
			if got := inv.AtEdge(testWidth); got != tt.want {
				t.Errorf("AtEdge at x=%v: expected %v, got %v", tt.x, tt.want, got)
			}
		})
	}
}

func TestWaveDropDownAndReverse(t *testing.T) {
	l := testLayout(t)

	invaders := []Invader{NewInvader(0, 0, l), NewInvader(1, 0, l)}
	invaders[1].SetInvisible()

	w := Wave{Heading: HeadingRight, Speed: 40, SpeedUpFactor: 1.18}
	w.DropDownAndReverse(invaders)

	if invaders[0].Y != 80 || invaders[1].Y != 140 {
		t.Errorf("Expected Y 80 and 140, got %v and %v", invaders[0].Y, invaders[1].Y)
	}
	if invaders[1].Visible() {
		t.Error("Drop must not revive invaders")
	}
	if w.Heading != HeadingLeft {
		t.Errorf("Expected Left, got %v", w.Heading)
	}
	if math.Abs(w.Speed-47.2) > 1e-9 {
		t.Errorf("Expected speed 47.2, got %v", w.Speed)
	}

	w.DropDownAndReverse(invaders)
	if w.Heading != HeadingRight {
		t.Errorf("Expected Right after second bump, got %v", w.Heading)
	}
}

func TestInvaderMuzzle(t *testing.T) {
	l := testLayout(t)

	inv := NewInvader(1, 2, l)
	x, y := inv.Muzzle()
	if x != inv.X+25 || y != inv.Y {
		t.Errorf("Expected (%v, %v), got (%v, %v)", inv.X+25, inv.Y, x, y)
	}
}
