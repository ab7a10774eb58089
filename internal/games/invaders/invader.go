package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Heading is the shared horizontal direction of the invader formation.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingLeft
)

// String returns the name of the heading.
func (h Heading) String() string {
	if h == HeadingLeft {
		return "Left"
	}
	return "Right"
}

// Wave holds the parameters shared by every invader of a formation.
type Wave struct {
	Heading       Heading
	Speed         float64 // World units per second
	SpeedUpFactor float64 // Applied to Speed on every bump
}

// DropDownAndReverse moves every invader down one step, flips the heading
// and speeds the formation up. Invisible invaders are dropped as well.
func (w *Wave) DropDownAndReverse(invaders []Invader) {
	for i := range invaders {
		invaders[i].dropDown()
	}

	if w.Heading == HeadingLeft {
		w.Heading = HeadingRight
	} else {
		w.Heading = HeadingLeft
	}
	w.Speed *= w.SpeedUpFactor
}

// AimOdds are the 1-in-N firing chances of an invader.
type AimOdds struct {
	Near int // Used while the ship is under the invader
	Far  int // Used every tick regardless of position
}

// Invader is a single enemy of the formation.
type Invader struct {
	Row, Column    int
	X, Y           float64 // Top-left corner
	Length, Height float64

	visible bool
	rect    core.Rect
}

// NewInvader places an invader at its grid position.
func NewInvader(row, column int, l Layout) Invader {
	inv := Invader{
		Row:     row,
		Column:  column,
		X:       float64(column) * (l.InvaderLength + l.InvaderPadding),
		Y:       float64(row) * (l.InvaderLength + l.InvaderPadding/4),
		Length:  l.InvaderLength,
		Height:  l.InvaderHeight,
		visible: true,
	}
	inv.updateRect()
	return inv
}

// Advance moves the invader horizontally along the wave heading.
func (inv *Invader) Advance(w Wave, dt time.Duration) {
	dist := w.Speed * dt.Seconds()
	if w.Heading == HeadingLeft {
		inv.X -= dist
	} else {
		inv.X += dist
	}
	inv.updateRect()
}

// TakeAim decides whether the invader wants to shoot this tick. An invader
// above the ship gets an extra, much better, chance.
func (inv *Invader) TakeAim(src Source, odds AimOdds, shipX, shipLength float64) bool {
	shipRight := shipX + shipLength
	above := (shipRight > inv.X && shipRight < inv.X+inv.Length) ||
		(shipX > inv.X && shipX < inv.X+inv.Length)

	if above && src.Intn(odds.Near) == 0 {
		return true
	}
	return src.Intn(odds.Far) == 0
}

// AtEdge reports whether the invader has crossed either side of the playfield.
func (inv *Invader) AtEdge(width float64) bool {
	return inv.X > width-inv.Length || inv.X < 0
}

// Muzzle returns the firing origin: the middle of the invader's top edge.
func (inv *Invader) Muzzle() (float64, float64) {
	return inv.X + inv.Length/2, inv.Y
}

// SetInvisible destroys the invader. It stays in the formation arena.
func (inv *Invader) SetInvisible() {
	inv.visible = false
}

// Visible reports whether the invader is alive.
func (inv *Invader) Visible() bool {
	return inv.visible
}

// Rect returns the collision box.
func (inv *Invader) Rect() core.Rect {
	return inv.rect
}

func (inv *Invader) dropDown() {
	inv.Y += inv.Height
	inv.updateRect()
}

func (inv *Invader) updateRect() {
	inv.rect = core.RectAt(inv.X, inv.Y, inv.Length, inv.Height)
}
