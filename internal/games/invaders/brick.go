package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// DefenceBrick is one destructible cell of a shelter.
type DefenceBrick struct {
	Row, Column, Shelter int

	visible bool
	rect    core.Rect
}

// NewDefenceBrick places a brick inside its shelter. Shelters are spaced one
// shelter-width apart starting one shelter-width from the left edge.
func NewDefenceBrick(row, column, shelter int, l Layout) DefenceBrick {
	left := float64(column)*l.BrickWidth + l.ShelterPadding*float64(2*shelter+1)
	top := float64(row)*l.BrickHeight + l.ShelterTop

	return DefenceBrick{
		Row:     row,
		Column:  column,
		Shelter: shelter,
		visible: true,
		rect: core.Rect{
			Top:    top + l.BrickPadding,
			Bottom: top + l.BrickHeight - l.BrickPadding,
			Left:   left + l.BrickPadding,
			Right:  left + l.BrickWidth - l.BrickPadding,
		},
	}
}

// SetInvisible destroys the brick.
func (b *DefenceBrick) SetInvisible() {
	b.visible = false
}

// Visible reports whether the brick is still standing.
func (b *DefenceBrick) Visible() bool {
	return b.visible
}

// Rect returns the collision box.
func (b *DefenceBrick) Rect() core.Rect {
	return b.rect
}
