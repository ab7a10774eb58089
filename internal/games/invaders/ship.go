package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Movement is the latched horizontal command of the player ship.
type Movement int32

const (
	MovementStopped Movement = iota
	MovementLeft
	MovementRight
)

// String returns the name of the movement.
func (m Movement) String() string {
	switch m {
	case MovementStopped:
		return "Stopped"
	case MovementLeft:
		return "Left"
	case MovementRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// PlayerShip is the player-controlled ship.
type PlayerShip struct {
	X, Y           float64 // Top-left corner
	Length, Height float64
	Speed          float64 // World units per second

	rect core.Rect
}

// NewPlayerShip creates a ship centred at the bottom of the playfield.
func NewPlayerShip(l Layout, speed float64) PlayerShip {
	s := PlayerShip{
		X:      l.Width/2 - l.ShipLength/2,
		Y:      l.Height - l.ShipHeight,
		Length: l.ShipLength,
		Height: l.ShipHeight,
		Speed:  speed,
	}
	s.updateRect()
	return s
}

// Advance moves the ship according to the movement command. The ship is not
// clamped to the playfield.
func (s *PlayerShip) Advance(m Movement, dt time.Duration) {
	dist := s.Speed * dt.Seconds()
	switch m {
	case MovementLeft:
		s.X -= dist
	case MovementRight:
		s.X += dist
	}
	s.updateRect()
}

// Rect returns the collision box.
func (s *PlayerShip) Rect() core.Rect {
	return s.rect
}

func (s *PlayerShip) updateRect() {
	s.rect = core.RectAt(s.X, s.Y, s.Length, s.Height)
}
