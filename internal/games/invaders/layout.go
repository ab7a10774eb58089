package invaders

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrInvalidScreen is returned when the playfield dimensions are not positive.
var ErrInvalidScreen = errors.New("invaders: invalid screen size")

// Layout holds every size derived from the playfield dimensions.
// All values are world units; y grows downward.
type Layout struct {
	Width, Height float64

	ShipLength, ShipHeight float64

	InvaderLength, InvaderHeight float64
	InvaderPadding               float64

	BulletWidth, BulletHeight float64

	BrickWidth, BrickHeight float64
	BrickPadding            float64
	ShelterPadding          float64
	ShelterTop              float64 // Top of the shelter band, also the landing line
}

// NewLayout derives entity sizes from the playfield size.
func NewLayout(width, height float64) (Layout, error) {
	// Written as negations so NaN is rejected too.
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return Layout{}, fmt.Errorf("%w: %vx%v", ErrInvalidScreen, width, height)
	}

	l := Layout{
		Width:  width,
		Height: height,

		ShipLength: width / 10,
		ShipHeight: height / 10,

		InvaderLength:  width / 20,
		InvaderHeight:  height / 20,
		InvaderPadding: width / 25,

		BulletWidth:  1,
		BulletHeight: height / 20,

		BrickWidth:     width / 90,
		BrickHeight:    height / 40,
		ShelterPadding: width / 9,
		ShelterTop:     height - height/8*2,
	}

	// One unit of gap between bricks, unless the bricks are too small for it
	l.BrickPadding = core.ClampF(math.Min(l.BrickWidth, l.BrickHeight)/4, 0, 1)

	return l, nil
}
