package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// PoolCapacity is the number of projectile slots reserved for enemy fire.
const PoolCapacity = config.EnemySlotCapacity

// Direction is the vertical travel direction of a projectile.
type Direction int

const (
	DirectionUp   Direction = iota // Player shots, y decreases
	DirectionDown                  // Invader shots, y increases
)

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Projectile is a reusable bullet slot.
type Projectile struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // World units per second
	Direction     Direction

	active bool
	rect   core.Rect
}

// NewProjectile creates an inactive projectile.
func NewProjectile(width, height, speed float64) Projectile {
	return Projectile{
		Width:  width,
		Height: height,
		Speed:  speed,
	}
}

// Shoot activates the projectile at the firing origin, centred horizontally
// on originX. Returns false without side effects if it is already in flight.
func (p *Projectile) Shoot(originX, originY float64, dir Direction) bool {
	if p.active {
		return false
	}

	p.X = originX - p.Width/2
	p.Y = originY
	p.Direction = dir
	p.active = true
	p.updateRect()
	return true
}

// Advance moves an active projectile along its direction.
func (p *Projectile) Advance(dt time.Duration) {
	if !p.active {
		return
	}

	dist := p.Speed * dt.Seconds()
	if p.Direction == DirectionUp {
		p.Y -= dist
	} else {
		p.Y += dist
	}
	p.updateRect()
}

// Deactivate frees the slot.
func (p *Projectile) Deactivate() {
	p.active = false
}

// Active reports whether the projectile is in flight.
func (p *Projectile) Active() bool {
	return p.active
}

// Rect returns the collision box.
func (p *Projectile) Rect() core.Rect {
	return p.rect
}

// ImpactY returns the y of the leading edge.
func (p *Projectile) ImpactY() float64 {
	if p.Direction == DirectionDown {
		return p.Y + p.Height
	}
	return p.Y
}

func (p *Projectile) updateRect() {
	p.rect = core.RectAt(p.X, p.Y, p.Width, p.Height)
}

// ProjectilePool is a fixed arena of projectiles allocated round-robin over
// the first limit slots. A slot that is still in flight blocks allocation,
// which throttles the fire rate.
type ProjectilePool struct {
	slots [PoolCapacity]Projectile
	limit int
	next  int
}

// NewProjectilePool creates a pool whose first limit slots are usable.
// limit is clamped to [1, PoolCapacity].
func NewProjectilePool(limit int, width, height, speed float64) ProjectilePool {
	pool := ProjectilePool{limit: core.Clamp(limit, 1, PoolCapacity)}
	for i := range pool.slots {
		pool.slots[i] = NewProjectile(width, height, speed)
	}
	return pool
}

// Fire tries to shoot from the slot under the cursor. The cursor only moves
// forward when the shot succeeds.
func (p *ProjectilePool) Fire(originX, originY float64, dir Direction) bool {
	if !p.slots[p.next].Shoot(originX, originY, dir) {
		return false
	}

	p.next++
	if p.next == p.limit {
		p.next = 0
	}
	return true
}

// Advance moves every active projectile.
func (p *ProjectilePool) Advance(dt time.Duration) {
	for i := range p.slots {
		p.slots[i].Advance(dt)
	}
}

// Slot returns the projectile at index i.
func (p *ProjectilePool) Slot(i int) *Projectile {
	return &p.slots[i]
}

// Len returns the pool capacity.
func (p *ProjectilePool) Len() int {
	return len(p.slots)
}

// Limit returns the number of usable slots.
func (p *ProjectilePool) Limit() int {
	return p.limit
}

// Next returns the round-robin cursor.
func (p *ProjectilePool) Next() int {
	return p.next
}

// ActiveCount returns the number of projectiles in flight.
func (p *ProjectilePool) ActiveCount() int {
	count := 0
	for i := range p.slots {
		if p.slots[i].active {
			count++
		}
	}
	return count
}
