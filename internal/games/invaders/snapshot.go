package invaders

import "math"

// Snapshot contains the complete engine state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64
	State    int
	Score    int
	Lives    int
	Round    int
	Movement int

	ShipX float64

	WaveHeading int
	WaveSpeed   float64

	MenaceIntervalMS int64
	MenaceElapsedMS  int64
	MenaceAlt        bool

	NextEnemySlot int

	// Visibility flags in arena order
	InvaderVisible []bool
	BrickVisible   []bool

	// Invader positions (each invader is 2 floats: X, Y)
	InvaderData []float64

	// Player projectile (X, Y) when active
	PlayerShotActive bool
	PlayerShotX      float64
	PlayerShotY      float64

	// Active enemy projectiles (each is 3 floats: slot, X, Y)
	EnemyShotData []float64

	// RNG state when the engine runs on a SimpleRNG, 0 otherwise
	RNGState uint64
}

// Snapshot returns the current engine state as a Snapshot.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot{
		Tick:     e.sim.Ticks,
		State:    int(e.state),
		Score:    e.sim.Score,
		Lives:    e.sim.Lives,
		Round:    e.sim.Round,
		Movement: int(e.movement.Load()),

		ShipX: e.ship.X,

		WaveHeading: int(e.wave.Heading),
		WaveSpeed:   e.wave.Speed,

		MenaceIntervalMS: e.sim.MenaceInterval.Milliseconds(),
		MenaceElapsedMS:  e.sim.menaceElapsed.Milliseconds(),
		MenaceAlt:        e.sim.menaceAlt,

		NextEnemySlot: e.enemyBullets.Next(),

		InvaderVisible: make([]bool, e.numInvaders),
		BrickVisible:   make([]bool, e.numBricks),
		InvaderData:    make([]float64, 0, e.numInvaders*2),

		PlayerShotActive: e.bullet.Active(),
	}

	for i := range e.numInvaders {
		snap.InvaderVisible[i] = e.invaders[i].Visible()
		snap.InvaderData = append(snap.InvaderData, e.invaders[i].X, e.invaders[i].Y)
	}
	for i := range e.numBricks {
		snap.BrickVisible[i] = e.bricks[i].Visible()
	}

	if e.bullet.Active() {
		snap.PlayerShotX = e.bullet.X
		snap.PlayerShotY = e.bullet.Y
	}
	for i := range e.enemyBullets.Len() {
		if b := e.enemyBullets.Slot(i); b.Active() {
			snap.EnemyShotData = append(snap.EnemyShotData, float64(i), b.X, b.Y)
		}
	}

	if rng, ok := e.src.(*SimpleRNG); ok {
		snap.RNGState = rng.State()
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Round)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Movement)    //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.ShipX)
	h = h*31 + uint64(snap.WaveHeading) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.WaveSpeed)
	h = h*31 + uint64(snap.MenaceIntervalMS) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MenaceElapsedMS)  //#nosec G115 -- hash computation
	h = h*31 + boolBits(snap.MenaceAlt)
	h = h*31 + uint64(snap.NextEnemySlot) //#nosec G115 -- hash computation

	for _, v := range snap.InvaderVisible {
		h = h*31 + boolBits(v)
	}
	for _, v := range snap.BrickVisible {
		h = h*31 + boolBits(v)
	}
	for _, v := range snap.InvaderData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + boolBits(snap.PlayerShotActive)
	h = h*31 + math.Float64bits(snap.PlayerShotX)
	h = h*31 + math.Float64bits(snap.PlayerShotY)

	for _, v := range snap.EnemyShotData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + snap.RNGState

	return h
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
