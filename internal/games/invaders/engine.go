package invaders

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Formation and shelter dimensions. The arenas reserve twice the space used.
const (
	InvaderColumns  = 6
	InvaderRows     = 5
	InvaderCapacity = 60

	Shelters       = 4
	ShelterColumns = 10
	ShelterRows    = 5
	BrickCapacity  = 400

	PointsPerInvader = 10
)

// SimState is the engine state machine.
type SimState int

const (
	StatePaused          SimState = iota // Waiting for the first command
	StateRunning                         // Advancing every tick
	StateRoundTransition                 // Rebuilding the level after a win or loss
)

// String returns the name of the state.
func (s SimState) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StateRunning:
		return "running"
	case StateRoundTransition:
		return "round-transition"
	default:
		return "unknown"
	}
}

// SimulationState is the aggregate state owned by the engine.
type SimulationState struct {
	Score          int
	Lives          int
	Round          int
	Ticks          uint64
	MenaceInterval time.Duration

	menaceElapsed time.Duration
	menaceAlt     bool // Next menace cue is B
}

// Engine owns every entity of a game and advances them tick by tick.
//
// Advance, RequestPlayerShot and the read accessors serialise on a mutex.
// The movement command is latched in an atomic so input handlers running on
// another goroutine never wait for a tick to finish.
type Engine struct {
	mu       sync.Mutex
	movement atomic.Int32

	cfg    config.InvadersConfig
	layout Layout
	src    Source
	aim    AimOdds

	state SimState
	sim   SimulationState

	ship         PlayerShip
	bullet       Projectile
	enemyBullets ProjectilePool

	invaders    [InvaderCapacity]Invader
	numInvaders int

	bricks    [BrickCapacity]DefenceBrick
	numBricks int

	wave Wave

	sounds   eventQueue[Cue]
	outcomes eventQueue[Outcome]
}

// NewEngine creates an engine for a width×height playfield and prepares the
// first level. The engine starts paused.
func NewEngine(cfg config.InvadersConfig, width, height float64, src Source) (*Engine, error) {
	layout, err := NewLayout(width, height)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invaders: %w", err)
	}
	if src == nil {
		src = NewSimpleRNG(1)
	}

	e := &Engine{
		cfg:    cfg,
		layout: layout,
		src:    src,
		aim: AimOdds{
			Near: cfg.Invaders.NearOdds,
			Far:  cfg.Invaders.FarOdds,
		},
		sounds:   newEventQueue[Cue](maxPendingCues),
		outcomes: newEventQueue[Outcome](maxPendingOutcomes),
	}

	e.sim.Lives = cfg.Gameplay.StartingLives
	e.sim.Round = 1
	e.prepareLevel()
	e.state = StatePaused

	return e, nil
}

// prepareLevel rebuilds every entity and resets the menace cadence.
func (e *Engine) prepareLevel() {
	l := e.layout

	e.ship = NewPlayerShip(l, e.cfg.Ship.Speed)
	e.movement.Store(int32(MovementStopped))

	e.bullet = NewProjectile(l.BulletWidth, l.BulletHeight, e.cfg.Bullets.Speed)
	e.enemyBullets = NewProjectilePool(e.cfg.Bullets.EnemySlots, l.BulletWidth, l.BulletHeight, e.cfg.Bullets.Speed)

	e.numInvaders = 0
	for column := range InvaderColumns {
		for row := range InvaderRows {
			e.invaders[e.numInvaders] = NewInvader(row, column, l)
			e.numInvaders++
		}
	}

	e.numBricks = 0
	for shelter := range Shelters {
		for column := range ShelterColumns {
			for row := range ShelterRows {
				e.bricks[e.numBricks] = NewDefenceBrick(row, column, shelter, l)
				e.numBricks++
			}
		}
	}

	e.wave = Wave{
		Heading:       HeadingRight,
		Speed:         e.cfg.Invaders.Speed,
		SpeedUpFactor: e.cfg.Invaders.SpeedUpFactor,
	}

	e.sim.MenaceInterval = e.cfg.Menace.Interval()
	e.sim.menaceElapsed = 0
}

// SetMovement latches the ship movement command. Any command other than
// stop starts a paused game.
func (e *Engine) SetMovement(m Movement) {
	e.movement.Store(int32(m))
	if m != MovementStopped {
		e.mu.Lock()
		e.wake()
		e.mu.Unlock()
	}
}

// Movement returns the latched movement command.
func (e *Engine) Movement() Movement {
	return Movement(e.movement.Load())
}

// RequestPlayerShot fires the player projectile from the given origin.
// Returns false when the previous shot is still in flight. A successful shot
// queues CueShoot. Starts a paused game either way.
func (e *Engine) RequestPlayerShot(originX, originY float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.wake()
	if !e.bullet.Shoot(originX, originY, DirectionUp) {
		return false
	}
	e.sounds.push(CueShoot)
	return true
}

// ShipMuzzle returns the firing origin of the player: the middle of the ship
// at the bottom edge of the playfield.
func (e *Engine) ShipMuzzle() (float64, float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.ship.X + e.ship.Length/2, e.layout.Height
}

// wake moves a paused engine to running. Caller holds mu.
func (e *Engine) wake() {
	if e.state == StatePaused {
		e.state = StateRunning
	}
}

// Advance runs one simulation step of length dt. It does nothing while the
// engine is paused.
func (e *Engine) Advance(dt time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateRunning || dt < 0 {
		return
	}

	e.sim.Ticks++
	e.step(dt)

	// A round transition ends the tick paused; menace only plays while running.
	if e.state == StateRunning {
		e.updateMenace(dt)
	}
}

// step advances every entity and resolves collisions in a fixed order.
func (e *Engine) step(dt time.Duration) {
	e.ship.Advance(Movement(e.movement.Load()), dt)

	bumped := e.advanceInvaders(dt)

	e.enemyBullets.Advance(dt)

	if bumped {
		e.wave.DropDownAndReverse(e.invaders[:e.numInvaders])
		e.sim.MenaceInterval -= e.cfg.Menace.Step()

		if e.invadersLanded() {
			e.endRound(OutcomeGameOver, CauseInvaded)
			return
		}
	}

	e.bullet.Advance(dt)

	e.cleanupBoundaries()

	if e.resolvePlayerShotInvaders() {
		return
	}
	e.resolveEnemyShotsBricks()
	e.resolvePlayerShotBricks()
	e.resolveEnemyShotsShip()
}

// advanceInvaders moves every visible invader, lets it take aim and reports
// whether any of them crossed a side of the playfield.
func (e *Engine) advanceInvaders(dt time.Duration) bool {
	bumped := false

	for i := range e.numInvaders {
		inv := &e.invaders[i]
		if !inv.Visible() {
			continue
		}

		inv.Advance(e.wave, dt)

		if inv.TakeAim(e.src, e.aim, e.ship.X, e.ship.Length) {
			x, y := inv.Muzzle()
			// A busy slot swallows the shot
			e.enemyBullets.Fire(x, y, DirectionDown)
		}

		if inv.AtEdge(e.layout.Width) {
			bumped = true
		}
	}

	return bumped
}

// invadersLanded reports whether any invader, destroyed or not, reached the
// shelter band.
func (e *Engine) invadersLanded() bool {
	for i := range e.numInvaders {
		if e.invaders[i].Rect().Bottom > e.layout.ShelterTop {
			return true
		}
	}
	return false
}

// cleanupBoundaries frees projectiles that left the playfield.
func (e *Engine) cleanupBoundaries() {
	if e.bullet.Active() && e.bullet.ImpactY() < 0 {
		e.bullet.Deactivate()
	}

	for i := range e.enemyBullets.Len() {
		b := e.enemyBullets.Slot(i)
		if b.Active() && b.ImpactY() > e.layout.Height {
			b.Deactivate()
		}
	}
}

// resolvePlayerShotInvaders destroys the first invader hit by the player
// projectile. Returns true if the hit cleared the wave and ended the round.
func (e *Engine) resolvePlayerShotInvaders() bool {
	if !e.bullet.Active() {
		return false
	}

	for i := range e.numInvaders {
		inv := &e.invaders[i]
		if !inv.Visible() || !e.bullet.Rect().Intersects(inv.Rect()) {
			continue
		}

		inv.SetInvisible()
		e.bullet.Deactivate()
		e.sounds.push(CueInvaderExplode)
		e.sim.Score += PointsPerInvader

		if e.sim.Score == PointsPerInvader*e.numInvaders {
			e.endRound(OutcomeRoundWon, CauseNone)
			return true
		}
		return false
	}

	return false
}

// resolveEnemyShotsBricks lets every enemy projectile destroy at most one brick.
func (e *Engine) resolveEnemyShotsBricks() {
	for i := range e.enemyBullets.Len() {
		b := e.enemyBullets.Slot(i)
		if b.Active() {
			e.hitBrick(b)
		}
	}
}

// resolvePlayerShotBricks lets the player projectile destroy at most one brick.
func (e *Engine) resolvePlayerShotBricks() {
	if e.bullet.Active() {
		e.hitBrick(&e.bullet)
	}
}

// hitBrick destroys the first visible brick overlapping p, if any.
func (e *Engine) hitBrick(p *Projectile) {
	for j := range e.numBricks {
		brick := &e.bricks[j]
		if !brick.Visible() || !p.Rect().Intersects(brick.Rect()) {
			continue
		}

		p.Deactivate()
		brick.SetInvisible()
		e.sounds.push(CueShelterDamage)
		return
	}
}

// resolveEnemyShotsShip costs a life for every enemy projectile touching the ship.
func (e *Engine) resolveEnemyShotsShip() {
	for i := range e.enemyBullets.Len() {
		b := e.enemyBullets.Slot(i)
		if !b.Active() || !e.ship.Rect().Intersects(b.Rect()) {
			continue
		}

		b.Deactivate()
		e.sim.Lives--
		e.sounds.push(CuePlayerExplode)

		if e.sim.Lives == 0 {
			e.endRound(OutcomeGameOver, CauseShotDown)
			return
		}
	}
}

// updateMenace plays the alternating threat cue whenever the interval elapses.
// The interval has no floor: once it reaches zero the cue plays every tick.
func (e *Engine) updateMenace(dt time.Duration) {
	e.sim.menaceElapsed += dt
	if e.sim.menaceElapsed < e.sim.MenaceInterval {
		return
	}

	if e.sim.menaceAlt {
		e.sounds.push(CueMenaceB)
	} else {
		e.sounds.push(CueMenaceA)
	}
	e.sim.menaceElapsed = 0
	e.sim.menaceAlt = !e.sim.menaceAlt
}

// endRound records the outcome, resets score and lives, rebuilds the level
// and pauses until the next command.
func (e *Engine) endRound(kind OutcomeKind, cause LossCause) {
	e.state = StateRoundTransition

	e.outcomes.push(Outcome{
		Kind:  kind,
		Cause: cause,
		Score: e.sim.Score,
		Round: e.sim.Round,
	})

	if kind == OutcomeRoundWon {
		e.sim.Round++
	} else {
		e.sim.Round = 1
	}
	e.sim.Score = 0
	e.sim.Lives = e.cfg.Gameplay.StartingLives
	e.prepareLevel()

	e.state = StatePaused
}

// DrainSounds returns the cues queued since the previous call.
func (e *Engine) DrainSounds() []Cue {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.sounds.drain()
}

// DrainOutcomes returns the round outcomes queued since the previous call.
func (e *Engine) DrainOutcomes() []Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.outcomes.drain()
}

// State returns the state machine position.
func (e *Engine) State() SimState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// Score returns the current score.
func (e *Engine) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.sim.Score
}

// Lives returns the remaining lives.
func (e *Engine) Lives() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.sim.Lives
}

// Layout returns the playfield geometry.
func (e *Engine) Layout() Layout {
	return e.layout
}

// ProjectileView is a projectile as seen by a renderer.
type ProjectileView struct {
	Rect   core.Rect
	Player bool
}

// RenderState is a read-only copy of everything a renderer needs.
type RenderState struct {
	Width, Height float64

	Ship        core.Rect
	Invaders    []core.Rect
	Bricks      []core.Rect
	Projectiles []ProjectileView

	Score int
	Lives int
	Round int
	State SimState

	// MenaceFrame flips with every menace cue; renderers use it to animate
	// the invaders in step with the sound.
	MenaceFrame bool
}

// RenderState returns a snapshot of the visible entities.
func (e *Engine) RenderState() RenderState {
	e.mu.Lock()
	defer e.mu.Unlock()

	rs := RenderState{
		Width:       e.layout.Width,
		Height:      e.layout.Height,
		Ship:        e.ship.Rect(),
		Invaders:    make([]core.Rect, 0, e.numInvaders),
		Bricks:      make([]core.Rect, 0, e.numBricks),
		Score:       e.sim.Score,
		Lives:       e.sim.Lives,
		Round:       e.sim.Round,
		State:       e.state,
		MenaceFrame: e.sim.menaceAlt,
	}

	for i := range e.numInvaders {
		if e.invaders[i].Visible() {
			rs.Invaders = append(rs.Invaders, e.invaders[i].Rect())
		}
	}
	for i := range e.numBricks {
		if e.bricks[i].Visible() {
			rs.Bricks = append(rs.Bricks, e.bricks[i].Rect())
		}
	}

	if e.bullet.Active() {
		rs.Projectiles = append(rs.Projectiles, ProjectileView{Rect: e.bullet.Rect(), Player: true})
	}
	for i := range e.enemyBullets.Len() {
		if b := e.enemyBullets.Slot(i); b.Active() {
			rs.Projectiles = append(rs.Projectiles, ProjectileView{Rect: b.Rect()})
		}
	}

	return rs
}
