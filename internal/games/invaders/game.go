package invaders

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// World units covered by one terminal cell. Cells are roughly twice as tall
// as they are wide, so this keeps the playfield proportions square.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// Visual characters for rendering
const (
	PlayerShotChar = '|'
	EnemyShotChar  = '!'
	BrickChar      = '█'
	ShipBaseChar   = '▀'
	ShipTurretChar = '▲'
)

const (
	hudRows         = 1  // Score line at the top
	cueDisplayTicks = 20 // How long a sound cue stays in the HUD
	minScreenW      = 40
	minScreenH      = 16
	maxAspect       = 1.0 // Widest playfield, as width over height
)

// invaderColors cycles through screen rows so each formation row has its own color.
var invaderColors = []core.Color{
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorRed,
}

// Game adapts the Engine to the registry.Game interface: it converts actions
// into engine commands, runs the engine at the tick rate and draws the render
// state into a character screen.
type Game struct {
	engine  *Engine
	runtime core.RuntimeConfig
	cfg     config.InvadersConfig
	loadErr error

	cue         Cue
	cueTicks    int
	lastOutcome *Outcome

	screenTooSmall bool
	offsetX        int // Screen column where the playfield starts
}

// New creates a new invaders game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset loads the configuration and builds a fresh engine sized to the screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	// A broken config falls back to defaults; the platform reports loadErr.
	g.cfg, g.loadErr = config.LoadInvaders(runtime.ConfigPath)

	g.engine = nil
	g.cue, g.cueTicks = 0, 0
	g.lastOutcome = nil

	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	if g.screenTooSmall {
		return
	}

	width, height := worldSize(runtime.ScreenW, runtime.ScreenH)
	g.offsetX = (runtime.ScreenW - int(width/CellWidth)) / 2
	engine, err := NewEngine(g.cfg, width, height, NewSimpleRNG(runtime.Seed))
	if err != nil {
		g.loadErr = err
		g.screenTooSmall = true
		return
	}
	g.engine = engine
}

// worldSize returns the playfield size in world units for a terminal of
// cols×rows cells. The width never exceeds the height; wider terminals get a
// centred playfield.
func worldSize(cols, rows int) (float64, float64) {
	height := float64(rows-hudRows) * CellHeight
	width := math.Min(float64(cols)*CellWidth, height*maxAspect)
	return math.Floor(width/CellWidth) * CellWidth, height
}

// LoadError returns the error hit while loading the configuration during the
// last Reset, or nil.
func (g *Game) LoadError() error {
	return g.loadErr
}

// Engine returns the simulation, or nil if the screen is too small.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step applies the frame's input and advances the engine by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionLeft):
		g.engine.SetMovement(MovementLeft)
	case in.Has(core.ActionRight):
		g.engine.SetMovement(MovementRight)
	case in.Has(core.ActionStop):
		g.engine.SetMovement(MovementStopped)
	}

	if in.Has(core.ActionFire) {
		g.engine.RequestPlayerShot(g.engine.ShipMuzzle())
	}

	g.engine.Advance(time.Second / time.Duration(g.runtime.TickRate))

	if g.cueTicks > 0 {
		g.cueTicks--
	}
	for _, cue := range g.engine.DrainSounds() {
		g.cue = cue
		g.cueTicks = cueDisplayTicks
	}

	var events []string
	for _, o := range g.engine.DrainOutcomes() {
		outcome := o
		g.lastOutcome = &outcome
		events = append(events, describeOutcome(outcome))
	}

	return core.StepResult{State: g.State(), Events: events}
}

// describeOutcome returns a one-line summary of a finished round.
func describeOutcome(o Outcome) string {
	if o.Kind == OutcomeRoundWon {
		return fmt.Sprintf("wave %d cleared with %d points", o.Round, o.Score)
	}
	return fmt.Sprintf("game over in wave %d (%s) with %d points", o.Round, o.Cause, o.Score)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.engine.Score(),
		Lives:  g.engine.Lives(),
		Paused: g.engine.State() != StateRunning,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall || g.engine == nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	rs := g.engine.RenderState()

	g.renderHUD(dst, rs)
	g.renderWalls(dst, rs)
	g.renderBricks(dst, rs)
	g.renderInvaders(dst, rs)
	g.renderShip(dst, rs)
	g.renderProjectiles(dst, rs)
	g.renderOverlay(dst, rs)
}

// renderHUD draws score, lives, wave and the last sound cue.
func (g *Game) renderHUD(dst *core.Screen, rs RenderState) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", rs.Score), core.ColorWhite)

	lives := fmt.Sprintf("Lives: %s", strings.Repeat("♥", core.Max(rs.Lives, 0)))
	dst.DrawTextColored((dst.Width()-len([]rune(lives)))/2, 0, lives, core.ColorBrightRed)

	wave := fmt.Sprintf("Wave %d", rs.Round)
	dst.DrawTextColored(dst.Width()-len(wave)-1, 0, wave, core.ColorWhite)

	if g.cueTicks > 0 {
		cue := "♪ " + g.cue.String()
		dst.DrawTextColored(dst.Width()*3/4-len(cue)/2, 0, cue, core.ColorOrange)
	}
}

// renderWalls marks the sides of the playfield when the terminal is wider.
func (g *Game) renderWalls(dst *core.Screen, rs RenderState) {
	left := g.offsetX - 1
	right := g.offsetX + int(rs.Width/CellWidth)
	if left < 0 || right >= dst.Width() {
		return
	}
	for y := hudRows; y < dst.Height(); y++ {
		dst.SetColored(left, y, '│', core.ColorGray)
		dst.SetColored(right, y, '│', core.ColorGray)
	}
}

func (g *Game) renderBricks(dst *core.Screen, rs RenderState) {
	for _, r := range rs.Bricks {
		cx, cy := r.Center()
		dst.SetColored(g.cellX(cx), cellY(cy), BrickChar, core.ColorGreen)
	}
}

func (g *Game) renderInvaders(dst *core.Screen, rs RenderState) {
	for _, r := range rs.Invaders {
		_, cy := r.Center()
		row := cellY(cy)
		x0, x1 := g.cellSpan(r)
		color := invaderColors[row%len(invaderColors)]

		sprite := invaderSprite(x1-x0+1, rs.MenaceFrame)
		for i, ch := range sprite {
			dst.SetColored(x0+i, row, ch, color)
		}
	}
}

// invaderSprite returns a sprite of the given cell width for one of the two
// animation frames.
func invaderSprite(width int, frame bool) []rune {
	if width <= 0 {
		return nil
	}
	if width == 1 {
		if frame {
			return []rune{'M'}
		}
		return []rune{'W'}
	}

	left, right := '/', '\\'
	if frame {
		left, right = '\\', '/'
	}
	sprite := make([]rune, width)
	sprite[0], sprite[width-1] = left, right
	for i := 1; i < width-1; i++ {
		sprite[i] = 'o'
	}
	return sprite
}

func (g *Game) renderShip(dst *core.Screen, rs RenderState) {
	_, cy := rs.Ship.Center()
	row := core.Min(cellY(cy), dst.Height()-1)
	x0, x1 := g.cellSpan(rs.Ship)

	for x := x0; x <= x1; x++ {
		dst.SetColored(x, row, ShipBaseChar, core.ColorBrightGreen)
	}
	if row-1 > 0 {
		dst.SetColored((x0+x1)/2, row-1, ShipTurretChar, core.ColorBrightGreen)
	}
}

func (g *Game) renderProjectiles(dst *core.Screen, rs RenderState) {
	field := core.RectAt(0, 0, rs.Width, rs.Height)
	for _, p := range rs.Projectiles {
		cx, cy := p.Rect.Center()
		if !field.Contains(cx, cy) {
			continue
		}
		x, y := g.cellX(cx), cellY(cy)
		if p.Player {
			dst.SetColored(x, y, PlayerShotChar, core.ColorYellow)
		} else {
			dst.SetColored(x, y, EnemyShotChar, core.ColorRed)
		}
	}
}

// renderOverlay draws the start and round-end messages while paused.
func (g *Game) renderOverlay(dst *core.Screen, rs RenderState) {
	if rs.State == StateRunning {
		return
	}

	hint := "Press SPACE or ←/→ to start"
	switch {
	case g.lastOutcome == nil:
		g.drawCenteredBox(dst, "SPACE INVADERS", hint)
	case g.lastOutcome.Kind == OutcomeRoundWon:
		g.drawCenteredBox(dst, "WAVE CLEARED", fmt.Sprintf("Score: %d  |  %s", g.lastOutcome.Score, hint))
	default:
		title := "GAME OVER"
		if g.lastOutcome.Cause == CauseInvaded {
			title = "GAME OVER - INVADED"
		}
		g.drawCenteredBox(dst, title, fmt.Sprintf("Score: %d  |  %s", g.lastOutcome.Score, hint))
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := core.Min(core.Max(titleLen, subtitleLen)+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillArea(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawHLine(boxX+1, boxY+2, boxW-2, '─')

	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorYellow)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}

// cellX maps a world x coordinate to a screen column.
func (g *Game) cellX(x float64) int {
	return g.offsetX + int(math.Floor(x/CellWidth))
}

// cellY maps a world y coordinate to a screen row below the HUD.
func cellY(y float64) int {
	return hudRows + int(math.Floor(y/CellHeight))
}

// cellSpan returns the first and last screen columns covered by r.
func (g *Game) cellSpan(r core.Rect) (int, int) {
	x0 := g.cellX(r.Left)
	x1 := g.offsetX + int(math.Ceil(r.Right/CellWidth)) - 1
	if x1 < x0 {
		x1 = x0
	}
	return x0, x1
}

// Register the game with the registry
func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}
