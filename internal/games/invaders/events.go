package invaders

// Cue identifies a sound effect requested by the simulation.
type Cue int

const (
	CueShoot Cue = iota
	CueInvaderExplode
	CuePlayerExplode
	CueShelterDamage
	CueMenaceA
	CueMenaceB
)

// String returns the name of the cue.
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueInvaderExplode:
		return "invader-explode"
	case CuePlayerExplode:
		return "player-explode"
	case CueShelterDamage:
		return "shelter-damage"
	case CueMenaceA:
		return "menace-a"
	case CueMenaceB:
		return "menace-b"
	default:
		return "unknown"
	}
}

// OutcomeKind is the way a round ended.
type OutcomeKind int

const (
	OutcomeRoundWon OutcomeKind = iota
	OutcomeGameOver
)

// String returns the name of the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeRoundWon:
		return "round-won"
	case OutcomeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// LossCause explains a game over.
type LossCause int

const (
	CauseNone     LossCause = iota
	CauseShotDown           // Lives exhausted by invader fire
	CauseInvaded            // The formation reached the shelters
)

// String returns the name of the cause.
func (c LossCause) String() string {
	switch c {
	case CauseShotDown:
		return "shot down"
	case CauseInvaded:
		return "invaded"
	default:
		return ""
	}
}

// Outcome records the end of a round.
type Outcome struct {
	Kind  OutcomeKind
	Cause LossCause
	Score int // Score at the moment the round ended
	Round int // Round number that ended, starting at 1
}

// Queue limits. Front ends drain every frame; the limits only matter when
// nobody listens.
const (
	maxPendingCues     = 64
	maxPendingOutcomes = 16
)

// eventQueue buffers events between drains, dropping the oldest on overflow.
type eventQueue[T any] struct {
	items []T
	limit int
}

func newEventQueue[T any](limit int) eventQueue[T] {
	return eventQueue[T]{items: make([]T, 0, limit), limit: limit}
}

func (q *eventQueue[T]) push(item T) {
	if len(q.items) == q.limit {
		copy(q.items, q.items[1:])
		q.items = q.items[:len(q.items)-1]
	}
	q.items = append(q.items, item)
}

// drain returns the buffered events in emission order and empties the queue.
func (q *eventQueue[T]) drain() []T {
	if len(q.items) == 0 {
		return nil
	}
	out := make([]T, len(q.items))
	copy(out, q.items)
	q.items = q.items[:0]
	return out
}
