package muncher

import (
	"fmt"
	"math/rand"
)

// RoundState is the round controller's lifecycle state.
type RoundState int

const (
	StateReady RoundState = iota
	StatePlaying
	StateWin
	StateGameOver
)

func (s RoundState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateWin:
		return "win"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Tuning collects the gameplay parameters the simulation consumes. The
// config package supplies these from YAML; DefaultTuning mirrors the
// shipped defaults for direct use in tests.
type Tuning struct {
	PlayerSpeed     float64 // units per second
	GhostSpeed      float64
	PowerDurationMs float64
	BlinkIntervalMs float64
	MaxStepMs       float64
	PelletPoints    int
	PowerPoints     int
	GhostPoints     int
	Lives           int
	ChaseDeviation  float64
}

// DefaultTuning returns the standard gameplay parameters.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed:     110.0,
		GhostSpeed:      100.0,
		PowerDurationMs: 7000,
		BlinkIntervalMs: 250,
		MaxStepMs:       50,
		PelletPoints:    10,
		PowerPoints:     50,
		GhostPoints:     200,
		Lives:           3,
		ChaseDeviation:  0.18,
	}
}

// Status is a read-only snapshot of the round for HUD rendering.
type Status struct {
	State      RoundState
	Score      int
	Lives      int
	Remaining  int
	Frightened bool
}

// Sim is the deterministic round controller. It owns the grid, the item
// ledger, the actors and the rules clock. Given the same maze, tuning and
// seeded rng, the same sequence of RequestDirection and Advance calls
// reproduces the same round exactly.
type Sim struct {
	maze   Maze
	tuning Tuning
	rng    *rand.Rand

	grid  *Grid
	items *Items

	player  Actor
	ghosts  []Actor
	pending Direction

	state      RoundState
	score      int
	lives      int
	clockMs    float64
	powerUntil float64
}

// NewSim validates the maze and builds a round in the READY state.
func NewSim(maze Maze, tuning Tuning, rng *rand.Rand) (*Sim, error) {
	grid, items, err := ParseLayout(maze.Layout)
	if err != nil {
		return nil, err
	}
	if grid.IsWall(maze.PlayerSpawn.Col, maze.PlayerSpawn.Row) {
		return nil, MapIntegrityError{Reason: fmt.Sprintf("player spawn (%d, %d) is a wall", maze.PlayerSpawn.Col, maze.PlayerSpawn.Row)}
	}
	if len(maze.GhostSpawns) == 0 {
		return nil, MapIntegrityError{Reason: "maze defines no ghost spawns"}
	}
	for _, gs := range maze.GhostSpawns {
		if grid.IsWall(gs.Cell.Col, gs.Cell.Row) {
			return nil, MapIntegrityError{Reason: fmt.Sprintf("ghost spawn (%d, %d) is a wall", gs.Cell.Col, gs.Cell.Row)}
		}
	}

	s := &Sim{
		maze:   maze,
		tuning: tuning,
		rng:    rng,
		grid:   grid,
		items:  items,
		lives:  tuning.Lives,
		player: NewActor(maze.PlayerSpawn, maze.PlayerDir, tuning.PlayerSpeed),
	}
	for _, gs := range maze.GhostSpawns {
		s.ghosts = append(s.ghosts, NewActor(gs.Cell, gs.Dir, tuning.GhostSpeed))
	}
	return s, nil
}

// Start begins play. Only meaningful from READY.
func (s *Sim) Start() {
	if s.state == StateReady {
		s.state = StatePlaying
	}
}

// ResetRound rebuilds the round from scratch: items restored, score and
// lives reset, actors home, power mode disarmed, state back to READY.
// The rng stream is intentionally not rewound.
func (s *Sim) ResetRound() {
	_, items, err := ParseLayout(s.maze.Layout)
	if err != nil {
		// layout was validated in NewSim
		panic(err)
	}
	s.items = items
	s.score = 0
	s.lives = s.tuning.Lives
	s.clockMs = 0
	s.powerUntil = 0
	s.pending = DirNone
	s.state = StateReady
	s.respawnActors()
}

// RequestDirection records the player's intended direction. It is sampled
// once at the start of the next Advance; the last request before that tick
// wins.
func (s *Sim) RequestDirection(d Direction) {
	s.pending = d
}

// Advance runs one simulation tick of dtMs milliseconds. Oversized steps
// are clamped to MaxStepMs to bound integration error. The clock always
// advances (the power-pellet blink keeps phase across pauses in READY and
// end states), but gameplay only progresses in PLAYING.
func (s *Sim) Advance(dtMs float64) {
	if dtMs <= 0 {
		return
	}
	if dtMs > s.tuning.MaxStepMs {
		dtMs = s.tuning.MaxStepMs
	}
	s.clockMs += dtMs
	if s.state != StatePlaying {
		return
	}
	dt := dtMs / 1000.0

	// Sample player intent once per tick.
	if s.pending != DirNone {
		s.player.Queued = s.pending
		s.pending = DirNone
	}

	s.player.Advance(s.grid, dt, func(a *Actor) {
		a.ApplyQueued(s.grid)
	})

	switch s.items.ConsumeAt(s.player.Tile()) {
	case ItemPellet:
		s.score += s.tuning.PelletPoints
	case ItemPower:
		s.score += s.tuning.PowerPoints
		// Re-arming overwrites the deadline; durations never stack.
		s.powerUntil = s.clockMs + s.tuning.PowerDurationMs
	}

	frightened := s.Frightened()
	playerTile := s.player.Tile()
	for i := range s.ghosts {
		gh := &s.ghosts[i]
		gh.Advance(s.grid, dt, func(a *Actor) {
			a.Dir = NextGhostDir(s.grid, s.rng, a.Tile(), a.Dir, playerTile, frightened, s.tuning.ChaseDeviation)
		})
	}

	s.resolveCollisions(frightened)

	// A life loss this tick may have ended the game; never upgrade
	// GAMEOVER to WIN.
	if s.state == StatePlaying && s.items.Remaining() == 0 {
		s.state = StateWin
	}
}

// resolveCollisions checks ghosts in their fixed order. Frightened ghosts
// are eaten (scored and sent home) and scanning continues; the first
// lethal contact costs exactly one life and stops the scan.
func (s *Sim) resolveCollisions(frightened bool) {
	pt := s.player.Tile()
	for i := range s.ghosts {
		gh := &s.ghosts[i]
		if gh.Tile() != pt {
			continue
		}
		if frightened {
			s.score += s.tuning.GhostPoints
			gh.Respawn()
			continue
		}
		s.loseLife()
		return
	}
}

// loseLife decrements lives; at zero the round ends, otherwise only actor
// positions reset. Score, remaining items and the power deadline persist.
func (s *Sim) loseLife() {
	s.lives--
	if s.lives <= 0 {
		s.state = StateGameOver
		return
	}
	s.pending = DirNone
	s.respawnActors()
}

func (s *Sim) respawnActors() {
	s.player.Respawn()
	for i := range s.ghosts {
		s.ghosts[i].Respawn()
	}
}

// Frightened reports whether power mode is active on the current clock.
func (s *Sim) Frightened() bool {
	return s.clockMs < s.powerUntil
}

// BlinkOn derives the power-pellet blink phase from the clock. Purely
// cosmetic; renderers call it, the rules never do.
func (s *Sim) BlinkOn() bool {
	if s.tuning.BlinkIntervalMs <= 0 {
		return true
	}
	return int(s.clockMs/s.tuning.BlinkIntervalMs)%2 == 0
}

// ForceClear removes every remaining item. Debug hook for reaching the
// win state quickly; the win itself is still detected by the normal
// end-of-tick check.
func (s *Sim) ForceClear() {
	s.items.removeAll()
}

// Status returns the HUD snapshot.
func (s *Sim) Status() Status {
	return Status{
		State:      s.state,
		Score:      s.score,
		Lives:      s.lives,
		Remaining:  s.items.Remaining(),
		Frightened: s.Frightened(),
	}
}

// State returns the round lifecycle state.
func (s *Sim) State() RoundState {
	return s.state
}

// Grid exposes the static maze topology for rendering.
func (s *Sim) Grid() *Grid {
	return s.grid
}

// PelletAt reports a remaining pellet at the tile.
func (s *Sim) PelletAt(c Cell) bool {
	return s.items.PelletAt(c)
}

// PowerAt reports a remaining power pellet at the tile.
func (s *Sim) PowerAt(c Cell) bool {
	return s.items.PowerAt(c)
}

// Player returns a copy of the player actor.
func (s *Sim) Player() Actor {
	return s.player
}

// Ghosts returns copies of the ghost actors in their fixed order.
func (s *Sim) Ghosts() []Actor {
	out := make([]Actor, len(s.ghosts))
	copy(out, s.ghosts)
	return out
}
