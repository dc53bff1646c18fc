package muncher

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/kdanilov/maze-muncher/internal/core"
)

// tickMs is the nominal 60 FPS step used throughout the sim tests. The
// default speeds are tuned so a single tick's travel exceeds the center
// window without skipping it.
const tickMs = 1000.0 / 60.0

func deterministicTuning() Tuning {
	tn := DefaultTuning()
	tn.ChaseDeviation = 0
	return tn
}

func newTestSim(t *testing.T, maze Maze, tn Tuning, seed int64) *Sim {
	t.Helper()
	s, err := NewSim(maze, tn, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	return s
}

func advanceTicks(s *Sim, n int) {
	for i := 0; i < n; i++ {
		s.Advance(tickMs)
	}
}

func advanceToClock(s *Sim, clockMs float64) {
	for s.clockMs < clockMs {
		s.Advance(tickMs)
	}
}

// chaseMaze pins the player in a corridor with one ghost marching toward
// it. The pellets on the far side of the wall keep the round from ending.
func chaseMaze() Maze {
	return Maze{
		Name: "chase",
		Layout: []string{
			"#########",
			"#...#   #",
			"#########",
			"#########",
			"#########",
		},
		PlayerSpawn: Cell{Col: 5, Row: 1},
		PlayerDir:   DirNone,
		GhostSpawns: []GhostSpawn{
			{Cell: Cell{Col: 7, Row: 1}, Dir: DirLeft},
		},
	}
}

// pincerMaze puts the player between two ghosts at equal distance, so
// both reach the player's tile on the same tick.
func pincerMaze() Maze {
	return Maze{
		Name: "pincer",
		Layout: []string{
			"#########",
			"#       #",
			"####.####",
			"#########",
			"#########",
		},
		PlayerSpawn: Cell{Col: 4, Row: 1},
		PlayerDir:   DirNone,
		GhostSpawns: []GhostSpawn{
			{Cell: Cell{Col: 2, Row: 1}, Dir: DirRight},
			{Cell: Cell{Col: 6, Row: 1}, Dir: DirLeft},
		},
	}
}

// junctionMaze has a single side passage; the lone pellet sits inside it.
func junctionMaze() Maze {
	return Maze{
		Name: "junction",
		Layout: []string{
			"#######",
			"#     #",
			"###.###",
			"#######",
			"#######",
		},
		PlayerSpawn: Cell{Col: 1, Row: 1},
		PlayerDir:   DirRight,
		GhostSpawns: []GhostSpawn{
			{Cell: Cell{Col: 5, Row: 1}, Dir: DirNone},
		},
	}
}

// powerMaze lines up two power pellets and a final pellet in front of the
// player; the ghost idles in a sealed pocket.
func powerMaze() Maze {
	return Maze{
		Name: "power",
		Layout: []string{
			"########",
			"# oo.  #",
			"########",
			"#      #",
			"########",
		},
		PlayerSpawn: Cell{Col: 1, Row: 1},
		PlayerDir:   DirRight,
		GhostSpawns: []GhostSpawn{
			{Cell: Cell{Col: 3, Row: 3}, Dir: DirNone},
		},
	}
}

func TestNewSimValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	base := chaseMaze()

	bad := base
	bad.PlayerSpawn = Cell{Col: 0, Row: 0}
	if _, err := NewSim(bad, DefaultTuning(), rng); err == nil {
		t.Error("expected error for player spawn on a wall")
	}

	bad = base
	bad.GhostSpawns = nil
	if _, err := NewSim(bad, DefaultTuning(), rng); err == nil {
		t.Error("expected error for a maze without ghost spawns")
	}

	bad = base
	bad.GhostSpawns = []GhostSpawn{{Cell: Cell{Col: 0, Row: 0}, Dir: DirLeft}}
	if _, err := NewSim(bad, DefaultTuning(), rng); err == nil {
		t.Error("expected error for ghost spawn on a wall")
	}

	bad = base
	bad.Layout = []string{"###", "# #", "###"}
	_, err := NewSim(bad, DefaultTuning(), rng)
	var mapErr MapIntegrityError
	if !errors.As(err, &mapErr) {
		t.Errorf("layout error %v is not a MapIntegrityError", err)
	}
}

func TestReadyStateIsFrozen(t *testing.T) {
	s := newTestSim(t, chaseMaze(), deterministicTuning(), 1)

	before := s.Snapshot()
	advanceTicks(s, 10)
	after := s.Snapshot()

	if !reflect.DeepEqual(before, after) {
		t.Errorf("round advanced before Start: %+v vs %+v", before, after)
	}
	if s.State() != StateReady {
		t.Errorf("state = %s, want ready", s.State())
	}
}

func TestEmptyMazeWinsOnFirstTick(t *testing.T) {
	maze := Maze{
		Name: "empty",
		Layout: []string{
			"#####",
			"#   #",
			"#   #",
			"#   #",
			"#####",
		},
		PlayerSpawn: Cell{Col: 1, Row: 1},
		PlayerDir:   DirNone,
		GhostSpawns: []GhostSpawn{{Cell: Cell{Col: 3, Row: 3}, Dir: DirNone}},
	}
	s := newTestSim(t, maze, deterministicTuning(), 1)

	s.Start()
	s.Advance(tickMs)

	if s.State() != StateWin {
		t.Errorf("state = %s, want win with no items on the board", s.State())
	}
}

func TestQueuedTurnAppliesAtJunction(t *testing.T) {
	tn := deterministicTuning()
	tn.GhostSpeed = 0 // keep the ghost parked
	s := newTestSim(t, junctionMaze(), tn, 1)

	s.Start()
	s.RequestDirection(DirDown)

	// The side passage is two tiles ahead; until then the turn stays
	// queued while the player keeps moving right.
	advanceTicks(s, 25)
	if s.player.Dir != DirRight {
		t.Fatalf("mid-corridor dir = %s, want right", s.player.Dir)
	}
	if s.player.Queued != DirDown {
		t.Fatalf("mid-corridor queued = %s, want down", s.player.Queued)
	}

	advanceTicks(s, 35)
	if s.State() != StateWin {
		t.Fatalf("state = %s, want win after collecting the passage pellet", s.State())
	}
	if got := s.player.Tile(); got != (Cell{Col: 3, Row: 2}) {
		t.Errorf("player tile = %+v, want the passage tile (3,2)", got)
	}
	if st := s.Status(); st.Score != s.tuning.PelletPoints {
		t.Errorf("score = %d, want %d", st.Score, s.tuning.PelletPoints)
	}
}

func TestLethalCollisionCostsOneLife(t *testing.T) {
	s := newTestSim(t, chaseMaze(), deterministicTuning(), 1)
	s.Start()
	s.score = 70

	advanceTicks(s, 40)

	st := s.Status()
	if st.Lives != 2 {
		t.Fatalf("lives = %d, want 2 after one ghost contact", st.Lives)
	}
	if st.State != StatePlaying {
		t.Errorf("state = %s, want playing with lives remaining", st.State)
	}
	// Only positions reset on a life loss.
	if st.Score != 70 {
		t.Errorf("score = %d, want 70 preserved across the life loss", st.Score)
	}
	if st.Remaining != 3 {
		t.Errorf("remaining = %d, want 3 preserved across the life loss", st.Remaining)
	}
	if got := s.player.Tile(); got != (Cell{Col: 5, Row: 1}) {
		t.Errorf("player tile = %+v, want spawn (5,1)", got)
	}
	if s.player.X != centerOf(5) {
		t.Errorf("player x = %f, want exact spawn center", s.player.X)
	}
	if s.pending != DirNone || s.player.Queued != DirNone {
		t.Error("buffered input should be dropped on a life loss")
	}
}

func TestLastLifeEndsRound(t *testing.T) {
	tn := deterministicTuning()
	tn.Lives = 1
	s := newTestSim(t, chaseMaze(), tn, 1)
	s.Start()

	advanceTicks(s, 40)

	if s.State() != StateGameOver {
		t.Errorf("state = %s, want gameover on the last life", s.State())
	}
	if s.Status().Lives != 0 {
		t.Errorf("lives = %d, want 0", s.Status().Lives)
	}
}

func TestPincerLosesExactlyOneLife(t *testing.T) {
	// Both ghosts reach the player's tile on the same tick; the first
	// lethal contact ends collision scanning, so exactly one life goes.
	s := newTestSim(t, pincerMaze(), deterministicTuning(), 1)
	s.Start()

	advanceTicks(s, 35)

	if got := s.Status().Lives; got != 2 {
		t.Errorf("lives = %d, want 2 after a same-tick double contact", got)
	}
}

func TestFrightenedPincerEatsBothGhosts(t *testing.T) {
	s := newTestSim(t, pincerMaze(), deterministicTuning(), 1)
	s.Start()
	s.powerUntil = 1e12 // frightened for the whole test

	advanceTicks(s, 35)

	st := s.Status()
	if st.Score != 2*s.tuning.GhostPoints {
		t.Errorf("score = %d, want %d for two ghosts on one tick",
			st.Score, 2*s.tuning.GhostPoints)
	}
	if st.Lives != s.tuning.Lives {
		t.Errorf("lives = %d, want untouched %d", st.Lives, s.tuning.Lives)
	}
	for i, gs := range s.maze.GhostSpawns {
		gh := s.ghosts[i]
		// Eaten ghosts went home and have resumed marching from there.
		if dist := core.Manhattan(gh.Col, gh.Row, gs.Cell.Col, gs.Cell.Row); dist > 1 {
			t.Errorf("ghost %d at (%d,%d), want near spawn %+v", i, gh.Col, gh.Row, gs.Cell)
		}
	}
}

func TestPowerPelletArmsAndExpires(t *testing.T) {
	tn := deterministicTuning()
	tn.PowerDurationMs = 500
	s := newTestSim(t, powerMaze(), tn, 1)
	s.Start()

	advanceToClock(s, 100)
	if s.Frightened() {
		t.Fatal("frightened before any power pellet was eaten")
	}

	// First power pellet sits one tile ahead, eaten at roughly 150ms.
	for !s.Frightened() {
		s.Advance(tickMs)
		if s.clockMs > 1000 {
			t.Fatal("power pellet never armed frightened mode")
		}
	}
	if got := s.powerUntil - s.clockMs; math.Abs(got-tn.PowerDurationMs) > 1e-6 {
		t.Errorf("deadline armed %f ms ahead, want exactly %f", got, tn.PowerDurationMs)
	}

	// Second pellet is eaten near 450ms while still frightened; the
	// deadline is overwritten, not extended, so frightened mode holds
	// past the first deadline but ends well before a stacked one would.
	first := s.powerUntil
	for s.powerUntil == first {
		s.Advance(tickMs)
		if s.clockMs > 1000 {
			t.Fatal("second power pellet never re-armed the deadline")
		}
	}
	if got := s.powerUntil - s.clockMs; math.Abs(got-tn.PowerDurationMs) > 1e-6 {
		t.Errorf("overwritten deadline %f ms ahead, want exactly %f", got, tn.PowerDurationMs)
	}

	advanceToClock(s, 700)
	if !s.Frightened() {
		t.Error("re-arm did not overwrite the first deadline")
	}
	advanceToClock(s, 900)
	if !s.Frightened() {
		t.Error("frightened ended too early after the overwrite")
	}
	advanceToClock(s, 1000)
	if s.Frightened() {
		t.Error("frightened persisted as if durations stacked")
	}
}

func TestWinStopsFurtherPlay(t *testing.T) {
	tn := deterministicTuning()
	s := newTestSim(t, powerMaze(), tn, 1)
	s.Start()

	advanceToClock(s, 2000)
	if s.State() != StateWin {
		t.Fatalf("state = %s, want win after clearing the corridor", s.State())
	}

	snap := s.Snapshot()
	advanceTicks(s, 10)
	if !reflect.DeepEqual(snap, s.Snapshot()) {
		t.Error("round kept evolving after the win")
	}
	// Start does not resurrect a finished round.
	s.Start()
	if s.State() != StateWin {
		t.Errorf("state = %s, want win to persist until a reset", s.State())
	}
}

func TestForceClearTriggersWinCheck(t *testing.T) {
	s := newTestSim(t, chaseMaze(), deterministicTuning(), 1)
	s.Start()

	s.ForceClear()
	if s.State() != StatePlaying {
		t.Fatal("force clear itself should not flip the state")
	}
	s.Advance(tickMs)
	if s.State() != StateWin {
		t.Errorf("state = %s, want win on the tick after force clear", s.State())
	}
}

func TestResetRoundRestoresEverything(t *testing.T) {
	s := newTestSim(t, powerMaze(), deterministicTuning(), 1)
	s.Start()
	advanceToClock(s, 400) // a power pellet and some travel

	s.ResetRound()

	st := s.Status()
	if st.State != StateReady {
		t.Errorf("state = %s, want ready", st.State)
	}
	if st.Score != 0 {
		t.Errorf("score = %d, want 0", st.Score)
	}
	if st.Lives != s.tuning.Lives {
		t.Errorf("lives = %d, want %d", st.Lives, s.tuning.Lives)
	}
	if st.Remaining != 3 {
		t.Errorf("remaining = %d, want the full 3 items back", st.Remaining)
	}
	if st.Frightened {
		t.Error("power mode should be disarmed after a reset")
	}
	if got := s.player.Tile(); got != (Cell{Col: 1, Row: 1}) {
		t.Errorf("player tile = %+v, want spawn", got)
	}
}

func TestOversizedStepIsClamped(t *testing.T) {
	tn := deterministicTuning()
	s := newTestSim(t, chaseMaze(), tn, 1)
	s.Start()

	s.Advance(5000)

	if s.clockMs != tn.MaxStepMs {
		t.Errorf("clock = %f, want clamp to %f", s.clockMs, tn.MaxStepMs)
	}
	// The ghost covered at most MaxStepMs worth of distance.
	maxTravel := tn.GhostSpeed * tn.MaxStepMs / 1000.0
	if got := centerOf(7) - s.ghosts[0].X; got > maxTravel+0.001 {
		t.Errorf("ghost traveled %f units, want at most %f", got, maxTravel)
	}
}

func TestWallContainmentUnderRandomPlay(t *testing.T) {
	dirs := []Direction{DirLeft, DirRight, DirUp, DirDown}

	for _, name := range MazeNames() {
		maze, _ := MazeByName(name)
		s := newTestSim(t, maze, DefaultTuning(), 42)
		s.Start()
		rng := rand.New(rand.NewSource(7))

		for i := 0; i < 5000; i++ {
			if rng.Intn(4) == 0 {
				s.RequestDirection(dirs[rng.Intn(len(dirs))])
			}
			dt := tickMs
			if rng.Intn(100) == 0 {
				dt = 5000 // clamped to MaxStepMs inside Advance
			}
			s.Advance(dt)

			if s.grid.IsWall(s.player.Col, s.player.Row) {
				t.Fatalf("maze %q tick %d: player on wall tile (%d,%d)",
					name, i, s.player.Col, s.player.Row)
			}
			for gi, gh := range s.ghosts {
				if s.grid.IsWall(gh.Col, gh.Row) {
					t.Fatalf("maze %q tick %d: ghost %d on wall tile (%d,%d)",
						name, i, gi, gh.Col, gh.Row)
				}
			}
		}
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() Snapshot {
		s, err := NewSim(DefaultMaze(), DefaultTuning(), rand.New(rand.NewSource(99)))
		if err != nil {
			t.Fatal(err)
		}
		s.Start()
		for i := 0; i < 300; i++ {
			switch i {
			case 30:
				s.RequestDirection(DirUp)
			case 90:
				s.RequestDirection(DirLeft)
			case 180:
				s.RequestDirection(DirDown)
			}
			s.Advance(tickMs)
		}
		return s.Snapshot()
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("replay diverged:\n%+v\n%+v", first, second)
	}
}
