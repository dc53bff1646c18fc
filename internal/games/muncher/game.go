package muncher

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/kdanilov/maze-muncher/internal/config"
	"github.com/kdanilov/maze-muncher/internal/core"
	"github.com/kdanilov/maze-muncher/internal/registry"
)

// Package-level selection knobs, set by the CLI before the platform calls
// Reset (same pattern the play command uses for every game option).
var (
	configPath       string
	difficultyPreset string
	selectedMaze     string
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects a difficulty preset by name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetMaze selects a built-in maze by name. Unknown names fall back to the
// default maze.
func SetMaze(name string) {
	selectedMaze = name
}

// Game adapts the Sim round controller to the platform's registry.Game
// interface: it translates input actions, drives fixed-step ticks, and
// renders the maze to a screen buffer.
type Game struct {
	sim    *Sim
	tuning Tuning
	maze   Maze
	mapErr error

	tick uint64
	dtMs float64

	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	paused   bool
	tooSmall bool
}

// New creates a new Maze Muncher game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("muncher", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "muncher"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Muncher"
}

// Reset initializes/restarts the game from the runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	mcfg, err := config.LoadMuncher(configPath)
	if err != nil {
		mcfg = config.DefaultMuncherConfig()
	}
	config.ApplyMuncherPreset(&mcfg, config.ParsePreset(difficultyPreset))
	g.tuning = tuningFromConfig(mcfg)

	g.maze = DefaultMaze()
	if selectedMaze != "" {
		if m, ok := MazeByName(selectedMaze); ok {
			g.maze = m
		}
	}

	g.sim, g.mapErr = NewSim(g.maze, g.tuning, rand.New(rand.NewSource(cfg.Seed)))

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dtMs = 1000.0 / float64(tickRate)

	// Tick rates too fine for the configured speeds would leave every
	// actor snapping back to the same tile center forever; raise dt to
	// the smallest step that still makes progress.
	slowest := math.Min(g.tuning.PlayerSpeed, g.tuning.GhostSpeed)
	if floor := MinStepMs(slowest); g.dtMs < floor {
		g.dtMs = floor
	}

	g.tick = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2
	g.layout()
}

// tuningFromConfig maps the YAML config onto simulation parameters.
func tuningFromConfig(cfg config.MuncherConfig) Tuning {
	return Tuning{
		PlayerSpeed:     cfg.Physics.PlayerSpeed,
		GhostSpeed:      cfg.Physics.GhostSpeed,
		PowerDurationMs: cfg.Timing.PowerDurationMs,
		BlinkIntervalMs: cfg.Timing.BlinkIntervalMs,
		MaxStepMs:       cfg.Timing.MaxStepMs,
		PelletPoints:    cfg.Scoring.Pellet,
		PowerPoints:     cfg.Scoring.PowerPellet,
		GhostPoints:     cfg.Scoring.Ghost,
		Lives:           cfg.Rules.Lives,
		ChaseDeviation:  cfg.Rules.ChaseDeviation,
	}
}

// layout centers the maze under the HUD and checks the screen fits.
func (g *Game) layout() {
	if g.sim == nil {
		g.tooSmall = false
		return
	}
	w := g.sim.Grid().Width()
	h := g.sim.Grid().Height()
	g.tooSmall = g.screenW < w+2 || g.screenH < h+g.hudHeight+1
	g.mapOffsetX = (g.screenW - w) / 2
	g.mapOffsetY = g.hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	if g.sim == nil || g.mapErr != nil {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) {
		g.sim.ResetRound()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionStart) && g.sim.State() == StateReady {
		g.sim.Start()
	}

	if input.Has(core.ActionPause) && g.sim.State() == StatePlaying {
		g.paused = !g.paused
	}

	// Pause freezes the simulation clock entirely, so the power timer
	// does not burn down while paused.
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch {
	case input.Has(core.ActionUp):
		g.sim.RequestDirection(DirUp)
	case input.Has(core.ActionDown):
		g.sim.RequestDirection(DirDown)
	case input.Has(core.ActionLeft):
		g.sim.RequestDirection(DirLeft)
	case input.Has(core.ActionRight):
		g.sim.RequestDirection(DirRight)
	}

	g.sim.Advance(g.dtMs)
	return core.StepResult{State: g.State()}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.mapErr != nil {
		g.renderOverlay(dst, "Map error", g.mapErr.Error())
		return
	}
	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMaze(dst)
	g.renderActors(dst)

	st := g.sim.Status()
	switch {
	case st.State == StateReady:
		g.renderOverlay(dst, "Ready!", "Press Enter to start")
	case st.State == StateWin:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", st.Score))
	case st.State == StateGameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.sim.Status()
	hud := fmt.Sprintf(" Maze Muncher — Score: %d  Lives: %d  Pellets: %d",
		st.Score, st.Lives, st.Remaining)
	if st.Frightened {
		hud += "  POWER!"
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMaze draws walls and remaining items. Power pellets blink on the
// simulation clock.
func (g *Game) renderMaze(dst *core.Screen) {
	grid := g.sim.Grid()
	blinkOn := g.sim.BlinkOn()
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			x := g.mapOffsetX + col
			y := g.mapOffsetY + row
			c := Cell{Col: col, Row: row}
			switch {
			case grid.IsWall(col, row):
				dst.SetColored(x, y, '█', core.ColorBlue)
			case g.sim.PelletAt(c):
				dst.SetColored(x, y, '·', core.ColorWhite)
			case g.sim.PowerAt(c) && blinkOn:
				dst.SetColored(x, y, '●', core.ColorBrightYellow)
			}
		}
	}
}

// ghostColors assigns stable per-ghost colors by spawn order.
var ghostColors = []core.Color{
	core.ColorRed,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorOrange,
}

// renderActors draws the player and the ghosts at their current tiles.
func (g *Game) renderActors(dst *core.Screen) {
	frightened := g.sim.Frightened()
	for i, gh := range g.sim.Ghosts() {
		x := g.mapOffsetX + gh.Col
		y := g.mapOffsetY + gh.Row
		if frightened {
			dst.SetColored(x, y, 'W', core.ColorBrightBlue)
		} else {
			dst.SetColored(x, y, 'M', ghostColors[i%len(ghostColors)])
		}
	}

	p := g.sim.Player()
	dst.SetColored(g.mapOffsetX+p.Col, g.mapOffsetY+p.Row, 'C', core.ColorBrightYellow)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	st := g.sim.Status()
	return core.GameState{
		Score:    st.Score,
		Lives:    st.Lives,
		GameOver: st.State == StateWin || st.State == StateGameOver,
		Paused:   g.paused,
	}
}
