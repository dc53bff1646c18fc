package muncher

import "math"

// Actors move in continuous units over the tile grid. One tile is TileSize
// units across; an actor "is at" the tile containing its position point.
// CenterEpsilon must stay below the per-tick travel distance (speed * dt)
// or an actor at a center would snap back to the same center every tick
// and never leave the tile.
const (
	TileSize      = 32.0
	CenterEpsilon = 1.5
)

// centerOf returns the continuous coordinate of a tile's midpoint along
// one axis.
func centerOf(i int) float64 {
	return (float64(i) + 0.5) * TileSize
}

// MinStepMs returns the smallest tick step (in milliseconds) that still
// carries an actor of the given speed past the center window. A step of
// CenterEpsilon or less snaps straight back to the same center, so any
// finer tick stalls the actor. The 5% margin keeps the step strictly
// past the window under float rounding.
func MinStepMs(speed float64) float64 {
	if speed <= 0 {
		return 0
	}
	return 1.05 * CenterEpsilon * 1000.0 / speed
}

// Actor is a moving entity: the player or a ghost. Continuous position
// (X, Y) is authoritative; (Col, Row) is derived from it after every move.
type Actor struct {
	X, Y     float64
	Col, Row int
	Dir      Direction
	Queued   Direction
	Speed    float64

	spawn    Cell
	spawnDir Direction
}

// NewActor places an actor at its spawn tile, facing its spawn direction.
func NewActor(spawn Cell, dir Direction, speed float64) Actor {
	a := Actor{Speed: speed, spawn: spawn, spawnDir: dir}
	a.Respawn()
	return a
}

// Respawn returns the actor to its spawn center, restores the spawn
// direction and drops any queued turn.
func (a *Actor) Respawn() {
	a.Col, a.Row = a.spawn.Col, a.spawn.Row
	a.X = centerOf(a.spawn.Col)
	a.Y = centerOf(a.spawn.Row)
	a.Dir = a.spawnDir
	a.Queued = DirNone
}

// Tile returns the tile currently containing the actor.
func (a *Actor) Tile() Cell {
	return Cell{Col: a.Col, Row: a.Row}
}

// AtCenter reports whether the actor is within CenterEpsilon of its tile
// center on both axes.
func (a *Actor) AtCenter() bool {
	return math.Abs(a.X-centerOf(a.Col)) <= CenterEpsilon &&
		math.Abs(a.Y-centerOf(a.Row)) <= CenterEpsilon
}

// SnapToCenter moves the actor exactly onto its tile center.
func (a *Actor) SnapToCenter() {
	a.X = centerOf(a.Col)
	a.Y = centerOf(a.Row)
}

// ApplyQueued adopts the queued direction if the adjacent tile that way is
// open, consuming it. A queued turn into a wall stays queued; it may become
// legal at a later intersection. Only meaningful at a tile center.
func (a *Actor) ApplyQueued(g *Grid) {
	if a.Queued == DirNone {
		return
	}
	if a.Queued == a.Dir {
		a.Queued = DirNone
		return
	}
	next := a.Tile().Next(a.Queued)
	if !g.IsWall(next.Col, next.Row) {
		a.Dir = a.Queued
		a.Queued = DirNone
	}
}

// Advance moves the actor by dt seconds. When the actor sits on a tile
// center it is snapped exactly and steer is invoked, letting the owner
// change Dir (the player applies its queued turn, ghosts run their policy).
// A direction leading into a wall halts the actor at the center. After
// integration, a position that ended up inside a wall (possible when a
// large dt overshoots the center window) is reverted and snapped back.
func (a *Actor) Advance(g *Grid, dt float64, steer func(*Actor)) {
	if a.AtCenter() {
		a.SnapToCenter()
		if steer != nil {
			steer(a)
		}
		if a.Dir != DirNone {
			next := a.Tile().Next(a.Dir)
			if g.IsWall(next.Col, next.Row) {
				a.Dir = DirNone
			}
		}
	}
	if a.Dir == DirNone {
		return
	}

	dx, dy := a.Dir.Vector()
	stepX := float64(dx) * a.Speed * dt
	stepY := float64(dy) * a.Speed * dt
	a.X += stepX
	a.Y += stepY
	a.retile()

	if g.IsWall(a.Col, a.Row) {
		a.X -= stepX
		a.Y -= stepY
		a.retile()
		a.SnapToCenter()
		a.Dir = DirNone
	}
}

func (a *Actor) retile() {
	a.Col = int(math.Floor(a.X / TileSize))
	a.Row = int(math.Floor(a.Y / TileSize))
}
