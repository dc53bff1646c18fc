// Package muncher implements the maze-chase game: a grid-locked player
// collecting pellets while ghosts pursue. The simulation is pure logic with
// no platform dependencies; the tui platform drives it through the
// registry.Game wrapper in game.go.
package muncher

import "fmt"

// Map legend characters. Anything that is not a wall is an open corridor;
// pellets and power pellets additionally seed the item ledger.
const (
	legendWall   = '#'
	legendPellet = '.'
	legendPower  = 'o'
	legendOpen   = ' '
)

// Minimum playable maze dimensions.
const minMazeSize = 5

// Direction is a cardinal movement direction, or none (halted).
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// Vector returns the unit tile offset for the direction.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Cell addresses one maze tile by (column, row).
type Cell struct {
	Col, Row int
}

// Next returns the neighboring cell one step in the given direction.
func (c Cell) Next(d Direction) Cell {
	dx, dy := d.Vector()
	return Cell{Col: c.Col + dx, Row: c.Row + dy}
}

// MapIntegrityError reports a malformed maze layout. It is fatal: the round
// cannot start until the caller supplies a valid map.
type MapIntegrityError struct {
	Reason string
}

func (e MapIntegrityError) Error() string {
	return fmt.Sprintf("muncher: map integrity: %s", e.Reason)
}

// Grid is the static maze topology: a wall/open classification per tile.
// It is immutable after construction; item state lives in Items.
type Grid struct {
	width  int
	height int
	walls  []bool
}

// Width returns the maze width in tiles.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the maze height in tiles.
func (g *Grid) Height() int {
	return g.height
}

// IsWall reports whether the tile is a wall. Any coordinate outside the
// grid counts as wall, which keeps actors contained without explicit
// border checks.
func (g *Grid) IsWall(col, row int) bool {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return true
	}
	return g.walls[row*g.width+col]
}

// ParseLayout builds the grid and the item ledger from legend rows.
// All rows must be the same length, the maze must be at least 5x5, and
// only legend characters are allowed.
func ParseLayout(rows []string) (*Grid, *Items, error) {
	if len(rows) < minMazeSize {
		return nil, nil, MapIntegrityError{Reason: fmt.Sprintf("maze height %d below minimum %d", len(rows), minMazeSize)}
	}

	width := len(rows[0])
	if width < minMazeSize {
		return nil, nil, MapIntegrityError{Reason: fmt.Sprintf("maze width %d below minimum %d", width, minMazeSize)}
	}

	g := &Grid{
		width:  width,
		height: len(rows),
		walls:  make([]bool, width*len(rows)),
	}
	items := newItems()

	for y, row := range rows {
		if len(row) != width {
			return nil, nil, MapIntegrityError{Reason: fmt.Sprintf("row %d has length %d, want %d", y, len(row), width)}
		}
		for x, ch := range row {
			switch ch {
			case legendWall:
				g.walls[y*width+x] = true
			case legendPellet:
				items.addPellet(Cell{Col: x, Row: y})
			case legendPower:
				items.addPower(Cell{Col: x, Row: y})
			case legendOpen:
				// corridor, nothing to record
			default:
				return nil, nil, MapIntegrityError{Reason: fmt.Sprintf("unknown legend character %q at (%d, %d)", ch, x, y)}
			}
		}
	}

	return g, items, nil
}
