package muncher

import (
	"math/rand"

	"github.com/kdanilov/maze-muncher/internal/core"
)

// policyOrder is the fixed direction enumeration for both legal-move
// scanning and distance tie-breaking. Changing it changes ghost routes,
// so it is part of the deterministic contract.
var policyOrder = [4]Direction{DirLeft, DirRight, DirUp, DirDown}

// NextGhostDir decides a ghost's direction at a tile center.
//
// Legal moves are the open neighbors of the current tile in policyOrder.
// When two or more moves are legal, the reverse of the current direction
// is excluded so ghosts do not oscillate; in a dead end the single legal
// move is taken even if it reverses. Frightened ghosts pick uniformly at
// random. Otherwise, with probability deviation the ghost also picks at
// random, else it takes the option minimizing Manhattan distance from the
// resulting tile to the target, first in policyOrder winning ties.
func NextGhostDir(g *Grid, rng *rand.Rand, at Cell, cur Direction, target Cell, frightened bool, deviation float64) Direction {
	var legal []Direction
	for _, d := range policyOrder {
		n := at.Next(d)
		if !g.IsWall(n.Col, n.Row) {
			legal = append(legal, d)
		}
	}
	if len(legal) == 0 {
		return DirNone
	}

	options := legal
	if len(legal) >= 2 {
		reverse := cur.Opposite()
		filtered := make([]Direction, 0, len(legal))
		for _, d := range legal {
			if d != reverse {
				filtered = append(filtered, d)
			}
		}
		if len(filtered) > 0 {
			options = filtered
		}
	}

	if frightened {
		return options[rng.Intn(len(options))]
	}
	if deviation > 0 && rng.Float64() < deviation {
		return options[rng.Intn(len(options))]
	}

	best := options[0]
	bestDist := 1 << 30
	for _, d := range options {
		n := at.Next(d)
		dist := core.Manhattan(n.Col, n.Row, target.Col, target.Row)
		if dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best
}
