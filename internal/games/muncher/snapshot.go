package muncher

// Snapshot captures the observable round state for determinism testing:
// two rounds fed identical inputs must produce identical snapshot
// sequences.
type Snapshot struct {
	State      RoundState
	Score      int
	Lives      int
	Remaining  int
	Frightened bool
	PlayerCol  int
	PlayerRow  int
	PlayerDir  Direction
	Ghosts     []ActorSnapshot
}

// ActorSnapshot is one ghost's position and heading.
type ActorSnapshot struct {
	Col, Row int
	Dir      Direction
}

// Snapshot returns the current round snapshot.
func (s *Sim) Snapshot() Snapshot {
	ghosts := make([]ActorSnapshot, len(s.ghosts))
	for i, gh := range s.ghosts {
		ghosts[i] = ActorSnapshot{Col: gh.Col, Row: gh.Row, Dir: gh.Dir}
	}
	return Snapshot{
		State:      s.state,
		Score:      s.score,
		Lives:      s.lives,
		Remaining:  s.items.Remaining(),
		Frightened: s.Frightened(),
		PlayerCol:  s.player.Col,
		PlayerRow:  s.player.Row,
		PlayerDir:  s.player.Dir,
		Ghosts:     ghosts,
	}
}
