package muncher

import (
	"errors"
	"testing"
)

func TestParseLayoutValid(t *testing.T) {
	g, items, err := ParseLayout([]string{
		"#####",
		"#.o.#",
		"#. .#",
		"#o..#",
		"#####",
	})
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}

	if g.Width() != 5 || g.Height() != 5 {
		t.Errorf("dimensions = %dx%d, want 5x5", g.Width(), g.Height())
	}
	if !g.IsWall(0, 0) {
		t.Error("corner should be wall")
	}
	if g.IsWall(1, 1) {
		t.Error("(1,1) should be open")
	}
	if g.IsWall(2, 2) {
		t.Error("empty corridor (2,2) should be open")
	}

	// 5 pellets + 2 power pellets
	if items.Remaining() != 7 {
		t.Errorf("remaining = %d, want 7", items.Remaining())
	}
	if !items.PowerAt(Cell{Col: 2, Row: 1}) {
		t.Error("power pellet missing at (2,1)")
	}
	if !items.PelletAt(Cell{Col: 1, Row: 1}) {
		t.Error("pellet missing at (1,1)")
	}
	if items.PelletAt(Cell{Col: 2, Row: 2}) {
		t.Error("empty corridor should hold no pellet")
	}
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"too few rows", []string{"#####", "#...#", "#####"}},
		{"too narrow", []string{"###", "#.#", "#.#", "#.#", "###"}},
		{"ragged rows", []string{"#####", "#...#", "#..#", "#...#", "#####"}},
		{"unknown rune", []string{"#####", "#.X.#", "#...#", "#...#", "#####"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseLayout(tt.rows)
			if err == nil {
				t.Fatal("expected error")
			}
			var mapErr MapIntegrityError
			if !errors.As(err, &mapErr) {
				t.Errorf("error %T is not a MapIntegrityError", err)
			}
		})
	}
}

func TestIsWallOutOfBounds(t *testing.T) {
	g, _, err := ParseLayout([]string{
		"#####",
		"#   #",
		"#   #",
		"#   #",
		"#####",
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range []Cell{{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {100, 100}} {
		if !g.IsWall(c.Col, c.Row) {
			t.Errorf("out-of-bounds (%d,%d) should count as wall", c.Col, c.Row)
		}
	}
}

func TestConsumeAtIdempotent(t *testing.T) {
	_, items, err := ParseLayout([]string{
		"#####",
		"#.o #",
		"#   #",
		"#   #",
		"#####",
	})
	if err != nil {
		t.Fatal(err)
	}

	if kind := items.ConsumeAt(Cell{Col: 1, Row: 1}); kind != ItemPellet {
		t.Errorf("first consume = %v, want ItemPellet", kind)
	}
	if kind := items.ConsumeAt(Cell{Col: 1, Row: 1}); kind != ItemNone {
		t.Errorf("second consume = %v, want ItemNone", kind)
	}
	if kind := items.ConsumeAt(Cell{Col: 2, Row: 1}); kind != ItemPower {
		t.Errorf("power consume = %v, want ItemPower", kind)
	}
	if kind := items.ConsumeAt(Cell{Col: 3, Row: 1}); kind != ItemNone {
		t.Errorf("empty tile consume = %v, want ItemNone", kind)
	}
	if items.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", items.Remaining())
	}
}

func TestDirectionVectorsAndOpposites(t *testing.T) {
	tests := []struct {
		dir      Direction
		dx, dy   int
		opposite Direction
	}{
		{DirLeft, -1, 0, DirRight},
		{DirRight, 1, 0, DirLeft},
		{DirUp, 0, -1, DirDown},
		{DirDown, 0, 1, DirUp},
		{DirNone, 0, 0, DirNone},
	}

	for _, tt := range tests {
		dx, dy := tt.dir.Vector()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%s vector = (%d,%d), want (%d,%d)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
		if tt.dir.Opposite() != tt.opposite {
			t.Errorf("%s opposite = %s, want %s", tt.dir, tt.dir.Opposite(), tt.opposite)
		}
	}
}
