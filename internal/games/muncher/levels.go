package muncher

// GhostSpawn is a ghost's home tile and initial facing.
type GhostSpawn struct {
	Cell Cell
	Dir  Direction
}

// Maze bundles a layout with its spawn points. Spawn tiles are plain
// corridor cells in the layout; they carry no pellets so that a fresh
// round never starts with an item under an actor.
type Maze struct {
	Name        string
	Layout      []string
	PlayerSpawn Cell
	PlayerDir   Direction
	GhostSpawns []GhostSpawn
}

// Built-in mazes. Legend: '#' wall, '.' pellet, 'o' power pellet,
// ' ' empty corridor.
var mazes = []Maze{
	{
		Name: "warren",
		Layout: []string{
			"###################",
			"#........#........#",
			"#o##.###.#.###.##o#",
			"#.................#",
			"#.##.#.#####.#.##.#",
			"#....#...#...#....#",
			"####.###.#.###.####",
			"#......     ......#",
			"####.###.#.###.####",
			"#....#...#...#....#",
			"#.##.#.#####.#.##.#",
			"#........ ........#",
			"#o##.###.#.###.##o#",
			"#.................#",
			"###################",
		},
		PlayerSpawn: Cell{Col: 9, Row: 11},
		PlayerDir:   DirLeft,
		GhostSpawns: []GhostSpawn{
			{Cell: Cell{Col: 8, Row: 7}, Dir: DirLeft},
			{Cell: Cell{Col: 10, Row: 7}, Dir: DirRight},
		},
	},
	{
		Name: "loop",
		Layout: []string{
			"###############",
			"#o...........o#",
			"#.###.###.###.#",
			"#.............#",
			"#.##.##.##.##.#",
			"#....#   #....#",
			"#.##.##.##.##.#",
			"#.............#",
			"#.###.# #.###.#",
			"#o...........o#",
			"###############",
		},
		PlayerSpawn: Cell{Col: 7, Row: 8},
		PlayerDir:   DirUp,
		GhostSpawns: []GhostSpawn{
			{Cell: Cell{Col: 6, Row: 5}, Dir: DirRight},
			{Cell: Cell{Col: 8, Row: 5}, Dir: DirLeft},
		},
	},
}

// DefaultMaze returns the first built-in maze.
func DefaultMaze() Maze {
	return mazes[0]
}

// MazeByName returns the named built-in maze.
func MazeByName(name string) (Maze, bool) {
	for _, m := range mazes {
		if m.Name == name {
			return m, true
		}
	}
	return Maze{}, false
}

// MazeNames lists the built-in maze names in declaration order.
func MazeNames() []string {
	names := make([]string, len(mazes))
	for i, m := range mazes {
		names[i] = m.Name
	}
	return names
}
