// Package config provides YAML-based game configuration loading and
// difficulty management for Maze Muncher.
package config

// MuncherConfig contains all tunable parameters for the maze-chase game.
type MuncherConfig struct {
	Physics MuncherPhysics `yaml:"physics"`
	Timing  MuncherTiming  `yaml:"timing"`
	Scoring MuncherScoring `yaml:"scoring"`
	Rules   MuncherRules   `yaml:"rules"`
}

// MuncherPhysics defines actor movement speeds in sub-tile units per second.
// One tile is 32 units wide; speeds below ~90 units/s cannot cross the
// tile-center window in a single 60 FPS tick and will stall the actor.
type MuncherPhysics struct {
	PlayerSpeed float64 `yaml:"player_speed"`
	GhostSpeed  float64 `yaml:"ghost_speed"`
}

// MuncherTiming defines time-driven behavior, all values in milliseconds.
type MuncherTiming struct {
	PowerDurationMs float64 `yaml:"power_duration_ms"` // frightened-mode window per power pellet
	BlinkIntervalMs float64 `yaml:"blink_interval_ms"` // power pellet blink half-period
	MaxStepMs       float64 `yaml:"max_step_ms"`       // dt clamp per simulation tick
}

// MuncherScoring defines point values for consumables and eaten ghosts.
type MuncherScoring struct {
	Pellet      int `yaml:"pellet"`
	PowerPellet int `yaml:"power_pellet"`
	Ghost       int `yaml:"ghost"`
}

// MuncherRules defines round rules and ghost behavior.
type MuncherRules struct {
	Lives          int     `yaml:"lives"`
	ChaseDeviation float64 `yaml:"chase_deviation"` // probability of a random move while chasing
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown strings map to empty
// (no preset applied).
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	default:
		return ""
	}
}
