package config

import (
	_ "embed"
)

//go:embed defaults/muncher.yaml
var defaultMuncherYAML []byte

// DefaultMuncherConfig returns the default game configuration.
// Kept in sync with defaults/muncher.yaml as a fallback if the embedded
// YAML fails to parse.
func DefaultMuncherConfig() MuncherConfig {
	return MuncherConfig{
		Physics: MuncherPhysics{
			PlayerSpeed: 110.0,
			GhostSpeed:  100.0,
		},
		Timing: MuncherTiming{
			PowerDurationMs: 7000,
			BlinkIntervalMs: 250,
			MaxStepMs:       50,
		},
		Scoring: MuncherScoring{
			Pellet:      10,
			PowerPellet: 50,
			Ghost:       200,
		},
		Rules: MuncherRules{
			Lives:          3,
			ChaseDeviation: 0.18,
		},
	}
}
