package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the hardcoded match-3 configuration.
// It mirrors defaults/match3.yaml.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Rows:    8,
			Columns: 8,
			Palette: []string{"red", "orange", "yellow", "green", "blue"},
		},
		Shuffle: ShuffleConfig{MaxAttempts: 3},
		Random:  RandomConfig{IncreaseSeedOnReplay: true},
		Animation: AnimationConfig{
			Swap:         200 * time.Millisecond,
			Destroy:      200 * time.Millisecond,
			Gravity:      200 * time.Millisecond,
			SpawnStagger: 50 * time.Millisecond,
			Settle:       200 * time.Millisecond,
			Shuffle:      350 * time.Millisecond,
		},
		Scoring: ScoringConfig{
			PointsPerTile: 10,
			MoveLimit:     30,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `config` style dumps.
func DefaultYAML() []byte {
	return defaultMatch3YAML
}
