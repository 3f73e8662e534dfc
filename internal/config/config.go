// Package config provides YAML-based configuration loading and
// difficulty presets for the match-3 board.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Match3Config contains all configuration for the match-3 board.
type Match3Config struct {
	Board     BoardConfig     `yaml:"board"`
	Shuffle   ShuffleConfig   `yaml:"shuffle"`
	Random    RandomConfig    `yaml:"random"`
	Animation AnimationConfig `yaml:"animation"`
	Scoring   ScoringConfig   `yaml:"scoring"`
}

// BoardConfig defines the board dimensions and the categories in play.
type BoardConfig struct {
	Rows    int      `yaml:"rows"`
	Columns int      `yaml:"columns"`
	Palette []string `yaml:"palette"` // category names, e.g. "red"
	Layout  string   `yaml:"layout"`  // optional fixture file or builtin layout ID
}

// ShuffleConfig bounds how often a dead board is reshuffled before a replay.
type ShuffleConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// RandomConfig seeds the board.
type RandomConfig struct {
	Seed                 int64 `yaml:"seed"` // 0 = pick from the clock
	IncreaseSeedOnReplay bool  `yaml:"increase_seed_on_replay"`
}

// AnimationConfig holds the delay before each engine step completes.
type AnimationConfig struct {
	Swap         time.Duration `yaml:"swap"`
	Destroy      time.Duration `yaml:"destroy"`
	Gravity      time.Duration `yaml:"gravity"`
	SpawnStagger time.Duration `yaml:"spawn_stagger"`
	Settle       time.Duration `yaml:"settle"`
	Shuffle      time.Duration `yaml:"shuffle"`
}

// ScoringConfig defines points and the optional move budget.
type ScoringConfig struct {
	PointsPerTile int `yaml:"points_per_tile"`
	MoveLimit     int `yaml:"move_limit"` // moves-mode budget, 0 = 30
}

// Categories parses the palette names.
func (c BoardConfig) Categories() ([]board.Category, error) {
	out := make([]board.Category, 0, len(c.Palette))
	for _, name := range c.Palette {
		cat, err := board.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("%w: palette: %v", ErrInvalidConfig, err)
		}
		if cat == board.Any {
			return nil, fmt.Errorf("%w: palette: wildcard cannot be spawned", ErrInvalidConfig)
		}
		out = append(out, cat)
	}
	return out, nil
}

// Validate checks the values the engine cannot run without.
func (c Match3Config) Validate() error {
	if c.Board.Rows < 3 || c.Board.Columns < 3 {
		return fmt.Errorf("%w: board must be at least 3x3, got %dx%d",
			ErrInvalidConfig, c.Board.Rows, c.Board.Columns)
	}
	if len(c.Board.Palette) < 2 {
		return fmt.Errorf("%w: palette needs at least 2 categories, got %d",
			ErrInvalidConfig, len(c.Board.Palette))
	}
	if _, err := c.Board.Categories(); err != nil {
		return err
	}
	if c.Shuffle.MaxAttempts < 1 {
		return fmt.Errorf("%w: shuffle.max_attempts must be >= 1", ErrInvalidConfig)
	}
	if c.Scoring.PointsPerTile < 0 || c.Scoring.MoveLimit < 0 {
		return fmt.Errorf("%w: scoring values must not be negative", ErrInvalidConfig)
	}
	a := c.Animation
	for _, d := range []time.Duration{a.Swap, a.Destroy, a.Gravity, a.SpawnStagger, a.Settle, a.Shuffle} {
		if d < 0 {
			return fmt.Errorf("%w: animation durations must not be negative", ErrInvalidConfig)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset accepts "", "easy", "normal" or "hard". Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

var fullPalette = []string{"red", "orange", "yellow", "green", "blue", "purple"}

// ApplyMatch3Preset modifies the config for a difficulty preset.
// Fewer categories make runs more likely; more categories make dead boards more likely.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Palette = append([]string(nil), fullPalette[:4]...)
		cfg.Shuffle.MaxAttempts = 5
		if cfg.Scoring.MoveLimit > 0 {
			cfg.Scoring.MoveLimit += 10
		}
	case DifficultyHard:
		cfg.Board.Palette = append([]string(nil), fullPalette...)
		cfg.Shuffle.MaxAttempts = 1
		if cfg.Scoring.MoveLimit > 10 {
			cfg.Scoring.MoveLimit -= 10
		}
	}
}
