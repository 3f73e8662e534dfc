package engine

import "time"

// Timing holds the presentation delays the engines report back to the
// orchestrator. A zero Timing resolves every operation instantly, which is what
// headless simulation uses.
type Timing struct {
	Swap         time.Duration
	Destroy      time.Duration
	Gravity      time.Duration // only when at least one tile fell
	SpawnStagger time.Duration // per spawned tile
	Settle       time.Duration
	Shuffle      time.Duration
}

// DefaultTiming returns the delays used by the interactive game.
func DefaultTiming() Timing {
	return Timing{
		Swap:         200 * time.Millisecond,
		Destroy:      200 * time.Millisecond,
		Gravity:      200 * time.Millisecond,
		SpawnStagger: 50 * time.Millisecond,
		Settle:       200 * time.Millisecond,
		Shuffle:      350 * time.Millisecond,
	}
}

func (t Timing) refill(moved, spawned int) time.Duration {
	d := t.Destroy + t.Settle
	if moved > 0 {
		d += t.Gravity
	}
	return d + time.Duration(spawned)*t.SpawnStagger
}
