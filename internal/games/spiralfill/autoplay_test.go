package spiralfill

import (
	"math/rand"
	"testing"
)

func TestAutoplayDeterministic(t *testing.T) {
	cfg := testConfig(7)
	cfg.Grid.BlockChance = 0.2
	opts := AutoplayOptions{MaxTicks: 3000, ClearEvery: 40, MoveEvery: 25}

	run := func() AutoplayResult {
		g := New()
		if err := g.ResetWithConfig(testRuntime(99), cfg); err != nil {
			t.Fatalf("ResetWithConfig error: %v", err)
		}
		return g.Autoplay(opts, rand.New(rand.NewSource(7)))
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("results differ:\n%+v\n%+v", a, b)
	}
	if a.Snapshot.Placed == 0 {
		t.Error("autoplay placed nothing")
	}
	if a.Moves == 0 {
		t.Error("autoplay never moved the spawner")
	}
	if a.Regenerations < a.Moves {
		t.Errorf("Regenerations = %d, expected at least one per move (%d)", a.Regenerations, a.Moves)
	}
}

func TestAutoplayStops(t *testing.T) {
	tests := []struct {
		name string
		opts AutoplayOptions
	}{
		{"spawn only", AutoplayOptions{MaxTicks: 2000}},
		{"with clears", AutoplayOptions{MaxTicks: 2000, ClearEvery: 15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, testConfig(5))
			res := g.Autoplay(tt.opts, rand.New(rand.NewSource(1)))
			if res.Ticks > tt.opts.MaxTicks {
				t.Errorf("Ticks = %d, beyond MaxTicks %d", res.Ticks, tt.opts.MaxTicks)
			}
			over := res.Snapshot.State == StateGameOver
			if !over && res.Ticks != tt.opts.MaxTicks {
				t.Errorf("stopped at tick %d without game over", res.Ticks)
			}
		})
	}
}

func TestAutoplayFailedGame(t *testing.T) {
	g := New()
	_ = g.ResetWithConfig(testRuntime(1), testConfig(5, "chartreuse"))
	res := g.Autoplay(AutoplayOptions{MaxTicks: 10}, rand.New(rand.NewSource(1)))
	if res.Ticks != 0 || res.Snapshot.State != StateFailed {
		t.Errorf("result = %+v, expected an immediate failed result", res)
	}
}
