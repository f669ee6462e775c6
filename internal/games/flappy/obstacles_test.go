package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

func TestSpawnPairGeometry(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	g := NewObstacleGenerator(cfg, rand.New(rand.NewSource(1)))

	pair := g.SpawnPair(200)
	upper, lower := pair[0], pair[1]

	if !upper.Upper || lower.Upper {
		t.Fatalf("roles wrong: upper=%v lower=%v", upper.Upper, lower.Upper)
	}
	if upper.Y != 0 || upper.H != 200 {
		t.Errorf("upper = y %v h %v, expected y 0 h 200", upper.Y, upper.H)
	}
	if lower.Y != 350 || lower.H != 305 {
		t.Errorf("lower = y %v h %v, expected y 350 h 305", lower.Y, lower.H)
	}
	if upper.X != 500 || lower.X != 500 {
		t.Errorf("pair should spawn at the right edge, got %v and %v", upper.X, lower.X)
	}
	if upper.W != 85 || lower.W != 85 {
		t.Errorf("pipe width = %v/%v, expected 85", upper.W, lower.W)
	}
	if upper.Pair != lower.Pair {
		t.Errorf("halves should share a pair id, got %d and %d", upper.Pair, lower.Pair)
	}
}

func TestSpawnPairClampsToMinHeight(t *testing.T) {
	g := NewObstacleGenerator(config.DefaultFlappyConfig(), rand.New(rand.NewSource(1)))
	pair := g.SpawnPair(10)
	if pair[0].H != 50 {
		t.Errorf("upper height = %v, expected clamp to 50", pair[0].H)
	}
}

func TestGeneratedPairsKeepInvariant(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	playable := cfg.Playfield.GroundY()
	lo, hi := cfg.TopHeightRange()

	for _, seed := range []int64{1, 2, 42, 12345} {
		g := NewObstacleGenerator(cfg, rand.New(rand.NewSource(seed)))
		var lastPair uint64
		for range 200 {
			pair := g.MaybeSpawn(cfg.Pipes.SpawnDistance)
			if len(pair) != 2 {
				t.Fatalf("seed %d: expected a pair, got %d obstacles", seed, len(pair))
			}
			upper, lower := pair[0], pair[1]

			if sum := upper.H + cfg.Pipes.Gap + lower.H; sum != playable {
				t.Errorf("seed %d: %v + gap + %v = %v, expected %v", seed, upper.H, lower.H, sum, playable)
			}
			if upper.H < float64(lo) || upper.H > float64(hi) {
				t.Errorf("seed %d: top height %v outside [%d, %d]", seed, upper.H, lo, hi)
			}
			if upper.H <= 0 || lower.H <= 0 {
				t.Errorf("seed %d: non-positive half %v/%v", seed, upper.H, lower.H)
			}
			if upper.Pair <= lastPair {
				t.Errorf("seed %d: pair ids should increase, %d after %d", seed, upper.Pair, lastPair)
			}
			lastPair = upper.Pair
		}
	}
}

func TestMaybeSpawnThreshold(t *testing.T) {
	g := NewObstacleGenerator(config.DefaultFlappyConfig(), rand.New(rand.NewSource(7)))

	if pair := g.MaybeSpawn(299); pair != nil {
		t.Fatal("should not spawn before the spawn distance")
	}
	if pair := g.MaybeSpawn(1); len(pair) != 2 {
		t.Fatal("should spawn once the spawn distance is reached")
	}
	if g.Since() != 0 {
		t.Errorf("since = %v, expected 0", g.Since())
	}

	if pair := g.MaybeSpawn(310); len(pair) != 2 {
		t.Fatal("should spawn after overshooting")
	}
	if g.Since() != 10 {
		t.Errorf("overshoot should carry over, since = %v", g.Since())
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a := NewObstacleGenerator(cfg, rand.New(rand.NewSource(99)))
	b := NewObstacleGenerator(cfg, rand.New(rand.NewSource(99)))

	for i := range 50 {
		pa := a.MaybeSpawn(300)
		pb := b.MaybeSpawn(300)
		if pa[0] != pb[0] || pa[1] != pb[1] {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, pa, pb)
		}
	}
}
