package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

func TestCoinSpawnerDisabled(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Coins.SpawnDistance = 0
	if s := NewCoinSpawner(cfg); s != nil {
		t.Error("spawner should be nil when coins are disabled")
	}
}

func TestCoinSpawnerCadence(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	s := NewCoinSpawner(cfg)

	if _, ok := s.MaybeSpawn(749, false); ok {
		t.Fatal("should not spawn before the spawn distance")
	}
	coin, ok := s.MaybeSpawn(1, false)
	if !ok {
		t.Fatal("should spawn at the spawn distance")
	}

	// Centred in the playable area: (655 - 40) / 2
	if coin.X != 500 || coin.Y != 307.5 {
		t.Errorf("coin at (%v, %v), expected (500, 307.5)", coin.X, coin.Y)
	}
	if coin.W != 40 || coin.H != 40 || !coin.Live() {
		t.Errorf("unexpected coin %+v", coin)
	}
}

func TestCoinSpawnerSkipsWhileCoinLive(t *testing.T) {
	s := NewCoinSpawner(config.DefaultFlappyConfig())

	if _, ok := s.MaybeSpawn(750, true); ok {
		t.Fatal("should not spawn while a coin is live")
	}
	// The interval restarted, so the next coin needs a full spawn distance.
	if _, ok := s.MaybeSpawn(10, false); ok {
		t.Fatal("skipped spawn should restart the interval")
	}
	if _, ok := s.MaybeSpawn(740, false); !ok {
		t.Fatal("should spawn after a full interval")
	}
}
