package storage

import (
	"fmt"
	"testing"
	"time"
)

func openTestSaveData(t *testing.T) *SaveData {
	t.Helper()
	// gdata stores under the user's data directory; isolate it per test.
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	data, err := OpenSaveData(fmt.Sprintf("flappy_test_%d", time.Now().UnixNano()))
	if err != nil {
		t.Skipf("save data unavailable: %v", err)
	}
	return data
}

func TestSaveDataBestScore(t *testing.T) {
	data := openTestSaveData(t)

	if best, err := data.BestScore("flappy"); err != nil || best != 0 {
		t.Fatalf("BestScore() = %d, %v; expected 0", best, err)
	}

	for _, score := range []int{5, 2, 11} {
		if err := data.RecordBest("flappy", score); err != nil {
			t.Fatalf("RecordBest(%d) failed: %v", score, err)
		}
	}

	best, err := data.BestScore("flappy")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 11 {
		t.Errorf("best = %d, expected 11", best)
	}
	if other, _ := data.BestScore("flappy_classic"); other != 0 {
		t.Errorf("best scores must be per game, got %d", other)
	}
}

func TestSaveDataWithoutManager(t *testing.T) {
	data := &SaveData{}

	if err := data.RecordBest("flappy", 10); err != nil {
		t.Errorf("RecordBest() without manager should be a no-op, got %v", err)
	}
	if best, err := data.BestScore("flappy"); err != nil || best != 0 {
		t.Errorf("BestScore() = %d, %v; expected 0", best, err)
	}
}

func TestBestForSaveData(t *testing.T) {
	best := BestFor(openTestSaveData(t), "flappy")

	if err := best.WriteBest(4); err != nil {
		t.Fatalf("WriteBest() failed: %v", err)
	}
	if got, err := best.ReadBest(); err != nil || got != 4 {
		t.Errorf("ReadBest() = %d, %v; expected 4", got, err)
	}
}
