// Package registry lets game variants announce themselves from init so the
// hosts and the CLI can list and create them by ID.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Game is what a host drives: input frames in, game state and a drawn
// screen out. Implementations know nothing about terminals or windows.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// score history key.
	ID() string

	// Title is the name shown in menus.
	Title() string

	// Reset prepares a run. The first call creates the game; later calls
	// after a game over start the next run with cfg.Seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances the game by dt.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the game into dst, overwriting every cell.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game under id. It panics if id is taken, which can only
// happen through a programming error in an init function.
func Register(id string, f Factory) {
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns the registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
