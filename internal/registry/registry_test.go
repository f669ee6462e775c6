package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string               { return g.id }
func (g stubGame) Title() string            { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Render(*core.Screen)      {}
func (g stubGame) State() core.GameState    { return core.GameState{} }
func (g stubGame) Step(core.InputFrame, time.Duration) core.StepResult {
	return core.StepResult{}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	if !Exists("stub_a") || Exists("missing") {
		t.Fatal("Exists reports the wrong registrations")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID = %q", g.ID())
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create should fail for unknown IDs")
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	if len(ids) < 2 || ids[0] != "stub_a" || ids[1] != "stub_b" {
		t.Errorf("List should be sorted by ID, got %v", ids)
	}
	if list[0].Title != "Stub stub_a" {
		t.Errorf("title = %q", list[0].Title)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}
