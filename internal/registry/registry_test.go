package registry

import (
	"testing"

	"github.com/vovakirdan/lcd-invaders/internal/core"
	"github.com/vovakirdan/lcd-invaders/internal/lcd"
)

type stubGame struct {
	id    string
	steps int
}

func (s *stubGame) ID() string               { return s.id }
func (s *stubGame) Title() string            { return "Stub " + s.id }
func (s *stubGame) Reset(core.RuntimeConfig) { s.steps = 0 }
func (s *stubGame) Render(lcd.Blitter) error { return nil }
func (s *stubGame) State() core.GameState    { return core.GameState{Score: s.steps} }
func (s *stubGame) Step(core.InputState) core.StepResult {
	s.steps++
	return core.StepResult{State: s.State()}
}

func stubFactory(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegisterAndCreate(t *testing.T) {
	r := New()
	r.Register(GameInfo{ID: "stub-b", Title: "Stub B"}, stubFactory("stub-b"))
	r.Register(GameInfo{ID: "stub-a"}, stubFactory("stub-a"))

	if !r.Exists("stub-a") {
		t.Error("stub-a should exist")
	}

	g, err := r.Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected stub-a", g.ID())
	}

	// Each Create returns an independent instance
	other, _ := r.Create("stub-a")
	g.Step(core.NewInputFrame())
	if other.State().Score != 0 {
		t.Error("instances should not share state")
	}

	expected := []GameInfo{
		{ID: "stub-a", Title: "stub-a"}, // Title defaults to the ID
		{ID: "stub-b", Title: "Stub B"},
	}
	got := r.List()
	if len(got) != len(expected) {
		t.Fatalf("List() = %v", got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("List()[%d] = %+v, expected %+v", i, got[i], expected[i])
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	r := New()
	if _, err := r.Create("no-such-game"); err == nil {
		t.Error("expected an error for an unknown game")
	}
	if r.Exists("no-such-game") {
		t.Error("Exists() should be false")
	}
}

func TestRegisterInvalidPanics(t *testing.T) {
	tests := []struct {
		name string
		info GameInfo
		f    Factory
	}{
		{"duplicate", GameInfo{ID: "dup"}, stubFactory("dup")},
		{"empty id", GameInfo{}, stubFactory("")},
		{"nil factory", GameInfo{ID: "nil"}, nil},
	}

	r := New()
	r.Register(GameInfo{ID: "dup"}, stubFactory("dup"))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected a panic")
				}
			}()
			r.Register(tt.info, tt.f)
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	Register(GameInfo{ID: "stub-default", Title: "Default"}, stubFactory("stub-default"))

	if !Exists("stub-default") {
		t.Fatal("stub-default should be in the default registry")
	}
	if _, err := Create("stub-default"); err != nil {
		t.Errorf("Create() failed: %v", err)
	}

	found := false
	for _, info := range List() {
		found = found || info.ID == "stub-default"
	}
	if !found {
		t.Error("List() should include stub-default")
	}
}
