package invaders

import (
	"testing"

	"github.com/vovakirdan/lcd-invaders/internal/config"
)

func TestHitBoxInclusiveEdges(t *testing.T) {
	box := hitBox(10, 10)

	tests := []struct {
		x, y int
		hit  bool
	}{
		{10, 10, true},
		{18, 18, true},
		{18, 10, true},
		{14, 14, true},
		{9, 10, false},
		{19, 18, false},
		{18, 19, false},
	}
	for _, tt := range tests {
		if got := box.Contains(tt.x, tt.y); got != tt.hit {
			t.Errorf("Contains(%d,%d) = %v, expected %v", tt.x, tt.y, got, tt.hit)
		}
	}
}

func TestCheckAlienHitConsumesOneBullet(t *testing.T) {
	m := NewModel(config.DefaultInvadersConfig())
	m.Bullets[SidePlayer].Spawn(12, 3)
	m.Bullets[SidePlayer].Spawn(14, 5)
	m.Bullets[SidePlayer].Spawn(40, 40) // elsewhere

	slot, ok := m.CheckAlienHit(0, hitBox(10, 0))
	if !ok || slot != 0 {
		t.Fatalf("CheckAlienHit() = (%d, %v), expected slot 0", slot, ok)
	}
	if m.Aliens[0].Vitality.State() != Dying {
		t.Error("alien should be Dying")
	}
	if m.Bullets[SidePlayer].ActiveCount() != 2 {
		t.Errorf("ActiveCount() = %d, expected one bullet consumed", m.Bullets[SidePlayer].ActiveCount())
	}
	if !m.Bullets[SidePlayer].Slot(1).Active {
		t.Error("second bullet in the box should survive")
	}
}

func TestCheckAlienHitMiss(t *testing.T) {
	m := NewModel(config.DefaultInvadersConfig())
	m.Bullets[SidePlayer].Spawn(30, 30)

	if _, ok := m.CheckAlienHit(0, hitBox(10, 0)); ok {
		t.Error("expected a miss")
	}
	if m.Aliens[0].Vitality.State() != Alive {
		t.Error("alien should be untouched")
	}
}

func TestCheckShipHit(t *testing.T) {
	m := NewModel(config.DefaultInvadersConfig())
	box := hitBox(int(m.Ship.X), int(m.Ship.Y))

	m.Bullets[SideEnemy].Spawn(m.Ship.X+4, m.Ship.Y)
	if !m.CheckShipHit(box) {
		t.Fatal("expected a hit")
	}
	if m.Ship.Vitality.Level() != MaxVitality-1 {
		t.Errorf("Level() = %d, expected %d", m.Ship.Vitality.Level(), MaxVitality-1)
	}

	// A dying ship still absorbs bullets without restarting its flash
	m.Ship.Vitality.Tick()
	m.Bullets[SideEnemy].Spawn(m.Ship.X, m.Ship.Y+8)
	if !m.CheckShipHit(box) {
		t.Fatal("bullet on the box corner should hit")
	}
	if m.Ship.Vitality.Level() != MaxVitality-2 {
		t.Errorf("Level() = %d, flash should not restart", m.Ship.Vitality.Level())
	}
	if m.Bullets[SideEnemy].ActiveCount() != 0 {
		t.Error("bullets should be consumed")
	}
}

func TestFirerCountdown(t *testing.T) {
	f := NewFirer(1)
	if f.Visit() {
		t.Fatal("no alien should fire without a selection")
	}

	f.countdown = 3
	for i := 0; i < 3; i++ {
		if f.Visit() {
			t.Fatalf("visit %d fired early", i)
		}
	}
	if !f.Visit() {
		t.Fatal("fourth visible alien should fire")
	}
	for i := 0; i < 5; i++ {
		if f.Visit() {
			t.Fatal("only one alien may fire per selection")
		}
	}
	if f.Pending() {
		t.Error("selection should be consumed")
	}
}

func TestFirerSelectRange(t *testing.T) {
	f := NewFirer(7)
	for i := 0; i < 200; i++ {
		n := f.Select(4)
		if n < 0 || n >= 4 {
			t.Fatalf("Select(4) = %d, out of range", n)
		}
	}

	f.Discard()
	if f.Select(0) != -1 || f.Pending() {
		t.Error("Select(0) should not pick anyone")
	}
}

func TestFirerDeterministic(t *testing.T) {
	a, b := NewFirer(42), NewFirer(42)
	for i := 0; i < 50; i++ {
		if a.Select(9) != b.Select(9) {
			t.Fatalf("selection %d differs for the same seed", i)
		}
	}
}
