package invaders

import (
	"math/rand"

	"github.com/vovakirdan/lcd-invaders/internal/core"
)

// hitBox returns the inclusive 8x8 box of an entity at (x, y).
// Inclusive on all edges, so it effectively spans 9x9 pixels.
func hitBox(x, y int) core.Box {
	return core.NewBox(x, y, SpriteSize, SpriteSize)
}

// firstHit returns the first active bullet of pool inside box.
func firstHit(pool *BulletPool, box core.Box) (int, bool) {
	for i := range pool.slots {
		b := pool.slots[i]
		if b.Active && box.Contains(int(b.X), int(b.Y)) {
			return i, true
		}
	}
	return -1, false
}

// CheckAlienHit tests alien i against the player's bullets. The first bullet
// inside the box is consumed and a healthy alien starts dying. At most one
// bullet is consumed per call.
func (m *Model) CheckAlienHit(i int, box core.Box) (int, bool) {
	pool := &m.Bullets[SidePlayer]
	slot, ok := firstHit(pool, box)
	if !ok {
		return -1, false
	}
	m.Aliens[i].Vitality.Hit()
	pool.Deactivate(slot)
	return slot, true
}

// CheckShipHit tests the ship against the aliens' bullets. Every bullet
// inside the box is consumed; the ship only starts dying if it was Alive.
func (m *Model) CheckShipHit(box core.Box) bool {
	pool := &m.Bullets[SideEnemy]
	hit := false
	for {
		slot, ok := firstHit(pool, box)
		if !ok {
			break
		}
		pool.Deactivate(slot)
		m.Ship.Vitality.Hit()
		hit = true
	}
	return hit
}

// Firer picks which alien shoots. A uniform ordinal over the remaining
// aliens is drawn, then counted down once per visible alien in sweep order;
// the alien visited while the count is zero fires.
type Firer struct {
	rng       *rand.Rand
	countdown int
}

// NewFirer creates a firer seeded for deterministic play.
func NewFirer(seed int64) *Firer {
	return &Firer{rng: rand.New(rand.NewSource(seed)), countdown: -1}
}

// Select draws a new ordinal in [0, remaining). It does nothing if no
// aliens remain.
func (f *Firer) Select(remaining int) int {
	if remaining <= 0 {
		return -1
	}
	f.countdown = f.rng.Intn(remaining)
	return f.countdown
}

// Visit is called for each visible alien and reports whether it fires.
func (f *Firer) Visit() bool {
	if f.countdown < 0 {
		return false
	}
	fire := f.countdown == 0
	f.countdown--
	return fire
}

// Discard drops a pending selection that no alien consumed.
func (f *Firer) Discard() {
	f.countdown = -1
}

// Pending reports whether a selection is waiting to be consumed.
func (f *Firer) Pending() bool {
	return f.countdown >= 0
}
