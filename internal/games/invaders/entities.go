package invaders

import (
	"github.com/vovakirdan/lcd-invaders/internal/config"
	"github.com/vovakirdan/lcd-invaders/internal/lcd"
)

// Fixed geometry and capacities.
const (
	SpriteSize   = 8
	Row1Count    = 5
	Row2Count    = 4
	AlienCount   = Row1Count + Row2Count
	PoolCapacity = 20

	// MaxVitality is the numeric level of a healthy entity.
	// A hit drops it to MaxVitality-1 and it counts down to zero.
	MaxVitality = 7
)

// VitalityState is the lifecycle phase of a ship or alien.
type VitalityState uint8

const (
	Dead VitalityState = iota
	Dying
	Alive
)

// String returns the state name.
func (s VitalityState) String() string {
	switch s {
	case Dead:
		return "Dead"
	case Dying:
		return "Dying"
	case Alive:
		return "Alive"
	default:
		return "Unknown"
	}
}

// Vitality tracks whether an entity is alive, flashing out, or gone.
// While Dying the entity is drawn only on ticks where the countdown is odd,
// which produces the flash.
type Vitality struct {
	state VitalityState
	ticks uint8 // Remaining flash ticks while Dying
}

// AliveVitality returns a healthy vitality.
func AliveVitality() Vitality {
	return Vitality{state: Alive}
}

// State returns the lifecycle phase.
func (v Vitality) State() VitalityState {
	return v.state
}

// Level returns the numeric vitality: MaxVitality when Alive, the remaining
// flash ticks while Dying, zero when Dead.
func (v Vitality) Level() int {
	switch v.state {
	case Alive:
		return MaxVitality
	case Dying:
		return int(v.ticks)
	default:
		return 0
	}
}

// Visible reports whether the entity should be drawn and can collide.
func (v Vitality) Visible() bool {
	return v.state == Alive || (v.state == Dying && v.ticks%2 == 1)
}

// Hit starts the death flash. Only an Alive entity can be hit.
func (v *Vitality) Hit() bool {
	if v.state != Alive {
		return false
	}
	v.state = Dying
	v.ticks = MaxVitality - 1
	return true
}

// Tick advances the death flash by one tick and reports whether the
// entity died on this tick.
func (v *Vitality) Tick() bool {
	if v.state != Dying {
		return false
	}
	v.ticks--
	if v.ticks == 0 {
		v.state = Dead
		return true
	}
	return false
}

// Ship is the player. X, Y is the top-left corner of its 8x8 box.
type Ship struct {
	X, Y     uint8
	Lives    uint8
	Vitality Vitality
}

// Alien is one member of the formation. Its position is derived from the
// formation offset and its slot.
type Alien struct {
	Vitality Vitality
}

// Formation is the shared movement state of all aliens.
type Formation struct {
	OffsetX, OffsetY float32
	VelocityX        float32
}

// Bullet is one pool slot.
type Bullet struct {
	X, Y   uint8
	Active bool
}

// BulletPool is a fixed ring of bullet slots. New shots are written at the
// cursor, which always advances, so a full pool overwrites its oldest slot.
type BulletPool struct {
	slots  [PoolCapacity]Bullet
	cursor int
}

// Spawn writes an active bullet at the cursor and advances it.
func (p *BulletPool) Spawn(x, y uint8) {
	p.slots[p.cursor] = Bullet{X: x, Y: y, Active: true}
	p.cursor = (p.cursor + 1) % PoolCapacity
}

// Advance moves every active bullet by dy using wrapping byte arithmetic,
// then deactivates bullets that reached row 0 or left the screen.
func (p *BulletPool) Advance(dy int) {
	for i := range p.slots {
		b := &p.slots[i]
		if !b.Active {
			continue
		}
		b.Y = uint8(int(b.Y) + dy)
		if b.Y == 0 || b.Y > lcd.Height {
			*b = Bullet{}
		}
	}
}

// Slot returns a copy of slot i.
func (p *BulletPool) Slot(i int) Bullet {
	return p.slots[i]
}

// Deactivate frees slot i.
func (p *BulletPool) Deactivate(i int) {
	p.slots[i] = Bullet{}
}

// Cursor returns the index the next shot will be written to.
func (p *BulletPool) Cursor() int {
	return p.cursor
}

// ActiveCount returns the number of bullets in flight.
func (p *BulletPool) ActiveCount() int {
	n := 0
	for _, b := range p.slots {
		if b.Active {
			n++
		}
	}
	return n
}

// Clear empties the pool and rewinds the cursor.
func (p *BulletPool) Clear() {
	*p = BulletPool{}
}

// Cooldown counts the ticks until a side may fire again.
type Cooldown struct {
	left int
	wait int
}

// Tick counts down once and reports whether the cooldown reached zero on
// this tick.
func (c *Cooldown) Tick() bool {
	if c.left == 0 {
		return false
	}
	c.left--
	return c.left == 0
}

// Ready reports whether firing is allowed.
func (c *Cooldown) Ready() bool {
	return c.left == 0
}

// Arm restarts the wait.
func (c *Cooldown) Arm() {
	c.left = c.wait
}

// Disarm allows firing immediately.
func (c *Cooldown) Disarm() {
	c.left = 0
}

// Left returns the remaining ticks.
func (c *Cooldown) Left() int {
	return c.left
}

// Side selects the player's or the aliens' pool and cooldown.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// Model holds every entity of a round in fixed-size storage.
type Model struct {
	cfg config.InvadersConfig

	Ship            Ship
	Aliens          [AlienCount]Alien
	Formation       Formation
	Bullets         [2]BulletPool
	Cooldowns       [2]Cooldown
	AliensRemaining int
}

// NewModel creates a model configured by cfg and resets it.
func NewModel(cfg config.InvadersConfig) *Model {
	m := &Model{cfg: cfg}
	m.Reset()
	return m
}

// Config returns the tuning the model was created with.
func (m *Model) Config() config.InvadersConfig {
	return m.cfg
}

// Reset puts every entity back to its starting state.
func (m *Model) Reset() {
	m.Ship = Ship{
		X:        uint8(m.cfg.Ship.StartX),
		Y:        uint8(m.cfg.Ship.StartY),
		Lives:    uint8(m.cfg.Ship.Lives),
		Vitality: AliveVitality(),
	}
	for i := range m.Aliens {
		m.Aliens[i] = Alien{Vitality: AliveVitality()}
	}
	m.AliensRemaining = AlienCount
	m.Formation = Formation{
		OffsetX:   float32(m.cfg.Formation.StartX),
		OffsetY:   float32(m.cfg.Formation.StartY),
		VelocityX: float32(m.cfg.Formation.Velocity),
	}
	m.Bullets[SidePlayer].Clear()
	m.Bullets[SideEnemy].Clear()
	m.Cooldowns[SidePlayer] = Cooldown{wait: m.cfg.Ship.FireWait}
	m.Cooldowns[SideEnemy] = Cooldown{wait: m.cfg.Enemy.FireWait}
	m.Cooldowns[SideEnemy].Arm()
}

// TickShipFlash advances the ship's death flash and reports whether the
// ship died on this tick.
func (m *Model) TickShipFlash() bool {
	return m.Ship.Vitality.Tick()
}

// TickAlienFlash advances an alien's death flash. A completed death is
// removed from AliensRemaining.
func (m *Model) TickAlienFlash(i int) bool {
	if !m.Aliens[i].Vitality.Tick() {
		return false
	}
	m.AliensRemaining--
	return true
}

// FireBullet spawns a bullet for side at (x, y) if its cooldown allows it,
// then re-arms the cooldown.
func (m *Model) FireBullet(side Side, x, y uint8) bool {
	cd := &m.Cooldowns[side]
	if !cd.Ready() {
		return false
	}
	m.Bullets[side].Spawn(x, y)
	cd.Arm()
	return true
}

// AdvanceBullets moves the bullets of side by dy pixels.
func (m *Model) AdvanceBullets(side Side, dy int) {
	m.Bullets[side].Advance(dy)
}

// AlienPosition returns the top-left corner of alien i, truncated toward
// zero. Slots 0-4 form the first row, 5-8 the indented second row.
func (m *Model) AlienPosition(i int) (x, y int) {
	f := m.Formation
	spacing := float32(m.cfg.Formation.Spacing)
	if i < Row1Count {
		return int(f.OffsetX + spacing*float32(i)), int(f.OffsetY)
	}
	col := i - Row1Count
	indent := float32(m.cfg.Formation.Row2Indent)
	return int(f.OffsetX + indent + spacing*float32(col)), int(f.OffsetY + SpriteSize)
}

// LivingAliens counts aliens that are not Dead.
func (m *Model) LivingAliens() int {
	n := 0
	for _, a := range m.Aliens {
		if a.Vitality.State() != Dead {
			n++
		}
	}
	return n
}
