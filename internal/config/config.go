// Package config provides YAML-based tuning for the invaders game and
// difficulty presets selectable from the command line.
package config

import (
	"errors"
	"fmt"
)

// Screen geometry the tuning is validated against.
const (
	screenWidth  = 128
	screenHeight = 64
	spriteSize   = 8
)

// InvadersConfig contains all tunable parameters of the invaders game.
// Row sizes and pool capacities are fixed by the engine's storage and
// are not configurable.
type InvadersConfig struct {
	Ship      InvadersShip      `yaml:"ship"`
	Formation InvadersFormation `yaml:"formation"`
	Enemy     InvadersEnemy     `yaml:"enemy"`
	Scoring   InvadersScoring   `yaml:"scoring"`
}

// InvadersShip defines the player's ship.
type InvadersShip struct {
	StartX      int `yaml:"start_x"`
	StartY      int `yaml:"start_y"`
	Step        int `yaml:"step"`         // Pixels moved per tick while Left/Right is held
	Lives       int `yaml:"lives"`        // Lives at the start of a round
	FireWait    int `yaml:"fire_wait"`    // Ticks between player shots
	BulletSpeed int `yaml:"bullet_speed"` // Pixels per tick, upwards
}

// InvadersFormation defines the alien block movement.
type InvadersFormation struct {
	StartX          float64 `yaml:"start_x"`
	StartY          float64 `yaml:"start_y"`
	Velocity        float64 `yaml:"velocity"`         // Initial horizontal pixels per tick
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Applied to |velocity| on every edge bounce
	Descent         float64 `yaml:"descent"`          // Pixels moved down on every edge bounce
	Spacing         int     `yaml:"spacing"`          // Horizontal distance between aliens in a row
	Row2Indent      int     `yaml:"row2_indent"`      // Extra x offset of the second row
}

// InvadersEnemy defines alien fire.
type InvadersEnemy struct {
	FireWait    int `yaml:"fire_wait"`    // Ticks between alien shots
	BulletSpeed int `yaml:"bullet_speed"` // Pixels per tick, downwards
}

// InvadersScoring defines how points are awarded.
type InvadersScoring struct {
	PointsPerAlien int `yaml:"points_per_alien"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset.
// An empty string means "no preset" and is not an error.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables speed escalation.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks that the configuration describes a playable game.
func (c InvadersConfig) Validate() error {
	var errs []error

	s := c.Ship
	if s.StartX < 0 || s.StartX > screenWidth-spriteSize {
		errs = append(errs, fmt.Errorf("ship.start_x %d outside [0, %d]", s.StartX, screenWidth-spriteSize))
	}
	if s.StartY < 0 || s.StartY > screenHeight-spriteSize {
		errs = append(errs, fmt.Errorf("ship.start_y %d outside [0, %d]", s.StartY, screenHeight-spriteSize))
	}
	if s.Step < 1 {
		errs = append(errs, errors.New("ship.step must be positive"))
	}
	if s.Lives < 1 || s.Lives > 255 {
		errs = append(errs, fmt.Errorf("ship.lives %d outside [1, 255]", s.Lives))
	}
	if s.FireWait < 1 {
		errs = append(errs, errors.New("ship.fire_wait must be positive"))
	}
	if s.BulletSpeed < 1 || s.BulletSpeed > spriteSize {
		errs = append(errs, fmt.Errorf("ship.bullet_speed %d outside [1, %d]", s.BulletSpeed, spriteSize))
	}

	f := c.Formation
	if f.Velocity <= 0 {
		errs = append(errs, errors.New("formation.velocity must be positive"))
	}
	if f.SpeedMultiplier < 1 {
		errs = append(errs, errors.New("formation.speed_multiplier must be at least 1"))
	}
	if f.Descent < 0 {
		errs = append(errs, errors.New("formation.descent must not be negative"))
	}
	if f.Spacing < spriteSize {
		errs = append(errs, fmt.Errorf("formation.spacing %d would overlap aliens", f.Spacing))
	}
	if f.Row2Indent < 0 {
		errs = append(errs, errors.New("formation.row2_indent must not be negative"))
	}
	// Widest row is the first one (5 aliens) unless the indent pushes row 2 further.
	right := max(4*f.Spacing, f.Row2Indent+3*f.Spacing) + spriteSize
	if f.StartX <= 0 || int(f.StartX)+right >= screenWidth {
		errs = append(errs, fmt.Errorf("formation at x=%.1f does not fit the screen", f.StartX))
	}
	if f.StartY < 0 || int(f.StartY)+2*spriteSize >= screenHeight {
		errs = append(errs, fmt.Errorf("formation at y=%.1f does not fit the screen", f.StartY))
	}

	if c.Enemy.FireWait < 1 {
		errs = append(errs, errors.New("enemy.fire_wait must be positive"))
	}
	if c.Enemy.BulletSpeed < 1 || c.Enemy.BulletSpeed > spriteSize {
		errs = append(errs, fmt.Errorf("enemy.bullet_speed %d outside [1, %d]", c.Enemy.BulletSpeed, spriteSize))
	}
	if c.Scoring.PointsPerAlien < 0 {
		errs = append(errs, errors.New("scoring.points_per_alien must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid invaders config: %w", errors.Join(errs...))
	}
	return nil
}
