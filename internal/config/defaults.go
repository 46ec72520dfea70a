package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default invaders configuration.
// These values reproduce the handheld this game was first written for.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Ship: InvadersShip{
			StartX:      60,
			StartY:      50,
			Step:        2,
			Lives:       3,
			FireWait:    10,
			BulletSpeed: 1,
		},
		Formation: InvadersFormation{
			StartX:          10,
			StartY:          0,
			Velocity:        0.5,
			SpeedMultiplier: 1.2,
			Descent:         4,
			Spacing:         18,
			Row2Indent:      9,
		},
		Enemy: InvadersEnemy{
			FireWait:    5,
			BulletSpeed: 1,
		},
		Scoring: InvadersScoring{
			PointsPerAlien: 2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invaders":
		return defaultInvadersYAML
	default:
		return nil
	}
}
